// Package metrics exposes Prometheus collectors for vessel transactions:
// opened transactions, finalize outcomes, committed parts per kind and the
// cost distribution of committed purchases.
package metrics
