// Package testutil contains helper fixtures used across tests to reduce
// boilerplate when preparing vessels with already committed parts. These
// helpers are not intended for production usage.
package testutil
