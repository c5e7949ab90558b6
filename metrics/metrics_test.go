package metrics

import (
	"testing"

	"github.com/hupe1980/shipwright/core"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Records(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := New(reg)
	require.NoError(t, err)

	c.RecordOpen()
	c.RecordOpen()
	c.RecordFailure(&core.PurchaseError{Reason: core.TooLittleFunds{}})
	c.RecordFailure(&core.PurchaseError{Reason: core.ElectricityDeficit{}})
	c.RecordCommit(1160.8, []core.Part{
		core.NewPart(core.KindCargo, 10, 1),
		core.NewPart(core.KindCargo, 10, 1),
		core.NewPart(core.KindHull, 20, 14),
	})
	c.RecordDiscard()

	assert.Equal(t, 2.0, testutil.ToFloat64(c.opened))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.finalized.WithLabelValues(OutcomeTooLittleFunds)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.finalized.WithLabelValues(OutcomeRejected)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.finalized.WithLabelValues(OutcomeCommitted)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.finalized.WithLabelValues(OutcomeDiscarded)))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.parts.WithLabelValues("cargo")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.parts.WithLabelValues("hull")))

	count, err := testutil.GatherAndCount(reg, "shipwright_transactions_cost")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNew_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)

	_, err = New(reg)
	assert.Error(t, err)
}

func TestNew_Unregistered(t *testing.T) {
	c, err := New(nil)
	require.NoError(t, err)
	c.RecordOpen()
	assert.Equal(t, 1.0, testutil.ToFloat64(c.opened))
}
