package core

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerivePart_Formulas(t *testing.T) {
	tests := []struct {
		name        string
		kind        Kind
		size, level uint16
		health      float32
		electricity float32
		cost        float32
	}{
		{"hull", KindHull, 20, 14, 112, -28, 100 + 0.4 + 700},
		{"cargo", KindCargo, 10, 1, 1, -2, 150.8},
		{"cockpit", KindCockpit, 10, 2, 16, -16, 100 + 1 + 200},
		{"solar panels", KindSolarPanels, 10, 1, 8, 12, 201},
		{"living quarters", KindLivingQuarters, 10, 2, 16, -16, 301},
		{"zero level", KindCargo, 10, 0, 0, 0, 50.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := uuid.New()
			p := DerivePart(tt.kind, tt.size, tt.level, id)

			assert.Equal(t, id, p.ID())
			assert.Equal(t, tt.kind, p.Kind())
			assert.Equal(t, tt.size, p.Size())
			assert.Equal(t, tt.level, p.Level())
			assert.InDelta(t, tt.health, p.Health(), 1e-3)
			assert.InDelta(t, tt.electricity, p.Electricity(), 1e-3)
			assert.InDelta(t, tt.cost, p.Cost(), 1e-3)
		})
	}
}

func TestDerivePart_KindAttributes(t *testing.T) {
	hull, ok := AsHull(DerivePart(KindHull, 20, 14, uuid.Nil).Type())
	require.True(t, ok)
	assert.InDelta(t, 20*0.6*14*0.4, hull.Protection, 1e-3)

	cargo, ok := AsCargo(DerivePart(KindCargo, 10, 3, uuid.Nil).Type())
	require.True(t, ok)
	assert.Equal(t, uint16(40), cargo.Capacity)

	lq, ok := AsLivingQuarters(DerivePart(KindLivingQuarters, 5, 2, uuid.Nil).Type())
	require.True(t, ok)
	assert.Equal(t, uint16(25), lq.Capacity)

	assert.True(t, IsCargo(Cargo{}))
	assert.False(t, IsCargo(Hull{}))
	_, ok = AsHull(Cockpit{})
	assert.False(t, ok)
}

func TestDerivePart_UnknownKindPanics(t *testing.T) {
	assert.Panics(t, func() { DerivePart(Kind(42), 1, 1, uuid.Nil) })
}

func TestNewPart_FreshIDs(t *testing.T) {
	a := NewPart(KindCockpit, 1, 1)
	b := NewPart(KindCockpit, 1, 1)

	assert.NotEqual(t, uuid.Nil, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestKind_TextRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		text, err := k.MarshalText()
		require.NoError(t, err)

		var got Kind
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, k, got)
	}

	_, err := ParseKind("warp_drive")
	assert.Error(t, err)

	_, err = Kind(9).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "kind(9)", Kind(9).String())
	assert.Equal(t, "solar_panels", KindSolarPanels.String())
}

func TestKind_ZeroValueInvalid(t *testing.T) {
	var k Kind
	assert.False(t, k.Valid())
	assert.Equal(t, "kind(0)", k.String())

	_, err := k.MarshalText()
	assert.Error(t, err)

	for _, kind := range Kinds() {
		assert.True(t, kind.Valid(), kind.String())
	}
}
