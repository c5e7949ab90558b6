package blueprint

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hupe1980/shipwright/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const saraYAML = `
name: Sara
parts:
  - kind: cargo
    size: 10
    level: 1
  - kind: hull
    size: 20
    level: 14
  - kind: solar_panels
    size: 10
    level: 1
`

func TestParse(t *testing.T) {
	bp, err := Parse([]byte(saraYAML))
	require.NoError(t, err)

	assert.Equal(t, "Sara", bp.Name)
	assert.Equal(t, []Entry{
		{Kind: core.KindCargo, Size: 10, Level: 1},
		{Kind: core.KindHull, Size: 20, Level: 14},
		{Kind: core.KindSolarPanels, Size: 10, Level: 1},
	}, bp.Parts)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown kind", "name: x\nparts:\n  - kind: warp_drive\n    size: 1\n"},
		{"missing kind", "name: x\nparts:\n  - size: 5\n    level: 1\n"},
		{"zero size", "name: x\nparts:\n  - kind: cargo\n    size: 0\n"},
		{"missing name", "parts:\n  - kind: cargo\n    size: 1\n"},
		{"no parts", "name: x\nparts: []\n"},
		{"unknown field", "name: x\ncolour: red\nparts:\n  - kind: cargo\n    size: 1\n"},
		{"not yaml", "name: [x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoad_SizeLimit(t *testing.T) {
	_, err := Load(strings.NewReader(saraYAML))
	require.NoError(t, err)

	big := bytes.Repeat([]byte("#"), MaxDocumentSize+1)
	_, err = Load(bytes.NewReader(big))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestQuoteMatchesApply(t *testing.T) {
	bp, err := Parse([]byte(saraYAML))
	require.NoError(t, err)

	b, err := core.Open(core.NewVessel("Sara"))
	require.NoError(t, err)
	before := b.Cost()

	quote := bp.Quote(b)
	assert.Zero(t, b.Len(), "quote must not stage")

	parts := bp.Apply(b)
	require.Len(t, parts, 3)
	assert.Equal(t, 3, b.Len())
	assert.InDelta(t, before+quote, b.Cost(), 1e-3)

	i := 0
	for p := range b.Parts() {
		assert.Equal(t, parts[i].ID(), p.ID())
		i++
	}
}

func TestFromVesselRoundTrip(t *testing.T) {
	bp, err := Parse([]byte(saraYAML))
	require.NoError(t, err)

	v := core.NewVessel("Sara")
	b, err := core.Open(v)
	require.NoError(t, err)
	bp.Apply(b)
	funds := float32(1_000_000)
	require.NoError(t, b.Finalize(&funds))

	captured := FromVessel(v)
	// Commit drains last staged first.
	assert.Equal(t, core.KindSolarPanels, captured.Parts[0].Kind)
	assert.Equal(t, core.KindCargo, captured.Parts[2].Kind)

	data, err := captured.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "kind: solar_panels")

	again, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, captured, again)
}
