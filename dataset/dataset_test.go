package dataset_test

import (
	"testing"

	"github.com/katalvlaran/framekit/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAnimals_Shape verifies the fixed sample's schema and contents.
func TestAnimals_Shape(t *testing.T) {
	f := dataset.Animals()

	assert.Equal(t, 5, f.Len())
	assert.Equal(t, []string{"species", "weight", "height", "family"}, f.Names())

	sp, err := f.Strings("species")
	require.NoError(t, err)
	assert.Equal(t, []string{"Dog", "Cat", "Dog", "Horse", "Rabbit"}, sp, "two Dog rows among five")

	ws, err := f.Floats("weight")
	require.NoError(t, err)
	assert.Equal(t, []float64{22.5, 4.2, 30.1, 510, 2.1}, ws)
}

// TestAnimals_FreshCopy ensures each call returns independent storage.
func TestAnimals_FreshCopy(t *testing.T) {
	a := dataset.Animals()
	_, err := a.AddWhere("weight", 100, func(int) bool { return true })
	require.NoError(t, err)

	b := dataset.Animals()
	ws, err := b.Floats("weight")
	require.NoError(t, err)
	assert.InDelta(t, 22.5, ws[0], 0, "mutating one copy never leaks into the next")
}

// TestSynthetic_Deterministic checks that equal (n, seed) pairs reproduce
// identical frames and different seeds diverge.
func TestSynthetic_Deterministic(t *testing.T) {
	a, err := dataset.Synthetic(500, 42)
	require.NoError(t, err)
	b, err := dataset.Synthetic(500, 42)
	require.NoError(t, err)

	aw, err := a.Floats("weight")
	require.NoError(t, err)
	bw, err := b.Floats("weight")
	require.NoError(t, err)
	assert.Equal(t, aw, bw, "same seed reproduces the same weights")

	as, err := a.Strings("species")
	require.NoError(t, err)
	bs, err := b.Strings("species")
	require.NoError(t, err)
	assert.Equal(t, as, bs, "same seed reproduces the same species")

	c, err := dataset.Synthetic(500, 43)
	require.NoError(t, err)
	cw, err := c.Floats("weight")
	require.NoError(t, err)
	assert.NotEqual(t, aw, cw, "different seeds diverge")
}

// TestSynthetic_ZeroSeedPolicy verifies seed==0 selects the fixed default
// stream rather than a time-based one.
func TestSynthetic_ZeroSeedPolicy(t *testing.T) {
	a, err := dataset.Synthetic(100, 0)
	require.NoError(t, err)
	b, err := dataset.Synthetic(100, 0)
	require.NoError(t, err)

	aw, err := a.Floats("weight")
	require.NoError(t, err)
	bw, err := b.Floats("weight")
	require.NoError(t, err)
	assert.Equal(t, aw, bw, "seed 0 is deterministic, not time-based")
}

// TestSynthetic_Ranges checks measurements stay in guaranteed-valid ranges
// and the family column is consistent with species.
func TestSynthetic_Ranges(t *testing.T) {
	f, err := dataset.Synthetic(2_000, 7)
	require.NoError(t, err)

	ws, err := f.Floats("weight")
	require.NoError(t, err)
	hs, err := f.Floats("height")
	require.NoError(t, err)
	sp, err := f.Strings("species")
	require.NoError(t, err)
	fam, err := f.Strings("family")
	require.NoError(t, err)

	for i := range ws {
		assert.GreaterOrEqual(t, ws[i], 1.0)
		assert.Less(t, ws[i], 100.0)
		assert.GreaterOrEqual(t, hs[i], 0.1)
		assert.Less(t, hs[i], 2.0)
	}

	// Family is a pure function of species.
	seen := make(map[string]string)
	for i := range sp {
		if prev, ok := seen[sp[i]]; ok {
			assert.Equal(t, prev, fam[i], "family must be derived consistently")
		}
		seen[sp[i]] = fam[i]
	}
}

// TestSynthetic_Edges covers n==0 and negative n.
func TestSynthetic_Edges(t *testing.T) {
	empty, err := dataset.Synthetic(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, []string{"species", "weight", "height", "family"}, empty.Names(), "schema survives n==0")

	_, err = dataset.Synthetic(-1, 1)
	assert.ErrorIs(t, err, dataset.ErrBadRowCount)
}

// TestSynthetic_ColumnIndependence: truncating the row count must not change
// the prefix of any column (streams are independent per column).
func TestSynthetic_ColumnIndependence(t *testing.T) {
	long, err := dataset.Synthetic(200, 11)
	require.NoError(t, err)
	short, err := dataset.Synthetic(50, 11)
	require.NoError(t, err)

	lw, err := long.Floats("weight")
	require.NoError(t, err)
	sw, err := short.Floats("weight")
	require.NoError(t, err)
	assert.Equal(t, lw[:50], sw, "shorter run is a prefix of the longer one")
}
