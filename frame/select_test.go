package frame_test

import (
	"testing"

	"github.com/katalvlaran/framekit/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSelect verifies column projection in requested order.
func TestSelect(t *testing.T) {
	f := sample(t)

	sub, err := f.Select("weight", "species")
	require.NoError(t, err)

	assert.Equal(t, []string{"weight", "species"}, sub.Names(), "requested order kept")
	assert.Equal(t, 5, sub.Len(), "all rows kept")
}

// TestSelect_Errors covers unknown and duplicate requests.
func TestSelect_Errors(t *testing.T) {
	f := sample(t)

	_, err := f.Select("missing")
	assert.ErrorIs(t, err, frame.ErrColumnNotFound)

	_, err = f.Select("weight", "weight")
	assert.ErrorIs(t, err, frame.ErrDuplicateColumn)
}

// TestSelect_IsCopy ensures projection shares no storage with the source.
func TestSelect_IsCopy(t *testing.T) {
	f := sample(t)
	sub, err := f.Select("weight")
	require.NoError(t, err)

	_, err = f.AddWhere("weight", 7, func(int) bool { return true })
	require.NoError(t, err)

	ws, err := sub.Floats("weight")
	require.NoError(t, err)
	assert.InDelta(t, 22.5, ws[0], 1e-12, "projection unaffected by source mutation")
}

// TestFilterEq_Dog is the literal-subset property: selecting rows whose
// species equals "Dog" returns exactly the two matching rows of the sample.
func TestFilterEq_Dog(t *testing.T) {
	f := sample(t)

	dogs, err := f.FilterEq("species", "Dog")
	require.NoError(t, err)

	assert.Equal(t, 2, dogs.Len(), "exactly two Dog rows")

	ws, err := dogs.Floats("weight")
	require.NoError(t, err)
	assert.Equal(t, []float64{22.5, 30.1}, ws, "row order preserved")

	fams, err := dogs.Strings("family")
	require.NoError(t, err)
	assert.Equal(t, []string{"canine", "canine"}, fams)
}

// TestFilterEq_NoMatch yields an empty Frame with the full schema.
func TestFilterEq_NoMatch(t *testing.T) {
	f := sample(t)

	none, err := f.FilterEq("species", "Unicorn")
	require.NoError(t, err)

	assert.Equal(t, 0, none.Len())
	assert.Equal(t, f.Names(), none.Names(), "schema survives empty subsets")
}

// TestFilterEq_Errors covers kind and name failures.
func TestFilterEq_Errors(t *testing.T) {
	f := sample(t)

	_, err := f.FilterEq("weight", "22.5")
	assert.ErrorIs(t, err, frame.ErrKindMismatch)

	_, err = f.FilterEq("missing", "x")
	assert.ErrorIs(t, err, frame.ErrColumnNotFound)
}

// TestFilter_Predicate subsets on a numeric threshold.
func TestFilter_Predicate(t *testing.T) {
	f := sample(t)
	ws, err := f.Floats("weight")
	require.NoError(t, err)

	heavy, err := f.Filter(func(r int) bool { return ws[r] > 20 })
	require.NoError(t, err)

	assert.Equal(t, 3, heavy.Len(), "Dog, Dog, Horse")

	sp, err := heavy.Strings("species")
	require.NoError(t, err)
	assert.Equal(t, []string{"Dog", "Dog", "Horse"}, sp)
}

// TestFilter_NilPredicate is rejected with a sentinel.
func TestFilter_NilPredicate(t *testing.T) {
	f := sample(t)

	_, err := f.Filter(nil)
	assert.ErrorIs(t, err, frame.ErrNilPredicate)
}

// TestTake covers integer row indexing, including repeats and bounds.
func TestTake(t *testing.T) {
	f := sample(t)

	sub, err := f.Take(3, 0, 0)
	require.NoError(t, err)

	sp, err := sub.Strings("species")
	require.NoError(t, err)
	assert.Equal(t, []string{"Horse", "Dog", "Dog"}, sp, "indices honored in order, repeats allowed")

	_, err = f.Take(5)
	assert.ErrorIs(t, err, frame.ErrRowOutOfRange)

	_, err = f.Take(-1)
	assert.ErrorIs(t, err, frame.ErrRowOutOfRange)
}

// TestHead covers leading-row subsets and bounds.
func TestHead(t *testing.T) {
	f := sample(t)

	h, err := f.Head(2)
	require.NoError(t, err)
	assert.Equal(t, 2, h.Len())

	sp, err := h.Strings("species")
	require.NoError(t, err)
	assert.Equal(t, []string{"Dog", "Cat"}, sp)

	all, err := f.Head(100)
	require.NoError(t, err)
	assert.Equal(t, 5, all.Len(), "n clamps to Len")

	_, err = f.Head(-1)
	assert.ErrorIs(t, err, frame.ErrBadCount)
}
