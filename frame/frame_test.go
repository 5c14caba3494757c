package frame_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/framekit/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sample builds the five-row toy table used throughout the tests.
func sample(t *testing.T) *frame.Frame {
	t.Helper()

	f, err := frame.New([]frame.Column{
		frame.Strings("species", "Dog", "Cat", "Dog", "Horse", "Rabbit"),
		frame.Floats("weight", 22.5, 4.2, 30.1, 510, 2.1),
		frame.Floats("height", 0.55, 0.25, 0.62, 1.65, 0.18),
		frame.Strings("family", "canine", "feline", "canine", "equine", "leporid"),
	})
	require.NoError(t, err, "sample table must construct")

	return f
}

// TestNew_Shape verifies row/column counts and name order.
func TestNew_Shape(t *testing.T) {
	f := sample(t)

	assert.Equal(t, 5, f.Len(), "five rows")
	assert.Equal(t, 4, f.Width(), "four columns")
	assert.Equal(t, []string{"species", "weight", "height", "family"}, f.Names(), "presentation order preserved")
}

// TestNew_DuplicateColumn ensures duplicate names are rejected.
func TestNew_DuplicateColumn(t *testing.T) {
	_, err := frame.New([]frame.Column{
		frame.Floats("w", 1),
		frame.Floats("w", 2),
	})
	assert.ErrorIs(t, err, frame.ErrDuplicateColumn)
}

// TestNew_EmptyColumnName ensures empty names are rejected.
func TestNew_EmptyColumnName(t *testing.T) {
	_, err := frame.New([]frame.Column{frame.Floats("", 1)})
	assert.ErrorIs(t, err, frame.ErrEmptyColumnName)
}

// TestNew_LengthMismatch ensures ragged columns are rejected.
func TestNew_LengthMismatch(t *testing.T) {
	_, err := frame.New([]frame.Column{
		frame.Strings("k", "a", "b"),
		frame.Floats("v", 1, 2, 3),
	})
	assert.ErrorIs(t, err, frame.ErrLengthMismatch)
}

// TestNew_ValidateNaNInf checks the opt-in numeric policy.
func TestNew_ValidateNaNInf(t *testing.T) {
	cols := []frame.Column{frame.Floats("v", 1, math.NaN())}

	// Default policy: NaN passes through.
	_, err := frame.New(cols)
	assert.NoError(t, err, "validation is off by default")

	// Strict policy: NaN rejected.
	_, err = frame.New(cols, frame.WithValidateNaNInf())
	assert.ErrorIs(t, err, frame.ErrNaNInf)

	_, err = frame.New([]frame.Column{frame.Floats("v", math.Inf(1))}, frame.WithValidateNaNInf())
	assert.ErrorIs(t, err, frame.ErrNaNInf)
}

// TestNew_CopiesInput verifies the Frame owns its storage: mutating the
// constructor arguments afterwards must not leak into the Frame.
func TestNew_CopiesInput(t *testing.T) {
	vals := []float64{1, 2, 3}
	col := frame.Floats("v", vals...)
	f, err := frame.New([]frame.Column{col})
	require.NoError(t, err)

	vals[0] = 99

	got, err := f.Floats("v")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, got, "frame storage is independent of inputs")
}

// TestAccessors covers Column/Floats/Strings including kind mismatches.
func TestAccessors(t *testing.T) {
	f := sample(t)

	c, err := f.Column("weight")
	require.NoError(t, err)
	assert.Equal(t, frame.Float64, c.Kind())
	assert.Equal(t, 5, c.Len())

	_, err = f.Column("missing")
	assert.ErrorIs(t, err, frame.ErrColumnNotFound)

	_, err = f.Floats("species")
	assert.ErrorIs(t, err, frame.ErrKindMismatch)

	_, err = f.Strings("weight")
	assert.ErrorIs(t, err, frame.ErrKindMismatch)

	ws, err := f.Floats("weight")
	require.NoError(t, err)
	assert.InDelta(t, 22.5, ws[0], 0)
}

// TestClone verifies deep-copy semantics: the clone shares no storage.
func TestClone(t *testing.T) {
	f := sample(t)
	clone := f.Clone()

	// Mutate the original in place; the clone must not see it.
	_, err := f.AddWhere("weight", 7, func(int) bool { return true })
	require.NoError(t, err)

	orig, err := f.Floats("weight")
	require.NoError(t, err)
	copied, err := clone.Floats("weight")
	require.NoError(t, err)

	assert.InDelta(t, 29.5, orig[0], 1e-12, "original mutated")
	assert.InDelta(t, 22.5, copied[0], 1e-12, "clone untouched")
}

// TestCloneEmpty verifies schema-only cloning.
func TestCloneEmpty(t *testing.T) {
	f := sample(t)
	empty := f.CloneEmpty()

	assert.Equal(t, 0, empty.Len(), "no rows")
	assert.Equal(t, f.Names(), empty.Names(), "same schema")
}

// TestNilReceiver exercises the ErrNilFrame contract.
func TestNilReceiver(t *testing.T) {
	var f *frame.Frame

	_, err := f.Column("x")
	assert.ErrorIs(t, err, frame.ErrNilFrame)

	_, err = f.Select("x")
	assert.ErrorIs(t, err, frame.ErrNilFrame)

	_, err = f.Filter(func(int) bool { return true })
	assert.ErrorIs(t, err, frame.ErrNilFrame)

	_, err = f.AddWhere("x", 1, func(int) bool { return true })
	assert.ErrorIs(t, err, frame.ErrNilFrame)

	assert.Equal(t, 0, f.Len())
	assert.Equal(t, 0, f.Width())
}
