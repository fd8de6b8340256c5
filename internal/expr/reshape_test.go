package expr

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferReshape(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		dims    []int
		want    Shape
		wantErr bool
	}{
		{"explicit", 6, []int{2, 3}, Shape{2, 3}, false},
		{"infer first", 6, []int{-1, 3}, Shape{2, 3}, false},
		{"infer last", 50, []int{5, -1}, Shape{5, 10}, false},
		{"infer only", 6, []int{-1}, Shape{6}, false},
		{"count mismatch", 4, []int{3}, nil, true},
		{"two placeholders", 6, []int{-1, -1}, nil, true},
		{"not divisible", 7, []int{-1, 3}, nil, true},
		{"invalid extent", 6, []int{-2, 3}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := inferReshape(tt.size, tt.dims)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrShapeMismatch))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReshapeInferredShape(t *testing.T) {
	g := coordGen(t) // shape (2, 3)

	v, err := g.Reshape(-1, 3)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3}, v.Shape())
	assert.Equal(t, 6, v.Size())
	assert.Equal(t, 2, v.Dimension())
	assert.Equal(t, LayoutDynamic, v.Layout())
	assert.False(t, v.HasLinearAssign([]int{3, 1}))
}

func TestReshapeRoundTrip(t *testing.T) {
	g := coordGen(t)

	flat, err := g.Reshape(6)
	require.NoError(t, err)
	back, err := flat.Reshape(2, 3)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, g.Call(i, j), back.Call(i, j), "round trip at (%d,%d)", i, j)
		}
	}
}

func TestReshapePreservesRowMajorOrder(t *testing.T) {
	g := coordGen(t)

	v, err := g.Reshape(3, 2)
	require.NoError(t, err)

	want := []int{0, 1, 2, 10, 11, 12} // row-major order of the source
	got := collect(v.StepperBegin(v.Shape()))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("reshape changed element order (-want +got):\n%s", diff)
	}

	// Spot checks through direct indexing.
	assert.Equal(t, 2, v.Call(1, 0))
	assert.Equal(t, 12, v.Call(2, 1))
}

func TestReshapeCountMismatch(t *testing.T) {
	g, err := Generate(func(c []int) int { return c[len(c)-1] }, Shape{4})
	require.NoError(t, err)

	_, err = g.Reshape(3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShapeMismatch))
}

func TestReshapeViewIndexing(t *testing.T) {
	g := coordGen(t)
	v, err := g.Reshape(6)
	require.NoError(t, err)

	assert.Equal(t, 10, v.Flat(3))

	got, err := v.At(4)
	require.NoError(t, err)
	assert.Equal(t, 11, got)

	_, err = v.At(6)
	assert.True(t, errors.Is(err, ErrOutOfRange))
}

func TestReshapeViewBroadcastShape(t *testing.T) {
	g := coordGen(t)
	v, err := g.Reshape(6)
	require.NoError(t, err)

	acc := Shape{4, 6}
	trivial, err := v.BroadcastShape(&acc)
	require.NoError(t, err)
	assert.True(t, trivial)
	assert.Equal(t, Shape{4, 6}, acc)
}

func TestReshapeViewAssignTo(t *testing.T) {
	g := coordGen(t)
	v, err := g.Reshape(3, 2)
	require.NoError(t, err)

	dst := &Array[int]{}
	require.NoError(t, v.AssignTo(dst))
	assert.Equal(t, Shape{3, 2}, dst.Shape())
	assert.Equal(t, []int{0, 1, 2, 10, 11, 12}, dst.Data())
}

func TestReshapeOfReshapeUsesSource(t *testing.T) {
	g := coordGen(t)

	v, err := g.Reshape(6)
	require.NoError(t, err)
	w, err := v.Reshape(-1, 2)
	require.NoError(t, err)

	assert.Equal(t, Shape{3, 2}, w.Shape())
	assert.Equal(t, []int{0, 1, 2, 10, 11, 12}, collect(w.StepperBegin(w.Shape())))
}
