package expr

import (
	"errors"
	"testing"
)

func TestNewArray(t *testing.T) {
	a, err := NewArray[float32](Shape{2, 3})
	if err != nil {
		t.Fatalf("NewArray: %v", err)
	}
	if a.Size() != 6 || a.Dimension() != 2 {
		t.Errorf("size/dimension = %d/%d, want 6/2", a.Size(), a.Dimension())
	}
	if a.Layout() != LayoutRowMajor {
		t.Errorf("layout = %v, want row-major", a.Layout())
	}
	for i, v := range a.Data() {
		if v != 0 {
			t.Errorf("element %d not zero-initialized: %v", i, v)
		}
	}

	if _, err := NewArray[int](Shape{2, -1}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("negative extent: expected ErrShapeMismatch, got %v", err)
	}
}

func TestFromSlice(t *testing.T) {
	a, err := FromSlice([]int{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}

	got, err := a.At(1, 2)
	if err != nil {
		t.Fatalf("At: %v", err)
	}
	if got != 6 {
		t.Errorf("At(1,2) = %d, want 6", got)
	}

	if _, err := FromSlice([]int{1, 2, 3}, Shape{2, 3}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("count mismatch: expected ErrShapeMismatch, got %v", err)
	}
}

func TestArraySetAt(t *testing.T) {
	a, err := NewArray[int](Shape{2, 2})
	if err != nil {
		t.Fatal(err)
	}

	if err := a.Set([]int{1, 0}, 42); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := a.At(1, 0)
	if err != nil {
		t.Fatalf("At: %v", err)
	}
	if got != 42 {
		t.Errorf("At(1,0) = %d, want 42", got)
	}

	if err := a.Set([]int{2, 0}, 1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("out-of-range Set: expected ErrOutOfRange, got %v", err)
	}
	if _, err := a.At(0, 2); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("out-of-range At: expected ErrOutOfRange, got %v", err)
	}
}

func TestArrayResize(t *testing.T) {
	a, err := NewArray[int](Shape{4})
	if err != nil {
		t.Fatal(err)
	}
	copy(a.Data(), []int{1, 2, 3, 4})

	// Same element count keeps the contents.
	if err := a.Resize(Shape{2, 2}); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if got, _ := a.At(1, 1); got != 4 {
		t.Errorf("after count-preserving resize At(1,1) = %d, want 4", got)
	}

	// Different count reallocates.
	if err := a.Resize(Shape{3}); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if len(a.Data()) != 3 {
		t.Errorf("len(Data()) = %d, want 3", len(a.Data()))
	}
	for i, v := range a.Data() {
		if v != 0 {
			t.Errorf("element %d not zeroed after reallocation: %d", i, v)
		}
	}
}

func TestArrayAsExpression(t *testing.T) {
	a, err := FromSlice([]int{0, 1, 2, 10, 11, 12}, Shape{2, 3})
	if err != nil {
		t.Fatal(err)
	}

	// Element with excess leading coordinates, like any expression.
	if got := a.Element([]int{9, 1, 2}); got != 12 {
		t.Errorf("Element(9,1,2) = %d, want 12", got)
	}

	// Steppers walk it in row-major order.
	want := []int{0, 1, 2, 10, 11, 12}
	got := collect(a.StepperBegin(a.Shape()))
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("stepper order = %v, want %v", got, want)
		}
	}

	// Reshape produces a lazy view over the storage.
	v, err := a.Reshape(3, -1)
	if err != nil {
		t.Fatalf("Reshape: %v", err)
	}
	assertEqualShape(t, Shape{3, 2}, v.Shape(), "array reshape")
	if got := v.Call(2, 1); got != 12 {
		t.Errorf("view Call(2,1) = %d, want 12", got)
	}

	// Broadcast into a higher-rank accumulator.
	acc := Shape{4, 2, 3}
	trivial, err := a.BroadcastShape(&acc)
	if err != nil {
		t.Fatalf("BroadcastShape: %v", err)
	}
	if !trivial {
		t.Error("matching trailing extents should be a trivial broadcast")
	}
}

func TestArrayAssignRoundTrip(t *testing.T) {
	g := coordGen(t)

	dst := &Array[int]{}
	if err := g.AssignTo(dst); err != nil {
		t.Fatalf("AssignTo: %v", err)
	}

	// The materialized array and the lazy source agree everywhere.
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			got, err := dst.At(i, j)
			if err != nil {
				t.Fatalf("At(%d,%d): %v", i, j, err)
			}
			if got != g.Call(i, j) {
				t.Errorf("materialized (%d,%d) = %d, want %d", i, j, got, g.Call(i, j))
			}
		}
	}
}
