package tensor

import (
	"bytes"
	"math"
	"math/rand"
	"testing"

	"github.com/deepx-core/deepx-go/shape"
)

func TestNewAndAccessors(t *testing.T) {
	tn := New[float64](2, 3)
	if tn.Rank() != 2 || tn.Dim(0) != 2 || tn.Dim(1) != 3 || tn.TotalDim() != 6 {
		t.Fatalf("unexpected shape: rank=%d dims=%v", tn.Rank(), tn.Shape().Dims())
	}
	if tn.IsView() {
		t.Error("New tensor should not be a view")
	}
	if tn.IsNull() {
		t.Error("New tensor with dims should not be null")
	}
	if len(tn.Data()) != 6 {
		t.Fatalf("len(Data()) = %d, want 6", len(tn.Data()))
	}
}

func TestEmptyIsNull(t *testing.T) {
	e := Empty[float32]()
	if !e.IsNull() {
		t.Error("Empty tensor should be null")
	}
	if e.TotalDim() != 1 {
		t.Errorf("scalar-shaped empty tensor TotalDim() = %d, want 1", e.TotalDim())
	}
}

func TestViewSharesStorage(t *testing.T) {
	data := []float64{1, 2, 3, 4}
	v := View(newShapeHelper(4), data)
	if !v.IsView() {
		t.Error("View should report IsView() true")
	}
	v.Data()[0] = 99
	if data[0] != 99 {
		t.Error("mutating view data should mutate backing slice")
	}
}

func TestViewRejectsMismatchedLength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for mismatched view length")
		}
	}()
	View(newShapeHelper(3), []float64{1, 2})
}

func TestResizePreservesDataWhenTotalDimUnchanged(t *testing.T) {
	tn := New[int32](2, 3)
	tn.SetData([]int32{1, 2, 3, 4, 5, 6})
	tn.Resize(3, 2)
	if tn.TotalDim() != 6 {
		t.Fatalf("TotalDim() = %d, want 6", tn.TotalDim())
	}
	for i, v := range tn.Data() {
		if v != int32(i+1) {
			t.Errorf("data[%d] = %d, want %d (resize with same total dim must keep storage)", i, v, i+1)
		}
	}
}

func TestResizeRejectsView(t *testing.T) {
	data := []float64{1, 2}
	v := View(newShapeHelper(2), data)
	defer func() {
		if recover() == nil {
			t.Error("expected panic resizing a view")
		}
	}()
	v.Resize(4)
}

func TestReshapeSharesStorage(t *testing.T) {
	tn := New[float64](2, 3)
	tn.SetData([]float64{1, 2, 3, 4, 5, 6})
	tn.Reshape(3, -1)
	if tn.Dim(0) != 3 || tn.Dim(1) != 2 {
		t.Fatalf("reshaped dims = %v, want [3 2]", tn.Shape().Dims())
	}
	if tn.Data()[5] != 6 {
		t.Error("reshape must not move data")
	}
}

func TestAtReturnsRowView(t *testing.T) {
	tn := New[float64](3, 2)
	tn.SetData([]float64{1, 2, 3, 4, 5, 6})
	row := tn.At(1)
	if row.Rank() != 1 || row.Dim(0) != 2 {
		t.Fatalf("row shape = %v, want [2]", row.Shape().Dims())
	}
	if row.Data()[0] != 3 || row.Data()[1] != 4 {
		t.Fatalf("row data = %v, want [3 4]", row.Data())
	}
	row.Data()[0] = 100
	if tn.Data()[2] != 100 {
		t.Error("At() row should share storage with the parent tensor")
	}
}

func TestAtOutOfRangePanics(t *testing.T) {
	tn := New[float64](2)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range At()")
		}
	}()
	tn.At(5)
}

func TestEqual(t *testing.T) {
	a := New[int32](2, 2)
	a.SetData([]int32{1, 2, 3, 4})
	b := New[int32](2, 2)
	b.SetData([]int32{1, 2, 3, 4})
	if !a.Equal(b) {
		t.Error("identical tensors should be Equal")
	}
	b.Data()[0] = 9
	if a.Equal(b) {
		t.Error("differing tensors should not be Equal")
	}
}

func TestZerosAndConstant(t *testing.T) {
	tn := New[float64](3)
	tn.Constant(5)
	for _, v := range tn.Data() {
		if v != 5 {
			t.Errorf("Constant fill failed, got %v", v)
		}
	}
	tn.Zeros()
	for _, v := range tn.Data() {
		if v != 0 {
			t.Errorf("Zeros fill failed, got %v", v)
		}
	}
}

func TestSetOnesAndArange(t *testing.T) {
	tn := New[int32](4)
	SetOnes(tn)
	for _, v := range tn.Data() {
		if v != 1 {
			t.Errorf("SetOnes failed, got %v", v)
		}
	}
	Arange(tn)
	for i, v := range tn.Data() {
		if v != int32(i) {
			t.Errorf("Arange[%d] = %d, want %d", i, v, i)
		}
	}
}

func TestRandBounds(t *testing.T) {
	tn := New[float64](100)
	engine := rand.New(rand.NewSource(1))
	Rand(tn, engine, -1, 1)
	for _, v := range tn.Data() {
		if v < -1 || v >= 1 {
			t.Fatalf("Rand produced out-of-range value %v", v)
		}
	}
}

func TestRandRejectsInvertedBounds(t *testing.T) {
	tn := New[float64](1)
	engine := rand.New(rand.NewSource(1))
	defer func() {
		if recover() == nil {
			t.Error("expected panic for min > max")
		}
	}()
	Rand(tn, engine, 1, -1)
}

func TestRandLecunRequiresRank2(t *testing.T) {
	tn := New[float64](4)
	engine := rand.New(rand.NewSource(1))
	defer func() {
		if recover() == nil {
			t.Error("expected panic for rank-1 variance-scaling initializer")
		}
	}()
	RandLecun(tn, engine)
}

func TestRandInitDispatch(t *testing.T) {
	tn := New[float64](2, 2)
	engine := rand.New(rand.NewSource(1))
	RandInit(tn, engine, InitConstant, 7, 0)
	for _, v := range tn.Data() {
		if v != 7 {
			t.Errorf("InitConstant dispatch failed, got %v", v)
		}
	}
}

func TestStats(t *testing.T) {
	tn := New[float64](4)
	tn.SetData([]float64{1, 2, 3, 4})
	if got := Sum(tn); got != 10 {
		t.Errorf("Sum = %v, want 10", got)
	}
	if got := Mean(tn); got != 2.5 {
		t.Errorf("Mean = %v, want 2.5", got)
	}
	if got := Asum(tn); got != 10 {
		t.Errorf("Asum = %v, want 10", got)
	}
	wantVar := 1.25
	if got := Var(tn); math.Abs(float64(got)-wantVar) > 1e-9 {
		t.Errorf("Var = %v, want %v", got, wantVar)
	}
	if got := Std(tn); math.Abs(float64(got)-math.Sqrt(wantVar)) > 1e-9 {
		t.Errorf("Std = %v, want %v", got, math.Sqrt(wantVar))
	}
}

func TestStatsEmptyTensor(t *testing.T) {
	tn := Empty[float64]()
	tn.data = nil
	if got := Mean(tn); got != 0 {
		t.Errorf("Mean of empty tensor = %v, want 0", got)
	}
	if got := Var(tn); got != 0 {
		t.Errorf("Var of empty tensor = %v, want 0", got)
	}
}

func TestWriteToReadFromRoundTrip(t *testing.T) {
	tn := New[float64](2, 3)
	tn.SetData([]float64{1, 2, 3, 4, 5, 6})

	var buf bytes.Buffer
	if _, err := tn.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	out := New[float64]()
	if _, err := out.ReadFrom(&buf); err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	if !out.Equal(tn) {
		t.Errorf("round-tripped tensor = %v, want %v", out.Data(), tn.Data())
	}
}

func TestWriteToReadFromStrings(t *testing.T) {
	tn := New[string](3)
	tn.SetData([]string{"alpha", "", "gamma"})

	var buf bytes.Buffer
	if _, err := tn.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	out := New[string]()
	if _, err := out.ReadFrom(&buf); err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	if !out.Equal(tn) {
		t.Errorf("round-tripped string tensor = %v, want %v", out.Data(), tn.Data())
	}
}

func TestAsMatrix(t *testing.T) {
	tn := New[float64](2, 2)
	tn.SetData([]float64{1, 2, 3, 4})
	m := AsMatrix(tn)
	r, c := m.Dims()
	if r != 2 || c != 2 {
		t.Fatalf("Dims() = (%d,%d), want (2,2)", r, c)
	}
	if m.At(1, 0) != 3 {
		t.Errorf("At(1,0) = %v, want 3", m.At(1, 0))
	}
}

// newShapeHelper builds a rank-1 shape.Shape of the given dimension.
func newShapeHelper(n int) shape.Shape {
	return shape.New(n)
}
