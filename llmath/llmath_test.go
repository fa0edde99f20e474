package llmath

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestAxpyAxpby(t *testing.T) {
	y := []float64{1, 1, 1}
	Axpy(3, 2.0, []float64{1, 2, 3}, y)
	want := []float64{3, 5, 7}
	for i := range want {
		if y[i] != want[i] {
			t.Errorf("Axpy[%d] = %v, want %v", i, y[i], want[i])
		}
	}

	y2 := []float64{1, 1, 1}
	Axpby(3, 2.0, []float64{1, 2, 3}, 3.0, y2)
	want2 := []float64{5, 7, 9}
	for i := range want2 {
		if y2[i] != want2[i] {
			t.Errorf("Axpby[%d] = %v, want %v", i, y2[i], want2[i])
		}
	}
}

func TestElementwise(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{4, 5, 6}
	z := make([]float64, 3)

	Add(3, x, y, z)
	for i, v := range []float64{5, 7, 9} {
		if z[i] != v {
			t.Errorf("Add[%d] = %v, want %v", i, z[i], v)
		}
	}

	Mul(3, x, y, z)
	for i, v := range []float64{4, 10, 18} {
		if z[i] != v {
			t.Errorf("Mul[%d] = %v, want %v", i, z[i], v)
		}
	}
}

func TestBroadcastRowCol(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6} // 2x3
	row := []float64{10, 20, 30}
	z := make([]float64, 6)
	AddRow[float64](2, 3, x, row, z)
	want := []float64{11, 22, 33, 14, 25, 36}
	for i := range want {
		if z[i] != want[i] {
			t.Errorf("AddRow[%d] = %v, want %v", i, z[i], want[i])
		}
	}

	col := []float64{100, 200}
	AddCol[float64](2, 3, x, col, z)
	want2 := []float64{101, 102, 103, 204, 205, 206}
	for i := range want2 {
		if z[i] != want2[i] {
			t.Errorf("AddCol[%d] = %v, want %v", i, z[i], want2[i])
		}
	}
}

func TestUnaryOps(t *testing.T) {
	x := []float64{4, 9, 16}
	z := make([]float64, 3)
	Sqrt(3, x, z)
	for i, v := range []float64{2, 3, 4} {
		if !almostEqual(z[i], v, 1e-9) {
			t.Errorf("Sqrt[%d] = %v, want %v", i, z[i], v)
		}
	}
}

func TestSafeLogClamps(t *testing.T) {
	x := []float64{-5, 0, 1}
	z := make([]float64, 3)
	SafeLog(3, x, z)
	if math.IsInf(z[0], -1) || math.IsNaN(z[0]) {
		t.Errorf("SafeLog should clamp non-positive input, got %v", z[0])
	}
}

func TestSigmoidBounds(t *testing.T) {
	x := []float64{-100, 0, 100}
	z := make([]float64, 3)
	Sigmoid(3, x, z)
	if !almostEqual(z[1], 0.5, 1e-9) {
		t.Errorf("Sigmoid(0) = %v, want 0.5", z[1])
	}
	if z[0] < 0 || z[0] > 1 || z[2] < 0 || z[2] > 1 {
		t.Errorf("Sigmoid out of [0,1]: %v", z)
	}
}

func TestReductions(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	if got := Sum(4, x); got != 10 {
		t.Errorf("Sum = %v, want 10", got)
	}
	if got := Max(4, x); got != 4 {
		t.Errorf("Max = %v, want 4", got)
	}
	if got := Min(4, x); got != 1 {
		t.Errorf("Min = %v, want 1", got)
	}
	if got := Dot(4, x, x); got != 30 {
		t.Errorf("Dot = %v, want 30", got)
	}
}

func TestSoftmaxRowsSumToOne(t *testing.T) {
	x := []float64{1, 2, 3, 1, 1, 1}
	z := make([]float64, 6)
	Softmax(2, 3, x, z)
	for i := 0; i < 2; i++ {
		var sum float64
		for j := 0; j < 3; j++ {
			sum += z[i*3+j]
		}
		if !almostEqual(sum, 1, 1e-9) {
			t.Errorf("row %d softmax sums to %v, want 1", i, sum)
		}
	}
}

func TestGemvNoTrans(t *testing.T) {
	// A = [[1,2],[3,4],[5,6]] (3x2), x = [1,1]
	a := []float64{1, 2, 3, 4, 5, 6}
	x := []float64{1, 1}
	y := []float64{0, 0, 0}
	Gemv(false, 3, 2, 1.0, a, 2, x, 0.0, y)
	want := []float64{3, 7, 11}
	for i := range want {
		if !almostEqual(y[i], want[i], 1e-9) {
			t.Errorf("Gemv[%d] = %v, want %v", i, y[i], want[i])
		}
	}
}

func TestGemvTrans(t *testing.T) {
	// A = [[1,2],[3,4],[5,6]] (3x2); A^T*x for x length 3
	a := []float64{1, 2, 3, 4, 5, 6}
	x := []float64{1, 1, 1}
	y := []float64{0, 0}
	Gemv(true, 3, 2, 1.0, a, 2, x, 0.0, y)
	want := []float64{9, 12}
	for i := range want {
		if !almostEqual(y[i], want[i], 1e-9) {
			t.Errorf("GemvT[%d] = %v, want %v", i, y[i], want[i])
		}
	}
}

func TestGemmNoTrans(t *testing.T) {
	// X (2x3) * Y (3x2) = Z (2x2)
	x := []float64{1, 2, 3, 4, 5, 6}
	y := []float64{7, 8, 9, 10, 11, 12}
	z := make([]float64, 4)
	Gemm(false, false, 2, 2, 3, 1.0, x, y, 0.0, z)
	want := []float64{58, 64, 139, 154}
	for i := range want {
		if !almostEqual(z[i], want[i], 1e-9) {
			t.Errorf("Gemm[%d] = %v, want %v", i, z[i], want[i])
		}
	}
}

func TestGemmBetaAccumulates(t *testing.T) {
	x := []float64{1, 0, 0, 1} // 2x2 identity
	y := []float64{1, 2, 3, 4}
	z := []float64{10, 10, 10, 10}
	Gemm(false, false, 2, 2, 2, 1.0, x, y, 1.0, z)
	want := []float64{11, 12, 13, 14}
	for i := range want {
		if !almostEqual(z[i], want[i], 1e-9) {
			t.Errorf("Gemm accumulate[%d] = %v, want %v", i, z[i], want[i])
		}
	}
}
