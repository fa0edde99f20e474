package tensor

import "gonum.org/v1/gonum/mat"

// AsMatrix adapts a rank-2 float64 Tensor to gonum's mat.Matrix interface,
// so it interoperates with the wider gonum ecosystem the way the teacher's
// CSR/CSC types do via mat64.Matrix (matrix.go). The returned value shares
// storage with t; mutating one mutates the other.
func AsMatrix(t *Tensor[float64]) mat.Matrix {
	return matrixView{t}
}

type matrixView struct {
	t *Tensor[float64]
}

func (m matrixView) Dims() (r, c int) {
	if m.t.shape.Rank() != 2 {
		panic("tensor: AsMatrix requires a rank-2 tensor")
	}
	return m.t.shape.Dim(0), m.t.shape.Dim(1)
}

func (m matrixView) At(i, j int) float64 {
	r, c := m.Dims()
	if i < 0 || i >= r || j < 0 || j >= c {
		panic("tensor: matrix index out of range")
	}
	return m.t.data[i*c+j]
}

func (m matrixView) T() mat.Matrix {
	return mat.Transpose{Matrix: m}
}

// Set implements mat.Mutable so the view can be passed to gonum routines
// that write results in place.
func (m matrixView) Set(i, j int, v float64) {
	_, c := m.Dims()
	m.t.data[i*c+j] = v
}
