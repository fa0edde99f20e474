// Package llmath implements the BLAS-like kernel table shared by dense
// Tensor math and the sparse bridging ops in package llsparse: axpy-style
// fused updates, elementwise arithmetic with row/column broadcast,
// unary/trig transforms, reductions, softmax, and gemv/gemm. Kernel
// shapes follow the teacher's blas package (Dusmv/Dusmm's alpha/beta and
// leading-dimension conventions); float64 Sum and Dot fast-path through
// github.com/gonum/floats the way vector.go does, and the dense gemm
// fast path wires gonum.org/v1/gonum/blas/blas64.
package llmath

// Float is the set of element types the kernel table operates on.
type Float interface {
	~float32 | ~float64
}

func asFloat64Slice[T Float](s []T) ([]float64, bool) {
	f, ok := any(s).([]float64)
	return f, ok
}
