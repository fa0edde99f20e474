// Package tensor implements DeepX-Go's dense N-D array type: an
// owned-or-viewing buffer over float32, float64, int32, int64 or string,
// addressed through a shape.Shape.
//
// A Tensor is "owning" when it allocated its own backing slice and
// "viewing" when it aliases foreign storage (e.g. a row slice of another
// Tensor, or a buffer handed in by a caller). Viewing tensors forbid
// Resize and ReadFrom, matching the teacher's panic-on-misuse style in
// compressed.go.
package tensor

import (
	"fmt"

	"github.com/deepx-core/deepx-go/shape"
)

// Elem is the set of element types a Tensor may hold.
type Elem interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~string
}

// Number is the subset of Elem that supports arithmetic.
type Number interface {
	~float32 | ~float64 | ~int32 | ~int64
}

// Float is the subset of Number with floating-point semantics.
type Float interface {
	~float32 | ~float64
}

// Tensor is a dense, row-major N-D array over T.
type Tensor[T Elem] struct {
	shape shape.Shape
	data  []T
	view  bool
}

// New allocates an owning Tensor of the given dimensions, zero-initialized.
func New[T Elem](dims ...int) *Tensor[T] {
	s := shape.New(dims...)
	return &Tensor[T]{shape: s, data: make([]T, s.TotalDim())}
}

// Empty returns a null Tensor (no shape, no backing storage).
func Empty[T Elem]() *Tensor[T] {
	return &Tensor[T]{}
}

// View returns a Tensor that aliases data without copying it. The caller
// must ensure data outlives the returned Tensor and any of its sub-views.
// data's length must equal s.TotalDim().
func View[T Elem](s shape.Shape, data []T) *Tensor[T] {
	if len(data) != s.TotalDim() {
		panic(fmt.Sprintf("tensor: view data length %d does not match shape total dim %d", len(data), s.TotalDim()))
	}
	return &Tensor[T]{shape: s, data: data, view: true}
}

// Shape returns the tensor's shape.
func (t *Tensor[T]) Shape() shape.Shape { return t.shape }

// Dim returns the i'th dimension of the tensor's shape.
func (t *Tensor[T]) Dim(i int) int { return t.shape.Dim(i) }

// Rank returns the tensor's rank.
func (t *Tensor[T]) Rank() int { return t.shape.Rank() }

// TotalDim returns the total number of elements.
func (t *Tensor[T]) TotalDim() int { return t.shape.TotalDim() }

// IsView reports whether the tensor aliases foreign storage.
func (t *Tensor[T]) IsView() bool { return t.view }

// IsNull reports whether the tensor has no backing storage.
func (t *Tensor[T]) IsNull() bool { return t.data == nil }

// Data returns the tensor's backing slice, shared with the tensor itself
// (and, for views, with whatever storage it aliases). Mutating the
// returned slice mutates the tensor.
func (t *Tensor[T]) Data() []T { return t.data }

// Resize replaces an owning tensor's shape and storage. It panics if the
// tensor is a view. Unless the new total dim equals the current one, the
// existing contents are discarded and the new storage is zero-initialized.
func (t *Tensor[T]) Resize(dims ...int) {
	if t.view {
		panic("tensor: cannot resize a view")
	}
	newShape := shape.New(dims...)
	if newShape.TotalDim() != t.shape.TotalDim() {
		t.data = make([]T, newShape.TotalDim())
	}
	t.shape = newShape
}

// Reshape replaces the tensor's shape with one that preserves TotalDim,
// resolving at most one -1 wildcard. It never copies or moves data: the
// existing backing slice is reinterpreted under the new shape. Works for
// both owning and viewing tensors.
func (t *Tensor[T]) Reshape(dims ...int) {
	t.shape = t.shape.Reshape(dims...)
}

// At returns a view into row i: a Tensor of rank Rank()-1 sharing the
// receiver's storage. It panics if the tensor is rank 0 or i is out of
// range.
func (t *Tensor[T]) At(i int) *Tensor[T] {
	if t.shape.Rank() == 0 {
		panic("tensor: cannot index a scalar")
	}
	dim0 := t.shape.Dim(0)
	if i < 0 || i >= dim0 {
		panic(fmt.Sprintf("tensor: index %d out of range [0,%d)", i, dim0))
	}
	sub := shape.New(subdims(t.shape)...)
	stride := sub.TotalDim()
	return &Tensor[T]{shape: sub, data: t.data[i*stride : (i+1)*stride : (i+1)*stride], view: true}
}

// subdims returns s's dimensions with the leading one removed, used by At
// to build the rank-1-lower sub-view shape.
func subdims(s shape.Shape) []int {
	dims := s.Dims()
	if len(dims) == 0 {
		return nil
	}
	return dims[1:]
}

// SetData copies src into the tensor's storage. The lengths of src and the
// tensor's TotalDim must match.
func (t *Tensor[T]) SetData(src []T) {
	if len(src) != t.TotalDim() {
		panic(fmt.Sprintf("tensor: set_data length %d does not match total dim %d", len(src), t.TotalDim()))
	}
	copy(t.data, src)
}

// Equal reports whether two tensors have the same shape and equal
// elements.
func (t *Tensor[T]) Equal(other *Tensor[T]) bool {
	if !t.shape.Equal(other.shape) {
		return false
	}
	if len(t.data) != len(other.data) {
		return false
	}
	for i := range t.data {
		if t.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// Zeros fills the tensor with the zero value of T.
func (t *Tensor[T]) Zeros() {
	var zero T
	for i := range t.data {
		t.data[i] = zero
	}
}

// Constant fills the tensor with c.
func (t *Tensor[T]) Constant(c T) {
	for i := range t.data {
		t.data[i] = c
	}
}
