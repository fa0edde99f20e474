// Package csr implements CSRMatrix, the compressed-sparse-row input format
// used to hand mini-batch feature slices to LLSparseTensor. Its storage
// layout and field names follow the teacher's compressedSparse type
// (indptr/ind/data, three parallel arrays); unlike the teacher's CSR, rows
// carry a generic value type T and a generic integer column-id type I,
// and the matrix is built row-at-a-time via Builder rather than via
// arbitrary (i, j) Set calls, since mini-batches are always appended in
// row order.
package csr

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Integer is the set of column-id types a CSRMatrix may index with.
type Integer interface {
	constraints.Integer
}

// Value is the set of element types a CSRMatrix may store.
type Value interface {
	~float32 | ~float64
}

// Matrix is a compressed sparse row matrix: m rows, an unspecified number
// of columns (bounded only by the largest column id seen), and nnz
// non-zero entries stored as parallel ind/data arrays addressed through
// indptr.
type Matrix[T Value, I Integer] struct {
	rows   int
	indptr []int
	ind    []I
	data   []T
}

// New wraps existing indptr/ind/data slices as a Matrix without copying,
// mirroring the teacher's NewCSR: the slices become the matrix's backing
// storage, so further mutation of them is reflected in the matrix.
// len(indptr) must equal rows+1.
func New[T Value, I Integer](rows int, indptr []int, ind []I, data []T) *Matrix[T, I] {
	if len(indptr) != rows+1 {
		panic(fmt.Sprintf("csr: len(indptr) = %d, want %d", len(indptr), rows+1))
	}
	if len(ind) != len(data) {
		panic(fmt.Sprintf("csr: len(ind) = %d != len(data) = %d", len(ind), len(data)))
	}
	return &Matrix[T, I]{rows: rows, indptr: indptr, ind: ind, data: data}
}

// Rows returns the number of rows.
func (m *Matrix[T, I]) Rows() int { return m.rows }

// NNZ returns the number of non-zero (stored) entries.
func (m *Matrix[T, I]) NNZ() int { return len(m.data) }

// RowNNZ returns the number of stored entries in row i. It panics if i is
// out of range.
func (m *Matrix[T, I]) RowNNZ(i int) int {
	m.checkRow(i)
	return m.indptr[i+1] - m.indptr[i]
}

// Row returns the column ids and values stored for row i, as slices into
// the matrix's own backing storage. It panics if i is out of range.
func (m *Matrix[T, I]) Row(i int) (cols []I, vals []T) {
	m.checkRow(i)
	lo, hi := m.indptr[i], m.indptr[i+1]
	return m.ind[lo:hi], m.data[lo:hi]
}

// At returns the value stored at (i, col), scanning row i linearly; it
// returns the zero value of T if col is absent from the row's sparsity
// pattern. It panics if i is out of range.
func (m *Matrix[T, I]) At(i int, col I) T {
	cols, vals := m.Row(i)
	for k, c := range cols {
		if c == col {
			return vals[k]
		}
	}
	var zero T
	return zero
}

func (m *Matrix[T, I]) checkRow(i int) {
	if i < 0 || i >= m.rows {
		panic(fmt.Sprintf("csr: row index %d out of range [0,%d)", i, m.rows))
	}
}

// Builder incrementally constructs a Matrix by appending whole rows, the
// efficient access pattern for CSR (the teacher's own comment on
// compressedSparse notes CSR is "poor for constructing sparse matrices
// incrementally but very good for arithmetic operations" via arbitrary
// (i,j) Set; appending complete rows in order avoids that cost entirely).
type Builder[T Value, I Integer] struct {
	indptr []int
	ind    []I
	data   []T
}

// NewBuilder returns an empty Builder.
func NewBuilder[T Value, I Integer]() *Builder[T, I] {
	return &Builder[T, I]{indptr: []int{0}}
}

// AddRow appends a row whose non-zero columns and values are cols and
// vals. cols and vals must have equal length; neither is required to be
// sorted, matching the teacher's permissive (i,j) Set semantics.
func (b *Builder[T, I]) AddRow(cols []I, vals []T) {
	if len(cols) != len(vals) {
		panic(fmt.Sprintf("csr: AddRow len(cols) = %d != len(vals) = %d", len(cols), len(vals)))
	}
	b.ind = append(b.ind, cols...)
	b.data = append(b.data, vals...)
	b.indptr = append(b.indptr, len(b.data))
}

// Build finalizes the builder into a Matrix that shares the builder's
// backing arrays; a later Reset and AddRow on the builder overwrite them.
func (b *Builder[T, I]) Build() *Matrix[T, I] {
	return &Matrix[T, I]{
		rows:   len(b.indptr) - 1,
		indptr: b.indptr,
		ind:    b.ind,
		data:   b.data,
	}
}

// Reset clears the builder's rows while retaining its backing arrays, so
// a Builder drawn from a Pool can be refilled for the next mini-batch
// without reallocating indptr/ind/data.
func (b *Builder[T, I]) Reset() {
	b.indptr = append(b.indptr[:0], 0)
	b.ind = b.ind[:0]
	b.data = b.data[:0]
}
