// Package srm implements SparseRowMatrix: a hash map from integer feature
// id to a fixed-width row of T, used as an embedding table. Lazy row
// creation, upsert/merge set-semantics, and the lock-guarded accessor
// variants are ported from
// original_source/include/deepx_core/tensor/sparse_row_matrix.h; the
// teacher has no hash-keyed sparse type of its own, so the panic-on-bad-
// dims convention is borrowed from compressed.go instead.
package srm

import (
	"fmt"
	"math/rand"

	"github.com/deepx-core/deepx-go/rwlock"
	"github.com/deepx-core/deepx-go/tensor"
)

// Integer is the set of row-key types a SparseRowMatrix may be indexed by.
type Integer interface {
	~int32 | ~int64 | ~uint32 | ~uint64
}

// Matrix is a hash map from row id to a dense row of col() elements.
// The zero value is an empty matrix with col 0; set the column width with
// SetCol before inserting any rows.
type Matrix[T tensor.Float, I Integer] struct {
	col      int
	rows     map[I][]T
	initType tensor.InitType
	param1   T
	param2   T
}

// New returns an empty matrix with the given row width.
func New[T tensor.Float, I Integer](col int) *Matrix[T, I] {
	return &Matrix[T, I]{col: col, rows: make(map[I][]T)}
}

// Col returns the row width.
func (m *Matrix[T, I]) Col() int { return m.col }

// SetCol sets the row width. It does not affect existing rows.
func (m *Matrix[T, I]) SetCol(col int) {
	m.col = col
	if m.rows == nil {
		m.rows = make(map[I][]T)
	}
}

// SetInitializer configures the lazy row initializer used by GetRow. Only
// InitNone, InitZeros, InitOnes, InitConstant, InitRand and InitRandN are
// valid; InitRand additionally requires param1 <= param2. It panics
// otherwise, mirroring set_initializer's DXTHROW_INVALID_ARGUMENT.
func (m *Matrix[T, I]) SetInitializer(initType tensor.InitType, param1, param2 T) {
	switch initType {
	case tensor.InitNone, tensor.InitZeros, tensor.InitOnes, tensor.InitConstant, tensor.InitRand, tensor.InitRandN:
	default:
		panic(fmt.Sprintf("srm: invalid initializer type %d", initType))
	}
	if initType == tensor.InitRand && param1 > param2 {
		panic(fmt.Sprintf("srm: invalid initializer params %v, %v", param1, param2))
	}
	m.initType = initType
	m.param1 = param1
	m.param2 = param2
}

// Reserve pre-sizes the internal map for at least n additional rows.
func (m *Matrix[T, I]) Reserve(n int) {
	if m.rows == nil {
		m.rows = make(map[I][]T, n)
		return
	}
	grown := make(map[I][]T, len(m.rows)+n)
	for k, v := range m.rows {
		grown[k] = v
	}
	m.rows = grown
}

// Clear resets the matrix to its zero state: no rows, col 0, no
// initializer.
func (m *Matrix[T, I]) Clear() {
	m.col = 0
	m.rows = make(map[I][]T)
	m.initType = tensor.InitNone
	m.param1 = 0
	m.param2 = 0
}

// Zeros removes every row but keeps col and the initializer.
func (m *Matrix[T, I]) Zeros() {
	m.rows = make(map[I][]T)
}

// Size returns the number of rows present.
func (m *Matrix[T, I]) Size() int { return len(m.rows) }

// Empty reports whether the matrix has no rows.
func (m *Matrix[T, I]) Empty() bool { return len(m.rows) == 0 }

func (m *Matrix[T, I]) checkCol(other int) {
	if m.col != other {
		panic(fmt.Sprintf("srm: inconsistent col %d vs %d", m.col, other))
	}
}

// Assign copies rowValue (length col()) into row, replacing whatever was
// there.
func (m *Matrix[T, I]) Assign(row I, rowValue []T) {
	if len(rowValue) != m.col {
		panic(fmt.Sprintf("srm: assign row length %d, want %d", len(rowValue), m.col))
	}
	dst := make([]T, m.col)
	copy(dst, rowValue)
	m.rows[row] = dst
}

// AssignView stores rowValue directly as row without copying; the caller
// must ensure rowValue outlives the matrix's use of it and is never
// mutated through another alias unless that mutation is intended to be
// visible through the matrix.
func (m *Matrix[T, I]) AssignView(row I, rowValue []T) {
	if len(rowValue) != m.col {
		panic(fmt.Sprintf("srm: assign_view row length %d, want %d", len(rowValue), m.col))
	}
	m.rows[row] = rowValue
}

// Upsert copies every row of other into the receiver, overwriting
// existing rows with the same id. It panics if the two matrices have
// different col.
func (m *Matrix[T, I]) Upsert(other *Matrix[T, I]) {
	m.checkCol(other.col)
	for id, row := range other.rows {
		m.Assign(id, row)
	}
}

// UpsertIf is Upsert filtered by keep, called with each candidate (id,
// row) pair from other; a row is copied only if keep returns true.
func (m *Matrix[T, I]) UpsertIf(other *Matrix[T, I], keep func(id I, row []T) bool) {
	m.checkCol(other.col)
	for id, row := range other.rows {
		if keep(id, row) {
			m.Assign(id, row)
		}
	}
}

// Merge copies every row of other into the receiver, leaving existing
// rows with the same id untouched (insert-if-absent).
func (m *Matrix[T, I]) Merge(other *Matrix[T, I]) {
	m.checkCol(other.col)
	for id, row := range other.rows {
		if _, ok := m.rows[id]; !ok {
			m.Assign(id, row)
		}
	}
}

// MergeIf is Merge filtered by keep.
func (m *Matrix[T, I]) MergeIf(other *Matrix[T, I], keep func(id I, row []T) bool) {
	m.checkCol(other.col)
	for id, row := range other.rows {
		if _, ok := m.rows[id]; ok {
			continue
		}
		if keep(id, row) {
			m.Assign(id, row)
		}
	}
}

// RemoveIf deletes every row for which remove returns true.
func (m *Matrix[T, I]) RemoveIf(remove func(id I, row []T) bool) {
	for id, row := range m.rows {
		if remove(id, row) {
			delete(m.rows, id)
		}
	}
}

// RemoveZeros deletes every row whose elements are all zero.
func (m *Matrix[T, I]) RemoveZeros() {
	m.RemoveIf(func(_ I, row []T) bool {
		for _, v := range row {
			if v != 0 {
				return false
			}
		}
		return true
	})
}

// GetRow returns row, creating and initializing it via engine and the
// configured initializer if absent.
func (m *Matrix[T, I]) GetRow(engine *rand.Rand, row I) []T {
	if v, ok := m.rows[row]; ok {
		return v
	}
	v := make([]T, m.col)
	m.initRow(engine, v)
	m.rows[row] = v
	return v
}

// GetRowNoInit returns row, creating a zero-filled row if absent.
func (m *Matrix[T, I]) GetRowNoInit(row I) []T {
	if v, ok := m.rows[row]; ok {
		return v
	}
	v := make([]T, m.col)
	m.rows[row] = v
	return v
}

// PeekRow returns row without creating it, reporting whether it was
// present. It is the const counterpart of GetRowNoInit.
func (m *Matrix[T, I]) PeekRow(row I) ([]T, bool) {
	v, ok := m.rows[row]
	return v, ok
}

// GetScalar is GetRow specialized to col() == 1, returning a pointer to
// the single element so callers can read or update it in place. It panics
// if col() != 1.
func (m *Matrix[T, I]) GetScalar(engine *rand.Rand, row I) *T {
	if m.col != 1 {
		panic("srm: get_scalar requires col() == 1")
	}
	return &m.GetRow(engine, row)[0]
}

// GetScalarNoInit is GetRowNoInit specialized to col() == 1.
func (m *Matrix[T, I]) GetScalarNoInit(row I) *T {
	if m.col != 1 {
		panic("srm: get_scalar_no_init requires col() == 1")
	}
	return &m.GetRowNoInit(row)[0]
}

// PeekScalar is PeekRow specialized to col() == 1, returning 0 if absent.
func (m *Matrix[T, I]) PeekScalar(row I) T {
	if m.col != 1 {
		panic("srm: peek_scalar requires col() == 1")
	}
	v, ok := m.rows[row]
	if !ok {
		return 0
	}
	return v[0]
}

func (m *Matrix[T, I]) initRow(engine *rand.Rand, v []T) {
	switch m.initType {
	case tensor.InitOnes:
		for i := range v {
			v[i] = 1
		}
	case tensor.InitConstant:
		for i := range v {
			v[i] = m.param1
		}
	case tensor.InitRand:
		span := float64(m.param2 - m.param1)
		for i := range v {
			v[i] = T(float64(m.param1) + engine.Float64()*span)
		}
	case tensor.InitRandN:
		for i := range v {
			v[i] = T(engine.NormFloat64()*float64(m.param2) + float64(m.param1))
		}
	}
}

// Range calls fn for every (id, row) pair. Iteration order is
// unspecified, matching Go's native map iteration. Range stops early if
// fn returns false.
func (m *Matrix[T, I]) Range(fn func(id I, row []T) bool) {
	for id, row := range m.rows {
		if !fn(id, row) {
			return
		}
	}
}

// Equal reports whether two matrices have equal col, initializer
// configuration, and row contents.
func (m *Matrix[T, I]) Equal(other *Matrix[T, I]) bool {
	if m.col != other.col {
		return false
	}
	if m.initType != other.initType || m.param1 != other.param1 || m.param2 != other.param2 {
		return false
	}
	if len(m.rows) != len(other.rows) {
		return false
	}
	for id, row := range m.rows {
		orow, ok := other.rows[id]
		if !ok || len(orow) != len(row) {
			return false
		}
		for i := range row {
			if row[i] != orow[i] {
				return false
			}
		}
	}
	return true
}
