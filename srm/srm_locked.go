package srm

import (
	"math/rand"

	"github.com/deepx-core/deepx-go/rwlock"
)

// UpsertLocked is Upsert guarded by lock: it double-checks row presence
// under a read lock before escalating to a write lock for each row,
// mirroring sparse_row_matrix.h's lock-guarded upsert/assign overloads
// used by Hogwild!-style concurrent training.
func (m *Matrix[T, I]) UpsertLocked(other *Matrix[T, I], lock *rwlock.RWLock) {
	m.checkCol(other.col)
	for id, row := range other.rows {
		m.AssignLocked(id, row, lock)
	}
}

// UpsertIfLocked is UpsertLocked filtered by keep.
func (m *Matrix[T, I]) UpsertIfLocked(other *Matrix[T, I], keep func(id I, row []T) bool, lock *rwlock.RWLock) {
	m.checkCol(other.col)
	for id, row := range other.rows {
		if keep(id, row) {
			m.AssignLocked(id, row, lock)
		}
	}
}

// AssignLocked copies rowValue into row, first creating the row under
// lock (without initializer content) if it is absent. The copy itself
// runs after the lock is released.
func (m *Matrix[T, I]) AssignLocked(row I, rowValue []T, lock *rwlock.RWLock) {
	if len(rowValue) != m.col {
		panic("srm: assign row length mismatch")
	}
	dst := m.GetRowNoInitLocked(row, lock)
	copy(dst, rowValue)
}

// GetRowLocked is GetRow's double-checked-locking variant: row presence
// is probed under a read lock first; only on a miss is the write lock
// acquired to create and initialize the row (re-checking under the write
// lock, since another goroutine may have created it in the interim).
func (m *Matrix[T, I]) GetRowLocked(engine *rand.Rand, row I, lock *rwlock.RWLock) []T {
	lock.RLock()
	if v, ok := m.rows[row]; ok {
		lock.RUnlock()
		return v
	}
	lock.RUnlock()

	lock.Lock()
	defer lock.Unlock()
	if v, ok := m.rows[row]; ok {
		return v
	}
	v := make([]T, m.col)
	m.initRow(engine, v)
	m.rows[row] = v
	return v
}

// GetRowNoInitLocked is GetRowNoInit's double-checked-locking variant.
func (m *Matrix[T, I]) GetRowNoInitLocked(row I, lock *rwlock.RWLock) []T {
	lock.RLock()
	if v, ok := m.rows[row]; ok {
		lock.RUnlock()
		return v
	}
	lock.RUnlock()

	lock.Lock()
	defer lock.Unlock()
	if v, ok := m.rows[row]; ok {
		return v
	}
	v := make([]T, m.col)
	m.rows[row] = v
	return v
}

// PeekRowLocked is PeekRow taken under a read lock.
func (m *Matrix[T, I]) PeekRowLocked(row I, lock *rwlock.RWLock) ([]T, bool) {
	lock.RLock()
	defer lock.RUnlock()
	v, ok := m.rows[row]
	return v, ok
}

// GetScalarLocked is GetScalar's double-checked-locking variant.
func (m *Matrix[T, I]) GetScalarLocked(engine *rand.Rand, row I, lock *rwlock.RWLock) *T {
	if m.col != 1 {
		panic("srm: get_scalar requires col() == 1")
	}
	return &m.GetRowLocked(engine, row, lock)[0]
}

// GetScalarNoInitLocked is GetScalarNoInit's double-checked-locking
// variant.
func (m *Matrix[T, I]) GetScalarNoInitLocked(row I, lock *rwlock.RWLock) *T {
	if m.col != 1 {
		panic("srm: get_scalar_no_init requires col() == 1")
	}
	return &m.GetRowNoInitLocked(row, lock)[0]
}
