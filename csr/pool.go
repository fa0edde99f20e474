package csr

import "sync"

// Pool recycles Builders across mini-batches. Training loops that decode
// one CSR batch per step churn through as many Builders as there are
// steps; reusing their indptr/ind/data backing arrays avoids reallocating
// on every step once the arrays have grown to the batch's steady-state
// size. Grounded on the teacher's sync.Pool-based getWorkspace/
// putWorkspace pair for *CSR/*Vector workspaces (pool.go), adapted here
// to the generic Builder rather than the teacher's concrete float64 CSR.
type Pool[T Value, I Integer] struct {
	pool sync.Pool
}

// NewPool returns an empty Pool.
func NewPool[T Value, I Integer]() *Pool[T, I] {
	return &Pool[T, I]{
		pool: sync.Pool{
			New: func() interface{} { return NewBuilder[T, I]() },
		},
	}
}

// Get returns a reset Builder, either recycled from the pool or freshly
// allocated.
func (p *Pool[T, I]) Get() *Builder[T, I] {
	b := p.pool.Get().(*Builder[T, I])
	b.Reset()
	return b
}

// Put returns b to the pool for reuse by a later Get. Callers must not
// retain the Matrix produced by b.Build() after Put, since Build shares
// b's backing arrays and a subsequent Get/Reset will overwrite them.
func (p *Pool[T, I]) Put(b *Builder[T, I]) {
	p.pool.Put(b)
}
