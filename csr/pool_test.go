package csr

import "testing"

func TestBuilderReset(t *testing.T) {
	b := NewBuilder[float64, int32]()
	b.AddRow([]int32{1, 3}, []float64{1, 2})
	b.AddRow([]int32{0}, []float64{5})

	b.Reset()
	if len(b.indptr) != 1 || b.indptr[0] != 0 {
		t.Fatalf("indptr after Reset = %v, want [0]", b.indptr)
	}
	if len(b.ind) != 0 || len(b.data) != 0 {
		t.Fatalf("ind/data after Reset not empty: ind=%v data=%v", b.ind, b.data)
	}

	b.AddRow([]int32{2}, []float64{9})
	m := b.Build()
	if m.Rows() != 1 {
		t.Fatalf("Rows() = %d, want 1", m.Rows())
	}
	if got := m.At(0, 2); got != 9 {
		t.Errorf("At(0,2) = %v, want 9", got)
	}
}

func TestPoolGetPutRecyclesCapacity(t *testing.T) {
	p := NewPool[float64, int32]()

	b1 := p.Get()
	b1.AddRow([]int32{1, 2, 3}, []float64{1, 2, 3})
	cap1 := cap(b1.data)
	p.Put(b1)

	b2 := p.Get()
	if b2 != b1 {
		t.Fatalf("Get() after Put() returned a different *Builder; pool should recycle")
	}
	if len(b2.data) != 0 || len(b2.ind) != 0 {
		t.Fatalf("recycled Builder not reset: ind=%v data=%v", b2.ind, b2.data)
	}
	if cap(b2.data) < cap1 {
		t.Errorf("recycled Builder lost backing capacity: cap=%d, want >= %d", cap(b2.data), cap1)
	}

	b2.AddRow([]int32{0, 1}, []float64{4, 5})
	m := b2.Build()
	if m.Rows() != 1 {
		t.Fatalf("Rows() = %d, want 1", m.Rows())
	}
	if got := m.At(0, 1); got != 5 {
		t.Errorf("At(0,1) = %v, want 5", got)
	}
}
