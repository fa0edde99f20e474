package optimizer

import (
	"fmt"

	"github.com/deepx-core/deepx-go/rwlock"
	"github.com/deepx-core/deepx-go/srm"
	"github.com/deepx-core/deepx-go/tensor"
)

// The three families of helpers below correspond to LLOptimizer's
// UpdateScalar/UpdateArray/UpdateTSR2TSR/UpdateSRM2TSR/UpdateSRM2SRM
// overload sets: arity0 is the zero-aux-slot shape (plain SGD), arity1
// adds one auxiliary accumulator per weight (AdaGrad, Momentum,
// RMSProp), arity2 adds two (AdaDelta, Adam, FTRL, GFTRL). Each
// optimizer's Config wires its own UpdateScalar into the matching family
// instead of duplicating the array/tensor/SRM traversal logic.

func updateArray0[T Float](n int, g, w []T, f func(g T, w *T)) {
	for i := 0; i < n; i++ {
		f(g[i], &w[i])
	}
}

func updateArray1[T Float](n int, g, w, a []T, f func(g T, w, a *T)) {
	for i := 0; i < n; i++ {
		f(g[i], &w[i], &a[i])
	}
}

func updateArray2[T Float](n int, g, w, a, b []T, f func(g T, w, a, b *T)) {
	for i := 0; i < n; i++ {
		f(g[i], &w[i], &a[i], &b[i])
	}
}

func updateTSR2TSR0[T Float](g, w *tensor.Tensor[T], f func(g T, w *T)) {
	n := g.TotalDim()
	updateArray0(n, g.Data(), w.Data(), f)
}

func updateTSR2TSR1[T Float](g, w, a *tensor.Tensor[T], f func(g T, w, a *T)) {
	n := g.TotalDim()
	updateArray1(n, g.Data(), w.Data(), a.Data(), f)
}

func updateTSR2TSR2[T Float](g, w, a, b *tensor.Tensor[T], f func(g T, w, a, b *T)) {
	n := g.TotalDim()
	updateArray2(n, g.Data(), w.Data(), a.Data(), b.Data(), f)
}

func checkSRM2TSR[T Float](w *tensor.Tensor[T], gCol int) int {
	if !w.Shape().IsRank(2) {
		panic("optimizer: UpdateSRM2TSR requires a rank-2 W")
	}
	n := w.Dim(1)
	if gCol != n {
		panic(fmt.Sprintf("optimizer: grad col %d does not match W col %d", gCol, n))
	}
	return n
}

func updateSRM2TSR0[T Float, I Integer](g *srm.Matrix[T, I], w *tensor.Tensor[T], f func(g T, w *T)) {
	n := checkSRM2TSR(w, g.Col())
	wd := w.Data()
	g.Range(func(id I, row []T) bool {
		i := int(id)
		if n == 1 {
			f(row[0], &wd[i])
		} else {
			updateArray0(n, row, wd[i*n:i*n+n], f)
		}
		return true
	})
}

func updateSRM2TSR1[T Float, I Integer](g *srm.Matrix[T, I], w, a *tensor.Tensor[T], f func(g T, w, a *T)) {
	n := checkSRM2TSR(w, g.Col())
	if !a.Shape().Equal(w.Shape()) {
		panic("optimizer: UpdateSRM2TSR requires W and A to share shape")
	}
	wd, ad := w.Data(), a.Data()
	g.Range(func(id I, row []T) bool {
		i := int(id)
		if n == 1 {
			f(row[0], &wd[i], &ad[i])
		} else {
			updateArray1(n, row, wd[i*n:i*n+n], ad[i*n:i*n+n], f)
		}
		return true
	})
}

func updateSRM2TSR2[T Float, I Integer](g *srm.Matrix[T, I], w, a, b *tensor.Tensor[T], f func(g T, w, a, b *T)) {
	n := checkSRM2TSR(w, g.Col())
	if !a.Shape().Equal(w.Shape()) || !b.Shape().Equal(w.Shape()) {
		panic("optimizer: UpdateSRM2TSR requires W, A and B to share shape")
	}
	wd, ad, bd := w.Data(), a.Data(), b.Data()
	g.Range(func(id I, row []T) bool {
		i := int(id)
		if n == 1 {
			f(row[0], &wd[i], &ad[i], &bd[i])
		} else {
			updateArray2(n, row, wd[i*n:i*n+n], ad[i*n:i*n+n], bd[i*n:i*n+n], f)
		}
		return true
	})
}

func updateSRM2SRM0[T Float, I Integer](g, w *srm.Matrix[T, I], f func(g T, w *T)) {
	n := g.Col()
	if w.Col() != n {
		panic("optimizer: UpdateSRM2SRM col mismatch")
	}
	g.Range(func(id I, row []T) bool {
		if n == 1 {
			f(row[0], w.GetScalarNoInit(id))
		} else {
			updateArray0(n, row, w.GetRowNoInit(id), f)
		}
		return true
	})
}

func updateSRM2SRM1[T Float, I Integer](g, w, a *srm.Matrix[T, I], f func(g T, w, aux *T)) {
	n := g.Col()
	if w.Col() != n || a.Col() != n {
		panic("optimizer: UpdateSRM2SRM col mismatch")
	}
	g.Range(func(id I, row []T) bool {
		if n == 1 {
			f(row[0], w.GetScalarNoInit(id), a.GetScalarNoInit(id))
		} else {
			updateArray1(n, row, w.GetRowNoInit(id), a.GetRowNoInit(id), f)
		}
		return true
	})
}

func updateSRM2SRM2[T Float, I Integer](g, w, a, b *srm.Matrix[T, I], f func(g T, w, aux1, aux2 *T)) {
	n := g.Col()
	if w.Col() != n || a.Col() != n || b.Col() != n {
		panic("optimizer: UpdateSRM2SRM col mismatch")
	}
	g.Range(func(id I, row []T) bool {
		if n == 1 {
			f(row[0], w.GetScalarNoInit(id), a.GetScalarNoInit(id), b.GetScalarNoInit(id))
		} else {
			updateArray2(n, row, w.GetRowNoInit(id), a.GetRowNoInit(id), b.GetRowNoInit(id), f)
		}
		return true
	})
}

// updateSRM2SRM0Locked is updateSRM2SRM0 with lock-guarded row creation
// on W, the shape used by concurrent training workers sharing a single
// parameter table.
func updateSRM2SRM0Locked[T Float, I Integer](g, w *srm.Matrix[T, I], wlock *rwlock.RWLock, f func(g T, w *T)) {
	n := g.Col()
	if w.Col() != n {
		panic("optimizer: UpdateSRM2SRM col mismatch")
	}
	g.Range(func(id I, row []T) bool {
		if n == 1 {
			f(row[0], w.GetScalarNoInitLocked(id, wlock))
		} else {
			updateArray0(n, row, w.GetRowNoInitLocked(id, wlock), f)
		}
		return true
	})
}

func updateSRM2SRM1Locked[T Float, I Integer](g, w, a *srm.Matrix[T, I], wlock, alock *rwlock.RWLock, f func(g T, w, aux *T)) {
	n := g.Col()
	if w.Col() != n || a.Col() != n {
		panic("optimizer: UpdateSRM2SRM col mismatch")
	}
	g.Range(func(id I, row []T) bool {
		if n == 1 {
			f(row[0], w.GetScalarNoInitLocked(id, wlock), a.GetScalarNoInitLocked(id, alock))
		} else {
			updateArray1(n, row, w.GetRowNoInitLocked(id, wlock), a.GetRowNoInitLocked(id, alock), f)
		}
		return true
	})
}

func updateSRM2SRM2Locked[T Float, I Integer](g, w, a, b *srm.Matrix[T, I], wlock, alock, block *rwlock.RWLock, f func(g T, w, aux1, aux2 *T)) {
	n := g.Col()
	if w.Col() != n || a.Col() != n || b.Col() != n {
		panic("optimizer: UpdateSRM2SRM col mismatch")
	}
	g.Range(func(id I, row []T) bool {
		if n == 1 {
			f(row[0], w.GetScalarNoInitLocked(id, wlock), a.GetScalarNoInitLocked(id, alock), b.GetScalarNoInitLocked(id, block))
		} else {
			updateArray2(n, row, w.GetRowNoInitLocked(id, wlock), a.GetRowNoInitLocked(id, alock), b.GetRowNoInitLocked(id, block), f)
		}
		return true
	})
}
