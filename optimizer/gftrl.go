package optimizer

import (
	"math"

	"github.com/deepx-core/deepx-go/llmath"
	"github.com/deepx-core/deepx-go/rwlock"
	"github.com/deepx-core/deepx-go/srm"
	"github.com/deepx-core/deepx-go/tensor"
)

// GFTRLConfig is Group FTRL: like FTRLConfig, but the lasso threshold is
// applied to the L2 norm of an entire embedding row's z instead of each
// coordinate independently, so whole rows are zeroed (or kept) together.
// This only takes effect through UpdateArray/UpdateSRM2TSR/UpdateSRM2SRM;
// UpdateTSR2TSR stays coordinate-wise, mirroring the teacher's own
// UpdateTSR2TSR for GFTRL.
type GFTRLConfig[T Float, I Integer] struct {
	Alpha  T
	Beta   T
	Lambda T

	invAlpha T
}

// NewGFTRLConfig returns a GFTRLConfig with the teacher's defaults
// (alpha=0.1, beta=0.01, lambda=1e-4), already initialized.
func NewGFTRLConfig[T Float, I Integer]() *GFTRLConfig[T, I] {
	c := &GFTRLConfig[T, I]{Alpha: 0.1, Beta: 0.01, Lambda: 1e-4}
	c.Init()
	return c
}

// Init derives invAlpha from Alpha.
func (c *GFTRLConfig[T, I]) Init() {
	c.invAlpha = 1 / c.Alpha
}

// UpdateScalar updates n and z from a lone gradient and resolves w as a
// group of size 1: the degenerate case of UpdateArray.
func (c *GFTRLConfig[T, I]) UpdateScalar(g T, w, n, z *T) {
	oldN := *n
	newN := oldN + g*g
	sigma := (T(math.Sqrt(float64(oldN))) - T(math.Sqrt(float64(newN)))) * c.invAlpha
	newZ := *z + g + sigma*(*w)
	*z = newZ
	*n = newN

	norm2Z := newZ
	if norm2Z < 0 {
		norm2Z = -norm2Z
	}
	if norm2Z < c.Lambda {
		*w = 0
		return
	}
	tmp := c.Alpha * (c.Lambda/norm2Z - 1)
	*w = tmp * newZ / (c.Beta + T(math.Sqrt(float64(newN))))
}

// UpdateArray updates every n[i]/z[i] from g[i] independently, then
// group-sparsifies the whole row at once: every w[i] is zeroed together
// when the row's L2 norm over z falls under lambda*sqrt(count), and
// otherwise every w[i] is scaled by the same shrinkage factor. This
// whole-row-at-once shrinkage is what makes GFTRL a group lasso.
func (c *GFTRLConfig[T, I]) UpdateArray(count int, g, w, n, z []T) {
	for i := 0; i < count; i++ {
		oldN := n[i]
		newN := oldN + g[i]*g[i]
		sigma := (T(math.Sqrt(float64(oldN))) - T(math.Sqrt(float64(newN)))) * c.invAlpha
		z[i] += g[i] + sigma*w[i]
		n[i] = newN
	}

	norm2Z := llmath.Norm2(count, z)
	threshold := c.Lambda * T(math.Sqrt(float64(count)))
	if norm2Z < threshold {
		for i := 0; i < count; i++ {
			w[i] = 0
		}
		return
	}
	tmp := c.Alpha * (threshold/norm2Z - 1)
	for i := 0; i < count; i++ {
		w[i] = tmp * z[i] / (c.Beta + T(math.Sqrt(float64(n[i]))))
	}
}

// UpdateTSR2TSR applies UpdateScalar coordinate-by-coordinate across
// dense gradient, weight, n and z tensors of equal shape.
func (c *GFTRLConfig[T, I]) UpdateTSR2TSR(g, w, n, z *tensor.Tensor[T]) {
	updateTSR2TSR2(g, w, n, z, c.UpdateScalar)
}

// UpdateSRM2TSR group-sparsifies one dense row per sparse gradient row:
// a row of width 1 falls back to UpdateScalar, wider rows go through the
// grouped UpdateArray.
func (c *GFTRLConfig[T, I]) UpdateSRM2TSR(g *srm.Matrix[T, I], w, n, z *tensor.Tensor[T]) {
	gcol := g.Col()
	if !w.Shape().IsRank(2) || w.Dim(1) != gcol {
		panic("optimizer: UpdateSRM2TSR shape mismatch")
	}
	wn := w.Dim(1)
	wd, nd, zd := w.Data(), n.Data(), z.Data()
	g.Range(func(id I, row []T) bool {
		i := int(id)
		if wn == 1 {
			c.UpdateScalar(row[0], &wd[i], &nd[i], &zd[i])
		} else {
			c.UpdateArray(wn, row, wd[i*wn:i*wn+wn], nd[i*wn:i*wn+wn], zd[i*wn:i*wn+wn])
		}
		return true
	})
}

// UpdateSRM2SRM group-sparsifies each embedding row independently,
// lazily creating the weight/n/z rows it touches.
func (c *GFTRLConfig[T, I]) UpdateSRM2SRM(g, w, n, z *srm.Matrix[T, I]) {
	col := g.Col()
	g.Range(func(id I, row []T) bool {
		if col == 1 {
			c.UpdateScalar(row[0], w.GetScalarNoInit(id), n.GetScalarNoInit(id), z.GetScalarNoInit(id))
		} else {
			c.UpdateArray(col, row, w.GetRowNoInit(id), n.GetRowNoInit(id), z.GetRowNoInit(id))
		}
		return true
	})
}

// UpdateSRM2SRMLocked is UpdateSRM2SRM with lock-guarded row creation on
// w, n and z.
func (c *GFTRLConfig[T, I]) UpdateSRM2SRMLocked(g, w, n, z *srm.Matrix[T, I], wlock, nlock, zlock *rwlock.RWLock) {
	col := g.Col()
	g.Range(func(id I, row []T) bool {
		if col == 1 {
			c.UpdateScalar(row[0], w.GetScalarNoInitLocked(id, wlock), n.GetScalarNoInitLocked(id, nlock), z.GetScalarNoInitLocked(id, zlock))
		} else {
			c.UpdateArray(col, row, w.GetRowNoInitLocked(id, wlock), n.GetRowNoInitLocked(id, nlock), z.GetRowNoInitLocked(id, zlock))
		}
		return true
	})
}
