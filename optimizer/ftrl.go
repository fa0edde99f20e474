package optimizer

import (
	"math"

	"github.com/deepx-core/deepx-go/rwlock"
	"github.com/deepx-core/deepx-go/srm"
	"github.com/deepx-core/deepx-go/tensor"
)

// FTRLConfig is Follow-The-Regularized-Leader with L1/L2 elastic-net
// regularization: a per-weight accumulator n tracks squared gradients
// and z tracks a regularized running sum of gradients, with w recomputed
// from z on every update (and zeroed once |z| falls under the L1
// threshold), giving FTRL's characteristic sparsity.
type FTRLConfig[T Float, I Integer] struct {
	Alpha T
	Beta  T
	L1    T
	L2    T

	invAlpha T
}

// NewFTRLConfig returns an FTRLConfig with the teacher's defaults
// (alpha=0.01, beta=1, l1=1, l2=0), already initialized.
func NewFTRLConfig[T Float, I Integer]() *FTRLConfig[T, I] {
	c := &FTRLConfig[T, I]{Alpha: 0.01, Beta: 1, L1: 1, L2: 0}
	c.Init()
	return c
}

// Init derives invAlpha from Alpha.
func (c *FTRLConfig[T, I]) Init() {
	c.invAlpha = 1 / c.Alpha
}

// UpdateScalar updates the accumulators n and z, then recomputes w
// directly from z: w is zeroed while |z| is under the L1 threshold, and
// otherwise soft-thresholded by L1 and damped by L2 and the adaptive
// per-coordinate rate folded into n.
func (c *FTRLConfig[T, I]) UpdateScalar(g T, w, n, z *T) {
	oldN := *n
	newN := oldN + g*g
	sqrtN := T(math.Sqrt(float64(oldN)))
	sqrtNewN := T(math.Sqrt(float64(newN)))
	sigma := (sqrtN - sqrtNewN) * c.invAlpha
	newZ := *z + g + sigma*(*w)

	var zSign T = 1
	if newZ < 0 {
		zSign = -1
	}
	zAbs := zSign * newZ
	if zAbs < c.L1 {
		*w = 0
	} else {
		*w = (zSign*c.L1 - newZ) / ((c.Beta+sqrtNewN)*c.invAlpha + c.L2)
	}
	*z = newZ
	*n = newN
}

// UpdateArray applies UpdateScalar elementwise.
func (c *FTRLConfig[T, I]) UpdateArray(count int, g, w, n, z []T) {
	updateArray2(count, g, w, n, z, c.UpdateScalar)
}

// UpdateTSR2TSR applies UpdateScalar across dense gradient, weight, n
// and z tensors of equal shape.
func (c *FTRLConfig[T, I]) UpdateTSR2TSR(g, w, n, z *tensor.Tensor[T]) {
	updateTSR2TSR2(g, w, n, z, c.UpdateScalar)
}

// UpdateSRM2TSR applies UpdateScalar for every row present in a sparse
// gradient against dense weight, n and z tensors.
func (c *FTRLConfig[T, I]) UpdateSRM2TSR(g *srm.Matrix[T, I], w, n, z *tensor.Tensor[T]) {
	updateSRM2TSR2(g, w, n, z, c.UpdateScalar)
}

// UpdateSRM2SRM applies UpdateScalar for every row present in a sparse
// gradient against sparse weight, n and z matrices, lazily creating
// their rows.
func (c *FTRLConfig[T, I]) UpdateSRM2SRM(g, w, n, z *srm.Matrix[T, I]) {
	updateSRM2SRM2(g, w, n, z, c.UpdateScalar)
}

// UpdateSRM2SRMLocked is UpdateSRM2SRM with lock-guarded row creation on
// w, n and z.
func (c *FTRLConfig[T, I]) UpdateSRM2SRMLocked(g, w, n, z *srm.Matrix[T, I], wlock, nlock, zlock *rwlock.RWLock) {
	updateSRM2SRM2Locked(g, w, n, z, wlock, nlock, zlock, c.UpdateScalar)
}
