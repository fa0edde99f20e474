package optimizer

import (
	"math"

	"github.com/deepx-core/deepx-go/rwlock"
	"github.com/deepx-core/deepx-go/srm"
	"github.com/deepx-core/deepx-go/tensor"
)

// AdaDeltaConfig replaces AdaGrad's global learning rate with a running
// RMS of past updates (deltaw), so the effective step size adapts
// without a manually tuned alpha.
type AdaDeltaConfig[T Float, I Integer] struct {
	Rho   T
	Alpha T
	Beta  T

	oneSubRho T
}

// NewAdaDeltaConfig returns an AdaDeltaConfig with the teacher's
// defaults (rho=0.95, alpha=1, beta=smooth), already initialized.
func NewAdaDeltaConfig[T Float, I Integer]() *AdaDeltaConfig[T, I] {
	c := &AdaDeltaConfig[T, I]{Rho: 0.95, Alpha: 1, Beta: smooth}
	c.Init()
	return c
}

// Init derives oneSubRho from Rho.
func (c *AdaDeltaConfig[T, I]) Init() {
	c.oneSubRho = 1 - c.Rho
}

// UpdateScalar updates the squared-gradient accumulator n and the
// squared-update accumulator deltaw, descending w by alpha*a.
func (c *AdaDeltaConfig[T, I]) UpdateScalar(g T, w, n, deltaw *T) {
	newN := c.Rho*(*n) + c.oneSubRho*g*g
	a := T(math.Sqrt(float64(*deltaw+c.Beta))) / T(math.Sqrt(float64(newN+c.Beta))) * g
	newDeltaw := c.Rho*(*deltaw) + c.oneSubRho*a*a
	*w -= c.Alpha * a
	*n = newN
	*deltaw = newDeltaw
}

// UpdateArray applies UpdateScalar elementwise.
func (c *AdaDeltaConfig[T, I]) UpdateArray(count int, g, w, n, deltaw []T) {
	updateArray2(count, g, w, n, deltaw, c.UpdateScalar)
}

// UpdateTSR2TSR applies UpdateScalar across dense gradient, weight, n
// and deltaw tensors of equal shape.
func (c *AdaDeltaConfig[T, I]) UpdateTSR2TSR(g, w, n, deltaw *tensor.Tensor[T]) {
	updateTSR2TSR2(g, w, n, deltaw, c.UpdateScalar)
}

// UpdateSRM2TSR applies UpdateScalar for every row present in a sparse
// gradient against dense weight, n and deltaw tensors.
func (c *AdaDeltaConfig[T, I]) UpdateSRM2TSR(g *srm.Matrix[T, I], w, n, deltaw *tensor.Tensor[T]) {
	updateSRM2TSR2(g, w, n, deltaw, c.UpdateScalar)
}

// UpdateSRM2SRM applies UpdateScalar for every row present in a sparse
// gradient against sparse weight, n and deltaw matrices, lazily creating
// their rows.
func (c *AdaDeltaConfig[T, I]) UpdateSRM2SRM(g, w, n, deltaw *srm.Matrix[T, I]) {
	updateSRM2SRM2(g, w, n, deltaw, c.UpdateScalar)
}

// UpdateSRM2SRMLocked is UpdateSRM2SRM with lock-guarded row creation on
// w, n and deltaw.
func (c *AdaDeltaConfig[T, I]) UpdateSRM2SRMLocked(g, w, n, deltaw *srm.Matrix[T, I], wlock, nlock, deltawlock *rwlock.RWLock) {
	updateSRM2SRM2Locked(g, w, n, deltaw, wlock, nlock, deltawlock, c.UpdateScalar)
}
