package optimizer

import (
	"github.com/deepx-core/deepx-go/rwlock"
	"github.com/deepx-core/deepx-go/srm"
	"github.com/deepx-core/deepx-go/tensor"
)

// MomentumConfig is classical momentum: the velocity v accumulates a
// rho-weighted running sum of raw gradients, and w descends by
// alpha*v.
type MomentumConfig[T Float, I Integer] struct {
	Rho   T
	Alpha T
}

// NewMomentumConfig returns a MomentumConfig with the teacher's defaults
// (rho=0.5, alpha=0.1).
func NewMomentumConfig[T Float, I Integer]() *MomentumConfig[T, I] {
	return &MomentumConfig[T, I]{Rho: 0.5, Alpha: 0.1}
}

// UpdateScalar updates the velocity v and descends w by alpha*v.
func (c *MomentumConfig[T, I]) UpdateScalar(g T, w, v *T) {
	newV := c.Rho*(*v) + g
	*w -= c.Alpha * newV
	*v = newV
}

// UpdateArray applies UpdateScalar elementwise.
func (c *MomentumConfig[T, I]) UpdateArray(n int, g, w, v []T) {
	updateArray1(n, g, w, v, c.UpdateScalar)
}

// UpdateTSR2TSR applies UpdateScalar across dense gradient, weight and
// velocity tensors of equal shape.
func (c *MomentumConfig[T, I]) UpdateTSR2TSR(g, w, v *tensor.Tensor[T]) {
	updateTSR2TSR1(g, w, v, c.UpdateScalar)
}

// UpdateSRM2TSR applies UpdateScalar for every row present in a sparse
// gradient against dense weight and velocity tensors.
func (c *MomentumConfig[T, I]) UpdateSRM2TSR(g *srm.Matrix[T, I], w, v *tensor.Tensor[T]) {
	updateSRM2TSR1(g, w, v, c.UpdateScalar)
}

// UpdateSRM2SRM applies UpdateScalar for every row present in a sparse
// gradient against sparse weight and velocity matrices, lazily creating
// their rows.
func (c *MomentumConfig[T, I]) UpdateSRM2SRM(g, w, v *srm.Matrix[T, I]) {
	updateSRM2SRM1(g, w, v, c.UpdateScalar)
}

// UpdateSRM2SRMLocked is UpdateSRM2SRM with lock-guarded row creation on
// w and v.
func (c *MomentumConfig[T, I]) UpdateSRM2SRMLocked(g, w, v *srm.Matrix[T, I], wlock, vlock *rwlock.RWLock) {
	updateSRM2SRM1Locked(g, w, v, wlock, vlock, c.UpdateScalar)
}
