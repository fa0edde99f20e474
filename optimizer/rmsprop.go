package optimizer

import (
	"math"

	"github.com/deepx-core/deepx-go/rwlock"
	"github.com/deepx-core/deepx-go/srm"
	"github.com/deepx-core/deepx-go/tensor"
)

// RMSPropConfig maintains an exponential moving average v of squared
// gradients and scales the learning rate by its inverse square root.
type RMSPropConfig[T Float, I Integer] struct {
	Rho   T
	Alpha T
	Beta  T

	oneSubRho T
}

// NewRMSPropConfig returns an RMSPropConfig with the teacher's defaults
// (rho=0.5, alpha=0.1, beta=smooth), already initialized.
func NewRMSPropConfig[T Float, I Integer]() *RMSPropConfig[T, I] {
	c := &RMSPropConfig[T, I]{Rho: 0.5, Alpha: 0.1, Beta: smooth}
	c.Init()
	return c
}

// Init derives oneSubRho from Rho.
func (c *RMSPropConfig[T, I]) Init() {
	c.oneSubRho = 1 - c.Rho
}

// UpdateScalar updates the moving average v and descends w by
// alpha*g/sqrt(v+beta).
func (c *RMSPropConfig[T, I]) UpdateScalar(g T, w, v *T) {
	newV := c.Rho*(*v) + c.oneSubRho*g*g
	*w -= g / T(math.Sqrt(float64(newV+c.Beta))) * c.Alpha
	*v = newV
}

// UpdateArray applies UpdateScalar elementwise.
func (c *RMSPropConfig[T, I]) UpdateArray(n int, g, w, v []T) {
	updateArray1(n, g, w, v, c.UpdateScalar)
}

// UpdateTSR2TSR applies UpdateScalar across dense gradient, weight and
// moving-average tensors of equal shape.
func (c *RMSPropConfig[T, I]) UpdateTSR2TSR(g, w, v *tensor.Tensor[T]) {
	updateTSR2TSR1(g, w, v, c.UpdateScalar)
}

// UpdateSRM2TSR applies UpdateScalar for every row present in a sparse
// gradient against dense weight and moving-average tensors.
func (c *RMSPropConfig[T, I]) UpdateSRM2TSR(g *srm.Matrix[T, I], w, v *tensor.Tensor[T]) {
	updateSRM2TSR1(g, w, v, c.UpdateScalar)
}

// UpdateSRM2SRM applies UpdateScalar for every row present in a sparse
// gradient against sparse weight and moving-average matrices, lazily
// creating their rows.
func (c *RMSPropConfig[T, I]) UpdateSRM2SRM(g, w, v *srm.Matrix[T, I]) {
	updateSRM2SRM1(g, w, v, c.UpdateScalar)
}

// UpdateSRM2SRMLocked is UpdateSRM2SRM with lock-guarded row creation on
// w and v.
func (c *RMSPropConfig[T, I]) UpdateSRM2SRMLocked(g, w, v *srm.Matrix[T, I], wlock, vlock *rwlock.RWLock) {
	updateSRM2SRM1Locked(g, w, v, wlock, vlock, c.UpdateScalar)
}
