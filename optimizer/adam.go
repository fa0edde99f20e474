package optimizer

import (
	"math"

	"github.com/deepx-core/deepx-go/rwlock"
	"github.com/deepx-core/deepx-go/srm"
	"github.com/deepx-core/deepx-go/tensor"
)

// AdamConfig is Adam: exponential moving averages of the gradient (m,
// first moment) and its square (v, second moment), bias-corrected via
// the running products rho1t/rho2t of rho1/rho2.
type AdamConfig[T Float, I Integer] struct {
	Rho1  T
	Rho2  T
	Alpha T
	Beta  T

	rho1t      T
	rho2t      T
	oneSubRho1 T
	oneSubRho2 T
	rhoAux     T
}

// NewAdamConfig returns an AdamConfig with the teacher's defaults
// (rho1=0.9, rho2=0.999, alpha=0.001, beta=smooth), already initialized.
func NewAdamConfig[T Float, I Integer]() *AdamConfig[T, I] {
	c := &AdamConfig[T, I]{Rho1: 0.9, Rho2: 0.999, Alpha: 0.001, Beta: smooth}
	c.Init()
	return c
}

// Init resets the bias-correction running products and derives
// oneSubRho1/oneSubRho2 from Rho1/Rho2.
func (c *AdamConfig[T, I]) Init() {
	c.rho1t = 1
	c.rho2t = 1
	c.oneSubRho1 = 1 - c.Rho1
	c.oneSubRho2 = 1 - c.Rho2
	c.rhoAux = 0
}

// PreBatch advances the bias-correction running products and derives the
// per-batch learning-rate scale rhoAux. Must be called once before each
// batch's updates.
func (c *AdamConfig[T, I]) PreBatch() {
	c.rho1t *= c.Rho1
	c.rho2t *= c.Rho2
	c.rhoAux = T(math.Sqrt(float64(1-c.rho2t))) / (1 - c.rho1t) * c.Alpha
}

// UpdateScalar updates the first and second moment estimates m and v,
// descending w by the bias-corrected step.
func (c *AdamConfig[T, I]) UpdateScalar(g T, w, m, v *T) {
	newM := c.Rho1*(*m) + c.oneSubRho1*g
	newV := c.Rho2*(*v) + c.oneSubRho2*g*g
	*w -= c.rhoAux * newM / (T(math.Sqrt(float64(newV))) + c.Beta)
	*m = newM
	*v = newV
}

// UpdateArray applies UpdateScalar elementwise.
func (c *AdamConfig[T, I]) UpdateArray(n int, g, w, m, v []T) {
	updateArray2(n, g, w, m, v, c.UpdateScalar)
}

// UpdateTSR2TSR applies UpdateScalar across dense gradient, weight, m
// and v tensors of equal shape.
func (c *AdamConfig[T, I]) UpdateTSR2TSR(g, w, m, v *tensor.Tensor[T]) {
	updateTSR2TSR2(g, w, m, v, c.UpdateScalar)
}

// UpdateSRM2TSR applies UpdateScalar for every row present in a sparse
// gradient against dense weight, m and v tensors.
func (c *AdamConfig[T, I]) UpdateSRM2TSR(g *srm.Matrix[T, I], w, m, v *tensor.Tensor[T]) {
	updateSRM2TSR2(g, w, m, v, c.UpdateScalar)
}

// UpdateSRM2SRM applies UpdateScalar for every row present in a sparse
// gradient against sparse weight, m and v matrices, lazily creating
// their rows.
func (c *AdamConfig[T, I]) UpdateSRM2SRM(g, w, m, v *srm.Matrix[T, I]) {
	updateSRM2SRM2(g, w, m, v, c.UpdateScalar)
}

// UpdateSRM2SRMLocked is UpdateSRM2SRM with lock-guarded row creation on
// w, m and v.
func (c *AdamConfig[T, I]) UpdateSRM2SRMLocked(g, w, m, v *srm.Matrix[T, I], wlock, mlock, vlock *rwlock.RWLock) {
	updateSRM2SRM2Locked(g, w, m, v, wlock, mlock, vlock, c.UpdateScalar)
}
