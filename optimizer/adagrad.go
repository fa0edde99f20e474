package optimizer

import (
	"math"

	"github.com/deepx-core/deepx-go/rwlock"
	"github.com/deepx-core/deepx-go/srm"
	"github.com/deepx-core/deepx-go/tensor"
)

// AdaGradConfig accumulates squared gradients per weight (N) and scales
// the learning rate by their inverse square root.
type AdaGradConfig[T Float, I Integer] struct {
	Alpha T
	Beta  T
}

// NewAdaGradConfig returns an AdaGradConfig with the teacher's defaults
// (alpha=0.01, beta=smooth).
func NewAdaGradConfig[T Float, I Integer]() *AdaGradConfig[T, I] {
	return &AdaGradConfig[T, I]{Alpha: 0.01, Beta: smooth}
}

// UpdateScalar accumulates g^2 into n and descends w by
// alpha*g/sqrt(n+beta).
func (c *AdaGradConfig[T, I]) UpdateScalar(g T, w, n *T) {
	newN := *n + g*g
	*w -= g / T(math.Sqrt(float64(newN+c.Beta))) * c.Alpha
	*n = newN
}

// UpdateArray applies UpdateScalar elementwise.
func (c *AdaGradConfig[T, I]) UpdateArray(count int, g, w, n []T) {
	updateArray1(count, g, w, n, c.UpdateScalar)
}

// UpdateTSR2TSR applies UpdateScalar across dense gradient, weight and
// accumulator tensors of equal shape.
func (c *AdaGradConfig[T, I]) UpdateTSR2TSR(g, w, n *tensor.Tensor[T]) {
	updateTSR2TSR1(g, w, n, c.UpdateScalar)
}

// UpdateSRM2TSR applies UpdateScalar for every row present in a sparse
// gradient against dense weight and accumulator tensors.
func (c *AdaGradConfig[T, I]) UpdateSRM2TSR(g *srm.Matrix[T, I], w, n *tensor.Tensor[T]) {
	updateSRM2TSR1(g, w, n, c.UpdateScalar)
}

// UpdateSRM2SRM applies UpdateScalar for every row present in a sparse
// gradient against sparse weight and accumulator matrices, lazily
// creating their rows.
func (c *AdaGradConfig[T, I]) UpdateSRM2SRM(g, w, n *srm.Matrix[T, I]) {
	updateSRM2SRM1(g, w, n, c.UpdateScalar)
}

// UpdateSRM2SRMLocked is UpdateSRM2SRM with lock-guarded row creation on
// w and n.
func (c *AdaGradConfig[T, I]) UpdateSRM2SRMLocked(g, w, n *srm.Matrix[T, I], wlock, nlock *rwlock.RWLock) {
	updateSRM2SRM1Locked(g, w, n, wlock, nlock, c.UpdateScalar)
}
