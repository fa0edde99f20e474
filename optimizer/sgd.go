package optimizer

import (
	"github.com/deepx-core/deepx-go/rwlock"
	"github.com/deepx-core/deepx-go/srm"
	"github.com/deepx-core/deepx-go/tensor"
)

// SGDConfig is plain stochastic gradient descent with a step-decayed
// learning rate: every BatchDecay batches, realAlpha is multiplied by
// BatchDecayRate, floored at MinAlpha. Setting BatchDecay to 0 disables
// decay. SGD carries no per-weight auxiliary state.
type SGDConfig[T Float, I Integer] struct {
	Alpha          T
	MinAlpha       T
	BatchDecay     int
	BatchDecayRate T

	realBatch int
	realAlpha T
}

// NewSGDConfig returns an SGDConfig with the teacher's defaults
// (alpha=0.01, min_alpha=1e-6, batch_decay=128, batch_decay_rate=0.95),
// already initialized.
func NewSGDConfig[T Float, I Integer]() *SGDConfig[T, I] {
	c := &SGDConfig[T, I]{Alpha: 0.01, MinAlpha: 1e-6, BatchDecay: 128, BatchDecayRate: 0.95}
	c.Init()
	return c
}

// Init resets the decayed learning rate to Alpha.
func (c *SGDConfig[T, I]) Init() {
	c.realBatch = 0
	c.realAlpha = c.Alpha
}

// PostBatch advances the batch counter and applies decay when it rolls
// over BatchDecay.
func (c *SGDConfig[T, I]) PostBatch() {
	if c.BatchDecay == 0 {
		return
	}
	c.realBatch++
	if c.realBatch >= c.BatchDecay {
		c.realBatch = 0
		c.realAlpha *= c.BatchDecayRate
		if c.realAlpha < c.MinAlpha {
			c.realAlpha = c.MinAlpha
		}
	}
}

// RealAlpha returns the current decayed learning rate.
func (c *SGDConfig[T, I]) RealAlpha() T { return c.realAlpha }

// UpdateScalar computes w -= realAlpha*g.
func (c *SGDConfig[T, I]) UpdateScalar(g T, w *T) {
	*w -= c.realAlpha * g
}

// UpdateArray applies UpdateScalar elementwise.
func (c *SGDConfig[T, I]) UpdateArray(n int, g, w []T) {
	updateArray0(n, g, w, c.UpdateScalar)
}

// UpdateTSR2TSR applies UpdateScalar across a dense gradient and weight
// tensor pair.
func (c *SGDConfig[T, I]) UpdateTSR2TSR(g, w *tensor.Tensor[T]) {
	updateTSR2TSR0(g, w, c.UpdateScalar)
}

// UpdateSRM2TSR applies UpdateScalar for every row present in a sparse
// gradient against a dense weight tensor.
func (c *SGDConfig[T, I]) UpdateSRM2TSR(g *srm.Matrix[T, I], w *tensor.Tensor[T]) {
	updateSRM2TSR0(g, w, c.UpdateScalar)
}

// UpdateSRM2SRM applies UpdateScalar for every row present in a sparse
// gradient against a sparse weight matrix, lazily creating weight rows.
func (c *SGDConfig[T, I]) UpdateSRM2SRM(g, w *srm.Matrix[T, I]) {
	updateSRM2SRM0(g, w, c.UpdateScalar)
}

// UpdateSRM2SRMLocked is UpdateSRM2SRM with lock-guarded weight row
// creation, for concurrent training workers sharing w.
func (c *SGDConfig[T, I]) UpdateSRM2SRMLocked(g, w *srm.Matrix[T, I], wlock *rwlock.RWLock) {
	updateSRM2SRM0Locked(g, w, wlock, c.UpdateScalar)
}
