// Package optimizer implements the gradient-descent update rules used to
// turn a computed gradient into a parameter delta: SGD, AdaDelta,
// AdaGrad, Adam, FTRL, GFTRL, Momentum and RMSProp. Each rule is ported
// from original_source/include/deepx_core/tensor/ll_tensor.h's
// LLOptimizer, including its scalar/array/TSR/SRM call surface and the
// lock-guarded SRM variants used by Hogwild!-style concurrent training.
//
// Every optimizer exposes the same shape of API: a Config struct holding
// its hyperparameters plus any per-step state (Init/PreBatch/PostBatch),
// an UpdateScalar method with the aux-slot arity that optimizer needs,
// and UpdateArray/UpdateTSR2TSR/UpdateSRM2TSR/UpdateSRM2SRM wrappers
// built on the shared generic loops in update.go.
package optimizer

import (
	"github.com/deepx-core/deepx-go/srm"
	"github.com/deepx-core/deepx-go/tensor"
)

// Float is the set of element types an optimizer may update.
type Float interface {
	~float32 | ~float64
}

// Integer is the set of row-id types a gradient/parameter SparseRowMatrix
// may be indexed by.
type Integer interface {
	~int32 | ~int64 | ~uint32 | ~uint64
}

// smooth is the epsilon several optimizers add under a square root to
// avoid division by zero.
const smooth = 1e-5

// gradClipThreshold bounds every gradient passed through ClipScalar,
// ClipArray, ClipTensor or ClipSRM before it reaches an update rule.
const gradClipThreshold = 20

// ClipScalar clamps g to [-gradClipThreshold, gradClipThreshold].
func ClipScalar[T Float](g *T) {
	if *g > gradClipThreshold {
		*g = gradClipThreshold
	} else if *g < -gradClipThreshold {
		*g = -gradClipThreshold
	}
}

// ClipArray clamps every element of g in place.
func ClipArray[T Float](n int, g []T) {
	for i := 0; i < n; i++ {
		ClipScalar(&g[i])
	}
}

// ClipTensor clamps every element of a dense gradient tensor in place.
func ClipTensor[T Float](g *tensor.Tensor[T]) {
	ClipArray(g.TotalDim(), g.Data())
}

// ClipSRM clamps every row of a sparse gradient matrix in place.
func ClipSRM[T Float, I Integer](g *srm.Matrix[T, I]) {
	g.Range(func(_ I, row []T) bool {
		ClipArray(len(row), row)
		return true
	})
}
