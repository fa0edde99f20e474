// Package llsparse bridges CSR/SparseRowMatrix sparse indexing with dense
// Tensor math: embedding-table gather (gesmm_mod, gesmsm), scatter-add
// into dense or sparse accumulators (add, gestmm_mod, gestmm), and the
// small add_to/scale helpers shared by both representations. Every
// operation is ported directly from
// original_source/include/deepx_core/tensor/ll_tensor.h's LLSparseTensor,
// including its beta-in-{0,1} accumulate-vs-overwrite convention and the
// dedicated n==1 scalar fast path; the general axpy-over-columns path
// reuses package llmath, this module's sibling.
package llsparse

import (
	"fmt"

	"github.com/deepx-core/deepx-go/csr"
	"github.com/deepx-core/deepx-go/llmath"
	"github.com/deepx-core/deepx-go/srm"
	"github.com/deepx-core/deepx-go/tensor"
)

// Integer is the set of column/row-id types shared by the csr.Matrix and
// srm.Matrix operands of every function in this package.
type Integer interface {
	~int32 | ~int64 | ~uint32 | ~uint64
}

func checkBeta(beta int) {
	if beta != 0 && beta != 1 {
		panic(fmt.Sprintf("llsparse: beta must be 0 or 1, got %d", beta))
	}
}

// Add computes Y <- X + beta*Y: Y is an m x n dense tensor, X an m x n
// SparseRowMatrix whose present rows are scatter-added into the
// corresponding Y rows. beta must be 0 or 1.
func Add[T llmath.Float, I Integer](x *srm.Matrix[T, I], beta int, y *tensor.Tensor[T]) {
	checkBeta(beta)
	if !y.Shape().IsRank(2) {
		panic("llsparse: add requires a rank-2 dense tensor")
	}
	n := y.Dim(1)
	if x.Col() != n {
		panic(fmt.Sprintf("llsparse: add col mismatch %d vs %d", x.Col(), n))
	}

	if beta == 0 {
		y.Zeros()
	}
	yd := y.Data()

	if n == 1 {
		x.Range(func(id I, row []T) bool {
			i := int(id)
			if i >= y.Dim(0) {
				panic("llsparse: add row id out of range")
			}
			yd[i] += row[0]
			return true
		})
		return
	}

	x.Range(func(id I, row []T) bool {
		i := int(id)
		if i >= y.Dim(0) {
			panic("llsparse: add row id out of range")
		}
		yi := yd[i*n : i*n+n]
		llmath.Add(n, row, yi, yi)
		return true
	})
}

// GesmmMod computes Z <- X*Y + beta*Z: X is an m x ? CSR, Y a k x n
// dense embedding table, Z an m x n dense tensor. X's column ids are
// taken modulo k before indexing Y, implementing embedding lookup when
// the column id space is larger than the table. beta must be 0 or 1.
func GesmmMod[T llmath.Float, I Integer](x *csr.Matrix[T, I], y *tensor.Tensor[T], beta int, z *tensor.Tensor[T]) {
	checkBeta(beta)
	if !y.Shape().IsRank(2) {
		panic("llsparse: gesmm_mod requires a rank-2 Y")
	}
	k := y.Dim(0)
	n := y.Dim(1)
	if z.Dim(0) != x.Rows() || z.Dim(1) != n {
		panic("llsparse: gesmm_mod Z shape mismatch")
	}

	if beta == 0 {
		z.Zeros()
	}
	yd := y.Data()
	zd := z.Data()

	for i := 0; i < x.Rows(); i++ {
		cols, vals := x.Row(i)
		if n == 1 {
			var acc T
			for c := range cols {
				j := int(cols[c]) % k
				acc += vals[c] * yd[j]
			}
			zd[i] += acc
			continue
		}
		zi := zd[i*n : i*n+n]
		for c := range cols {
			j := (int(cols[c]) % k) * n
			llmath.Axpy(n, vals[c], yd[j:j+n], zi)
		}
	}
}

// Gesmsm computes Z <- X*Y + beta*Z: X is an m x ? CSR, Y a
// SparseRowMatrix looked up by column id with no-init read semantics
// (an absent row contributes zero), Z an m x n dense tensor. beta must
// be 0 or 1.
func Gesmsm[T llmath.Float, I Integer](x *csr.Matrix[T, I], y *srm.Matrix[T, I], beta int, z *tensor.Tensor[T]) {
	checkBeta(beta)
	n := y.Col()
	if z.Dim(0) != x.Rows() || z.Dim(1) != n {
		panic("llsparse: gesmsm Z shape mismatch")
	}

	if beta == 0 {
		z.Zeros()
	}
	zd := z.Data()

	for i := 0; i < x.Rows(); i++ {
		cols, vals := x.Row(i)
		if n == 1 {
			var acc T
			for c := range cols {
				v := y.PeekScalar(cols[c])
				acc += vals[c] * v
			}
			zd[i] += acc
			continue
		}
		zi := zd[i*n : i*n+n]
		for c := range cols {
			row, ok := y.PeekRow(cols[c])
			if !ok {
				continue
			}
			llmath.Axpy(n, vals[c], row, zi)
		}
	}
}

// GestmmMod computes Z <- X^T*Y + beta*Z: X is an m x ? CSR, Y an m x n
// dense tensor, Z a k x n SparseRowMatrix. X's column ids are taken
// modulo k, lazily creating Z rows as needed. beta must be 0 or 1.
func GestmmMod[T llmath.Float, I Integer](k I, x *csr.Matrix[T, I], y *tensor.Tensor[T], beta int, z *srm.Matrix[T, I]) {
	checkBeta(beta)
	n := z.Col()
	if !y.Shape().IsRank(2) || y.Dim(0) != x.Rows() || y.Dim(1) != n {
		panic("llsparse: gestmm_mod Y shape mismatch")
	}

	if beta == 0 {
		z.Zeros()
	}
	yd := y.Data()
	kInt := int64(k)

	for i := 0; i < x.Rows(); i++ {
		cols, vals := x.Row(i)
		if n == 1 {
			yi := yd[i]
			for c := range cols {
				col := I(int64(cols[c]) % kInt)
				zj := z.GetScalarNoInit(col)
				*zj += vals[c] * yi
			}
			continue
		}
		yi := yd[i*n : i*n+n]
		for c := range cols {
			col := I(int64(cols[c]) % kInt)
			zj := z.GetRowNoInit(col)
			llmath.Axpy(n, vals[c], yi, zj)
		}
	}
}

// Gestmm is GestmmMod without the modulo: X's column ids address Z rows
// directly.
func Gestmm[T llmath.Float, I Integer](x *csr.Matrix[T, I], y *tensor.Tensor[T], beta int, z *srm.Matrix[T, I]) {
	checkBeta(beta)
	n := z.Col()
	if !y.Shape().IsRank(2) || y.Dim(0) != x.Rows() || y.Dim(1) != n {
		panic("llsparse: gestmm Y shape mismatch")
	}

	if beta == 0 {
		z.Zeros()
	}
	yd := y.Data()

	for i := 0; i < x.Rows(); i++ {
		cols, vals := x.Row(i)
		if n == 1 {
			yi := yd[i]
			for c := range cols {
				zj := z.GetScalarNoInit(cols[c])
				*zj += vals[c] * yi
			}
			continue
		}
		yi := yd[i*n : i*n+n]
		for c := range cols {
			zj := z.GetRowNoInit(cols[c])
			llmath.Axpy(n, vals[c], yi, zj)
		}
	}
}

// AddToTensor computes Z <- X + Z for two dense tensors of equal shape.
func AddToTensor[T llmath.Float](x, z *tensor.Tensor[T]) {
	if !x.Shape().Equal(z.Shape()) {
		panic("llsparse: add_to shape mismatch")
	}
	llmath.Add(x.TotalDim(), x.Data(), z.Data(), z.Data())
}

// AddToSRM computes Z <- X + Z row-wise: every row present in X is added
// into the corresponding (lazily-created) row of Z.
func AddToSRM[T llmath.Float, I Integer](x, z *srm.Matrix[T, I]) {
	if x.Col() != z.Col() {
		panic("llsparse: add_to col mismatch")
	}
	x.Range(func(id I, row []T) bool {
		zrow := z.GetRowNoInit(id)
		llmath.Add(x.Col(), row, zrow, zrow)
		return true
	})
}

// ScaleTensor computes Z <- beta*Z in place for a dense tensor.
func ScaleTensor[T llmath.Float](beta T, z *tensor.Tensor[T]) {
	llmath.MulScalar(z.TotalDim(), z.Data(), beta, z.Data())
}

// ScaleSRM computes Z <- beta*Z in place for every present row of a
// SparseRowMatrix.
func ScaleSRM[T llmath.Float, I Integer](beta T, z *srm.Matrix[T, I]) {
	z.Range(func(_ I, row []T) bool {
		llmath.MulScalar(len(row), row, beta, row)
		return true
	})
}
