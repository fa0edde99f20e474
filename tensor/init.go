package tensor

import (
	"fmt"
	"math"
	"math/rand"
)

// InitType enumerates the Tensor/SparseRowMatrix row initializers from
// spec.md §3. Values and variance-scaling formulas are ported from
// include/deepx_core/tensor/tensor.h's rand_init/rand_variance_scaling.
type InitType int

const (
	InitNone InitType = iota
	InitZeros
	InitOnes
	InitConstant
	InitRand
	InitRandN
	InitRandLecun
	InitRandNLecun
	InitRandXavier
	InitRandNXavier
	InitRandHe
	InitRandNHe
	InitRandInt
	InitArange
)

// SetOnes fills the tensor with 1.
func SetOnes[T Number](t *Tensor[T]) {
	for i := range t.data {
		t.data[i] = 1
	}
}

// Arange fills the tensor with 0, 1, 2, ... in row-major order.
func Arange[T Number](t *Tensor[T]) {
	for i := range t.data {
		t.data[i] = T(i)
	}
}

// Rand fills the tensor with independent uniform draws from [min, max).
// It panics if min > max.
func Rand[T Float](t *Tensor[T], engine *rand.Rand, min, max T) {
	if min > max {
		panic(fmt.Sprintf("tensor: rand requires min <= max, got [%v,%v)", min, max))
	}
	span := float64(max - min)
	for i := range t.data {
		t.data[i] = T(float64(min) + engine.Float64()*span)
	}
}

// RandN fills the tensor with independent draws from N(mu, sigma^2).
func RandN[T Float](t *Tensor[T], engine *rand.Rand, mu, sigma T) {
	for i := range t.data {
		t.data[i] = T(engine.NormFloat64()*float64(sigma) + float64(mu))
	}
}

// RandInt fills the tensor with independent uniform draws from
// [min, max) over the integers.
func RandInt[T Number](t *Tensor[T], engine *rand.Rand, min, max int) {
	span := max - min
	for i := range t.data {
		t.data[i] = T(min + engine.Intn(span))
	}
}

// varianceScalingMax implements rand_variance_scaling: mode 1 uses dim(0),
// mode 2 uses dim(1), mode 3 (or any other value) uses their average. The
// tensor must be rank 2.
func varianceScalingMax[T Float](t *Tensor[T], scale T, mode int) T {
	if !t.shape.IsRank(2) {
		panic("tensor: variance-scaling initializer requires a rank-2 shape")
	}
	var n T
	switch mode {
	case 1:
		n = T(t.shape.Dim(0))
	case 2:
		n = T(t.shape.Dim(1))
	default:
		n = T(t.shape.Dim(0)+t.shape.Dim(1)) / 2
	}
	return T(math.Sqrt(float64(3 * scale / n)))
}

func varianceScalingSigma[T Float](t *Tensor[T], scale T, mode int) T {
	if !t.shape.IsRank(2) {
		panic("tensor: variance-scaling initializer requires a rank-2 shape")
	}
	var n T
	switch mode {
	case 1:
		n = T(t.shape.Dim(0))
	case 2:
		n = T(t.shape.Dim(1))
	default:
		n = T(t.shape.Dim(0)+t.shape.Dim(1)) / 2
	}
	return T(math.Sqrt(float64(scale / n)))
}

// RandLecun, RandXavier and RandHe are uniform variance-scaling
// initializers over a rank-2 tensor; RandNLecun etc. are their
// normal-distribution counterparts. Scale/mode pairs are taken directly
// from tensor.h: LeCun uses (1, row), Xavier uses (1, (row+col)/2), He
// uses (2, row).
func RandLecun[T Float](t *Tensor[T], engine *rand.Rand) {
	m := varianceScalingMax(t, T(1), 1)
	Rand(t, engine, -m, m)
}

func RandNLecun[T Float](t *Tensor[T], engine *rand.Rand) {
	sigma := varianceScalingSigma(t, T(1), 1)
	RandN(t, engine, 0, sigma)
}

func RandXavier[T Float](t *Tensor[T], engine *rand.Rand) {
	m := varianceScalingMax(t, T(1), 3)
	Rand(t, engine, -m, m)
}

func RandNXavier[T Float](t *Tensor[T], engine *rand.Rand) {
	sigma := varianceScalingSigma(t, T(1), 3)
	RandN(t, engine, 0, sigma)
}

func RandHe[T Float](t *Tensor[T], engine *rand.Rand) {
	m := varianceScalingMax(t, T(2), 1)
	Rand(t, engine, -m, m)
}

func RandNHe[T Float](t *Tensor[T], engine *rand.Rand) {
	sigma := varianceScalingSigma(t, T(2), 1)
	RandN(t, engine, 0, sigma)
}

// RandInit dispatches to the initializer named by initType, mirroring
// tensor.h's Tensor::rand_init switch. initType values requiring no
// parameters ignore param1/param2.
func RandInit[T Float](t *Tensor[T], engine *rand.Rand, initType InitType, param1, param2 T) {
	switch initType {
	case InitNone:
	case InitZeros:
		t.Zeros()
	case InitOnes:
		SetOnes[T](t)
	case InitConstant:
		t.Constant(param1)
	case InitRand:
		Rand(t, engine, param1, param2)
	case InitRandN:
		RandN(t, engine, param1, param2)
	case InitRandLecun:
		RandLecun(t, engine)
	case InitRandNLecun:
		RandNLecun(t, engine)
	case InitRandXavier:
		RandXavier(t, engine)
	case InitRandNXavier:
		RandNXavier(t, engine)
	case InitRandHe:
		RandHe(t, engine)
	case InitRandNHe:
		RandNHe(t, engine)
	case InitRandInt:
		RandInt[T](t, engine, int(param1), int(param2))
	case InitArange:
		Arange[T](t)
	default:
		panic(fmt.Sprintf("tensor: unknown initializer type %d", initType))
	}
}
