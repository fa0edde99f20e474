package tensor

import (
	"math"

	"github.com/gonum/floats"
)

// Sum returns the sum of all elements. The float64 path delegates to
// github.com/gonum/floats, matching the teacher's own use of that package
// in vector.go for dense reductions.
func Sum[T Float](t *Tensor[T]) T {
	if f64, ok := any(t.data).([]float64); ok {
		return T(floats.Sum(f64))
	}
	var sum T
	for _, v := range t.data {
		sum += v
	}
	return sum
}

// Mean returns the arithmetic mean of all elements. It returns 0 for an
// empty tensor.
func Mean[T Float](t *Tensor[T]) T {
	if len(t.data) == 0 {
		return 0
	}
	return Sum(t) / T(len(t.data))
}

// Asum returns the sum of absolute values of all elements.
func Asum[T Float](t *Tensor[T]) T {
	var sum T
	for _, v := range t.data {
		if v < 0 {
			v = -v
		}
		sum += v
	}
	return sum
}

// Amean returns the mean of absolute values of all elements.
func Amean[T Float](t *Tensor[T]) T {
	if len(t.data) == 0 {
		return 0
	}
	return Asum(t) / T(len(t.data))
}

// Var returns the (biased, population) variance of all elements.
func Var[T Float](t *Tensor[T]) T {
	if len(t.data) == 0 {
		return 0
	}
	mean := Mean(t)
	var sum T
	for _, v := range t.data {
		d := v - mean
		sum += d * d
	}
	return sum / T(len(t.data))
}

// Std returns the (biased, population) standard deviation of all
// elements.
func Std[T Float](t *Tensor[T]) T {
	return T(math.Sqrt(float64(Var(t))))
}
