package llmath

import (
	"math"

	"github.com/gonum/floats"
)

// Sum returns the sum of x[0:n].
func Sum[T Float](n int, x []T) T {
	checkEqualLen(n, len(x))
	if f, ok := asFloat64Slice(x[:n]); ok {
		return T(floats.Sum(f))
	}
	var sum T
	for i := 0; i < n; i++ {
		sum += x[i]
	}
	return sum
}

// Norm1 returns the L1 norm (sum of absolute values) of x[0:n].
func Norm1[T Float](n int, x []T) T {
	checkEqualLen(n, len(x))
	var sum T
	for i := 0; i < n; i++ {
		v := x[i]
		if v < 0 {
			v = -v
		}
		sum += v
	}
	return sum
}

// Norm2 returns the L2 (Euclidean) norm of x[0:n].
func Norm2[T Float](n int, x []T) T {
	checkEqualLen(n, len(x))
	var sum T
	for i := 0; i < n; i++ {
		sum += x[i] * x[i]
	}
	return T(math.Sqrt(float64(sum)))
}

// Dot returns the dot product of x[0:n] and y[0:n].
func Dot[T Float](n int, x, y []T) T {
	checkEqualLen(n, len(x), len(y))
	if fx, ok := asFloat64Slice(x[:n]); ok {
		if fy, ok := asFloat64Slice(y[:n]); ok {
			return T(floats.Dot(fx, fy))
		}
	}
	var sum T
	for i := 0; i < n; i++ {
		sum += x[i] * y[i]
	}
	return sum
}

// EuclideanDistance returns the Euclidean distance between x[0:n] and
// y[0:n].
func EuclideanDistance[T Float](n int, x, y []T) T {
	checkEqualLen(n, len(x), len(y))
	var sum T
	for i := 0; i < n; i++ {
		d := x[i] - y[i]
		sum += d * d
	}
	return T(math.Sqrt(float64(sum)))
}

// Max returns the maximum element of x[0:n].
func Max[T Float](n int, x []T) T {
	checkEqualLen(n, len(x))
	m := x[0]
	for i := 1; i < n; i++ {
		if x[i] > m {
			m = x[i]
		}
	}
	return m
}

// Min returns the minimum element of x[0:n].
func Min[T Float](n int, x []T) T {
	checkEqualLen(n, len(x))
	m := x[0]
	for i := 1; i < n; i++ {
		if x[i] < m {
			m = x[i]
		}
	}
	return m
}

// SumRow computes y[j] = alpha*sum_i(X[i][j]) + beta*y[j] over an m x n
// row-major matrix X.
func SumRow[T Float](m, n int, alpha T, x []T, beta T, y []T) {
	checkEqualLen(n, len(y))
	checkEqualLen(m*n, len(x))
	for j := 0; j < n; j++ {
		var sum T
		for i := 0; i < m; i++ {
			sum += x[i*n+j]
		}
		y[j] = alpha*sum + beta*y[j]
	}
}

// SumCol computes y[i] = alpha*sum_j(X[i][j]) + beta*y[i] over an m x n
// row-major matrix X.
func SumCol[T Float](m, n int, alpha T, x []T, beta T, y []T) {
	checkEqualLen(m, len(y))
	checkEqualLen(m*n, len(x))
	for i := 0; i < m; i++ {
		var sum T
		for j := 0; j < n; j++ {
			sum += x[i*n+j]
		}
		y[i] = alpha*sum + beta*y[i]
	}
}

// Softmax computes a numerically stable row-wise softmax of the m x n
// row-major matrix x into z: each row has its max subtracted before
// exponentiating, then is normalized to sum to 1.
func Softmax[T Float](m, n int, x []T, z []T) {
	checkEqualLen(m*n, len(x), len(z))
	for i := 0; i < m; i++ {
		row := x[i*n : i*n+n]
		out := z[i*n : i*n+n]
		rowMax := Max(n, row)
		var sum T
		for j := 0; j < n; j++ {
			v := T(math.Exp(float64(row[j] - rowMax)))
			out[j] = v
			sum += v
		}
		for j := 0; j < n; j++ {
			out[j] /= sum
		}
	}
}
