package llmath

import "fmt"

func checkEqualLen(n int, lens ...int) {
	for _, l := range lens {
		if l != n {
			panic(fmt.Sprintf("llmath: length mismatch, want %d, got %d", n, l))
		}
	}
}

// Axpb computes y[i] = alpha*x[i] + beta for every i.
func Axpb[T Float](n int, alpha T, x []T, beta T, y []T) {
	checkEqualLen(n, len(x), len(y))
	for i := 0; i < n; i++ {
		y[i] = alpha*x[i] + beta
	}
}

// Axpy computes y[i] += alpha*x[i] for every i.
func Axpy[T Float](n int, alpha T, x []T, y []T) {
	checkEqualLen(n, len(x), len(y))
	for i := 0; i < n; i++ {
		y[i] += alpha * x[i]
	}
}

// Axpby computes y[i] = alpha*x[i] + beta*y[i] for every i.
func Axpby[T Float](n int, alpha T, x []T, beta T, y []T) {
	checkEqualLen(n, len(x), len(y))
	for i := 0; i < n; i++ {
		y[i] = alpha*x[i] + beta*y[i]
	}
}

// Xypz computes z[i] = x[i]*y[i] + z[i] for every i.
func Xypz[T Float](n int, x, y, z []T) {
	checkEqualLen(n, len(x), len(y), len(z))
	for i := 0; i < n; i++ {
		z[i] = x[i]*y[i] + z[i]
	}
}

// Xypbz computes z[i] = x[i]*y[i] + beta*z[i] for every i.
func Xypbz[T Float](n int, x, y []T, beta T, z []T) {
	checkEqualLen(n, len(x), len(y), len(z))
	for i := 0; i < n; i++ {
		z[i] = x[i]*y[i] + beta*z[i]
	}
}

// Xdypz computes z[i] = x[i]/y[i] + z[i] for every i.
func Xdypz[T Float](n int, x, y, z []T) {
	checkEqualLen(n, len(x), len(y), len(z))
	for i := 0; i < n; i++ {
		z[i] = x[i]/y[i] + z[i]
	}
}

// Xdypbz computes z[i] = x[i]/y[i] + beta*z[i] for every i.
func Xdypbz[T Float](n int, x, y []T, beta T, z []T) {
	checkEqualLen(n, len(x), len(y), len(z))
	for i := 0; i < n; i++ {
		z[i] = x[i]/y[i] + beta*z[i]
	}
}

// Add computes z[i] = x[i] + y[i] for every i.
func Add[T Float](n int, x, y, z []T) {
	checkEqualLen(n, len(x), len(y), len(z))
	for i := 0; i < n; i++ {
		z[i] = x[i] + y[i]
	}
}

// Sub computes z[i] = x[i] - y[i] for every i.
func Sub[T Float](n int, x, y, z []T) {
	checkEqualLen(n, len(x), len(y), len(z))
	for i := 0; i < n; i++ {
		z[i] = x[i] - y[i]
	}
}

// Mul computes z[i] = x[i] * y[i] for every i.
func Mul[T Float](n int, x, y, z []T) {
	checkEqualLen(n, len(x), len(y), len(z))
	for i := 0; i < n; i++ {
		z[i] = x[i] * y[i]
	}
}

// Div computes z[i] = x[i] / y[i] for every i.
func Div[T Float](n int, x, y, z []T) {
	checkEqualLen(n, len(x), len(y), len(z))
	for i := 0; i < n; i++ {
		z[i] = x[i] / y[i]
	}
}

// AddScalar computes z[i] = x[i] + alpha for every i.
func AddScalar[T Float](n int, x []T, alpha T, z []T) {
	checkEqualLen(n, len(x), len(z))
	for i := 0; i < n; i++ {
		z[i] = x[i] + alpha
	}
}

// SubScalar computes z[i] = x[i] - alpha for every i.
func SubScalar[T Float](n int, x []T, alpha T, z []T) {
	checkEqualLen(n, len(x), len(z))
	for i := 0; i < n; i++ {
		z[i] = x[i] - alpha
	}
}

// MulScalar computes z[i] = x[i] * alpha for every i.
func MulScalar[T Float](n int, x []T, alpha T, z []T) {
	checkEqualLen(n, len(x), len(z))
	for i := 0; i < n; i++ {
		z[i] = x[i] * alpha
	}
}

// DivScalar computes z[i] = x[i] / alpha for every i.
func DivScalar[T Float](n int, x []T, alpha T, z []T) {
	checkEqualLen(n, len(x), len(z))
	for i := 0; i < n; i++ {
		z[i] = x[i] / alpha
	}
}
