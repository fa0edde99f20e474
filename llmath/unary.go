package llmath

import "math"

// safeLogEpsilon is the small positive floor safe_log clamps its input
// to before taking the logarithm, avoiding -Inf for zero or negative
// inputs.
const safeLogEpsilon = 1e-12

func unary[T Float](n int, x []T, z []T, f func(float64) float64) {
	checkEqualLen(n, len(x), len(z))
	for i := 0; i < n; i++ {
		z[i] = T(f(float64(x[i])))
	}
}

// Inv computes z[i] = 1/x[i].
func Inv[T Float](n int, x, z []T) { unary(n, x, z, func(v float64) float64 { return 1 / v }) }

// Sqrt computes z[i] = sqrt(x[i]).
func Sqrt[T Float](n int, x, z []T) { unary(n, x, z, math.Sqrt) }

// Cbrt computes z[i] = cbrt(x[i]).
func Cbrt[T Float](n int, x, z []T) { unary(n, x, z, math.Cbrt) }

// Square computes z[i] = x[i]^2.
func Square[T Float](n int, x, z []T) { unary(n, x, z, func(v float64) float64 { return v * v }) }

// Cubic computes z[i] = x[i]^3.
func Cubic[T Float](n int, x, z []T) {
	unary(n, x, z, func(v float64) float64 { return v * v * v })
}

// Pow computes z[i] = x[i]^y[i].
func Pow[T Float](n int, x, y, z []T) {
	checkEqualLen(n, len(x), len(y), len(z))
	for i := 0; i < n; i++ {
		z[i] = T(math.Pow(float64(x[i]), float64(y[i])))
	}
}

// PowScalar computes z[i] = x[i]^alpha.
func PowScalar[T Float](n int, x []T, alpha T, z []T) {
	unary(n, x, z, func(v float64) float64 { return math.Pow(v, float64(alpha)) })
}

// Exp computes z[i] = e^x[i].
func Exp[T Float](n int, x, z []T) { unary(n, x, z, math.Exp) }

// Expm1 computes z[i] = e^x[i] - 1.
func Expm1[T Float](n int, x, z []T) { unary(n, x, z, math.Expm1) }

// Log computes z[i] = ln(x[i]).
func Log[T Float](n int, x, z []T) { unary(n, x, z, math.Log) }

// SafeLog computes z[i] = ln(max(x[i], epsilon)).
func SafeLog[T Float](n int, x, z []T) {
	unary(n, x, z, func(v float64) float64 {
		if v < safeLogEpsilon {
			v = safeLogEpsilon
		}
		return math.Log(v)
	})
}

// Sigmoid computes z[i] = 1/(1+e^-x[i]).
func Sigmoid[T Float](n int, x, z []T) {
	unary(n, x, z, func(v float64) float64 { return 1 / (1 + math.Exp(-v)) })
}

// Sin computes z[i] = sin(x[i]).
func Sin[T Float](n int, x, z []T) { unary(n, x, z, math.Sin) }

// Asin computes z[i] = asin(x[i]).
func Asin[T Float](n int, x, z []T) { unary(n, x, z, math.Asin) }

// Sinh computes z[i] = sinh(x[i]).
func Sinh[T Float](n int, x, z []T) { unary(n, x, z, math.Sinh) }

// Asinh computes z[i] = asinh(x[i]).
func Asinh[T Float](n int, x, z []T) { unary(n, x, z, math.Asinh) }

// Cos computes z[i] = cos(x[i]).
func Cos[T Float](n int, x, z []T) { unary(n, x, z, math.Cos) }

// Acos computes z[i] = acos(x[i]).
func Acos[T Float](n int, x, z []T) { unary(n, x, z, math.Acos) }

// Cosh computes z[i] = cosh(x[i]).
func Cosh[T Float](n int, x, z []T) { unary(n, x, z, math.Cosh) }

// Acosh computes z[i] = acosh(x[i]).
func Acosh[T Float](n int, x, z []T) { unary(n, x, z, math.Acosh) }

// Tan computes z[i] = tan(x[i]).
func Tan[T Float](n int, x, z []T) { unary(n, x, z, math.Tan) }

// Atan computes z[i] = atan(x[i]).
func Atan[T Float](n int, x, z []T) { unary(n, x, z, math.Atan) }

// Tanh computes z[i] = tanh(x[i]).
func Tanh[T Float](n int, x, z []T) { unary(n, x, z, math.Tanh) }

// Atanh computes z[i] = atanh(x[i]).
func Atanh[T Float](n int, x, z []T) { unary(n, x, z, math.Atanh) }

// Abs computes z[i] = |x[i]|.
func Abs[T Float](n int, x, z []T) { unary(n, x, z, math.Abs) }

// MaxScalar computes z[i] = max(x[i], alpha).
func MaxScalar[T Float](n int, x []T, alpha T, z []T) {
	unary(n, x, z, func(v float64) float64 { return math.Max(v, float64(alpha)) })
}

// MinScalar computes z[i] = min(x[i], alpha).
func MinScalar[T Float](n int, x []T, alpha T, z []T) {
	unary(n, x, z, func(v float64) float64 { return math.Min(v, float64(alpha)) })
}

// ElemMax computes z[i] = max(x[i], y[i]).
func ElemMax[T Float](n int, x, y, z []T) {
	checkEqualLen(n, len(x), len(y), len(z))
	for i := 0; i < n; i++ {
		if x[i] > y[i] {
			z[i] = x[i]
		} else {
			z[i] = y[i]
		}
	}
}

// ElemMin computes z[i] = min(x[i], y[i]).
func ElemMin[T Float](n int, x, y, z []T) {
	checkEqualLen(n, len(x), len(y), len(z))
	for i := 0; i < n; i++ {
		if x[i] < y[i] {
			z[i] = x[i]
		} else {
			z[i] = y[i]
		}
	}
}
