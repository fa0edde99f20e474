package llmath

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
)

// Gemv computes y <- alpha*A*x + beta*y, or, if transA, y <- alpha*A^T*x
// + beta*y. A is m x n row-major with leading dimension ldA (ldA >= n).
// The float64 instantiation is delegated to gonum's reference BLAS
// implementation (blas64.Implementation().Dgemv); other element types
// use the equivalent manual loop.
func Gemv[T Float](transA bool, m, n int, alpha T, a []T, ldA int, x []T, beta T, y []T) {
	if fa, ok := asFloat64Slice(a); ok {
		fx, _ := asFloat64Slice(x)
		fy, _ := asFloat64Slice(y)
		tr := blas64.NoTrans
		if transA {
			tr = blas64.Trans
		}
		blas64.Implementation().Dgemv(tr, m, n, float64(alpha), fa, ldA, fx, 1, float64(beta), fy, 1)
		return
	}

	if !transA {
		if len(x) < n || len(y) < m {
			panic(fmt.Sprintf("llmath: gemv shape mismatch m=%d n=%d len(x)=%d len(y)=%d", m, n, len(x), len(y)))
		}
		for i := 0; i < m; i++ {
			var sum T
			row := a[i*ldA : i*ldA+n]
			for j := 0; j < n; j++ {
				sum += row[j] * x[j]
			}
			y[i] = alpha*sum + beta*y[i]
		}
		return
	}

	if len(x) < m || len(y) < n {
		panic(fmt.Sprintf("llmath: gemv^T shape mismatch m=%d n=%d len(x)=%d len(y)=%d", m, n, len(x), len(y)))
	}
	scaled := make([]T, n)
	for j := 0; j < n; j++ {
		scaled[j] = beta * y[j]
	}
	for i := 0; i < m; i++ {
		row := a[i*ldA : i*ldA+n]
		xi := alpha * x[i]
		for j := 0; j < n; j++ {
			scaled[j] += xi * row[j]
		}
	}
	copy(y, scaled)
}

// Gemm computes Z <- alpha*op(X)*op(Y) + beta*Z over m x n x k
// row-major operands, where op(X) is X or X^T according to transX
// (analogously for Y). X's leading dimension is k when !transX, m when
// transX; Y's is n when !transY, k when transY; Z's is always n. The
// float64 instantiation delegates to gonum's reference Dgemm.
func Gemm[T Float](transX, transY bool, m, n, k int, alpha T, x []T, y []T, beta T, z []T) {
	if fx, ok := asFloat64Slice(x); ok {
		fy, _ := asFloat64Slice(y)
		fz, _ := asFloat64Slice(z)
		trX, trY := blas64.NoTrans, blas64.NoTrans
		ldX, ldY := k, n
		if transX {
			trX = blas64.Trans
			ldX = m
		}
		if transY {
			trY = blas64.Trans
			ldY = k
		}
		blas64.Implementation().Dgemm(trX, trY, m, n, k, float64(alpha), fx, ldX, fy, ldY, float64(beta), fz, n)
		return
	}

	xAt := func(i, p int) T {
		if !transX {
			return x[i*k+p]
		}
		return x[p*m+i]
	}
	yAt := func(p, j int) T {
		if !transY {
			return y[p*n+j]
		}
		return y[j*k+p]
	}

	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum T
			for p := 0; p < k; p++ {
				sum += xAt(i, p) * yAt(p, j)
			}
			idx := i*n + j
			z[idx] = alpha*sum + beta*z[idx]
		}
	}
}
