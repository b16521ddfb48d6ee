package rangeproof

import (
	"github.com/gtank/ristretto255"

	"github.com/anupsv/wake-darkpool/internal/field"
	"github.com/anupsv/wake-darkpool/internal/pool"
)

func onesVec(n int) []*ristretto255.Scalar {
	out := make([]*ristretto255.Scalar, n)
	one := field.ScalarOne()
	for i := range out {
		out[i] = one
	}
	return out
}

func powersOf(x *ristretto255.Scalar, n int) []*ristretto255.Scalar {
	out := make([]*ristretto255.Scalar, n)
	cur := field.ScalarOne()
	for i := 0; i < n; i++ {
		out[i] = cur
		cur = ristretto255.NewScalar().Multiply(cur, x)
	}
	return out
}

func invertVec(v []*ristretto255.Scalar) []*ristretto255.Scalar {
	out := make([]*ristretto255.Scalar, len(v))
	for i, s := range v {
		out[i] = ristretto255.NewScalar().Invert(s)
	}
	return out
}

func hadamard(a, b []*ristretto255.Scalar) []*ristretto255.Scalar {
	out := make([]*ristretto255.Scalar, len(a))
	for i := range a {
		out[i] = ristretto255.NewScalar().Multiply(a[i], b[i])
	}
	return out
}

func addVec(a, b []*ristretto255.Scalar) []*ristretto255.Scalar {
	out := make([]*ristretto255.Scalar, len(a))
	for i := range a {
		out[i] = ristretto255.NewScalar().Add(a[i], b[i])
	}
	return out
}

func subVec(a, b []*ristretto255.Scalar) []*ristretto255.Scalar {
	out := make([]*ristretto255.Scalar, len(a))
	for i := range a {
		out[i] = ristretto255.NewScalar().Subtract(a[i], b[i])
	}
	return out
}

func scaleVec(a []*ristretto255.Scalar, x *ristretto255.Scalar) []*ristretto255.Scalar {
	out := make([]*ristretto255.Scalar, len(a))
	for i := range a {
		out[i] = ristretto255.NewScalar().Multiply(a[i], x)
	}
	return out
}

func innerProduct(a, b []*ristretto255.Scalar) *ristretto255.Scalar {
	out := pool.GetScalar()
	for i := range a {
		term := ristretto255.NewScalar().Multiply(a[i], b[i])
		out.Add(out, term)
	}
	return out
}

func scalarMultElement(s *ristretto255.Scalar, p *ristretto255.Element) *ristretto255.Element {
	return pool.GetElement().ScalarMult(s, p)
}

// multiScalarMult computes sum_i scalars[i]*points[i] using a pooled
// accumulator and a pooled scratch term to avoid an allocation per element
// in the hot IPA folding loop.
func multiScalarMult(scalars []*ristretto255.Scalar, points []*ristretto255.Element) *ristretto255.Element {
	acc := pool.GetElement()
	term := pool.GetElement()
	defer pool.PutElement(term)
	for i := range scalars {
		term.ScalarMult(scalars[i], points[i])
		acc.Add(acc, term)
	}
	return acc
}

func sumElements(points []*ristretto255.Element) *ristretto255.Element {
	acc := pool.GetElement()
	for _, p := range points {
		acc.Add(acc, p)
	}
	return acc
}
