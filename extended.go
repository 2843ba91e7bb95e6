package overlap

// extendedScalar is a software double-precision value: a pair (high, low)
// of working-precision floats such that value ≈ high + low and |low| <=
// ulp(high)/2. It stabilizes orient2d against cancellation.
//
// Ref: T.J. Dekker, A floating-point technique for extending the available
// precision (1971); grounded on overlap.hpp's DoublePrecision<T>.
type extendedScalar struct {
	High, Low Scalar
}

// veltkampSplitConstant is 2^(p - floor(p/2)) + 1 for p = 53 (binary64
// mantissa bits including the implicit leading bit).
const veltkampSplitConstant Scalar = 134217729 // 2^27 + 1

// splitScalar performs a Veltkamp split of value into a high part with
// floor(p/2) trailing mantissa bits zeroed and a low remainder, such that
// high + low reproduces value exactly.
func splitScalar(value Scalar) (high, low Scalar) {
	t := veltkampSplitConstant * value
	high = t - (t - value)
	low = value - high

	return high, low
}

// newExtendedScalar constructs an extendedScalar from a single working-
// precision value via Veltkamp splitting.
func newExtendedScalar(value Scalar) extendedScalar {
	h, l := splitScalar(value)

	return extendedScalar{High: h, Low: l}
}

// fastTwoSum computes x+y exactly as a (high, low) pair. Requires |x| >= |y|.
func fastTwoSum(x, y Scalar) extendedScalar {
	s := x + y
	e := y - (s - x)

	return extendedScalar{High: s, Low: e}
}

// twoSum computes x+y exactly as a (high, low) pair, without the ordering
// requirement fastTwoSum has.
func twoSum(x, y Scalar) extendedScalar {
	s := x + y
	v := s - x
	e := (x - (s - v)) + (y - v)

	return extendedScalar{High: s, Low: e}
}

// twoProduct computes x*y exactly as a (high, low) pair using Dekker's
// four-split form. Go has no portable way to detect/force FMA lowering, so
// the FMA fast path from overlap.hpp is not available here; the split-based
// path it falls back to otherwise is used unconditionally.
func twoProduct(x, y Scalar) extendedScalar {
	p := x * y

	xh, xl := splitScalar(x)
	yh, yl := splitScalar(y)

	e := ((xh*yh - p) + xh*yl + xl*yh) + xl*yl

	return extendedScalar{High: p, Low: e}
}

// add returns the extended-precision sum of e and o.
func (e extendedScalar) add(o extendedScalar) extendedScalar {
	s := twoSum(e.High, o.High)
	t := twoSum(e.Low, o.Low)
	v := fastTwoSum(s.High, s.Low+t.High)

	return fastTwoSum(v.High, v.Low+t.Low)
}

// sub returns the extended-precision difference e - o.
func (e extendedScalar) sub(o extendedScalar) extendedScalar {
	return e.add(extendedScalar{High: -o.High, Low: -o.Low})
}

// mul returns the extended-precision product of e and o.
func (e extendedScalar) mul(o extendedScalar) extendedScalar {
	c := twoProduct(e.High, o.High)
	cc := (e.High*o.Low + e.Low*o.High) + c.Low

	return fastTwoSum(c.High, cc)
}

// value collapses the extended-precision pair back to a single working-
// precision scalar.
func (e extendedScalar) value() Scalar {
	return e.High + e.Low
}
