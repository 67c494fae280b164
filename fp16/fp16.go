package fp16

import "math"

// Q is a signed 16-bit fixed-point number. The number of fractional bits
// (the Q-point) is not carried in the type - as in the original C, the
// caller must track it and only combine values sharing the same Q-point
// (except where an operation explicitly takes two).
type Q int16

const (
	// Max is the largest representable Q value.
	Max Q = math.MaxInt16
	// Min is the smallest representable Q value.
	Min Q = math.MinInt16
)

func saturate(v int32) Q {
	if v > int32(Max) {
		return Max
	}
	if v < int32(Min) {
		return Min
	}
	return Q(v)
}

// FromFloat converts a float64 to Q at the given number of fractional
// bits, rounding to nearest and saturating on overflow.
func FromFloat(v float64, frac uint8) Q {
	half := 0.5 / float64(uint32(1)<<frac)
	if v >= 0 {
		v += half
	} else {
		v -= half
	}
	v *= float64(uint32(1) << frac)
	return saturate(int32(v))
}

// ToFloat converts a Q value at the given number of fractional bits back
// to float64.
func ToFloat(v Q, frac uint8) float64 {
	return float64(v) / float64(uint32(1)<<frac)
}

// Add returns summand1 + summand2, saturating on overflow. Both operands
// must share the same Q-point.
func Add(summand1, summand2 Q) Q {
	return saturate(int32(summand1) + int32(summand2))
}

// Sub returns minuend - subtrahend, saturating on overflow. Both operands
// must share the same Q-point.
func Sub(minuend, subtrahend Q) Q {
	return saturate(int32(minuend) - int32(subtrahend))
}

// Mult multiplies mult1 (at frac1 fractional bits) by mult2 (at frac2
// fractional bits), returning a result at frac1 fractional bits,
// saturating on overflow.
func Mult(mult1 Q, frac1 uint8, mult2 Q, frac2 uint8) Q {
	_ = frac1
	result := int32(mult1) * int32(mult2)
	result >>= frac2
	return saturate(result)
}

// Div divides dividend (at frac1 fractional bits) by divisor (at frac2
// fractional bits), returning a result at frac1 fractional bits,
// saturating on overflow. Div panics if divisor is zero.
func Div(dividend Q, frac1 uint8, divisor Q, frac2 uint8) Q {
	_ = frac1
	if divisor == 0 {
		panic("fp16: division by zero")
	}
	result := (int32(dividend) << frac2) / int32(divisor)
	return saturate(result)
}

// Sqrt returns the rounded integer square root of a non-negative input,
// using the same bit-by-bit shift-subtract algorithm as the original's
// fp16_sqrt, saturating the result to Max.
func Sqrt(a uint32) Q {
	op := a
	var res uint32
	var one uint32 = 1 << 30

	for one > op {
		one >>= 2
	}
	for one != 0 {
		if op >= res+one {
			op -= res + one
			res += one << 1
		}
		res >>= 1
		one >>= 2
	}
	if op > res {
		res++
	}
	if res > uint32(Max) {
		res = uint32(Max)
	}
	return Q(res)
}

// ToInt truncates v (at frac fractional bits) to its integer part.
func ToInt(v Q, frac uint8) int16 {
	return int16(v) / (1 << frac)
}

// FromInt converts an integer part to Q at frac fractional bits,
// without overflow checking (matching the original's fp16_inttofp,
// which does not saturate).
func FromInt(intPart int16, frac uint8) Q {
	return Q(intPart * (1 << frac))
}
