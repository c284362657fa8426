package decimal

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// The fused multiply in MulAdd is carried at twice the working precision so
// that only the final addition rounds.
var widened = apd.BaseContext.WithPrecision(2 * precision)

// finite asserts that the result of one of the total operations is finite.
// The context's exponent range spans ±10^100000, far beyond any operand a
// caller can realistically hold, so a non-finite result here signals a
// broken invariant rather than bad input.
func finite(res apd.Decimal, err error, op string) Decimal {
	if err != nil || res.Form != apd.Finite {
		panic("decimal: " + op + " produced a non-finite result, invariant violated")
	}
	return Decimal{val: res}
}

// Add returns d + other.
func (d Decimal) Add(other Decimal) Decimal {
	var res apd.Decimal
	_, err := dec128.Add(&res, &d.val, &other.val)
	return finite(res, err, "Add")
}

// Sub returns d - other.
func (d Decimal) Sub(other Decimal) Decimal {
	var res apd.Decimal
	_, err := dec128.Sub(&res, &d.val, &other.val)
	return finite(res, err, "Sub")
}

// Mul returns d × other.
func (d Decimal) Mul(other Decimal) Decimal {
	var res apd.Decimal
	_, err := dec128.Mul(&res, &d.val, &other.val)
	return finite(res, err, "Mul")
}

// Neg returns -d. The operation is exact.
func (d Decimal) Neg() Decimal {
	var res apd.Decimal
	res.Neg(&d.val)
	return Decimal{val: res}
}

// Abs returns the absolute value of d. The operation is exact.
func (d Decimal) Abs() Decimal {
	var res apd.Decimal
	res.Abs(&d.val)
	return Decimal{val: res}
}

// Max returns the larger of d and other.
func (d Decimal) Max(other Decimal) Decimal {
	if d.Cmp(other) >= 0 {
		return d
	}
	return other
}

// Min returns the smaller of d and other.
func (d Decimal) Min(other Decimal) Decimal {
	if d.Cmp(other) <= 0 {
		return d
	}
	return other
}

// MulAdd returns d×a + b. The multiplication is exact, so the whole
// operation performs only the one final rounding.
func (d Decimal) MulAdd(a, b Decimal) Decimal {
	var prod, res apd.Decimal
	_, err := widened.Mul(&prod, &d.val, &a.val)
	if err != nil || prod.Form != apd.Finite {
		panic("decimal: MulAdd produced a non-finite result, invariant violated")
	}
	_, err = dec128.Add(&res, &prod, &b.val)
	return finite(res, err, "MulAdd")
}

// Sum returns the sum of ds, folded left to right from Zero. Addition is
// total, so Sum cannot fail.
func Sum(ds ...Decimal) Decimal {
	total := Zero()
	for _, d := range ds {
		total = total.Add(d)
	}
	return total
}

// Div returns d ÷ other. Division is the operation whose exact result can
// leave the finite domain even for finite operands; when it does, most
// commonly on division by zero, Div fails with ErrNonFiniteResult and no
// Decimal is produced.
func (d Decimal) Div(other Decimal) (Decimal, error) {
	var res apd.Decimal
	_, err := dec128.Quo(&res, &d.val, &other.val)
	if err != nil || res.Form != apd.Finite {
		return Decimal{}, fmt.Errorf("%w: %s / %s", ErrNonFiniteResult, &d.val, &other.val)
	}
	return Decimal{val: res}, nil
}

// Rem returns the remainder of d ÷ other. Like Div it fails with
// ErrNonFiniteResult when the result is not finite, such as a zero divisor.
func (d Decimal) Rem(other Decimal) (Decimal, error) {
	var res apd.Decimal
	_, err := dec128.Rem(&res, &d.val, &other.val)
	if err != nil || res.Form != apd.Finite {
		return Decimal{}, fmt.Errorf("%w: %s %% %s", ErrNonFiniteResult, &d.val, &other.val)
	}
	return Decimal{val: res}, nil
}

// Pow returns d raised to exp. Zero raised to a negative exponent is
// infinite, so Pow is guarded and fails with ErrNonFiniteResult rather
// than being total.
func (d Decimal) Pow(exp Decimal) (Decimal, error) {
	var res apd.Decimal
	_, err := dec128.Pow(&res, &d.val, &exp.val)
	if err != nil || res.Form != apd.Finite {
		return Decimal{}, fmt.Errorf("%w: %s ^ %s", ErrNonFiniteResult, &d.val, &exp.val)
	}
	return Decimal{val: res}, nil
}
