package decimal

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"github.com/cockroachdb/apd/v3"
)

// Decimal is an immutable, always-finite decimal number. The zero value is
// ready to use and equal to 0.
//
// Decimal wraps an apd.Decimal restricted to finite form: no constructor or
// operation lets a NaN or an infinity escape, so comparison between two
// Decimals is always determinate and the type is safe to use as the key of
// an ordered or hashed container. Values are never mutated after
// construction; every operation returns a fresh Decimal, and copies may be
// shared across goroutines freely.
type Decimal struct {
	val apd.Decimal
}

// Arithmetic runs at 34 significant digits, the decimal128 working
// precision.
const precision = 34

var dec128 = apd.BaseContext.WithPrecision(precision)

// Zero returns the decimal 0, the additive identity.
func Zero() Decimal {
	return Decimal{}
}

// Parse converts a decimal literal to a Decimal. The grammar is the
// underlying primitive's: optional sign, digits, optional fraction,
// optional exponent. Text the grammar rejects fails with ErrParse; text
// that parses to NaN or an infinity fails with ErrNonFinite. Digits are
// kept exactly as written, so Parse("1.0") and Parse("1.00") hold
// different spellings of the same number and compare equal.
func Parse(s string) (Decimal, error) {
	var d apd.Decimal
	if _, _, err := d.SetString(s); err != nil {
		return Decimal{}, fmt.Errorf("%w: %q", ErrParse, s)
	}
	switch d.Form {
	case apd.Finite:
		return Decimal{val: d}, nil
	case apd.Infinite:
		return Decimal{}, fmt.Errorf("%w: infinity is not supported", ErrNonFinite)
	default:
		return Decimal{}, fmt.Errorf("%w: NaN is not supported", ErrNonFinite)
	}
}

// FromInt32 converts v to a Decimal. The conversion is exact.
func FromInt32(v int32) Decimal {
	return FromInt64(int64(v))
}

// FromInt64 converts v to a Decimal. The conversion is exact.
func FromInt64(v int64) Decimal {
	var d apd.Decimal
	d.SetInt64(v)
	return Decimal{val: d}
}

// FromUint32 converts v to a Decimal. The conversion is exact.
func FromUint32(v uint32) Decimal {
	return FromInt64(int64(v))
}

// FromUint64 converts v to a Decimal. The conversion is exact.
func FromUint64(v uint64) Decimal {
	var d apd.Decimal
	d.Coeff.SetUint64(v)
	return Decimal{val: d}
}

// IsZero reports whether d is zero.
func (d Decimal) IsZero() bool {
	return d.val.IsZero()
}

// IsNegative reports whether d is less than zero.
func (d Decimal) IsNegative() bool {
	return d.val.Sign() < 0
}

// Cmp compares d and other numerically, returning -1, 0 or +1. Two values
// constructed from different spellings of the same number compare equal.
//
// Finite decimals always compare determinately; encountering a non-finite
// payload here means the construction invariant was broken upstream, which
// is a defect in this package rather than a data problem, so Cmp panics
// instead of returning an error.
func (d Decimal) Cmp(other Decimal) int {
	if d.val.Form != apd.Finite || other.val.Form != apd.Finite {
		panic("decimal: comparison of non-finite value, invariant violated")
	}
	return d.val.Cmp(&other.val)
}

// Equal reports whether d and other are numerically equal.
func (d Decimal) Equal(other Decimal) bool {
	return d.Cmp(other) == 0
}

// Less reports whether d is numerically less than other. It is the
// comparison function to hand to sorted containers.
func (d Decimal) Less(other Decimal) bool {
	return d.Cmp(other) < 0
}

// Hash returns a hash of d's numeric value, consistent with Equal: any two
// equal Decimals hash alike even when spelled differently ("1.0", "1.00").
// It hashes the reduced form, with zero special-cased so "0", "-0" and
// "0.00" all land in the same bucket.
func (d Decimal) Hash() uint64 {
	h := fnv.New64a()
	if d.val.IsZero() {
		h.Write([]byte{0})
		return h.Sum64()
	}
	var r apd.Decimal
	r.Reduce(&d.val)
	var prefix [5]byte
	if r.Negative {
		prefix[0] = 1
	}
	binary.BigEndian.PutUint32(prefix[1:], uint32(r.Exponent))
	h.Write(prefix[:])
	h.Write(r.Coeff.Bytes())
	return h.Sum64()
}

// String returns d's canonical textual form, the same text the underlying
// primitive produces: plain notation, switching to scientific form for
// extreme exponents. Parse(d.String()) always yields a value equal to d.
func (d Decimal) String() string {
	return d.val.String()
}
