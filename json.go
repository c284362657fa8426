package decimal

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// MarshalJSON encodes d as a quoted decimal string. A string rather than a
// bare number keeps consumers from rereading the value through binary
// floating point.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, d.String()), nil
}

// UnmarshalJSON decodes a JSON string, integer or floating-point number
// into d:
//
//   - strings go through Parse, so "1.23" and "1.2E5" work and "foo" or
//     "NaN" fail;
//   - integers that fit int64 or uint64 convert exactly;
//   - every other number is reformatted from float64 to its shortest
//     decimal text and reparsed, which preserves the digits callers see
//     when the number is printed rather than its base-2 tail.
//
// Any other JSON shape fails with ErrInvalidValue.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	switch {
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		return d.setFromString(s)
	case len(data) > 0 && (data[0] == '-' || (data[0] >= '0' && data[0] <= '9')):
		return d.setFromNumber(string(data))
	default:
		return fmt.Errorf("%w: expected a Decimal value, got %s", ErrInvalidValue, data)
	}
}

// MarshalText implements [encoding.TextMarshaler] using the canonical
// string form.
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (d *Decimal) UnmarshalText(text []byte) error {
	return d.setFromString(string(text))
}

func (d *Decimal) setFromString(s string) error {
	v, err := Parse(s)
	if err != nil {
		return fmt.Errorf("%w: %q, expected a Decimal value", ErrInvalidValue, s)
	}
	d.val = v.val
	return nil
}

func (d *Decimal) setFromNumber(s string) error {
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			d.val = FromInt64(i).val
			return nil
		}
		if u, err := strconv.ParseUint(s, 10, 64); err == nil {
			d.val = FromUint64(u).val
			return nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("%w: %q, expected a Decimal value", ErrInvalidValue, s)
	}
	return d.setFromFloat(f)
}

func (d *Decimal) setFromFloat(f float64) error {
	v, err := Parse(strconv.FormatFloat(f, 'g', -1, 64))
	if err != nil {
		return fmt.Errorf("%w: %v, expected a Decimal value", ErrInvalidValue, f)
	}
	d.val = v.val
	return nil
}
