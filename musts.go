package decimal

import "fmt"

// MustParse is like [Parse] but panics on invalid input. It exists for
// compile-time-known literals in tests and constant tables; never feed it
// untrusted input.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}
