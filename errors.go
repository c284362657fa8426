package decimal

import "errors"

// Errors returned by this package. Every fallible operation wraps exactly
// one of these, so callers can distinguish the cause with errors.Is while
// the message stays human-readable.
var (
	// ErrParse indicates text that does not match the decimal grammar.
	ErrParse = errors.New("invalid decimal syntax")

	// ErrNonFinite indicates text that parsed successfully but denotes
	// NaN or an infinity.
	ErrNonFinite = errors.New("non-finite decimal")

	// ErrNonFiniteResult indicates an arithmetic operation whose exact
	// result is not finite, such as division by zero.
	ErrNonFiniteResult = errors.New("non-finite result")

	// ErrInvalidValue indicates a structured value (JSON, YAML, SQL)
	// that cannot be decoded as a Decimal.
	ErrInvalidValue = errors.New("invalid decimal value")
)
