/*
Package decimal implements an immutable, always-finite decimal number type
for financial and other precision-sensitive arithmetic where binary
floating-point rounding is unacceptable.

# Finite-only invariant

[Decimal] wraps the cockroachdb/apd decimal primitive and forbids NaN and
infinity at every construction boundary: [Parse] rejects non-finite
literals even though the grammar accepts them, the guarded operations
([Decimal.Div], [Decimal.Rem], [Decimal.Pow]) return an error instead of a
non-finite value, and the structured-data decoders validate before a value
escapes. Because of that invariant, comparison is total and Decimal works
as the key of ordered and hashed containers.

# Equality, ordering and hashing

Equality and ordering are value-based, never spelling-based: values parsed
from "1.0" and "1.00" are equal, ordered identically, and return the same
[Decimal.Hash]. Use [Decimal.Cmp] or [Decimal.Less] for sorted containers
and [Decimal.Hash] for hashed ones.

# Arithmetic

Addition, subtraction, multiplication, negation, absolute value, minimum,
maximum, fused multiply-add and summation are total over finite operands
and return plain Decimals. Division, remainder and exponentiation can
produce non-finite results from finite operands (1/0, x%0, 0^-1), so they
return (Decimal, error); a non-finite outcome yields [ErrNonFiniteResult]
and no value.

# Serialization

Outbound, a Decimal is always a quoted decimal string, in JSON, YAML and
SQL alike, so no consumer rereads it through a float64. Inbound, the
decoders accept a string, an integer, or a floating-point number and
produce equal Decimals for equal quantities: 1234, 1234.0 and "1234"
decode to the same value.

Decimal values are immutable; every operation returns a new value and
copies may be shared across goroutines without synchronization.
*/
package decimal
