package decimal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	t.Run("adds exactly", func(t *testing.T) {
		got := MustParse("1.11").Add(MustParse("2.22"))
		assert.True(t, got.Equal(MustParse("3.33")), "got %s", got)
	})

	t.Run("zero is the identity", func(t *testing.T) {
		d := MustParse("-7.5")
		assert.True(t, d.Add(Zero()).Equal(d))
		assert.True(t, Zero().Add(d).Equal(d))
	})

	t.Run("reassignment composes like compound assignment", func(t *testing.T) {
		x := MustParse("1")
		x = x.Add(MustParse("2"))
		assert.True(t, x.Equal(MustParse("3")))
		x = x.Mul(MustParse("3"))
		assert.True(t, x.Equal(MustParse("9")))
		x = x.Sub(MustParse("1"))
		assert.True(t, x.Equal(MustParse("8")))
	})
}

func TestSubMul(t *testing.T) {
	assert.True(t, MustParse("3.33").Sub(MustParse("2.22")).Equal(MustParse("1.11")))
	assert.True(t, MustParse("1.5").Mul(MustParse("2")).Equal(MustParse("3")))
	assert.True(t, MustParse("0.1").Mul(MustParse("0.1")).Equal(MustParse("0.01")))
}

func TestNegAbs(t *testing.T) {
	assert.True(t, MustParse("1.1").Neg().Equal(MustParse("-1.1")))
	assert.True(t, MustParse("-1.1").Neg().Equal(MustParse("1.1")))
	assert.True(t, MustParse("-2.5").Abs().Equal(MustParse("2.5")))
	assert.True(t, MustParse("2.5").Abs().Equal(MustParse("2.5")))
	assert.True(t, Zero().Neg().IsZero())
}

func TestMinMax(t *testing.T) {
	a, b := MustParse("1.1"), MustParse("2.2")
	assert.True(t, a.Min(b).Equal(a))
	assert.True(t, b.Min(a).Equal(a))
	assert.True(t, a.Max(b).Equal(b))
	assert.True(t, b.Max(a).Equal(b))
	assert.True(t, a.Max(a).Equal(a))
}

func TestMulAdd(t *testing.T) {
	t.Run("computes d*a + b", func(t *testing.T) {
		got := MustParse("2").MulAdd(MustParse("3"), MustParse("4"))
		assert.True(t, got.Equal(MustParse("10")), "got %s", got)
	})

	t.Run("the multiply is exact", func(t *testing.T) {
		got := MustParse("0.1").MulAdd(MustParse("0.1"), MustParse("-0.01"))
		assert.True(t, got.IsZero(), "0.1*0.1 - 0.01 must cancel exactly, got %s", got)
	})
}

func TestSum(t *testing.T) {
	t.Run("sums one through four to ten", func(t *testing.T) {
		got := Sum(MustParse("1"), MustParse("2"), MustParse("3"), MustParse("4"))
		assert.True(t, got.Equal(MustParse("10")), "got %s", got)
	})

	t.Run("empty sum is zero", func(t *testing.T) {
		assert.True(t, Sum().IsZero())
	})

	t.Run("sums a slice", func(t *testing.T) {
		ds := []Decimal{MustParse("1.11"), MustParse("2.22"), MustParse("0.67")}
		assert.True(t, Sum(ds...).Equal(MustParse("4")))
	})
}

func TestDiv(t *testing.T) {
	t.Run("divides finite operands", func(t *testing.T) {
		got, err := MustParse("10").Div(MustParse("4"))
		require.NoError(t, err)
		assert.True(t, got.Equal(MustParse("2.5")))
	})

	t.Run("division by zero fails with a non-finite result error", func(t *testing.T) {
		_, err := MustParse("1").Div(Zero())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNonFiniteResult)
	})

	t.Run("zero divided by zero fails too", func(t *testing.T) {
		_, err := Zero().Div(Zero())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNonFiniteResult)
	})

	t.Run("any nonzero divisor succeeds", func(t *testing.T) {
		for _, s := range []string{"1", "-1", "0.0001", "1e20", "-3.7"} {
			_, err := MustParse("42").Div(MustParse(s))
			assert.NoError(t, err, "divisor %q", s)
		}
	})
}

func TestRem(t *testing.T) {
	t.Run("computes the remainder", func(t *testing.T) {
		got, err := MustParse("10").Rem(MustParse("3"))
		require.NoError(t, err)
		assert.True(t, got.Equal(MustParse("1")))
	})

	t.Run("keeps the dividend's sign", func(t *testing.T) {
		got, err := MustParse("-10").Rem(MustParse("3"))
		require.NoError(t, err)
		assert.True(t, got.Equal(MustParse("-1")))
	})

	t.Run("zero divisor fails with a non-finite result error", func(t *testing.T) {
		_, err := MustParse("10").Rem(Zero())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNonFiniteResult)
	})
}

func TestPow(t *testing.T) {
	t.Run("raises to integer exponents", func(t *testing.T) {
		got, err := MustParse("2").Pow(MustParse("10"))
		require.NoError(t, err)
		assert.True(t, got.Equal(MustParse("1024")))
	})

	t.Run("negative exponents invert", func(t *testing.T) {
		got, err := MustParse("2").Pow(MustParse("-2"))
		require.NoError(t, err)
		assert.True(t, got.Equal(MustParse("0.25")))
	})

	t.Run("zero to a negative exponent fails", func(t *testing.T) {
		_, err := Zero().Pow(MustParse("-1"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNonFiniteResult)
	})
}

func TestArgumentsAreValues(t *testing.T) {
	// Operands are passed by value; an operation must never change its
	// inputs.
	a, b := MustParse("1.11"), MustParse("2.22")
	_ = a.Add(b)
	_ = a.Mul(b)
	_, _ = a.Div(b)
	assert.True(t, a.Equal(MustParse("1.11")))
	assert.True(t, b.Equal(MustParse("2.22")))
}
