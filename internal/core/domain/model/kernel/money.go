package kernel

import (
	"fmt"
	"math"
	"math/bits"

	"pizzeria/internal/pkg/errs"
)

// Money is an amount in minor currency units (cents).
type Money struct {
	amount int64
}

// ZeroMoney is the neutral element of Add.
var ZeroMoney = Money{}

// NewMoney rejects negative amounts.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("money", amount, 0, "unbounded")
	}
	return Money{amount: amount}, nil
}

// MustNewMoney is NewMoney for constants and tests.
func MustNewMoney(amount int64) Money {
	m, err := NewMoney(amount)
	if err != nil {
		panic(err)
	}
	return m
}

// Amount returns the value in cents.
func (m Money) Amount() int64 {
	return m.amount
}

// Add fails when the sum does not fit in int64.
func (m Money) Add(other Money) (Money, error) {
	if other.amount > math.MaxInt64-m.amount {
		return Money{}, errs.NewValueIsOutOfRangeError("money", fmt.Sprintf("%d + %d", m.amount, other.amount), 0, int64(math.MaxInt64))
	}
	return Money{amount: m.amount + other.amount}, nil
}

// Multiply fails on a negative quantity or when the product does not fit in int64.
func (m Money) Multiply(quantity int) (Money, error) {
	if quantity < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 0, "unbounded")
	}
	hi, lo := bits.Mul64(uint64(m.amount), uint64(quantity))
	if hi != 0 || lo > math.MaxInt64 {
		return Money{}, errs.NewValueIsOutOfRangeError("money", fmt.Sprintf("%d * %d", m.amount, quantity), 0, int64(math.MaxInt64))
	}
	return Money{amount: int64(lo)}, nil
}

// Percent returns m × basisPoints / 10000 rounded half up, so 800 bps of 12.35 is 0.99.
// The product is computed in 128 bits.
func (m Money) Percent(basisPoints int) (Money, error) {
	if basisPoints < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("basis points", basisPoints, 0, "unbounded")
	}
	hi, lo := bits.Mul64(uint64(m.amount), uint64(basisPoints))
	if hi >= 10000 {
		return Money{}, errs.NewValueIsOutOfRangeError("money", fmt.Sprintf("%d * %d bps", m.amount, basisPoints), 0, int64(math.MaxInt64))
	}
	result, rem := bits.Div64(hi, lo, 10000)
	if rem*2 >= 10000 {
		result++
	}
	if result > math.MaxInt64 {
		return Money{}, errs.NewValueIsOutOfRangeError("money", fmt.Sprintf("%d * %d bps", m.amount, basisPoints), 0, int64(math.MaxInt64))
	}
	return Money{amount: int64(result)}, nil
}

// Sum adds amounts left to right and fails on the first overflow.
func Sum(amounts ...Money) (Money, error) {
	total := ZeroMoney
	for _, a := range amounts {
		var err error
		if total, err = total.Add(a); err != nil {
			return Money{}, err
		}
	}
	return total, nil
}

func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String renders the amount with two decimals, e.g. "111.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.amount/100, m.amount%100)
}
