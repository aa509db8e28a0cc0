package ledger

import "github.com/shopspring/decimal"

// Amounts are kept between 10^MinAmountExponent and 10^MaxAmountExponent in
// scale. Arithmetic on decimals rescales both operands to the smaller exponent,
// so an amount like 1e-2000000000 would make every later balance update huge.
const (
	MinAmountExponent = -8
	MaxAmountExponent = 18
)

// CheckScale reports ErrInvalidAmount for decimals whose exponent is out of range.
func CheckScale(amount decimal.Decimal) error {
	exp := amount.Exponent()
	if exp < MinAmountExponent || exp > MaxAmountExponent {
		return ErrInvalidAmount
	}
	return nil
}

// ValidateAmount accepts positive amounts of a supported scale.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	return CheckScale(amount)
}

func (f SearchFilter) validate() error {
	if f.MinAmount.Valid {
		if err := CheckScale(f.MinAmount.Decimal); err != nil {
			return err
		}
	}
	if f.MaxAmount.Valid {
		if err := CheckScale(f.MaxAmount.Decimal); err != nil {
			return err
		}
	}
	return nil
}
