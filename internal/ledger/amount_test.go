package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		err    error
	}{
		{name: "cents", amount: "10.50"},
		{name: "smallest scale", amount: "0.00000001"},
		{name: "large exponent in range", amount: "1e18"},
		{name: "zero", amount: "0", err: ErrInvalidAmount},
		{name: "negative", amount: "-1", err: ErrInvalidAmount},
		{name: "too many decimals", amount: "0.000000001", err: ErrInvalidAmount},
		{name: "tiny exponent", amount: "1e-2000000000", err: ErrInvalidAmount},
		{name: "huge exponent", amount: "1e2000000000", err: ErrInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAmount(decimal.RequireFromString(tt.amount))
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestAccount_RejectsOutOfScaleAmounts(t *testing.T) {
	a := newTestAccount(t)
	_, err := a.Deposit(dec("100"))
	require.NoError(t, err)

	_, err = a.Deposit(dec("1e-3000000"))
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = a.Withdraw(dec("1e-3000000"))
	assert.ErrorIs(t, err, ErrInvalidAmount)

	assert.Equal(t, int32(0), mustBalance(t, a).Exponent())
	assert.True(t, mustBalance(t, a).Equal(dec("100")))
	assert.Len(t, mustHistory(t, a), 1)

	_, err = a.Search(SearchFilter{MinAmount: decimal.NewNullDecimal(dec("1e-3000000"))})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = a.Search(SearchFilter{MaxAmount: decimal.NewNullDecimal(dec("1e3000000"))})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	found, err := a.Search(SearchFilter{MinAmount: decimal.NewNullDecimal(dec("0"))})
	require.NoError(t, err)
	assert.Len(t, found, 1)
}
