package ledger

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestAccount(t *testing.T) *Account {
	t.Helper()
	l := New(WithHashCost(bcrypt.MinCost))
	a, err := l.CreateAccount("1000000001", "Alice", "1234")
	require.NoError(t, err)
	return a
}

func mustBalance(t *testing.T, a *Account) decimal.Decimal {
	t.Helper()
	b, err := a.Balance()
	require.NoError(t, err)
	return b
}

func mustHistory(t *testing.T, a *Account) []Transaction {
	t.Helper()
	h, err := a.History()
	require.NoError(t, err)
	return h
}

func TestAccount_NewAccountIsEmpty(t *testing.T) {
	a := newTestAccount(t)

	assert.Equal(t, "1000000001", a.Number())
	assert.Equal(t, "Alice", a.Owner())
	assert.True(t, a.Active())
	assert.True(t, mustBalance(t, a).IsZero())
	assert.Empty(t, mustHistory(t, a))
}

func TestAccount_VerifyCredential(t *testing.T) {
	a := newTestAccount(t)

	assert.True(t, a.VerifyCredential("1234"))
	assert.False(t, a.VerifyCredential("1235"))
	assert.False(t, a.VerifyCredential(""))
	assert.False(t, a.VerifyCredential("1234 "))
}

func TestAccount_Deposit(t *testing.T) {
	a := newTestAccount(t)

	r, err := a.Deposit(dec("100.00"))
	require.NoError(t, err)
	assert.True(t, r.Balance.Equal(dec("100")))
	assert.Equal(t, Deposit, r.Transaction.Kind)
	assert.True(t, r.Transaction.Amount.Equal(dec("100")))

	r, err = a.Deposit(dec("0.01"))
	require.NoError(t, err)
	assert.True(t, r.Balance.Equal(dec("100.01")))
	assert.Len(t, mustHistory(t, a), 2)
}

func TestAccount_DepositInvalidAmount(t *testing.T) {
	a := newTestAccount(t)
	_, err := a.Deposit(dec("5"))
	require.NoError(t, err)

	for _, amt := range []string{"0", "-1", "-0.01"} {
		_, err := a.Deposit(dec(amt))
		assert.ErrorIs(t, err, ErrInvalidAmount, "amount %s", amt)
	}

	assert.True(t, mustBalance(t, a).Equal(dec("5")))
	assert.Len(t, mustHistory(t, a), 1)
}

func TestAccount_Withdraw(t *testing.T) {
	a := newTestAccount(t)
	_, err := a.Deposit(dec("100"))
	require.NoError(t, err)

	r, err := a.Withdraw(dec("40"))
	require.NoError(t, err)
	assert.True(t, r.Balance.Equal(dec("60")))
	assert.Equal(t, Withdrawal, r.Transaction.Kind)

	// the whole balance may be withdrawn
	r, err = a.Withdraw(dec("60"))
	require.NoError(t, err)
	assert.True(t, r.Balance.IsZero())
}

func TestAccount_WithdrawRejected(t *testing.T) {
	a := newTestAccount(t)
	_, err := a.Deposit(dec("100"))
	require.NoError(t, err)

	_, err = a.Withdraw(dec("100.01"))
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	_, err = a.Withdraw(dec("0"))
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = a.Withdraw(dec("-3"))
	assert.ErrorIs(t, err, ErrInvalidAmount)

	assert.True(t, mustBalance(t, a).Equal(dec("100")))
	assert.Len(t, mustHistory(t, a), 1)
}

func TestAccount_Search(t *testing.T) {
	a := newTestAccount(t)
	for _, op := range []struct {
		kind Kind
		amt  string
	}{
		{Deposit, "100"},
		{Withdrawal, "40"},
		{Deposit, "15.50"},
		{Deposit, "300"},
		{Withdrawal, "15.50"},
	} {
		var err error
		if op.kind == Deposit {
			_, err = a.Deposit(dec(op.amt))
		} else {
			_, err = a.Withdraw(dec(op.amt))
		}
		require.NoError(t, err)
	}
	history := mustHistory(t, a)

	ids := func(ts []Transaction) []int64 {
		out := make([]int64, 0, len(ts))
		for _, tx := range ts {
			out = append(out, tx.ID)
		}
		return out
	}

	cases := []struct {
		name   string
		filter SearchFilter
		want   []int64
	}{
		{name: "no filters", filter: SearchFilter{}, want: ids(history)},
		{name: "deposits", filter: SearchFilter{Kind: Deposit}, want: []int64{1, 3, 4}},
		{name: "withdrawals", filter: SearchFilter{Kind: Withdrawal}, want: []int64{2, 5}},
		{
			name:   "min inclusive",
			filter: SearchFilter{MinAmount: decimal.NewNullDecimal(dec("40"))},
			want:   []int64{1, 2, 4},
		},
		{
			name:   "max inclusive",
			filter: SearchFilter{MaxAmount: decimal.NewNullDecimal(dec("15.5"))},
			want:   []int64{3, 5},
		},
		{
			name: "all three",
			filter: SearchFilter{
				Kind:      Deposit,
				MinAmount: decimal.NewNullDecimal(dec("15.50")),
				MaxAmount: decimal.NewNullDecimal(dec("100")),
			},
			want: []int64{1, 3},
		},
		{
			name:   "nothing matches",
			filter: SearchFilter{MinAmount: decimal.NewNullDecimal(dec("1000"))},
			want:   []int64{},
		},
		{
			name: "min above max",
			filter: SearchFilter{
				MinAmount: decimal.NewNullDecimal(dec("50")),
				MaxAmount: decimal.NewNullDecimal(dec("10")),
			},
			want: []int64{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := a.Search(tc.filter)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ids(got))
		})
	}
}

// The intersection of three independent filters equals the combined filter.
func TestAccount_SearchIntersection(t *testing.T) {
	a := newTestAccount(t)
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 60; i++ {
		amt := decimal.New(int64(rnd.Intn(20000)+1), -2)
		if rnd.Intn(3) == 0 {
			_, _ = a.Withdraw(amt)
			continue
		}
		_, err := a.Deposit(amt)
		require.NoError(t, err)
	}

	lo := decimal.NewNullDecimal(dec("20"))
	hi := decimal.NewNullDecimal(dec("150"))

	byKind, _ := a.Search(SearchFilter{Kind: Deposit})
	byMin, _ := a.Search(SearchFilter{MinAmount: lo})
	byMax, _ := a.Search(SearchFilter{MaxAmount: hi})
	combined, err := a.Search(SearchFilter{Kind: Deposit, MinAmount: lo, MaxAmount: hi})
	require.NoError(t, err)

	in := func(ts []Transaction) map[int64]bool {
		m := make(map[int64]bool, len(ts))
		for _, tx := range ts {
			m[tx.ID] = true
		}
		return m
	}
	kindSet, minSet, maxSet := in(byKind), in(byMin), in(byMax)

	var want []int64
	for _, tx := range mustHistory(t, a) {
		if kindSet[tx.ID] && minSet[tx.ID] && maxSet[tx.ID] {
			want = append(want, tx.ID)
		}
	}
	require.NotEmpty(t, want)

	var got []int64
	for _, tx := range combined {
		got = append(got, tx.ID)
	}
	assert.Equal(t, want, got)
}

// Replaying random operations keeps balance equal to the signed sum of the
// accepted amounts and to the sum computed from the history.
func TestAccount_BalanceReplay(t *testing.T) {
	a := newTestAccount(t)
	rnd := rand.New(rand.NewSource(42))

	expected := decimal.Zero
	accepted := 0
	for i := 0; i < 500; i++ {
		amt := decimal.New(int64(rnd.Intn(40000)-1000), -2)
		before := mustBalance(t, a)

		if rnd.Intn(2) == 0 {
			_, err := a.Deposit(amt)
			if err != nil {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				assert.True(t, mustBalance(t, a).Equal(before))
				continue
			}
			expected = expected.Add(amt)
		} else {
			_, err := a.Withdraw(amt)
			if err != nil {
				assert.True(t, amt.GreaterThan(before) || !amt.IsPositive())
				assert.True(t, mustBalance(t, a).Equal(before))
				continue
			}
			expected = expected.Sub(amt)
		}
		accepted++
	}

	balance := mustBalance(t, a)
	assert.True(t, balance.Equal(expected), "balance %s expected %s", balance, expected)
	assert.False(t, balance.IsNegative())

	history := mustHistory(t, a)
	require.Len(t, history, accepted)

	fromHistory := decimal.Zero
	for _, tx := range history {
		require.True(t, tx.Amount.IsPositive())
		if tx.Kind == Deposit {
			fromHistory = fromHistory.Add(tx.Amount)
		} else {
			fromHistory = fromHistory.Sub(tx.Amount)
		}
	}
	assert.True(t, balance.Equal(fromHistory))
}

func TestAccount_HistoryIsACopy(t *testing.T) {
	a := newTestAccount(t)
	_, err := a.Deposit(dec("10"))
	require.NoError(t, err)

	h := mustHistory(t, a)
	h[0].Amount = dec("99999")

	assert.True(t, mustHistory(t, a)[0].Amount.Equal(dec("10")))
}

func TestAccount_Closed(t *testing.T) {
	a := newTestAccount(t)
	_, err := a.Deposit(dec("10"))
	require.NoError(t, err)

	a.Close()
	a.Close()
	assert.False(t, a.Active())

	_, err = a.Deposit(dec("1"))
	assert.ErrorIs(t, err, ErrInactiveAccount)
	_, err = a.Withdraw(dec("1"))
	assert.ErrorIs(t, err, ErrInactiveAccount)
	_, err = a.Balance()
	assert.ErrorIs(t, err, ErrInactiveAccount)
	_, err = a.History()
	assert.ErrorIs(t, err, ErrInactiveAccount)
	_, err = a.Search(SearchFilter{Kind: Deposit})
	assert.ErrorIs(t, err, ErrInactiveAccount)

	// the inactive check wins over amount validation
	_, err = a.Deposit(dec("-1"))
	assert.ErrorIs(t, err, ErrInactiveAccount)

	s := a.Summary()
	assert.False(t, s.Active)
	assert.True(t, s.Balance.Equal(dec("10")))
}
