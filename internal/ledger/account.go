package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type Status int

const (
	StatusActive Status = iota
	StatusClosed
)

func (s Status) String() string {
	if s == StatusClosed {
		return "closed"
	}
	return "active"
}

// Account holds one owner's balance and append-only history. All methods are
// safe for concurrent use; a deposit or withdrawal is applied under the account
// lock so the balance and the history never disagree.
type Account struct {
	mu sync.Mutex

	number     string
	owner      string
	credential []byte
	balance    decimal.Decimal
	history    []Transaction
	status     Status

	recorder *Recorder
}

// Receipt is the outcome of a successful deposit or withdrawal.
type Receipt struct {
	Transaction Transaction
	Balance     decimal.Decimal
}

type AccountSummary struct {
	Number  string
	Owner   string
	Balance decimal.Decimal
	Active  bool
}

// SearchFilter constraints are applied conjunctively, unset fields match everything.
type SearchFilter struct {
	Kind      Kind
	MinAmount decimal.NullDecimal
	MaxAmount decimal.NullDecimal
}

func (f SearchFilter) Matches(t Transaction) bool {
	if f.Kind != "" && t.Kind != f.Kind {
		return false
	}
	if f.MinAmount.Valid && t.Amount.LessThan(f.MinAmount.Decimal) {
		return false
	}
	if f.MaxAmount.Valid && t.Amount.GreaterThan(f.MaxAmount.Decimal) {
		return false
	}
	return true
}

func newAccount(number, owner string, credential []byte, recorder *Recorder) *Account {
	return &Account{
		number:     number,
		owner:      owner,
		credential: credential,
		balance:    decimal.Zero,
		status:     StatusActive,
		recorder:   recorder,
	}
}

func (a *Account) Number() string {
	return a.number
}

func (a *Account) Owner() string {
	return a.owner
}

func (a *Account) VerifyCredential(input string) bool {
	return bcrypt.CompareHashAndPassword(a.credential, credentialDigest(input)) == nil
}

// credentialDigest is what bcrypt sees. bcrypt rejects inputs over 72 bytes,
// a hex SHA-256 is always 64.
func credentialDigest(credential string) []byte {
	sum := sha256.Sum256([]byte(credential))
	return []byte(hex.EncodeToString(sum[:]))
}

func (a *Account) Active() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.status == StatusActive
}

func (a *Account) Deposit(amount decimal.Decimal) (Receipt, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.status != StatusActive {
		return Receipt{}, ErrInactiveAccount
	}
	if err := ValidateAmount(amount); err != nil {
		return Receipt{}, err
	}

	t := a.recorder.Record(Deposit, amount)
	a.balance = a.balance.Add(amount)
	a.history = append(a.history, t)

	return Receipt{Transaction: t, Balance: a.balance}, nil
}

func (a *Account) Withdraw(amount decimal.Decimal) (Receipt, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.status != StatusActive {
		return Receipt{}, ErrInactiveAccount
	}
	if err := ValidateAmount(amount); err != nil {
		return Receipt{}, err
	}
	if amount.GreaterThan(a.balance) {
		return Receipt{}, ErrInsufficientFunds
	}

	t := a.recorder.Record(Withdrawal, amount)
	a.balance = a.balance.Sub(amount)
	a.history = append(a.history, t)

	return Receipt{Transaction: t, Balance: a.balance}, nil
}

func (a *Account) Balance() (decimal.Decimal, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.status != StatusActive {
		return decimal.Zero, ErrInactiveAccount
	}
	return a.balance, nil
}

// History returns a copy of every transaction in insertion order.
func (a *Account) History() ([]Transaction, error) {
	return a.Search(SearchFilter{})
}

func (a *Account) Search(filter SearchFilter) ([]Transaction, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.status != StatusActive {
		return nil, ErrInactiveAccount
	}
	if err := filter.validate(); err != nil {
		return nil, err
	}

	out := make([]Transaction, 0, len(a.history))
	for _, t := range a.history {
		if filter.Matches(t) {
			out = append(out, t)
		}
	}
	return out, nil
}

// Close moves the account to StatusClosed. Closing twice is a no-op.
func (a *Account) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.status = StatusClosed
}

func (a *Account) Summary() AccountSummary {
	a.mu.Lock()
	defer a.mu.Unlock()

	return AccountSummary{
		Number:  a.number,
		Owner:   a.owner,
		Balance: a.balance,
		Active:  a.status == StatusActive,
	}
}
