// Package ledger keeps accounts, their balances and transaction histories in
// memory. Deposits and withdrawals are validated before any state changes, so a
// rejected call leaves the account exactly as it was.
package ledger

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type Ledger struct {
	mu       sync.RWMutex
	accounts map[string]*Account
	order    []string

	recorder *Recorder
	hashCost int
}

type Option func(*options)

type options struct {
	seq      Sequence
	now      func() time.Time
	hashCost int
}

// WithSequence replaces the transaction id source, ids start at 1 otherwise.
func WithSequence(seq Sequence) Option {
	return func(o *options) { o.seq = seq }
}

func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithHashCost sets the bcrypt cost used for stored credentials.
func WithHashCost(cost int) Option {
	return func(o *options) { o.hashCost = cost }
}

func New(opts ...Option) *Ledger {
	o := options{
		seq:      NewSequence(1),
		now:      time.Now,
		hashCost: bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Ledger{
		accounts: make(map[string]*Account),
		recorder: NewRecorder(o.seq, o.now),
		hashCost: o.hashCost,
	}
}

func (l *Ledger) CreateAccount(number, owner, credential string) (*Account, error) {
	// hashing is slow, do it before taking the lock
	hash, err := bcrypt.GenerateFromPassword(credentialDigest(credential), l.hashCost)
	if err != nil {
		return nil, fmt.Errorf("ledger: hash credential error %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.accounts[number]; ok {
		return nil, ErrDuplicateAccountNumber
	}

	a := newAccount(number, owner, hash, l.recorder)
	l.accounts[number] = a
	l.order = append(l.order, number)

	return a, nil
}

func (l *Ledger) FindAccount(number string) (*Account, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	a, ok := l.accounts[number]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return a, nil
}

func (l *Ledger) Authenticate(number, credential string) (*Account, error) {
	a, err := l.FindAccount(number)
	if err != nil {
		return nil, err
	}
	if !a.VerifyCredential(credential) {
		return nil, ErrWrongCredential
	}
	return a, nil
}

func (l *Ledger) CloseAccount(number string) error {
	a, err := l.FindAccount(number)
	if err != nil {
		return err
	}
	a.Close()
	return nil
}

// ListAll returns account summaries in creation order.
func (l *Ledger) ListAll() []AccountSummary {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]AccountSummary, 0, len(l.order))
	for _, number := range l.order {
		out = append(out, l.accounts[number].Summary())
	}
	return out
}

func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.accounts)
}
