package ledger

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"
)

type Kind string

const (
	Deposit    Kind = "DEPOSIT"
	Withdrawal Kind = "WITHDRAWAL"
)

func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToUpper(strings.TrimSpace(s))) {
	case Deposit:
		return Deposit, nil
	case Withdrawal:
		return Withdrawal, nil
	default:
		return "", fmt.Errorf("ledger: unknown transaction kind %q", s)
	}
}

// Transaction is one balance-changing event. Values are never modified after
// Recorder.Record returns them.
type Transaction struct {
	ID        int64
	Kind      Kind
	Amount    decimal.Decimal
	Timestamp time.Time
}

// Sequence hands out transaction ids.
type Sequence interface {
	Next() int64
}

type AtomicSequence struct {
	last atomic.Int64
}

// NewSequence returns a sequence whose first Next is start.
func NewSequence(start int64) *AtomicSequence {
	s := &AtomicSequence{}
	s.last.Store(start - 1)
	return s
}

func (s *AtomicSequence) Next() int64 {
	return s.last.Add(1)
}

// Recorder is the single producer of transactions for a ledger.
type Recorder struct {
	seq Sequence
	now func() time.Time
}

func NewRecorder(seq Sequence, now func() time.Time) *Recorder {
	return &Recorder{seq: seq, now: now}
}

func (r *Recorder) Record(kind Kind, amount decimal.Decimal) Transaction {
	return Transaction{
		ID:        r.seq.Next(),
		Kind:      kind,
		Amount:    amount,
		Timestamp: r.now(),
	}
}
