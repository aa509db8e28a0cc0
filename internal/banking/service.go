// Package banking is the use-case layer shared by the console and the gRPC
// servers: it validates user input, generates account numbers and reports
// recorded transactions to the outbox.
package banking

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vysogota0399/bank_simulator/internal/config"
	"github.com/vysogota0399/bank_simulator/internal/ledger"
	"github.com/vysogota0399/bank_simulator/internal/logging"
	"github.com/vysogota0399/bank_simulator/internal/models"
)

var ErrAccountNumbersExhausted = errors.New("could not allocate a free account number")

type EventsRecorder interface {
	SaveTransactionRecorded(ctx context.Context, meta *models.TransactionEventMeta) error
}

type Service struct {
	ledger   *ledger.Ledger
	events   EventsRecorder
	numbers  NumberGenerator
	attempts int
	lg       *logging.ZapLogger
}

func NewService(
	l *ledger.Ledger,
	events EventsRecorder,
	numbers NumberGenerator,
	cfg *config.Config,
	lg *logging.ZapLogger,
) *Service {
	attempts := cfg.AccountNumberAttempts
	if attempts <= 0 {
		attempts = 1
	}

	return &Service{
		ledger:   l,
		events:   events,
		numbers:  numbers,
		attempts: attempts,
		lg:       lg,
	}
}

func (s *Service) CreateAccount(ctx context.Context, owner, credential string) (*ledger.Account, error) {
	if err := ValidateOwnerName(owner); err != nil {
		return nil, err
	}
	if err := ValidateCredential(credential); err != nil {
		return nil, err
	}

	for i := 0; i < s.attempts; i++ {
		number := s.numbers.Generate()

		a, err := s.ledger.CreateAccount(number, owner, credential)
		if errors.Is(err, ledger.ErrDuplicateAccountNumber) {
			s.lg.DebugCtx(ctx, "account number collision", zap.String("account_number", number))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("banking: create account error %w", err)
		}

		s.lg.InfoCtx(ctx, "account created", zap.String("account_number", number))
		return a, nil
	}

	s.lg.ErrorCtx(ctx, "account numbers exhausted", zap.Int("attempts", s.attempts))
	return nil, ErrAccountNumbersExhausted
}

func (s *Service) Login(ctx context.Context, number, credential string) (*ledger.Account, error) {
	a, err := s.ledger.Authenticate(number, credential)
	if err != nil {
		s.lg.InfoCtx(ctx, "login rejected", zap.String("account_number", number), zap.Error(err))
		return nil, err
	}

	return a, nil
}

func (s *Service) Accounts(ctx context.Context) []ledger.AccountSummary {
	return s.ledger.ListAll()
}

func (s *Service) HasAccounts(ctx context.Context) bool {
	return s.ledger.Len() > 0
}

func (s *Service) Deposit(ctx context.Context, number string, amount decimal.Decimal) (ledger.Receipt, error) {
	a, err := s.ledger.FindAccount(number)
	if err != nil {
		return ledger.Receipt{}, err
	}

	r, err := a.Deposit(amount)
	if err != nil {
		return ledger.Receipt{}, err
	}

	s.recorded(ctx, number, r)
	return r, nil
}

func (s *Service) Withdraw(ctx context.Context, number string, amount decimal.Decimal) (ledger.Receipt, error) {
	a, err := s.ledger.FindAccount(number)
	if err != nil {
		return ledger.Receipt{}, err
	}

	r, err := a.Withdraw(amount)
	if err != nil {
		return ledger.Receipt{}, err
	}

	s.recorded(ctx, number, r)
	return r, nil
}

func (s *Service) Balance(ctx context.Context, number string) (decimal.Decimal, error) {
	a, err := s.ledger.FindAccount(number)
	if err != nil {
		return decimal.Zero, err
	}

	return a.Balance()
}

func (s *Service) History(ctx context.Context, number string) ([]ledger.Transaction, error) {
	a, err := s.ledger.FindAccount(number)
	if err != nil {
		return nil, err
	}

	return a.History()
}

func (s *Service) Search(ctx context.Context, number string, filter ledger.SearchFilter) ([]ledger.Transaction, error) {
	a, err := s.ledger.FindAccount(number)
	if err != nil {
		return nil, err
	}

	return a.Search(filter)
}

func (s *Service) CloseAccount(ctx context.Context, number string) error {
	if err := s.ledger.CloseAccount(number); err != nil {
		return err
	}

	s.lg.InfoCtx(ctx, "account closed", zap.String("account_number", number))
	return nil
}

// recorded hands the transaction to the outbox. The ledger change is already
// applied, so an outbox failure is only logged.
func (s *Service) recorded(ctx context.Context, number string, r ledger.Receipt) {
	ctx = s.lg.WithContextFields(ctx,
		zap.String("account_number", number),
		zap.Int64("transaction_id", r.Transaction.ID),
	)

	s.lg.InfoCtx(ctx, "transaction recorded",
		zap.String("operation", string(r.Transaction.Kind)),
		zap.String("amount", r.Transaction.Amount.String()),
	)

	if err := s.events.SaveTransactionRecorded(ctx, &models.TransactionEventMeta{
		TransactionID: r.Transaction.ID,
		AccountNumber: number,
		Operation:     string(r.Transaction.Kind),
		Amount:        r.Transaction.Amount,
		Balance:       r.Balance,
		ProcessedAt:   r.Transaction.Timestamp,
	}); err != nil {
		s.lg.ErrorCtx(ctx, "save outbox event failed", zap.Error(err))
	}
}
