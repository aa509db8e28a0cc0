package servers

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vysogota0399/bank_simulator/internal/banking"
	"github.com/vysogota0399/bank_simulator/internal/ledger"
	"github.com/vysogota0399/bank_simulator/internal/logging"
	"github.com/vysogota0399/bank_simulator/internal/session"
)

// Status converts a banking error into a gRPC status. Unknown errors are
// logged and reported as Internal with failMsg.
func Status(ctx context.Context, lg *logging.ZapLogger, err error, failMsg string) error {
	switch {
	case errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, banking.ErrInvalidOwnerName),
		errors.Is(err, banking.ErrInvalidCredential):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, ledger.ErrInsufficientFunds),
		errors.Is(err, ledger.ErrInactiveAccount):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, ledger.ErrAccountNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, ledger.ErrWrongCredential),
		errors.Is(err, session.ErrInvalidToken):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, ledger.ErrDuplicateAccountNumber):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, banking.ErrAccountNumbersExhausted):
		return status.Error(codes.ResourceExhausted, err.Error())
	}

	lg.ErrorCtx(ctx, failMsg, zap.Error(err))
	return status.Errorf(codes.Internal, "%s", failMsg)
}

// SessionAccount returns the account number the session interceptor put into ctx.
func SessionAccount(ctx context.Context) (string, error) {
	number, ok := session.AccountNumber(ctx)
	if !ok {
		return "", status.Errorf(codes.Unauthenticated, "session required")
	}
	return number, nil
}
