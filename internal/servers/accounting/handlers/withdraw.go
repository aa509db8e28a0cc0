package handlers

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/vysogota0399/bank_simulator/internal/api"
	"github.com/vysogota0399/bank_simulator/internal/ledger"
	"github.com/vysogota0399/bank_simulator/internal/logging"
	"github.com/vysogota0399/bank_simulator/internal/servers"
)

type WithdrawHandler struct {
	lg      *logging.ZapLogger
	service Withdrawer
}

type Withdrawer interface {
	Withdraw(ctx context.Context, number string, amount decimal.Decimal) (ledger.Receipt, error)
}

func NewWithdrawHandler(service Withdrawer, lg *logging.ZapLogger) *WithdrawHandler {
	return &WithdrawHandler{lg: lg, service: service}
}

func (h WithdrawHandler) Withdraw(ctx context.Context, params *api.WithdrawRequest) (*api.OperationResponse, error) {
	number, err := servers.SessionAccount(ctx)
	if err != nil {
		return nil, err
	}

	r, err := h.service.Withdraw(ctx, number, params.Amount)
	if err != nil {
		return nil, servers.Status(ctx, h.lg, err, "withdraw failed")
	}

	return &api.OperationResponse{Transaction: transaction(r.Transaction), Balance: r.Balance}, nil
}
