package handlers

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/vysogota0399/bank_simulator/internal/api"
	"github.com/vysogota0399/bank_simulator/internal/ledger"
	"github.com/vysogota0399/bank_simulator/internal/logging"
	"github.com/vysogota0399/bank_simulator/internal/servers"
)

type DepositHandler struct {
	lg      *logging.ZapLogger
	service Depositor
}

type Depositor interface {
	Deposit(ctx context.Context, number string, amount decimal.Decimal) (ledger.Receipt, error)
}

func NewDepositHandler(service Depositor, lg *logging.ZapLogger) *DepositHandler {
	return &DepositHandler{lg: lg, service: service}
}

func (h DepositHandler) Deposit(ctx context.Context, params *api.DepositRequest) (*api.OperationResponse, error) {
	number, err := servers.SessionAccount(ctx)
	if err != nil {
		return nil, err
	}

	r, err := h.service.Deposit(ctx, number, params.Amount)
	if err != nil {
		return nil, servers.Status(ctx, h.lg, err, "deposit failed")
	}

	return &api.OperationResponse{Transaction: transaction(r.Transaction), Balance: r.Balance}, nil
}
