package handlers

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/vysogota0399/bank_simulator/internal/api"
	"github.com/vysogota0399/bank_simulator/internal/logging"
	"github.com/vysogota0399/bank_simulator/internal/servers"
)

type GetBalanceHandler struct {
	lg      *logging.ZapLogger
	service BalanceReader
}

type BalanceReader interface {
	Balance(ctx context.Context, number string) (decimal.Decimal, error)
}

func NewGetBalanceHandler(service BalanceReader, lg *logging.ZapLogger) *GetBalanceHandler {
	return &GetBalanceHandler{lg: lg, service: service}
}

func (h GetBalanceHandler) GetBalance(ctx context.Context, _ *api.GetBalanceRequest) (*api.GetBalanceResponse, error) {
	number, err := servers.SessionAccount(ctx)
	if err != nil {
		return nil, err
	}

	balance, err := h.service.Balance(ctx, number)
	if err != nil {
		return nil, servers.Status(ctx, h.lg, err, "get balance failed")
	}

	return &api.GetBalanceResponse{Balance: balance}, nil
}
