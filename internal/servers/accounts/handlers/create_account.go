package handlers

import (
	"context"

	"go.uber.org/zap"

	"github.com/vysogota0399/bank_simulator/internal/api"
	"github.com/vysogota0399/bank_simulator/internal/ledger"
	"github.com/vysogota0399/bank_simulator/internal/logging"
	"github.com/vysogota0399/bank_simulator/internal/servers"
)

type CreateAccountHandler struct {
	lg      *logging.ZapLogger
	service AccountCreator
}

type AccountCreator interface {
	CreateAccount(ctx context.Context, owner, credential string) (*ledger.Account, error)
}

func NewCreateAccountHandler(service AccountCreator, lg *logging.ZapLogger) *CreateAccountHandler {
	return &CreateAccountHandler{lg: lg, service: service}
}

func (h CreateAccountHandler) CreateAccount(ctx context.Context, params *api.CreateAccountRequest) (*api.CreateAccountResponse, error) {
	a, err := h.service.CreateAccount(ctx, params.Owner, params.Password)
	if err != nil {
		return nil, servers.Status(ctx, h.lg, err, "create account failed")
	}

	h.lg.InfoCtx(ctx, "account opened over grpc", zap.String("account_number", a.Number()))

	return &api.CreateAccountResponse{
		AccountNumber: a.Number(),
		Owner:         a.Owner(),
	}, nil
}
