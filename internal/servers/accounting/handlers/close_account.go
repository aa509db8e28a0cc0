package handlers

import (
	"context"

	"github.com/vysogota0399/bank_simulator/internal/api"
	"github.com/vysogota0399/bank_simulator/internal/logging"
	"github.com/vysogota0399/bank_simulator/internal/servers"
)

type CloseAccountHandler struct {
	lg      *logging.ZapLogger
	service AccountCloser
}

type AccountCloser interface {
	CloseAccount(ctx context.Context, number string) error
}

func NewCloseAccountHandler(service AccountCloser, lg *logging.ZapLogger) *CloseAccountHandler {
	return &CloseAccountHandler{lg: lg, service: service}
}

func (h CloseAccountHandler) CloseAccount(ctx context.Context, _ *api.CloseAccountRequest) (*api.CloseAccountResponse, error) {
	number, err := servers.SessionAccount(ctx)
	if err != nil {
		return nil, err
	}

	if err := h.service.CloseAccount(ctx, number); err != nil {
		return nil, servers.Status(ctx, h.lg, err, "close account failed")
	}

	return &api.CloseAccountResponse{}, nil
}
