package handlers

import (
	"context"
	"time"

	"github.com/vysogota0399/bank_simulator/internal/api"
	"github.com/vysogota0399/bank_simulator/internal/ledger"
	"github.com/vysogota0399/bank_simulator/internal/logging"
	"github.com/vysogota0399/bank_simulator/internal/servers"
)

type LoginHandler struct {
	lg      *logging.ZapLogger
	service Authenticator
	tokens  TokenIssuer
}

type Authenticator interface {
	Login(ctx context.Context, number, credential string) (*ledger.Account, error)
}

type TokenIssuer interface {
	Issue(accountNumber string) (string, time.Time, error)
}

func NewLoginHandler(service Authenticator, tokens TokenIssuer, lg *logging.ZapLogger) *LoginHandler {
	return &LoginHandler{lg: lg, service: service, tokens: tokens}
}

func (h LoginHandler) Login(ctx context.Context, params *api.LoginRequest) (*api.LoginResponse, error) {
	a, err := h.service.Login(ctx, params.AccountNumber, params.Password)
	if err != nil {
		return nil, servers.Status(ctx, h.lg, err, "login failed")
	}

	token, expiresAt, err := h.tokens.Issue(a.Number())
	if err != nil {
		return nil, servers.Status(ctx, h.lg, err, "issue session failed")
	}

	return &api.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Owner:     a.Owner(),
		Active:    a.Active(),
	}, nil
}
