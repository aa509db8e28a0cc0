package accounts

import (
	"context"

	"github.com/vysogota0399/bank_simulator/internal/api"
	"github.com/vysogota0399/bank_simulator/internal/servers/accounts/handlers"
)

type Handler struct {
	api.UnimplementedAccountsServer
	handlers.CreateAccountHandler
	handlers.LoginHandler
	handlers.ListAccountsHandler
}

func NewHandler(
	createAccount *handlers.CreateAccountHandler,
	login *handlers.LoginHandler,
	listAccounts *handlers.ListAccountsHandler,
) *Handler {
	return &Handler{
		CreateAccountHandler: *createAccount,
		LoginHandler:         *login,
		ListAccountsHandler:  *listAccounts,
	}
}

func (h *Handler) CreateAccount(ctx context.Context, params *api.CreateAccountRequest) (*api.CreateAccountResponse, error) {
	return h.CreateAccountHandler.CreateAccount(ctx, params)
}

func (h *Handler) Login(ctx context.Context, params *api.LoginRequest) (*api.LoginResponse, error) {
	return h.LoginHandler.Login(ctx, params)
}

func (h *Handler) ListAccounts(ctx context.Context, params *api.ListAccountsRequest) (*api.ListAccountsResponse, error) {
	return h.ListAccountsHandler.ListAccounts(ctx, params)
}
