package accounting

import (
	"context"

	"github.com/vysogota0399/bank_simulator/internal/api"
	"github.com/vysogota0399/bank_simulator/internal/servers/accounting/handlers"
)

type Handler struct {
	api.UnimplementedAccountingServer
	handlers.DepositHandler
	handlers.WithdrawHandler
	handlers.GetBalanceHandler
	handlers.GetHistoryHandler
	handlers.SearchHistoryHandler
	handlers.CloseAccountHandler
}

func NewHandler(
	deposit *handlers.DepositHandler,
	withdraw *handlers.WithdrawHandler,
	getBalance *handlers.GetBalanceHandler,
	getHistory *handlers.GetHistoryHandler,
	searchHistory *handlers.SearchHistoryHandler,
	closeAccount *handlers.CloseAccountHandler,
) *Handler {
	return &Handler{
		DepositHandler:       *deposit,
		WithdrawHandler:      *withdraw,
		GetBalanceHandler:    *getBalance,
		GetHistoryHandler:    *getHistory,
		SearchHistoryHandler: *searchHistory,
		CloseAccountHandler:  *closeAccount,
	}
}

func (h *Handler) Deposit(ctx context.Context, params *api.DepositRequest) (*api.OperationResponse, error) {
	return h.DepositHandler.Deposit(ctx, params)
}

func (h *Handler) Withdraw(ctx context.Context, params *api.WithdrawRequest) (*api.OperationResponse, error) {
	return h.WithdrawHandler.Withdraw(ctx, params)
}

func (h *Handler) GetBalance(ctx context.Context, params *api.GetBalanceRequest) (*api.GetBalanceResponse, error) {
	return h.GetBalanceHandler.GetBalance(ctx, params)
}

func (h *Handler) GetHistory(ctx context.Context, params *api.GetHistoryRequest) (*api.HistoryResponse, error) {
	return h.GetHistoryHandler.GetHistory(ctx, params)
}

func (h *Handler) SearchHistory(ctx context.Context, params *api.SearchHistoryRequest) (*api.HistoryResponse, error) {
	return h.SearchHistoryHandler.SearchHistory(ctx, params)
}

func (h *Handler) CloseAccount(ctx context.Context, params *api.CloseAccountRequest) (*api.CloseAccountResponse, error) {
	return h.CloseAccountHandler.CloseAccount(ctx, params)
}
