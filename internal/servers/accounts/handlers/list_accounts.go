package handlers

import (
	"context"

	"github.com/vysogota0399/bank_simulator/internal/api"
	"github.com/vysogota0399/bank_simulator/internal/ledger"
	"github.com/vysogota0399/bank_simulator/internal/logging"
)

type ListAccountsHandler struct {
	lg      *logging.ZapLogger
	service AccountsLister
}

type AccountsLister interface {
	Accounts(ctx context.Context) []ledger.AccountSummary
}

func NewListAccountsHandler(service AccountsLister, lg *logging.ZapLogger) *ListAccountsHandler {
	return &ListAccountsHandler{lg: lg, service: service}
}

func (h ListAccountsHandler) ListAccounts(ctx context.Context, _ *api.ListAccountsRequest) (*api.ListAccountsResponse, error) {
	summaries := h.service.Accounts(ctx)

	accounts := make([]*api.AccountSummary, 0, len(summaries))
	for _, s := range summaries {
		accounts = append(
			accounts,
			&api.AccountSummary{
				AccountNumber: s.Number,
				Owner:         s.Owner,
				Balance:       s.Balance,
				Active:        s.Active,
			},
		)
	}

	return &api.ListAccountsResponse{Accounts: accounts}, nil
}
