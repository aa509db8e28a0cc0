package handlers

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vysogota0399/bank_simulator/internal/api"
	"github.com/vysogota0399/bank_simulator/internal/ledger"
	"github.com/vysogota0399/bank_simulator/internal/logging"
	"github.com/vysogota0399/bank_simulator/internal/servers"
)

type SearchHistoryHandler struct {
	lg      *logging.ZapLogger
	service HistorySearcher
}

type HistorySearcher interface {
	Search(ctx context.Context, number string, filter ledger.SearchFilter) ([]ledger.Transaction, error)
}

func NewSearchHistoryHandler(service HistorySearcher, lg *logging.ZapLogger) *SearchHistoryHandler {
	return &SearchHistoryHandler{lg: lg, service: service}
}

func (h SearchHistoryHandler) SearchHistory(ctx context.Context, params *api.SearchHistoryRequest) (*api.HistoryResponse, error) {
	number, err := servers.SessionAccount(ctx)
	if err != nil {
		return nil, err
	}

	filter := ledger.SearchFilter{
		MinAmount: params.MinAmount,
		MaxAmount: params.MaxAmount,
	}
	if params.Kind != "" {
		kind, err := ledger.ParseKind(params.Kind)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		filter.Kind = kind
	}

	txs, err := h.service.Search(ctx, number, filter)
	if err != nil {
		return nil, servers.Status(ctx, h.lg, err, "search history failed")
	}

	return &api.HistoryResponse{Transactions: transactions(txs)}, nil
}
