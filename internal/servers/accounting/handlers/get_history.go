package handlers

import (
	"context"

	"github.com/vysogota0399/bank_simulator/internal/api"
	"github.com/vysogota0399/bank_simulator/internal/ledger"
	"github.com/vysogota0399/bank_simulator/internal/logging"
	"github.com/vysogota0399/bank_simulator/internal/servers"
)

type GetHistoryHandler struct {
	lg      *logging.ZapLogger
	service HistoryReader
}

type HistoryReader interface {
	History(ctx context.Context, number string) ([]ledger.Transaction, error)
}

func NewGetHistoryHandler(service HistoryReader, lg *logging.ZapLogger) *GetHistoryHandler {
	return &GetHistoryHandler{lg: lg, service: service}
}

func (h GetHistoryHandler) GetHistory(ctx context.Context, _ *api.GetHistoryRequest) (*api.HistoryResponse, error) {
	number, err := servers.SessionAccount(ctx)
	if err != nil {
		return nil, err
	}

	txs, err := h.service.History(ctx, number)
	if err != nil {
		return nil, servers.Status(ctx, h.lg, err, "get history failed")
	}

	return &api.HistoryResponse{Transactions: transactions(txs)}, nil
}

func transactions(txs []ledger.Transaction) []*api.Transaction {
	out := make([]*api.Transaction, 0, len(txs))
	for _, tx := range txs {
		out = append(out, transaction(tx))
	}
	return out
}

func transaction(tx ledger.Transaction) *api.Transaction {
	return &api.Transaction{
		ID:          tx.ID,
		Kind:        string(tx.Kind),
		Amount:      tx.Amount,
		ProcessedAt: tx.Timestamp,
	}
}
