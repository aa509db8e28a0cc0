package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateAccountRequest struct {
	Owner    string `json:"owner"`
	Password string `json:"password"`
}

type CreateAccountResponse struct {
	AccountNumber string `json:"account_number"`
	Owner         string `json:"owner"`
}

type LoginRequest struct {
	AccountNumber string `json:"account_number"`
	Password      string `json:"password"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Owner     string    `json:"owner"`
	Active    bool      `json:"active"`
}

type ListAccountsRequest struct{}

type ListAccountsResponse struct {
	Accounts []*AccountSummary `json:"accounts"`
}

type AccountSummary struct {
	AccountNumber string          `json:"account_number"`
	Owner         string          `json:"owner"`
	Balance       decimal.Decimal `json:"balance"`
	Active        bool            `json:"active"`
}

type Transaction struct {
	ID          int64           `json:"id"`
	Kind        string          `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	ProcessedAt time.Time       `json:"processed_at"`
}

type DepositRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type WithdrawRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type OperationResponse struct {
	Transaction *Transaction    `json:"transaction"`
	Balance     decimal.Decimal `json:"balance"`
}

type GetBalanceRequest struct{}

type GetBalanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

type GetHistoryRequest struct{}

// SearchHistoryRequest fields are optional. An empty Kind matches both kinds.
type SearchHistoryRequest struct {
	Kind      string              `json:"kind,omitempty"`
	MinAmount decimal.NullDecimal `json:"min_amount"`
	MaxAmount decimal.NullDecimal `json:"max_amount"`
}

type HistoryResponse struct {
	Transactions []*Transaction `json:"transactions"`
}

type CloseAccountRequest struct{}

type CloseAccountResponse struct{}
