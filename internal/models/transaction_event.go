package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	TransactionEventNewState        = "new"
	TransactionEventProcessingState = "processing"
	TransactionEventFinishedState   = "finished"
	TransactionEventFailedState     = "failed"
)

const TransactionRecordedEventName = "transaction_recorded"

type TransactionEvent struct {
	UUID      string
	State     string
	Name      string
	Attempts  int
	CreatedAt time.Time
	Meta      *TransactionEventMeta
}

type TransactionEventMeta struct {
	TransactionID int64           `json:"transaction_id"`
	AccountNumber string          `json:"account_number"`
	Operation     string          `json:"operation"`
	Amount        decimal.Decimal `json:"amount"`
	Balance       decimal.Decimal `json:"balance"`
	ProcessedAt   time.Time       `json:"processed_at"`
}

// MarshalProto encodes meta as a google.protobuf.Struct message.
func (m *TransactionEventMeta) MarshalProto() ([]byte, error) {
	s, err := structpb.NewStruct(map[string]any{
		"transaction_id": strconv.FormatInt(m.TransactionID, 10),
		"account_number": m.AccountNumber,
		"operation":      m.Operation,
		"amount":         m.Amount.String(),
		"balance":        m.Balance.String(),
		"processed_at":   m.ProcessedAt.Format(time.RFC3339Nano),
	})
	if err != nil {
		return nil, fmt.Errorf("models/transaction_event: build struct error %w", err)
	}

	b, err := proto.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("models/transaction_event: marshal error %w", err)
	}

	return b, nil
}

func (m *TransactionEventMeta) UnmarshalProto(b []byte) error {
	s := &structpb.Struct{}
	if err := proto.Unmarshal(b, s); err != nil {
		return fmt.Errorf("models/transaction_event: unmarshal error %w", err)
	}

	fields := s.GetFields()
	for _, key := range []string{"transaction_id", "account_number", "operation", "amount", "balance", "processed_at"} {
		if _, ok := fields[key]; !ok {
			return fmt.Errorf("models/transaction_event: meta invalid format error, missing %s", key)
		}
	}

	amount, err := decimal.NewFromString(fields["amount"].GetStringValue())
	if err != nil {
		return fmt.Errorf("models/transaction_event: parse amount error %w", err)
	}

	balance, err := decimal.NewFromString(fields["balance"].GetStringValue())
	if err != nil {
		return fmt.Errorf("models/transaction_event: parse balance error %w", err)
	}

	transactionID, err := strconv.ParseInt(fields["transaction_id"].GetStringValue(), 10, 64)
	if err != nil {
		return fmt.Errorf("models/transaction_event: parse transaction_id error %w", err)
	}

	processedAt, err := time.Parse(time.RFC3339Nano, fields["processed_at"].GetStringValue())
	if err != nil {
		return fmt.Errorf("models/transaction_event: parse processed_at error %w", err)
	}

	*m = TransactionEventMeta{
		TransactionID: transactionID,
		AccountNumber: fields["account_number"].GetStringValue(),
		Operation:     fields["operation"].GetStringValue(),
		Amount:        amount,
		Balance:       balance,
		ProcessedAt:   processedAt,
	}

	return nil
}
