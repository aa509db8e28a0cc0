package models

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestTransactionEventMeta_Proto(t *testing.T) {
	in := &TransactionEventMeta{
		TransactionID: 42,
		AccountNumber: "1234567890",
		Operation:     "WITHDRAWAL",
		Amount:        decimal.RequireFromString("40.25"),
		Balance:       decimal.RequireFromString("59.75"),
		ProcessedAt:   time.Date(2025, 5, 6, 7, 8, 9, 10, time.UTC),
	}

	b, err := in.MarshalProto()
	require.NoError(t, err)

	out := &TransactionEventMeta{}
	require.NoError(t, out.UnmarshalProto(b))

	assert.Equal(t, in.TransactionID, out.TransactionID)
	assert.Equal(t, in.AccountNumber, out.AccountNumber)
	assert.Equal(t, in.Operation, out.Operation)
	assert.True(t, in.Amount.Equal(out.Amount))
	assert.True(t, in.Balance.Equal(out.Balance))
	assert.True(t, in.ProcessedAt.Equal(out.ProcessedAt))
}

func TestTransactionEventMeta_UnmarshalProtoErrors(t *testing.T) {
	t.Run("garbage", func(t *testing.T) {
		err := (&TransactionEventMeta{}).UnmarshalProto([]byte{0xff, 0xff, 0xff})
		assert.Error(t, err)
	})

	t.Run("missing field", func(t *testing.T) {
		s, err := structpb.NewStruct(map[string]any{"account_number": "1"})
		require.NoError(t, err)
		b, err := proto.Marshal(s)
		require.NoError(t, err)

		err = (&TransactionEventMeta{}).UnmarshalProto(b)
		assert.ErrorContains(t, err, "missing")
	})

	t.Run("bad amount", func(t *testing.T) {
		s, err := structpb.NewStruct(map[string]any{
			"transaction_id": "1",
			"account_number": "1",
			"operation":      "DEPOSIT",
			"amount":         "ten",
			"balance":        "10",
			"processed_at":   time.Now().Format(time.RFC3339Nano),
		})
		require.NoError(t, err)
		b, err := proto.Marshal(s)
		require.NoError(t, err)

		err = (&TransactionEventMeta{}).UnmarshalProto(b)
		assert.ErrorContains(t, err, "amount")
	})

	t.Run("numeric transaction id", func(t *testing.T) {
		s, err := structpb.NewStruct(map[string]any{
			"transaction_id": 1,
			"account_number": "1",
			"operation":      "DEPOSIT",
			"amount":         "10",
			"balance":        "10",
			"processed_at":   time.Now().Format(time.RFC3339Nano),
		})
		require.NoError(t, err)
		b, err := proto.Marshal(s)
		require.NoError(t, err)

		err = (&TransactionEventMeta{}).UnmarshalProto(b)
		assert.ErrorContains(t, err, "transaction_id")
	})
}

func TestTransactionEventMeta_ProtoKeepsLargeIDs(t *testing.T) {
	for _, id := range []int64{1<<53 + 1, math.MaxInt64} {
		in := &TransactionEventMeta{
			TransactionID: id,
			AccountNumber: "1234567890",
			Operation:     "DEPOSIT",
			Amount:        decimal.NewFromInt(1),
			Balance:       decimal.NewFromInt(1),
			ProcessedAt:   time.Date(2025, 5, 6, 7, 8, 9, 0, time.UTC),
		}

		b, err := in.MarshalProto()
		require.NoError(t, err)

		out := &TransactionEventMeta{}
		require.NoError(t, out.UnmarshalProto(b))
		assert.Equal(t, id, out.TransactionID)
	}
}
