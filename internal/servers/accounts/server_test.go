package accounts

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/vysogota0399/bank_simulator/internal/api"
	"github.com/vysogota0399/bank_simulator/internal/banking"
	"github.com/vysogota0399/bank_simulator/internal/config"
	"github.com/vysogota0399/bank_simulator/internal/ledger"
	"github.com/vysogota0399/bank_simulator/internal/logging"
	"github.com/vysogota0399/bank_simulator/internal/repositories"
	"github.com/vysogota0399/bank_simulator/internal/servers/accounts/handlers"
	"github.com/vysogota0399/bank_simulator/internal/session"
)

type sequentialNumbers struct {
	next []string
}

func (s *sequentialNumbers) Generate() string {
	n := s.next[0]
	s.next = s.next[1:]
	return n
}

func newTestClient(t *testing.T, numbers ...string) (*api.AccountsClient, *session.Manager) {
	t.Helper()

	lg := logging.NewNop()
	cfg := &config.Config{
		AccountNumberAttempts: 1,
		SessionSecret:         "test-secret",
		SessionIssuer:         "bank_simulator",
		SessionTTL:            60,
	}

	svc := banking.NewService(
		ledger.New(ledger.WithHashCost(bcrypt.MinCost)),
		repositories.NewOutboxEventsRepository(cfg, lg),
		&sequentialNumbers{next: numbers},
		cfg,
		lg,
	)
	sessions := session.NewManager(cfg)

	h := NewHandler(
		handlers.NewCreateAccountHandler(svc, lg),
		handlers.NewLoginHandler(svc, sessions, lg),
		handlers.NewListAccountsHandler(svc, lg),
	)
	srv := NewServer(h, fxtest.NewLifecycle(t), cfg, lg)

	lis := bufconn.Listen(1 << 20)
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient(
		"passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return api.NewAccountsClient(conn), sessions
}

func TestAccounts_CreateAccount(t *testing.T) {
	client, _ := newTestClient(t, "1234567890", "1234567890")
	ctx := context.Background()

	tests := []struct {
		name     string
		req      *api.CreateAccountRequest
		wantCode codes.Code
	}{
		{name: "bad name", req: &api.CreateAccountRequest{Owner: "R2D2", Password: "1234"}, wantCode: codes.InvalidArgument},
		{name: "bad password", req: &api.CreateAccountRequest{Owner: "Alice", Password: "12"}, wantCode: codes.InvalidArgument},
		{name: "valid", req: &api.CreateAccountRequest{Owner: "Alice", Password: "1234"}, wantCode: codes.OK},
		{name: "numbers exhausted", req: &api.CreateAccountRequest{Owner: "Bob", Password: "1234"}, wantCode: codes.ResourceExhausted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := client.CreateAccount(ctx, tt.req)
			require.Equal(t, tt.wantCode, status.Code(err))
			if tt.wantCode == codes.OK {
				assert.Equal(t, "1234567890", resp.AccountNumber)
				assert.Equal(t, tt.req.Owner, resp.Owner)
			}
		})
	}
}

func TestAccounts_Login(t *testing.T) {
	client, sessions := newTestClient(t, "1234567890")
	ctx := context.Background()

	_, err := client.CreateAccount(ctx, &api.CreateAccountRequest{Owner: "Alice", Password: "1234"})
	require.NoError(t, err)

	_, err = client.Login(ctx, &api.LoginRequest{AccountNumber: "1234567890", Password: "0000"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = client.Login(ctx, &api.LoginRequest{AccountNumber: "9999999999", Password: "1234"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	resp, err := client.Login(ctx, &api.LoginRequest{AccountNumber: "1234567890", Password: "1234"})
	require.NoError(t, err)
	assert.Equal(t, "Alice", resp.Owner)
	assert.True(t, resp.Active)
	assert.False(t, resp.ExpiresAt.IsZero())

	number, err := sessions.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "1234567890", number)
}

func TestAccounts_ListAccounts(t *testing.T) {
	client, _ := newTestClient(t, "2000000000", "1000000000")
	ctx := context.Background()

	empty, err := client.ListAccounts(ctx, &api.ListAccountsRequest{})
	require.NoError(t, err)
	assert.Empty(t, empty.Accounts)

	for _, owner := range []string{"Zed", "Amy"} {
		_, err := client.CreateAccount(ctx, &api.CreateAccountRequest{Owner: owner, Password: "1111"})
		require.NoError(t, err)
	}

	resp, err := client.ListAccounts(ctx, &api.ListAccountsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Accounts, 2)
	assert.Equal(t, "2000000000", resp.Accounts[0].AccountNumber)
	assert.Equal(t, "Zed", resp.Accounts[0].Owner)
	assert.Equal(t, "Amy", resp.Accounts[1].Owner)
	assert.True(t, resp.Accounts[1].Balance.IsZero())
	assert.True(t, resp.Accounts[1].Active)
}
