package session

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/vysogota0399/bank_simulator/internal/logging"
)

const (
	AuthorizationHeader = "authorization"
	bearerPrefix        = "bearer "
)

type accountNumberKey struct{}

func WithAccountNumber(ctx context.Context, number string) context.Context {
	return context.WithValue(ctx, accountNumberKey{}, number)
}

func AccountNumber(ctx context.Context) (string, bool) {
	number, ok := ctx.Value(accountNumberKey{}).(string)
	return number, ok && number != ""
}

// BearerToken builds the outgoing metadata value for a token.
func BearerToken(token string) string {
	return "Bearer " + token
}

// UnaryServerInterceptor rejects calls without a valid bearer token and puts
// the session account number into the handler context.
func (m *Manager) UnaryServerInterceptor(lg *logging.ZapLogger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		token, ok := bearerFromMetadata(ctx)
		if !ok {
			lg.DebugCtx(ctx, "missing bearer token", zap.String("method", info.FullMethod))
			return nil, status.Errorf(codes.Unauthenticated, "authorization token required")
		}

		number, err := m.Verify(token)
		if err != nil {
			lg.InfoCtx(ctx, "token rejected", zap.String("method", info.FullMethod), zap.Error(err))
			return nil, status.Errorf(codes.Unauthenticated, "invalid authorization token")
		}

		ctx = lg.WithContextFields(ctx, zap.String("account_number", number))
		return handler(WithAccountNumber(ctx, number), req)
	}
}

func bearerFromMetadata(ctx context.Context) (string, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", false
	}

	values := md.Get(AuthorizationHeader)
	if len(values) == 0 {
		return "", false
	}

	v := strings.TrimSpace(values[0])
	if len(v) <= len(bearerPrefix) || !strings.EqualFold(v[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	return strings.TrimSpace(v[len(bearerPrefix):]), true
}
