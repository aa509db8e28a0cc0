package accounting

import (
	"context"
	"fmt"
	"net"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/vysogota0399/bank_simulator/internal/api"
	"github.com/vysogota0399/bank_simulator/internal/config"
	"github.com/vysogota0399/bank_simulator/internal/logging"
	"github.com/vysogota0399/bank_simulator/internal/session"
)

type Server struct {
	handler api.AccountingServer
	cfg     *config.Config
	srv     *grpc.Server
	lg      *logging.ZapLogger
}

func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.cfg.AccountingServerAddress)
	if err != nil {
		return fmt.Errorf("accounting/server: listen error %w", err)
	}

	go s.Serve(lis)
	return nil
}

func (s *Server) Serve(lis net.Listener) {
	if err := s.srv.Serve(lis); err != nil {
		s.lg.ErrorCtx(context.Background(), "accounting server stopped", zap.Error(err))
	}
}

func (s *Server) Stop() {
	s.srv.GracefulStop()
}

func NewServer(
	h api.AccountingServer,
	sessions *session.Manager,
	lc fx.Lifecycle,
	cfg *config.Config,
	lg *logging.ZapLogger,
) *Server {
	srv := &Server{
		cfg:     cfg,
		srv:     grpc.NewServer(grpc.UnaryInterceptor(sessions.UnaryServerInterceptor(lg))),
		handler: h,
		lg:      lg,
	}
	api.RegisterAccountingServer(srv.srv, srv.handler)

	lc.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				lg.InfoCtx(
					ctx,
					fmt.Sprintf("start processing %s GRPC requests", api.AccountingServiceName),
					zap.String("address", cfg.AccountingServerAddress),
				)

				return srv.Start()
			},
			OnStop: func(ctx context.Context) error {
				srv.Stop()
				return nil
			},
		},
	)

	return srv
}
