package main

import (
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/vysogota0399/bank_simulator/internal/api"
	"github.com/vysogota0399/bank_simulator/internal/banking"
	main_config "github.com/vysogota0399/bank_simulator/internal/config"
	"github.com/vysogota0399/bank_simulator/internal/ledger"
	"github.com/vysogota0399/bank_simulator/internal/logging"
	"github.com/vysogota0399/bank_simulator/internal/repositories"
	"github.com/vysogota0399/bank_simulator/internal/servers/accounting"
	accounting_service_handlers "github.com/vysogota0399/bank_simulator/internal/servers/accounting/handlers"
	"github.com/vysogota0399/bank_simulator/internal/servers/accounts"
	accounts_service_handlers "github.com/vysogota0399/bank_simulator/internal/servers/accounts/handlers"
	"github.com/vysogota0399/bank_simulator/internal/session"
	"github.com/vysogota0399/bank_simulator/internal/transaction_outbox"
)

func main() {
	fx.New(CreateApp()).Run()
}

func CreateApp() fx.Option {
	return fx.Options(
		fx.WithLogger(func(lg *logging.ZapLogger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: lg.Desugar()}
		}),
		fx.Provide(
			logging.NewZapLogger,
			logging.NewKafkaErrorLogger,
			logging.NewKafkaLogger,

			newLedger,
			banking.NewService,
			fx.Annotate(banking.NewRandomNumbers, fx.As(new(banking.NumberGenerator))),
			repositories.NewOutboxEventsRepository,
			outboxPorts,
			session.NewManager,
			sessionPorts,
			bankingPorts,

			// GRPC servers
			accounts.NewServer,
			fx.Annotate(accounts.NewHandler, fx.As(new(api.AccountsServer))),
			accounts_service_handlers.NewCreateAccountHandler,
			accounts_service_handlers.NewLoginHandler,
			accounts_service_handlers.NewListAccountsHandler,

			accounting.NewServer,
			fx.Annotate(accounting.NewHandler, fx.As(new(api.AccountingServer))),
			accounting_service_handlers.NewDepositHandler,
			accounting_service_handlers.NewWithdrawHandler,
			accounting_service_handlers.NewGetBalanceHandler,
			accounting_service_handlers.NewGetHistoryHandler,
			accounting_service_handlers.NewSearchHistoryHandler,
			accounting_service_handlers.NewCloseAccountHandler,

			// transaction outbox
			transaction_outbox.NewDaemon,
			fx.Annotate(transaction_outbox.NewProducer, fx.As(new(transaction_outbox.Publisher))),
		),
		fx.Supply(
			main_config.MustNewConfig(),
			transaction_outbox.MustNewConfig(),
		),
		fx.Invoke(
			startAccountsServer,
			startAccountingServer,
			startOutboxDaemon,
		),
	)
}

func newLedger(cfg *main_config.Config) *ledger.Ledger {
	return ledger.New(ledger.WithHashCost(cfg.CredentialHashCost))
}

// The service, the outbox and the session manager are shared state, so each
// is built once and handed out under every interface its consumers declare.

func outboxPorts(rep *repositories.OutboxEventsRepository) (banking.EventsRecorder, transaction_outbox.OutboxEventsRepository) {
	return rep, rep
}

func sessionPorts(m *session.Manager) accounts_service_handlers.TokenIssuer {
	return m
}

func bankingPorts(s *banking.Service) (
	accounts_service_handlers.AccountCreator,
	accounts_service_handlers.Authenticator,
	accounts_service_handlers.AccountsLister,
	accounting_service_handlers.Depositor,
	accounting_service_handlers.Withdrawer,
	accounting_service_handlers.BalanceReader,
	accounting_service_handlers.HistoryReader,
	accounting_service_handlers.HistorySearcher,
	accounting_service_handlers.AccountCloser,
) {
	return s, s, s, s, s, s, s, s, s
}

func startAccountsServer(*accounts.Server)         {}
func startAccountingServer(*accounting.Server)     {}
func startOutboxDaemon(*transaction_outbox.Daemon) {}
