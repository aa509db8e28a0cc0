package main

import (
	"context"
	"io"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/vysogota0399/bank_simulator/internal/banking"
	main_config "github.com/vysogota0399/bank_simulator/internal/config"
	"github.com/vysogota0399/bank_simulator/internal/console"
	"github.com/vysogota0399/bank_simulator/internal/ledger"
	"github.com/vysogota0399/bank_simulator/internal/logging"
	"github.com/vysogota0399/bank_simulator/internal/repositories"
	"github.com/vysogota0399/bank_simulator/internal/transaction_outbox"
)

func main() {
	fx.New(CreateApp(os.Stdin, os.Stdout)).Run()
}

// CreateApp wires the interactive session on in/out. Logs go to LOG_OUTPUT at
// CONSOLE_LOG_LEVEL so the dialogue stays readable.
func CreateApp(in io.Reader, out io.Writer) fx.Option {
	return fx.Options(
		fx.WithLogger(func(lg *logging.ZapLogger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: lg.Desugar()}
		}),
		fx.Provide(
			logging.NewZapLogger,
			logging.NewKafkaErrorLogger,
			logging.NewKafkaLogger,

			newLedger,
			fx.Annotate(banking.NewService, fx.As(new(console.Bank))),
			fx.Annotate(banking.NewRandomNumbers, fx.As(new(banking.NumberGenerator))),
			repositories.NewOutboxEventsRepository,
			outboxPorts,

			func(bank console.Bank, lg *logging.ZapLogger) *console.Console {
				return console.NewConsole(bank, in, out, lg)
			},

			transaction_outbox.NewDaemon,
			fx.Annotate(transaction_outbox.NewProducer, fx.As(new(transaction_outbox.Publisher))),
		),
		fx.Supply(
			consoleConfig(),
			transaction_outbox.MustNewConfig(),
		),
		fx.Invoke(
			startOutboxDaemon,
			runConsole,
		),
	)
}

func consoleConfig() *main_config.Config {
	cfg := main_config.MustNewConfig()
	cfg.LogLevel = cfg.ConsoleLogLevel

	return cfg
}

func newLedger(cfg *main_config.Config) *ledger.Ledger {
	return ledger.New(ledger.WithHashCost(cfg.CredentialHashCost))
}

func outboxPorts(rep *repositories.OutboxEventsRepository) (banking.EventsRecorder, transaction_outbox.OutboxEventsRepository) {
	return rep, rep
}

// runConsole serves the session in the background and shuts the app down once
// the user leaves.
func runConsole(lc fx.Lifecycle, sh fx.Shutdowner, c *console.Console, lg *logging.ZapLogger) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(
		fx.Hook{
			OnStart: func(context.Context) error {
				go func() {
					code := 0
					if err := c.Run(ctx); err != nil {
						lg.ErrorCtx(ctx, "console session failed", zap.Error(err))
						code = 1
					}

					if err := sh.Shutdown(fx.ExitCode(code)); err != nil {
						lg.ErrorCtx(ctx, "shutdown failed", zap.Error(err))
					}
				}()

				return nil
			},
			OnStop: func(context.Context) error {
				cancel()
				return nil
			},
		},
	)
}

func startOutboxDaemon(*transaction_outbox.Daemon) {}
