package main

import (
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	main_config "github.com/vysogota0399/bank_simulator/internal/config"
	"github.com/vysogota0399/bank_simulator/internal/logging"
	"github.com/vysogota0399/bank_simulator/internal/transaction_audit"
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

			transaction_audit.NewConsumer,
		),
		fx.Supply(main_config.MustNewConfig(), transaction_audit.MustNewConfig()),
		fx.Invoke(startConsumer),
	)
}

func startConsumer(*transaction_audit.Consumer) {}
