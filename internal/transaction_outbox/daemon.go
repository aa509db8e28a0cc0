package transaction_outbox

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/vysogota0399/bank_simulator/internal/logging"
	"github.com/vysogota0399/bank_simulator/internal/models"
)

type Daemon struct {
	lg           *logging.ZapLogger
	pollInterval time.Duration
	workersCount int64
	maxAttempts  int
	cfg          *Config

	cancaller context.CancelFunc
	wg        sync.WaitGroup
	events    OutboxEventsRepository
	publisher Publisher
}

type OutboxEventsRepository interface {
	ReserveTransactionRecordedEvent(ctx context.Context) (*models.TransactionEvent, error)
	SetState(ctx context.Context, uuid string, newState string) error
}

type Publisher interface {
	Publish(ctx context.Context, e *models.TransactionEvent) error
}

func NewDaemon(
	lc fx.Lifecycle,
	events OutboxEventsRepository,
	publisher Publisher,
	lg *logging.ZapLogger,
	cfg *Config,
) *Daemon {
	dmn := &Daemon{
		lg:           lg,
		pollInterval: time.Duration(cfg.PollInterval) * time.Millisecond,
		workersCount: cfg.WorkersCount,
		maxAttempts:  cfg.MaxAttempts,
		cfg:          cfg,
		events:       events,
		publisher:    publisher,
	}

	lc.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				dmn.Start()
				return nil
			},
			OnStop: func(ctx context.Context) error {
				dmn.Stop()
				return nil
			},
		},
	)

	return dmn
}

func (dmn *Daemon) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	dmn.cancaller = cancel
	ctx = dmn.lg.WithContextFields(ctx, zap.String("name", "transaction_recorded_events_daemon"))

	dmn.lg.DebugCtx(
		ctx,
		fmt.Sprintf("start processing %s events", models.TransactionRecordedEventName),
		zap.Any("config", dmn.cfg),
	)

	for i := 0; i < int(dmn.workersCount); i++ {
		wctx := dmn.lg.WithContextFields(ctx, zap.Int("worker_id", i))
		dmn.wg.Add(1)

		go func() {
			defer dmn.wg.Done()

			ticker := time.NewTicker(dmn.pollInterval)
			defer ticker.Stop()

			for {
				select {
				case <-wctx.Done():
					dmn.lg.DebugCtx(wctx, "daemon worker graceful shutdown")
					return
				case <-ticker.C:
					if err := dmn.processEvent(wctx); err != nil {
						dmn.lg.ErrorCtx(wctx, "process event finished error", zap.Error(err))
					}
				}
			}
		}()
	}
}

// Stop cancels the workers and waits for the in-flight publishes.
func (dmn *Daemon) Stop() {
	if dmn.cancaller != nil {
		dmn.cancaller()
	}
	dmn.wg.Wait()
}

func (dmn *Daemon) processEvent(ctx context.Context) error {
	e, err := dmn.events.ReserveTransactionRecordedEvent(ctx)
	if err != nil {
		return fmt.Errorf("transaction_outbox/daemon: reserve event error %w", err)
	}

	if e == nil {
		return nil
	}

	ctx = dmn.lg.WithContextFields(ctx, zap.String("event_uuid", e.UUID), zap.Int("attempt", e.Attempts))

	if err := dmn.publisher.Publish(ctx, e); err != nil {
		state := models.TransactionEventNewState
		if e.Attempts >= dmn.maxAttempts {
			state = models.TransactionEventFailedState
		}

		if err := dmn.events.SetState(ctx, e.UUID, state); err != nil {
			return fmt.Errorf("transaction_outbox/daemon: set event %s state error %w", state, err)
		}

		return fmt.Errorf("transaction_outbox/daemon: publish event error %w", err)
	}

	if err := dmn.events.SetState(ctx, e.UUID, models.TransactionEventFinishedState); err != nil {
		return fmt.Errorf("transaction_outbox/daemon: set event %s state error %w", models.TransactionEventFinishedState, err)
	}

	dmn.lg.DebugCtx(ctx, "event published")
	return nil
}
