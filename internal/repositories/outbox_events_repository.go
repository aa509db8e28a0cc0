package repositories

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vysogota0399/bank_simulator/internal/config"
	"github.com/vysogota0399/bank_simulator/internal/logging"
	"github.com/vysogota0399/bank_simulator/internal/models"
)

var ErrEventNotFound = errors.New("outbox_events_repository: event not found")

// OutboxEventsRepository keeps transaction events in memory until a daemon
// worker publishes them. Finished events are dropped. Failed events leave the
// queue but stay in events so they can still be inspected.
type OutboxEventsRepository struct {
	mu      sync.Mutex
	enabled bool
	events  map[string]*models.TransactionEvent
	queue   []string
	lg      *logging.ZapLogger
	now     func() time.Time
}

func NewOutboxEventsRepository(cfg *config.Config, lg *logging.ZapLogger) *OutboxEventsRepository {
	return &OutboxEventsRepository{
		enabled: cfg.KafkaEnabled(),
		events:  make(map[string]*models.TransactionEvent),
		lg:      lg,
		now:     time.Now,
	}
}

func (rep *OutboxEventsRepository) SaveTransactionRecorded(ctx context.Context, meta *models.TransactionEventMeta) error {
	if !rep.enabled {
		return nil
	}

	e := &models.TransactionEvent{
		UUID:      uuid.NewString(),
		State:     models.TransactionEventNewState,
		Name:      models.TransactionRecordedEventName,
		CreatedAt: rep.now(),
		Meta:      meta,
	}

	rep.mu.Lock()
	rep.events[e.UUID] = e
	rep.queue = append(rep.queue, e.UUID)
	rep.mu.Unlock()

	rep.lg.DebugCtx(ctx, "outbox event saved", zap.String("event_uuid", e.UUID))
	return nil
}

// ReserveTransactionRecordedEvent moves the oldest new event to processing and
// returns a copy of it. It returns nil when nothing is waiting.
func (rep *OutboxEventsRepository) ReserveTransactionRecordedEvent(ctx context.Context) (*models.TransactionEvent, error) {
	rep.mu.Lock()
	defer rep.mu.Unlock()

	for _, id := range rep.queue {
		e := rep.events[id]
		if e.State != models.TransactionEventNewState {
			continue
		}

		e.State = models.TransactionEventProcessingState
		e.Attempts++
		cp := *e
		return &cp, nil
	}

	return nil, nil
}

func (rep *OutboxEventsRepository) SetState(ctx context.Context, id string, newState string) error {
	rep.mu.Lock()
	defer rep.mu.Unlock()

	e, ok := rep.events[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrEventNotFound, id)
	}

	switch newState {
	case models.TransactionEventFinishedState:
		delete(rep.events, id)
		rep.dequeue(id)
	case models.TransactionEventFailedState:
		e.State = newState
		rep.dequeue(id)
	default:
		e.State = newState
	}

	return nil
}

// Pending counts events that are not finished yet, failed ones included.
func (rep *OutboxEventsRepository) Pending() int {
	rep.mu.Lock()
	defer rep.mu.Unlock()
	return len(rep.events)
}

func (rep *OutboxEventsRepository) State(id string) (string, bool) {
	rep.mu.Lock()
	defer rep.mu.Unlock()

	e, ok := rep.events[id]
	if !ok {
		return "", false
	}
	return e.State, true
}

func (rep *OutboxEventsRepository) dequeue(id string) {
	for i, qid := range rep.queue {
		if qid == id {
			rep.queue = append(rep.queue[:i], rep.queue[i+1:]...)
			return
		}
	}
}
