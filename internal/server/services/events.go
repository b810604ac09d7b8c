package services

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/timeline/internal/common"
	"github.com/dmitrijs2005/timeline/internal/dbx"
	"github.com/dmitrijs2005/timeline/internal/editor"
	"github.com/dmitrijs2005/timeline/internal/logging"
	"github.com/dmitrijs2005/timeline/internal/models"
	"github.com/dmitrijs2005/timeline/internal/server/broker"
	"github.com/dmitrijs2005/timeline/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// newID is a seam for tests.
var newID = uuid.NewString

// EventService owns event writes and keeps the broker's snapshot current.
// After every successful insert or update the full collection is re-read and
// published, so subscribers never have to merge increments.
type EventService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	broker      *broker.Broker
	logger      logging.Logger

	publishMu sync.Mutex
	seq       uint64
}

func NewEventService(db *sql.DB, m repomanager.RepositoryManager, b *broker.Broker, logger logging.Logger) *EventService {
	return &EventService{
		db:          db,
		repomanager: m,
		broker:      b,
		logger:      logger.With("module", "events"),
	}
}

// Create stores a new event and returns it with its assigned id. A missing
// color is drawn at random; OriginalColor defaults to Color.
func (s *EventService) Create(ctx context.Context, e *models.Event) (*models.Event, error) {
	ev, err := editor.Normalize(e)
	if err != nil {
		return nil, err
	}

	if ev.Color == "" {
		if ev.Color, err = editor.RandomColor(); err != nil {
			return nil, err
		}
	}
	if ev.OriginalColor == "" {
		ev.OriginalColor = ev.Color
	}
	ev.ID = newID()

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Events(tx).Create(ctx, ev)
	})
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info(ctx, "event created", "id", ev.ID, "name", ev.Name)
	s.publishAfterWrite(ctx)
	return ev, nil
}

// Get returns one event or common.ErrorNotFound. A key that is not an
// event id (a typed name, say) is simply not found.
func (s *EventService) Get(ctx context.Context, id string) (*models.Event, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	return s.repomanager.Events(s.db).Get(ctx, id)
}

// Update applies the fields of patch named in mask to the stored event and
// writes it back. An empty mask overwrites every patchable field. Colors are
// never changed by an update.
func (s *EventService) Update(ctx context.Context, id string, patch *models.Event, mask []string) (*models.Event, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	var updated *models.Event

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Events(tx)

		current, err := repo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}

		merged, err := models.ApplyPatch(current, patch, mask)
		if err != nil {
			return &editor.ValidationError{Field: "update_mask", Reason: err.Error()}
		}

		if updated, err = editor.Normalize(merged); err != nil {
			return err
		}
		return repo.Update(ctx, updated)
	})
	if err != nil {
		return nil, fmt.Errorf("update event %s: %w", id, err)
	}

	s.logger.Info(ctx, "event updated", "id", id, "fields", mask)
	s.publishAfterWrite(ctx)
	return updated, nil
}

// List returns all events ordered by start year.
func (s *EventService) List(ctx context.Context) ([]*models.Event, error) {
	return s.repomanager.Events(s.db).List(ctx)
}

// Subscribe registers a snapshot subscriber. The current collection is
// delivered first; the first subscriber primes the broker from the store.
func (s *EventService) Subscribe(ctx context.Context) (<-chan *models.Snapshot, func(), error) {
	ch, cancel := s.broker.Subscribe()
	if s.broker.Last() == nil {
		if err := s.publish(ctx); err != nil {
			cancel()
			return nil, nil, err
		}
	}
	s.logger.Debug(ctx, "subscriber added", "subscribers", s.broker.Subscribers())
	return ch, cancel, nil
}

// checkID rejects keys the store could never have assigned, before they
// reach the uuid column.
func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("event %q: %w", id, common.ErrorNotFound)
	}
	return nil
}

func (s *EventService) publish(ctx context.Context) error {
	s.publishMu.Lock()
	defer s.publishMu.Unlock()

	events, err := s.repomanager.Events(s.db).List(ctx)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	s.seq++
	snap := models.NewSnapshot(events, s.seq)
	s.broker.Publish(&snap)
	s.logger.Debug(ctx, "snapshot published", "sequence", snap.Sequence, "events", len(snap.Events))
	return nil
}

// publishAfterWrite must not fail the caller: the write is already committed.
func (s *EventService) publishAfterWrite(ctx context.Context) {
	if err := s.publish(context.WithoutCancel(ctx)); err != nil {
		s.logger.Error(ctx, "snapshot publish failed", "error", err)
	}
}
