package services

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/timeline/internal/common"
	"github.com/dmitrijs2005/timeline/internal/dbx"
	"github.com/dmitrijs2005/timeline/internal/models"
	"github.com/dmitrijs2005/timeline/internal/server/repositories/events"
	"github.com/dmitrijs2005/timeline/internal/server/repositories/references"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

// fakeEventsRepo is an in-memory events.Repository.
type fakeEventsRepo struct {
	mu    sync.Mutex
	byID  map[string]*models.Event
	order []string
	listN int
	errOn map[string]error
}

func newFakeEventsRepo() *fakeEventsRepo {
	return &fakeEventsRepo{byID: map[string]*models.Event{}, errOn: map[string]error{}}
}

func (f *fakeEventsRepo) Create(_ context.Context, e *models.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.errOn["create"]; err != nil {
		return err
	}
	f.byID[e.ID] = e.Clone()
	f.order = append(f.order, e.ID)
	return nil
}

func (f *fakeEventsRepo) Get(_ context.Context, id string) (*models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return e.Clone(), nil
}

func (f *fakeEventsRepo) GetForUpdate(ctx context.Context, id string) (*models.Event, error) {
	return f.Get(ctx, id)
}

func (f *fakeEventsRepo) Update(_ context.Context, e *models.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.errOn["update"]; err != nil {
		return err
	}
	if _, ok := f.byID[e.ID]; !ok {
		return common.ErrorNotFound
	}
	f.byID[e.ID] = e.Clone()
	return nil
}

func (f *fakeEventsRepo) List(_ context.Context) ([]*models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listN++
	if err := f.errOn["list"]; err != nil {
		return nil, err
	}
	out := make([]*models.Event, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.byID[id].Clone())
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out, nil
}

type fakeRefsRepo struct {
	tags      []*models.ReferenceTag
	createErr error
}

func (f *fakeRefsRepo) Create(_ context.Context, t *models.ReferenceTag) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.tags = append(f.tags, t)
	return nil
}

func (f *fakeRefsRepo) List(context.Context) ([]*models.ReferenceTag, error) {
	return f.tags, nil
}

type fakeRepoManager struct {
	ev   *fakeEventsRepo
	refs *fakeRefsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Events(dbx.DBTX) events.Repository         { return m.ev }
func (m *fakeRepoManager) References(dbx.DBTX) references.Repository { return m.refs }
