package grpc

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/timeline/internal/common"
	"github.com/dmitrijs2005/timeline/internal/models"
	"github.com/dmitrijs2005/timeline/internal/server/broker"
	"github.com/dmitrijs2005/timeline/internal/server/services"
)

// fakeEvents keeps events in memory and publishes through a real broker.
type fakeEvents struct {
	mu     sync.Mutex
	events []*models.Event
	seq    uint64
	b      *broker.Broker
	err    error
}

func newFakeEvents(seed ...*models.Event) *fakeEvents {
	f := &fakeEvents{events: seed, b: broker.New(nil)}
	f.publishLocked()
	return f
}

func (f *fakeEvents) publishLocked() {
	f.seq++
	s := models.NewSnapshot(f.events, f.seq)
	f.b.Publish(&s)
}

func (f *fakeEvents) Create(_ context.Context, e *models.Event) (*models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	e = e.Clone()
	e.ID = fmt.Sprintf("id-%d", len(f.events)+1)
	f.events = append(f.events, e)
	f.publishLocked()
	return e, nil
}

func (f *fakeEvents) Get(_ context.Context, id string) (*models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.events {
		if e.ID == id {
			return e.Clone(), nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeEvents) Update(_ context.Context, id string, patch *models.Event, mask []string) (*models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, e := range f.events {
		if e.ID == id {
			merged, err := models.ApplyPatch(e, patch, mask)
			if err != nil {
				return nil, err
			}
			f.events[i] = merged
			f.publishLocked()
			return merged.Clone(), nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeEvents) List(context.Context) ([]*models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return models.NewSnapshot(f.events, 0).Events, nil
}

func (f *fakeEvents) Subscribe(context.Context) (<-chan *models.Snapshot, func(), error) {
	if f.err != nil {
		return nil, nil, f.err
	}
	ch, cancel := f.b.Subscribe()
	return ch, cancel, nil
}

type fakeRefs struct {
	tags []*models.ReferenceTag
	err  error
}

func (f *fakeRefs) List(context.Context) ([]*models.ReferenceTag, error) { return f.tags, f.err }
func (f *fakeRefs) Create(_ context.Context, name string) (*models.ReferenceTag, error) {
	if f.err != nil {
		return nil, f.err
	}
	t := &models.ReferenceTag{ID: "t" + name, Name: name}
	f.tags = append(f.tags, t)
	return t, nil
}

type fakeOverlays struct {
	err error
}

func (f *fakeOverlays) NewUpload(_ context.Context, ct string) (*services.OverlayUpload, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &services.OverlayUpload{Key: "overlays/k", UploadURL: "http://put", ImageURL: "http://get"}, nil
}

type observed struct {
	method, code string
}

type fakeObserver struct {
	mu    sync.Mutex
	calls []observed
}

func (f *fakeObserver) ObserveRPC(method, code string, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, observed{method, code})
}

func (f *fakeObserver) snapshot() []observed {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]observed(nil), f.calls...)
}
