package cli

import (
	"bufio"
	"bytes"
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/dmitrijs2005/timeline/internal/client/client"
	"github.com/dmitrijs2005/timeline/internal/client/config"
	"github.com/dmitrijs2005/timeline/internal/common"
	"github.com/dmitrijs2005/timeline/internal/logging"
	"github.com/dmitrijs2005/timeline/internal/models"
)

// fakeGateway is an in-memory client.Gateway.
type fakeGateway struct {
	mu sync.Mutex

	events map[string]*models.Event
	tags   []string
	nextID int

	created   []*models.Event
	updates   []updateCall
	pingErr   error
	createErr error
	subErr    error
	onUpdate  func(*models.Snapshot)
	upload    *client.OverlayUpload
	closed    bool
}

type updateCall struct {
	id   string
	e    *models.Event
	mask []string
}

func newFakeGateway(events ...*models.Event) *fakeGateway {
	g := &fakeGateway{events: map[string]*models.Event{}}
	for _, e := range events {
		g.events[e.ID] = e.Clone()
	}
	return g
}

func (g *fakeGateway) Ping(context.Context) error { return g.pingErr }

func (g *fakeGateway) SubscribeToEvents(_ context.Context, onUpdate func(*models.Snapshot)) (func(), error) {
	if g.subErr != nil {
		return nil, g.subErr
	}
	g.onUpdate = onUpdate
	return func() {}, nil
}

func (g *fakeGateway) CreateEvent(_ context.Context, e *models.Event) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.createErr != nil {
		return "", g.createErr
	}
	g.nextID++
	id := "new-" + strconv.Itoa(g.nextID)
	c := e.Clone()
	c.ID = id
	g.events[id] = c
	g.created = append(g.created, c)
	return id, nil
}

func (g *fakeGateway) GetEvent(_ context.Context, id string) (*models.Event, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	e, ok := g.events[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return e.Clone(), nil
}

func (g *fakeGateway) UpdateEvent(_ context.Context, id string, e *models.Event, mask []string) (*models.Event, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	cur, ok := g.events[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	g.updates = append(g.updates, updateCall{id: id, e: e.Clone(), mask: mask})
	out, err := models.ApplyPatch(cur, e, mask)
	if err != nil {
		return nil, err
	}
	g.events[id] = out
	return out.Clone(), nil
}

func (g *fakeGateway) ListEvents(context.Context) ([]*models.Event, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]*models.Event, 0, len(g.events))
	for _, e := range g.events {
		out = append(out, e.Clone())
	}
	return out, nil
}

func (g *fakeGateway) ListReferenceTags(context.Context) ([]string, error) {
	return append([]string(nil), g.tags...), nil
}

func (g *fakeGateway) CreateReferenceTag(_ context.Context, name string) (string, error) {
	for _, t := range g.tags {
		if t == name {
			return "", common.ErrorAlreadyExists
		}
	}
	g.tags = append(g.tags, name)
	return "tag-" + name, nil
}

func (g *fakeGateway) GetOverlayUploadURL(context.Context, string) (*client.OverlayUpload, error) {
	return g.upload, nil
}

func (g *fakeGateway) Close() error { g.closed = true; return nil }

// push delivers the gateway's current events as a snapshot.
func (g *fakeGateway) push(seq uint64) {
	events, _ := g.ListEvents(context.Background())
	s := models.NewSnapshot(events, seq)
	g.onUpdate(&s)
}

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	return c
}

func newTestApp(g *fakeGateway, input ...string) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	r := bufio.NewReader(strings.NewReader(strings.Join(input, "\n") + "\n"))
	return newApp(testConfig(), g, logging.Nop{}, r, out), out
}

// loaded returns an app whose view already holds the gateway's events.
func loaded(g *fakeGateway, input ...string) (*App, *bytes.Buffer) {
	a, out := newTestApp(g, input...)
	_, _ = g.SubscribeToEvents(context.Background(), a.onSnapshot)
	g.push(1)
	return a, out
}

func ptr(f float64) *float64 { return &f }
