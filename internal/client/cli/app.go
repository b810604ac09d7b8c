package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/timeline/internal/client/client"
	"github.com/dmitrijs2005/timeline/internal/client/config"
	"github.com/dmitrijs2005/timeline/internal/client/view"
	"github.com/dmitrijs2005/timeline/internal/logging"
	"github.com/dmitrijs2005/timeline/internal/models"
	"github.com/dmitrijs2005/timeline/internal/render"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config     *config.Config
	gateway    client.Gateway
	view       *view.Timeline
	logger     logging.Logger
	mode       atomic.Value
	watching   atomic.Bool
	subscribed atomic.Bool
	reader     *bufio.Reader
	out        io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	logger := logging.NewJSONLogger(os.Stderr, level)

	gw, err := client.NewTimelineClient(c.ServerEndpointAddr, logger)
	if err != nil {
		return nil, err
	}

	return newApp(c, gw, logger, bufio.NewReader(os.Stdin), os.Stdout), nil
}

func newApp(c *config.Config, gw client.Gateway, logger logging.Logger, r *bufio.Reader, out io.Writer) *App {
	a := &App{
		config:  c,
		gateway: gw,
		view:    view.NewTimeline(c.Range()),
		logger:  logger.With("module", "cli"),
		reader:  r,
		out:     out,
	}
	a.mode.Store(ModeOffline)
	return a
}

func (a *App) Mode() Mode {
	return a.mode.Load().(Mode)
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	if a.mode.Swap(mode) != mode {
		a.logger.Info(ctx, "connection mode changed", "mode", mode)
	}
}

// Run subscribes to the event collection and blocks in the REPL until the
// user exits or ctx is done.
func (a *App) Run(ctx context.Context) {
	defer a.gateway.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fmt.Fprintln(a.out, "Welcome to the timeline CLI (type 'help' for commands)")

	if unsubscribe, err := a.gateway.SubscribeToEvents(ctx, a.onSnapshot); err != nil {
		a.logger.Warn(ctx, "subscription failed", "error", err)
		fmt.Fprintln(a.out, "Server unavailable, the timeline will stay empty until it is back. Use 'reload' to retry.")
	} else {
		a.subscribed.Store(true)
		a.setMode(ctx, ModeOnline)
		defer unsubscribe()
	}

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.status, a.reader)
}

// onSnapshot is the subscription callback. It runs on the receive goroutine.
func (a *App) onSnapshot(s *models.Snapshot) {
	if !a.view.Apply(s) {
		return
	}
	if a.watching.Load() {
		fmt.Fprintf(a.out, "\n-- update #%d, %d events --\n", s.Sequence, len(s.Events))
		if err := a.drawTimeline(); err != nil {
			a.logger.Warn(context.Background(), "draw failed", "error", err)
		}
	}
}

func (a *App) status() string {
	s := string(a.Mode())
	if !a.view.Loaded() {
		s += " loading"
	} else {
		s += fmt.Sprintf(" %d events", len(a.view.Names()))
	}
	if sel, ok := a.view.Selected(); ok {
		s += ", selected: " + sel.Name
	}
	return "(" + s + ")"
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.gateway.Ping(pctx)
			cancel()

			if err != nil {
				a.setMode(ctx, ModeOffline)
			} else {
				a.setMode(ctx, ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}

// Reload resubscribes after the initial subscription failed.
func (a *App) Reload(ctx context.Context) error {
	if a.subscribed.Load() {
		fmt.Fprintln(a.out, "Already subscribed")
		return nil
	}
	unsubscribe, err := a.gateway.SubscribeToEvents(ctx, a.onSnapshot)
	if err != nil {
		return err
	}
	a.subscribed.Store(true)
	a.setMode(ctx, ModeOnline)
	context.AfterFunc(ctx, unsubscribe)
	fmt.Fprintln(a.out, "Subscribed")
	return nil
}

// lookup finds an event in the current snapshot by id or name and falls back
// to asking the server for key as an id.
func (a *App) lookup(ctx context.Context, key string) (*models.Event, error) {
	if e, ok := a.view.Find(key); ok {
		return a.gateway.GetEvent(ctx, e.ID)
	}
	return a.gateway.GetEvent(ctx, key)
}

func (a *App) drawTimeline() error {
	ps, err := a.view.Placements()
	if err != nil {
		return err
	}
	return render.ASCII(a.out, ps, a.view.Range(), render.TerminalWidth())
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
