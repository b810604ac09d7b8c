package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/timeline/internal/render"
	"github.com/dmitrijs2005/timeline/internal/timeline"
)

func (a *App) Timeline(ctx context.Context) error {
	if !a.view.Loaded() {
		a.printf("Events are still loading\n")
		return nil
	}
	return a.drawTimeline()
}

func (a *App) Range(ctx context.Context, args []string) error {
	if len(args) == 0 {
		r := a.view.Range()
		a.printf("Visible years: %s .. %s\n", render.YearLabel(r.Start), render.YearLabel(r.End))
		return nil
	}
	if len(args) != 2 {
		return errUsage("range <from> <to>")
	}
	from, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return errUsage("range <from> <to>")
	}
	to, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return errUsage("range <from> <to>")
	}
	if err := a.view.SetRange(timeline.Range{Start: from, End: to}); err != nil {
		return fmt.Errorf("range %d..%d: %w", from, to, err)
	}
	a.printf("Visible years: %s .. %s\n", render.YearLabel(from), render.YearLabel(to))
	return nil
}

// Watch toggles redrawing the timeline whenever a new snapshot arrives.
func (a *App) Watch(ctx context.Context, args []string) error {
	if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
		return errUsage("watch on|off")
	}
	on := args[0] == "on"
	a.watching.Store(on)
	if on {
		a.printf("Watching for updates\n")
	} else {
		a.printf("Stopped watching\n")
	}
	return nil
}
