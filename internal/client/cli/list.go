package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/timeline/internal/models"
	"github.com/dmitrijs2005/timeline/internal/render"
	"github.com/dmitrijs2005/timeline/internal/timeline"
)

func (a *App) List(ctx context.Context) error {
	events := a.view.Events()
	if !a.view.Loaded() {
		var err error
		if events, err = a.gateway.ListEvents(ctx); err != nil {
			return err
		}
		models.SortByStart(events)
	}

	if len(events) == 0 {
		a.printf("No events\n")
		return nil
	}
	for _, e := range events {
		mark := " "
		if e.Color == timeline.HighlightColor {
			mark = "*"
		}
		a.printf("%s %-36s %9s .. %-9s %-10s %s\n", mark, e.ID, render.YearLabel(e.Start), render.YearLabel(e.Finish), e.EventType, e.Name)
	}
	return nil
}

func (a *App) Refs(ctx context.Context) error {
	tags, err := a.gateway.ListReferenceTags(ctx)
	if err != nil {
		return err
	}
	if len(tags) == 0 {
		a.printf("No reference tags\n")
		return nil
	}
	for _, t := range tags {
		a.printf("%s\n", t)
	}
	return nil
}

func (a *App) AddRef(ctx context.Context, args []string) error {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return errUsage("addref <name>")
	}
	id, err := a.gateway.CreateReferenceTag(ctx, name)
	if err != nil {
		return err
	}
	a.printf("Tag %q created, id %s\n", name, id)
	return nil
}

// Select highlights an event and everything it references. Without args
// the selection is cleared.
func (a *App) Select(ctx context.Context, args []string) error {
	key := joinArgs(args)
	if key == "" {
		a.view.Select("")
		a.printf("Selection cleared\n")
		return nil
	}

	e, ok := a.view.Find(key)
	if !ok {
		if !a.view.Loaded() {
			a.printf("Events are still loading\n")
			return nil
		}
		return errNoSuchEvent(key)
	}

	var lit []string
	for _, h := range a.view.Select(e.ID) {
		if h.Color == timeline.HighlightColor {
			lit = append(lit, h.Name)
		}
	}
	if len(lit) == 0 {
		a.printf("Selected %q, it has no references\n", e.Name)
		return nil
	}
	a.printf("Highlighted: %s\n", strings.Join(lit, ", "))
	return nil
}
