package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/timeline/internal/common"
	"github.com/dmitrijs2005/timeline/internal/editor"
	"github.com/dmitrijs2005/timeline/internal/models"
	"github.com/dmitrijs2005/timeline/internal/render"
	"github.com/dmitrijs2005/timeline/internal/timeline"
)

func (a *App) AddEvent(ctx context.Context) error {
	d, err := a.readDraft(ctx, editor.Draft{}, false)
	if err != nil {
		return err
	}

	e, err := editor.NewEvent(d)
	if err != nil {
		return err
	}

	id, err := a.gateway.CreateEvent(ctx, e)
	if err != nil {
		return err
	}
	a.printf("Event %q created, id %s\n", e.Name, id)
	return nil
}

func (a *App) EditEvent(ctx context.Context, args []string) error {
	key := joinArgs(args)
	if key == "" {
		return errUsage("edit <id|name>")
	}

	cur, err := a.lookup(ctx, key)
	if err != nil {
		return err
	}

	d, err := a.readDraft(ctx, editor.DraftFromEvent(cur), true)
	if err != nil {
		return err
	}
	next, err := d.Validate()
	if err != nil {
		return err
	}

	mask := changedFields(cur, next)
	if len(mask) == 0 {
		a.printf("Nothing changed\n")
		return nil
	}

	updated, err := a.gateway.UpdateEvent(ctx, cur.ID, next, mask)
	if err != nil {
		return err
	}
	a.printf("Event %q updated (%s)\n", updated.Name, strings.Join(mask, ", "))
	return nil
}

// readDraft walks the user through the event form. In edit mode every prompt
// shows the current value, which Enter keeps.
func (a *App) readDraft(ctx context.Context, d editor.Draft, editing bool) (editor.Draft, error) {
	ask := func(prompt string, cur *string) error {
		var (
			v   string
			err error
		)
		if editing {
			v, err = GetWithDefault(a.reader, prompt, *cur, a.out)
		} else {
			v, err = GetSimpleText(a.reader, prompt, a.out)
		}
		if err != nil {
			return err
		}
		*cur = v
		return nil
	}

	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Name", &d.Name},
		{"Start year (negative for BC)", &d.Start},
		{"Finish year (negative for BC)", &d.Finish},
		{"Event type (" + eventTypeChoices() + ")", &d.EventType},
		{"Place", &d.Place},
		{"Latitude", &d.Latitude},
		{"Longitude", &d.Longitude},
		{"Meaning", &d.Meaning},
		{"Bible text", &d.BibleText},
	}
	for _, f := range fields {
		if err := ask(f.prompt, f.dst); err != nil {
			return d, err
		}
	}

	if editing {
		if err := ask("Additional info", &d.AdditionalInfo); err != nil {
			return d, err
		}
	} else {
		v, err := GetMultiline(a.reader, "Additional info", a.out)
		if err != nil {
			return d, err
		}
		d.AdditionalInfo = v
	}

	refs, err := a.readReferences(ctx, d.References)
	if err != nil {
		return d, err
	}
	d.References = refs

	link := d.MapLink
	if err := ask("Map image (URL or local image file, empty for none)", &link); err != nil {
		return d, err
	}
	if link, err = a.resolveMapLink(ctx, link); err != nil {
		return d, err
	}
	d.MapLink = link

	return d, nil
}

func eventTypeChoices() string {
	names := make([]string, 0, len(models.EventTypes))
	for _, t := range models.EventTypes {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}

// readReferences edits a reference list. Each entered name that is neither
// an event nor a tag offers up to three suggestions, and is otherwise created
// as a standalone tag. "-name" removes a reference.
func (a *App) readReferences(ctx context.Context, refs []string) ([]string, error) {
	names, err := a.eventNames(ctx)
	if err != nil {
		return nil, err
	}
	tags, err := a.gateway.ListReferenceTags(ctx)
	if err != nil {
		return nil, err
	}

	out := slices.Clone(refs)
	for {
		if len(out) > 0 {
			a.printf("References: %s\n", strings.Join(out, ", "))
		}
		in, err := GetSimpleText(a.reader, "Reference (empty to finish, -name to remove)", a.out)
		if err != nil {
			return nil, err
		}
		if in == "" {
			return out, nil
		}
		if rm, ok := strings.CutPrefix(in, "-"); ok {
			out = slices.DeleteFunc(out, func(r string) bool { return r == strings.TrimSpace(rm) })
			continue
		}

		ref, err := a.resolveReference(ctx, in, names, &tags)
		if err != nil {
			return nil, err
		}
		if ref != "" && !slices.Contains(out, ref) {
			out = append(out, ref)
		}
	}
}

func (a *App) resolveReference(ctx context.Context, in string, names []string, tags *[]string) (string, error) {
	if !editor.NeedsTag(in, names, *tags) {
		return in, nil
	}

	suggestions := editor.SearchReferences(in, names, *tags, editor.SuggestionLimit)
	if len(suggestions) > 0 {
		for i, s := range suggestions {
			a.printf("  %d) %s\n", i+1, s)
		}
		pick, err := GetSimpleText(a.reader, fmt.Sprintf("Pick a number, or press Enter to create tag %q", in), a.out)
		if err != nil {
			return "", err
		}
		if pick != "" {
			n, err := strconv.Atoi(pick)
			if err != nil || n < 1 || n > len(suggestions) {
				a.printf("No such suggestion, skipped\n")
				return "", nil
			}
			return suggestions[n-1], nil
		}
	}

	if _, err := a.gateway.CreateReferenceTag(ctx, in); err != nil && !errors.Is(err, common.ErrorAlreadyExists) {
		return "", err
	}
	*tags = append(*tags, in)
	a.printf("Tag %q created\n", in)
	return in, nil
}

// resolveMapLink uploads a local image and returns its public URL. Anything
// else is returned as typed.
func (a *App) resolveMapLink(ctx context.Context, link string) (string, error) {
	if link == "" || strings.Contains(link, "://") {
		return link, nil
	}
	if _, err := os.Stat(link); err != nil {
		return link, nil
	}
	return a.uploadOverlay(ctx, link)
}

func (a *App) eventNames(ctx context.Context) ([]string, error) {
	if a.view.Loaded() {
		return a.view.Names(), nil
	}
	events, err := a.gateway.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(events))
	for _, e := range events {
		names = append(names, e.Name)
	}
	return names, nil
}

// changedFields builds the update mask for an edit.
func changedFields(cur, next *models.Event) []string {
	var mask []string
	add := func(changed bool, f string) {
		if changed {
			mask = append(mask, f)
		}
	}
	add(cur.Name != next.Name, models.FieldName)
	add(cur.Start != next.Start, models.FieldStart)
	add(cur.Finish != next.Finish, models.FieldFinish)
	add(!sameCoord(cur.Latitude, next.Latitude), models.FieldLatitude)
	add(!sameCoord(cur.Longitude, next.Longitude), models.FieldLongitude)
	add(cur.Meaning != next.Meaning, models.FieldMeaning)
	add(cur.BibleText != next.BibleText, models.FieldBibleText)
	add(cur.Place != next.Place, models.FieldPlace)
	add(cur.AdditionalInfo != next.AdditionalInfo, models.FieldAdditionalInfo)
	add(!slices.Equal(cur.References, next.References), models.FieldReferences)
	add(cur.MapLink != next.MapLink, models.FieldMapLink)
	add(cur.EventType != next.EventType, models.FieldEventType)
	return mask
}

func sameCoord(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Show prints the detail view of an event and selects it.
func (a *App) Show(ctx context.Context, args []string) error {
	key := joinArgs(args)
	if key == "" {
		return errUsage("show <id|name>")
	}

	e, err := a.lookup(ctx, key)
	if err != nil {
		return err
	}
	a.view.Select(e.ID)

	a.printf("Name:        %s\n", e.Name)
	a.printf("Id:          %s\n", e.ID)
	a.printf("Years:       %s .. %s (%d years)\n", render.YearLabel(e.Start), render.YearLabel(e.Finish), e.Duration())
	a.printf("Type:        %s\n", e.EventType)
	if e.Place != "" {
		a.printf("Place:       %s\n", e.Place)
	}
	if e.HasLocation() {
		a.printf("Location:    %g, %g\n", *e.Latitude, *e.Longitude)
	}
	if e.Meaning != "" {
		a.printf("Meaning:     %s\n", e.Meaning)
	}
	if e.BibleText != "" {
		a.printf("Bible text:  %s\n", e.BibleText)
	}
	if e.AdditionalInfo != "" {
		a.printf("Additional:\n%s\n", e.AdditionalInfo)
	}
	if len(e.References) > 0 {
		a.printf("References:\n")
		known := make(map[string]struct{})
		for _, ref := range timeline.Referenced(a.view.Events(), e) {
			known[ref.Name] = struct{}{}
		}
		for _, r := range e.References {
			if _, ok := known[r]; ok {
				a.printf("  * %s\n", r)
			} else {
				a.printf("  - %s (tag)\n", r)
			}
		}
	}
	if e.MapLink != "" {
		a.printf("Map:         %s\n", e.MapLink)
	}
	return nil
}
