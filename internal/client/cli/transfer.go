package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/timeline/internal/common"
	"github.com/dmitrijs2005/timeline/internal/editor"
	"github.com/dmitrijs2005/timeline/internal/filex"
	"github.com/dmitrijs2005/timeline/internal/models"
	"github.com/dmitrijs2005/timeline/internal/render"
	"github.com/dmitrijs2005/timeline/internal/timeline"
)

// Document is the import/export format. Imports may be YAML or JSON.
type Document struct {
	Tags   []string        `json:"tags,omitempty" yaml:"tags,omitempty"`
	Events []*models.Event `json:"events" yaml:"events"`
}

// Import creates every tag and event listed in a YAML or JSON document. Invalid
// events are reported and skipped; the rest are still created.
func (a *App) Import(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage("import <file.yaml|file.json>")
	}
	var doc Document
	if err := filex.Decode(args[0], &doc); err != nil {
		return err
	}

	for _, t := range doc.Tags {
		if _, err := a.gateway.CreateReferenceTag(ctx, t); err != nil && !errors.Is(err, common.ErrorAlreadyExists) {
			return err
		}
	}

	created, failed := 0, 0
	for i, in := range doc.Events {
		e, err := importEvent(in)
		if err == nil {
			_, err = a.gateway.CreateEvent(ctx, e)
		}
		if err != nil {
			if !errors.Is(err, common.ErrorValidation) {
				return fmt.Errorf("event %d: %w", i+1, err)
			}
			failed++
			a.printf("Skipped event %d (%s): %v\n", i+1, in.Name, err)
			continue
		}
		created++
	}
	a.printf("Imported %d events, %d skipped, %d tags\n", created, failed, len(doc.Tags))
	return nil
}

// importEvent runs a decoded event through the form validation. Colors from
// the file are kept; missing ones are assigned like in the form.
func importEvent(in *models.Event) (*models.Event, error) {
	if in == nil {
		return nil, &editor.ValidationError{Field: models.FieldName, Reason: "is required"}
	}
	e, err := editor.NewEvent(editor.DraftFromEvent(in))
	if err != nil {
		return nil, err
	}
	if in.OriginalColor != "" {
		e.OriginalColor = in.OriginalColor
		e.Color = in.OriginalColor
	}
	return e, nil
}

// Export writes the current timeline. The format follows the extension.
func (a *App) Export(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage("export <file.yaml|file.svg|file.png>")
	}
	path := args[0]

	var data []byte
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		tags, err := a.gateway.ListReferenceTags(ctx)
		if err != nil {
			return err
		}
		events := timeline.Highlight(a.view.Events(), "")
		for _, e := range events {
			e.Color = ""
		}
		if data, err = yaml.Marshal(Document{Tags: tags, Events: events}); err != nil {
			return err
		}

	case ".svg", ".png":
		ps, err := a.view.Placements()
		if err != nil {
			return err
		}
		var b strings.Builder
		if ext == ".svg" {
			err = render.SVG(&b, ps, a.view.Range(), render.DefaultSVGOptions)
		} else {
			err = render.PNG(ctx, &b, ps, a.view.Range(), render.DefaultSVGOptions)
		}
		if err != nil {
			return err
		}
		data = []byte(b.String())

	default:
		return errUsage("export <file.yaml|file.svg|file.png>")
	}

	if err := filex.WriteFile(path, data); err != nil {
		return err
	}
	a.printf("Wrote %s\n", path)
	return nil
}
