package editor

import (
	"regexp"

	"github.com/dmitrijs2005/timeline/internal/models"
)

var colorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Normalize re-validates an already typed event, for records that reach the
// store without passing through a Draft (RPC calls, imports). It applies the
// same rules as Draft.Validate and keeps id and colors.
func Normalize(e *models.Event) (*models.Event, error) {
	out, err := DraftFromEvent(e).Validate()
	if err != nil {
		return nil, err
	}
	for field, c := range map[string]string{"color": e.Color, "original_color": e.OriginalColor} {
		if c != "" && !colorRe.MatchString(c) {
			return nil, &ValidationError{Field: field, Reason: "must look like #rrggbb"}
		}
	}
	out.ID = e.ID
	out.Color = e.Color
	out.OriginalColor = e.OriginalColor
	return out, nil
}
