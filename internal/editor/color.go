package editor

import (
	"fmt"

	"github.com/dmitrijs2005/timeline/internal/common"
	"github.com/dmitrijs2005/timeline/internal/models"
)

// randHex is a seam for tests.
var randHex = common.MakeRandHexString

// RandomColor returns a "#RRGGBB" color with uniformly drawn hex digits.
func RandomColor() (string, error) {
	h, err := randHex(3)
	if err != nil {
		return "", fmt.Errorf("random color: %w", err)
	}
	return "#" + h, nil
}

// NewEvent validates d and assigns the display color. Color and
// OriginalColor start out equal. The id is left for the store to assign.
func NewEvent(d Draft) (*models.Event, error) {
	e, err := d.Validate()
	if err != nil {
		return nil, err
	}
	c, err := RandomColor()
	if err != nil {
		return nil, err
	}
	e.Color = c
	e.OriginalColor = c
	return e, nil
}
