// Package editor turns raw form input into event records.
//
// A Draft carries the text exactly as typed. Validate either produces a
// complete models.Event or a *ValidationError; callers must not write
// anything to the store when validation fails.
package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/timeline/internal/common"
	"github.com/dmitrijs2005/timeline/internal/models"
)

// ValidationError reports the first rejected field of a Draft.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Is makes every ValidationError match common.ErrorValidation.
func (e *ValidationError) Is(target error) bool {
	return target == common.ErrorValidation
}

// Draft is the unvalidated content of the event form.
type Draft struct {
	Name           string
	Start          string
	Finish         string
	Latitude       string
	Longitude      string
	Meaning        string
	BibleText      string
	Place          string
	AdditionalInfo string
	References     []string
	MapLink        string
	EventType      string
}

// Validate checks the draft and converts it to an event without id or colors.
//
// Name, Start and Finish are required; Start and Finish must be base-10
// integers. Coordinates are optional but must be numbers when present. An
// empty event type falls back to models.DefaultEventType.
func (d Draft) Validate() (*models.Event, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return nil, &ValidationError{Field: models.FieldName, Reason: "is required"}
	}

	start, err := parseYear(models.FieldStart, d.Start)
	if err != nil {
		return nil, err
	}
	finish, err := parseYear(models.FieldFinish, d.Finish)
	if err != nil {
		return nil, err
	}

	lat, err := parseCoordinate(models.FieldLatitude, d.Latitude, 90)
	if err != nil {
		return nil, err
	}
	lon, err := parseCoordinate(models.FieldLongitude, d.Longitude, 180)
	if err != nil {
		return nil, err
	}

	et := models.DefaultEventType
	if strings.TrimSpace(d.EventType) != "" {
		et, err = models.ParseEventType(d.EventType)
		if err != nil {
			return nil, &ValidationError{Field: models.FieldEventType, Reason: err.Error()}
		}
	}

	return &models.Event{
		Name:           name,
		Start:          start,
		Finish:         finish,
		Latitude:       lat,
		Longitude:      lon,
		Meaning:        d.Meaning,
		BibleText:      d.BibleText,
		Place:          d.Place,
		AdditionalInfo: d.AdditionalInfo,
		References:     normalizeReferences(d.References),
		MapLink:        strings.TrimSpace(d.MapLink),
		EventType:      et,
	}, nil
}

// DraftFromEvent fills a draft with the values of e, as the edit form does.
func DraftFromEvent(e *models.Event) Draft {
	d := Draft{
		Name:           e.Name,
		Start:          strconv.FormatInt(e.Start, 10),
		Finish:         strconv.FormatInt(e.Finish, 10),
		Meaning:        e.Meaning,
		BibleText:      e.BibleText,
		Place:          e.Place,
		AdditionalInfo: e.AdditionalInfo,
		References:     append([]string(nil), e.References...),
		MapLink:        e.MapLink,
		EventType:      string(e.EventType),
	}
	if e.Latitude != nil {
		d.Latitude = strconv.FormatFloat(*e.Latitude, 'f', -1, 64)
	}
	if e.Longitude != nil {
		d.Longitude = strconv.FormatFloat(*e.Longitude, 'f', -1, 64)
	}
	return d
}

func parseYear(field, s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &ValidationError{Field: field, Reason: "is required"}
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, &ValidationError{Field: field, Reason: "invalid year format"}
	}
	return v, nil
}

func parseCoordinate(field, s string, limit float64) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, &ValidationError{Field: field, Reason: "must be a decimal number"}
	}
	if v < -limit || v > limit {
		return nil, &ValidationError{Field: field, Reason: fmt.Sprintf("must be within ±%g", limit)}
	}
	return &v, nil
}

// normalizeReferences trims names, drops blanks and repeats, keeps order.
func normalizeReferences(refs []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(refs))
	for _, r := range refs {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}
