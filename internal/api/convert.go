// Package api converts between domain models and the generated wire
// messages of the timeline service.
package api

import (
	"slices"

	"github.com/dmitrijs2005/timeline/internal/models"
	pb "github.com/dmitrijs2005/timeline/internal/proto"
)

// FromModel converts a domain event to its wire form.
func FromModel(e *models.Event) *pb.Event {
	if e == nil {
		return nil
	}
	c := e.Clone()
	return &pb.Event{
		Id:             c.ID,
		Name:           c.Name,
		Start:          c.Start,
		Finish:         c.Finish,
		Duration:       c.Duration(),
		Color:          c.Color,
		OriginalColor:  c.OriginalColor,
		Latitude:       c.Latitude,
		Longitude:      c.Longitude,
		Meaning:        c.Meaning,
		BibleText:      c.BibleText,
		Place:          c.Place,
		AdditionalInfo: c.AdditionalInfo,
		References:     c.References,
		MapLink:        c.MapLink,
		EventType:      string(c.EventType),
	}
}

// ToModel converts a wire event to the domain type. The transmitted
// Duration is ignored.
func ToModel(e *pb.Event) *models.Event {
	if e == nil {
		return nil
	}
	out := &models.Event{
		ID:             e.GetId(),
		Name:           e.GetName(),
		Start:          e.GetStart(),
		Finish:         e.GetFinish(),
		Color:          e.GetColor(),
		OriginalColor:  e.GetOriginalColor(),
		Meaning:        e.GetMeaning(),
		BibleText:      e.GetBibleText(),
		Place:          e.GetPlace(),
		AdditionalInfo: e.GetAdditionalInfo(),
		References:     slices.Clone(e.GetReferences()),
		MapLink:        e.GetMapLink(),
		EventType:      models.EventType(e.GetEventType()),
	}
	if e.Latitude != nil {
		lat := e.GetLatitude()
		out.Latitude = &lat
	}
	if e.Longitude != nil {
		lon := e.GetLongitude()
		out.Longitude = &lon
	}
	return out
}

func FromModels(events []*models.Event) []*pb.Event {
	out := make([]*pb.Event, 0, len(events))
	for _, e := range events {
		out = append(out, FromModel(e))
	}
	return out
}

func ToModels(events []*pb.Event) []*models.Event {
	out := make([]*models.Event, 0, len(events))
	for _, e := range events {
		out = append(out, ToModel(e))
	}
	return out
}

// FromSnapshot converts a snapshot to one stream message.
func FromSnapshot(s models.Snapshot) *pb.EventsSnapshot {
	return &pb.EventsSnapshot{Events: FromModels(s.Events), Sequence: s.Sequence}
}
