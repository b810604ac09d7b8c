package models

import (
	"fmt"
	"slices"
)

// Patchable field names accepted in an update mask.
const (
	FieldName           = "name"
	FieldStart          = "start"
	FieldFinish         = "finish"
	FieldLatitude       = "latitude"
	FieldLongitude      = "longitude"
	FieldMeaning        = "meaning"
	FieldBibleText      = "bible_text"
	FieldPlace          = "place"
	FieldAdditionalInfo = "additional_info"
	FieldReferences     = "references"
	FieldMapLink        = "map_link"
	FieldEventType      = "event_type"
)

// PatchableFields is the full update mask. Colors are absent: OriginalColor is
// fixed at creation and Color is view state.
var PatchableFields = []string{
	FieldName, FieldStart, FieldFinish, FieldLatitude, FieldLongitude,
	FieldMeaning, FieldBibleText, FieldPlace, FieldAdditionalInfo,
	FieldReferences, FieldMapLink, FieldEventType,
}

// ApplyPatch copies the masked fields of src onto a copy of dst and returns it.
// An empty mask replaces every patchable field. ID and both colors of dst are
// always kept.
func ApplyPatch(dst, src *Event, mask []string) (*Event, error) {
	if len(mask) == 0 {
		mask = PatchableFields
	}
	out := dst.Clone()
	in := src.Clone()
	for _, f := range mask {
		switch f {
		case FieldName:
			out.Name = in.Name
		case FieldStart:
			out.Start = in.Start
		case FieldFinish:
			out.Finish = in.Finish
		case FieldLatitude:
			out.Latitude = in.Latitude
		case FieldLongitude:
			out.Longitude = in.Longitude
		case FieldMeaning:
			out.Meaning = in.Meaning
		case FieldBibleText:
			out.BibleText = in.BibleText
		case FieldPlace:
			out.Place = in.Place
		case FieldAdditionalInfo:
			out.AdditionalInfo = in.AdditionalInfo
		case FieldReferences:
			out.References = in.References
		case FieldMapLink:
			out.MapLink = in.MapLink
		case FieldEventType:
			out.EventType = in.EventType
		default:
			return nil, fmt.Errorf("field %q cannot be updated", f)
		}
	}
	return out, nil
}

// IsPatchable reports whether f may appear in an update mask.
func IsPatchable(f string) bool {
	return slices.Contains(PatchableFields, f)
}
