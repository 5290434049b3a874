package store

import (
	"encoding/json"
	"strings"

	"github.com/holidaydesk/backoffice/internal/domain"
)

// NormalizeIncoming converts a raw legacy record into the internal draft
// shape. For every dual-named field the snake_case spelling wins, with the
// camelCase spelling as fallback. List fields stored as strings are parsed;
// a string that fails to parse is passed through unchanged rather than
// rejected, so no persisted data is ever dropped here.
func NormalizeIncoming(rec PackageRecord) domain.PackageDraft {
	draft := domain.PackageDraft{
		ID:     rec.ID,
		Name:   rec.Name,
		Status: domain.PackageStatus(rec.Status),
		State:  rec.State,

		PrimaryDestination: pickString(rec.PrimaryDestination, rec.PrimaryDestinationCC),
		OtherDestinations:  decodeFlexStrings(pickRaw(rec.OtherDestinations, rec.OtherDestinationsCC)),

		NumDays:   pickFlexInt(rec.NumDays, rec.NumDaysCC).OrDefault(0),
		NumNights: pickFlexInt(rec.NumNights, rec.NumNightsCC).OrDefault(0),

		PackageType:     domain.PackageType(pickString(rec.PackageType, rec.PackageTypeCC)),
		PackageCategory: domain.PackageCategory(pickString(rec.PackageCategory, rec.PackageCategoryCC)),
		PackageTheme:    pickString(rec.PackageTheme, rec.PackageThemeCC),

		PickupPoint: pickString(rec.PickupPoint, rec.PickupPointCC),
		DropPoint:   pickString(rec.DropPoint, rec.DropPointCC),

		ShortDescription: pickString(rec.ShortDescription, rec.ShortDescriptionCC),
		PackageIncludes:  decodeFlexStrings(pickRaw(rec.PackageIncludes, rec.PackageIncludesCC)),
		PackageExcludes:  decodeFlexStrings(pickRaw(rec.PackageExcludes, rec.PackageExcludesCC)),
	}

	draft.Itineraries, draft.ItinerariesRaw = decodeTyped[domain.PackageItinerary](pickRaw(rec.PackageItineraries, rec.PackageItinerariesCC))
	draft.Vehicles, draft.VehiclesRaw = decodeTyped[domain.PackageVehicle](pickRaw(rec.PackageVehicles, rec.PackageVehiclesCC))

	return draft
}

// BuildOutgoing converts a draft back into the legacy record shape. The
// structured snake_case fields carry the forward-compatible data, while the
// comma-joined destinations string keeps older readers working. Day and
// night counts are coerced to 1 and 0 respectively when missing.
func BuildOutgoing(d domain.PackageDraft) PackageRecord {
	numDays := d.NumDays
	if numDays <= 0 {
		numDays = 1
	}
	numNights := d.NumNights
	if numNights < 0 {
		numNights = 0
	}

	return PackageRecord{
		ID:     d.ID,
		Name:   d.Name,
		Status: string(d.Status),
		State:  d.State,

		PrimaryDestination: d.PrimaryDestination,
		Destinations:       joinDestinations(d),
		OtherDestinations:  encodeFlexStrings(d.OtherDestinations),

		NumDays:   Int(numDays),
		NumNights: Int(numNights),

		PackageType:     string(d.PackageType),
		PackageCategory: string(d.PackageCategory),
		PackageTheme:    d.PackageTheme,

		PickupPoint: d.PickupPoint,
		DropPoint:   d.DropPoint,

		ShortDescription:   d.ShortDescription,
		PackageIncludes:    encodeFlexStrings(d.PackageIncludes),
		PackageExcludes:    encodeFlexStrings(d.PackageExcludes),
		PackageItineraries: encodeTyped(d.Itineraries, d.ItinerariesRaw),
		PackageVehicles:    encodeTyped(d.Vehicles, d.VehiclesRaw),
	}
}

func joinDestinations(d domain.PackageDraft) string {
	parts := make([]string, 0, 1+len(d.OtherDestinations.Items))
	if d.PrimaryDestination != "" {
		parts = append(parts, d.PrimaryDestination)
	}
	parts = append(parts, d.OtherDestinations.Names()...)
	if d.OtherDestinations.IsDegraded() {
		parts = append(parts, d.OtherDestinations.Raw)
	}
	return strings.Join(parts, ", ")
}

func pickString(snake, camel string) string {
	if strings.TrimSpace(snake) != "" {
		return snake
	}
	return camel
}

func pickRaw(snake, camel json.RawMessage) json.RawMessage {
	if len(snake) > 0 && string(snake) != "null" {
		return snake
	}
	return camel
}

func pickFlexInt(snake FlexInt, camel *FlexInt) FlexInt {
	if snake.Set {
		return snake
	}
	if camel != nil {
		return *camel
	}
	return FlexInt{}
}

func decodeFlexStrings(raw json.RawMessage) domain.FlexStrings {
	var f domain.FlexStrings
	if len(raw) == 0 {
		return f
	}
	if err := f.UnmarshalJSON(raw); err != nil {
		// Not a list and not a string: preserve the bytes verbatim.
		f = domain.FlexStrings{Raw: string(raw)}
	}
	return f
}

// decodeTyped parses an itinerary or vehicle list that may arrive as a JSON
// array or as a string containing one. A value that parses as neither is
// preserved verbatim in the returned raw string, the same degrade contract
// FlexStrings applies to the free-form lists.
func decodeTyped[T any](raw json.RawMessage) ([]T, string) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, ""
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err == nil {
		return items, ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, string(raw)
	}
	if strings.TrimSpace(s) == "" {
		return nil, ""
	}
	if err := json.Unmarshal([]byte(s), &items); err == nil {
		return items, ""
	}
	return nil, s
}

func encodeFlexStrings(f domain.FlexStrings) json.RawMessage {
	data, err := f.MarshalJSON()
	if err != nil {
		return json.RawMessage(`[]`)
	}
	return data
}

func encodeTyped[T any](items []T, raw string) json.RawMessage {
	if raw != "" {
		if data, err := json.Marshal(raw); err == nil {
			return data
		}
	}
	if items == nil {
		return json.RawMessage(`[]`)
	}
	data, err := json.Marshal(items)
	if err != nil {
		return json.RawMessage(`[]`)
	}
	return data
}
