// Package builder holds the pure transition and matching functions of the
// package builder: the selection cascade, the transfer-rate matcher, day
// renumbering, and the two price aggregations. Nothing here touches the
// network or the store; every function transforms explicit values so the
// whole engine is testable without an HTTP harness.
package builder

import (
	"strings"

	"github.com/holidaydesk/backoffice/internal/domain"
)

// OnStateChanged resets every selection downstream of the state. No validity
// check is attempted: the destination list is about to be refetched for the
// new state, so clearing unconditionally is the simplest correct policy.
// The draft generation is bumped so in-flight catalog results for the old
// state can be recognized as stale.
func OnStateChanged(d *domain.PackageDraft, newState string) {
	d.State = strings.TrimSpace(newState)
	d.PrimaryDestination = ""
	d.OtherDestinations = domain.FlexStrings{}
	d.PickupPoint = ""
	d.DropPoint = ""
	d.Generation++
}

// ReconcileDestinations prunes selections that are no longer valid against
// the available destination list. The primary destination is cleared when
// absent; other destinations are filtered to entries that are both present
// and distinct from the primary. The filtered list only replaces the
// original when its length changed. Pickup and drop points are constrained
// to the same destination set and are cleared when absent.
func ReconcileDestinations(d *domain.PackageDraft, available []domain.Destination) {
	names := make(map[string]struct{}, len(available))
	for _, dest := range available {
		names[dest.Name] = struct{}{}
	}

	if d.PrimaryDestination != "" {
		if _, ok := names[d.PrimaryDestination]; !ok {
			d.PrimaryDestination = ""
		}
	}

	others := d.OtherDestinations.Names()
	if len(others) > 0 {
		kept := make([]string, 0, len(others))
		for _, name := range others {
			if name == d.PrimaryDestination {
				continue
			}
			if _, ok := names[name]; ok {
				kept = append(kept, name)
			}
		}
		if len(kept) != len(others) {
			d.OtherDestinations = domain.NewFlexStrings(kept...)
		}
	}

	if d.PickupPoint != "" {
		if _, ok := names[d.PickupPoint]; !ok {
			d.PickupPoint = ""
		}
	}
	if d.DropPoint != "" {
		if _, ok := names[d.DropPoint]; !ok {
			d.DropPoint = ""
		}
	}
}

// ReconcileIfCurrent applies ReconcileDestinations only when the available
// list was fetched for the draft's current generation. A stale result (the
// user changed state again while the fetch was in flight) is discarded and
// the draft left untouched.
func ReconcileIfCurrent(d *domain.PackageDraft, available []domain.Destination, generation uint64) bool {
	if generation < d.Generation {
		return false
	}
	ReconcileDestinations(d, available)
	return true
}

// FilterDayItineraries returns the itineraries plausibly related to the
// draft's selected destinations. The match is deliberately loose: any tagged
// destination name that substring-overlaps any selected name qualifies the
// itinerary. An empty primary destination means "no constraint yet" and
// returns everything.
func FilterDayItineraries(d domain.PackageDraft, all []domain.DayItinerary) []domain.DayItinerary {
	if strings.TrimSpace(d.PrimaryDestination) == "" {
		return all
	}
	selected := d.SelectedDestinations()

	matched := make([]domain.DayItinerary, 0, len(all))
	for _, itin := range all {
		if itineraryCovers(itin, selected) {
			matched = append(matched, itin)
		}
	}
	return matched
}

func itineraryCovers(itin domain.DayItinerary, selected []string) bool {
	for _, tagged := range itin.Destinations.Names() {
		for _, sel := range selected {
			if NamesOverlap(tagged, sel) {
				return true
			}
		}
	}
	return false
}

// FilterVehicleTypes keeps only types belonging to the draft's state. Unlike
// destination matching this is strict equality: vehicle types are
// authoritative per state, so no substring tolerance applies.
func FilterVehicleTypes(d domain.PackageDraft, all []domain.VehicleType) []domain.VehicleType {
	matched := make([]domain.VehicleType, 0, len(all))
	for _, vt := range all {
		if vt.State == d.State {
			matched = append(matched, vt)
		}
	}
	return matched
}

// NamesOverlap is the fuzzy-match policy for destination relevance:
// case-insensitive, trimmed, bidirectional substring containment. Names that
// are substrings of each other ("Gokarna" / "Gokarna Beach") overlap, which
// tolerates naming drift between catalogs.
func NamesOverlap(a, b string) bool {
	na := strings.ToLower(strings.TrimSpace(a))
	nb := strings.ToLower(strings.TrimSpace(b))
	if na == "" || nb == "" {
		return false
	}
	return strings.Contains(na, nb) || strings.Contains(nb, na)
}
