package builder

import (
	"github.com/holidaydesk/backoffice/internal/domain"
)

// RenumberItineraries rewrites every day number to index+1 so the sequence
// stays contiguous after any add, remove, or reorder.
func RenumberItineraries(d *domain.PackageDraft) {
	for i := range d.Itineraries {
		d.Itineraries[i].DayNumber = i + 1
	}
}

// AddItinerary appends a day assignment and renumbers.
func AddItinerary(d *domain.PackageDraft, dayItineraryID *int64) {
	d.Itineraries = append(d.Itineraries, domain.PackageItinerary{DayItineraryID: dayItineraryID})
	RenumberItineraries(d)
}

// RemoveItinerary deletes the day at index and renumbers the remainder.
// Out-of-range indexes are ignored.
func RemoveItinerary(d *domain.PackageDraft, index int) {
	if index < 0 || index >= len(d.Itineraries) {
		return
	}
	d.Itineraries = append(d.Itineraries[:index], d.Itineraries[index+1:]...)
	RenumberItineraries(d)
}

// MoveItinerary relocates the day at from to position to, then renumbers.
// Out-of-range indexes are ignored.
func MoveItinerary(d *domain.PackageDraft, from, to int) {
	n := len(d.Itineraries)
	if from < 0 || from >= n || to < 0 || to >= n || from == to {
		return
	}
	entry := d.Itineraries[from]
	rest := make([]domain.PackageItinerary, 0, n-1)
	rest = append(rest, d.Itineraries[:from]...)
	rest = append(rest, d.Itineraries[from+1:]...)

	out := make([]domain.PackageItinerary, 0, n)
	out = append(out, rest[:to]...)
	out = append(out, entry)
	out = append(out, rest[to:]...)
	d.Itineraries = out
	RenumberItineraries(d)
}

// EnsureInvariants repairs the draft-level invariants before a save: the
// primary destination never appears among the other destinations, duplicate
// other-destination entries collapse, and day numbers are contiguous. A
// degraded other-destinations value is left untouched since its entries are
// unknown.
func EnsureInvariants(d *domain.PackageDraft) {
	if !d.OtherDestinations.IsDegraded() {
		seen := make(map[string]struct{}, len(d.OtherDestinations.Items))
		kept := make([]string, 0, len(d.OtherDestinations.Items))
		for _, name := range d.OtherDestinations.Items {
			if name == "" || name == d.PrimaryDestination {
				continue
			}
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			kept = append(kept, name)
		}
		if len(kept) != len(d.OtherDestinations.Items) {
			d.OtherDestinations = domain.NewFlexStrings(kept...)
		}
	}
	RenumberItineraries(d)
}
