package builder

import (
	"testing"

	"github.com/holidaydesk/backoffice/internal/domain"
)

func destinationList(state string, names ...string) []domain.Destination {
	out := make([]domain.Destination, 0, len(names))
	for i, name := range names {
		out = append(out, domain.Destination{
			ID:     int64(i + 1),
			Name:   name,
			State:  state,
			Status: domain.CatalogStatusActive,
		})
	}
	return out
}

func TestOnStateChanged(t *testing.T) {
	draft := domain.PackageDraft{
		State:              "Karnataka",
		PrimaryDestination: "Gokarna",
		OtherDestinations:  domain.NewFlexStrings("Hubli"),
		PickupPoint:        "Gokarna",
		DropPoint:          "Hubli",
		Generation:         3,
	}

	OnStateChanged(&draft, "Kerala")

	if draft.State != "Kerala" {
		t.Fatalf("expected state Kerala, got %q", draft.State)
	}
	if draft.PrimaryDestination != "" {
		t.Fatalf("primary destination not cleared: %q", draft.PrimaryDestination)
	}
	if !draft.OtherDestinations.IsEmpty() {
		t.Fatalf("other destinations not cleared: %+v", draft.OtherDestinations)
	}
	if draft.PickupPoint != "" || draft.DropPoint != "" {
		t.Fatalf("pickup/drop not cleared: %q / %q", draft.PickupPoint, draft.DropPoint)
	}
	if draft.Generation != 4 {
		t.Fatalf("expected generation 4, got %d", draft.Generation)
	}
}

func TestReconcileDestinations(t *testing.T) {
	t.Run("state switch invalidates foreign selections", func(t *testing.T) {
		draft := domain.PackageDraft{
			State:              "Karnataka",
			PrimaryDestination: "Gokarna",
			OtherDestinations:  domain.NewFlexStrings("Hubli"),
		}
		OnStateChanged(&draft, "Kerala")
		ReconcileDestinations(&draft, destinationList("Kerala", "Munnar", "Kochi"))

		if draft.PrimaryDestination != "" {
			t.Fatalf("expected empty primary, got %q", draft.PrimaryDestination)
		}
		if !draft.OtherDestinations.IsEmpty() {
			t.Fatalf("expected empty others, got %+v", draft.OtherDestinations)
		}
	})

	t.Run("missing primary is cleared", func(t *testing.T) {
		draft := domain.PackageDraft{State: "Kerala", PrimaryDestination: "Gokarna"}
		ReconcileDestinations(&draft, destinationList("Kerala", "Munnar", "Kochi"))
		if draft.PrimaryDestination != "" {
			t.Fatalf("expected cleared primary, got %q", draft.PrimaryDestination)
		}
	})

	t.Run("others filtered to available and distinct from primary", func(t *testing.T) {
		draft := domain.PackageDraft{
			State:              "Kerala",
			PrimaryDestination: "Munnar",
			OtherDestinations:  domain.NewFlexStrings("Munnar", "Kochi", "Hubli"),
		}
		ReconcileDestinations(&draft, destinationList("Kerala", "Munnar", "Kochi"))

		names := draft.OtherDestinations.Names()
		if len(names) != 1 || names[0] != "Kochi" {
			t.Fatalf("expected [Kochi], got %v", names)
		}
	})

	t.Run("unchanged list is kept as is", func(t *testing.T) {
		original := domain.NewFlexStrings("Kochi")
		draft := domain.PackageDraft{
			State:              "Kerala",
			PrimaryDestination: "Munnar",
			OtherDestinations:  original,
		}
		ReconcileDestinations(&draft, destinationList("Kerala", "Munnar", "Kochi"))
		names := draft.OtherDestinations.Names()
		if len(names) != 1 || names[0] != "Kochi" {
			t.Fatalf("expected [Kochi] unchanged, got %v", names)
		}
	})

	t.Run("pickup and drop constrained to destination set", func(t *testing.T) {
		draft := domain.PackageDraft{
			State:       "Kerala",
			PickupPoint: "Hubli",
			DropPoint:   "Kochi",
		}
		ReconcileDestinations(&draft, destinationList("Kerala", "Munnar", "Kochi"))
		if draft.PickupPoint != "" {
			t.Fatalf("expected pickup cleared, got %q", draft.PickupPoint)
		}
		if draft.DropPoint != "Kochi" {
			t.Fatalf("expected drop kept, got %q", draft.DropPoint)
		}
	})
}

func TestReconcileIfCurrent(t *testing.T) {
	draft := domain.PackageDraft{
		State:              "Kerala",
		PrimaryDestination: "Munnar",
		Generation:         5,
	}

	// A result fetched for generation 4 arrived after the draft moved on.
	if applied := ReconcileIfCurrent(&draft, destinationList("Karnataka", "Gokarna"), 4); applied {
		t.Fatal("stale reconciliation should have been discarded")
	}
	if draft.PrimaryDestination != "Munnar" {
		t.Fatalf("stale result mutated draft: %q", draft.PrimaryDestination)
	}

	if applied := ReconcileIfCurrent(&draft, destinationList("Kerala", "Munnar"), 5); !applied {
		t.Fatal("current reconciliation should have been applied")
	}
}

func TestFilterDayItineraries(t *testing.T) {
	itineraries := []domain.DayItinerary{
		{ID: 1, Name: "Gokarna Beach Day", Destinations: domain.NewFlexStrings("Gokarna Beach")},
		{ID: 2, Name: "Hubli Heritage", Destinations: domain.NewFlexStrings("Hubli")},
		{ID: 3, Name: "Munnar Tea Trails", Destinations: domain.NewFlexStrings("Munnar")},
	}

	t.Run("empty primary means no constraint", func(t *testing.T) {
		draft := domain.PackageDraft{State: "Karnataka"}
		got := FilterDayItineraries(draft, itineraries)
		if len(got) != len(itineraries) {
			t.Fatalf("expected all %d itineraries, got %d", len(itineraries), len(got))
		}
	})

	t.Run("substring overlap matches both directions", func(t *testing.T) {
		draft := domain.PackageDraft{State: "Karnataka", PrimaryDestination: "Gokarna"}
		got := FilterDayItineraries(draft, itineraries)
		if len(got) != 1 || got[0].ID != 1 {
			t.Fatalf("expected itinerary 1 via overlap, got %+v", got)
		}
	})

	t.Run("other destinations participate", func(t *testing.T) {
		draft := domain.PackageDraft{
			State:              "Karnataka",
			PrimaryDestination: "Gokarna",
			OtherDestinations:  domain.NewFlexStrings("Hubli"),
		}
		got := FilterDayItineraries(draft, itineraries)
		if len(got) != 2 {
			t.Fatalf("expected 2 itineraries, got %d", len(got))
		}
	})
}

func TestFilterVehicleTypes(t *testing.T) {
	types := []domain.VehicleType{
		{ID: 1, VehicleType: "Sedan", State: "Karnataka"},
		{ID: 2, VehicleType: "Tempo Traveller", State: "Kerala"},
		{ID: 3, VehicleType: "SUV", State: "karnataka"},
	}
	draft := domain.PackageDraft{State: "Karnataka"}

	got := FilterVehicleTypes(draft, types)
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("expected only exact-state match, got %+v", got)
	}
}

func TestNamesOverlap(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"Gokarna", "Gokarna Beach", true},
		{"Gokarna Beach", "Gokarna", true},
		{"  GOKARNA ", "gokarna", true},
		{"Munnar", "Kochi", false},
		{"", "Kochi", false},
		{"Munnar", "", false},
	}
	for _, tc := range cases {
		if got := NamesOverlap(tc.a, tc.b); got != tc.want {
			t.Fatalf("NamesOverlap(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}
