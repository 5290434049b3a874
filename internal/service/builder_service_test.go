package service

import (
	"context"
	"testing"

	"github.com/holidaydesk/backoffice/internal/domain"
)

func builderFixture() *fakeCatalogStore {
	return &fakeCatalogStore{
		destinations: []domain.Destination{
			{ID: 1, Name: "Gokarna", State: "Karnataka"},
			{ID: 2, Name: "Murudeshwar", State: "Karnataka"},
			{ID: 3, Name: "Munnar", State: "Kerala"},
		},
		dayItineraries: []domain.DayItinerary{
			{ID: 1, Name: "Beach Day", NumDays: 1, Destinations: domain.NewFlexStrings("Gokarna Beach")},
			{ID: 2, Name: "Hill Day", NumDays: 1, Destinations: domain.NewFlexStrings("Munnar")},
		},
		vehicleTypes: []domain.VehicleType{
			{ID: 1, VehicleType: "Sedan", Capacity: strptr("4"), State: "Karnataka"},
			{ID: 2, VehicleType: "Tempo Traveller", Capacity: strptr("12"), State: "Kerala"},
		},
		transferRates: []domain.TransferRate{
			{ID: 1, VehicleType: "Sedan", Destination: "Gokarna", Price: 3500},
		},
	}
}

func strptr(s string) *string { return &s }

func TestBuilderServiceChangeState(t *testing.T) {
	ctx := context.Background()
	svc := NewBuilderService(NewCatalogService(builderFixture()))

	draft := domain.PackageDraft{
		Name:               "Gokarna Getaway",
		State:              "Karnataka",
		PrimaryDestination: "Gokarna",
		OtherDestinations:  domain.NewFlexStrings("Murudeshwar"),
		PickupPoint:        "Gokarna",
		DropPoint:          "Murudeshwar",
	}

	opts := svc.ChangeState(ctx, draft, "Kerala")

	if opts.Draft.State != "Kerala" {
		t.Fatalf("state not applied: %q", opts.Draft.State)
	}
	if opts.Draft.PrimaryDestination != "" || !opts.Draft.OtherDestinations.IsEmpty() {
		t.Fatalf("dependent selections not cleared: %+v", opts.Draft)
	}
	if opts.Draft.PickupPoint != "" || opts.Draft.DropPoint != "" {
		t.Fatalf("pickup/drop not cleared: %+v", opts.Draft)
	}
	if len(opts.Destinations) != 1 || opts.Destinations[0].Name != "Munnar" {
		t.Fatalf("destinations not scoped to new state: %+v", opts.Destinations)
	}
	if len(opts.VehicleTypes) != 1 || opts.VehicleTypes[0].VehicleType != "Tempo Traveller" {
		t.Fatalf("vehicle types not scoped to new state: %+v", opts.VehicleTypes)
	}
	if len(opts.PickupPoints) != 1 || opts.PickupPoints[0] != "Munnar" {
		t.Fatalf("pickup options not derived from destinations: %+v", opts.PickupPoints)
	}
}

func TestBuilderServiceReconcile(t *testing.T) {
	ctx := context.Background()
	svc := NewBuilderService(NewCatalogService(builderFixture()))

	t.Run("prunes selections the catalog no longer offers", func(t *testing.T) {
		draft := domain.PackageDraft{
			State:              "Karnataka",
			PrimaryDestination: "Gokarna",
			OtherDestinations:  domain.NewFlexStrings("Murudeshwar", "Hampi"),
			PickupPoint:        "Hampi",
			DropPoint:          "Gokarna",
		}

		opts := svc.Reconcile(ctx, draft)

		if got := opts.Draft.OtherDestinations.Names(); len(got) != 1 || got[0] != "Murudeshwar" {
			t.Fatalf("others not pruned: %v", got)
		}
		if opts.Draft.PickupPoint != "" {
			t.Fatalf("invalid pickup point kept: %q", opts.Draft.PickupPoint)
		}
		if opts.Draft.DropPoint != "Gokarna" {
			t.Fatalf("valid drop point lost: %q", opts.Draft.DropPoint)
		}
	})

	t.Run("itinerary options follow the selected destinations", func(t *testing.T) {
		draft := domain.PackageDraft{
			State:              "Karnataka",
			PrimaryDestination: "Gokarna",
		}

		opts := svc.Reconcile(ctx, draft)

		if len(opts.DayItineraries) != 1 || opts.DayItineraries[0].Name != "Beach Day" {
			t.Fatalf("fuzzy itinerary filter wrong: %+v", opts.DayItineraries)
		}
	})
}

func TestBuilderServiceMatchRate(t *testing.T) {
	ctx := context.Background()
	svc := NewBuilderService(NewCatalogService(builderFixture()))

	t.Run("exact match after trim and casefold", func(t *testing.T) {
		match := svc.MatchRate(ctx, "Karnataka", "sedan ", "GOKARNA")
		if !match.Matched || match.Price != 3500 {
			t.Fatalf("expected matched 3500, got %+v", match)
		}
		if match.Capacity != "4" {
			t.Fatalf("capacity lookup wrong: %+v", match)
		}
	})

	t.Run("no rate row leaves the match empty", func(t *testing.T) {
		match := svc.MatchRate(ctx, "Karnataka", "Sedan", "Murudeshwar")
		if match.Matched || match.Price != 0 {
			t.Fatalf("expected no match, got %+v", match)
		}
		if match.Capacity != "4" {
			t.Fatalf("capacity is independent of the rate table: %+v", match)
		}
	})
}
