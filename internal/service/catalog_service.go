package service

import (
	"context"
	"log"
	"sync"

	"github.com/holidaydesk/backoffice/internal/domain"
	"github.com/holidaydesk/backoffice/internal/repository/ports"
)

// CatalogService reads the master-data reference lists. Every accessor
// degrades to an empty list on failure: a broken catalog reduces the options
// offered in the builder but never blocks it.
type CatalogService struct {
	catalogs ports.CatalogStore
}

// CatalogSnapshot is one coherent view of all reference collections, used to
// seed the builder in a single round trip.
type CatalogSnapshot struct {
	States         []domain.State        `json:"states"`
	Destinations   []domain.Destination  `json:"destinations"`
	VehicleTypes   []domain.VehicleType  `json:"vehicle_types"`
	DayItineraries []domain.DayItinerary `json:"day_itineraries"`
	TransferRates  []domain.TransferRate `json:"transfer_rates"`
	Notes          []domain.Note         `json:"notes"`
}

func NewCatalogService(catalogs ports.CatalogStore) *CatalogService {
	return &CatalogService{catalogs: catalogs}
}

func (s *CatalogService) States(ctx context.Context) []domain.State {
	states, err := s.catalogs.States(ctx)
	if err != nil {
		log.Printf("catalog states degraded: %v", err)
		return []domain.State{}
	}
	return states
}

func (s *CatalogService) Destinations(ctx context.Context, state string) []domain.Destination {
	destinations, err := s.catalogs.Destinations(ctx, state)
	if err != nil {
		log.Printf("catalog destinations degraded: %v", err)
		return []domain.Destination{}
	}
	return destinations
}

func (s *CatalogService) VehicleTypes(ctx context.Context) []domain.VehicleType {
	types, err := s.catalogs.VehicleTypes(ctx)
	if err != nil {
		log.Printf("catalog vehicle types degraded: %v", err)
		return []domain.VehicleType{}
	}
	return types
}

func (s *CatalogService) DayItineraries(ctx context.Context) []domain.DayItinerary {
	itineraries, err := s.catalogs.DayItineraries(ctx)
	if err != nil {
		log.Printf("catalog day itineraries degraded: %v", err)
		return []domain.DayItinerary{}
	}
	return itineraries
}

func (s *CatalogService) TransferRates(ctx context.Context) []domain.TransferRate {
	rates, err := s.catalogs.TransferRates(ctx)
	if err != nil {
		log.Printf("catalog transfer rates degraded: %v", err)
		return []domain.TransferRate{}
	}
	return rates
}

func (s *CatalogService) Notes(ctx context.Context) []domain.Note {
	notes, err := s.catalogs.Notes(ctx)
	if err != nil {
		log.Printf("catalog notes degraded: %v", err)
		return []domain.Note{}
	}
	return notes
}

// Snapshot fetches all six catalogs concurrently. The fetches are
// independent: one failing catalog comes back empty without affecting the
// others.
func (s *CatalogService) Snapshot(ctx context.Context) CatalogSnapshot {
	var snap CatalogSnapshot
	var wg sync.WaitGroup

	wg.Add(6)
	go func() {
		defer wg.Done()
		snap.States = s.States(ctx)
	}()
	go func() {
		defer wg.Done()
		snap.Destinations = s.Destinations(ctx, "")
	}()
	go func() {
		defer wg.Done()
		snap.VehicleTypes = s.VehicleTypes(ctx)
	}()
	go func() {
		defer wg.Done()
		snap.DayItineraries = s.DayItineraries(ctx)
	}()
	go func() {
		defer wg.Done()
		snap.TransferRates = s.TransferRates(ctx)
	}()
	go func() {
		defer wg.Done()
		snap.Notes = s.Notes(ctx)
	}()
	wg.Wait()

	return snap
}
