package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/holidaydesk/backoffice/internal/builder"
	"github.com/holidaydesk/backoffice/internal/domain"
	"github.com/holidaydesk/backoffice/internal/repository/ports"
	"github.com/holidaydesk/backoffice/internal/store"
)

var (
	ErrPackageNotFound   = errors.New("package not found")
	ErrPackageValidation = errors.New("package validation failed")
)

// PackageService owns the persistence lifecycle of tour packages and the
// listing totals. The displayed total of a persisted package is the sum of
// its event prices, fetched once per package when the listing loads; it is
// not the sum of the draft's vehicle lines.
type PackageService struct {
	packages *store.Adapter
	events   ports.EventSource
}

// PackageListItem is one listing row: the normalized package plus its
// cached events total.
type PackageListItem struct {
	domain.PackageDraft
	TotalPrice float64 `json:"total_price"`
}

func NewPackageService(packages *store.Adapter, events ports.EventSource) *PackageService {
	return &PackageService{packages: packages, events: events}
}

// List returns all packages matching the status filter, each with its
// events total. Totals are computed per row and failures are isolated: a
// broken events fetch yields exactly zero for that package and leaves every
// other row untouched.
func (s *PackageService) List(ctx context.Context, statuses []string) ([]PackageListItem, error) {
	drafts, err := s.packages.List(ctx, statuses)
	if err != nil {
		return nil, err
	}

	items := make([]PackageListItem, len(drafts))
	var wg sync.WaitGroup
	for i, draft := range drafts {
		items[i] = PackageListItem{PackageDraft: draft}
		wg.Add(1)
		go func(i int, id int64) {
			defer wg.Done()
			items[i].TotalPrice = s.eventsTotal(ctx, id)
		}(i, draft.ID)
	}
	wg.Wait()

	return items, nil
}

// Get loads one package by id.
func (s *PackageService) Get(ctx context.Context, id int64) (domain.PackageDraft, error) {
	draft, err := s.packages.Get(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return domain.PackageDraft{}, ErrPackageNotFound
		}
		return domain.PackageDraft{}, err
	}
	return draft, nil
}

// Total recomputes the authoritative events total for one package.
func (s *PackageService) Total(ctx context.Context, id int64) float64 {
	return s.eventsTotal(ctx, id)
}

// Save validates, repairs draft invariants, and persists: a create when the
// draft has no id, an update otherwise.
func (s *PackageService) Save(ctx context.Context, draft domain.PackageDraft) (domain.PackageDraft, error) {
	if err := validateDraft(draft); err != nil {
		return domain.PackageDraft{}, err
	}
	builder.EnsureInvariants(&draft)

	saved, err := s.packages.Save(ctx, draft)
	if err != nil {
		switch {
		case isNotFound(err):
			return domain.PackageDraft{}, ErrPackageNotFound
		case isUniqueViolation(err):
			return domain.PackageDraft{}, fmt.Errorf("%w: a package with this name already exists", ErrPackageValidation)
		default:
			return domain.PackageDraft{}, err
		}
	}
	return saved, nil
}

// Duplicate copies an existing package under a new id with the name
// suffixed.
func (s *PackageService) Duplicate(ctx context.Context, id int64) (domain.PackageDraft, error) {
	copied, err := s.packages.Duplicate(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return domain.PackageDraft{}, ErrPackageNotFound
		}
		return domain.PackageDraft{}, err
	}
	return copied, nil
}

// Delete removes a persisted package. The confirmation step is the caller's
// responsibility.
func (s *PackageService) Delete(ctx context.Context, id int64) error {
	if err := s.packages.Remove(ctx, id); err != nil {
		if isNotFound(err) {
			return ErrPackageNotFound
		}
		return err
	}
	return nil
}

func (s *PackageService) eventsTotal(ctx context.Context, packageID int64) float64 {
	events, err := s.events.EventsForPackage(ctx, packageID)
	if err != nil {
		log.Printf("events total for package %d degraded to zero: %v", packageID, err)
		return 0
	}
	return builder.SumEventPrices(events)
}

func validateDraft(draft domain.PackageDraft) error {
	if strings.TrimSpace(draft.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrPackageValidation)
	}
	if strings.TrimSpace(draft.State) == "" {
		return fmt.Errorf("%w: state is required", ErrPackageValidation)
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
