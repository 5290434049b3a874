package store

import (
	"context"
	"fmt"

	"github.com/holidaydesk/backoffice/internal/domain"
)

// DuplicateNameSuffix is appended to a copied package's name. The store is
// responsible for assigning the new id.
const DuplicateNameSuffix = " Copy"

// Adapter performs package persistence against the opaque store, translating
// between drafts and raw records at the boundary. Failures leave the store
// call's error intact for the service layer to classify; nothing is mutated
// on failure.
type Adapter struct {
	store PackageStore
}

func NewAdapter(store PackageStore) *Adapter {
	return &Adapter{store: store}
}

// Save persists the draft: a create when it has no id yet, an update
// otherwise. The stored record round-trips back through normalization so
// the caller sees any store-assigned fields.
func (a *Adapter) Save(ctx context.Context, d domain.PackageDraft) (domain.PackageDraft, error) {
	rec := BuildOutgoing(d)

	var (
		saved PackageRecord
		err   error
	)
	if d.IsPersisted() {
		saved, err = a.store.Update(ctx, d.ID, rec)
	} else {
		saved, err = a.store.Create(ctx, rec)
	}
	if err != nil {
		return domain.PackageDraft{}, fmt.Errorf("save package: %w", err)
	}
	return NormalizeIncoming(saved), nil
}

// Duplicate creates a copy of an existing package with the name suffixed and
// no id; the store assigns the new id.
func (a *Adapter) Duplicate(ctx context.Context, id int64) (domain.PackageDraft, error) {
	existing, err := a.store.FindByID(ctx, id)
	if err != nil {
		return domain.PackageDraft{}, fmt.Errorf("duplicate package: %w", err)
	}

	existing.ID = 0
	existing.Name = existing.Name + DuplicateNameSuffix

	created, err := a.store.Create(ctx, existing)
	if err != nil {
		return domain.PackageDraft{}, fmt.Errorf("duplicate package: %w", err)
	}
	return NormalizeIncoming(created), nil
}

// Remove deletes the persisted record by id.
func (a *Adapter) Remove(ctx context.Context, id int64) error {
	if err := a.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("remove package: %w", err)
	}
	return nil
}

// Get loads and normalizes a single package.
func (a *Adapter) Get(ctx context.Context, id int64) (domain.PackageDraft, error) {
	rec, err := a.store.FindByID(ctx, id)
	if err != nil {
		return domain.PackageDraft{}, fmt.Errorf("load package: %w", err)
	}
	return NormalizeIncoming(rec), nil
}

// List loads and normalizes every package matching the given statuses; an
// empty filter returns everything.
func (a *Adapter) List(ctx context.Context, statuses []string) ([]domain.PackageDraft, error) {
	recs, err := a.store.List(ctx, statuses)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	drafts := make([]domain.PackageDraft, 0, len(recs))
	for _, rec := range recs {
		drafts = append(drafts, NormalizeIncoming(rec))
	}
	return drafts, nil
}
