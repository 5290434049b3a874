package store

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/holidaydesk/backoffice/internal/domain"
)

type memoryStore struct {
	nextID  int64
	records map[int64]PackageRecord
	failAll bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{nextID: 1, records: make(map[int64]PackageRecord)}
}

func (m *memoryStore) Create(_ context.Context, rec PackageRecord) (PackageRecord, error) {
	if m.failAll {
		return PackageRecord{}, sql.ErrConnDone
	}
	rec.ID = m.nextID
	m.nextID++
	m.records[rec.ID] = rec
	return rec, nil
}

func (m *memoryStore) Update(_ context.Context, id int64, rec PackageRecord) (PackageRecord, error) {
	if m.failAll {
		return PackageRecord{}, sql.ErrConnDone
	}
	if _, ok := m.records[id]; !ok {
		return PackageRecord{}, sql.ErrNoRows
	}
	rec.ID = id
	m.records[id] = rec
	return rec, nil
}

func (m *memoryStore) FindByID(_ context.Context, id int64) (PackageRecord, error) {
	rec, ok := m.records[id]
	if !ok {
		return PackageRecord{}, sql.ErrNoRows
	}
	return rec, nil
}

func (m *memoryStore) List(_ context.Context, statuses []string) ([]PackageRecord, error) {
	out := make([]PackageRecord, 0, len(m.records))
	for _, rec := range m.records {
		if len(statuses) > 0 {
			match := false
			for _, s := range statuses {
				if rec.Status == s {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		}
		out = append(out, rec)
	}
	return out, nil
}

func (m *memoryStore) Delete(_ context.Context, id int64) error {
	if _, ok := m.records[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.records, id)
	return nil
}

var _ PackageStore = (*memoryStore)(nil)

func TestAdapterSave(t *testing.T) {
	ctx := context.Background()
	mem := newMemoryStore()
	adapter := NewAdapter(mem)

	t.Run("create assigns an id", func(t *testing.T) {
		saved, err := adapter.Save(ctx, domain.PackageDraft{Name: "Coastal Escape", State: "Karnataka"})
		if err != nil {
			t.Fatalf("Save: %v", err)
		}
		if saved.ID == 0 {
			t.Fatal("expected store-assigned id")
		}
		if saved.Name != "Coastal Escape" {
			t.Fatalf("name lost: %q", saved.Name)
		}
	})

	t.Run("update keeps the id", func(t *testing.T) {
		created, err := adapter.Save(ctx, domain.PackageDraft{Name: "Hill Retreat", State: "Kerala"})
		if err != nil {
			t.Fatalf("Save: %v", err)
		}
		created.Name = "Hill Retreat Deluxe"
		updated, err := adapter.Save(ctx, created)
		if err != nil {
			t.Fatalf("Save update: %v", err)
		}
		if updated.ID != created.ID {
			t.Fatalf("id changed on update: %d -> %d", created.ID, updated.ID)
		}
		if updated.Name != "Hill Retreat Deluxe" {
			t.Fatalf("update lost: %q", updated.Name)
		}
	})

	t.Run("store failure leaves nothing behind", func(t *testing.T) {
		failing := newMemoryStore()
		failing.failAll = true
		_, err := NewAdapter(failing).Save(ctx, domain.PackageDraft{Name: "Doomed"})
		if err == nil {
			t.Fatal("expected error")
		}
		if len(failing.records) != 0 {
			t.Fatalf("failed save mutated store: %+v", failing.records)
		}
	})
}

func TestAdapterDuplicate(t *testing.T) {
	ctx := context.Background()
	mem := newMemoryStore()
	adapter := NewAdapter(mem)

	original, err := adapter.Save(ctx, domain.PackageDraft{Name: "Coastal Escape", State: "Karnataka"})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	copyDraft, err := adapter.Duplicate(ctx, original.ID)
	if err != nil {
		t.Fatalf("Duplicate: %v", err)
	}
	if copyDraft.ID == original.ID || copyDraft.ID == 0 {
		t.Fatalf("expected a fresh id, got %d", copyDraft.ID)
	}
	if !strings.HasSuffix(copyDraft.Name, DuplicateNameSuffix) {
		t.Fatalf("expected name suffix, got %q", copyDraft.Name)
	}
	if copyDraft.State != "Karnataka" {
		t.Fatalf("copy lost fields: %+v", copyDraft)
	}
}

func TestAdapterRemove(t *testing.T) {
	ctx := context.Background()
	mem := newMemoryStore()
	adapter := NewAdapter(mem)

	created, err := adapter.Save(ctx, domain.PackageDraft{Name: "Coastal Escape"})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := adapter.Remove(ctx, created.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := adapter.Get(ctx, created.ID); err == nil {
		t.Fatal("expected missing package after remove")
	}
}

func TestAdapterList(t *testing.T) {
	ctx := context.Background()
	mem := newMemoryStore()
	adapter := NewAdapter(mem)

	if _, err := adapter.Save(ctx, domain.PackageDraft{Name: "A", Status: domain.PackageStatusActive}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := adapter.Save(ctx, domain.PackageDraft{Name: "B", Status: domain.PackageStatusDraft}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	all, err := adapter.List(ctx, nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 packages, got %d", len(all))
	}

	active, err := adapter.List(ctx, []string{"Active"})
	if err != nil {
		t.Fatalf("List filtered: %v", err)
	}
	if len(active) != 1 || active[0].Name != "A" {
		t.Fatalf("status filter wrong: %+v", active)
	}
}
