package catalog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecatuogno1/glassvision/internal/catalog"
	"github.com/ecatuogno1/glassvision/internal/domain"
	"github.com/ecatuogno1/glassvision/internal/notify"
	"github.com/ecatuogno1/glassvision/internal/seed"
	"github.com/ecatuogno1/glassvision/internal/store"
)

var fixedMoment = time.Date(2024, 3, 22, 10, 0, 0, 0, time.UTC)

func newService(initial domain.State) (*catalog.Service, *store.Store, *notify.Queue) {
	st := store.New(initial)
	toasts := notify.NewQueue()
	svc := catalog.NewService(st, toasts,
		catalog.WithClock(func() time.Time { return fixedMoment }),
		catalog.WithIDGenerator(func(prefix string) string { return prefix + "-fixed" }),
	)
	return svc, st, toasts
}

func TestUpsertSlugIDsAndCollisionSuffix(t *testing.T) {
	svc, st, _ := newService(domain.State{})
	ctx := context.Background()

	first, err := svc.Upsert(ctx, "tester", domain.GlassRecord{Name: "Ocean Glass"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.ID != "ocean-glass" {
		t.Fatalf("expected ocean-glass, got %q", first.ID)
	}

	second, _ := svc.Upsert(ctx, "tester", domain.GlassRecord{Name: "Ocean Glass"})
	if second.ID != "ocean-glass-1" {
		t.Fatalf("expected ocean-glass-1, got %q", second.ID)
	}

	third, _ := svc.Upsert(ctx, "tester", domain.GlassRecord{Name: "Ocean Glass"})
	if third.ID != "ocean-glass-2" {
		t.Fatalf("expected ocean-glass-2, got %q", third.ID)
	}

	if got := len(st.State().GlassRecords); got != 3 {
		t.Fatalf("expected 3 records, got %d", got)
	}
}

func TestUpsertNormalizesDraft(t *testing.T) {
	svc, _, _ := newService(domain.State{})

	record, err := svc.Upsert(context.Background(), "designer", domain.GlassRecord{
		Name: "   ",
		Tags: []string{" flutes ", "", "flutes"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Name != "Untitled entry" {
		t.Fatalf("expected placeholder name, got %q", record.Name)
	}
	if len(record.Tags) != 1 || record.Tags[0] != "flutes" {
		t.Fatalf("expected trimmed deduplicated tags, got %v", record.Tags)
	}
	if len(record.Collections) != 1 || record.Collections[0] != seed.FallbackCollection() {
		t.Fatalf("expected fallback collection, got %v", record.Collections)
	}
	if record.Notes != seed.FallbackNote() {
		t.Fatalf("expected fallback note, got %q", record.Notes)
	}
	if record.Owner != "designer" {
		t.Fatalf("expected actor as owner, got %q", record.Owner)
	}
	if record.Status != domain.GlassDraft {
		t.Fatalf("expected draft default, got %q", record.Status)
	}
	if !record.UpdatedAt.Equal(fixedMoment) {
		t.Fatalf("expected fixed timestamp, got %v", record.UpdatedAt)
	}
}

func TestUpsertUpdatesExistingRecord(t *testing.T) {
	svc, st, _ := newService(domain.State{})
	ctx := context.Background()

	created, _ := svc.Upsert(ctx, "tester", domain.GlassRecord{Name: "Ocean Glass"})

	created.Notes = "Revised spectral notes."
	updated, err := svc.Upsert(ctx, "tester", created)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("expected id %q preserved, got %q", created.ID, updated.ID)
	}
	if got := len(st.State().GlassRecords); got != 1 {
		t.Fatalf("expected update in place, got %d records", got)
	}
}

func TestUpsertRecordsActivityAndToast(t *testing.T) {
	svc, st, toasts := newService(domain.State{})

	svc.Upsert(context.Background(), "tester", domain.GlassRecord{Name: "Ocean Glass"})

	activity := st.State().Activity
	if len(activity) != 1 {
		t.Fatalf("expected one activity entry, got %d", len(activity))
	}
	if activity[0].Action != "Created glass record Ocean Glass" {
		t.Fatalf("unexpected activity action %q", activity[0].Action)
	}
	if activity[0].Actor != "tester" {
		t.Fatalf("unexpected activity actor %q", activity[0].Actor)
	}

	list := toasts.List()
	if len(list) != 1 || list[0].Title != "Glass record saved" {
		t.Fatalf("unexpected toasts %+v", list)
	}
}

func TestDeleteRemovesRecord(t *testing.T) {
	svc, st, toasts := newService(domain.State{})
	ctx := context.Background()

	record, _ := svc.Upsert(ctx, "tester", domain.GlassRecord{Name: "Ocean Glass"})
	svc.Delete(ctx, "tester", record.ID)

	if got := len(st.State().GlassRecords); got != 0 {
		t.Fatalf("expected 0 records, got %d", got)
	}
	list := toasts.List()
	if list[0].Title != "Glass record removed" {
		t.Fatalf("unexpected toast %+v", list[0])
	}
}

func TestDuplicateCreatesDraftCopy(t *testing.T) {
	svc, st, _ := newService(domain.State{})
	ctx := context.Background()

	original, _ := svc.Upsert(ctx, "tester", domain.GlassRecord{
		Name:     "Ocean Glass",
		Notes:    "Original notes",
		Featured: true,
		Status:   domain.GlassPublished,
	})

	copied, err := svc.Duplicate(ctx, "tester", original.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if copied.ID != "ocean-glass-copy" {
		t.Fatalf("expected ocean-glass-copy, got %q", copied.ID)
	}
	if copied.Name != "Ocean Glass Copy" {
		t.Fatalf("unexpected name %q", copied.Name)
	}
	if copied.Featured {
		t.Fatal("duplicates must start unfeatured")
	}
	if copied.Status != domain.GlassDraft {
		t.Fatalf("duplicates must start as drafts, got %q", copied.Status)
	}
	if copied.Notes != "Original notes (duplicated)" {
		t.Fatalf("unexpected notes %q", copied.Notes)
	}
	if got := len(st.State().GlassRecords); got != 2 {
		t.Fatalf("expected original plus copy, got %d records", got)
	}
}

func TestDuplicateRepeatedlySuffixesCopies(t *testing.T) {
	svc, st, _ := newService(domain.State{})
	ctx := context.Background()

	original, _ := svc.Upsert(ctx, "tester", domain.GlassRecord{Name: "Ocean Glass"})

	first, err := svc.Duplicate(ctx, "tester", original.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.ID != "ocean-glass-copy" {
		t.Fatalf("expected ocean-glass-copy, got %q", first.ID)
	}

	second, err := svc.Duplicate(ctx, "tester", original.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.ID != "ocean-glass-copy-1" {
		t.Fatalf("expected ocean-glass-copy-1, got %q", second.ID)
	}

	third, err := svc.Duplicate(ctx, "tester", original.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if third.ID != "ocean-glass-copy-2" {
		t.Fatalf("expected ocean-glass-copy-2, got %q", third.ID)
	}

	if got := len(st.State().GlassRecords); got != 4 {
		t.Fatalf("expected original plus three copies, got %d records", got)
	}
}

func TestDuplicateUnknownRecord(t *testing.T) {
	svc, _, toasts := newService(domain.State{})

	_, err := svc.Duplicate(context.Background(), "tester", "missing")
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	list := toasts.List()
	if len(list) != 1 || list[0].Status != domain.ToastError {
		t.Fatalf("expected error toast, got %+v", list)
	}
}

func TestUpdateStatus(t *testing.T) {
	svc, st, _ := newService(domain.State{})
	ctx := context.Background()

	record, _ := svc.Upsert(ctx, "tester", domain.GlassRecord{Name: "Ocean Glass"})

	updated, err := svc.UpdateStatus(ctx, "tester", record.ID, domain.GlassPublished)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != domain.GlassPublished {
		t.Fatalf("expected published, got %q", updated.Status)
	}
	if st.State().GlassRecords[0].Status != domain.GlassPublished {
		t.Fatal("status change not committed")
	}

	if _, err := svc.UpdateStatus(ctx, "tester", "missing", domain.GlassArchived); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestToggleFeaturedFlipsWithoutAnalyticsRefresh(t *testing.T) {
	// Start with a deliberately stale snapshot: content exists but the
	// performance ranking is empty. A recompute would populate it.
	initial := domain.State{
		GlassRecords: []domain.GlassRecord{{ID: "ocean-glass", Name: "Ocean Glass"}},
		Content: map[domain.ContentEntity][]domain.ContentEntry{
			domain.EntityBlog: {{ID: "post", Title: "Post", Metrics: domain.ContentMetrics{Views: 10}}},
		},
		Analytics: domain.AnalyticsSnapshot{DailyActiveUsers: []int{1}},
	}
	svc, st, _ := newService(initial)
	ctx := context.Background()

	updated, err := svc.ToggleFeatured(ctx, "tester", "ocean-glass")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.Featured {
		t.Fatal("expected featured true after first toggle")
	}

	// Toggling feature state is cosmetic and leaves the snapshot alone.
	if got := st.State().Analytics.ContentPerformance; len(got) != 0 {
		t.Fatalf("toggle must not recompute analytics, ranking now %+v", got)
	}

	reverted, _ := svc.ToggleFeatured(ctx, "tester", "ocean-glass")
	if reverted.Featured {
		t.Fatal("expected featured false after second toggle")
	}

	// A regular upsert does refresh the ranking.
	svc.Upsert(ctx, "tester", domain.GlassRecord{ID: "ocean-glass", Name: "Ocean Glass"})
	if got := st.State().Analytics.ContentPerformance; len(got) != 1 {
		t.Fatalf("upsert must recompute analytics, ranking is %+v", got)
	}
}
