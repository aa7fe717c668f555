package content_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/ecatuogno1/glassvision/internal/content"
	"github.com/ecatuogno1/glassvision/internal/domain"
	"github.com/ecatuogno1/glassvision/internal/notify"
	"github.com/ecatuogno1/glassvision/internal/store"
)

var fixedMoment = time.Date(2024, 3, 22, 10, 0, 0, 0, time.UTC)

func newService(initial domain.State) (*content.Service, *store.Store, *notify.Queue) {
	st := store.New(initial)
	toasts := notify.NewQueue()
	svc := content.NewService(st, toasts,
		content.WithClock(func() time.Time { return fixedMoment }),
		content.WithIDGenerator(func(prefix string) string { return prefix + "-fixed" }),
	)
	return svc, st, toasts
}

func TestUpsertRejectsBlankTitle(t *testing.T) {
	svc, st, toasts := newService(domain.State{})

	_, err := svc.Upsert(context.Background(), "writer", domain.EntityBlog, content.EntryDraft{Title: "   "})
	if err == nil {
		t.Fatal("expected validation error for blank title")
	}
	if got := len(st.State().Content[domain.EntityBlog]); got != 0 {
		t.Fatalf("state must stay untouched, found %d entries", got)
	}
	list := toasts.List()
	if len(list) != 1 || list[0].Status != domain.ToastError {
		t.Fatalf("expected error toast, got %+v", list)
	}
}

func TestUpsertAppliesDefaults(t *testing.T) {
	svc, _, _ := newService(domain.State{})

	entry, err := svc.Upsert(context.Background(), "writer", domain.EntityBlog, content.EntryDraft{
		Title:   "Hello World",
		Summary: "A greeting",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.ID != "hello-world" || entry.Slug != "hello-world" {
		t.Fatalf("expected slug-derived id and slug, got %q / %q", entry.ID, entry.Slug)
	}
	if entry.Status != domain.StatusDraft {
		t.Fatalf("expected draft default, got %q", entry.Status)
	}
	if entry.Category != "General" {
		t.Fatalf("expected General default, got %q", entry.Category)
	}
	if len(entry.RoleVisibility) != len(domain.AllRoles()) {
		t.Fatalf("expected all roles visible, got %v", entry.RoleVisibility)
	}
	if entry.Owner != "writer" {
		t.Fatalf("expected actor as owner, got %q", entry.Owner)
	}
	if entry.SEO.Title != "Hello World" || entry.SEO.Description != "A greeting" {
		t.Fatalf("expected SEO derived from title and summary, got %+v", entry.SEO)
	}
	if entry.PublishedAt != nil {
		t.Fatal("drafts must not carry a publication time")
	}
}

func TestUpsertCopiesScheduledAt(t *testing.T) {
	svc, st, _ := newService(domain.State{})

	scheduled := fixedMoment.Add(48 * time.Hour)
	entry, err := svc.Upsert(context.Background(), "writer", domain.EntityBlog, content.EntryDraft{
		Title:       "Hello World",
		ScheduledAt: &scheduled,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.ScheduledAt == nil || !entry.ScheduledAt.Equal(scheduled) {
		t.Fatalf("expected scheduled time carried over, got %v", entry.ScheduledAt)
	}

	scheduled = scheduled.Add(time.Hour)
	committed := st.State().Content[domain.EntityBlog][0].ScheduledAt
	if committed == nil || !committed.Equal(fixedMoment.Add(48*time.Hour)) {
		t.Fatalf("committed schedule must not alias the caller's pointer, got %v", committed)
	}
}

func TestUpsertBucketScopedCollisions(t *testing.T) {
	svc, _, _ := newService(domain.State{})
	ctx := context.Background()

	first, _ := svc.Upsert(ctx, "writer", domain.EntityBlog, content.EntryDraft{Title: "Hello"})
	if first.ID != "hello" {
		t.Fatalf("expected hello, got %q", first.ID)
	}

	second, _ := svc.Upsert(ctx, "writer", domain.EntityBlog, content.EntryDraft{Title: "Hello"})
	if second.ID != "hello-1" {
		t.Fatalf("expected hello-1, got %q", second.ID)
	}

	// Same title in another bucket does not collide.
	project, _ := svc.Upsert(ctx, "writer", domain.EntityProjects, content.EntryDraft{Title: "Hello"})
	if project.ID != "hello" {
		t.Fatalf("expected hello in projects bucket, got %q", project.ID)
	}
}

func TestUpsertPreservesCreatedAtAndMetrics(t *testing.T) {
	existing := domain.ContentEntry{
		ID:        "hello",
		Title:     "Hello",
		Slug:      "hello",
		Status:    domain.StatusPublished,
		CreatedAt: fixedMoment.Add(-48 * time.Hour),
		UpdatedAt: fixedMoment.Add(-48 * time.Hour),
		Metrics:   domain.ContentMetrics{Views: 120, Engagements: 12},
	}
	published := fixedMoment.Add(-24 * time.Hour)
	existing.PublishedAt = &published

	svc, st, _ := newService(domain.State{
		Content: map[domain.ContentEntity][]domain.ContentEntry{
			domain.EntityBlog: {existing},
		},
	})

	updated, err := svc.Upsert(context.Background(), "writer", domain.EntityBlog, content.EntryDraft{
		ID:     "hello",
		Title:  "Hello Again",
		Status: domain.StatusPublished,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.CreatedAt.Equal(existing.CreatedAt) {
		t.Fatalf("CreatedAt must survive updates, got %v", updated.CreatedAt)
	}
	if updated.Metrics.Views != 120 {
		t.Fatalf("metrics must survive updates, got %+v", updated.Metrics)
	}
	if updated.PublishedAt == nil || !updated.PublishedAt.Equal(published) {
		t.Fatalf("PublishedAt must survive updates, got %v", updated.PublishedAt)
	}
	if got := len(st.State().Content[domain.EntityBlog]); got != 1 {
		t.Fatalf("expected in-place update, got %d entries", got)
	}
}

func TestUpdateStatusStampsPublishedAt(t *testing.T) {
	svc, _, _ := newService(domain.State{})
	ctx := context.Background()

	entry, _ := svc.Upsert(ctx, "writer", domain.EntityBlog, content.EntryDraft{Title: "Hello"})

	published, err := svc.UpdateStatus(ctx, "writer", domain.EntityBlog, entry.ID, domain.StatusPublished)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if published.PublishedAt == nil || !published.PublishedAt.Equal(fixedMoment) {
		t.Fatalf("expected publication stamp at %v, got %v", fixedMoment, published.PublishedAt)
	}

	// Moving back to draft keeps the original publication time.
	reverted, err := svc.UpdateStatus(ctx, "writer", domain.EntityBlog, entry.ID, domain.StatusDraft)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reverted.PublishedAt == nil || !reverted.PublishedAt.Equal(fixedMoment) {
		t.Fatalf("expected publication time preserved, got %v", reverted.PublishedAt)
	}
}

func TestUpdateStatusUnknownEntry(t *testing.T) {
	svc, _, toasts := newService(domain.State{})

	_, err := svc.UpdateStatus(context.Background(), "writer", domain.EntityBlog, "missing", domain.StatusPublished)
	if err != content.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	list := toasts.List()
	if len(list) != 1 || list[0].Status != domain.ToastError {
		t.Fatalf("expected error toast, got %+v", list)
	}
}

func TestDeleteRemovesEntry(t *testing.T) {
	svc, st, _ := newService(domain.State{})
	ctx := context.Background()

	entry, _ := svc.Upsert(ctx, "writer", domain.EntityBlog, content.EntryDraft{Title: "Hello"})
	svc.Delete(ctx, "writer", domain.EntityBlog, entry.ID)

	if got := len(st.State().Content[domain.EntityBlog]); got != 0 {
		t.Fatalf("expected empty bucket, got %d entries", got)
	}
}

func TestRenderBody(t *testing.T) {
	svc, _, _ := newService(domain.State{})

	html, err := svc.RenderBody("# Heading\n\nSome **bold** text.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, "<h1") {
		t.Fatalf("expected heading markup, got %q", html)
	}
	if !strings.Contains(html, "<strong>bold</strong>") {
		t.Fatalf("expected bold markup, got %q", html)
	}
}
