package notify_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/ecatuogno1/glassvision/internal/domain"
	"github.com/ecatuogno1/glassvision/internal/notify"
)

func sequentialIDs() func(prefix string) string {
	counter := 0
	return func(prefix string) string {
		counter++
		return fmt.Sprintf("%s-%d", prefix, counter)
	}
}

func TestPushAssignsIDAndTimestamp(t *testing.T) {
	moment := time.Date(2024, 3, 22, 10, 0, 0, 0, time.UTC)
	queue := notify.NewQueue(
		notify.WithClock(func() time.Time { return moment }),
		notify.WithIDGenerator(sequentialIDs()),
	)

	toast := queue.Success("Saved", "All good")
	if toast.ID != "toast-1" {
		t.Fatalf("expected toast-1, got %q", toast.ID)
	}
	if !toast.CreatedAt.Equal(moment) {
		t.Fatalf("expected %v, got %v", moment, toast.CreatedAt)
	}
	if toast.Status != domain.ToastSuccess {
		t.Fatalf("expected success status, got %q", toast.Status)
	}
}

func TestQueueBoundedNewestFirst(t *testing.T) {
	queue := notify.NewQueue(notify.WithIDGenerator(sequentialIDs()))

	for i := 1; i <= 6; i++ {
		queue.Info(fmt.Sprintf("Toast %d", i), "")
	}

	toasts := queue.List()
	if len(toasts) != notify.DefaultCapacity {
		t.Fatalf("expected %d toasts, got %d", notify.DefaultCapacity, len(toasts))
	}
	if toasts[0].Title != "Toast 6" {
		t.Fatalf("expected newest first, got %q", toasts[0].Title)
	}
	if toasts[len(toasts)-1].Title != "Toast 2" {
		t.Fatalf("expected oldest toast evicted, tail is %q", toasts[len(toasts)-1].Title)
	}
}

func TestStaleToastsEvictedOnPush(t *testing.T) {
	moment := time.Date(2024, 3, 22, 10, 0, 0, 0, time.UTC)
	queue := notify.NewQueue(notify.WithClock(func() time.Time { return moment }))

	queue.Info("Old", "")

	// Advance past the TTL; the stale toast goes away on the next push.
	moment = moment.Add(notify.DefaultTTL)
	queue.Info("Fresh", "")

	toasts := queue.List()
	if len(toasts) != 1 {
		t.Fatalf("expected stale toast evicted, got %d toasts", len(toasts))
	}
	if toasts[0].Title != "Fresh" {
		t.Fatalf("expected Fresh, got %q", toasts[0].Title)
	}
}

func TestStaleEvictionIsLazy(t *testing.T) {
	moment := time.Date(2024, 3, 22, 10, 0, 0, 0, time.UTC)
	queue := notify.NewQueue(notify.WithClock(func() time.Time { return moment }))

	queue.Info("Old", "")
	moment = moment.Add(time.Minute)

	// List does not evict; only a push does.
	if got := len(queue.List()); got != 1 {
		t.Fatalf("expected listing to leave stale toast in place, got %d", got)
	}
}

func TestDismissIdempotent(t *testing.T) {
	queue := notify.NewQueue(notify.WithIDGenerator(sequentialIDs()))
	queue.Warning("One", "")
	queue.Error("Two", "")

	queue.Dismiss("toast-1")
	queue.Dismiss("toast-1")
	queue.Dismiss("missing")

	toasts := queue.List()
	if len(toasts) != 1 || toasts[0].ID != "toast-2" {
		t.Fatalf("expected only toast-2 remaining, got %+v", toasts)
	}
}
