package store_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/ecatuogno1/glassvision/internal/domain"
	"github.com/ecatuogno1/glassvision/internal/state"
	"github.com/ecatuogno1/glassvision/internal/store"
)

func TestStateReturnsIsolatedCopy(t *testing.T) {
	st := store.New(domain.State{
		GlassRecords: []domain.GlassRecord{{ID: "glass-1", Name: "Original"}},
	})

	snapshot := st.State()
	snapshot.GlassRecords[0].Name = "Mutated"

	if st.State().GlassRecords[0].Name != "Original" {
		t.Fatal("mutating a snapshot must not leak into the store")
	}
}

func TestDispatchAppliesActionsInOrder(t *testing.T) {
	st := store.New(domain.State{})

	result := st.Dispatch(
		state.UpsertGlassRecord{Record: domain.GlassRecord{ID: "glass-1", Name: "First"}},
		state.UpsertGlassRecord{Record: domain.GlassRecord{ID: "glass-1", Name: "Second"}},
	)

	if len(result.GlassRecords) != 1 || result.GlassRecords[0].Name != "Second" {
		t.Fatalf("expected later action to win, got %+v", result.GlassRecords)
	}
}

func TestUpdateEmptyDecisionLeavesStateUntouched(t *testing.T) {
	mirrored := 0
	st := store.New(domain.State{}, store.WithMirror(func(domain.State) { mirrored++ }))

	st.Update(func(domain.State) []state.Action { return nil })

	if mirrored != 0 {
		t.Fatalf("no-op updates must not notify the mirror, got %d calls", mirrored)
	}
}

func TestMirrorSeesCommittedSnapshot(t *testing.T) {
	var seen domain.State
	st := store.New(domain.State{}, store.WithMirror(func(snapshot domain.State) { seen = snapshot }))

	st.Dispatch(state.UpsertGlassRecord{Record: domain.GlassRecord{ID: "glass-1", Name: "Mirrored"}})

	if len(seen.GlassRecords) != 1 || seen.GlassRecords[0].Name != "Mirrored" {
		t.Fatalf("mirror must observe the committed snapshot, got %+v", seen.GlassRecords)
	}
}

func TestUpdateIsAtomicUnderContention(t *testing.T) {
	st := store.New(domain.State{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			st.Update(func(current domain.State) []state.Action {
				// Read-check-mutate: append one record based on the count seen.
				next := len(current.GlassRecords) + 1
				return []state.Action{state.UpsertGlassRecord{Record: domain.GlassRecord{
					ID:   fmt.Sprintf("glass-%d", next),
					Name: "Contender",
				}}}
			})
		}()
	}
	wg.Wait()

	if got := len(st.State().GlassRecords); got != 50 {
		t.Fatalf("expected 50 distinct records, got %d", got)
	}
}
