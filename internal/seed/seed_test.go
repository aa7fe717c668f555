package seed_test

import (
	"testing"

	"github.com/ecatuogno1/glassvision/internal/domain"
	"github.com/ecatuogno1/glassvision/internal/seed"
)

func TestStateIsDeterministic(t *testing.T) {
	first := seed.State()
	second := seed.State()

	if len(first.GlassRecords) != len(second.GlassRecords) {
		t.Fatal("seeded record counts differ between calls")
	}
	for i := range first.GlassRecords {
		a, b := first.GlassRecords[i], second.GlassRecords[i]
		if a.ID != b.ID || a.Name != b.Name || !a.UpdatedAt.Equal(b.UpdatedAt) {
			t.Fatalf("record %d differs: %+v vs %+v", i, a, b)
		}
	}
}

func TestStateCarriesEverySection(t *testing.T) {
	state := seed.State()

	if len(state.GlassRecords) == 0 {
		t.Fatal("expected seeded glass records")
	}
	for _, entity := range domain.ContentEntities {
		if len(state.Content[entity]) == 0 {
			t.Fatalf("expected seeded entries for %s", entity)
		}
	}
	if len(state.MediaLibrary) == 0 || len(state.Forms) == 0 || len(state.Pages) == 0 {
		t.Fatal("expected seeded media, forms, and pages")
	}
	if len(state.Activity) == 0 {
		t.Fatal("expected seeded activity trail")
	}
	if len(state.Analytics.ContentPerformance) == 0 {
		t.Fatal("expected analytics computed over the seeded content")
	}
}

func TestFallbacksMatchFirstSeeds(t *testing.T) {
	if got := seed.FallbackCollection(); got != seed.CollectionSeeds[0][0] {
		t.Fatalf("fallback collection %q does not match the first seed", got)
	}
	if got := seed.FallbackNote(); got != seed.NoteSeeds[0] {
		t.Fatalf("fallback note %q does not match the first seed", got)
	}
}

func TestSeededRecordsAreIndependentCopies(t *testing.T) {
	first := seed.State()
	first.GlassRecords[0].Name = "Mutated"

	if seed.State().GlassRecords[0].Name == "Mutated" {
		t.Fatal("seeded states must not share backing storage")
	}
}
