// Package catalog manages the glass palette: the records, their lifecycle,
// and the audit trail each change leaves behind.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ecatuogno1/glassvision/internal/domain"
	"github.com/ecatuogno1/glassvision/internal/ident"
	"github.com/ecatuogno1/glassvision/internal/logging"
	"github.com/ecatuogno1/glassvision/internal/notify"
	"github.com/ecatuogno1/glassvision/internal/seed"
	"github.com/ecatuogno1/glassvision/internal/slugs"
	"github.com/ecatuogno1/glassvision/internal/state"
	"github.com/ecatuogno1/glassvision/internal/store"
	"github.com/ecatuogno1/glassvision/internal/util"
	"github.com/ecatuogno1/glassvision/pkg/interfaces"
)

// ErrNotFound indicates the referenced glass record does not exist.
var ErrNotFound = errors.New("catalog: glass record not found")

// Service coordinates glass record mutations through the store.
type Service struct {
	store  *store.Store
	toasts *notify.Queue
	logger interfaces.Logger
	now    func() time.Time
	newID  ident.Generator
}

// Option customises service construction.
type Option func(*Service)

// WithClock overrides time acquisition, primarily for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides identifier generation, primarily for tests.
func WithIDGenerator(generate ident.Generator) Option {
	return func(s *Service) {
		if generate != nil {
			s.newID = generate
		}
	}
}

// WithLoggerProvider wires the catalog logger.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(s *Service) {
		s.logger = logging.CatalogLogger(provider)
	}
}

// NewService constructs the catalog service.
func NewService(st *store.Store, toasts *notify.Queue, opts ...Option) *Service {
	s := &Service{
		store:  st,
		toasts: toasts,
		logger: logging.NoOp(),
		now:    time.Now,
		newID:  ident.Sortable,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Upsert saves a record, creating it when the identifier is absent or
// unknown. Input is normalized permissively rather than rejected: a blank
// name becomes a placeholder, list fields are trimmed and deduplicated, and
// empty collections and notes fall back to curated defaults.
func (s *Service) Upsert(ctx context.Context, actor string, draft domain.GlassRecord) (domain.GlassRecord, error) {
	name := strings.TrimSpace(draft.Name)
	if name == "" {
		name = "Untitled entry"
	}

	record := draft.Clone()
	record.Name = name
	record.Applications = util.SanitizeList(draft.Applications)
	record.Tags = util.SanitizeList(draft.Tags)
	record.Collections = util.SanitizeList(draft.Collections)
	if len(record.Collections) == 0 {
		record.Collections = []string{seed.FallbackCollection()}
	}
	record.Notes = strings.TrimSpace(draft.Notes)
	if record.Notes == "" {
		record.Notes = seed.FallbackNote()
	}
	record.Owner = util.FirstNonEmpty(draft.Owner, actor)
	if record.Status == "" {
		record.Status = domain.GlassDraft
	}

	created := false
	s.store.Update(func(current domain.State) []state.Action {
		taken := func(id string) bool {
			for _, existing := range current.GlassRecords {
				if existing.ID == id {
					return true
				}
			}
			return false
		}

		if record.ID == "" || !taken(record.ID) {
			created = true
			base := record.ID
			if base == "" {
				base = slugs.Slugify(name)
			}
			if base == "" {
				base = fmt.Sprintf("entry-%d", len(current.GlassRecords)+1)
			}
			record.ID = slugs.UniqueSuffix(base, taken)
		}
		record.UpdatedAt = s.now()

		verb := "Updated"
		if created {
			verb = "Created"
		}
		return []state.Action{
			state.UpsertGlassRecord{Record: record},
			s.activity(actor, fmt.Sprintf("%s glass record %s", verb, record.Name), record.ID),
			state.RefreshAnalytics{},
		}
	})

	s.logger.Info("glass record saved", "id", record.ID, "created", created)
	s.toasts.Success("Glass record saved", fmt.Sprintf("%s is now %s", record.Name, record.Status))
	return record, nil
}

// Delete removes a record. Deleting an unknown id is a no-op beyond the
// audit entry and toast.
func (s *Service) Delete(ctx context.Context, actor, id string) {
	s.store.Dispatch(
		state.DeleteGlassRecord{ID: id},
		s.activity(actor, fmt.Sprintf("Deleted glass record %s", id), id),
		state.RefreshAnalytics{},
	)
	s.logger.Info("glass record deleted", "id", id)
	s.toasts.Info("Glass record removed", id)
}

// Duplicate clones an existing record into a fresh draft copy. The copy's
// identifier is ${source}-copy, suffixed -copy-1, -copy-2, ... when earlier
// copies already hold it.
func (s *Service) Duplicate(ctx context.Context, actor, id string) (domain.GlassRecord, error) {
	records := s.store.State().GlassRecords
	taken := func(candidate string) bool {
		for _, existing := range records {
			if existing.ID == candidate {
				return true
			}
		}
		return false
	}

	var original domain.GlassRecord
	found := false
	for _, record := range records {
		if record.ID == id {
			original = record
			found = true
			break
		}
	}
	if !found {
		s.toasts.Error("Unable to duplicate", "Original record not found.")
		return domain.GlassRecord{}, ErrNotFound
	}

	copyRecord := original.Clone()
	copyRecord.ID = slugs.UniqueSuffix(original.ID+"-copy", taken)
	copyRecord.Name = original.Name + " Copy"
	copyRecord.Featured = false
	copyRecord.Status = domain.GlassDraft
	if strings.TrimSpace(original.Notes) != "" {
		copyRecord.Notes = original.Notes + " (duplicated)"
	} else {
		copyRecord.Notes = "Duplicated for revision."
	}

	saved, err := s.Upsert(ctx, actor, copyRecord)
	if err != nil {
		return domain.GlassRecord{}, err
	}
	s.toasts.Success("Glass record duplicated", saved.Name)
	return saved, nil
}

// UpdateStatus moves a record to a new lifecycle status.
func (s *Service) UpdateStatus(ctx context.Context, actor, id string, status domain.GlassStatus) (domain.GlassRecord, error) {
	var updated domain.GlassRecord
	err := ErrNotFound
	s.store.Update(func(current domain.State) []state.Action {
		for _, record := range current.GlassRecords {
			if record.ID != id {
				continue
			}
			err = nil
			updated = record.Clone()
			updated.Status = status
			updated.UpdatedAt = s.now()
			return []state.Action{
				state.UpsertGlassRecord{Record: updated},
				s.activity(actor, fmt.Sprintf("Set glass record %s to %s", updated.Name, status), id),
				state.RefreshAnalytics{},
			}
		}
		return nil
	})
	if err != nil {
		s.toasts.Error("Glass record not found", id)
		return domain.GlassRecord{}, err
	}

	s.toasts.Info(fmt.Sprintf("%s status updated", updated.Name), fmt.Sprintf("Status set to %s", status))
	return updated, nil
}

// ToggleFeatured flips the featured flag of a record.
func (s *Service) ToggleFeatured(ctx context.Context, actor, id string) (domain.GlassRecord, error) {
	var updated domain.GlassRecord
	err := ErrNotFound
	s.store.Update(func(current domain.State) []state.Action {
		for _, record := range current.GlassRecords {
			if record.ID != id {
				continue
			}
			err = nil
			updated = record.Clone()
			updated.Featured = !record.Featured
			updated.UpdatedAt = s.now()

			action := fmt.Sprintf("Removed highlight from %s", updated.Name)
			if updated.Featured {
				action = fmt.Sprintf("Highlighted %s", updated.Name)
			}
			return []state.Action{
				state.UpsertGlassRecord{Record: updated},
				s.activity(actor, action, id),
			}
		}
		return nil
	})
	if err != nil {
		s.toasts.Error("Glass record not found", id)
		return domain.GlassRecord{}, err
	}

	if updated.Featured {
		s.toasts.Success("Added to featured", updated.Name)
	} else {
		s.toasts.Success("Removed from featured", updated.Name)
	}
	return updated, nil
}

func (s *Service) activity(actor, action, target string) state.PushActivity {
	return state.PushActivity{
		Entry: domain.ActivityEntry{
			ID:         s.newID("activity"),
			Timestamp:  s.now(),
			Actor:      util.FirstNonEmpty(actor, "System"),
			Action:     action,
			Target:     target,
			TargetType: domain.TargetGlass,
		},
	}
}
