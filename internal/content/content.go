// Package content manages the typed entry buckets (projects, services,
// blog, portfolio, staff, clients) and their publication lifecycle.
package content

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	command "github.com/goliatone/go-command"

	"github.com/ecatuogno1/glassvision/internal/domain"
	"github.com/ecatuogno1/glassvision/internal/ident"
	"github.com/ecatuogno1/glassvision/internal/logging"
	"github.com/ecatuogno1/glassvision/internal/markdown"
	"github.com/ecatuogno1/glassvision/internal/notify"
	"github.com/ecatuogno1/glassvision/internal/slugs"
	"github.com/ecatuogno1/glassvision/internal/state"
	"github.com/ecatuogno1/glassvision/internal/store"
	"github.com/ecatuogno1/glassvision/internal/util"
	"github.com/ecatuogno1/glassvision/pkg/interfaces"
)

// ErrNotFound indicates the referenced entry does not exist in its bucket.
var ErrNotFound = errors.New("content: entry not found")

const upsertEntryMessageType = "cms.content.upsert"

// EntryDraft carries the author-provided fields of an entry. Zero values
// mean "use the default" (or, for timestamps and metrics, "preserve").
type EntryDraft struct {
	ID             string               `json:"id,omitempty"`
	Title          string               `json:"title"`
	Slug           string               `json:"slug,omitempty"`
	Summary        string               `json:"summary,omitempty"`
	Body           string               `json:"body,omitempty"`
	Status         domain.ContentStatus `json:"status,omitempty"`
	Tags           []string             `json:"tags,omitempty"`
	Category       string               `json:"category,omitempty"`
	HeroMediaID    string               `json:"heroMediaId,omitempty"`
	ScheduledAt    *time.Time           `json:"scheduledAt,omitempty"`
	Owner          string               `json:"owner,omitempty"`
	RoleVisibility []domain.Role        `json:"roleVisibility,omitempty"`
	SEO            *domain.SEOFields    `json:"seo,omitempty"`
}

// Type implements command.Message.
func (EntryDraft) Type() string { return upsertEntryMessageType }

// Validate ensures the draft carries a usable title before it reaches the
// reducer.
func (d EntryDraft) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Title, validation.Required, validation.By(func(any) error {
			if strings.TrimSpace(d.Title) == "" {
				return errors.New("title must not be blank")
			}
			return nil
		})),
	)
}

// Service coordinates entry mutations through the store.
type Service struct {
	store    *store.Store
	toasts   *notify.Queue
	renderer *markdown.Renderer
	logger   interfaces.Logger
	now      func() time.Time
	newID    ident.Generator
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

// WithLoggerProvider wires the content logger.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(s *Service) {
		s.logger = logging.ContentLogger(provider)
	}
}

// WithRenderer overrides the body renderer.
func WithRenderer(renderer *markdown.Renderer) Option {
	return func(s *Service) {
		if renderer != nil {
			s.renderer = renderer
		}
	}
}

// NewService constructs the content service.
func NewService(st *store.Store, toasts *notify.Queue, opts ...Option) *Service {
	s := &Service{
		store:    st,
		toasts:   toasts,
		renderer: markdown.NewRenderer(markdown.Options{}),
		logger:   logging.NoOp(),
		now:      time.Now,
		newID:    ident.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Upsert saves an entry into the given bucket, creating it when the
// identifier is absent or unknown within that bucket. Validation failures
// leave state untouched and surface as an error toast.
func (s *Service) Upsert(ctx context.Context, actor string, entity domain.ContentEntity, draft EntryDraft) (domain.ContentEntry, error) {
	if err := command.ValidateMessage(draft); err != nil {
		s.toasts.Error("Title is required", "Provide a title before saving the entry.")
		return domain.ContentEntry{}, err
	}

	title := strings.TrimSpace(draft.Title)
	var saved domain.ContentEntry
	created := false

	s.store.Update(func(current domain.State) []state.Action {
		bucket := current.Content[entity]
		taken := func(id string) bool {
			for _, existing := range bucket {
				if existing.ID == id {
					return true
				}
			}
			return false
		}

		var existing *domain.ContentEntry
		if draft.ID != "" {
			for i := range bucket {
				if bucket[i].ID == draft.ID {
					existing = &bucket[i]
					break
				}
			}
		}

		id := draft.ID
		if existing == nil {
			created = true
			if id == "" {
				id = slugs.Slugify(title)
			}
			if id == "" {
				id = s.newID("entry")
			}
			id = slugs.UniqueSuffix(id, taken)
		}

		slug := slugs.Slugify(util.FirstNonEmpty(draft.Slug, title))
		if slug == "" {
			slug = id
		}

		now := s.now()
		entry := domain.ContentEntry{
			ID:          id,
			Title:       title,
			Slug:        slug,
			Summary:     draft.Summary,
			Body:        draft.Body,
			Status:      draft.Status,
			Tags:        util.SanitizeList(draft.Tags),
			Category:    util.FirstNonEmpty(draft.Category, "General"),
			HeroMediaID: draft.HeroMediaID,
			CreatedAt:   now,
			UpdatedAt:   now,
			Owner:       util.FirstNonEmpty(draft.Owner, actor),
			Metrics:     domain.ContentMetrics{},
		}
		if draft.ScheduledAt != nil {
			// Copy the pointee so the snapshot never shares the caller's pointer.
			scheduled := *draft.ScheduledAt
			entry.ScheduledAt = &scheduled
		}
		if len(draft.RoleVisibility) > 0 {
			entry.RoleVisibility = append([]domain.Role(nil), draft.RoleVisibility...)
		} else {
			entry.RoleVisibility = domain.AllRoles()
		}
		if entry.Status == "" {
			entry.Status = domain.StatusDraft
		}
		if entry.Tags == nil {
			entry.Tags = []string{}
		}
		if draft.SEO != nil {
			entry.SEO = domain.SEOFields{
				Title:       draft.SEO.Title,
				Description: draft.SEO.Description,
				Keywords:    append([]string(nil), draft.SEO.Keywords...),
			}
		} else {
			entry.SEO = domain.SEOFields{
				Title:       title,
				Description: draft.Summary,
				Keywords:    []string{},
			}
		}
		if existing != nil {
			entry.CreatedAt = existing.CreatedAt
			entry.PublishedAt = existing.PublishedAt
			entry.Metrics = existing.Metrics
		}

		saved = entry
		verb := "Updated"
		if created {
			verb = "Created"
		}
		return []state.Action{
			state.UpsertContentEntry{Entity: entity, Entry: entry},
			s.activity(actor, fmt.Sprintf("%s %s entry %s", verb, entity, title), entry.ID, entity),
			state.RefreshAnalytics{},
		}
	})

	s.logger.Info("entry saved", "entity", string(entity), "id", saved.ID, "created", created)
	s.toasts.Success(
		fmt.Sprintf("%s saved", saved.Title),
		fmt.Sprintf("%s entry is now %s", entity, saved.Status),
	)
	return saved, nil
}

// UpdateStatus moves an entry to a new lifecycle status. Entering published
// stamps the publication time; other transitions preserve it.
func (s *Service) UpdateStatus(ctx context.Context, actor string, entity domain.ContentEntity, id string, status domain.ContentStatus) (domain.ContentEntry, error) {
	var updated domain.ContentEntry
	err := ErrNotFound
	s.store.Update(func(current domain.State) []state.Action {
		for _, entry := range current.Content[entity] {
			if entry.ID != id {
				continue
			}
			err = nil
			updated = entry.Clone()
			updated.Status = status
			now := s.now()
			updated.UpdatedAt = now
			if status == domain.StatusPublished {
				updated.PublishedAt = &now
			}
			return []state.Action{
				state.UpsertContentEntry{Entity: entity, Entry: updated},
				s.activity(actor, fmt.Sprintf("Set %s entry %s to %s", entity, updated.Title, status), id, entity),
				state.RefreshAnalytics{},
			}
		}
		return nil
	})
	if err != nil {
		s.toasts.Error("Entry not found", id)
		return domain.ContentEntry{}, err
	}

	s.toasts.Info(fmt.Sprintf("%s status updated", updated.Title), fmt.Sprintf("Now %s", status))
	return updated, nil
}

// Delete removes an entry from its bucket. Unknown ids are no-ops beyond
// the audit entry and toast.
func (s *Service) Delete(ctx context.Context, actor string, entity domain.ContentEntity, id string) {
	s.store.Dispatch(
		state.DeleteContentEntry{Entity: entity, ID: id},
		s.activity(actor, fmt.Sprintf("Deleted %s entry %s", entity, id), id, entity),
		state.RefreshAnalytics{},
	)
	s.logger.Info("entry deleted", "entity", string(entity), "id", id)
	s.toasts.Warning("Entry deleted", id)
}

// RenderBody converts an entry body from Markdown to HTML for previews.
func (s *Service) RenderBody(body string) (string, error) {
	return s.renderer.Render(body)
}

func (s *Service) activity(actor, action, target string, entity domain.ContentEntity) state.PushActivity {
	return state.PushActivity{
		Entry: domain.ActivityEntry{
			ID:         s.newID("activity"),
			Timestamp:  s.now(),
			Actor:      util.FirstNonEmpty(actor, "System"),
			Action:     action,
			Target:     target,
			TargetType: domain.TargetType(entity),
		},
	}
}
