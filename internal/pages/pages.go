// Package pages manages block-composed pages. Block order is author-arranged
// and preserved exactly as supplied.
package pages

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
	"github.com/ecatuogno1/glassvision/internal/notify"
	"github.com/ecatuogno1/glassvision/internal/slugs"
	"github.com/ecatuogno1/glassvision/internal/state"
	"github.com/ecatuogno1/glassvision/internal/store"
	"github.com/ecatuogno1/glassvision/internal/util"
	"github.com/ecatuogno1/glassvision/pkg/interfaces"
)

// ErrNotFound indicates the referenced page does not exist.
var ErrNotFound = errors.New("pages: page not found")

const upsertPageMessageType = "cms.pages.upsert"

// PageDraft carries the author-provided fields of a page. A nil Blocks slice
// preserves the existing arrangement on update.
type PageDraft struct {
	ID     string               `json:"id,omitempty"`
	Title  string               `json:"title"`
	Slug   string               `json:"slug,omitempty"`
	Status domain.ContentStatus `json:"status,omitempty"`
	Owner  string               `json:"owner,omitempty"`
	Blocks domain.BlockList     `json:"blocks,omitempty"`
}

// Type implements command.Message.
func (PageDraft) Type() string { return upsertPageMessageType }

// Validate ensures the draft carries a usable title.
func (d PageDraft) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Title, validation.Required, validation.By(func(any) error {
			if strings.TrimSpace(d.Title) == "" {
				return errors.New("title must not be blank")
			}
			return nil
		})),
	)
}

// Service coordinates page mutations through the store.
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

// WithLoggerProvider wires the pages logger.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(s *Service) {
		s.logger = logging.PagesLogger(provider)
	}
}

// NewService constructs the pages service.
func NewService(st *store.Store, toasts *notify.Queue, opts ...Option) *Service {
	s := &Service{
		store:  st,
		toasts: toasts,
		logger: logging.NoOp(),
		now:    time.Now,
		newID:  ident.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Upsert saves a page, creating it when the identifier is absent or
// unknown. On update, omitted status, owner, and blocks fall back to the
// existing page rather than being cleared.
func (s *Service) Upsert(ctx context.Context, actor string, draft PageDraft) (domain.PageDefinition, error) {
	if err := command.ValidateMessage(draft); err != nil {
		s.toasts.Error("Page title is required", "Provide a title before saving the page.")
		return domain.PageDefinition{}, err
	}

	title := strings.TrimSpace(draft.Title)
	var saved domain.PageDefinition
	created := false

	s.store.Update(func(current domain.State) []state.Action {
		var existing *domain.PageDefinition
		if draft.ID != "" {
			for i := range current.Pages {
				if current.Pages[i].ID == draft.ID {
					existing = &current.Pages[i]
					break
				}
			}
		}

		page := domain.PageDefinition{
			ID:        draft.ID,
			Title:     title,
			Status:    draft.Status,
			Owner:     util.FirstNonEmpty(draft.Owner, actor),
			UpdatedAt: s.now(),
		}
		if existing == nil {
			created = true
			if page.ID == "" {
				page.ID = s.newID("page")
			}
		} else {
			page.Owner = util.FirstNonEmpty(draft.Owner, existing.Owner, actor)
		}

		page.Slug = slugs.Slugify(util.FirstNonEmpty(draft.Slug, title))
		if page.Slug == "" {
			page.Slug = page.ID
		}

		switch {
		case draft.Blocks != nil:
			page.Blocks = draft.Blocks.Clone()
		case existing != nil:
			page.Blocks = existing.Blocks.Clone()
		default:
			page.Blocks = domain.BlockList{}
		}
		if page.Status == "" {
			if existing != nil {
				page.Status = existing.Status
			} else {
				page.Status = domain.StatusDraft
			}
		}

		saved = page
		verb := "Updated"
		if created {
			verb = "Created"
		}
		return []state.Action{
			state.UpsertPageDefinition{Page: page},
			s.activity(actor, fmt.Sprintf("%s page %s", verb, page.Title), page.ID),
		}
	})

	s.logger.Info("page saved", "id", saved.ID, "created", created)
	s.toasts.Success(fmt.Sprintf("%s saved", saved.Title), fmt.Sprintf("Page is now %s", saved.Status))
	return saved, nil
}

// Delete removes a page. Unknown ids are no-ops beyond the audit entry and
// toast.
func (s *Service) Delete(ctx context.Context, actor, id string) {
	s.store.Dispatch(
		state.DeletePageDefinition{ID: id},
		s.activity(actor, fmt.Sprintf("Deleted page %s", id), id),
	)
	s.logger.Info("page deleted", "id", id)
	s.toasts.Warning("Page removed", id)
}

func (s *Service) activity(actor, action, target string) state.PushActivity {
	return state.PushActivity{
		Entry: domain.ActivityEntry{
			ID:         s.newID("activity"),
			Timestamp:  s.now(),
			Actor:      util.FirstNonEmpty(actor, "System"),
			Action:     action,
			Target:     target,
			TargetType: domain.TargetPages,
		},
	}
}
