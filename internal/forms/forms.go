// Package forms manages form definitions and their submission intake.
package forms

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	command "github.com/goliatone/go-command"

	"github.com/ecatuogno1/glassvision/internal/commands"
	"github.com/ecatuogno1/glassvision/internal/domain"
	"github.com/ecatuogno1/glassvision/internal/ident"
	"github.com/ecatuogno1/glassvision/internal/logging"
	"github.com/ecatuogno1/glassvision/internal/notify"
	"github.com/ecatuogno1/glassvision/internal/state"
	"github.com/ecatuogno1/glassvision/internal/store"
	"github.com/ecatuogno1/glassvision/internal/util"
	"github.com/ecatuogno1/glassvision/pkg/interfaces"
)

// ErrNotFound indicates the referenced form does not exist.
var ErrNotFound = errors.New("forms: form not found")

const (
	upsertFormMessageType = "cms.forms.upsert"
	submitMessageType     = "cms.forms.submit"
)

// FormDraft carries the author-provided fields of a form definition.
type FormDraft struct {
	ID          string                       `json:"id,omitempty"`
	Name        string                       `json:"name"`
	Description string                       `json:"description,omitempty"`
	Fields      []domain.FormFieldDefinition `json:"fields,omitempty"`
	Owner       string                       `json:"owner,omitempty"`
}

// Type implements command.Message.
func (FormDraft) Type() string { return upsertFormMessageType }

// Validate ensures the draft carries a usable name.
func (d FormDraft) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required, validation.By(func(any) error {
			if strings.TrimSpace(d.Name) == "" {
				return errors.New("name must not be blank")
			}
			return nil
		})),
	)
}

// SubmitMessage requests intake of one response to a form.
type SubmitMessage struct {
	FormID      string         `json:"formId"`
	SubmittedBy string         `json:"submittedBy,omitempty"`
	Values      map[string]any `json:"values"`
}

// Type implements command.Message.
func (SubmitMessage) Type() string { return submitMessageType }

// Validate ensures the message targets a form.
func (m SubmitMessage) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.FormID, validation.Required),
	)
}

// Service coordinates form mutations through the store. Submissions run
// through the shared command handler so they pick up validation, timeout,
// and logging uniformly.
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

// WithLoggerProvider wires the forms logger.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(s *Service) {
		s.logger = logging.FormsLogger(provider)
	}
}

// NewService constructs the forms service.
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

// UpsertForm saves a form definition, creating it when the identifier is
// absent or unknown. Updates merge onto the existing form: submissions always
// survive, and omitted fields or a blank description keep their current
// values instead of being cleared.
func (s *Service) UpsertForm(ctx context.Context, actor string, draft FormDraft) (domain.FormDefinition, error) {
	if err := command.ValidateMessage(draft); err != nil {
		s.toasts.Error("Form name is required", "Provide a name before saving the form.")
		return domain.FormDefinition{}, err
	}

	name := strings.TrimSpace(draft.Name)
	var saved domain.FormDefinition
	created := false

	s.store.Update(func(current domain.State) []state.Action {
		var existing *domain.FormDefinition
		if draft.ID != "" {
			for i := range current.Forms {
				if current.Forms[i].ID == draft.ID {
					existing = &current.Forms[i]
					break
				}
			}
		}

		form := domain.FormDefinition{
			ID:          draft.ID,
			Name:        name,
			Description: draft.Description,
			Fields:      append([]domain.FormFieldDefinition(nil), draft.Fields...),
			Submissions: []domain.FormSubmission{},
			UpdatedAt:   s.now(),
			Owner:       util.FirstNonEmpty(draft.Owner, actor),
		}
		if existing != nil {
			// Merge onto the existing form: omitted fields and a blank
			// description survive a rename-only update.
			kept := existing.Clone()
			form.Submissions = kept.Submissions
			form.Owner = util.FirstNonEmpty(draft.Owner, existing.Owner, actor)
			if draft.Fields == nil {
				form.Fields = kept.Fields
			}
			if strings.TrimSpace(draft.Description) == "" {
				form.Description = existing.Description
			}
		} else {
			created = true
			if form.ID == "" {
				form.ID = s.newID("form")
			}
		}
		if form.Fields == nil {
			form.Fields = []domain.FormFieldDefinition{}
		}

		saved = form
		verb := "Updated"
		if created {
			verb = "Created"
		}
		return []state.Action{
			state.UpsertFormDefinition{Form: form},
			s.activity(actor, fmt.Sprintf("%s form %s", verb, form.Name), form.ID),
		}
	})

	s.logger.Info("form saved", "id", saved.ID, "created", created)
	s.toasts.Success(fmt.Sprintf("%s saved", saved.Name), "Form definition stored")
	return saved, nil
}

// Submit records one response to a form. The message is validated and
// executed through the shared command handler, so blank form ids are
// rejected before any state is touched.
func (s *Service) Submit(ctx context.Context, actor, formID string, values map[string]any) (domain.FormSubmission, error) {
	var submission domain.FormSubmission

	handler := commands.NewHandler(func(ctx context.Context, msg SubmitMessage) error {
		intakeErr := ErrNotFound
		var formName string

		s.store.Update(func(current domain.State) []state.Action {
			for _, form := range current.Forms {
				if form.ID != msg.FormID {
					continue
				}
				intakeErr = nil
				formName = form.Name
				submission = domain.FormSubmission{
					ID:          s.newID("submission"),
					FormID:      form.ID,
					SubmittedAt: s.now(),
					SubmittedBy: util.FirstNonEmpty(msg.SubmittedBy, "Anonymous"),
					Status:      domain.SubmissionNew,
					Values:      msg.Values,
				}.Clone()
				return []state.Action{
					// Committed values get their own copy so neither the
					// caller's map nor the returned submission aliases state.
					state.AppendFormSubmission{FormID: form.ID, Submission: submission.Clone()},
					s.activity(msg.SubmittedBy, fmt.Sprintf("New submission for %s", formName), form.ID),
					state.RefreshAnalytics{},
				}
			}
			return nil
		})
		if intakeErr != nil {
			s.toasts.Error("Form not found", msg.FormID)
			return intakeErr
		}

		s.toasts.Success("Submission received", formName)
		return nil
	},
		commands.WithLogger[SubmitMessage](s.logger),
		commands.WithOperation[SubmitMessage]("forms.submit"),
	)

	msg := SubmitMessage{FormID: formID, SubmittedBy: actor, Values: values}
	if err := handler.Execute(ctx, msg); err != nil {
		return domain.FormSubmission{}, err
	}
	return submission, nil
}

// UpdateSubmissionStatus moves a submission along the review workflow. The
// mutation targets the (form, submission) pair and silently no-ops in the
// reducer when either is unknown.
func (s *Service) UpdateSubmissionStatus(ctx context.Context, actor, formID, submissionID string, status domain.SubmissionStatus) {
	s.store.Dispatch(
		state.UpdateSubmissionStatus{FormID: formID, SubmissionID: submissionID, Status: status},
		s.activity(actor, fmt.Sprintf("Marked submission %s as %s", submissionID, status), formID),
		state.RefreshAnalytics{},
	)
	s.toasts.Info("Submission updated", string(status))
}

func (s *Service) activity(actor, action, target string) state.PushActivity {
	return state.PushActivity{
		Entry: domain.ActivityEntry{
			ID:         s.newID("activity"),
			Timestamp:  s.now(),
			Actor:      util.FirstNonEmpty(actor, "System"),
			Action:     action,
			Target:     target,
			TargetType: domain.TargetForms,
		},
	}
}
