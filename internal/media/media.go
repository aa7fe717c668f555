// Package media manages the shared asset library.
package media

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
	"github.com/ecatuogno1/glassvision/internal/state"
	"github.com/ecatuogno1/glassvision/internal/store"
	"github.com/ecatuogno1/glassvision/internal/util"
	"github.com/ecatuogno1/glassvision/pkg/interfaces"
)

var (
	// ErrNotFound indicates the referenced asset does not exist.
	ErrNotFound = errors.New("media: asset not found")
	// ErrNameRequired indicates an upload without a usable name.
	ErrNameRequired = errors.New("media: asset name is required")
)

// UploadDraft describes an incoming asset alongside its optional file
// payload descriptor. ID, Kind, Thumbnail, and Size are honored when set;
// zero values are generated or inferred.
type UploadDraft struct {
	ID          string
	Name        string
	File        *interfaces.Upload
	URL         string
	Kind        domain.MediaKind
	Thumbnail   string
	Size        int64
	Tags        []string
	Folder      string
	Description string
	Width       int
	Height      int
}

// AssetPatch carries partial updates for an existing asset. Zero values
// leave the corresponding field unchanged.
type AssetPatch struct {
	Name        string
	Tags        []string
	Folder      string
	Description string
}

// Service coordinates media mutations through the store.
type Service struct {
	store   *store.Store
	toasts  *notify.Queue
	objects interfaces.ObjectURLProvider
	logger  interfaces.Logger
	now     func() time.Time
	newID   ident.Generator
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

// WithObjectURLProvider wires the host resolver for uploaded payloads.
func WithObjectURLProvider(provider interfaces.ObjectURLProvider) Option {
	return func(s *Service) {
		s.objects = provider
	}
}

// WithLoggerProvider wires the media logger.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(s *Service) {
		s.logger = logging.MediaLogger(provider)
	}
}

// NewService constructs the media service.
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

// Upload registers a new asset. Explicit draft values win: a supplied id,
// kind, thumbnail, or size passes through untouched. Otherwise the id is
// generated, kind and size come from the file descriptor (kind defaults to
// document), and a resolved object URL doubles as the thumbnail.
func (s *Service) Upload(ctx context.Context, actor string, draft UploadDraft) (domain.MediaAsset, error) {
	name := strings.TrimSpace(draft.Name)
	if name == "" {
		s.toasts.Error("Media name is required", "Provide a name before uploading.")
		return domain.MediaAsset{}, ErrNameRequired
	}

	id := strings.TrimSpace(draft.ID)
	if id == "" {
		id = s.newID("media")
	}

	asset := domain.MediaAsset{
		ID:          id,
		Name:        name,
		Kind:        draft.Kind,
		URL:         draft.URL,
		Thumbnail:   draft.Thumbnail,
		Size:        draft.Size,
		UploadedAt:  s.now(),
		UploadedBy:  util.FirstNonEmpty(actor, "System"),
		Tags:        util.SanitizeList(draft.Tags),
		Folder:      util.FirstNonEmpty(draft.Folder, "Uploads"),
		Description: draft.Description,
		Width:       draft.Width,
		Height:      draft.Height,
	}
	if asset.Kind == "" {
		asset.Kind = domain.MediaDocument
	}
	if asset.Tags == nil {
		asset.Tags = []string{}
	}

	if draft.File != nil {
		if draft.Kind == "" {
			asset.Kind = domain.MediaKindFromContentType(draft.File.ContentType)
		}
		if asset.Size == 0 {
			asset.Size = draft.File.Size
		}
		if s.objects != nil {
			url, err := s.objects.ObjectURL(*draft.File)
			if err != nil {
				s.logger.Error("failed to resolve object URL", "name", name, "error", err)
				s.toasts.Error("Upload failed", "Could not stage the file payload.")
				return domain.MediaAsset{}, err
			}
			asset.URL = url
			if asset.Thumbnail == "" {
				asset.Thumbnail = url
			}
		}
	}

	s.store.Dispatch(
		state.UpsertMediaAsset{Asset: asset},
		s.activity(actor, fmt.Sprintf("Uploaded media %s", asset.Name), asset.ID),
	)
	s.logger.Info("media uploaded", "id", asset.ID, "kind", string(asset.Kind))
	s.toasts.Success(fmt.Sprintf("%s uploaded", asset.Name), string(asset.Kind))
	return asset, nil
}

// Update applies a partial patch to an existing asset.
func (s *Service) Update(ctx context.Context, actor, id string, patch AssetPatch) (domain.MediaAsset, error) {
	var updated domain.MediaAsset
	err := ErrNotFound
	s.store.Update(func(current domain.State) []state.Action {
		for _, asset := range current.MediaLibrary {
			if asset.ID != id {
				continue
			}
			err = nil
			updated = asset.Clone()
			if strings.TrimSpace(patch.Name) != "" {
				updated.Name = strings.TrimSpace(patch.Name)
			}
			if patch.Tags != nil {
				updated.Tags = util.SanitizeList(patch.Tags)
			}
			if strings.TrimSpace(patch.Folder) != "" {
				updated.Folder = strings.TrimSpace(patch.Folder)
			}
			if patch.Description != "" {
				updated.Description = patch.Description
			}
			return []state.Action{
				state.UpsertMediaAsset{Asset: updated},
				s.activity(actor, fmt.Sprintf("Updated media %s", updated.Name), id),
			}
		}
		return nil
	})
	if err != nil {
		s.toasts.Error("Media not found", id)
		return domain.MediaAsset{}, err
	}

	s.toasts.Info(fmt.Sprintf("%s updated", updated.Name), "")
	return updated, nil
}

// Delete removes an asset. Unknown ids are no-ops beyond the audit entry
// and toast.
func (s *Service) Delete(ctx context.Context, actor, id string) {
	s.store.Dispatch(
		state.DeleteMediaAsset{ID: id},
		s.activity(actor, fmt.Sprintf("Deleted media asset %s", id), id),
	)
	s.logger.Info("media deleted", "id", id)
	s.toasts.Warning("Media removed", id)
}

func (s *Service) activity(actor, action, target string) state.PushActivity {
	return state.PushActivity{
		Entry: domain.ActivityEntry{
			ID:         s.newID("activity"),
			Timestamp:  s.now(),
			Actor:      util.FirstNonEmpty(actor, "System"),
			Action:     action,
			Target:     target,
			TargetType: domain.TargetMedia,
		},
	}
}
