// Package glassvision is the state-management core of the GlassVision CMS:
// a reducer-driven store with domain services for the glass catalog, typed
// content buckets, media library, forms, and block-composed pages, plus
// derived analytics, permission checks, transient notifications, and
// best-effort snapshot persistence.
package glassvision

import (
	"context"
	"time"

	"github.com/ecatuogno1/glassvision/internal/assist"
	"github.com/ecatuogno1/glassvision/internal/catalog"
	"github.com/ecatuogno1/glassvision/internal/content"
	"github.com/ecatuogno1/glassvision/internal/domain"
	"github.com/ecatuogno1/glassvision/internal/forms"
	"github.com/ecatuogno1/glassvision/internal/ident"
	"github.com/ecatuogno1/glassvision/internal/logging"
	"github.com/ecatuogno1/glassvision/internal/media"
	"github.com/ecatuogno1/glassvision/internal/notify"
	"github.com/ecatuogno1/glassvision/internal/pages"
	"github.com/ecatuogno1/glassvision/internal/permissions"
	"github.com/ecatuogno1/glassvision/internal/persist"
	"github.com/ecatuogno1/glassvision/internal/seed"
	"github.com/ecatuogno1/glassvision/internal/state"
	"github.com/ecatuogno1/glassvision/internal/store"
	"github.com/ecatuogno1/glassvision/pkg/interfaces"
)

// Service type aliases so hosts can hold references to the module's
// services.
type (
	CatalogService = catalog.Service
	ContentService = content.Service
	MediaService   = media.Service
	FormsService   = forms.Service
	PagesService   = pages.Service
	Notifications  = notify.Queue
	Assistant      = assist.Client

	// IDGenerator produces identifiers for a given prefix.
	IDGenerator = ident.Generator

	// BlobStore is the persistence backend contract.
	BlobStore = interfaces.BlobStore
	// LoggerProvider supplies named module loggers.
	LoggerProvider = interfaces.LoggerProvider
	// ObjectURLProvider resolves URLs for uploaded media payloads.
	ObjectURLProvider = interfaces.ObjectURLProvider
	// Upload describes an incoming media payload.
	Upload = interfaces.Upload
)

// MemoryBlobStore returns an in-process persistence backend.
func MemoryBlobStore() BlobStore { return persist.NewMemoryStore() }

// FileBlobStore returns a persistence backend that keeps one file per key
// under dir.
func FileBlobStore(dir string) (BlobStore, error) { return persist.NewFileStore(dir) }

// Module wires the store, services, and supporting infrastructure together.
type Module struct {
	cfg    Config
	store  *store.Store
	toasts *notify.Queue

	catalog *catalog.Service
	content *content.Service
	media   *media.Service
	forms   *forms.Service
	pages   *pages.Service

	bridge    *persist.Bridge
	assistant *assist.Client
	perms     permissions.Table
	logger    interfaces.Logger
}

// ModuleOption customises module construction.
type ModuleOption func(*moduleDeps)

type moduleDeps struct {
	loggerProvider interfaces.LoggerProvider
	blobStore      interfaces.BlobStore
	objectURLs     interfaces.ObjectURLProvider
	clock          func() time.Time
	newID          ident.Generator
}

// WithLoggerProvider supplies the logging backend for every module logger.
func WithLoggerProvider(provider interfaces.LoggerProvider) ModuleOption {
	return func(d *moduleDeps) {
		d.loggerProvider = provider
	}
}

// WithBlobStore supplies the persistence backend. Without one, persistence
// is disabled regardless of configuration.
func WithBlobStore(blob interfaces.BlobStore) ModuleOption {
	return func(d *moduleDeps) {
		d.blobStore = blob
	}
}

// WithObjectURLProvider supplies the resolver for uploaded media payloads.
func WithObjectURLProvider(provider interfaces.ObjectURLProvider) ModuleOption {
	return func(d *moduleDeps) {
		d.objectURLs = provider
	}
}

// WithClock overrides time acquisition, primarily for tests.
func WithClock(now func() time.Time) ModuleOption {
	return func(d *moduleDeps) {
		if now != nil {
			d.clock = now
		}
	}
}

// WithIDGenerator overrides identifier generation, primarily for tests.
func WithIDGenerator(generate ident.Generator) ModuleOption {
	return func(d *moduleDeps) {
		if generate != nil {
			d.newID = generate
		}
	}
}

// New validates the configuration, hydrates state from the persisted
// snapshot when one exists, and wires every service.
func New(cfg Config, opts ...ModuleOption) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	deps := moduleDeps{
		clock: time.Now,
		newID: ident.New,
	}
	for _, opt := range opts {
		opt(&deps)
	}

	toasts := notify.NewQueue(
		notify.WithCapacity(cfg.Notifications.Capacity),
		notify.WithTTL(cfg.Notifications.TTL),
		notify.WithClock(deps.clock),
		notify.WithIDGenerator(deps.newID),
	)

	var bridge *persist.Bridge
	if cfg.Persistence.Enabled && deps.blobStore != nil {
		bridge = persist.New(deps.blobStore,
			persist.WithKey(cfg.Persistence.Key),
			persist.WithLoggerProvider(deps.loggerProvider),
		)
	}

	initial := seed.State()
	hydrated := bridge.Load(context.Background(), initial)

	st := store.New(domain.State{}, store.WithLoggerProvider(deps.loggerProvider))
	st.Dispatch(state.SetState{State: hydrated})
	if bridge != nil {
		st.SetMirror(func(snapshot domain.State) {
			bridge.Save(context.Background(), snapshot)
		})
	}

	m := &Module{
		cfg:    cfg,
		store:  st,
		toasts: toasts,
		bridge: bridge,
		perms:  permissions.Default(),
		logger: logging.ModuleLogger(deps.loggerProvider, ""),
		assistant: assist.NewClient(cfg.Assistant.Endpoint,
			assist.WithTimeout(cfg.Assistant.Timeout),
			assist.WithLoggerProvider(deps.loggerProvider),
		),
	}

	m.catalog = catalog.NewService(st, toasts,
		catalog.WithClock(deps.clock),
		catalog.WithIDGenerator(deps.newID),
		catalog.WithLoggerProvider(deps.loggerProvider),
	)
	m.content = content.NewService(st, toasts,
		content.WithClock(deps.clock),
		content.WithIDGenerator(deps.newID),
		content.WithLoggerProvider(deps.loggerProvider),
	)
	m.media = media.NewService(st, toasts,
		media.WithClock(deps.clock),
		media.WithIDGenerator(deps.newID),
		media.WithObjectURLProvider(deps.objectURLs),
		media.WithLoggerProvider(deps.loggerProvider),
	)
	m.forms = forms.NewService(st, toasts,
		forms.WithClock(deps.clock),
		forms.WithIDGenerator(deps.newID),
		forms.WithLoggerProvider(deps.loggerProvider),
	)
	m.pages = pages.NewService(st, toasts,
		pages.WithClock(deps.clock),
		pages.WithIDGenerator(deps.newID),
		pages.WithLoggerProvider(deps.loggerProvider),
	)

	m.logger.Info("glassvision module ready",
		"persistence", bridge != nil,
		"assistant", m.assistant.Configured(),
	)
	return m, nil
}

// State returns a deep copy of the current snapshot.
func (m *Module) State() State {
	return m.store.State()
}

// Catalog exposes glass record operations.
func (m *Module) Catalog() *CatalogService { return m.catalog }

// Content exposes typed entry operations.
func (m *Module) Content() *ContentService { return m.content }

// Media exposes media library operations.
func (m *Module) Media() *MediaService { return m.media }

// Forms exposes form and submission operations.
func (m *Module) Forms() *FormsService { return m.forms }

// Pages exposes page operations.
func (m *Module) Pages() *PagesService { return m.pages }

// Notifications exposes the transient toast queue.
func (m *Module) Notifications() *Notifications { return m.toasts }

// Assistant exposes the optional text-generation client.
func (m *Module) Assistant() *Assistant { return m.assistant }

// Permissions exposes the role grant table.
func (m *Module) Permissions() PermissionTable { return m.perms }

// RoleFor derives the role of an actor identifier.
func (m *Module) RoleFor(actor string) Role {
	return permissions.RoleFromActor(actor)
}

// Can reports whether role may perform action on resource.
func (m *Module) Can(resource PermissionResource, role Role, action PermissionAction) (bool, error) {
	return m.perms.CanPerform(resource, role, action)
}

// Save flushes the current snapshot to the persistence backend. Mutations
// already mirror automatically; this exists for explicit shutdown flushes.
func (m *Module) Save(ctx context.Context) {
	if m.bridge == nil {
		return
	}
	m.bridge.Save(ctx, m.store.State())
}
