// Package persist bridges the in-memory snapshot to a host-provided blob
// store. Loading is best effort: an absent or unreadable blob falls back to
// the seeded snapshot without failing startup.
package persist

import (
	"context"
	"encoding/json"

	"github.com/ecatuogno1/glassvision/internal/domain"
	"github.com/ecatuogno1/glassvision/internal/logging"
	"github.com/ecatuogno1/glassvision/pkg/interfaces"
)

// DefaultKey is the blob key the snapshot is stored under.
const DefaultKey = "glassvision.cms-state"

// Bridge moves snapshots between the store and a blob backend.
type Bridge struct {
	blob   interfaces.BlobStore
	key    string
	logger interfaces.Logger
}

// Option customises bridge construction.
type Option func(*Bridge)

// WithKey overrides the blob key. Blank values keep the default.
func WithKey(key string) Option {
	return func(b *Bridge) {
		if key != "" {
			b.key = key
		}
	}
}

// WithLoggerProvider wires the persistence logger.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(b *Bridge) {
		b.logger = logging.PersistLogger(provider)
	}
}

// New constructs a bridge over the given blob store. A nil store disables
// persistence: loads return the fallback and saves are dropped.
func New(blob interfaces.BlobStore, opts ...Option) *Bridge {
	bridge := &Bridge{
		blob:   blob,
		key:    DefaultKey,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(bridge)
	}
	return bridge
}

// Load returns the persisted snapshot merged section by section over the
// fallback. Sections absent from the blob keep their fallback values, so
// older blobs survive schema growth. Any read, validation, or decode failure
// logs a warning and yields the fallback untouched.
func (b *Bridge) Load(ctx context.Context, fallback domain.State) domain.State {
	if b == nil || b.blob == nil {
		return fallback
	}

	raw, ok, err := b.blob.Get(ctx, b.key)
	if err != nil {
		b.logger.Warn("failed to read persisted snapshot", "key", b.key, "error", err)
		return fallback
	}
	if !ok {
		return fallback
	}

	schema, err := loadSchema()
	if err != nil {
		b.logger.Warn("snapshot schema unavailable", "error", err)
		return fallback
	}

	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		b.logger.Warn("persisted snapshot is not valid JSON", "key", b.key, "error", err)
		return fallback
	}
	if err := schema.Validate(decoded); err != nil {
		b.logger.Warn("persisted snapshot failed schema validation", "key", b.key, "error", err)
		return fallback
	}

	var sections map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &sections); err != nil {
		b.logger.Warn("persisted snapshot has unexpected shape", "key", b.key, "error", err)
		return fallback
	}

	merged := fallback.Clone()
	targets := map[string]any{
		"glassRecords": &merged.GlassRecords,
		"content":      &merged.Content,
		"mediaLibrary": &merged.MediaLibrary,
		"forms":        &merged.Forms,
		"pages":        &merged.Pages,
		"activity":     &merged.Activity,
		"analytics":    &merged.Analytics,
	}
	for name, target := range targets {
		section, present := sections[name]
		if !present {
			continue
		}
		if err := json.Unmarshal(section, target); err != nil {
			b.logger.Warn("persisted snapshot section is corrupt", "key", b.key, "section", name, "error", err)
			return fallback
		}
	}

	b.logger.Info("restored persisted snapshot", "key", b.key)
	return merged
}

// Save writes the snapshot. Failures are logged, never propagated: the
// in-memory state remains authoritative even when the backend is down.
func (b *Bridge) Save(ctx context.Context, snapshot domain.State) {
	if b == nil || b.blob == nil {
		return
	}

	encoded, err := json.Marshal(snapshot)
	if err != nil {
		b.logger.Error("failed to encode snapshot", "key", b.key, "error", err)
		return
	}
	if err := b.blob.Set(ctx, b.key, string(encoded)); err != nil {
		b.logger.Error("failed to persist snapshot", "key", b.key, "error", err)
	}
}
