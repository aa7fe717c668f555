package interfaces

import "context"

// Logger is the leveled logging surface the module writes to. Hosts supply
// an implementation through a LoggerProvider; the glassvision/internal/logging
// package has a go-logger adapter and a no-op default for hosts that bring
// nothing.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	WithContext(ctx context.Context) Logger
}

// LoggerProvider hands out loggers by name. Names follow the module's
// dotted scheme (cms, cms.catalog, cms.store, ...); a provider may scope
// children per name or return one shared logger for all of them.
type LoggerProvider interface {
	GetLogger(name string) Logger
}

// FieldsLogger marks loggers that can carry persistent structured fields.
// The logging helpers type-assert for it and silently skip enrichment when
// the backend cannot attach fields.
type FieldsLogger interface {
	WithFields(fields map[string]any) Logger
}
