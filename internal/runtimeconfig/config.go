// Package runtimeconfig aggregates the module's configuration surface.
// Fields intentionally use simple types so host applications can unmarshal
// them from whatever configuration source they already carry.
package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrLoggingLevelInvalid indicates an unsupported logging level.
	ErrLoggingLevelInvalid = errors.New("cms config: logging level is invalid")
	// ErrLoggingFormatInvalid indicates an unsupported logging format.
	ErrLoggingFormatInvalid = errors.New("cms config: logging format is invalid")
	// ErrPersistenceKeyRequired indicates persistence was enabled with a
	// blank storage key.
	ErrPersistenceKeyRequired = errors.New("cms config: persistence key is required when persistence is enabled")
	// ErrAssistantEndpointInvalid indicates a malformed assistant endpoint.
	ErrAssistantEndpointInvalid = errors.New("cms config: assistant endpoint must be an http(s) URL")
	// ErrNotificationCapacityInvalid indicates a non-positive toast capacity.
	ErrNotificationCapacityInvalid = errors.New("cms config: notification capacity must be positive")
	// ErrNotificationTTLInvalid indicates a non-positive toast lifetime.
	ErrNotificationTTLInvalid = errors.New("cms config: notification ttl must be positive")
)

// Config aggregates the runtime settings of the CMS module.
type Config struct {
	Logging       LoggingConfig
	Persistence   PersistenceConfig
	Assistant     AssistantConfig
	Notifications NotificationConfig
}

// LoggingConfig captures options forwarded to the logging provider.
type LoggingConfig struct {
	Level     string
	Format    string
	AddSource bool
}

// PersistenceConfig controls snapshot persistence.
type PersistenceConfig struct {
	Enabled bool
	Key     string
}

// AssistantConfig wires the optional text-generation endpoint.
type AssistantConfig struct {
	Endpoint string
	Timeout  time.Duration
}

// NotificationConfig bounds the toast queue.
type NotificationConfig struct {
	Capacity int
	TTL      time.Duration
}

// DefaultConfig returns the settings a host gets without any tuning.
func DefaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Persistence: PersistenceConfig{
			Enabled: true,
			Key:     "glassvision.cms-state",
		},
		Assistant: AssistantConfig{
			Timeout: 30 * time.Second,
		},
		Notifications: NotificationConfig{
			Capacity: 5,
			TTL:      8 * time.Second,
		},
	}
}

// Validate checks internal consistency before the module boots.
func (cfg Config) Validate() error {
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
		return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
	}
	if cfg.Persistence.Enabled && strings.TrimSpace(cfg.Persistence.Key) == "" {
		return ErrPersistenceKeyRequired
	}
	if endpoint := strings.TrimSpace(cfg.Assistant.Endpoint); endpoint != "" {
		if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
			return fmt.Errorf("%w: %s", ErrAssistantEndpointInvalid, endpoint)
		}
	}
	if cfg.Notifications.Capacity <= 0 {
		return ErrNotificationCapacityInvalid
	}
	if cfg.Notifications.TTL <= 0 {
		return ErrNotificationTTLInvalid
	}
	return nil
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
