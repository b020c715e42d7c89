package rapport

import (
	"log/slog"
	"time"

	"github.com/aretw0/rapport/internal/platform"
	"github.com/aretw0/rapport/pkg/core"
	"github.com/aretw0/rapport/pkg/logic"
)

// Version is the library version reported by the CLI.
const Version = "0.1.0"

// --- Types ---

// Manager runs commands against the address book and persists the changes.
type Manager = logic.Manager

// Config is the content of rapport.yaml.
type Config = platform.Config

// --- Configuration ---

// Option defines a functional option for configuring Rapport.
type Option = platform.Option

// WithAutoInit enables automatic initialization (creates directories and runs git init).
func WithAutoInit(auto bool) Option {
	return platform.WithAutoInit(auto)
}

// WithVersioning enables or disables committing every save to Git.
func WithVersioning(enabled bool) Option {
	return platform.WithVersioning(enabled)
}

// WithLogger sets the logger for every component.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStorage injects a custom storage adapter.
func WithStorage(s core.Storage) Option {
	return platform.WithStorage(s)
}

// WithAdapter selects the storage adapter by name ("fs" or "sqlite").
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithFormat sets the data file format ("json" or "yaml") for directory paths.
func WithFormat(format string) Option {
	return platform.WithFormat(format)
}

// WithStrict makes file parsing reject unknown fields.
func WithStrict(strict bool) Option {
	return platform.WithStrict(strict)
}

// WithReadOnly enables read-only mode.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithWatchDebounce sets the quiet period of the file watcher.
func WithWatchDebounce(d time.Duration) Option {
	return platform.WithWatchDebounce(d)
}

// WithWatcherErrorHandler registers a callback for watch loop errors.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// New opens the storage at path and returns a Manager loaded with its data.
func New(path string, opts ...Option) (*Manager, error) {
	return platform.New(path, opts...)
}

// OpenStorage builds and initializes only the storage adapter.
func OpenStorage(path string, opts ...Option) (core.Storage, error) {
	return platform.OpenStorage(path, opts...)
}

// LoadConfig reads rapport.yaml (if present) and environment overrides.
func LoadConfig(path string) (*Config, error) {
	return platform.LoadConfig(path)
}

// FindRoot looks upwards from dir for a .rapport directory or rapport.yaml.
func FindRoot(dir string) (string, error) {
	return platform.FindRoot(dir)
}
