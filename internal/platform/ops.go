package platform

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/rapport/pkg/adapters/fs"
	"github.com/aretw0/rapport/pkg/adapters/sqlite"
	"github.com/aretw0/rapport/pkg/core"
)

// DefaultDataName is the data file base name used when a directory is given.
const DefaultDataName = "addressbook"

// OpenStorage builds and initializes the storage selected by the options.
// The path argument is adapter-specific: a data file (or directory) for "fs",
// a database file for "sqlite".
func OpenStorage(path string, opts ...Option) (core.Storage, error) {
	o := buildOptions(opts)
	return openStorage(context.Background(), path, o)
}

func openStorage(ctx context.Context, path string, o *options) (core.Storage, error) {
	if o.storage != nil {
		return o.storage, nil
	}

	var (
		storage core.Storage
		err     error
	)
	switch o.adapter {
	case AdapterFS, "":
		storage, err = initFS(path, o)
	case AdapterSQLite:
		storage, err = initSQLite(path, o)
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}
	if err != nil {
		return nil, err
	}

	if err := storage.Initialize(ctx); err != nil {
		if c, ok := storage.(core.Closer); ok {
			_ = c.Close()
		}
		return nil, err
	}
	return storage, nil
}

// initFS handles the configuration of the filesystem adapter.
func initFS(path string, o *options) (core.Storage, error) {
	autoInit, _ := o.config["auto_init"].(bool)
	versioning, _ := o.config["versioning"].(bool)
	strict, _ := o.config["strict"].(bool)
	readOnly, _ := o.config["read_only"].(bool)
	debounce, _ := o.config["debounce"].(time.Duration)
	errorHandler, _ := o.config["watcher_error_handler"].(func(error))
	format, _ := o.config["format"].(string)

	dataFile, err := ResolveDataFile(path, format)
	if err != nil {
		return nil, err
	}

	o.logger.Debug("opening fs storage", "path", dataFile, "versioning", versioning, "read_only", readOnly)

	return fs.NewRepository(fs.Config{
		Path:         dataFile,
		AutoInit:     autoInit,
		Versioning:   versioning,
		ReadOnly:     readOnly,
		Strict:       strict,
		Logger:       o.logger,
		Debounce:     debounce,
		ErrorHandler: errorHandler,
	}), nil
}

// initSQLite handles the configuration of the SQLite adapter.
func initSQLite(path string, o *options) (core.Storage, error) {
	readOnly, _ := o.config["read_only"].(bool)
	if versioning, _ := o.config["versioning"].(bool); versioning {
		o.logger.Warn("versioning is not supported by the sqlite adapter, ignoring")
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, DefaultDataName+".db")
	}
	if !readOnly {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	o.logger.Debug("opening sqlite storage", "path", path, "read_only", readOnly)
	return sqlite.Open(sqlite.Config{Path: path, ReadOnly: readOnly, Logger: o.logger})
}

// ResolveDataFile turns a path into a data file path. Directories and paths
// without an extension get "addressbook.<format>" appended (json by default).
func ResolveDataFile(path, format string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("data path is required")
	}

	format = strings.TrimPrefix(strings.ToLower(format), ".")
	switch format {
	case "":
		format = "json"
	case "json", "yaml", "yml":
	default:
		return "", fmt.Errorf("unsupported format %q (want json or yaml)", format)
	}

	info, err := os.Stat(path)
	isDir := err == nil && info.IsDir()
	if isDir || filepath.Ext(path) == "" {
		return filepath.Join(path, DefaultDataName+"."+format), nil
	}
	return path, nil
}
