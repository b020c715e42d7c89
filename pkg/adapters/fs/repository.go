package fs

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/rapport/pkg/core"
	"github.com/aretw0/rapport/pkg/git"
)

// LockFile is the git lock created next to the data file.
const LockFile = ".rapport.lock"

// Repository implements core.Storage using a single data file and, optionally, Git.
type Repository struct {
	Path   string
	git    *git.Client
	config Config

	serializers map[string]Serializer

	mu            sync.RWMutex
	lastWritten   [sha256.Size]byte
	watcherActive bool
	lastSave      *time.Time
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Path       string // data file, e.g. "data/addressbook.json"
	AutoInit   bool   // run git init when versioning and the directory is not a repo
	Versioning bool   // commit every save
	ReadOnly   bool
	Strict     bool // reject unknown fields when parsing
	Logger     *slog.Logger
	// Debounce is the quiet period before a burst of file events is reported.
	Debounce time.Duration
	// ErrorHandler receives errors from the watcher loop.
	ErrorHandler func(error)
}

// NewRepository creates a new filesystem-backed repository.
func NewRepository(config Config) *Repository {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.Debounce <= 0 {
		config.Debounce = 100 * time.Millisecond
	}
	return &Repository{
		Path:        config.Path,
		git:         git.NewClient(filepath.Dir(config.Path), LockFile, config.Logger),
		config:      config,
		serializers: DefaultSerializers(config.Strict),
	}
}

func (r *Repository) dir() string {
	return filepath.Dir(r.Path)
}

func (r *Repository) serializer() (Serializer, error) {
	ext := strings.ToLower(filepath.Ext(r.Path))
	s, ok := r.serializers[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported data file format %q (want .json, .yaml or .yml)", ext)
	}
	return s, nil
}

// Initialize performs the necessary setup for the repository (mkdir, git init).
func (r *Repository) Initialize(ctx context.Context) error {
	if _, err := r.serializer(); err != nil {
		return err
	}
	if r.config.ReadOnly {
		return nil
	}

	if err := os.MkdirAll(r.dir(), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if !r.config.Versioning {
		return nil
	}
	if !git.IsInstalled() {
		return fmt.Errorf("git is not installed")
	}

	wasNewRepo := false
	if !r.git.IsRepo(ctx) {
		if !r.config.AutoInit {
			return fmt.Errorf("path is not a git repository: %s", r.dir())
		}
		if err := r.git.Init(ctx); err != nil {
			return fmt.Errorf("failed to git init: %w", err)
		}
		wasNewRepo = true
	}

	mod, err := r.ensureIgnore()
	if err != nil {
		return fmt.Errorf("failed to ensure .gitignore: %w", err)
	}

	if mod && wasNewRepo {
		if err := r.git.Add(ctx, ".gitignore"); err != nil {
			return fmt.Errorf("failed to add .gitignore: %w", err)
		}
		if err := r.git.Commit(ctx, "chore: ignore rapport temp files"); err != nil {
			return fmt.Errorf("failed to commit .gitignore: %w", err)
		}
	}
	return nil
}

// ensureIgnore keeps the lock and temp files out of version control.
func (r *Repository) ensureIgnore() (bool, error) {
	ignorePath := filepath.Join(r.dir(), ".gitignore")
	wanted := []string{LockFile, TempFilePrefix + "*"}

	content, err := os.ReadFile(ignorePath)
	if err != nil && !os.IsNotExist(err) {
		return false, err
	}

	present := make(map[string]bool)
	for _, line := range strings.Split(string(content), "\n") {
		present[strings.TrimSpace(line)] = true
	}

	var missing []string
	for _, w := range wanted {
		if !present[w] {
			missing = append(missing, w)
		}
	}
	if len(missing) == 0 {
		return false, nil
	}

	f, err := os.OpenFile(ignorePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return false, err
	}
	defer f.Close()

	if len(content) > 0 && !bytes.HasSuffix(content, []byte("\n")) {
		if _, err := f.WriteString("\n"); err != nil {
			return false, err
		}
	}
	if _, err := f.WriteString(strings.Join(missing, "\n") + "\n"); err != nil {
		return false, err
	}
	return true, nil
}

// Load reads the data file. A missing file yields an empty address book and core.ErrNoData.
func (r *Repository) Load(ctx context.Context) (*core.AddressBook, error) {
	s, err := r.serializer()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return core.NewAddressBook(), core.ErrNoData
		}
		return nil, fmt.Errorf("failed to read %s: %w", r.Path, err)
	}

	ab, err := s.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", r.Path, err)
	}

	r.mu.Lock()
	r.lastWritten = sha256.Sum256(data)
	r.mu.Unlock()

	r.config.Logger.Debug("address book loaded", "path", r.Path,
		"contacts", len(ab.Contacts()), "meetings", len(ab.Meetings()))
	return ab, nil
}

// Save writes the whole address book atomically and commits it to Git when versioning.
//
// Workflow:
//  1. Serialize using the format of the data file extension.
//  2. Write atomically to disk and remember the content hash, so the watcher
//     can tell our own writes apart from external edits.
//  3. (If versioning) 'git add' and 'git commit' with the reason found in ctx.
func (r *Repository) Save(ctx context.Context, ab core.ReadOnlyAddressBook) error {
	if r.config.ReadOnly {
		return core.ErrReadOnly
	}

	s, err := r.serializer()
	if err != nil {
		return err
	}

	data, err := s.Serialize(ab)
	if err != nil {
		return fmt.Errorf("failed to serialize address book: %w", err)
	}

	if err := os.MkdirAll(r.dir(), 0755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	r.mu.Lock()
	r.lastWritten = sha256.Sum256(data)
	now := time.Now()
	r.lastSave = &now
	r.mu.Unlock()

	if err := writeFileAtomic(r.Path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	if !r.config.Versioning {
		return nil
	}

	unlock, err := r.git.Lock(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire git lock: %w", err)
	}
	defer unlock()

	if err := r.git.Add(ctx, filepath.Base(r.Path)); err != nil {
		return fmt.Errorf("failed to git add: %w", err)
	}

	reason := "update " + filepath.Base(r.Path)
	if val, ok := ctx.Value(core.ChangeReasonKey).(string); ok && val != "" {
		reason = val
	}
	if err := r.git.Commit(ctx, "chore(data): "+reason); err != nil {
		return fmt.Errorf("failed to git commit: %w", err)
	}
	return nil
}

// History returns the last n commit subjects of the data file, newest first.
func (r *Repository) History(ctx context.Context, n int) ([]string, error) {
	if !r.config.Versioning {
		return nil, fmt.Errorf("versioning is disabled")
	}
	return r.git.Log(ctx, n, filepath.Base(r.Path))
}

// isOwnWrite reports whether data matches the last content this repository
// wrote or read.
func (r *Repository) isOwnWrite(data []byte) bool {
	sum := sha256.Sum256(data)
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sum == r.lastWritten
}

var (
	_ core.Storage   = (*Repository)(nil)
	_ core.Watchable = (*Repository)(nil)
)
