// Package logic runs user input against the model and keeps storage in sync.
package logic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/aretw0/introspection"

	"github.com/aretw0/rapport/pkg/commands"
	"github.com/aretw0/rapport/pkg/core"
	"github.com/aretw0/rapport/pkg/parser"
)

// ErrSave wraps storage failures after a command already changed the model.
var ErrSave = errors.New("could not save data")

// Historian is implemented by storages that keep a change log.
type Historian interface {
	History(ctx context.Context, n int) ([]string, error)
}

// Manager ties parser, model, view and storage together.
// It is safe for concurrent use; commands run one at a time.
type Manager struct {
	mu      sync.Mutex
	model   *core.ModelManager
	view    commands.View
	storage core.Storage
	logger  *slog.Logger

	executed int
	failed   int
}

// NewManager creates a Manager over an empty model. Call Reload to read storage.
func NewManager(storage core.Storage, prefs core.Prefs, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		model:   core.NewModel(nil, prefs),
		storage: storage,
		logger:  logger,
	}
}

// Execute parses input, runs the command and saves if the command changed data.
// When saving fails the change stays in memory and the returned error wraps ErrSave.
func (m *Manager) Execute(ctx context.Context, input string) (commands.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Debug("executing command", "input", input)

	cmd, err := parser.Parse(input)
	if err != nil {
		m.failed++
		return commands.Result{}, err
	}

	res, err := cmd.Execute(m.model, &m.view)
	if err != nil {
		m.failed++
		m.logger.Debug("command failed", "input", input, "error", err)
		return commands.Result{}, err
	}
	m.executed++

	if !commands.Mutates(cmd) {
		return res, nil
	}

	ctx = context.WithValue(ctx, core.ChangeReasonKey, changeReason(input))
	if err := m.storage.Save(ctx, m.model.AddressBook()); err != nil {
		m.logger.Error("failed to save address book", "error", err)
		return res, fmt.Errorf("%w: %w", ErrSave, err)
	}
	m.logger.Info("address book saved", "command", firstWords(input, 2))
	return res, nil
}

// Reload replaces the model data with what storage holds. Missing data is
// not an error: the model is left empty.
func (m *Manager) Reload(ctx context.Context) error {
	ab, err := m.storage.Load(ctx)
	switch {
	case errors.Is(err, core.ErrNoData):
		m.logger.Info("no data found, starting with an empty address book")
	case err != nil:
		return fmt.Errorf("load address book: %w", err)
	}
	if ab == nil {
		ab = core.NewAddressBook()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.model.SetAddressBook(ab)
	m.model.UpdateFilteredContactList(core.ShowAllContacts)
	m.model.UpdateFilteredMeetingList(core.ShowAllMeetings)
	m.view.Refresh(m.model)
	m.logger.Debug("address book reloaded",
		"contacts", len(ab.Contacts()), "meetings", len(ab.Meetings()))
	return nil
}

// Watch forwards storage change events, if the storage supports them.
func (m *Manager) Watch(ctx context.Context) (<-chan core.Event, error) {
	w, ok := m.storage.(core.Watchable)
	if !ok {
		return nil, errors.New("storage does not support watching")
	}
	return w.Watch(ctx)
}

// History returns recent change descriptions, if the storage keeps them.
func (m *Manager) History(ctx context.Context, n int) ([]string, error) {
	h, ok := m.storage.(Historian)
	if !ok {
		return nil, errors.New("storage does not keep history")
	}
	return h.History(ctx, n)
}

// Snapshot calls fn with the model and view while no command runs.
// fn must not keep references to either after returning.
func (m *Manager) Snapshot(fn func(model core.Model, view *commands.View)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn(m.model, &m.view)
}

// Storage returns the underlying storage.
func (m *Manager) Storage() core.Storage {
	return m.storage
}

// Close releases storage resources.
func (m *Manager) Close() error {
	if c, ok := m.storage.(core.Closer); ok {
		return c.Close()
	}
	return nil
}

// changeReason turns the command line into a single-line commit subject.
func changeReason(input string) string {
	reason := strings.Join(strings.Fields(input), " ")
	if r := []rune(reason); len(r) > 72 {
		reason = string(r[:69]) + "..."
	}
	return reason
}

func firstWords(s string, n int) string {
	fields := strings.Fields(s)
	if len(fields) > n {
		fields = fields[:n]
	}
	return strings.Join(fields, " ")
}

// ManagerState exposes internal state for observability.
type ManagerState struct {
	Executed int    `json:"executed"`
	Failed   int    `json:"failed"`
	Storage  any    `json:"storage,omitempty"`
	Model    any    `json:"model"`
	Adapter  string `json:"adapter"`
}

// State implements introspection.Introspectable.
func (m *Manager) State() any {
	m.mu.Lock()
	defer m.mu.Unlock()

	st := ManagerState{
		Executed: m.executed,
		Failed:   m.failed,
		Model:    m.model.State(),
		Adapter:  "custom",
	}
	if c, ok := m.storage.(introspection.Component); ok {
		st.Adapter = c.ComponentType()
	}
	if i, ok := m.storage.(introspection.Introspectable); ok {
		st.Storage = i.State()
	}
	return st
}

// ComponentType implements introspection.Component.
func (m *Manager) ComponentType() string {
	return "manager"
}

var (
	_ introspection.Introspectable = (*Manager)(nil)
	_ introspection.Component      = (*Manager)(nil)
)
