// Package sqlite stores the address book in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/introspection"
	_ "modernc.org/sqlite"

	"github.com/aretw0/rapport/pkg/adapters/record"
	"github.com/aretw0/rapport/pkg/core"
)

//go:embed schema.sql
var schema string

// Config holds the configuration for the SQLite store.
type Config struct {
	Path     string
	ReadOnly bool
	Logger   *slog.Logger
}

// Store implements core.Storage on a SQLite database.
// Each contact and meeting is one row holding its JSON payload.
type Store struct {
	sqlDB    *sql.DB
	config   Config
	lastSave *time.Time
}

// Open opens a SQLite store. The schema is created by Initialize.
func Open(config Config) (*Store, error) {
	if strings.TrimSpace(config.Path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	dsn := "file:" + filepath.Clean(config.Path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	if config.ReadOnly {
		dsn += "&mode=ro"
	}
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	return &Store{sqlDB: sqlDB, config: config}, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Initialize creates the tables if they do not exist.
func (s *Store) Initialize(ctx context.Context) error {
	if err := s.sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping sqlite db: %w", err)
	}
	if s.config.ReadOnly {
		return nil
	}
	if _, err := s.sqlDB.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Load reads every row back into an address book. An empty database yields an
// empty address book and core.ErrNoData.
func (s *Store) Load(ctx context.Context) (*core.AddressBook, error) {
	var rec record.Book

	contacts, err := loadPayloads[record.Contact](ctx, s.sqlDB, `SELECT payload FROM contacts ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("load contacts: %w", err)
	}
	meetings, err := loadPayloads[record.Meeting](ctx, s.sqlDB, `SELECT payload FROM meetings ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("load meetings: %w", err)
	}
	rec.Contacts, rec.Meetings = contacts, meetings

	if len(contacts) == 0 && len(meetings) == 0 {
		return core.NewAddressBook(), core.ErrNoData
	}

	ab, err := rec.AddressBook()
	if err != nil {
		return nil, fmt.Errorf("decode address book: %w", err)
	}
	s.config.Logger.Debug("address book loaded", "path", s.config.Path,
		"contacts", len(contacts), "meetings", len(meetings))
	return ab, nil
}

func loadPayloads[T any](ctx context.Context, db *sql.DB, query string) ([]T, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		if isMissingTable(err) {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var v T
		if err := json.Unmarshal([]byte(payload), &v); err != nil {
			return nil, fmt.Errorf("decode payload: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func isMissingTable(err error) bool {
	return err != nil && strings.Contains(err.Error(), "no such table")
}

// Save replaces all rows with the contents of ab in a single transaction.
func (s *Store) Save(ctx context.Context, ab core.ReadOnlyAddressBook) (err error) {
	if s.config.ReadOnly {
		return core.ErrReadOnly
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, tx.Rollback())
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM contacts`); err != nil {
		return fmt.Errorf("clear contacts: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM meetings`); err != nil {
		return fmt.Errorf("clear meetings: %w", err)
	}

	for i, c := range ab.Contacts() {
		payload, mErr := json.Marshal(record.FromContact(c))
		if mErr != nil {
			return fmt.Errorf("encode contact %s: %w", c.Name(), mErr)
		}
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO contacts (position, name, payload) VALUES (?, ?, ?)`,
			i, c.Name().String(), string(payload),
		); err != nil {
			return fmt.Errorf("insert contact %s: %w", c.Name(), err)
		}
	}
	for i, m := range ab.Meetings() {
		payload, mErr := json.Marshal(record.FromMeeting(m))
		if mErr != nil {
			return fmt.Errorf("encode meeting %d: %w", m.ID(), mErr)
		}
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO meetings (id, position, payload) VALUES (?, ?, ?)`,
			m.ID(), i, string(payload),
		); err != nil {
			return fmt.Errorf("insert meeting %d: %w", m.ID(), err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	now := time.Now()
	s.lastSave = &now
	return nil
}

// StoreState exposes internal state for observability.
type StoreState struct {
	Path     string     `json:"path"`
	ReadOnly bool       `json:"read_only"`
	OpenConn int        `json:"open_connections"`
	LastSave *time.Time `json:"last_save,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	return StoreState{
		Path:     s.config.Path,
		ReadOnly: s.config.ReadOnly,
		OpenConn: s.sqlDB.Stats().OpenConnections,
		LastSave: s.lastSave,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "sqlite"
}

var (
	_ core.Storage                 = (*Store)(nil)
	_ core.Closer                  = (*Store)(nil)
	_ introspection.Introspectable = (*Store)(nil)
	_ introspection.Component      = (*Store)(nil)
)
