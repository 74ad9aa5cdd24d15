package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/htmlreg/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/htmlreg/internal/core/domain"
	"github.com/custodia-labs/htmlreg/internal/core/ports/driven"
)

// Ensure Store implements the interfaces.
var (
	_ driven.RegistryWriter = (*Store)(nil)
	_ driven.RegistryReader = (*Store)(nil)
)

// Store is a SQLite-backed registry store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (creating if needed) the database at dbPath and applies
// pending migrations.
func NewStore(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("%w: empty database path", domain.ErrInvalidInput)
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Location returns the database file path.
func (s *Store) Location() string {
	return s.path
}

// migrate runs all pending up migrations in version order.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if name := entry.Name(); strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_registry.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// SaveRegistry stores reg as a new build in one transaction.
func (s *Store) SaveRegistry(ctx context.Context, build domain.Build, reg domain.Registry) error {
	if build.ID == "" {
		return fmt.Errorf("%w: build has no id", domain.ErrInvalidInput)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	_, err = tx.ExecContext(ctx, `
		INSERT INTO builds (id, source_url, built_at, element_count)
		VALUES (?, ?, ?, ?)
	`, build.ID, build.SourceURL, build.BuiltAt.UTC(), len(reg))
	if err != nil {
		return fmt.Errorf("saving build: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO elements (build_id, tag, description, type, category, url, is_void)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for tag, el := range reg {
		if _, err := stmt.ExecContext(ctx, build.ID, tag, el.Description, string(el.Type),
			el.Category, el.URL, el.IsVoid); err != nil {
			return fmt.Errorf("saving element %s: %w", tag, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// LoadRegistry returns the elements of the most recent build.
// Returns domain.ErrNotFound when no build has been stored.
func (s *Store) LoadRegistry(ctx context.Context) (domain.Registry, error) {
	builds, err := s.ListBuilds(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(builds) == 0 {
		return nil, domain.ErrNotFound
	}
	return s.LoadBuild(ctx, builds[0].ID)
}

// LoadBuild returns the elements of a specific build.
func (s *Store) LoadBuild(ctx context.Context, buildID string) (domain.Registry, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM builds WHERE id = ?", buildID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting build: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT tag, description, type, category, url, is_void
		FROM elements WHERE build_id = ?
	`, buildID)
	if err != nil {
		return nil, fmt.Errorf("querying elements: %w", err)
	}
	defer rows.Close()

	reg := make(domain.Registry)
	for rows.Next() {
		var (
			el  domain.Element
			typ string
		)
		if err := rows.Scan(&el.Tag, &el.Description, &typ, &el.Category, &el.URL, &el.IsVoid); err != nil {
			return nil, fmt.Errorf("scanning element: %w", err)
		}
		el.Type = domain.ElementType(typ)
		reg[el.Tag] = el
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating elements: %w", err)
	}

	if err := reg.Validate(); err != nil {
		return nil, err
	}
	return reg, nil
}

// ListBuilds returns builds newest first. limit <= 0 returns all builds.
func (s *Store) ListBuilds(ctx context.Context, limit int) ([]domain.Build, error) {
	query := `SELECT id, source_url, built_at, element_count FROM builds ORDER BY built_at DESC, rowid DESC`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying builds: %w", err)
	}
	defer rows.Close()

	var builds []domain.Build
	for rows.Next() {
		var (
			b       domain.Build
			builtAt sql.NullTime
		)
		if err := rows.Scan(&b.ID, &b.SourceURL, &builtAt, &b.ElementCount); err != nil {
			return nil, fmt.Errorf("scanning build: %w", err)
		}
		if builtAt.Valid {
			b.BuiltAt = builtAt.Time.UTC()
		}
		builds = append(builds, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating builds: %w", err)
	}
	return builds, nil
}
