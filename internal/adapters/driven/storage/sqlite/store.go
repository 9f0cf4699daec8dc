// Package sqlite provides the persistent problem library over a SQLite
// database file.
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

	"github.com/solvio-labs/simplexa/internal/adapters/driven/problemfile"
	"github.com/solvio-labs/simplexa/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/solvio-labs/simplexa/internal/core/domain"
	"github.com/solvio-labs/simplexa/internal/core/ports/driven"
)

// Store is the SQLite-backed storage for the problem library.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.simplexa/data/library.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".simplexa", "data")
	}

	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "library.db")

	// WAL mode so a TUI session and a CLI invocation can share the file
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
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

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// ProblemStore returns a ProblemStore interface backed by this store.
func (s *Store) ProblemStore() driven.ProblemStore {
	return &problemStore{store: s}
}

// migrate runs all pending migrations.
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
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
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

// problemStore implements driven.ProblemStore.
type problemStore struct {
	store *Store
}

var _ driven.ProblemStore = (*problemStore)(nil)

// Save stores or updates a problem. The definition is serialised with the
// same TOML codec used for problem files.
func (s *problemStore) Save(ctx context.Context, p *domain.Problem) error {
	definition, err := problemfile.Encode(p.Name, &p.Definition)
	if err != nil {
		return fmt.Errorf("encoding definition: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO problems (id, name, definition, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			definition = excluded.definition,
			updated_at = excluded.updated_at
	`, p.ID, p.Name, string(definition), p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("saving problem: %w", err)
	}
	return nil
}

// Get retrieves a problem by ID.
func (s *problemStore) Get(ctx context.Context, id string) (*domain.Problem, error) {
	return s.scanOne(s.store.db.QueryRowContext(ctx, `
		SELECT id, name, definition, created_at, updated_at
		FROM problems WHERE id = ?
	`, id))
}

// GetByName retrieves a problem by its unique name.
func (s *problemStore) GetByName(ctx context.Context, name string) (*domain.Problem, error) {
	return s.scanOne(s.store.db.QueryRowContext(ctx, `
		SELECT id, name, definition, created_at, updated_at
		FROM problems WHERE name = ?
	`, name))
}

// List returns all problems, ordered by name.
func (s *problemStore) List(ctx context.Context) ([]domain.Problem, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, name, definition, created_at, updated_at
		FROM problems ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("listing problems: %w", err)
	}
	defer rows.Close()

	var problems []domain.Problem
	for rows.Next() {
		p, err := scanProblem(rows.Scan)
		if err != nil {
			return nil, err
		}
		problems = append(problems, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating problems: %w", err)
	}
	return problems, nil
}

// Delete removes a problem by ID.
func (s *problemStore) Delete(ctx context.Context, id string) error {
	res, err := s.store.db.ExecContext(ctx, "DELETE FROM problems WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting problem: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: problem %q", domain.ErrNotFound, id)
	}
	return nil
}

func (s *problemStore) scanOne(row *sql.Row) (*domain.Problem, error) {
	p, err := scanProblem(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func scanProblem(scan func(...any) error) (*domain.Problem, error) {
	var p domain.Problem
	var definition string
	if err := scan(&p.ID, &p.Name, &definition, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning problem: %w", err)
	}

	_, lp, err := problemfile.Parse([]byte(definition))
	if err != nil {
		return nil, fmt.Errorf("decoding definition: %w", err)
	}
	p.Definition = *lp
	return &p, nil
}
