package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/strindex/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/strindex/internal/core/domain"
	"github.com/custodia-labs/strindex/internal/core/ports/driven"
)

// dbFileName is the database file inside the data directory.
const dbFileName = "strindex.db"

// Store is a SQLite-backed string store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.strindex/data/strindex.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".strindex", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFileName)

	// WAL mode lets readers proceed while a writer holds the lock
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

// StringStore returns a StringStore interface backed by this store.
func (s *Store) StringStore() driven.StringStore {
	return &stringStore{store: s}
}

// migrate applies pending .up.sql migrations in version order and records
// each applied version.
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
		// "001_strings.up.sql" -> 1
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
		if err := s.apply(version, string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

func (s *Store) apply(version int, script string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.Exec(script); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
		return err
	}
	return tx.Commit()
}

// ==================== String Store ====================

// stringStore implements driven.StringStore.
type stringStore struct {
	store *Store
}

var _ driven.StringStore = (*stringStore)(nil)

const selectColumns = `
	SELECT id, value, length, is_palindrome, unique_characters, word_count,
		sha256_hash, character_frequency_map, created_at
	FROM strings`

// Insert stores the record unless its id or value is already present.
func (s *stringStore) Insert(ctx context.Context, record *domain.StringRecord) error {
	freqJSON, err := json.Marshal(record.Properties.CharacterFrequencyMap)
	if err != nil {
		return fmt.Errorf("marshalling frequency map: %w", err)
	}

	p := record.Properties
	res, err := s.store.db.ExecContext(ctx, `
		INSERT INTO strings (id, value, length, is_palindrome, unique_characters, word_count,
			sha256_hash, character_frequency_map, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT DO NOTHING
	`, record.ID, record.Value, p.Length, p.IsPalindrome, p.UniqueCharacters, p.WordCount,
		p.SHA256Hash, string(freqJSON), record.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting string: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking insert: %w", err)
	}
	if n == 0 {
		return domain.ErrAlreadyExists
	}
	return nil
}

// GetByValue retrieves the record for an exact value.
func (s *stringStore) GetByValue(ctx context.Context, value string) (*domain.StringRecord, error) {
	row := s.store.db.QueryRowContext(ctx, selectColumns+" WHERE value = ?", value)
	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return record, err
}

// Find returns matching records in insertion order.
func (s *stringStore) Find(ctx context.Context, pred domain.Predicate) ([]domain.StringRecord, error) {
	where, args, err := compilePredicate(pred)
	if err != nil {
		return nil, err
	}

	query := selectColumns
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY rowid"

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying strings: %w", err)
	}
	defer rows.Close()

	var records []domain.StringRecord //nolint:prealloc // size unknown from query
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating strings: %w", err)
	}

	return records, nil
}

// DeleteByValue removes the record for an exact value.
func (s *stringStore) DeleteByValue(ctx context.Context, value string) error {
	res, err := s.store.db.ExecContext(ctx, "DELETE FROM strings WHERE value = ?", value)
	if err != nil {
		return fmt.Errorf("deleting string: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Count returns the number of stored records.
func (s *stringStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM strings").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting strings: %w", err)
	}
	return n, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*domain.StringRecord, error) {
	var record domain.StringRecord
	var freqJSON string
	p := &record.Properties

	if err := row.Scan(&record.ID, &record.Value, &p.Length, &p.IsPalindrome, &p.UniqueCharacters,
		&p.WordCount, &p.SHA256Hash, &freqJSON, &record.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning string: %w", err)
	}

	if err := json.Unmarshal([]byte(freqJSON), &p.CharacterFrequencyMap); err != nil {
		return nil, fmt.Errorf("unmarshalling frequency map: %w", err)
	}
	return &record, nil
}

// columns maps predicate fields to table columns.
var columns = map[domain.Field]string{
	domain.FieldValue:            "value",
	domain.FieldLength:           "length",
	domain.FieldIsPalindrome:     "is_palindrome",
	domain.FieldUniqueCharacters: "unique_characters",
	domain.FieldWordCount:        "word_count",
}

// compilePredicate turns a predicate into a parameterised WHERE clause.
// An empty predicate compiles to an empty clause.
func compilePredicate(pred domain.Predicate) (string, []any, error) {
	clauses := make([]string, 0, len(pred.Conditions))
	args := make([]any, 0, len(pred.Conditions))

	for _, c := range pred.Conditions {
		col, ok := columns[c.Field]
		if !ok {
			return "", nil, fmt.Errorf("unsupported field %q", c.Field)
		}

		switch c.Op {
		case domain.OpEq:
			clauses = append(clauses, col+" = ?")
		case domain.OpGte:
			clauses = append(clauses, col+" >= ?")
		case domain.OpLte:
			clauses = append(clauses, col+" <= ?")
		case domain.OpContains:
			if c.Field != domain.FieldValue {
				return "", nil, fmt.Errorf("contains is not supported on %q", c.Field)
			}
			// instr is a literal substring test, unlike LIKE or GLOB
			clauses = append(clauses, "instr("+col+", ?) > 0")
		default:
			return "", nil, fmt.Errorf("unsupported operator %q", c.Op)
		}
		args = append(args, c.Value)
	}

	return strings.Join(clauses, " AND "), args, nil
}
