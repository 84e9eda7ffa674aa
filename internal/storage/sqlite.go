package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/readmark/readmark/models"
)

// ErrNotFound indicates that no stored book matched the query.
var ErrNotFound = errors.New("book not found in library")

// SQLiteStore implements the Store interface using SQLite
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the database tables if they don't exist. The citations
// primary key is the full (text, order key, note) tuple so re-importing a
// backup never duplicates rows.
func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS books (
		uri TEXT PRIMARY KEY,
		title TEXT,
		filename TEXT,
		imported_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS citations (
		uri TEXT NOT NULL,
		text TEXT NOT NULL,
		order_key INTEGER NOT NULL,
		note TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (uri, text, order_key, note),
		FOREIGN KEY (uri) REFERENCES books(uri) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_citations_uri ON citations(uri);
	CREATE INDEX IF NOT EXISTS idx_books_filename ON books(filename);
	`

	_, err := s.db.Exec(schema)
	return err
}

// ImportBooks merges a backup's books and citations into the library.
func (s *SQLiteStore) ImportBooks(ctx context.Context, books map[string]*models.BookInfo) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for uri, book := range books {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO books (uri, title, filename) VALUES (?, ?, ?)
			ON CONFLICT(uri) DO UPDATE SET title = excluded.title, filename = excluded.filename
		`, uri, book.Title, book.Filename)
		if err != nil {
			return fmt.Errorf("failed to insert book %s: %w", uri, err)
		}

		for c := range book.Citations {
			_, err = tx.ExecContext(ctx, `
				INSERT OR IGNORE INTO citations (uri, text, order_key, note) VALUES (?, ?, ?, ?)
			`, uri, c.Text, c.OrderKey, c.Note)
			if err != nil {
				return fmt.Errorf("failed to insert citation: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListBooks returns all stored books sorted by title.
func (s *SQLiteStore) ListBooks(ctx context.Context) ([]BookRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT b.uri, b.title, b.filename, COUNT(c.text)
		FROM books b LEFT JOIN citations c ON c.uri = b.uri
		GROUP BY b.uri ORDER BY b.title
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	var books []BookRecord
	for rows.Next() {
		var b BookRecord
		if err := rows.Scan(&b.URI, &b.Title, &b.Filename, &b.CitationCount); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

// FindBook locates a book by exact file name or title substring.
func (s *SQLiteStore) FindBook(ctx context.Context, query string) (*BookRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT b.uri, b.title, b.filename, COUNT(c.text)
		FROM books b LEFT JOIN citations c ON c.uri = b.uri
		WHERE b.filename = ?1 OR b.title LIKE '%' || ?1 || '%'
		GROUP BY b.uri ORDER BY b.title LIMIT 1
	`, query)

	var b BookRecord
	if err := row.Scan(&b.URI, &b.Title, &b.Filename, &b.CitationCount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find book: %w", err)
	}
	return &b, nil
}

// Citations returns a book's citations in order-key order.
func (s *SQLiteStore) Citations(ctx context.Context, uri string) ([]models.Citation, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT text, order_key, note FROM citations
		WHERE uri = ? ORDER BY order_key, text
	`, uri)
	if err != nil {
		return nil, fmt.Errorf("failed to query citations: %w", err)
	}
	defer rows.Close()

	var citations []models.Citation
	for rows.Next() {
		var c models.Citation
		if err := rows.Scan(&c.Text, &c.OrderKey, &c.Note); err != nil {
			return nil, fmt.Errorf("failed to scan citation: %w", err)
		}
		citations = append(citations, c)
	}
	return citations, rows.Err()
}

// Close releases the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
