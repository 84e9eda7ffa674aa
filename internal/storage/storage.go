// Package storage caches the citation library extracted from backups so
// listing commands can run across backup history without re-reading every
// archive.
package storage

import (
	"context"

	"github.com/readmark/readmark/models"
)

// BookRecord is a stored book with its citation count.
type BookRecord struct {
	URI           string `json:"uri" yaml:"uri"`
	Title         string `json:"title" yaml:"title"`
	Filename      string `json:"filename,omitempty" yaml:"filename,omitempty"`
	CitationCount int    `json:"citation_count" yaml:"citation_count"`
}

// Store defines the interface for the citation library cache.
type Store interface {
	// ImportBooks merges a backup's books and citations into the library.
	// Citations already present collapse silently, mirroring the backup
	// reader's set semantics.
	ImportBooks(ctx context.Context, books map[string]*models.BookInfo) error

	// ListBooks returns all stored books sorted by title.
	ListBooks(ctx context.Context) ([]BookRecord, error)

	// FindBook locates a book by exact file name or title substring.
	FindBook(ctx context.Context, query string) (*BookRecord, error)

	// Citations returns a book's citations in order-key order.
	Citations(ctx context.Context, uri string) ([]models.Citation, error)

	// Close releases the underlying database.
	Close() error
}
