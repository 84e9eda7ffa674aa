package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/readmark/readmark/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "library.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore() error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleBooks() map[string]*models.BookInfo {
	return map[string]*models.BookInfo{
		"doc://one": {
			Title:    "A Tale of Two Cities",
			Filename: "tale.epub",
			Citations: models.CitationSet{
				{Text: "best of times", OrderKey: 4}:                   {},
				{Text: "worst of times", OrderKey: 5, Note: "really?"}: {},
			},
		},
		"doc://two": {
			Title:     "Empty Book",
			Citations: models.CitationSet{},
		},
	}
}

func TestImportAndList(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.ImportBooks(ctx, sampleBooks()); err != nil {
		t.Fatalf("ImportBooks() error: %v", err)
	}

	books, err := store.ListBooks(ctx)
	if err != nil {
		t.Fatalf("ListBooks() error: %v", err)
	}
	if len(books) != 2 {
		t.Fatalf("len(books) = %d, want 2", len(books))
	}
	if books[0].Title != "A Tale of Two Cities" || books[1].Title != "Empty Book" {
		t.Errorf("books not sorted by title: %v, %v", books[0].Title, books[1].Title)
	}
	if books[0].CitationCount != 2 {
		t.Errorf("CitationCount = %d, want 2", books[0].CitationCount)
	}
	if books[1].CitationCount != 0 {
		t.Errorf("CitationCount = %d, want 0", books[1].CitationCount)
	}
}

func TestImportIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.ImportBooks(ctx, sampleBooks()); err != nil {
		t.Fatalf("ImportBooks() error: %v", err)
	}
	if err := store.ImportBooks(ctx, sampleBooks()); err != nil {
		t.Fatalf("second ImportBooks() error: %v", err)
	}

	citations, err := store.Citations(ctx, "doc://one")
	if err != nil {
		t.Fatalf("Citations() error: %v", err)
	}
	if len(citations) != 2 {
		t.Errorf("len(citations) = %d after re-import, want 2", len(citations))
	}
}

func TestCitationsOrdered(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.ImportBooks(ctx, sampleBooks()); err != nil {
		t.Fatalf("ImportBooks() error: %v", err)
	}

	citations, err := store.Citations(ctx, "doc://one")
	if err != nil {
		t.Fatalf("Citations() error: %v", err)
	}
	if len(citations) != 2 {
		t.Fatalf("len(citations) = %d, want 2", len(citations))
	}
	if citations[0].OrderKey != 4 || citations[1].OrderKey != 5 {
		t.Errorf("citations out of order: %+v", citations)
	}
	if citations[1].Note != "really?" {
		t.Errorf("note = %q, want %q", citations[1].Note, "really?")
	}
}

func TestFindBook(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.ImportBooks(ctx, sampleBooks()); err != nil {
		t.Fatalf("ImportBooks() error: %v", err)
	}

	byFile, err := store.FindBook(ctx, "tale.epub")
	if err != nil {
		t.Fatalf("FindBook(file) error: %v", err)
	}
	if byFile.URI != "doc://one" {
		t.Errorf("FindBook(file) = %q, want doc://one", byFile.URI)
	}

	byTitle, err := store.FindBook(ctx, "Two Cities")
	if err != nil {
		t.Fatalf("FindBook(title) error: %v", err)
	}
	if byTitle.URI != "doc://one" {
		t.Errorf("FindBook(title) = %q, want doc://one", byTitle.URI)
	}

	if _, err := store.FindBook(ctx, "no such book"); err != ErrNotFound {
		t.Errorf("FindBook(missing) error = %v, want ErrNotFound", err)
	}
}
