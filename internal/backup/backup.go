// Package backup reads ReadEra backup archives. A backup is a zip file whose
// library.json describes every book in the library together with its saved
// citations.
package backup

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/readmark/readmark/models"
)

// ErrNoBackup indicates that no ReadEra backup file could be located.
var ErrNoBackup = errors.New("no ReadEra backup found")

// ErrBookNotFound indicates that a backup holds no entry for the requested book.
var ErrBookNotFound = errors.New("book not found in backup")

// Pattern matches ReadEra backup file names.
const Pattern = "ReadEra*.bak"

const libraryFileName = "library.json"

// Wire format of library.json, reduced to the fields this tool consumes.
type libraryFile struct {
	Docs []libraryDoc `json:"docs"`
}

type libraryDoc struct {
	URI       string        `json:"uri"`
	Data      docData       `json:"data"`
	Links     []docLink     `json:"links"`
	Citations []docCitation `json:"citations"`
}

type docData struct {
	DocTitle         string `json:"doc_title"`
	DocFileNameTitle string `json:"doc_file_name_title"`
}

type docLink struct {
	FileName string `json:"file_name"`
}

type docCitation struct {
	NoteBody  string `json:"note_body"`
	NotePage  int    `json:"note_page"`
	NoteIndex int    `json:"note_index"`
	NoteExtra string `json:"note_extra"`
}

// Read parses a backup archive into a map of document URI to book info.
// Duplicate citations within a document collapse via the citation set.
func Read(path string) (map[string]*models.BookInfo, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open backup %s: %w", path, err)
	}
	defer zr.Close()

	f, err := zr.Open(libraryFileName)
	if err != nil {
		return nil, fmt.Errorf("backup %s has no %s: %w", path, libraryFileName, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", libraryFileName, err)
	}

	var library libraryFile
	if err := sonic.Unmarshal(data, &library); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", libraryFileName, err)
	}

	books := make(map[string]*models.BookInfo)
	for _, doc := range library.Docs {
		if len(doc.Links) > 1 {
			return nil, fmt.Errorf("doc %s has %d links, expected at most one", doc.URI, len(doc.Links))
		}

		title := doc.Data.DocTitle
		if title == "" {
			title = doc.Data.DocFileNameTitle
		}

		var filename string
		if len(doc.Links) == 1 {
			filename = doc.Links[0].FileName
		}

		book := &models.BookInfo{
			Title:     title,
			Filename:  filename,
			Citations: make(models.CitationSet),
		}
		for _, c := range doc.Citations {
			book.Citations.Add(models.Citation{
				Text:     c.NoteBody,
				OrderKey: c.NotePage + c.NoteIndex,
				Note:     c.NoteExtra,
			})
		}
		books[doc.URI] = book
	}

	return books, nil
}

// List returns the backup files in dir, newest name first (ReadEra backup
// names embed their creation date, so reverse-lexical order is newest
// first).
func List(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, Pattern))
	if err != nil {
		return nil, fmt.Errorf("failed to glob backups: %w", err)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(matches)))
	return matches, nil
}

// Latest returns the most recently modified backup file in dir.
func Latest(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, Pattern))
	if err != nil {
		return "", fmt.Errorf("failed to glob backups: %w", err)
	}
	if len(matches) == 0 {
		return "", ErrNoBackup
	}

	latest := ""
	var latestMod int64
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			return "", fmt.Errorf("failed to stat %s: %w", m, err)
		}
		if latest == "" || info.ModTime().UnixNano() > latestMod {
			latest = m
			latestMod = info.ModTime().UnixNano()
		}
	}
	return latest, nil
}

// Merge unions src's citations into dst, keyed by document URI. Books absent
// from dst are added as-is.
func Merge(dst, src map[string]*models.BookInfo) {
	for uri, book := range src {
		existing, ok := dst[uri]
		if !ok {
			dst[uri] = book
			continue
		}
		for c := range book.Citations {
			existing.Citations.Add(c)
		}
	}
}

// ByFile finds the book whose backing file name equals filename.
func ByFile(books map[string]*models.BookInfo, filename string) (*models.BookInfo, error) {
	base := filepath.Base(filename)
	for _, book := range books {
		if book.Filename == base {
			return book, nil
		}
	}
	return nil, ErrBookNotFound
}

// ByTitle finds the first book whose title contains the given substring.
func ByTitle(books map[string]*models.BookInfo, substring string) (*models.BookInfo, error) {
	for _, book := range books {
		if strings.Contains(book.Title, substring) {
			return book, nil
		}
	}
	return nil, ErrBookNotFound
}

// Resolve locates a book either by an existing file on disk or by a title
// substring.
func Resolve(books map[string]*models.BookInfo, bookArg string) (*models.BookInfo, error) {
	if _, err := os.Stat(bookArg); err == nil {
		return ByFile(books, bookArg)
	}
	return ByTitle(books, bookArg)
}
