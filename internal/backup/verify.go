package backup

import (
	"github.com/readmark/readmark/models"
)

// MissingCitation names a citation a backup lacks.
type MissingCitation struct {
	BookTitle string
	Citation  models.Citation
}

// VerifyResult is the completeness check for one backup file against the
// union of all backups in the same directory.
type VerifyResult struct {
	Backup           string
	Complete         bool
	MissingBooks     []string
	MissingCitations []MissingCitation
}

// Verify reads every backup in dir, unions their citations per document,
// and reports for each backup whether it holds the whole union.
func Verify(dir string) ([]VerifyResult, error) {
	backups, err := List(dir)
	if err != nil {
		return nil, err
	}
	if len(backups) == 0 {
		return nil, ErrNoBackup
	}

	all := make(map[string]*models.BookInfo)
	perBackup := make(map[string]map[string]*models.BookInfo, len(backups))
	for _, path := range backups {
		books, err := Read(path)
		if err != nil {
			return nil, err
		}
		perBackup[path] = books

		union := make(map[string]*models.BookInfo, len(books))
		for uri, book := range books {
			copied := &models.BookInfo{
				Title:     book.Title,
				Filename:  book.Filename,
				Citations: make(models.CitationSet, len(book.Citations)),
			}
			for c := range book.Citations {
				copied.Citations.Add(c)
			}
			union[uri] = copied
		}
		Merge(all, union)
	}

	results := make([]VerifyResult, 0, len(backups))
	for _, path := range backups {
		books := perBackup[path]
		res := VerifyResult{Backup: path, Complete: true}
		for uri, allBook := range all {
			book, ok := books[uri]
			if !ok {
				res.Complete = false
				res.MissingBooks = append(res.MissingBooks, allBook.Title)
				continue
			}
			for c := range allBook.Citations {
				if !book.Citations.Contains(c) {
					res.Complete = false
					res.MissingCitations = append(res.MissingCitations, MissingCitation{
						BookTitle: allBook.Title,
						Citation:  c,
					})
				}
			}
		}
		results = append(results, res)
	}
	return results, nil
}
