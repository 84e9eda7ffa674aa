// Package highlight runs the whole pipeline for one book: resolve its
// citations from a backup, convert the book to a paginated PDF, locate every
// citation in the page text, and write highlight annotations at the matched
// coordinates.
package highlight

import (
	"context"
	"fmt"
	"os"

	"github.com/readmark/readmark/internal/annotate"
	"github.com/readmark/readmark/internal/backup"
	"github.com/readmark/readmark/internal/convert"
	"github.com/readmark/readmark/internal/logger"
	"github.com/readmark/readmark/internal/match"
	"github.com/readmark/readmark/internal/pdftext"
	"github.com/readmark/readmark/models"
)

// Options configures a highlighting run.
type Options struct {
	// BackupPath is the ReadEra backup to read citations from.
	BackupPath string
	// BookPath is the source ebook file. Must match a linked file name in
	// the backup.
	BookPath string
	// DebugDump writes the extracted page text to book.txt when citation
	// parts were not found.
	DebugDump bool
}

// Result is the outcome of a highlighting run.
type Result struct {
	Report  *models.ScanReport
	PDFPath string
}

// Run executes the pipeline and returns the scan report plus the path of
// the annotated PDF. Unmatched citations are reported in the result, not as
// an error; err is reserved for pipeline failures.
func Run(ctx context.Context, opts Options, log logger.Logger) (*Result, error) {
	books, err := backup.Read(opts.BackupPath)
	if err != nil {
		return nil, err
	}
	book, err := backup.ByFile(books, opts.BookPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, opts.BookPath)
	}
	log.Info("Book %q has %d citations", book.Title, len(book.Citations))

	pdfPath := opts.BookPath
	needs, err := convert.NeedsConversion(opts.BookPath)
	if err != nil {
		return nil, err
	}
	if needs {
		pdfPath = convert.PDFPath(opts.BookPath)
		if err := convert.ToPDF(ctx, opts.BookPath, pdfPath, log); err != nil {
			return nil, err
		}
	}

	report, err := scanPDF(pdfPath, book.Citations.Sorted(), opts.DebugDump, log)
	if err != nil {
		return nil, err
	}

	if err := annotate.WritePDF(pdfPath, report.Parts, log); err != nil {
		return nil, err
	}

	return &Result{Report: report, PDFPath: pdfPath}, nil
}

// scanPDF opens the PDF, matches the citations against its pages, and
// optionally dumps the extracted text for unmatched runs.
func scanPDF(pdfPath string, citations []models.Citation, debugDump bool, log logger.Logger) (*models.ScanReport, error) {
	doc, err := pdftext.Open(pdfPath)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	scanner := match.NewScanner(doc, log)
	report := scanner.Scan(citations)
	log.Info("Citations found: %d, not found: %d", report.Found, report.NotFound)

	if !report.OK() && debugDump {
		if err := dumpPageText(doc, "book.txt"); err != nil {
			log.Error("Failed to write debug dump: %v", err)
		} else {
			log.Info("Extracted page text written to book.txt")
		}
	}
	return report, nil
}

func dumpPageText(doc *pdftext.Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	for i := 0; i < doc.PageCount(); i++ {
		if _, err := fmt.Fprintf(f, "%s\n\n", doc.PageText(i)); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	return nil
}
