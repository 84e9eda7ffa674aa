// Package convert turns a source ebook into a paginated PDF by shelling out
// to Calibre's ebook-convert.
package convert

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/readmark/readmark/internal/logger"
)

// ErrConverterMissing indicates that the ebook-convert binary is not on PATH.
var ErrConverterMissing = errors.New("ebook-convert not found in PATH (install Calibre)")

const converterBinary = "ebook-convert"

// PDFPath returns the output PDF path for a given book file: same directory
// and base name, .pdf extension.
func PDFPath(bookPath string) string {
	ext := filepath.Ext(bookPath)
	return strings.TrimSuffix(bookPath, ext) + ".pdf"
}

// NeedsConversion sniffs the book file and reports whether it must be run
// through the converter. A book that already is a PDF is used as-is.
func NeedsConversion(bookPath string) (bool, error) {
	f, err := os.Open(bookPath)
	if err != nil {
		return false, fmt.Errorf("failed to open book %s: %w", bookPath, err)
	}
	defer f.Close()

	head := make([]byte, 512)
	n, err := f.Read(head)
	if err != nil && n == 0 {
		return false, fmt.Errorf("failed to read book %s: %w", bookPath, err)
	}
	return DetectFormat(head[:n]) != "pdf", nil
}

// ToPDF converts the book at in to a PDF at out. Only really exercised with
// EPUB inputs; ebook-convert handles the rest of its formats the same way.
func ToPDF(ctx context.Context, in, out string, log logger.Logger) error {
	bin, err := exec.LookPath(converterBinary)
	if err != nil {
		return ErrConverterMissing
	}

	log.Info("Converting %s -> %s", in, out)
	cmd := exec.CommandContext(ctx, bin, in, out)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s failed: %w\n%s", converterBinary, err, output)
	}
	return nil
}
