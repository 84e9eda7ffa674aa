package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/readmark/readmark/internal/highlight"
)

var highlightDebug bool

var highlightCmd = &cobra.Command{
	Use:   "highlight <book-file>",
	Short: "Convert a book to PDF and highlight its citations",
	Long: `Converts the book to a PDF (with Calibre's ebook-convert; a book
that already is a PDF is annotated directly) and adds a highlight
annotation for every citation the backup holds for it. Citations split
across a page break get one highlight per page. Exits non-zero when any
citation part could not be located.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveBackup()
		if err != nil {
			return err
		}

		result, err := highlight.Run(cmd.Context(), highlight.Options{
			BackupPath: path,
			BookPath:   args[0],
			DebugDump:  highlightDebug,
		}, log)
		if err != nil {
			return err
		}

		report := result.Report
		fmt.Printf("Produced highlighted PDF file: %s\n", result.PDFPath)
		fmt.Printf("Citations found: %d\n", report.Found)
		if report.OK() {
			fmt.Println("OK")
			return nil
		}

		fmt.Printf("Citations not found: %d\n", report.NotFound)
		for _, text := range report.Missing() {
			fmt.Printf("  %q\n", text)
		}
		return errors.New("some citations were not found")
	},
}

func init() {
	highlightCmd.Flags().BoolVar(
		&highlightDebug, "debug", false, "dump extracted page text to book.txt when citations are missing",
	)
}
