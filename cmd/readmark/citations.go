package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/readmark/readmark/internal/backup"
	"github.com/readmark/readmark/internal/storage"
)

var citationsFromLibrary bool

var citationsCmd = &cobra.Command{
	Use:   "citations <file or title substring>",
	Short: "Show a book's citations in reading order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if citationsFromLibrary {
			return citationsFromStore(cmd, args[0])
		}

		path, err := resolveBackup()
		if err != nil {
			return err
		}
		books, err := backup.Read(path)
		if err != nil {
			return err
		}
		book, err := backup.Resolve(books, args[0])
		if err != nil {
			return fmt.Errorf("%w: %s", err, args[0])
		}

		citations := book.Citations.Sorted()
		if done, err := printStructured(citations); done {
			return err
		}
		fmt.Printf("Book: %s\n", book.Title)
		for _, c := range citations {
			fmt.Printf("- %s\n\n", c.Text)
		}
		return nil
	},
}

func citationsFromStore(cmd *cobra.Command, query string) error {
	store, err := storage.NewSQLiteStore(cfg.LibraryDB)
	if err != nil {
		return err
	}
	defer store.Close()

	book, err := store.FindBook(cmd.Context(), query)
	if err != nil {
		return fmt.Errorf("%w: %s", err, query)
	}
	citations, err := store.Citations(cmd.Context(), book.URI)
	if err != nil {
		return err
	}

	if done, err := printStructured(citations); done {
		return err
	}
	fmt.Printf("Book: %s\n", book.Title)
	for _, c := range citations {
		fmt.Printf("- %s\n\n", c.Text)
	}
	return nil
}

func init() {
	citationsCmd.Flags().BoolVar(
		&citationsFromLibrary, "from-library", false, "read from the imported citation library instead of a backup",
	)
}
