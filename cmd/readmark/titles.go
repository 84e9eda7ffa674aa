package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/readmark/readmark/internal/backup"
	"github.com/readmark/readmark/internal/storage"
)

var titlesFromLibrary bool

var titlesCmd = &cobra.Command{
	Use:   "titles",
	Short: "List books that have citations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if titlesFromLibrary {
			return titlesFromStore(cmd)
		}

		path, err := resolveBackup()
		if err != nil {
			return err
		}
		books, err := backup.Read(path)
		if err != nil {
			return err
		}

		type entry struct {
			Title     string `json:"title" yaml:"title"`
			Citations int    `json:"citations" yaml:"citations"`
		}
		var entries []entry
		for _, book := range books {
			if len(book.Citations) > 0 {
				entries = append(entries, entry{Title: book.Title, Citations: len(book.Citations)})
			}
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].Title < entries[j].Title })

		if done, err := printStructured(entries); done {
			return err
		}
		for _, e := range entries {
			fmt.Printf("%s, Citations: %d\n", e.Title, e.Citations)
		}
		return nil
	},
}

func titlesFromStore(cmd *cobra.Command) error {
	store, err := storage.NewSQLiteStore(cfg.LibraryDB)
	if err != nil {
		return err
	}
	defer store.Close()

	books, err := store.ListBooks(cmd.Context())
	if err != nil {
		return err
	}
	if done, err := printStructured(books); done {
		return err
	}
	for _, b := range books {
		if b.CitationCount > 0 {
			fmt.Printf("%s, Citations: %d\n", b.Title, b.CitationCount)
		}
	}
	return nil
}

func init() {
	titlesCmd.Flags().BoolVar(
		&titlesFromLibrary, "from-library", false, "list from the imported citation library instead of a backup",
	)
}
