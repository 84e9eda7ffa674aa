package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/readmark/readmark/internal/backup"
	"github.com/readmark/readmark/internal/storage"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Index all backups into the local citation library",
	Long: `Reads every ReadEra backup in the backup directory and merges its
books and citations into the sqlite citation library, so listing commands
can cover backup history without re-reading the archives. Importing the
same backup twice is a no-op.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		backups, err := backup.List(cfg.BackupDir)
		if err != nil {
			return err
		}
		if len(backups) == 0 {
			return backup.ErrNoBackup
		}

		if err := os.MkdirAll(filepath.Dir(cfg.LibraryDB), 0755); err != nil {
			return fmt.Errorf("failed to create library directory: %w", err)
		}
		store, err := storage.NewSQLiteStore(cfg.LibraryDB)
		if err != nil {
			return err
		}
		defer store.Close()

		for _, path := range backups {
			books, err := backup.Read(path)
			if err != nil {
				return err
			}
			if err := store.ImportBooks(cmd.Context(), books); err != nil {
				return fmt.Errorf("failed to import %s: %w", path, err)
			}
			log.Info("Imported %s (%d books)", path, len(books))
		}

		fmt.Printf("Imported %d backups into %s\n", len(backups), cfg.LibraryDB)
		return nil
	},
}
