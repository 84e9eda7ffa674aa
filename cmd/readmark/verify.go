package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/readmark/readmark/internal/backup"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check which backups contain every known citation",
	Long: `Reads all ReadEra backups in the backup directory, unions their
citations, and reports for each backup whether it is complete or which
citations it is missing. Useful before deleting old backups.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := backup.Verify(cfg.BackupDir)
		if err != nil {
			return err
		}
		if done, err := printStructured(results); done {
			return err
		}
		for _, res := range results {
			fmt.Printf("Checking %s\n", res.Backup)
			if res.Complete {
				fmt.Println("  Contains all citations")
				continue
			}
			for _, title := range res.MissingBooks {
				fmt.Printf("  Missing book: %s\n", title)
			}
			for _, mc := range res.MissingCitations {
				fmt.Printf("  Missing citation: %s / %q\n", mc.BookTitle, mc.Citation.Text)
			}
		}
		return nil
	},
}
