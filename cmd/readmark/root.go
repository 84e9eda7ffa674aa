package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/readmark/readmark/internal/config"
	"github.com/readmark/readmark/internal/logger"
)

var (
	cfgFile      string
	outputFormat string

	cfg *config.Config
	log logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "readmark",
	Short: "Highlight ReadEra citations in your books",
	Long: `Readmark reads a ReadEra backup, converts a book to a paginated PDF
and adds a highlight annotation for every citation you saved in the reader,
at the exact place the quoted text occurs, even when a quote is split
across a page break.

It also lists the backup's books and citations, verifies that a backup
contains every citation seen across backup history, and can index backups
into a local citation library.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		log, err = logger.NewLogger(logger.LogConfig{Level: cfg.LogLevel})
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.readmark/config.yaml)",
	)
	rootCmd.PersistentFlags().String(
		"backup", "", "ReadEra backup file (default: newest ReadEra*.bak in the backup dir)",
	)
	rootCmd.PersistentFlags().String(
		"backup-dir", ".", "directory searched for ReadEra*.bak files",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "text", "output format: text, yaml or json",
	)

	// Flags win over env and config file.
	cobra.CheckErr(viper.BindPFlag("backup", rootCmd.PersistentFlags().Lookup("backup")))
	cobra.CheckErr(viper.BindPFlag("backup_dir", rootCmd.PersistentFlags().Lookup("backup-dir")))

	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(titlesCmd)
	rootCmd.AddCommand(citationsCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(highlightCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveBackup picks the backup file for commands that read one, logging
// which file was chosen since discovery is implicit.
func resolveBackup() (string, error) {
	path, err := cfg.ResolveBackup()
	if err != nil {
		return "", err
	}
	log.Info("Using %s", path)
	return path, nil
}
