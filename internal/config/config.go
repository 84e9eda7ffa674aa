// Package config resolves tool configuration from flags, environment and an
// optional yaml config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/readmark/readmark/internal/backup"
)

// Config holds the tool's settings.
type Config struct {
	// Backup is an explicit backup file path; overrides discovery.
	Backup string `mapstructure:"backup"`
	// BackupDir is searched for ReadEra*.bak when Backup is unset.
	BackupDir string `mapstructure:"backup_dir"`
	// LibraryDB is the sqlite citation-library cache path.
	LibraryDB string `mapstructure:"library_db"`
	// LogLevel is the minimum log level.
	LogLevel string `mapstructure:"log_level"`
}

// Load reads configuration with precedence flags > env > config file >
// defaults. cfgFile overrides the default config locations (./config.yaml,
// ~/.readmark/config.yaml).
func Load(cfgFile string) (*Config, error) {
	viper.SetDefault("backup_dir", ".")
	viper.SetDefault("library_db", defaultLibraryDB())
	viper.SetDefault("log_level", "info")

	// Environment variables with READMARK_ prefix; READERA_BACKUP is the
	// historical name for the backup override and keeps working.
	viper.SetEnvPrefix("READMARK")
	viper.AutomaticEnv()
	if err := viper.BindEnv("backup", "READERA_BACKUP", "READMARK_BACKUP"); err != nil {
		return nil, fmt.Errorf("failed to bind backup env: %w", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.readmark")
	}

	// Config file is optional.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// ResolveBackup returns the backup file to use: the explicit setting if
// present, otherwise the most recently modified backup in the backup dir.
func (c *Config) ResolveBackup() (string, error) {
	if c.Backup != "" {
		if _, err := os.Stat(c.Backup); err != nil {
			return "", fmt.Errorf("backup %s: %w", c.Backup, err)
		}
		return c.Backup, nil
	}
	return backup.Latest(c.BackupDir)
}

func defaultLibraryDB() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "library.db"
	}
	return filepath.Join(homeDir, ".readmark", "library.db")
}
