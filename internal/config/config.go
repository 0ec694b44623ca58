package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures linkshelf settings.
type Config struct {
	CatalogPath   string // empty uses the embedded dataset
	ExportDir     string // local directory or s3://bucket/prefix
	ArchivePrefix string
	ArchiveFolder string
	LogPath       string
	S3Region      string
}

const (
	defaultConfigPath    = "~/.config/linkshelf/config.toml"
	defaultExportDir     = "~/Downloads"
	defaultLogPath       = "~/.local/share/linkshelf/linkshelf.log"
	defaultArchivePrefix = "Buildings_Links_Archive"
	defaultArchiveFolder = "Buildings_Links_Archive"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		ExportDir:     mustExpand(defaultExportDir),
		ArchivePrefix: defaultArchivePrefix,
		ArchiveFolder: defaultArchiveFolder,
		LogPath:       mustExpand(defaultLogPath),
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		CatalogPath   string  `toml:"catalog_path"`
		ExportDir     string  `toml:"export_dir"`
		ArchivePrefix string  `toml:"archive_prefix"`
		ArchiveFolder *string `toml:"archive_folder"`
		LogPath       string  `toml:"log_path"`
		S3Region      string  `toml:"s3_region"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if p := strings.TrimSpace(raw.CatalogPath); p != "" {
		cfg.CatalogPath = mustExpand(p)
	}
	if dir := strings.TrimSpace(raw.ExportDir); dir != "" {
		if strings.HasPrefix(dir, "s3://") {
			cfg.ExportDir = dir
		} else {
			cfg.ExportDir = mustExpand(dir)
		}
	}
	if prefix := strings.TrimSpace(raw.ArchivePrefix); prefix != "" {
		cfg.ArchivePrefix = prefix
	}
	// An explicit empty folder stores entries at the archive root.
	if raw.ArchiveFolder != nil {
		cfg.ArchiveFolder = strings.Trim(strings.TrimSpace(*raw.ArchiveFolder), "/")
	}
	if p := strings.TrimSpace(raw.LogPath); p != "" {
		cfg.LogPath = mustExpand(p)
	}
	cfg.S3Region = strings.TrimSpace(raw.S3Region)

	return cfg, nil
}

// ExportsToS3 reports whether archives are uploaded instead of written locally.
func (c Config) ExportsToS3() bool {
	return strings.HasPrefix(c.ExportDir, "s3://")
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
