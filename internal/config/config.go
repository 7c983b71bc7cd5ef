// Package config reads and writes the dewey settings kept under .dewey/
// inside a knowledge-base root.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DirName is the hidden settings directory inside a KB root.
	DirName = ".dewey"

	// DefaultKnowledgeDir is used whenever config.json is absent or unusable.
	DefaultKnowledgeDir = "docs"

	configFile = "config.json"
)

// Config is the content of .dewey/config.json.
type Config struct {
	KnowledgeDir string `json:"knowledge_dir"`
}

// Path returns the location of config.json for kbRoot.
func Path(kbRoot string) string {
	return filepath.Join(kbRoot, DirName, configFile)
}

// ReadKnowledgeDir returns the configured knowledge directory name.
// A missing, unreadable or malformed config, or an empty value, yields
// DefaultKnowledgeDir; it never returns an error.
func ReadKnowledgeDir(kbRoot string) string {
	data, err := os.ReadFile(Path(kbRoot))
	if err != nil {
		return DefaultKnowledgeDir
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultKnowledgeDir
	}
	if cfg.KnowledgeDir == "" {
		return DefaultKnowledgeDir
	}
	return cfg.KnowledgeDir
}

// KnowledgePath returns the absolute-or-relative path of the knowledge directory.
func KnowledgePath(kbRoot string) string {
	return filepath.Join(kbRoot, ReadKnowledgeDir(kbRoot))
}

// WriteConfig writes .dewey/config.json, creating .dewey/ if needed,
// and returns the path written.
func WriteConfig(kbRoot, knowledgeDir string) (string, error) {
	dir := filepath.Join(kbRoot, DirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s dir: %w", DirName, err)
	}

	data, err := json.MarshalIndent(Config{KnowledgeDir: knowledgeDir}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}

	path := Path(kbRoot)
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return "", fmt.Errorf("failed to write config: %w", err)
	}
	return path, nil
}
