package health

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/dewey-kb/dewey/internal/config"
	"github.com/dewey-kb/dewey/internal/markdown"
)

// Auditor runs both tiers over one knowledge base.
type Auditor struct {
	// KBRoot is the knowledge-base root (the directory holding .dewey/).
	KBRoot string

	// Parser reads documents. Default: markdown.FileParser
	Parser markdown.Parser

	// Registry holds the Tier 2 triggers.
	Registry *TriggerRegistry

	// ExcludePatterns for files/directories to skip, relative to the
	// knowledge directory.
	ExcludePatterns []string
}

// NewAuditor creates an auditor with the filesystem parser and all nine
// triggers configured from cfg.
func NewAuditor(kbRoot string, cfg config.HealthConfig) (*Auditor, error) {
	parser := markdown.NewFileParser()
	registry, err := NewDefaultRegistry(parser, cfg)
	if err != nil {
		return nil, fmt.Errorf("registering triggers: %w", err)
	}

	return &Auditor{
		KBRoot:          kbRoot,
		Parser:          parser,
		Registry:        registry,
		ExcludePatterns: DefaultExcludePatterns,
	}, nil
}

// NewAuditorFromConfig creates an auditor using .dewey/health.yaml.
// An unusable health.yaml is logged and the defaults are used.
func NewAuditorFromConfig(kbRoot string) (*Auditor, error) {
	cfg, err := config.LoadHealthConfig(kbRoot)
	if err != nil {
		log.Printf("[WARN] Using default health thresholds: %v", err)
	}
	return NewAuditor(kbRoot, cfg)
}

// KnowledgePath returns the configured knowledge directory.
func (a *Auditor) KnowledgePath() string {
	return config.KnowledgePath(a.KBRoot)
}

// markdownFiles walks dir in lexical order and returns every markdown file
// that is not excluded and not inside a hidden directory.
func (a *Auditor) markdownFiles(ctx context.Context, dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return skipUnreadable(dir, path, d, err)
		}

		// Check context cancellation
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		rel, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if path == dir {
				return nil
			}
			if isHiddenName(d.Name()) || ShouldExcludePath(rel+"/", a.ExcludePatterns) {
				return filepath.SkipDir
			}
			return nil
		}

		if !isMarkdown(d.Name()) || ShouldExcludePath(rel, a.ExcludePatterns) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}
	return files, nil
}

// skipUnreadable handles a walk error. An unreadable root aborts the walk;
// anything below it is logged and skipped so the remaining files are still
// scanned.
func skipUnreadable(root, path string, d fs.DirEntry, err error) error {
	if path == root {
		return err
	}
	log.Printf("[WARN] %s: skipped: %v", path, err)
	if d != nil && d.IsDir() {
		return filepath.SkipDir
	}
	return nil
}

func dirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
