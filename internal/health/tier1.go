package health

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const overviewFile = "overview.md"

// Frontmatter fields every knowledge document must declare.
var requiredFields = []string{"sources", "last_validated", "relevance", "depth"}

// Sections a working document is expected to have.
var workingSections = []string{"In Practice", "Key Guidance"}

// RunHealthCheck performs Tier 1 structural validation.
//
// Each immediate subdirectory of the knowledge directory is a topical area
// and must contain overview.md. Every markdown file inside an area is
// checked for frontmatter and layout conventions. Files with no fail or
// warn issue receive a single pass issue.
func (a *Auditor) RunHealthCheck(ctx context.Context) (*Tier1Report, error) {
	knowledge := a.KnowledgePath()
	issues := []Issue{}

	exists, err := dirExists(knowledge)
	if err != nil {
		return nil, fmt.Errorf("checking knowledge directory: %w", err)
	}
	if !exists {
		issues = append(issues, Issue{
			File:     knowledge,
			Message:  fmt.Sprintf("Knowledge directory %s not found", knowledge),
			Severity: SeverityFail,
		})
		return &Tier1Report{Issues: issues, Summary: summarizeIssues(issues, 0)}, nil
	}

	areas, err := a.areas(knowledge)
	if err != nil {
		return nil, err
	}

	totalFiles := 0
	for _, area := range areas {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if _, err := os.Stat(filepath.Join(area, overviewFile)); err != nil {
			issues = append(issues, Issue{
				File:     area,
				Message:  fmt.Sprintf("Area '%s' is missing %s", filepath.Base(area), overviewFile),
				Severity: SeverityFail,
			})
		}

		files, err := a.markdownFiles(ctx, area)
		if err != nil {
			return nil, err
		}
		for _, path := range files {
			totalFiles++
			issues = append(issues, a.validateFile(path)...)
		}
	}

	return &Tier1Report{Issues: issues, Summary: summarizeIssues(issues, totalFiles)}, nil
}

// areas lists the topical area directories in lexical order.
func (a *Auditor) areas(knowledge string) ([]string, error) {
	entries, err := os.ReadDir(knowledge)
	if err != nil {
		return nil, fmt.Errorf("reading knowledge directory: %w", err)
	}

	var areas []string
	for _, e := range entries {
		if !e.IsDir() || isHiddenName(e.Name()) {
			continue
		}
		if ShouldExcludePath(e.Name()+"/", a.ExcludePatterns) {
			continue
		}
		areas = append(areas, filepath.Join(knowledge, e.Name()))
	}
	sort.Strings(areas)
	return areas, nil
}

// validateFile applies the per-document structural rules.
func (a *Auditor) validateFile(path string) []Issue {
	var issues []Issue
	add := func(sev Severity, format string, args ...interface{}) {
		issues = append(issues, Issue{File: path, Message: fmt.Sprintf(format, args...), Severity: sev})
	}

	text, err := a.Parser.ReadFile(path)
	if err != nil {
		add(SeverityFail, "Cannot read file: %v", err)
		return issues
	}
	fm, err := a.Parser.ParseFrontmatter(path)
	if err != nil {
		add(SeverityFail, "Invalid frontmatter: %v", err)
		return issues
	}
	if len(fm) == 0 {
		add(SeverityFail, "Missing frontmatter block")
		return issues
	}

	for _, field := range requiredFields {
		if v, ok := fm[field]; !ok || v == nil {
			add(SeverityFail, "Missing required frontmatter field: %s", field)
		}
	}

	depth := fm.String("depth")
	if _, known := DepthBands[depth]; fm["depth"] != nil && !known {
		add(SeverityWarn, "Unrecognized depth '%v' (expected overview, working, or reference)", fm["depth"])
	}

	if lv := dateString(fm["last_validated"]); lv != "" {
		if _, err := time.Parse(isoDate, lv); err != nil {
			add(SeverityWarn, "last_validated is not an ISO date (YYYY-MM-DD): %s", lv)
		}
	}

	base := filepath.Base(path)
	switch {
	case base == overviewFile && depth != DepthOverview:
		add(SeverityWarn, "%s should declare depth: overview", overviewFile)
	case strings.HasSuffix(base, ".ref.md"):
		if depth != DepthReference {
			add(SeverityWarn, "Reference file should declare depth: reference")
		}
		companion := strings.TrimSuffix(base, ".ref.md") + ".md"
		if _, err := os.Stat(filepath.Join(filepath.Dir(path), companion)); err != nil {
			add(SeverityWarn, "Reference file has no companion %s", companion)
		}
	}

	if depth == DepthWorking {
		body := a.Parser.BodyWithoutFrontmatter(text)
		for _, name := range workingSections {
			if _, ok := a.Parser.ExtractSection(body, name); !ok {
				add(SeverityWarn, "Missing '%s' section", name)
			}
		}
	}

	if len(issues) == 0 {
		add(SeverityPass, "All structural checks passed")
	}
	return issues
}

// summarizeIssues counts issues by severity.
func summarizeIssues(issues []Issue, totalFiles int) Tier1Summary {
	summary := Tier1Summary{TotalFiles: totalFiles}
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityFail:
			summary.FailCount++
		case SeverityWarn:
			summary.WarnCount++
		case SeverityPass:
			summary.PassCount++
		}
	}
	return summary
}
