package health

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/dewey-kb/dewey/internal/config"
)

// QueueDirName is the export directory under .dewey/.
const QueueDirName = "queue"

// QueueGroup is every finding of one trigger, with the principle the
// reviewer should judge those findings against.
type QueueGroup struct {
	Trigger    string    `json:"trigger"`
	Philosophy string    `json:"philosophy"`
	Findings   []Finding `json:"findings"`
}

// QueueExport is the document handed to a downstream reviewer.
type QueueExport struct {
	ID          string       `json:"id"`
	GeneratedAt time.Time    `json:"generated_at"`
	Summary     Tier2Summary `json:"summary"`
	Groups      []QueueGroup `json:"queue"`
}

// GroupByTrigger groups a queue by trigger. Groups follow the registry's
// order; triggers the registry does not know come last in first-seen
// order. Findings keep their queue order within a group.
func GroupByTrigger(registry *TriggerRegistry, queue []Finding) []QueueGroup {
	byName := map[string][]Finding{}
	var unknown []string
	known := map[string]bool{}
	var order []string
	if registry != nil {
		order = registry.List()
	}
	for _, name := range order {
		known[name] = true
	}

	for _, f := range queue {
		if _, seen := byName[f.Trigger]; !seen && !known[f.Trigger] {
			unknown = append(unknown, f.Trigger)
		}
		byName[f.Trigger] = append(byName[f.Trigger], f)
	}

	var groups []QueueGroup
	for _, name := range append(order, unknown...) {
		findings, ok := byName[name]
		if !ok {
			continue
		}
		group := QueueGroup{Trigger: name, Findings: findings}
		if registry != nil {
			if t, ok := registry.Get(name); ok {
				group.Philosophy = t.Philosophy()
			}
		}
		groups = append(groups, group)
	}
	return groups
}

// ExportQueue writes report to .dewey/queue/<id>.json using the default
// trigger set for group philosophies, and returns the written path.
func ExportQueue(kbRoot string, report *Tier2Report) (string, error) {
	a, err := NewAuditor(kbRoot, config.DefaultHealthConfig())
	if err != nil {
		return "", err
	}
	return a.ExportQueue(report)
}

// ExportQueue writes report to .dewey/queue/<id>.json and returns the
// written path. The file is written atomically.
func (a *Auditor) ExportQueue(report *Tier2Report) (string, error) {
	if report == nil {
		return "", fmt.Errorf("no tier 2 report to export")
	}

	export := QueueExport{
		ID:          uuid.New().String(),
		GeneratedAt: time.Now().UTC().Truncate(time.Second),
		Summary:     Summarize(report.Queue, report.Summary.TotalFilesScanned),
		Groups:      GroupByTrigger(a.Registry, report.Queue),
	}
	if export.Groups == nil {
		export.Groups = []QueueGroup{}
	}

	dir := filepath.Join(a.KBRoot, config.DirName, QueueDirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating queue directory: %w", err)
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serializing queue: %w", err)
	}

	path := filepath.Join(dir, export.ID+".json")
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return "", fmt.Errorf("writing queue file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath) // best effort
		return "", fmt.Errorf("committing queue file: %w", err)
	}
	return path, nil
}
