package health

import (
	"context"
	"fmt"
	"log"
)

// RunTier2Prescreening runs every applicable trigger over every eligible
// document and returns the flattened review queue.
//
// Documents are visited in lexical path order and each document's findings
// follow registration order, so the queue is stable for a fixed file set.
// A document that cannot be read is logged and skipped; it never stops the scan.
func (a *Auditor) RunTier2Prescreening(ctx context.Context) (*Tier2Report, error) {
	knowledge := a.KnowledgePath()
	exists, err := dirExists(knowledge)
	if err != nil {
		return nil, fmt.Errorf("checking knowledge directory: %w", err)
	}
	if !exists {
		return &Tier2Report{Queue: []Finding{}, Summary: Summarize(nil, 0)}, nil
	}

	files, err := a.markdownFiles(ctx, knowledge)
	if err != nil {
		return nil, err
	}

	queue := []Finding{}
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		queue = append(queue, a.checkDocument(path)...)
	}

	return &Tier2Report{
		Queue:   queue,
		Summary: Summarize(queue, len(files)),
	}, nil
}

// checkDocument runs the triggers applicable to one document. Every
// applicable trigger runs even after another has fired.
func (a *Auditor) checkDocument(path string) []Finding {
	depth := ""
	if fm, err := a.Parser.ParseFrontmatter(path); err == nil {
		depth = fm.String("depth")
	}

	var findings []Finding
	for _, trigger := range a.Registry.Applicable(depth) {
		found, err := trigger.Check(path)
		if err != nil {
			log.Printf("[WARN] %s: trigger %s skipped: %v", path, trigger.Name(), err)
			continue
		}
		findings = append(findings, found...)
	}
	return findings
}

// Summarize derives Tier 2 statistics from a queue. Counts are taken from
// the queue itself so they can never disagree with it.
func Summarize(queue []Finding, filesScanned int) Tier2Summary {
	counts := map[string]int{}
	files := map[string]bool{}
	for _, f := range queue {
		counts[f.Trigger]++
		files[f.File] = true
	}
	return Tier2Summary{
		TotalFilesScanned: filesScanned,
		FilesWithTriggers: len(files),
		TriggerCounts:     counts,
	}
}
