package health

import (
	"fmt"

	"github.com/dewey-kb/dewey/internal/markdown"
)

// CitationQualityTrigger flags working documents that cite the same URL
// DuplicateThreshold or more times across "Key Guidance" and
// "Watch Out For". One generic page standing behind many distinct claims
// suggests shallow sourcing.
type CitationQualityTrigger struct {
	Parser markdown.Parser

	// DuplicateThreshold is the citation count at which a URL is reported. Default: 3
	DuplicateThreshold int
}

// NewCitationQualityTrigger creates the trigger with a threshold of 3.
func NewCitationQualityTrigger(parser markdown.Parser) *CitationQualityTrigger {
	return &CitationQualityTrigger{Parser: parser, DuplicateThreshold: 3}
}

// Name implements Trigger.
func (t *CitationQualityTrigger) Name() string {
	return TriggerCitationQuality
}

// Philosophy implements Trigger.
func (t *CitationQualityTrigger) Philosophy() string {
	return "Each distinct claim deserves evidence that actually supports it."
}

// AppliesTo implements Trigger.
func (t *CitationQualityTrigger) AppliesTo(depth string) bool {
	return depth == DepthWorking
}

// Check implements Trigger.
func (t *CitationQualityTrigger) Check(path string) ([]Finding, error) {
	doc, err := readDocument(t.Parser, path)
	if err != nil {
		return nil, err
	}
	if doc.depth() != DepthWorking {
		return nil, nil
	}

	counts := map[string]int{}
	total := 0
	for _, name := range recommendationSections {
		section, ok := t.Parser.ExtractSection(doc.body, name)
		if !ok {
			continue
		}
		for _, u := range inlineLinks(section) {
			counts[u]++
			total++
		}
	}

	duplicates := map[string]int{}
	for u, n := range counts {
		if n >= t.DuplicateThreshold {
			duplicates[u] = n
		}
	}
	if len(duplicates) == 0 {
		return nil, nil
	}

	return []Finding{doc.finding(t.Name(),
		fmt.Sprintf("%d URL(s) cited %d+ times; possible shallow sourcing", len(duplicates), t.DuplicateThreshold),
		map[string]interface{}{
			"duplicate_urls":          duplicates,
			"total_inline_citations":  total,
			"unique_inline_citations": len(counts),
		})}, nil
}
