package health

import (
	"fmt"
	"strings"

	"github.com/dewey-kb/dewey/internal/markdown"
)

// RecommendationCoverageTrigger flags working documents where more than
// half of the recommendations in "Key Guidance" and "Watch Out For" carry
// no inline http(s) link on their own line.
//
// This overlaps with SourcePrimacyTrigger (same sections, different
// formula). Both are kept because reviewers key on the trigger name.
type RecommendationCoverageTrigger struct {
	Parser markdown.Parser
}

// NewRecommendationCoverageTrigger creates a recommendation coverage trigger.
func NewRecommendationCoverageTrigger(parser markdown.Parser) *RecommendationCoverageTrigger {
	return &RecommendationCoverageTrigger{Parser: parser}
}

// Name implements Trigger.
func (t *RecommendationCoverageTrigger) Name() string {
	return TriggerRecommendationCoverage
}

// Philosophy implements Trigger.
func (t *RecommendationCoverageTrigger) Philosophy() string {
	return "Every recommendation should carry its own evidence."
}

// AppliesTo implements Trigger.
func (t *RecommendationCoverageTrigger) AppliesTo(depth string) bool {
	return depth == DepthWorking
}

// Check implements Trigger.
func (t *RecommendationCoverageTrigger) Check(path string) ([]Finding, error) {
	doc, err := readDocument(t.Parser, path)
	if err != nil {
		return nil, err
	}
	if doc.depth() != DepthWorking {
		return nil, nil
	}

	total, cited := 0, 0
	for _, name := range recommendationSections {
		section, ok := t.Parser.ExtractSection(doc.body, name)
		if !ok {
			continue
		}
		for _, line := range strings.Split(section, "\n") {
			if !listItemLinePattern.MatchString(line) {
				continue
			}
			total++
			if inlineLinkPattern.MatchString(line) {
				cited++
			}
		}
	}

	if total == 0 {
		return nil, nil
	}
	uncited := total - cited
	if float64(uncited) <= float64(total)*0.5 {
		return nil, nil
	}

	return []Finding{doc.finding(t.Name(),
		fmt.Sprintf("%d/%d recommendations lack inline citations", uncited, total),
		map[string]interface{}{
			"total_recommendations":   total,
			"cited_recommendations":   cited,
			"uncited_recommendations": uncited,
			"uncited_ratio":           roundTo(float64(uncited)/float64(total), 2),
		})}, nil
}
