package health

import (
	"fmt"

	"github.com/dewey-kb/dewey/internal/markdown"
)

// SourcePrimacyTrigger flags working documents whose recommendations are
// thinly sourced: fewer than one inline http(s) link per three list items
// across "Key Guidance" and "Watch Out For".
type SourcePrimacyTrigger struct {
	Parser markdown.Parser
}

// NewSourcePrimacyTrigger creates a source primacy trigger.
func NewSourcePrimacyTrigger(parser markdown.Parser) *SourcePrimacyTrigger {
	return &SourcePrimacyTrigger{Parser: parser}
}

// Name implements Trigger.
func (t *SourcePrimacyTrigger) Name() string {
	return TriggerSourcePrimacy
}

// Philosophy implements Trigger.
func (t *SourcePrimacyTrigger) Philosophy() string {
	return "Recommendations should point back to primary sources so readers can verify them."
}

// AppliesTo implements Trigger.
func (t *SourcePrimacyTrigger) AppliesTo(depth string) bool {
	return depth == DepthWorking
}

// Check implements Trigger.
func (t *SourcePrimacyTrigger) Check(path string) ([]Finding, error) {
	doc, err := readDocument(t.Parser, path)
	if err != nil {
		return nil, err
	}
	if doc.depth() != DepthWorking {
		return nil, nil
	}

	sectionsChecked := []string{}
	recommendations, sources := 0, 0
	for _, name := range recommendationSections {
		section, ok := t.Parser.ExtractSection(doc.body, name)
		if !ok {
			continue
		}
		sectionsChecked = append(sectionsChecked, name)
		recommendations += len(listItemPattern.FindAllStringIndex(section, -1))
		sources += len(inlineLinks(section))
	}

	if len(sectionsChecked) == 0 || recommendations == 0 {
		return nil, nil
	}
	// At least one source per three recommendations.
	if float64(sources) >= float64(recommendations)/3.0 {
		return nil, nil
	}

	return []Finding{doc.finding(t.Name(),
		fmt.Sprintf("%d inline sources for %d recommendations (expect >= 1 per 3)", sources, recommendations),
		map[string]interface{}{
			"recommendation_count": recommendations,
			"inline_source_count":  sources,
			"ratio":                roundTo(float64(sources)/float64(recommendations), 2),
			"sections_checked":     sectionsChecked,
		})}, nil
}
