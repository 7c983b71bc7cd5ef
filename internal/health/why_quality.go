package health

import (
	"fmt"

	"github.com/dewey-kb/dewey/internal/markdown"
)

const whySection = "Why This Matters"

// WhyQualityTrigger flags working documents whose "Why This Matters"
// section is missing or shorter than MinWords.
type WhyQualityTrigger struct {
	Parser markdown.Parser

	// MinWords is the shortest acceptable section. Default: 50
	MinWords int
}

// NewWhyQualityTrigger creates the trigger with a 50-word minimum.
func NewWhyQualityTrigger(parser markdown.Parser) *WhyQualityTrigger {
	return &WhyQualityTrigger{Parser: parser, MinWords: 50}
}

// Name implements Trigger.
func (t *WhyQualityTrigger) Name() string {
	return TriggerWhyQuality
}

// Philosophy implements Trigger.
func (t *WhyQualityTrigger) Philosophy() string {
	return "Readers act on guidance they understand the purpose of. Motivation deserves more than a sentence."
}

// AppliesTo implements Trigger.
func (t *WhyQualityTrigger) AppliesTo(depth string) bool {
	return depth == DepthWorking
}

// Check implements Trigger.
func (t *WhyQualityTrigger) Check(path string) ([]Finding, error) {
	doc, err := readDocument(t.Parser, path)
	if err != nil {
		return nil, err
	}
	if doc.depth() != DepthWorking {
		return nil, nil
	}

	section, hasSection := t.Parser.ExtractSection(doc.body, whySection)
	words := CountWords(section)
	if hasSection && words >= t.MinWords {
		return nil, nil
	}

	reason := fmt.Sprintf("Missing '%s' section", whySection)
	if hasSection {
		reason = fmt.Sprintf("'%s' has %d words (min: %d)", whySection, words, t.MinWords)
	}
	return []Finding{doc.finding(t.Name(), reason, map[string]interface{}{
		"has_section":  hasSection,
		"word_count":   words,
		"min_required": t.MinWords,
	})}, nil
}
