package health

import (
	"regexp"
	"strings"

	"github.com/dewey-kb/dewey/internal/markdown"
)

const practiceSection = "In Practice"

var (
	tableRowPattern = regexp.MustCompile(`(?m)^\s*\|`)
	// Percentages, currency amounts, or any number of two or more digits.
	numericPattern = regexp.MustCompile(`\d+(\.\d+)?%|\$\d|\d{2,}`)
)

// ConcreteExamplesTrigger flags working documents whose "In Practice"
// section is missing or has no code block, table or numeric example.
type ConcreteExamplesTrigger struct {
	Parser markdown.Parser
}

// NewConcreteExamplesTrigger creates a concrete examples trigger.
func NewConcreteExamplesTrigger(parser markdown.Parser) *ConcreteExamplesTrigger {
	return &ConcreteExamplesTrigger{Parser: parser}
}

// Name implements Trigger.
func (t *ConcreteExamplesTrigger) Name() string {
	return TriggerConcreteExamples
}

// Philosophy implements Trigger.
func (t *ConcreteExamplesTrigger) Philosophy() string {
	return "Practical guidance is shown, not just told: code, tables and real numbers make advice usable."
}

// AppliesTo implements Trigger.
func (t *ConcreteExamplesTrigger) AppliesTo(depth string) bool {
	return depth == DepthWorking
}

// Check implements Trigger.
func (t *ConcreteExamplesTrigger) Check(path string) ([]Finding, error) {
	doc, err := readDocument(t.Parser, path)
	if err != nil {
		return nil, err
	}
	if doc.depth() != DepthWorking {
		return nil, nil
	}

	section, ok := t.Parser.ExtractSection(doc.body, practiceSection)
	if !ok {
		return []Finding{doc.finding(t.Name(), "Missing 'In Practice' section", map[string]interface{}{
			"has_section":         false,
			"has_code_block":      false,
			"has_table":           false,
			"has_numeric_example": false,
			"section_word_count":  0,
		})}, nil
	}

	hasCode := strings.Contains(section, "```")
	hasTable := tableRowPattern.MatchString(section)
	hasNumeric := numericPattern.MatchString(section)
	if hasCode || hasTable || hasNumeric {
		return nil, nil
	}

	return []Finding{doc.finding(t.Name(),
		"No concrete elements (code blocks, tables, or numeric examples) in 'In Practice'",
		map[string]interface{}{
			"has_section":         true,
			"has_code_block":      hasCode,
			"has_table":           hasTable,
			"has_numeric_example": hasNumeric,
			"section_word_count":  CountWords(section),
		})}, nil
}
