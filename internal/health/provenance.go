package health

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/dewey-kb/dewey/internal/markdown"
)

const (
	evaluationSection = "Source Evaluation"

	// evaluationPlaceholder opens the section in freshly scaffolded documents.
	evaluationPlaceholder = "<!-- Complete during research step"
)

var provenancePattern = regexp.MustCompile(`(?s)<!--\s*dewey:provenance\s*(.*?)-->`)

// provenanceBlock is the outcome of looking for an embedded provenance
// payload. Malformed payloads are a result, not an error.
type provenanceBlock struct {
	found bool
	valid bool
	data  map[string]interface{}
}

func parseProvenance(section string) provenanceBlock {
	m := provenancePattern.FindStringSubmatch(section)
	if m == nil {
		return provenanceBlock{}
	}

	var data map[string]interface{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(m[1])), &data); err != nil || data == nil {
		return provenanceBlock{found: true}
	}
	return provenanceBlock{found: true, valid: true, data: data}
}

// missingFields lists the required provenance fields that are absent or unusable.
func (b provenanceBlock) missingFields() []string {
	missing := []string{}
	if _, ok := b.data["evaluated"]; !ok {
		missing = append(missing, "evaluated")
	}
	if sources, ok := b.data["sources"].([]interface{}); !ok || len(sources) == 0 {
		missing = append(missing, "sources")
	}
	if _, ok := b.data["counter_evidence"]; !ok {
		missing = append(missing, "counter_evidence")
	}
	cross, ok := b.data["cross_validation"].(map[string]interface{})
	if !ok {
		missing = append(missing, "cross_validation")
	} else if total, ok := cross["claims_total"].(float64); !ok || total <= 0 {
		missing = append(missing, "cross_validation")
	}
	return missing
}

// ProvenanceCompletenessTrigger flags working documents whose
// "Source Evaluation" section lacks a complete dewey:provenance block.
type ProvenanceCompletenessTrigger struct {
	Parser markdown.Parser
}

// NewProvenanceCompletenessTrigger creates a provenance completeness trigger.
func NewProvenanceCompletenessTrigger(parser markdown.Parser) *ProvenanceCompletenessTrigger {
	return &ProvenanceCompletenessTrigger{Parser: parser}
}

// Name implements Trigger.
func (t *ProvenanceCompletenessTrigger) Name() string {
	return TriggerProvenanceCompleteness
}

// Philosophy implements Trigger.
func (t *ProvenanceCompletenessTrigger) Philosophy() string {
	return "How a claim was sourced, challenged and cross-checked should be recorded alongside the claim."
}

// AppliesTo implements Trigger.
func (t *ProvenanceCompletenessTrigger) AppliesTo(depth string) bool {
	return depth == DepthWorking
}

// Check implements Trigger.
func (t *ProvenanceCompletenessTrigger) Check(path string) ([]Finding, error) {
	doc, err := readDocument(t.Parser, path)
	if err != nil {
		return nil, err
	}
	if doc.depth() != DepthWorking {
		return nil, nil
	}

	section, ok := t.Parser.ExtractSection(doc.body, evaluationSection)
	if !ok || strings.HasPrefix(strings.TrimSpace(section), evaluationPlaceholder) {
		return nil, nil
	}

	block := parseProvenance(section)
	switch {
	case !block.found:
		return []Finding{doc.finding(t.Name(), "Source Evaluation exists but missing provenance block",
			map[string]interface{}{
				"has_section":          true,
				"has_provenance_block": false,
				"missing_fields":       []string{},
			})}, nil
	case !block.valid:
		return []Finding{doc.finding(t.Name(), "Provenance block contains invalid JSON",
			map[string]interface{}{
				"has_section":          true,
				"has_provenance_block": true,
				"missing_fields":       []string{"valid_json"},
			})}, nil
	}

	missing := block.missingFields()
	if len(missing) == 0 {
		return nil, nil
	}
	return []Finding{doc.finding(t.Name(),
		fmt.Sprintf("Provenance block missing required fields: %s", strings.Join(missing, ", ")),
		map[string]interface{}{
			"has_section":          true,
			"has_provenance_block": true,
			"missing_fields":       missing,
		})}, nil
}
