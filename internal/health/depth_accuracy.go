package health

import (
	"fmt"
	"strings"

	"github.com/dewey-kb/dewey/internal/markdown"
)

// Depth values a document may declare in its frontmatter.
const (
	DepthOverview  = "overview"
	DepthWorking   = "working"
	DepthReference = "reference"
)

// DepthBand is the expected length and prose density for one depth.
type DepthBand struct {
	MinWords int
	MaxWords int
	MinProse float64
	MaxProse float64
}

// DepthBands holds the fixed expectations per declared depth.
var DepthBands = map[string]DepthBand{
	DepthOverview:  {MinWords: 50, MaxWords: 800, MinProse: 0.3, MaxProse: 0.9},
	DepthWorking:   {MinWords: 200, MaxWords: 3000, MinProse: 0.3, MaxProse: 0.8},
	DepthReference: {MinWords: 20, MaxWords: 500, MinProse: 0.0, MaxProse: 0.5},
}

// DepthAccuracyTrigger flags documents whose size or prose density does
// not match their declared depth.
type DepthAccuracyTrigger struct {
	Parser markdown.Parser
}

// NewDepthAccuracyTrigger creates a depth accuracy trigger.
func NewDepthAccuracyTrigger(parser markdown.Parser) *DepthAccuracyTrigger {
	return &DepthAccuracyTrigger{Parser: parser}
}

// Name implements Trigger.
func (t *DepthAccuracyTrigger) Name() string {
	return TriggerDepthAccuracy
}

// Philosophy implements Trigger.
func (t *DepthAccuracyTrigger) Philosophy() string {
	return "A document should read like what it claims to be: overviews orient, working docs guide, references list."
}

// AppliesTo implements Trigger. Only recognized depths have a band.
func (t *DepthAccuracyTrigger) AppliesTo(depth string) bool {
	_, ok := DepthBands[depth]
	return ok
}

// Check implements Trigger.
func (t *DepthAccuracyTrigger) Check(path string) ([]Finding, error) {
	doc, err := readDocument(t.Parser, path)
	if err != nil {
		return nil, err
	}

	depth := doc.depth()
	band, ok := DepthBands[depth]
	if !ok {
		return nil, nil
	}

	words := CountWords(doc.body)
	prose := ProseRatio(doc.body)

	var reasons []string
	if words < band.MinWords || words > band.MaxWords {
		reasons = append(reasons, fmt.Sprintf("word count %d outside [%d, %d]", words, band.MinWords, band.MaxWords))
	}
	if prose < band.MinProse || prose > band.MaxProse {
		reasons = append(reasons, fmt.Sprintf("prose ratio %.2f outside [%.1f, %.1f]", prose, band.MinProse, band.MaxProse))
	}
	if len(reasons) == 0 {
		return nil, nil
	}

	return []Finding{doc.finding(t.Name(),
		fmt.Sprintf("Depth '%s' mismatch: %s", depth, strings.Join(reasons, "; ")),
		map[string]interface{}{
			"declared_depth":       depth,
			"word_count":           words,
			"prose_ratio":          roundTo(prose, 3),
			"expected_word_range":  []int{band.MinWords, band.MaxWords},
			"expected_prose_range": []float64{band.MinProse, band.MaxProse},
		})}, nil
}
