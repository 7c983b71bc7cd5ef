package health

import (
	"fmt"

	"github.com/dewey-kb/dewey/internal/markdown"
)

// SourceAuthorityTrigger flags working documents whose declared sources are
// all community platforms with no authoritative anchor.
type SourceAuthorityTrigger struct {
	Parser markdown.Parser
}

// NewSourceAuthorityTrigger creates a source authority trigger.
func NewSourceAuthorityTrigger(parser markdown.Parser) *SourceAuthorityTrigger {
	return &SourceAuthorityTrigger{Parser: parser}
}

// Name implements Trigger.
func (t *SourceAuthorityTrigger) Name() string {
	return TriggerSourceAuthority
}

// Philosophy implements Trigger.
func (t *SourceAuthorityTrigger) Philosophy() string {
	return "Community write-ups are useful context but guidance should rest on at least one authoritative source."
}

// AppliesTo implements Trigger.
func (t *SourceAuthorityTrigger) AppliesTo(depth string) bool {
	return depth == DepthWorking
}

// Check implements Trigger.
func (t *SourceAuthorityTrigger) Check(path string) ([]Finding, error) {
	doc, err := readDocument(t.Parser, path)
	if err != nil {
		return nil, err
	}
	if doc.depth() != DepthWorking {
		return nil, nil
	}

	urls := sourceURLs(doc.fm)
	if len(urls) == 0 {
		return nil, nil
	}

	classifications := make(map[string]string, len(urls))
	for _, u := range urls {
		class := ClassifyDomain(URLHost(u))
		if class != DomainCommunity {
			return nil, nil
		}
		classifications[u] = string(class)
	}

	return []Finding{doc.finding(t.Name(),
		fmt.Sprintf("All %d source(s) are community-tier; no authoritative anchor", len(urls)),
		map[string]interface{}{
			"source_count":    len(urls),
			"classifications": classifications,
		})}, nil
}
