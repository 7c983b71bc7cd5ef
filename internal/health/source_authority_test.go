package health

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceAuthorityTrigger_Interface(t *testing.T) {
	trigger := NewSourceAuthorityTrigger(newParser())

	assert.Equal(t, "source_authority", trigger.Name())
	assert.True(t, trigger.AppliesTo(DepthWorking))
	assert.False(t, trigger.AppliesTo(DepthReference))
}

func TestSourceAuthorityTrigger_AllCommunity(t *testing.T) {
	content := frontmatter(DepthWorking, "2024-05-01",
		"https://medium.com/@someone/testing-tips",
		"https://www.reddit.com/r/golang/comments/abc") + "Body\n"

	findings := checkDoc(t, NewSourceAuthorityTrigger(newParser()), content)

	require.Len(t, findings, 1)
	f := findings[0]
	assert.Equal(t, "All 2 source(s) are community-tier; no authoritative anchor", f.Reason)
	assert.Equal(t, 2, f.Context["source_count"])
	assert.Equal(t, map[string]string{
		"https://medium.com/@someone/testing-tips":     "community",
		"https://www.reddit.com/r/golang/comments/abc": "community",
	}, f.Context["classifications"])
}

func TestSourceAuthorityTrigger_NotFired(t *testing.T) {
	tests := []struct {
		name    string
		sources []string
	}{
		{name: "authoritative anchor", sources: []string{"https://medium.com/post", "https://www.rfc-editor.org/rfc/rfc9110"}},
		{name: "other-tier source", sources: []string{"https://medium.com/post", "https://example.com/guide"}},
		{name: "no sources", sources: nil},
		{name: "non-url sources only", sources: []string{"The Go Programming Language"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := frontmatter(DepthWorking, "2024-05-01", tt.sources...) + "Body\n"
			assert.Empty(t, checkDoc(t, NewSourceAuthorityTrigger(newParser()), content))
		})
	}
}

func TestSourceAuthorityTrigger_MappingSources(t *testing.T) {
	content := "---\n" +
		"sources:\n" +
		"  - url: https://medium.com/x\n" +
		"    title: X\n" +
		"  - https://dev.to/y\n" +
		"last_validated: 2024-05-01\n" +
		"relevance: Teams maintaining integration suites\n" +
		"depth: working\n" +
		"---\n\nBody\n"

	findings := checkDoc(t, NewSourceAuthorityTrigger(newParser()), content)

	require.Len(t, findings, 1)
	assert.Equal(t, 2, findings[0].Context["source_count"])
	assert.Equal(t, map[string]string{
		"https://medium.com/x": "community",
		"https://dev.to/y":     "community",
	}, findings[0].Context["classifications"])
}

func TestSourceAuthorityTrigger_MappingSourceAnchors(t *testing.T) {
	content := "---\n" +
		"sources:\n" +
		"  - url: https://www.rfc-editor.org/rfc/rfc9110\n" +
		"    title: HTTP Semantics\n" +
		"  - https://medium.com/post\n" +
		"depth: working\n" +
		"---\n\nBody\n"

	assert.Empty(t, checkDoc(t, NewSourceAuthorityTrigger(newParser()), content))
}
