package markdown

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "topic.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseFrontmatter(t *testing.T) {
	path := writeDoc(t, "---\nsources:\n  - https://example.com/doc\n  - url: https://example.com/other\nlast_validated: 2024-01-15\ndepth: working\n---\n\n# Topic\n")

	fm, err := NewFileParser().ParseFrontmatter(path)
	require.NoError(t, err)

	assert.Equal(t, "working", fm.String("depth"))
	// Unquoted dates decode as timestamps.
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), fm["last_validated"])

	sources, ok := fm["sources"].([]interface{})
	require.True(t, ok)
	require.Len(t, sources, 2)
	assert.Equal(t, "https://example.com/doc", sources[0])
	assert.Equal(t, map[string]interface{}{"url": "https://example.com/other"}, sources[1])
}

func TestParseFrontmatter_NoBlock(t *testing.T) {
	path := writeDoc(t, "# Just a heading\n\nBody text.\n")

	fm, err := NewFileParser().ParseFrontmatter(path)
	require.NoError(t, err)
	assert.NotNil(t, fm)
	assert.Empty(t, fm)
}

func TestParseFrontmatter_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unterminated", "---\ndepth: working\n# Heading\n"},
		{"invalid yaml", "---\ndepth: [working\n---\nBody\n"},
		{"not a mapping", "---\n- one\n- two\n---\nBody\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFrontmatterText(tt.content)
			assert.Error(t, err)
		})
	}
}

func TestParseFrontmatter_MissingFile(t *testing.T) {
	_, err := NewFileParser().ParseFrontmatter(filepath.Join(t.TempDir(), "nope.md"))
	assert.Error(t, err)
}

func TestBodyWithoutFrontmatter(t *testing.T) {
	assert.Equal(t, "\n# Topic\n", BodyWithoutFrontmatter("---\ndepth: working\n---\n\n# Topic\n"))
	assert.Equal(t, "# Topic\n", BodyWithoutFrontmatter("# Topic\n"))
	assert.Equal(t, "Body", BodyWithoutFrontmatter("---\r\ndepth: working\r\n---\r\nBody"))
}

func TestExtractSection(t *testing.T) {
	body := "# Topic\n\n## Key Guidance\n- one\n- two\n\n### Detail\nnested text\n\n## Watch Out For\n- pitfall\n"

	section, ok := ExtractSection(body, "Key Guidance")
	require.True(t, ok)
	assert.Equal(t, "- one\n- two\n\n### Detail\nnested text", section)

	section, ok = ExtractSection(body, "Watch Out For")
	require.True(t, ok)
	assert.Equal(t, "- pitfall", section)

	_, ok = ExtractSection(body, "In Practice")
	assert.False(t, ok)
}

func TestExtractSection_EmptySection(t *testing.T) {
	section, ok := ExtractSection("## Why This Matters\n## Next\ntext\n", "Why This Matters")
	assert.True(t, ok)
	assert.Equal(t, "", section)
}

func TestExtractSection_IgnoresHeadingsInCodeFences(t *testing.T) {
	body := "## In Practice\n```bash\n# not a heading\necho hi\n```\nafter\n## Next\n"

	section, ok := ExtractSection(body, "In Practice")
	require.True(t, ok)
	assert.Equal(t, "```bash\n# not a heading\necho hi\n```\nafter", section)
}

func TestExtractSection_Setext(t *testing.T) {
	body := "Key Guidance\n------------\n- one\n\nOther\n-----\n- two\n"

	section, ok := ExtractSection(body, "Key Guidance")
	require.True(t, ok)
	assert.Equal(t, "- one", section)
}

func TestHeadings(t *testing.T) {
	assert.Equal(t, []string{"Topic", "In Practice", "Key Guidance"},
		Headings("# Topic\n\n## In Practice\ntext\n\n## Key Guidance\n- item\n"))
}

func TestParseFrontmatter_NestedMappingsArePlainMaps(t *testing.T) {
	fm, err := ParseFrontmatterText("---\nsources:\n  - url: https://example.com/a\n    title: A\nmeta:\n  owner: docs\n---\n")
	require.NoError(t, err)

	sources := fm["sources"].([]interface{})
	_, isPlain := sources[0].(map[string]interface{})
	assert.True(t, isPlain, "nested mapping decoded as %T", sources[0])
	assert.IsType(t, map[string]interface{}{}, fm["meta"])
}

// A paragraph followed by a "---" line is a setext heading, so it closes
// the enclosing section at the same level.
func TestExtractSection_SetextUnderlineEndsSection(t *testing.T) {
	body := "## Key Guidance\n\n- a\n- b\n\nSome note\n---\n- c\n- d\n"

	section, ok := ExtractSection(body, "Key Guidance")
	require.True(t, ok)
	assert.Equal(t, "- a\n- b", section)

	note, ok := ExtractSection(body, "Some note")
	require.True(t, ok)
	assert.Equal(t, "- c\n- d", note)
}
