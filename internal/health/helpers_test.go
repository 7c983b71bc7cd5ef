package health

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dewey-kb/dewey/internal/markdown"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// writeDoc writes content to a fresh temp file and returns its path.
func writeDoc(t *testing.T, content string) string {
	t.Helper()
	return writeFile(t, filepath.Join(t.TempDir(), "doc.md"), content)
}

// words returns n filler words with no digits.
func words(n int) string {
	return strings.TrimSpace(strings.Repeat("lorem ", n))
}

// frontmatter builds a complete frontmatter block.
func frontmatter(depth, lastValidated string, sources ...string) string {
	var b strings.Builder
	b.WriteString("---\n")
	if len(sources) == 0 {
		b.WriteString("sources: []\n")
	} else {
		b.WriteString("sources:\n")
		for _, s := range sources {
			fmt.Fprintf(&b, "  - %s\n", s)
		}
	}
	fmt.Fprintf(&b, "last_validated: %s\n", lastValidated)
	b.WriteString("relevance: Teams maintaining integration suites\n")
	fmt.Fprintf(&b, "depth: %s\n", depth)
	b.WriteString("---\n\n")
	return b.String()
}

// workingFrontmatter is a fresh working-depth header with an authoritative source.
func workingFrontmatter() string {
	return frontmatter(DepthWorking, "2024-05-01", "https://www.rfc-editor.org/rfc/rfc9110")
}

// goodWorkingBody passes every working-depth trigger.
func goodWorkingBody() string {
	return "## Why This Matters\n\n" +
		words(45) + "\n" +
		words(45) + "\n\n" +
		"## In Practice\n\n" +
		"Retries dropped by about 40% after the change " + words(40) + "\n" +
		words(45) + "\n\n" +
		"## Key Guidance\n\n" +
		"- Pin versions [RFC 9110](https://www.rfc-editor.org/rfc/rfc9110)\n" +
		"- Validate inputs [MDN](https://developer.mozilla.org/en-US/docs/Web/HTTP)\n" +
		"- Prefer published specs [W3C](https://www.w3.org/TR/)\n\n" +
		"## Watch Out For\n\n" +
		"- Stale caches [Python docs](https://docs.python.org/3/library/)\n\n" +
		words(45) + "\n"
}

func goodOverviewBody() string {
	return "# Testing\n\n" + words(60) + "\n\n- [Topic](topic.md)\n"
}

func goodReferenceBody() string {
	return "# Reference\n\n| key | value |\n|---|---|\n| a | b |\n\n" + words(25) + "\n"
}

// writeCleanKB lays out one conforming area under <root>/docs and returns root.
func writeCleanKB(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	today := time.Now().Format(isoDate)
	area := filepath.Join(root, "docs", "testing")

	writeFile(t, filepath.Join(area, "overview.md"),
		frontmatter(DepthOverview, today, "https://www.w3.org/TR/")+goodOverviewBody())
	writeFile(t, filepath.Join(area, "topic.md"),
		frontmatter(DepthWorking, today, "https://www.rfc-editor.org/rfc/rfc9110")+goodWorkingBody())
	writeFile(t, filepath.Join(area, "topic.ref.md"),
		frontmatter(DepthReference, today, "https://www.w3.org/TR/")+goodReferenceBody())
	return root
}

func checkDoc(t *testing.T, trigger Trigger, content string) []Finding {
	t.Helper()
	findings, err := trigger.Check(writeDoc(t, content))
	require.NoError(t, err)
	return findings
}

func newParser() markdown.Parser {
	return markdown.NewFileParser()
}

// fakeParser serves documents from memory. Texts carry no frontmatter;
// frontmatter comes from fm.
type fakeParser struct {
	texts map[string]string
	fm    map[string]markdown.Frontmatter
}

func (p *fakeParser) ReadFile(path string) (string, error) {
	text, ok := p.texts[path]
	if !ok {
		return "", fmt.Errorf("reading %s: %w", path, os.ErrNotExist)
	}
	return text, nil
}

func (p *fakeParser) ParseFrontmatter(path string) (markdown.Frontmatter, error) {
	if _, ok := p.texts[path]; !ok {
		return nil, fmt.Errorf("reading %s: %w", path, os.ErrNotExist)
	}
	if fm, ok := p.fm[path]; ok {
		return fm, nil
	}
	return markdown.Frontmatter{}, nil
}

func (p *fakeParser) BodyWithoutFrontmatter(text string) string {
	return text
}

func (p *fakeParser) ExtractSection(body, heading string) (string, bool) {
	return markdown.ExtractSection(body, heading)
}
