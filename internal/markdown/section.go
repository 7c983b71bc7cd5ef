package markdown

import (
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// headingSpan locates a heading by body line numbers (0-based, inclusive).
type headingSpan struct {
	level     int
	title     string
	startLine int
	endLine   int
}

// ExtractSection returns the content under the first heading whose title is
// exactly heading. The section runs until the next heading of the same or a
// higher level, or the end of body. Headings inside code fences are ignored
// because they are located from the parsed markdown tree, not by line prefix.
func ExtractSection(body, heading string) (string, bool) {
	want := strings.TrimSpace(heading)
	lines := strings.Split(body, "\n")
	headings := scanHeadings(body, lines)

	for i, h := range headings {
		if h.title != want {
			continue
		}
		end := len(lines)
		for _, next := range headings[i+1:] {
			if next.level <= h.level {
				end = next.startLine
				break
			}
		}
		start := h.endLine + 1
		if start > end {
			start = end
		}
		return strings.TrimSpace(strings.Join(lines[start:end], "\n")), true
	}
	return "", false
}

// Headings lists the titles of every heading in body, in document order.
func Headings(body string) []string {
	spans := scanHeadings(body, strings.Split(body, "\n"))
	titles := make([]string, 0, len(spans))
	for _, h := range spans {
		titles = append(titles, h.title)
	}
	return titles
}

func scanHeadings(body string, lines []string) []headingSpan {
	src := []byte(body)
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))

	starts := make([]int, len(lines))
	offset := 0
	for i, line := range lines {
		starts[i] = offset
		offset += len(line) + 1
	}
	lineOf := func(pos int) int {
		return sort.Search(len(starts), func(i int) bool { return starts[i] > pos }) - 1
	}

	var spans []headingSpan
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		segs := h.Lines()
		if segs.Len() == 0 {
			return ast.WalkSkipChildren, nil
		}

		parts := make([]string, 0, segs.Len())
		for i := 0; i < segs.Len(); i++ {
			seg := segs.At(i)
			parts = append(parts, strings.TrimSpace(string(seg.Value(src))))
		}

		startLine := lineOf(segs.At(0).Start)
		endLine := lineOf(segs.At(segs.Len() - 1).Start)
		// Setext headings are followed by their underline.
		if !isATXLine(lines[startLine]) && endLine+1 < len(lines) && isSetextUnderline(lines[endLine+1]) {
			endLine++
		}

		spans = append(spans, headingSpan{
			level:     h.Level,
			title:     strings.Join(parts, " "),
			startLine: startLine,
			endLine:   endLine,
		})
		return ast.WalkSkipChildren, nil
	})
	return spans
}

func isATXLine(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " "), "#")
}

func isSetextUnderline(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	return strings.Trim(trimmed, "=") == "" || strings.Trim(trimmed, "-") == ""
}
