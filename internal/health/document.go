package health

import (
	"github.com/dewey-kb/dewey/internal/markdown"
)

// document is one trigger's private view of a file. Triggers build their
// own on every Check; nothing is cached between triggers or calls.
type document struct {
	path string
	fm   markdown.Frontmatter
	// fmErr is set when the frontmatter block exists but cannot be decoded.
	// fm is then empty.
	fmErr error
	body  string
}

func readDocument(parser markdown.Parser, path string) (*document, error) {
	text, err := parser.ReadFile(path)
	if err != nil {
		return nil, err
	}

	fm, fmErr := parser.ParseFrontmatter(path)
	if fmErr != nil || fm == nil {
		fm = markdown.Frontmatter{}
	}

	return &document{
		path:  path,
		fm:    fm,
		fmErr: fmErr,
		body:  parser.BodyWithoutFrontmatter(text),
	}, nil
}

// depth returns the declared depth, or "" when absent or not a string.
func (d *document) depth() string {
	return d.fm.String("depth")
}

func (d *document) finding(trigger, reason string, ctx map[string]interface{}) Finding {
	if ctx == nil {
		ctx = map[string]interface{}{}
	}
	return Finding{
		File:    d.path,
		Trigger: trigger,
		Reason:  reason,
		Context: ctx,
	}
}
