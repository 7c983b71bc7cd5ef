// Package markdown reads knowledge-base documents: YAML frontmatter, the
// body that follows it, and heading-delimited sections of that body.
//
// Consumers depend on the Parser interface so detectors can be exercised
// against synthetic documents without touching the filesystem.
package markdown

import (
	"fmt"
	"os"
)

// Frontmatter is the decoded YAML block at the top of a document.
// Values keep whatever shape YAML gave them (strings, lists, mappings).
type Frontmatter map[string]interface{}

// String returns the value for key when it is a string, or "".
func (f Frontmatter) String(key string) string {
	s, _ := f[key].(string)
	return s
}

// Parser is the document access capability used by health checks.
type Parser interface {
	// ReadFile returns the full text of the document at path.
	ReadFile(path string) (string, error)

	// ParseFrontmatter returns the frontmatter of the document at path.
	// A document without a frontmatter block yields an empty mapping, not an error.
	ParseFrontmatter(path string) (Frontmatter, error)

	// BodyWithoutFrontmatter strips a leading frontmatter block from text.
	BodyWithoutFrontmatter(text string) string

	// ExtractSection returns the text under the heading titled exactly
	// heading, up to the next heading of the same or higher level.
	// The boolean is false when no such heading exists.
	ExtractSection(body, heading string) (string, bool)
}

// FileParser is the Parser backed by the local filesystem.
type FileParser struct{}

// NewFileParser returns a filesystem-backed Parser.
func NewFileParser() *FileParser {
	return &FileParser{}
}

// ReadFile implements Parser.
func (p *FileParser) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// ParseFrontmatter implements Parser.
func (p *FileParser) ParseFrontmatter(path string) (Frontmatter, error) {
	text, err := p.ReadFile(path)
	if err != nil {
		return nil, err
	}
	fm, err := ParseFrontmatterText(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fm, nil
}

// BodyWithoutFrontmatter implements Parser.
func (p *FileParser) BodyWithoutFrontmatter(text string) string {
	return BodyWithoutFrontmatter(text)
}

// ExtractSection implements Parser.
func (p *FileParser) ExtractSection(body, heading string) (string, bool) {
	return ExtractSection(body, heading)
}
