package markdown

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const fence = "---"

// ErrUnterminatedFrontmatter is returned when an opening "---" line has no
// matching closing line.
var ErrUnterminatedFrontmatter = errors.New("frontmatter block is not terminated")

// splitFrontmatter separates the raw YAML block from the body.
// found reports whether text opens with a frontmatter fence at all.
func splitFrontmatter(text string) (yamlText, body string, found bool, err error) {
	text = strings.TrimPrefix(text, "\ufeff")
	lines := strings.Split(text, "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], " \t\r") != fence {
		return "", text, false, nil
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], " \t\r") == fence {
			yamlText = strings.Join(lines[1:i], "\n")
			body = strings.Join(lines[i+1:], "\n")
			return yamlText, body, true, nil
		}
	}
	return "", text, true, ErrUnterminatedFrontmatter
}

// ParseFrontmatterText decodes the frontmatter of a document held in memory.
func ParseFrontmatterText(text string) (Frontmatter, error) {
	yamlText, _, found, err := splitFrontmatter(text)
	if err != nil {
		return nil, err
	}
	if !found || strings.TrimSpace(yamlText) == "" {
		return Frontmatter{}, nil
	}

	// Decode into a plain map so nested mappings stay map[string]interface{};
	// only the top level becomes a Frontmatter.
	var m map[string]interface{}
	if err := yaml.Unmarshal([]byte(yamlText), &m); err != nil {
		return nil, fmt.Errorf("parsing frontmatter YAML: %w", err)
	}
	if m == nil {
		return Frontmatter{}, nil
	}
	return Frontmatter(m), nil
}

// BodyWithoutFrontmatter returns text with any leading frontmatter block removed.
// An unterminated block is left in place.
func BodyWithoutFrontmatter(text string) string {
	_, body, _, _ := splitFrontmatter(text)
	return body
}
