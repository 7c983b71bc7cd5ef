package health

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dewey-kb/dewey/internal/markdown"
)

// Sections whose list items are treated as recommendations.
var recommendationSections = []string{"Key Guidance", "Watch Out For"}

var (
	inlineLinkPattern   = regexp.MustCompile(`\[([^\]]*)\]\((https?://[^)]+)\)`)
	listItemPattern     = regexp.MustCompile(`(?m)^\s*[-*]\s+`)
	listItemLinePattern = regexp.MustCompile(`^\s*[-*]\s+`)
)

// sourceURLs extracts declared source URLs from frontmatter. Entries may be
// bare strings or mappings with a url key; anything that is not an
// http(s) URL after normalization is ignored.
func sourceURLs(fm markdown.Frontmatter) []string {
	sources, ok := fm["sources"].([]interface{})
	if !ok {
		return []string{}
	}

	urls := []string{}
	for _, entry := range sources {
		u := strings.TrimSpace(sourceEntryString(entry))
		if strings.HasPrefix(u, "url:") {
			u = strings.TrimSpace(strings.TrimPrefix(u, "url:"))
		}
		if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
			urls = append(urls, u)
		}
	}
	return urls
}

// sourceEntryString renders one sources entry as a "url: ..." labelled
// string when it is a mapping carrying a url.
func sourceEntryString(entry interface{}) string {
	switch v := entry.(type) {
	case string:
		return v
	case map[string]interface{}:
		if u, ok := v["url"]; ok {
			return fmt.Sprintf("url: %v", u)
		}
	case nil:
		return ""
	}
	return fmt.Sprint(entry)
}

// inlineLinks returns the http(s) targets of markdown links in text, in order.
func inlineLinks(text string) []string {
	matches := inlineLinkPattern.FindAllStringSubmatch(text, -1)
	urls := make([]string, 0, len(matches))
	for _, m := range matches {
		urls = append(urls, m[2])
	}
	return urls
}
