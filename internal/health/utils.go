package health

import (
	"strings"
)

// ProposalsDir holds proposed documents that are not yet part of the KB.
// Neither tier inspects it.
const ProposalsDir = "_proposals"

// DefaultExcludePatterns are skipped by both tiers.
var DefaultExcludePatterns = []string{
	ProposalsDir + "/",
}

// ShouldExcludePath checks if a slash-separated path relative to the
// knowledge directory matches any exclude pattern.
// Patterns can be:
//   - Directory prefixes: "_proposals/" matches "_proposals/draft.md"
//   - Nested directories: "_proposals/" matches "area/_proposals/draft.md"
//   - File suffixes: ".draft.md" matches "area/topic.draft.md"
func ShouldExcludePath(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		// Match at path component boundaries so "_proposals/" does not
		// match "not_proposals/".
		if strings.HasPrefix(relPath, pattern) ||
			strings.Contains(relPath, "/"+pattern) ||
			strings.HasSuffix(relPath, pattern) {
			return true
		}
	}
	return false
}

// isHiddenName reports whether a file or directory name is hidden.
func isHiddenName(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}

func isMarkdown(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".md")
}
