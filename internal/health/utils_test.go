package health

import (
	"testing"
)

func TestShouldExcludePath(t *testing.T) {
	tests := []struct {
		name     string
		relPath  string
		patterns []string
		want     bool
	}{
		// Prefix matches
		{
			name:     "prefix match - proposals directory",
			relPath:  "_proposals/draft.md",
			patterns: DefaultExcludePatterns,
			want:     true,
		},
		{
			name:     "prefix match - directory itself",
			relPath:  "_proposals/",
			patterns: DefaultExcludePatterns,
			want:     true,
		},
		{
			name:     "prefix no match - similar name",
			relPath:  "_proposals_old/draft.md",
			patterns: DefaultExcludePatterns,
			want:     false,
		},

		// Contains matches (pattern after path separator)
		{
			name:     "contains match - nested proposals",
			relPath:  "testing/_proposals/draft.md",
			patterns: DefaultExcludePatterns,
			want:     true,
		},
		{
			name:     "contains no match - without separator",
			relPath:  "not_proposals/draft.md",
			patterns: DefaultExcludePatterns,
			want:     false,
		},

		// Suffix matches
		{
			name:     "suffix match - draft file",
			relPath:  "testing/topic.draft.md",
			patterns: []string{".draft.md"},
			want:     true,
		},
		{
			name:     "suffix no match",
			relPath:  "testing/topic.md",
			patterns: []string{".draft.md"},
			want:     false,
		},

		// Edge cases
		{
			name:     "no patterns",
			relPath:  "testing/topic.md",
			patterns: nil,
			want:     false,
		},
		{
			name:     "area file",
			relPath:  "testing/overview.md",
			patterns: DefaultExcludePatterns,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShouldExcludePath(tt.relPath, tt.patterns)
			if got != tt.want {
				t.Errorf("ShouldExcludePath(%q, %v) = %v, want %v",
					tt.relPath, tt.patterns, got, tt.want)
			}
		})
	}
}

func TestIsHiddenName(t *testing.T) {
	hidden := []string{".git", ".dewey", ".obsidian"}
	visible := []string{"testing", "overview.md", ".", ".."}

	for _, name := range hidden {
		if !isHiddenName(name) {
			t.Errorf("Expected %q to be hidden", name)
		}
	}
	for _, name := range visible {
		if isHiddenName(name) {
			t.Errorf("Expected %q to be visible", name)
		}
	}
}

func TestIsMarkdown(t *testing.T) {
	if !isMarkdown("topic.md") || !isMarkdown("README.MD") || !isMarkdown("topic.ref.md") {
		t.Error("Expected markdown names to match")
	}
	if isMarkdown("notes.txt") || isMarkdown("md") {
		t.Error("Expected non-markdown names not to match")
	}
}
