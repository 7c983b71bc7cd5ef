package health

import (
	"math"
	"regexp"
	"strings"
)

var orderedListItem = regexp.MustCompile(`^\d+\.\s`)

// CountWords returns the number of whitespace-delimited tokens in text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// ProseRatio is the fraction of non-blank lines in body that are prose,
// i.e. not headings, list items, code fences or table rows.
// A body with no non-blank lines has ratio 0.
func ProseRatio(body string) float64 {
	nonBlank, prose := 0, 0
	for _, line := range strings.Split(body, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		nonBlank++
		if !isStructuralLine(strings.TrimLeft(line, " \t")) {
			prose++
		}
	}
	if nonBlank == 0 {
		return 0.0
	}
	return float64(prose) / float64(nonBlank)
}

func isStructuralLine(line string) bool {
	switch {
	case strings.HasPrefix(line, "#"):
		return true
	case strings.HasPrefix(line, "- "), strings.HasPrefix(line, "* "):
		return true
	case orderedListItem.MatchString(line):
		return true
	case strings.HasPrefix(line, "```"):
		return true
	case strings.HasPrefix(line, "|"):
		return true
	}
	return false
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
