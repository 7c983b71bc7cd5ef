package health

import (
	"fmt"
	"time"

	"github.com/dewey-kb/dewey/internal/markdown"
)

const isoDate = "2006-01-02"

// SourceDriftTrigger flags documents whose last_validated date is missing,
// unreadable, or older than MaxAgeDays. The context carries the declared
// source URLs so a reviewer can re-check them.
type SourceDriftTrigger struct {
	Parser markdown.Parser

	// MaxAgeDays is the freshness window. Default: 90
	MaxAgeDays int

	// Now returns the current time (overridable for tests).
	Now func() time.Time
}

// NewSourceDriftTrigger creates the trigger with the default 90-day window.
func NewSourceDriftTrigger(parser markdown.Parser) *SourceDriftTrigger {
	return &SourceDriftTrigger{
		Parser:     parser,
		MaxAgeDays: 90,
		Now:        time.Now,
	}
}

// Name implements Trigger.
func (t *SourceDriftTrigger) Name() string {
	return TriggerSourceDrift
}

// Philosophy implements Trigger.
func (t *SourceDriftTrigger) Philosophy() string {
	return "Guidance drifts as its sources change. Content should be re-validated against its sources regularly."
}

// AppliesTo implements Trigger. Every document is checked.
func (t *SourceDriftTrigger) AppliesTo(depth string) bool {
	return true
}

// Check implements Trigger.
func (t *SourceDriftTrigger) Check(path string) ([]Finding, error) {
	doc, err := readDocument(t.Parser, path)
	if err != nil {
		return nil, err
	}

	urls := sourceURLs(doc.fm)
	ctx := func(lastValidated, ageDays interface{}) map[string]interface{} {
		return map[string]interface{}{
			"last_validated": lastValidated,
			"age_days":       ageDays,
			"source_urls":    urls,
		}
	}

	if doc.fmErr != nil {
		return []Finding{doc.finding(t.Name(),
			fmt.Sprintf("Frontmatter could not be parsed; cannot determine content age (%v)", doc.fmErr),
			ctx(nil, nil))}, nil
	}

	lastValidated := dateString(doc.fm["last_validated"])
	if lastValidated == "" {
		return []Finding{doc.finding(t.Name(),
			"Missing last_validated date; cannot determine content age",
			ctx(nil, nil))}, nil
	}

	validated, err := time.Parse(isoDate, lastValidated)
	if err != nil {
		return []Finding{doc.finding(t.Name(),
			fmt.Sprintf("Invalid last_validated date: %s", lastValidated),
			ctx(lastValidated, nil))}, nil
	}

	age := daysBetween(validated, t.now())
	if age <= t.MaxAgeDays {
		return nil, nil
	}
	return []Finding{doc.finding(t.Name(),
		fmt.Sprintf("Content is %d days old (threshold: %d)", age, t.MaxAgeDays),
		ctx(lastValidated, age))}, nil
}

func (t *SourceDriftTrigger) now() time.Time {
	if t.Now == nil {
		return time.Now()
	}
	return t.Now()
}

// dateString renders a frontmatter date value. YAML decodes unquoted dates
// as time.Time and quoted ones as strings; both are accepted.
func dateString(v interface{}) string {
	switch d := v.(type) {
	case nil:
		return ""
	case string:
		return d
	case time.Time:
		return d.Format(isoDate)
	default:
		return fmt.Sprint(d)
	}
}

// daysBetween counts calendar days from the date of from to the date of to.
func daysBetween(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	start := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	end := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}
