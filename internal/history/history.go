// Package history keeps an append-only log of health summaries so that
// regressions between audits can be spotted.
package history

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dewey-kb/dewey/internal/config"
	"github.com/dewey-kb/dewey/internal/health"
)

const (
	// DirName holds the log under .dewey/.
	DirName = "history"

	// LogFileName is the newline-delimited JSON log.
	LogFileName = "health-log.jsonl"

	// TimestampFormat is second precision, local time.
	TimestampFormat = "2006-01-02T15:04:05"

	// DefaultLimit is how many snapshots ReadHistory callers usually want.
	DefaultLimit = 10
)

// now is overridable for tests.
var now = time.Now

// Snapshot is one recorded audit. Tier1 and Tier2 are nil when that tier
// was not recorded; they serialize as null.
type Snapshot struct {
	Timestamp string               `json:"timestamp"`
	Tier1     *health.Tier1Summary `json:"tier1"`
	Tier2     *health.Tier2Summary `json:"tier2"`
}

// Time parses Timestamp in the local zone.
func (s Snapshot) Time() (time.Time, error) {
	return time.ParseInLocation(TimestampFormat, s.Timestamp, time.Local)
}

// LogPath returns the history log location for kbRoot.
func LogPath(kbRoot string) string {
	return filepath.Join(kbRoot, config.DirName, DirName, LogFileName)
}

// RecordSnapshot appends one snapshot to the log and returns the log path.
// A nil tier2 is recorded as null. Existing records are never rewritten.
func RecordSnapshot(kbRoot string, tier1 health.Tier1Summary, tier2 *health.Tier2Summary) (string, error) {
	path := LogPath(kbRoot)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("creating history directory: %w", err)
	}

	snapshot := Snapshot{
		Timestamp: now().Format(TimestampFormat),
		Tier1:     &tier1,
		Tier2:     tier2,
	}
	line, err := json.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("serializing snapshot: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return "", fmt.Errorf("opening history log: %w", err)
	}
	if _, err := f.Write(append(line, '\n')); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("appending snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing history log: %w", err)
	}
	return path, nil
}

// ReadHistory returns the last limit snapshots, oldest first. A missing or
// empty log yields an empty slice. A limit of zero or less returns every
// snapshot.
func ReadHistory(kbRoot string, limit int) ([]Snapshot, error) {
	f, err := os.Open(LogPath(kbRoot))
	if errors.Is(err, os.ErrNotExist) {
		return []Snapshot{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening history log: %w", err)
	}
	defer f.Close()

	snapshots := []Snapshot{}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var s Snapshot
		if err := json.Unmarshal([]byte(line), &s); err != nil {
			return nil, fmt.Errorf("parsing history line %d: %w", lineNo, err)
		}
		snapshots = append(snapshots, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading history log: %w", err)
	}

	if limit > 0 && len(snapshots) > limit {
		snapshots = snapshots[len(snapshots)-limit:]
	}
	return snapshots, nil
}
