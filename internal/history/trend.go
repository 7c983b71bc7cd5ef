package history

// Trend compares two snapshots. Deltas are current minus previous; a
// positive FailDelta means more failures than before.
type Trend struct {
	From string `json:"from"`
	To   string `json:"to"`

	FailDelta int `json:"fail_delta"`
	WarnDelta int `json:"warn_delta"`

	// FilesWithTriggersDelta is zero when either snapshot lacks Tier 2.
	FilesWithTriggersDelta int `json:"files_with_triggers_delta"`

	// TriggerDeltas holds every trigger whose count changed.
	TriggerDeltas map[string]int `json:"trigger_deltas"`

	// Regressed is set when a failure or trigger count grew.
	Regressed bool `json:"regressed"`
}

// Compare computes the trend from prev to curr.
func Compare(prev, curr Snapshot) Trend {
	trend := Trend{
		From:          prev.Timestamp,
		To:            curr.Timestamp,
		TriggerDeltas: map[string]int{},
	}

	if prev.Tier1 != nil && curr.Tier1 != nil {
		trend.FailDelta = curr.Tier1.FailCount - prev.Tier1.FailCount
		trend.WarnDelta = curr.Tier1.WarnCount - prev.Tier1.WarnCount
	}

	if prev.Tier2 != nil && curr.Tier2 != nil {
		trend.FilesWithTriggersDelta = curr.Tier2.FilesWithTriggers - prev.Tier2.FilesWithTriggers
		for name, n := range curr.Tier2.TriggerCounts {
			if d := n - prev.Tier2.TriggerCounts[name]; d != 0 {
				trend.TriggerDeltas[name] = d
			}
		}
		for name, n := range prev.Tier2.TriggerCounts {
			if _, ok := curr.Tier2.TriggerCounts[name]; !ok && n != 0 {
				trend.TriggerDeltas[name] = -n
			}
		}
	}

	trend.Regressed = trend.FailDelta > 0 || trend.FilesWithTriggersDelta > 0
	for _, d := range trend.TriggerDeltas {
		if d > 0 {
			trend.Regressed = true
		}
	}
	return trend
}

// Latest returns the trend across the last two snapshots, or false when
// there are fewer than two.
func Latest(snapshots []Snapshot) (Trend, bool) {
	if len(snapshots) < 2 {
		return Trend{}, false
	}
	return Compare(snapshots[len(snapshots)-2], snapshots[len(snapshots)-1]), true
}
