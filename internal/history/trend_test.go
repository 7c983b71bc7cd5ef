package history

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dewey-kb/dewey/internal/health"
)

func TestCompare(t *testing.T) {
	prev := Snapshot{
		Timestamp: "2024-06-01T09:00:00",
		Tier1:     &health.Tier1Summary{FailCount: 2, WarnCount: 5},
		Tier2: &health.Tier2Summary{
			FilesWithTriggers: 4,
			TriggerCounts:     map[string]int{health.TriggerSourceDrift: 3, health.TriggerWhyQuality: 1},
		},
	}

	tests := []struct {
		name          string
		curr          Snapshot
		wantRegressed bool
		wantDeltas    map[string]int
	}{
		{
			name:          "unchanged",
			curr:          prev,
			wantRegressed: false,
			wantDeltas:    map[string]int{},
		},
		{
			name: "improved",
			curr: Snapshot{
				Tier1: &health.Tier1Summary{FailCount: 0, WarnCount: 5},
				Tier2: &health.Tier2Summary{
					FilesWithTriggers: 2,
					TriggerCounts:     map[string]int{health.TriggerSourceDrift: 2},
				},
			},
			wantRegressed: false,
			wantDeltas:    map[string]int{health.TriggerSourceDrift: -1, health.TriggerWhyQuality: -1},
		},
		{
			name: "new trigger type",
			curr: Snapshot{
				Tier1: &health.Tier1Summary{FailCount: 2, WarnCount: 5},
				Tier2: &health.Tier2Summary{
					FilesWithTriggers: 4,
					TriggerCounts: map[string]int{
						health.TriggerSourceDrift:     3,
						health.TriggerWhyQuality:      1,
						health.TriggerCitationQuality: 1,
					},
				},
			},
			wantRegressed: true,
			wantDeltas:    map[string]int{health.TriggerCitationQuality: 1},
		},
		{
			name: "more failures",
			curr: Snapshot{
				Tier1: &health.Tier1Summary{FailCount: 3, WarnCount: 1},
				Tier2: prev.Tier2,
			},
			wantRegressed: true,
			wantDeltas:    map[string]int{},
		},
		{
			name:          "tier 2 not recorded",
			curr:          Snapshot{Tier1: &health.Tier1Summary{FailCount: 2, WarnCount: 5}},
			wantRegressed: false,
			wantDeltas:    map[string]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trend := Compare(prev, tt.curr)
			assert.Equal(t, tt.wantRegressed, trend.Regressed)
			assert.Equal(t, tt.wantDeltas, trend.TriggerDeltas)
		})
	}
}

func TestCompare_Deltas(t *testing.T) {
	prev := Snapshot{Timestamp: "a", Tier1: &health.Tier1Summary{FailCount: 1, WarnCount: 4}}
	curr := Snapshot{Timestamp: "b", Tier1: &health.Tier1Summary{FailCount: 3, WarnCount: 2}}

	trend := Compare(prev, curr)
	assert.Equal(t, "a", trend.From)
	assert.Equal(t, "b", trend.To)
	assert.Equal(t, 2, trend.FailDelta)
	assert.Equal(t, -2, trend.WarnDelta)
	assert.True(t, trend.Regressed)
}

func TestLatest(t *testing.T) {
	_, ok := Latest(nil)
	assert.False(t, ok)
	_, ok = Latest([]Snapshot{{Timestamp: "a"}})
	assert.False(t, ok)

	trend, ok := Latest([]Snapshot{{Timestamp: "a"}, {Timestamp: "b"}, {Timestamp: "c"}})
	assert.True(t, ok)
	assert.Equal(t, "b", trend.From)
	assert.Equal(t, "c", trend.To)
}
