package health

import (
	"github.com/dewey-kb/dewey/internal/config"
	"github.com/dewey-kb/dewey/internal/markdown"
)

// KnownTriggers lists every trigger name in default registration order:
// the depth-independent triggers first, then the depth-gated ones.
var KnownTriggers = []string{
	TriggerSourceDrift,
	TriggerDepthAccuracy,
	TriggerSourcePrimacy,
	TriggerWhyQuality,
	TriggerConcreteExamples,
	TriggerCitationQuality,
	TriggerSourceAuthority,
	TriggerProvenanceCompleteness,
	TriggerRecommendationCoverage,
}

// DefaultTriggers builds all nine triggers with thresholds from cfg.
func DefaultTriggers(parser markdown.Parser, cfg config.HealthConfig) []Trigger {
	drift := NewSourceDriftTrigger(parser)
	drift.MaxAgeDays = cfg.SourceDrift.MaxAgeDays

	why := NewWhyQualityTrigger(parser)
	why.MinWords = cfg.WhyQuality.MinWords

	citations := NewCitationQualityTrigger(parser)
	citations.DuplicateThreshold = cfg.CitationQuality.DuplicateThreshold

	return []Trigger{
		drift,
		NewDepthAccuracyTrigger(parser),
		NewSourcePrimacyTrigger(parser),
		why,
		NewConcreteExamplesTrigger(parser),
		citations,
		NewSourceAuthorityTrigger(parser),
		NewProvenanceCompletenessTrigger(parser),
		NewRecommendationCoverageTrigger(parser),
	}
}

// NewDefaultRegistry registers DefaultTriggers in KnownTriggers order.
func NewDefaultRegistry(parser markdown.Parser, cfg config.HealthConfig) (*TriggerRegistry, error) {
	registry := NewTriggerRegistry()
	for _, trigger := range DefaultTriggers(parser, cfg) {
		if err := registry.Register(trigger); err != nil {
			return nil, err
		}
	}
	return registry, nil
}
