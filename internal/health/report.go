package health

import (
	"context"
	"fmt"
)

// RunCombinedReport runs both tiers independently and places the results
// side by side.
func (a *Auditor) RunCombinedReport(ctx context.Context) (*CombinedReport, error) {
	tier1, err := a.RunHealthCheck(ctx)
	if err != nil {
		return nil, fmt.Errorf("tier 1: %w", err)
	}
	tier2, err := a.RunTier2Prescreening(ctx)
	if err != nil {
		return nil, fmt.Errorf("tier 2: %w", err)
	}
	return &CombinedReport{Tier1: tier1, Tier2: tier2}, nil
}

// RunHealthCheck runs Tier 1 over kbRoot with thresholds from .dewey/health.yaml.
func RunHealthCheck(ctx context.Context, kbRoot string) (*Tier1Report, error) {
	a, err := NewAuditorFromConfig(kbRoot)
	if err != nil {
		return nil, err
	}
	return a.RunHealthCheck(ctx)
}

// RunTier2Prescreening runs Tier 2 over kbRoot with thresholds from .dewey/health.yaml.
func RunTier2Prescreening(ctx context.Context, kbRoot string) (*Tier2Report, error) {
	a, err := NewAuditorFromConfig(kbRoot)
	if err != nil {
		return nil, err
	}
	return a.RunTier2Prescreening(ctx)
}

// RunCombinedReport runs both tiers over kbRoot.
func RunCombinedReport(ctx context.Context, kbRoot string) (*CombinedReport, error) {
	a, err := NewAuditorFromConfig(kbRoot)
	if err != nil {
		return nil, err
	}
	return a.RunCombinedReport(ctx)
}
