package health

// Trigger names. Downstream reviewers key on these strings.
const (
	TriggerSourceDrift            = "source_drift"
	TriggerDepthAccuracy          = "depth_accuracy"
	TriggerSourcePrimacy          = "source_primacy"
	TriggerWhyQuality             = "why_quality"
	TriggerConcreteExamples       = "concrete_examples"
	TriggerCitationQuality        = "citation_quality"
	TriggerSourceAuthority        = "source_authority"
	TriggerProvenanceCompleteness = "provenance_completeness"
	TriggerRecommendationCoverage = "recommendation_coverage"
)

// Trigger is a Tier 2 detector. It does not judge quality; it decides
// deterministically whether a document needs semantic review and attaches
// the facts a reviewer needs.
//
// Triggers are independent: each one reads the document itself and shares
// no state with the others.
type Trigger interface {
	// Name returns the unique trigger name (one of the Trigger* constants).
	Name() string

	// Philosophy returns the principle the reviewer should judge against.
	Philosophy() string

	// AppliesTo reports whether the trigger runs for a document with the
	// given declared depth ("" when the document declares none).
	AppliesTo(depth string) bool

	// Check inspects the document at path. The error is reserved for
	// documents that cannot be read at all; every other doubt about the
	// document is either a Finding or no Finding.
	Check(path string) ([]Finding, error)
}

// Finding flags one document for semantic review.
type Finding struct {
	File    string                 `json:"file"`
	Trigger string                 `json:"trigger"`
	Reason  string                 `json:"reason"`
	Context map[string]interface{} `json:"context"`
}

// Tier2Report is the review queue plus statistics derived from it.
type Tier2Report struct {
	Queue   []Finding    `json:"queue"`
	Summary Tier2Summary `json:"summary"`
}

// Tier2Summary counts the queue. It is always produced by Summarize so
// that TriggerCounts and FilesWithTriggers agree with Queue.
type Tier2Summary struct {
	TotalFilesScanned int            `json:"total_files_scanned"`
	FilesWithTriggers int            `json:"files_with_triggers"`
	TriggerCounts     map[string]int `json:"trigger_counts"`
}

// Severity grades a Tier 1 issue.
type Severity string

const (
	SeverityFail Severity = "fail"
	SeverityWarn Severity = "warn"
	SeverityPass Severity = "pass"
)

// Issue is one Tier 1 structural result.
type Issue struct {
	File     string   `json:"file"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Tier1Report is the structural issue list and its counts.
type Tier1Report struct {
	Issues  []Issue      `json:"issues"`
	Summary Tier1Summary `json:"summary"`
}

// Tier1Summary counts Tier 1 issues by severity.
type Tier1Summary struct {
	TotalFiles int `json:"total_files"`
	FailCount  int `json:"fail_count"`
	WarnCount  int `json:"warn_count"`
	PassCount  int `json:"pass_count"`
}

// CombinedReport holds both tiers side by side. The halves share nothing.
type CombinedReport struct {
	Tier1 *Tier1Report `json:"tier1"`
	Tier2 *Tier2Report `json:"tier2"`
}
