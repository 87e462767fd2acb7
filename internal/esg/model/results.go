// internal/esg/model/results.go
package model

import "math"

// Round1 rounds to one decimal place. Score and percentage fields are
// rounded once, at result construction, so repeated assessments over equal
// inputs are bit-for-bit identical.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round2 rounds to two decimal places, used for emission tonnages.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ESGScores is the weighted score breakdown, each value in [0,100].
type ESGScores struct {
	Overall       float64 `json:"overall"`
	Environmental float64 `json:"environmental"`
	Social        float64 `json:"social"`
	Governance    float64 `json:"governance"`
}

// Category returns the score for one ESG dimension.
func (s ESGScores) Category(c Category) float64 {
	switch c {
	case CategoryEnvironmental:
		return s.Environmental
	case CategorySocial:
		return s.Social
	default:
		return s.Governance
	}
}

// CarbonFootprint is the annual greenhouse-gas result in tonnes CO2e.
type CarbonFootprint struct {
	TotalAnnual          float64 `json:"totalAnnual"`
	Scope1               float64 `json:"scope1"`
	Scope2               float64 `json:"scope2"`
	EmissionsPerSqm      float64 `json:"emissionsPerSqm"`
	EmissionsPerEmployee float64 `json:"emissionsPerEmployee"`

	// IntensityPerSqm is the unrounded per-sqm intensity, kept for benchmark
	// classification. EmissionsPerSqm is rounded for reporting; classifying
	// from it would quantize intensity to 10 kg/sqm steps and flip bands
	// near a threshold.
	IntensityPerSqm float64 `json:"-"`
}

// ComplianceRate is the completion rate for one framework's tagged tasks.
type ComplianceRate struct {
	Framework string  `json:"framework"`
	Rate      float64 `json:"rate"`
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
}

// BenchmarkComparison classifies measured intensities against the sector's
// benchmark bands.
type BenchmarkComparison struct {
	ElectricityPerformance Performance `json:"electricityPerformance"`
	WaterPerformance       Performance `json:"waterPerformance"`
	CarbonPerformance      Performance `json:"carbonPerformance"`
	OverallRanking         Performance `json:"overallRanking"`
}

// ValidationIssue is one detected data problem. The validator never fails;
// every problem becomes one of these.
type ValidationIssue struct {
	Severity   Severity    `json:"severity"`
	Field      string      `json:"field"`
	Message    string      `json:"message"`
	Value      interface{} `json:"value,omitempty"`
	Suggestion string      `json:"suggestion,omitempty"`
}

// IssueSummary counts issues by severity.
type IssueSummary struct {
	TotalIssues int `json:"totalIssues"`
	Errors      int `json:"errors"`
	Warnings    int `json:"warnings"`
	Info        int `json:"info"`
}

// ValidationResult gates whether the other assessment results should be
// treated as authoritative. Consumers must branch on IsValid before relying
// on scores.
type ValidationResult struct {
	IsValid           bool              `json:"isValid"`
	CompletenessScore float64           `json:"completenessScore"`
	QualityScore      float64           `json:"qualityScore"`
	Issues            []ValidationIssue `json:"issues"`
	Summary           IssueSummary      `json:"summary"`
}

// Summarize counts issues by severity.
func Summarize(issues []ValidationIssue) IssueSummary {
	s := IssueSummary{TotalIssues: len(issues)}
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			s.Errors++
		case SeverityWarning:
			s.Warnings++
		case SeverityInfo:
			s.Info++
		}
	}
	return s
}
