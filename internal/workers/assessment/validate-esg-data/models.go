// internal/workers/assessment/validate-esg-data/models.go
package validateesgdata

import "esg-workers/internal/esg/model"

type Input struct {
	Company   model.CompanyProfile          `json:"company"`
	Locations []model.LocationRecord        `json:"locations"`
	Answers   map[string]model.AnswerRecord `json:"scopingAnswers"`
	Tasks     []model.TaskRecord            `json:"tasks"`
}

type Output struct {
	IsValid           bool                    `json:"isValid"`
	CompletenessScore float64                 `json:"completenessScore"`
	QualityScore      float64                 `json:"qualityScore"`
	Issues            []model.ValidationIssue `json:"issues"`
	Summary           model.IssueSummary      `json:"summary"`
}
