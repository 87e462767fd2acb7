// internal/workers/assessment/check-framework-compliance/models.go
package checkframeworkcompliance

import "esg-workers/internal/esg/model"

type Input struct {
	Tasks      []model.TaskRecord            `json:"tasks"`
	Answers    map[string]model.AnswerRecord `json:"scopingAnswers,omitempty"`
	Frameworks []string                      `json:"frameworks,omitempty"`
}

type Output struct {
	Compliance []model.ComplianceRate `json:"complianceRates"`
	Frameworks []string               `json:"frameworks"`
}
