// internal/workers/assessment/generate-assessment/models.go
package generateassessment

import (
	"esg-workers/internal/esg/assess"
	"esg-workers/internal/esg/model"
)

// Input either carries the assessment payload inline or names a company to
// load from the database. Inline payload wins when both are present.
type Input struct {
	CompanyID    string `json:"companyId,omitempty"`
	ForceRefresh bool   `json:"forceRefresh,omitempty"`

	Company    *model.CompanyProfile         `json:"company,omitempty"`
	Locations  []model.LocationRecord        `json:"locations,omitempty"`
	Answers    map[string]model.AnswerRecord `json:"scopingAnswers,omitempty"`
	Tasks      []model.TaskRecord            `json:"tasks,omitempty"`
	Frameworks []string                      `json:"frameworks,omitempty"`
}

type Output struct {
	Assessment assess.Assessment `json:"assessment"`
	FromCache  bool              `json:"fromCache"`
}
