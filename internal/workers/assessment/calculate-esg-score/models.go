// internal/workers/assessment/calculate-esg-score/models.go
package calculateesgscore

import "esg-workers/internal/esg/model"

type Input struct {
	Sector  model.Sector                  `json:"sector"`
	Answers map[string]model.AnswerRecord `json:"scopingAnswers"`
	Tasks   []model.TaskRecord            `json:"tasks"`
}

type Output struct {
	Scores model.ESGScores `json:"esgScores"`
}
