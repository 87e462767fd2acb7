// internal/esg/score/engine.go

// Package score computes weighted ESG category scores from questionnaire
// answers and task completion, combined into an overall score with
// sector-specific category weights.
package score

import "esg-workers/internal/esg/model"

// Question and task contributions to a category score.
const (
	questionShare = 0.4
	taskShare     = 0.6
)

// Status values for task scoring.
const (
	completedValue  = 100.0
	inProgressValue = 50.0
)

// Engine is a pure scoring engine over a read-only weight table; safe for
// concurrent use.
type Engine struct {
	weights WeightTable
}

// NewEngine builds a score engine over the given weight table.
func NewEngine(weights WeightTable) *Engine {
	return &Engine{weights: weights}
}

// Score computes the ESG score breakdown. Categories with neither answers
// nor tasks score zero rather than being skipped, so a company with no
// governance activity is visibly penalized.
func (e *Engine) Score(answers map[string]model.AnswerRecord, tasks []model.TaskRecord, sector model.Sector) model.ESGScores {
	environmental := e.categoryScore(answers, tasks, model.CategoryEnvironmental)
	social := e.categoryScore(answers, tasks, model.CategorySocial)
	governance := e.categoryScore(answers, tasks, model.CategoryGovernance)

	w := e.weights.weightsFor(sector)
	overall := environmental*w.Environmental + social*w.Social + governance*w.Governance

	return model.ESGScores{
		Overall:       model.Round1(overall),
		Environmental: model.Round1(environmental),
		Social:        model.Round1(social),
		Governance:    model.Round1(governance),
	}
}

func (e *Engine) categoryScore(answers map[string]model.AnswerRecord, tasks []model.TaskRecord, category model.Category) float64 {
	var categoryAnswers []model.AnswerRecord
	for _, a := range answers {
		if a.Category == category {
			categoryAnswers = append(categoryAnswers, a)
		}
	}

	var categoryTasks []model.TaskRecord
	for _, t := range tasks {
		if string(t.Category) == string(category) {
			categoryTasks = append(categoryTasks, t)
		}
	}

	if len(categoryAnswers) == 0 && len(categoryTasks) == 0 {
		return 0
	}

	combined := scoreQuestions(categoryAnswers)*questionShare + scoreTasks(categoryTasks)*taskShare
	return clamp(combined, 0, 100)
}

// scoreQuestions is a weighted mean over answers; each answer weighs at
// least 1 and grows with the number of frameworks it maps to.
func scoreQuestions(answers []model.AnswerRecord) float64 {
	if len(answers) == 0 {
		return 0
	}

	var totalScore, totalWeight float64
	for _, a := range answers {
		weight := frameworkWeight(a.Frameworks)

		var value float64
		switch a.Answer.Kind() {
		case model.AnswerBool:
			if a.Answer.Bool() {
				value = 100
			}
		case model.AnswerText:
			// A non-blank text answer counts as a positive response; the
			// TextAnswer constructor already folds blank text into Empty.
			value = 100
		case model.AnswerEmpty:
			value = 0
		}

		totalScore += value * weight
		totalWeight += weight
	}

	if totalWeight == 0 {
		return 0
	}
	return totalScore / totalWeight
}

// scoreTasks is a weighted mean over tasks; weight combines priority and
// framework coverage, value follows completion status.
func scoreTasks(tasks []model.TaskRecord) float64 {
	if len(tasks) == 0 {
		return 0
	}

	var totalScore, totalWeight float64
	for _, t := range tasks {
		weight := t.Priority.Weight() * frameworkWeight(t.Frameworks)

		var value float64
		switch t.Status {
		case model.StatusCompleted:
			value = completedValue
		case model.StatusInProgress:
			value = inProgressValue
		}

		totalScore += value * weight
		totalWeight += weight
	}

	if totalWeight == 0 {
		return 0
	}
	return totalScore / totalWeight
}

func frameworkWeight(frameworks []string) float64 {
	if len(frameworks) > 1 {
		return float64(len(frameworks))
	}
	return 1
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
