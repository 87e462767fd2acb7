// internal/workers/assessment/calculate-esg-score/handler_test.go
package calculateesgscore

import (
	"context"
	"testing"
	"time"

	"esg-workers/internal/common/logger"
	"esg-workers/internal/esg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestConfig() *Config {
	return &Config{
		Timeout: 30 * time.Second,
	}
}

func newTestHandler(t *testing.T) *Handler {
	handler, err := NewHandler(createTestConfig(), logger.NewTestLogger(t))
	require.NoError(t, err)
	return handler
}

func TestExecute_SingleEnvironmentalCategory(t *testing.T) {
	handler := newTestHandler(t)

	input := &Input{
		Sector: model.SectorHospitality,
		Answers: map[string]model.AnswerRecord{
			"q1": {
				Question: "Do you track energy consumption?",
				Answer:   model.BoolAnswer(true),
				Category: model.CategoryEnvironmental,
			},
		},
		Tasks: []model.TaskRecord{
			{
				Title:    "Install sub-meters",
				Category: model.TaskEnvironmental,
				Status:   model.StatusCompleted,
				Priority: model.PriorityHigh,
			},
		},
	}

	output, err := handler.Execute(context.Background(), input)
	require.NoError(t, err)

	// Environmental scores 100, the other two categories have no activity.
	// Hospitality weights environmental at 0.45.
	assert.Equal(t, 100.0, output.Scores.Environmental)
	assert.Equal(t, 0.0, output.Scores.Social)
	assert.Equal(t, 0.0, output.Scores.Governance)
	assert.Equal(t, 45.0, output.Scores.Overall)
}

func TestExecute_UnknownSectorUsesDefaultWeights(t *testing.T) {
	handler := newTestHandler(t)

	input := &Input{
		Sector: model.Sector("mining"),
		Answers: map[string]model.AnswerRecord{
			"q1": {
				Question: "Do you track energy consumption?",
				Answer:   model.BoolAnswer(true),
				Category: model.CategoryEnvironmental,
			},
		},
	}

	output, err := handler.Execute(context.Background(), input)
	require.NoError(t, err)

	// Answers alone fill only the question share of the category.
	assert.Equal(t, 40.0, output.Scores.Environmental)
	assert.Equal(t, 16.0, output.Scores.Overall)
}

func TestExecute_EmptyInputScoresZero(t *testing.T) {
	handler := newTestHandler(t)

	output, err := handler.Execute(context.Background(), &Input{Sector: model.SectorRetail})
	require.NoError(t, err)

	assert.Equal(t, model.ESGScores{}, output.Scores)
}

func TestExecute_NegativeAnswersLowerTheScore(t *testing.T) {
	handler := newTestHandler(t)

	input := &Input{
		Sector: model.SectorEducation,
		Answers: map[string]model.AnswerRecord{
			"q1": {
				Question: "Do you have a social responsibility policy?",
				Answer:   model.BoolAnswer(false),
				Category: model.CategorySocial,
			},
			"q2": {
				Question: "Do you run community programs?",
				Answer:   model.BoolAnswer(true),
				Category: model.CategorySocial,
			},
		},
	}

	output, err := handler.Execute(context.Background(), input)
	require.NoError(t, err)

	// Question mean is 50, question share is 0.4 of the category.
	assert.Equal(t, 20.0, output.Scores.Social)
}
