// internal/workers/assessment/validate-esg-data/handler_test.go
package validateesgdata

import (
	"context"
	"testing"
	"time"

	"esg-workers/internal/common/logger"
	"esg-workers/internal/esg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestConfig() *Config {
	return &Config{
		Timeout: 30 * time.Second,
	}
}

func createTestInput() *Input {
	return &Input{
		Company: model.CompanyProfile{
			Name:            "Desert Rose Hotels",
			Sector:          model.SectorHospitality,
			Employees:       40,
			EstablishedYear: 2015,
		},
		Locations: []model.LocationRecord{
			{
				Name:           "Main Hotel",
				TotalFloorArea: 800,
				Utilities: map[model.UtilityKind]model.UtilityReading{
					model.UtilityElectricity: {MonthlyConsumption: 15000, Provider: "DEWA"},
					model.UtilityWater:       {MonthlyConsumption: 50, Provider: "DEWA"},
				},
			},
		},
		Answers: map[string]model.AnswerRecord{
			"q1": {
				Question:   "Do you track energy consumption?",
				Answer:     model.BoolAnswer(true),
				Frameworks: []string{"DST"},
				Category:   model.CategoryEnvironmental,
			},
		},
		Tasks: []model.TaskRecord{
			{
				Title:      "Install sub-meters",
				Category:   model.TaskEnergy,
				Status:     model.StatusCompleted,
				Priority:   model.PriorityHigh,
				Frameworks: []string{"DST"},
			},
		},
	}
}

// ==========================
// Execute Tests
// ==========================

func TestExecute_CompleteInput(t *testing.T) {
	handler := NewHandler(createTestConfig(), logger.NewTestLogger(t))

	output, err := handler.Execute(context.Background(), createTestInput())
	require.NoError(t, err)

	assert.True(t, output.IsValid)
	assert.Equal(t, 100.0, output.CompletenessScore)
	assert.Equal(t, 0, output.Summary.Errors)
}

func TestExecute_EmptyInput(t *testing.T) {
	handler := NewHandler(createTestConfig(), logger.NewTestLogger(t))

	output, err := handler.Execute(context.Background(), &Input{})
	require.NoError(t, err)

	assert.False(t, output.IsValid)
	assert.Greater(t, output.Summary.Errors, 0)
	assert.Equal(t, len(output.Issues), output.Summary.TotalIssues)
}

func TestExecute_IssuesSurfaceInOutput(t *testing.T) {
	handler := NewHandler(createTestConfig(), logger.NewTestLogger(t))

	input := createTestInput()
	input.Company.Employees = 0

	output, err := handler.Execute(context.Background(), input)
	require.NoError(t, err)

	var fields []string
	for _, issue := range output.Issues {
		fields = append(fields, issue.Field)
	}
	assert.Contains(t, fields, "company.employees")
}

func TestExecute_YearCutoffFromConfig(t *testing.T) {
	cfg := createTestConfig()
	cfg.EstablishedYearCutoff = 2010
	handler := NewHandler(cfg, logger.NewTestLogger(t))

	input := createTestInput()
	input.Company.EstablishedYear = 2015

	output, err := handler.Execute(context.Background(), input)
	require.NoError(t, err)

	var fields []string
	for _, issue := range output.Issues {
		fields = append(fields, issue.Field)
	}
	assert.Contains(t, fields, "company.establishedYear")
}
