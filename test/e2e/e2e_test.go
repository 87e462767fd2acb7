// test/e2e/e2e_test.go
package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esg-workers/internal/common/logger"
	"esg-workers/internal/esg/model"

	calculatecarbonfootprint "esg-workers/internal/workers/assessment/calculate-carbon-footprint"
	calculateesgscore "esg-workers/internal/workers/assessment/calculate-esg-score"
	checkframeworkcompliance "esg-workers/internal/workers/assessment/check-framework-compliance"
	generateassessment "esg-workers/internal/workers/assessment/generate-assessment"
	validateesgdata "esg-workers/internal/workers/assessment/validate-esg-data"
)

// testCompany is a hospitality SME with one location, a small questionnaire,
// and a task backlog spanning two frameworks.
func testCompany() (model.CompanyProfile, []model.LocationRecord, map[string]model.AnswerRecord, []model.TaskRecord) {
	company := model.CompanyProfile{
		Name:            "Desert Rose Hotels",
		Sector:          model.SectorHospitality,
		Employees:       40,
		EstablishedYear: 2015,
	}
	locations := []model.LocationRecord{
		{
			Name:           "Main Hotel",
			TotalFloorArea: 800,
			Utilities: map[model.UtilityKind]model.UtilityReading{
				model.UtilityElectricity: {MonthlyConsumption: 15000, Provider: "DEWA"},
				model.UtilityWater:       {MonthlyConsumption: 50, Provider: "DEWA"},
				model.UtilityNaturalGas:  {MonthlyConsumption: 100},
			},
		},
	}
	answers := map[string]model.AnswerRecord{
		"q1": {
			Question:   "Do you track energy consumption?",
			Answer:     model.BoolAnswer(true),
			Frameworks: []string{"DST"},
			Category:   model.CategoryEnvironmental,
		},
		"q2": {
			Question:   "Describe your local hiring policy",
			Answer:     model.TextAnswer("local-first recruiting"),
			Frameworks: []string{"GRI"},
			Category:   model.CategorySocial,
		},
	}
	tasks := []model.TaskRecord{
		{
			Title:      "Install sub-meters",
			Category:   model.TaskEnergy,
			Status:     model.StatusCompleted,
			Priority:   model.PriorityHigh,
			Frameworks: []string{"DST"},
		},
		{
			Title:      "Publish code of conduct",
			Category:   model.TaskGovernance,
			Status:     model.StatusInProgress,
			Priority:   model.PriorityMedium,
			Frameworks: []string{"GRI"},
		},
	}
	return company, locations, answers, tasks
}

// TestAssessmentPipeline runs the per-stage workers in process order and
// checks their outputs agree with the combined generate-assessment worker.
func TestAssessmentPipeline(t *testing.T) {
	log := logger.NewTestLogger(t)
	ctx := context.Background()

	company, locations, answers, tasks := testCompany()

	// Stage 1: validation gate.
	validateHandler := validateesgdata.NewHandler(&validateesgdata.Config{Timeout: 30 * time.Second}, log)
	validated, err := validateHandler.Execute(ctx, &validateesgdata.Input{
		Company:   company,
		Locations: locations,
		Answers:   answers,
		Tasks:     tasks,
	})
	require.NoError(t, err)
	require.True(t, validated.IsValid, "fixture data should pass validation: %v", validated.Issues)

	// Stage 2: scoring.
	scoreHandler, err := calculateesgscore.NewHandler(&calculateesgscore.Config{Timeout: 30 * time.Second}, log)
	require.NoError(t, err)
	scored, err := scoreHandler.Execute(ctx, &calculateesgscore.Input{
		Sector:  company.Sector,
		Answers: answers,
		Tasks:   tasks,
	})
	require.NoError(t, err)
	assert.Positive(t, scored.Scores.Overall)
	assert.Positive(t, scored.Scores.Environmental)

	// Stage 3: footprint and benchmark.
	footprintHandler, err := calculatecarbonfootprint.NewHandler(&calculatecarbonfootprint.Config{Timeout: 30 * time.Second}, log)
	require.NoError(t, err)
	footprinted, err := footprintHandler.Execute(ctx, &calculatecarbonfootprint.Input{
		Company:   company,
		Locations: locations,
	})
	require.NoError(t, err)
	assert.Positive(t, footprinted.Footprint.TotalAnnual)
	assert.NotEqual(t, model.PerformanceUnknown, footprinted.Benchmark.OverallRanking)

	// Stage 4: compliance.
	complianceHandler := checkframeworkcompliance.NewHandler(&checkframeworkcompliance.Config{Timeout: 30 * time.Second}, log)
	complied, err := complianceHandler.Execute(ctx, &checkframeworkcompliance.Input{
		Tasks:   tasks,
		Answers: answers,
	})
	require.NoError(t, err)
	require.Len(t, complied.Compliance, 2)
	assert.Equal(t, []string{"DST", "GRI"}, complied.Frameworks)

	// Combined worker must agree with the staged results.
	generateHandler, err := generateassessment.NewHandler(
		&generateassessment.Config{
			ResultIndex: "esg-assessments",
			CacheTTL:    time.Minute,
			Timeout:     60 * time.Second,
		},
		nil, nil, nil, log,
	)
	require.NoError(t, err)

	combined, err := generateHandler.Execute(ctx, &generateassessment.Input{
		Company:   &company,
		Locations: locations,
		Answers:   answers,
		Tasks:     tasks,
	})
	require.NoError(t, err)

	a := combined.Assessment
	assert.Equal(t, validated.IsValid, a.Validation.IsValid)
	assert.Equal(t, validated.CompletenessScore, a.Validation.CompletenessScore)
	assert.Equal(t, scored.Scores, a.Scores)
	assert.Equal(t, footprinted.Footprint, a.Footprint)
	assert.Equal(t, footprinted.Benchmark, a.Benchmark)
	assert.Equal(t, complied.Compliance, a.Compliance)
	assert.NotEmpty(t, a.ID)
	assert.False(t, a.GeneratedAt.IsZero())
}

// TestAssessmentPipeline_DegradedData makes sure the pipeline stays total on
// poor input: stages still produce outputs, validity is surfaced, nothing
// errors.
func TestAssessmentPipeline_DegradedData(t *testing.T) {
	log := logger.NewTestLogger(t)
	ctx := context.Background()

	company := model.CompanyProfile{Name: "Shell Co"}

	validateHandler := validateesgdata.NewHandler(&validateesgdata.Config{Timeout: 30 * time.Second}, log)
	validated, err := validateHandler.Execute(ctx, &validateesgdata.Input{Company: company})
	require.NoError(t, err)
	assert.False(t, validated.IsValid)

	generateHandler, err := generateassessment.NewHandler(
		&generateassessment.Config{CacheTTL: time.Minute, Timeout: 60 * time.Second},
		nil, nil, nil, log,
	)
	require.NoError(t, err)

	combined, err := generateHandler.Execute(ctx, &generateassessment.Input{Company: &company})
	require.NoError(t, err)

	assert.False(t, combined.Assessment.Validation.IsValid)
	assert.Equal(t, model.CarbonFootprint{}, combined.Assessment.Footprint)
	assert.Equal(t, model.PerformanceUnknown, combined.Assessment.Benchmark.OverallRanking)
}
