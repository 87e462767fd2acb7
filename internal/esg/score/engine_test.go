// internal/esg/score/engine_test.go
package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esg-workers/internal/esg/model"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	table := DefaultWeightTable()
	require.NoError(t, table.Validate())
	return NewEngine(table)
}

func answeredBool(category model.Category, value bool, frameworks ...string) model.AnswerRecord {
	return model.AnswerRecord{
		Question:   "q",
		Answer:     model.BoolAnswer(value),
		Frameworks: frameworks,
		Category:   category,
	}
}

func task(category model.TaskCategory, status model.TaskStatus, priority model.TaskPriority, frameworks ...string) model.TaskRecord {
	return model.TaskRecord{
		Title:      "t",
		Category:   category,
		Status:     status,
		Priority:   priority,
		Frameworks: frameworks,
	}
}

func TestWeightTable_SumsToOne(t *testing.T) {
	table := DefaultWeightTable()
	require.NoError(t, table.Validate())

	for sector, w := range table {
		sum := w.Environmental + w.Social + w.Governance
		assert.InDelta(t, 1.0, sum, weightTolerance, "sector %s", sector)
	}
	sum := DefaultWeights.Environmental + DefaultWeights.Social + DefaultWeights.Governance
	assert.InDelta(t, 1.0, sum, weightTolerance)
}

func TestWeightTable_Validate_Invalid(t *testing.T) {
	table := WeightTable{
		model.SectorRetail: {Environmental: 0.5, Social: 0.5, Governance: 0.5},
	}
	assert.Error(t, table.Validate())
}

func TestEngine_Score_EmptyInputs(t *testing.T) {
	engine := newTestEngine(t)

	scores := engine.Score(nil, nil, model.SectorHospitality)

	assert.Equal(t, model.ESGScores{}, scores)
}

func TestEngine_Score_CategoryIsolation(t *testing.T) {
	engine := newTestEngine(t)

	// One fully positive environmental answer; social and governance empty.
	answers := map[string]model.AnswerRecord{
		"q1": answeredBool(model.CategoryEnvironmental, true, "DST"),
	}

	scores := engine.Score(answers, nil, model.SectorHospitality)

	// questionScore 100 at 40% share, no tasks at 60% share.
	assert.Equal(t, 40.0, scores.Environmental)
	assert.Equal(t, 0.0, scores.Social)
	assert.Equal(t, 0.0, scores.Governance)
	// hospitality weights environmental at 0.45.
	assert.Equal(t, 18.0, scores.Overall)
}

func TestEngine_Score_TaskStatusValues(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name     string
		status   model.TaskStatus
		expected float64
	}{
		{"completed scores 100", model.StatusCompleted, 60.0},
		{"in progress scores 50", model.StatusInProgress, 30.0},
		{"todo scores 0", model.StatusTodo, 0.0},
		{"pending review scores 0", model.StatusPendingReview, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks := []model.TaskRecord{
				task(model.TaskGovernance, tt.status, model.PriorityMedium),
			}
			scores := engine.Score(nil, tasks, model.SectorHospitality)
			// taskScore at 60% share, single task.
			assert.Equal(t, tt.expected, scores.Governance)
		})
	}
}

func TestEngine_Score_FrameworkWeighting(t *testing.T) {
	engine := newTestEngine(t)

	// A three-framework positive answer outweighs a single-framework
	// negative one 3:1 -> questionScore 75.
	answers := map[string]model.AnswerRecord{
		"q1": answeredBool(model.CategorySocial, true, "DST", "GRI", "ISO14001"),
		"q2": answeredBool(model.CategorySocial, false, "DST"),
	}

	scores := engine.Score(answers, nil, model.SectorManufacturing)

	assert.Equal(t, 30.0, scores.Social) // 75 * 0.4
}

func TestEngine_Score_PriorityWeighting(t *testing.T) {
	engine := newTestEngine(t)

	// high(3) completed vs low(1) todo -> taskScore 75, category 45.
	tasks := []model.TaskRecord{
		task(model.TaskEnvironmental, model.StatusCompleted, model.PriorityHigh),
		task(model.TaskEnvironmental, model.StatusTodo, model.PriorityLow),
	}

	scores := engine.Score(nil, tasks, model.SectorLogistics)

	assert.Equal(t, 45.0, scores.Environmental)
}

func TestEngine_Score_OperationalTaskCategoriesDoNotScore(t *testing.T) {
	engine := newTestEngine(t)

	// Energy/water/waste/supply-chain tasks never match an ESG dimension.
	tasks := []model.TaskRecord{
		task(model.TaskEnergy, model.StatusCompleted, model.PriorityHigh),
		task(model.TaskWater, model.StatusCompleted, model.PriorityHigh),
		task(model.TaskWaste, model.StatusCompleted, model.PriorityHigh),
		task(model.TaskSupplyChain, model.StatusCompleted, model.PriorityHigh),
	}

	scores := engine.Score(nil, tasks, model.SectorHospitality)

	assert.Equal(t, model.ESGScores{}, scores)
}

func TestEngine_Score_UnknownSectorUsesFallbackWeights(t *testing.T) {
	engine := newTestEngine(t)

	answers := map[string]model.AnswerRecord{
		"e": answeredBool(model.CategoryEnvironmental, true),
		"s": answeredBool(model.CategorySocial, true),
		"g": answeredBool(model.CategoryGovernance, true),
	}

	scores := engine.Score(answers, nil, model.Sector("space_mining"))

	// Each category 40; fallback weights 0.40/0.30/0.30 sum to 1.
	assert.Equal(t, 40.0, scores.Environmental)
	assert.Equal(t, 40.0, scores.Social)
	assert.Equal(t, 40.0, scores.Governance)
	assert.Equal(t, 40.0, scores.Overall)
}

func TestEngine_Score_TextAnswers(t *testing.T) {
	engine := newTestEngine(t)

	answers := map[string]model.AnswerRecord{
		"q1": {Question: "q", Answer: model.TextAnswer("we recycle"), Category: model.CategoryEnvironmental},
		"q2": {Question: "q", Answer: model.TextAnswer("   "), Category: model.CategoryEnvironmental},
		"q3": {Question: "q", Answer: model.EmptyAnswer(), Category: model.CategoryEnvironmental},
	}

	scores := engine.Score(answers, nil, model.SectorEducation)

	// One positive of three equally weighted answers: 100/3 * 0.4.
	assert.InDelta(t, 13.3, scores.Environmental, 0.05)
}

func TestEngine_Score_OverallStaysInRange(t *testing.T) {
	table := DefaultWeightTable()
	require.NoError(t, table.Validate())

	grid := []float64{0, 25, 50, 75, 100}
	sectors := append([]model.Sector{model.Sector("unknown")}, model.Sectors...)

	for _, sector := range sectors {
		w := table.weightsFor(sector)
		for _, e := range grid {
			for _, s := range grid {
				for _, g := range grid {
					overall := e*w.Environmental + s*w.Social + g*w.Governance
					assert.GreaterOrEqual(t, overall, 0.0)
					assert.LessOrEqual(t, overall, 100.0)
				}
			}
		}
	}
}

func TestEngine_Score_Idempotent(t *testing.T) {
	engine := newTestEngine(t)

	answers := map[string]model.AnswerRecord{
		"q1": answeredBool(model.CategoryEnvironmental, true, "DST"),
		"q2": answeredBool(model.CategorySocial, false, "GRI"),
	}
	tasks := []model.TaskRecord{
		task(model.TaskGovernance, model.StatusInProgress, model.PriorityHigh, "DST"),
	}

	first := engine.Score(answers, tasks, model.SectorHealthcare)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, engine.Score(answers, tasks, model.SectorHealthcare))
	}
}
