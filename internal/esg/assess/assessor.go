// internal/esg/assess/assessor.go

// Package assess orchestrates the full sustainability assessment: input
// validation, ESG scoring, carbon footprint, framework compliance, and the
// sector benchmark comparison, combined into one immutable record.
package assess

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"esg-workers/internal/esg/benchmark"
	"esg-workers/internal/esg/compliance"
	"esg-workers/internal/esg/emission"
	"esg-workers/internal/esg/footprint"
	"esg-workers/internal/esg/model"
	"esg-workers/internal/esg/score"
	"esg-workers/internal/esg/validate"
)

// Config carries the static tables the engines run over. Zero-value fields
// fall back to the built-in defaults.
type Config struct {
	Factors    emission.FactorSet
	Benchmarks benchmark.Table
	Weights    score.WeightTable
	Validation validate.Config
}

// Input is the four independent collections a caller supplies, plus the
// frameworks to report compliance for. An empty framework list is derived
// from the tasks and answers in first-seen order.
type Input struct {
	Company    model.CompanyProfile          `json:"company"`
	Locations  []model.LocationRecord        `json:"locations"`
	Answers    map[string]model.AnswerRecord `json:"scopingAnswers"`
	Tasks      []model.TaskRecord            `json:"tasks"`
	Frameworks []string                      `json:"frameworks,omitempty"`
}

// Assessment is the combined result. Validation is advisory: the other
// sections are always populated, and consumers must branch on
// Validation.IsValid before treating them as authoritative.
type Assessment struct {
	ID          string                    `json:"id"`
	CompanyName string                    `json:"companyName"`
	Sector      model.Sector              `json:"sector"`
	GeneratedAt time.Time                 `json:"generatedAt"`
	Validation  model.ValidationResult    `json:"validation"`
	Scores      model.ESGScores           `json:"scores"`
	Footprint   model.CarbonFootprint     `json:"footprint"`
	Compliance  []model.ComplianceRate    `json:"compliance"`
	Benchmark   model.BenchmarkComparison `json:"benchmark"`
}

// Assessor wires the engines over validated static tables. Safe for
// concurrent use; assessments for different companies may run freely in
// parallel.
type Assessor struct {
	validator  *validate.Validator
	scores     *score.Engine
	footprint  *footprint.Engine
	comparator *benchmark.Comparator
}

// New validates the static configuration and builds an assessor. Invalid
// tables are contract errors: unlike business data, they fail loudly.
func New(cfg Config) (*Assessor, error) {
	factors := cfg.Factors
	if factors == nil {
		factors = emission.DefaultFactors()
	}
	benchmarks := cfg.Benchmarks
	if benchmarks == nil {
		benchmarks = benchmark.DefaultTable()
	}
	weights := cfg.Weights
	if weights == nil {
		weights = score.DefaultWeightTable()
	}

	if err := factors.Validate(); err != nil {
		return nil, err
	}
	if err := benchmarks.Validate(); err != nil {
		return nil, err
	}
	if err := weights.Validate(); err != nil {
		return nil, err
	}

	return &Assessor{
		validator:  validate.New(cfg.Validation),
		scores:     score.NewEngine(weights),
		footprint:  footprint.NewEngine(factors),
		comparator: benchmark.NewComparator(benchmarks),
	}, nil
}

// Run produces a complete assessment. The three independent engines run
// concurrently; only the benchmark comparison waits on the footprint.
func (a *Assessor) Run(in Input) Assessment {
	frameworks := in.Frameworks
	if len(frameworks) == 0 {
		frameworks = deriveFrameworks(in.Tasks, in.Answers)
	}

	out := Assessment{
		ID:          uuid.NewString(),
		CompanyName: in.Company.Name,
		Sector:      in.Company.Sector,
		GeneratedAt: time.Now().UTC(),
	}

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		out.Validation = a.validator.Validate(in.Company, in.Locations, in.Answers, in.Tasks)
	}()
	go func() {
		defer wg.Done()
		out.Scores = a.scores.Score(in.Answers, in.Tasks, in.Company.Sector)
	}()
	go func() {
		defer wg.Done()
		out.Footprint = a.footprint.Footprint(in.Locations, in.Company)
		out.Benchmark = a.comparator.Compare(in.Locations, out.Footprint, in.Company.Sector)
	}()
	wg.Wait()

	out.Compliance = compliance.Rates(in.Tasks, frameworks)
	return out
}

// deriveFrameworks collects frameworks from tasks first, then answers in
// sorted question order, preserving first-seen ordering.
func deriveFrameworks(tasks []model.TaskRecord, answers map[string]model.AnswerRecord) []string {
	seen := map[string]bool{}
	var frameworks []string
	add := func(f string) {
		if f != "" && !seen[f] {
			seen[f] = true
			frameworks = append(frameworks, f)
		}
	}

	for _, t := range tasks {
		for _, f := range t.Frameworks {
			add(f)
		}
	}
	for _, id := range sortedAnswerKeys(answers) {
		for _, f := range answers[id].Frameworks {
			add(f)
		}
	}
	return frameworks
}

func sortedAnswerKeys(answers map[string]model.AnswerRecord) []string {
	keys := make([]string, 0, len(answers))
	for k := range answers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
