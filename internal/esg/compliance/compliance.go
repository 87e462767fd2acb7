// internal/esg/compliance/compliance.go

// Package compliance aggregates per-framework task completion rates.
package compliance

import "esg-workers/internal/esg/model"

// Rates computes the completion rate for each framework, in input order.
// A framework referenced by no task yields {rate: 0, completed: 0, total: 0}
// rather than being dropped, so the reporting layer can show every
// framework the company claims.
func Rates(tasks []model.TaskRecord, frameworks []string) []model.ComplianceRate {
	rates := make([]model.ComplianceRate, 0, len(frameworks))

	for _, framework := range frameworks {
		var completed, total int
		for _, t := range tasks {
			if !t.References(framework) {
				continue
			}
			total++
			if t.Status == model.StatusCompleted {
				completed++
			}
		}

		var rate float64
		if total > 0 {
			rate = float64(completed) / float64(total) * 100
		}

		rates = append(rates, model.ComplianceRate{
			Framework: framework,
			Rate:      model.Round1(rate),
			Completed: completed,
			Total:     total,
		})
	}

	return rates
}
