// internal/workers/assessment/calculate-carbon-footprint/models.go
package calculatecarbonfootprint

import "esg-workers/internal/esg/model"

type Input struct {
	Company   model.CompanyProfile   `json:"company"`
	Locations []model.LocationRecord `json:"locations"`
}

type Output struct {
	Footprint model.CarbonFootprint     `json:"carbonFootprint"`
	Benchmark model.BenchmarkComparison `json:"benchmarkComparison"`
}
