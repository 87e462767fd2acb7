// internal/esg/benchmark/comparator.go
package benchmark

import "esg-workers/internal/esg/model"

// Comparator classifies a company's computed intensities against the
// benchmark table. It is stateless apart from the read-only table and safe
// for concurrent use.
type Comparator struct {
	table Table
}

// NewComparator builds a comparator over the given table.
func NewComparator(table Table) *Comparator {
	return &Comparator{table: table}
}

// Compare classifies annual electricity, water, and carbon intensity against
// the sector's bands. A sector without benchmarks, or a zero total floor
// area, classifies everything as unknown rather than guessing.
func (c *Comparator) Compare(locations []model.LocationRecord, footprint model.CarbonFootprint, sector model.Sector) model.BenchmarkComparison {
	unknown := model.BenchmarkComparison{
		ElectricityPerformance: model.PerformanceUnknown,
		WaterPerformance:       model.PerformanceUnknown,
		CarbonPerformance:      model.PerformanceUnknown,
		OverallRanking:         model.PerformanceUnknown,
	}

	bands, ok := c.table[sector]
	if !ok {
		return unknown
	}

	var totalElectricity, totalWater, totalArea float64
	for _, loc := range locations {
		totalElectricity += loc.MonthlyConsumption(model.UtilityElectricity) * 12
		totalWater += loc.MonthlyConsumption(model.UtilityWater) * 12
		totalArea += loc.TotalFloorArea
	}
	if totalArea == 0 {
		return unknown
	}

	electricityIntensity := totalElectricity / totalArea // kWh/sqm/year
	waterIntensity := totalWater * 1000 / totalArea      // m3 to L/sqm/year
	// Classify from the unrounded intensity; the rounded EmissionsPerSqm
	// would promote anything up to 5 kg/sqm past a band threshold.
	carbonIntensity := footprint.IntensityPerSqm * 1000 // t to kg CO2e/sqm/year

	comparison := model.BenchmarkComparison{
		ElectricityPerformance: bands.Electricity.classify(electricityIntensity),
		WaterPerformance:       bands.Water.classify(waterIntensity),
		CarbonPerformance:      bands.Carbon.classify(carbonIntensity),
	}
	comparison.OverallRanking = overallRanking(
		comparison.ElectricityPerformance,
		comparison.WaterPerformance,
		comparison.CarbonPerformance,
	)
	return comparison
}

func performanceScore(p model.Performance) float64 {
	switch p {
	case model.PerformanceEfficient:
		return 3
	case model.PerformanceAverage:
		return 2
	case model.PerformanceInefficient:
		return 1
	default:
		return 0
	}
}

func overallRanking(classifications ...model.Performance) model.Performance {
	var sum float64
	for _, p := range classifications {
		sum += performanceScore(p)
	}
	avg := sum / float64(len(classifications))
	switch {
	case avg >= 2.5:
		return model.PerformanceEfficient
	case avg >= 1.5:
		return model.PerformanceAverage
	default:
		return model.PerformanceInefficient
	}
}
