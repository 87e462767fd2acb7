// internal/workers/assessment/calculate-carbon-footprint/handler_test.go
package calculatecarbonfootprint

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

func createTestInput() *Input {
	return &Input{
		Company: model.CompanyProfile{
			Name:      "Desert Rose Hotels",
			Sector:    model.SectorHospitality,
			Employees: 40,
		},
		Locations: []model.LocationRecord{
			{
				Name:           "Main Hotel",
				TotalFloorArea: 800,
				Utilities: map[model.UtilityKind]model.UtilityReading{
					model.UtilityElectricity: {MonthlyConsumption: 15000},
					model.UtilityWater:       {MonthlyConsumption: 20},
					model.UtilityNaturalGas:  {MonthlyConsumption: 100},
				},
			},
		},
	}
}

func TestNewHandler_RejectsNegativeOverride(t *testing.T) {
	cfg := createTestConfig()
	cfg.FactorOverrides = map[string]float64{"electricity": -1}

	_, err := NewHandler(cfg, logger.NewTestLogger(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "emission factors")
}

func TestExecute_ScopeArithmetic(t *testing.T) {
	handler, err := NewHandler(createTestConfig(), logger.NewTestLogger(t))
	require.NoError(t, err)

	output, err := handler.Execute(context.Background(), createTestInput())
	require.NoError(t, err)

	// Scope 2: 15000 kWh/month * 12 * 0.469 / 1000 = 84.42 t.
	// Scope 1: 100 kg/month * 12 * 2.75 / 1000 = 3.3 t.
	assert.Equal(t, 84.42, output.Footprint.Scope2)
	assert.Equal(t, 3.3, output.Footprint.Scope1)
	assert.Equal(t, 87.72, output.Footprint.TotalAnnual)
	assert.Equal(t, 0.11, output.Footprint.EmissionsPerSqm)
	assert.Equal(t, 2.19, output.Footprint.EmissionsPerEmployee)
}

func TestExecute_BenchmarkRidesWithFootprint(t *testing.T) {
	handler, err := NewHandler(createTestConfig(), logger.NewTestLogger(t))
	require.NoError(t, err)

	output, err := handler.Execute(context.Background(), createTestInput())
	require.NoError(t, err)

	// 225 kWh/sqm/year is above the hospitality inefficient threshold;
	// 300 L/sqm/year of water sits exactly on the efficient edge.
	assert.Equal(t, model.PerformanceInefficient, output.Benchmark.ElectricityPerformance)
	assert.Equal(t, model.PerformanceEfficient, output.Benchmark.WaterPerformance)
	assert.NotEqual(t, model.PerformanceUnknown, output.Benchmark.OverallRanking)
}

func TestExecute_CarbonBandHoldsNearThreshold(t *testing.T) {
	handler, err := NewHandler(createTestConfig(), logger.NewTestLogger(t))
	require.NoError(t, err)

	// 9594.9 kWh/month * 12 * 0.469 / 1000 sqm = 54.0001 kg CO2e/sqm/year,
	// just past the hospitality efficient band (50). The reported intensity
	// rounds down to 0.05 t/sqm; the band must not round down with it.
	input := &Input{
		Company: model.CompanyProfile{
			Name:      "Edge Case Resorts",
			Sector:    model.SectorHospitality,
			Employees: 40,
		},
		Locations: []model.LocationRecord{
			{
				Name:           "Resort",
				TotalFloorArea: 1000,
				Utilities: map[model.UtilityKind]model.UtilityReading{
					model.UtilityElectricity: {MonthlyConsumption: 9594.9},
				},
			},
		},
	}

	output, err := handler.Execute(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, 0.05, output.Footprint.EmissionsPerSqm)
	assert.Equal(t, model.PerformanceAverage, output.Benchmark.CarbonPerformance)
	assert.Equal(t, model.PerformanceAverage, output.Benchmark.OverallRanking)
}

func TestExecute_FactorOverrideChangesScope2(t *testing.T) {
	cfg := createTestConfig()
	cfg.FactorOverrides = map[string]float64{"electricity": 0.5}
	handler, err := NewHandler(cfg, logger.NewTestLogger(t))
	require.NoError(t, err)

	output, err := handler.Execute(context.Background(), createTestInput())
	require.NoError(t, err)

	assert.Equal(t, 90.0, output.Footprint.Scope2)
}

func TestExecute_EmptyInputIsAllZerosAndUnknown(t *testing.T) {
	handler, err := NewHandler(createTestConfig(), logger.NewTestLogger(t))
	require.NoError(t, err)

	output, err := handler.Execute(context.Background(), &Input{})
	require.NoError(t, err)

	assert.Equal(t, model.CarbonFootprint{}, output.Footprint)
	assert.Equal(t, model.PerformanceUnknown, output.Benchmark.OverallRanking)
	assert.Equal(t, model.PerformanceUnknown, output.Benchmark.CarbonPerformance)
}
