// internal/esg/benchmark/comparator_test.go
package benchmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esg-workers/internal/esg/model"
)

func newTestComparator(t *testing.T) *Comparator {
	t.Helper()
	table := DefaultTable()
	require.NoError(t, table.Validate())
	return NewComparator(table)
}

func site(area, monthlyElectricity, monthlyWater float64) model.LocationRecord {
	return model.LocationRecord{
		Name:           "site",
		TotalFloorArea: area,
		Utilities: map[model.UtilityKind]model.UtilityReading{
			model.UtilityElectricity: {MonthlyConsumption: monthlyElectricity},
			model.UtilityWater:       {MonthlyConsumption: monthlyWater},
		},
	}
}

func allUnknown() model.BenchmarkComparison {
	return model.BenchmarkComparison{
		ElectricityPerformance: model.PerformanceUnknown,
		WaterPerformance:       model.PerformanceUnknown,
		CarbonPerformance:      model.PerformanceUnknown,
		OverallRanking:         model.PerformanceUnknown,
	}
}

func TestComparator_UnknownSector(t *testing.T) {
	c := newTestComparator(t)

	got := c.Compare(
		[]model.LocationRecord{site(1000, 10000, 40)},
		model.CarbonFootprint{IntensityPerSqm: 0.05},
		model.SectorRetail, // no benchmark entry
	)

	assert.Equal(t, allUnknown(), got)
}

func TestComparator_ZeroFloorArea(t *testing.T) {
	c := newTestComparator(t)

	got := c.Compare(
		[]model.LocationRecord{site(0, 10000, 40)},
		model.CarbonFootprint{},
		model.SectorHospitality,
	)

	assert.Equal(t, allUnknown(), got)
}

func TestComparator_Classification(t *testing.T) {
	c := newTestComparator(t)

	tests := []struct {
		name               string
		monthlyElectricity float64
		expected           model.Performance
	}{
		// Hospitality electricity bands: 100 / 150 / 200 kWh/sqm/year.
		{"at efficient threshold", 100.0 * 1000 / 12, model.PerformanceEfficient},
		{"between bands", 120.0 * 1000 / 12, model.PerformanceAverage},
		{"at average threshold", 150.0 * 1000 / 12, model.PerformanceAverage},
		{"above average band", 180.0 * 1000 / 12, model.PerformanceInefficient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Compare(
				[]model.LocationRecord{site(1000, tt.monthlyElectricity, 20)},
				model.CarbonFootprint{IntensityPerSqm: 0.04},
				model.SectorHospitality,
			)
			assert.Equal(t, tt.expected, got.ElectricityPerformance)
		})
	}
}

func TestComparator_WaterUnitConversion(t *testing.T) {
	c := newTestComparator(t)

	// 25 m3/month * 12 * 1000 / 1000 sqm = 300 L/sqm/year; hospitality
	// efficient threshold is exactly 300.
	got := c.Compare(
		[]model.LocationRecord{site(1000, 5000, 25)},
		model.CarbonFootprint{IntensityPerSqm: 0.04},
		model.SectorHospitality,
	)

	assert.Equal(t, model.PerformanceEfficient, got.WaterPerformance)
}

func TestComparator_OverallRanking(t *testing.T) {
	tests := []struct {
		name     string
		parts    []model.Performance
		expected model.Performance
	}{
		{"all efficient", []model.Performance{model.PerformanceEfficient, model.PerformanceEfficient, model.PerformanceEfficient}, model.PerformanceEfficient},
		{"two efficient one average", []model.Performance{model.PerformanceEfficient, model.PerformanceEfficient, model.PerformanceAverage}, model.PerformanceEfficient},
		{"mixed", []model.Performance{model.PerformanceEfficient, model.PerformanceAverage, model.PerformanceInefficient}, model.PerformanceAverage},
		{"all inefficient", []model.Performance{model.PerformanceInefficient, model.PerformanceInefficient, model.PerformanceInefficient}, model.PerformanceInefficient},
		{"two inefficient one average", []model.Performance{model.PerformanceInefficient, model.PerformanceInefficient, model.PerformanceAverage}, model.PerformanceInefficient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, overallRanking(tt.parts...))
		})
	}
}

func TestComparator_CarbonUsesFootprintIntensity(t *testing.T) {
	c := newTestComparator(t)

	// 0.04 t/sqm -> 40 kg/sqm, hospitality carbon efficient band is 50.
	got := c.Compare(
		[]model.LocationRecord{site(1000, 5000, 20)},
		model.CarbonFootprint{IntensityPerSqm: 0.04},
		model.SectorHospitality,
	)
	assert.Equal(t, model.PerformanceEfficient, got.CarbonPerformance)

	// 0.09 t/sqm -> 90 kg/sqm, above the 75 average band.
	got = c.Compare(
		[]model.LocationRecord{site(1000, 5000, 20)},
		model.CarbonFootprint{IntensityPerSqm: 0.09},
		model.SectorHospitality,
	)
	assert.Equal(t, model.PerformanceInefficient, got.CarbonPerformance)
}

func TestComparator_CarbonIgnoresRoundedIntensity(t *testing.T) {
	c := newTestComparator(t)

	// 54.0001 kg/sqm is just past the hospitality efficient band (50);
	// the reported EmissionsPerSqm rounds down to 0.05 t (exactly 50 kg).
	// Classification must follow the unrounded intensity.
	got := c.Compare(
		[]model.LocationRecord{site(1000, 5000, 20)},
		model.CarbonFootprint{EmissionsPerSqm: 0.05, IntensityPerSqm: 0.0540000972},
		model.SectorHospitality,
	)
	assert.Equal(t, model.PerformanceAverage, got.CarbonPerformance)
}

func TestTable_Validate(t *testing.T) {
	assert.NoError(t, DefaultTable().Validate())

	bad := Table{
		model.SectorHospitality: {
			Electricity: Band{Efficient: 150, Average: 100, Inefficient: 200},
			Water:       Band{Efficient: 300, Average: 500, Inefficient: 700},
			Carbon:      Band{Efficient: 50, Average: 75, Inefficient: 100},
		},
	}
	assert.Error(t, bad.Validate())

	zero := Table{
		model.SectorHospitality: {
			Electricity: Band{Efficient: 0, Average: 150, Inefficient: 200},
			Water:       Band{Efficient: 300, Average: 500, Inefficient: 700},
			Carbon:      Band{Efficient: 50, Average: 75, Inefficient: 100},
		},
	}
	assert.Error(t, zero.Validate())
}
