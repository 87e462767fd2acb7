// internal/esg/benchmark/table.go

// Package benchmark compares measured utility and carbon intensities against
// static per-sector SME benchmark bands.
package benchmark

import (
	"fmt"

	"esg-workers/internal/esg/model"
)

// Band holds the annual intensity thresholds for one metric. A measured
// value at or below Efficient classifies as efficient, at or below Average
// as average, anything above as inefficient.
type Band struct {
	Efficient   float64
	Average     float64
	Inefficient float64
}

// SectorBands groups the three benchmark metrics for one sector.
// Units: electricity kWh/sqm/year, water L/sqm/year, carbon kg CO2e/sqm/year.
type SectorBands struct {
	Electricity Band
	Water       Band
	Carbon      Band
}

// Table maps sectors to their benchmark bands. Sectors without an entry
// (retail, professional services) classify as unknown.
type Table map[model.Sector]SectorBands

// DefaultTable returns the built-in UAE SME benchmark table.
func DefaultTable() Table {
	return Table{
		model.SectorHospitality: {
			Electricity: Band{Efficient: 100, Average: 150, Inefficient: 200},
			Water:       Band{Efficient: 300, Average: 500, Inefficient: 700},
			Carbon:      Band{Efficient: 50, Average: 75, Inefficient: 100},
		},
		model.SectorManufacturing: {
			Electricity: Band{Efficient: 200, Average: 300, Inefficient: 400},
			Water:       Band{Efficient: 100, Average: 200, Inefficient: 300},
			Carbon:      Band{Efficient: 100, Average: 150, Inefficient: 200},
		},
		model.SectorConstruction: {
			Electricity: Band{Efficient: 80, Average: 120, Inefficient: 160},
			Water:       Band{Efficient: 150, Average: 250, Inefficient: 350},
			Carbon:      Band{Efficient: 40, Average: 60, Inefficient: 80},
		},
		model.SectorEducation: {
			Electricity: Band{Efficient: 60, Average: 90, Inefficient: 120},
			Water:       Band{Efficient: 200, Average: 300, Inefficient: 400},
			Carbon:      Band{Efficient: 30, Average: 45, Inefficient: 60},
		},
		model.SectorHealthcare: {
			Electricity: Band{Efficient: 250, Average: 350, Inefficient: 450},
			Water:       Band{Efficient: 400, Average: 600, Inefficient: 800},
			Carbon:      Band{Efficient: 120, Average: 170, Inefficient: 220},
		},
		// Logistics carbon bands run high because of fleet emissions.
		model.SectorLogistics: {
			Electricity: Band{Efficient: 40, Average: 60, Inefficient: 80},
			Water:       Band{Efficient: 50, Average: 100, Inefficient: 150},
			Carbon:      Band{Efficient: 200, Average: 300, Inefficient: 400},
		},
	}
}

// Validate checks every band for contract errors: thresholds must be
// positive and strictly ordered. Invalid bands fail loudly at startup.
func (t Table) Validate() error {
	for sector, bands := range t {
		for name, b := range map[string]Band{
			"electricity": bands.Electricity,
			"water":       bands.Water,
			"carbon":      bands.Carbon,
		} {
			if b.Efficient <= 0 || b.Average <= 0 || b.Inefficient <= 0 {
				return fmt.Errorf("benchmark %s/%s: thresholds must be positive", sector, name)
			}
			if !(b.Efficient < b.Average && b.Average < b.Inefficient) {
				return fmt.Errorf("benchmark %s/%s: thresholds must be strictly increasing", sector, name)
			}
		}
	}
	return nil
}

func (b Band) classify(value float64) model.Performance {
	switch {
	case value <= b.Efficient:
		return model.PerformanceEfficient
	case value <= b.Average:
		return model.PerformanceAverage
	default:
		return model.PerformanceInefficient
	}
}
