package solver

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Distribution captures a statistical summary of one population column.
type Distribution struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	P50    float64 `json:"p50"`
	P95    float64 `json:"p95"`
	P99    float64 `json:"p99"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Count  int     `json:"count"`
}

// NewDistribution computes a Distribution from raw values.
// Returns zero-value Distribution for empty input.
func NewDistribution(values []float64) Distribution {
	if len(values) == 0 {
		return Distribution{}
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	d := Distribution{
		Mean:  stat.Mean(sorted, nil),
		P50:   stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P95:   stat.Quantile(0.95, stat.Empirical, sorted, nil),
		P99:   stat.Quantile(0.99, stat.Empirical, sorted, nil),
		Min:   sorted[0],
		Max:   sorted[len(sorted)-1],
		Count: len(sorted),
	}
	// Sample standard deviation needs two points; keep zero, not NaN,
	// for singletons so the record stays JSON-encodable.
	if len(sorted) > 1 {
		d.StdDev = stat.StdDev(sorted, nil)
	}
	return d
}

// PopulationSummary aggregates per-column distributions over a population.
type PopulationSummary struct {
	Rows      int          `json:"rows"`
	Score     Distribution `json:"score"`
	Cost      Distribution `json:"cost"`
	Risk      Distribution `json:"risk"`
	Retention Distribution `json:"retention"`
	FTE       Distribution `json:"fte"`
}

// Summarize computes column distributions for a population.
// Safe for empty populations (returns zero-value fields).
func Summarize(pop Population) PopulationSummary {
	column := func(key FieldKey) []float64 {
		values := make([]float64, len(pop))
		for i, row := range pop {
			values[i] = row.Field(key)
		}
		return values
	}
	return PopulationSummary{
		Rows:      len(pop),
		Score:     NewDistribution(column(FieldScore)),
		Cost:      NewDistribution(column(FieldCost)),
		Risk:      NewDistribution(column(FieldRisk)),
		Retention: NewDistribution(column(FieldRetention)),
		FTE:       NewDistribution(column(FieldFTE)),
	}
}
