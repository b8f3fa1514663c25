// Package export writes and reads run artifacts: population CSV, energy
// trace CSV, and the run report JSON. File formats live here; the solver
// core stays format-free.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/workforce-sim/workforce-sim/solver"
)

// CSV column headers for population files.
var populationColumns = []string{
	"ft", "pt", "ct", "fte", "effective_target",
	"cost", "risk", "retention", "penalty", "score",
}

// WritePopulationCSV writes a population to path, one scenario per row.
// Floats use shortest-exact formatting so a round-trip through
// LoadPopulationCSV reproduces identical values.
func WritePopulationCSV(path string, pop solver.Population) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating population file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(populationColumns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for i, row := range pop {
		record := []string{
			strconv.Itoa(row.FT),
			strconv.Itoa(row.PT),
			strconv.Itoa(row.CT),
			formatFloat(row.FTE),
			formatFloat(row.EffectiveTarget),
			formatFloat(row.Cost),
			formatFloat(row.Risk),
			formatFloat(row.Retention),
			formatFloat(row.Penalty),
			formatFloat(row.Score),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("writing CSV row %d: %w", i, err)
		}
	}
	return nil
}

// LoadPopulationCSV reads a population previously written by WritePopulationCSV.
func LoadPopulationCSV(path string) (solver.Population, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening population file: %w", err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)

	// Skip header row
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	var pop solver.Population
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV row: %w", err)
		}
		if len(row) < len(populationColumns) {
			return nil, fmt.Errorf("CSV row has %d columns, expected %d", len(row), len(populationColumns))
		}
		pop = append(pop, parsePopulationRow(row))
	}
	return pop, nil
}

func parsePopulationRow(row []string) solver.ScoredScenario {
	ft, _ := strconv.Atoi(row[0])
	pt, _ := strconv.Atoi(row[1])
	ct, _ := strconv.Atoi(row[2])
	fte, _ := strconv.ParseFloat(row[3], 64)
	effTarget, _ := strconv.ParseFloat(row[4], 64)
	cost, _ := strconv.ParseFloat(row[5], 64)
	risk, _ := strconv.ParseFloat(row[6], 64)
	retention, _ := strconv.ParseFloat(row[7], 64)
	penalty, _ := strconv.ParseFloat(row[8], 64)
	score, _ := strconv.ParseFloat(row[9], 64)

	return solver.ScoredScenario{
		MixMetrics: solver.MixMetrics{
			Mix:             solver.Mix{FT: ft, PT: pt, CT: ct},
			FTE:             fte,
			EffectiveTarget: effTarget,
			Cost:            cost,
			Risk:            risk,
			Retention:       retention,
			Penalty:         penalty,
		},
		Score: score,
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
