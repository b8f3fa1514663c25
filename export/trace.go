package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/workforce-sim/workforce-sim/solver"
)

// CSV column headers for energy trace files.
var energyTraceColumns = []string{"step", "energy"}

// WriteEnergyTraceCSV writes the annealing energy trace to path, one step
// per row in walk order.
func WriteEnergyTraceCSV(path string, trace solver.EnergyTrace) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating energy trace file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(energyTraceColumns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for i, energy := range trace {
		record := []string{
			strconv.Itoa(i),
			formatFloat(energy),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("writing CSV row %d: %w", i, err)
		}
	}
	return nil
}
