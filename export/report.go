package export

import (
	"fmt"
	"os"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/workforce-sim/workforce-sim/solver"
	"github.com/workforce-sim/workforce-sim/solver/trace"
)

// RunMetadata identifies one generation run and records its timing.
type RunMetadata struct {
	RunID          string `json:"run_id"`
	RunStartedAt   string `json:"run_started_at"`
	RunCompletedAt string `json:"run_completed_at"`
	RunDurationMs  int64  `json:"run_duration_ms"`
	Seed           int64  `json:"seed"`
	SampleCount    int    `json:"sample_count"`
}

// NewRunMetadata stamps metadata for a run that took elapsed and completed now.
func NewRunMetadata(seed int64, sampleCount int, elapsed time.Duration) RunMetadata {
	now := time.Now().UTC()
	return RunMetadata{
		RunID:          uuid.New().String(),
		RunStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
		RunCompletedAt: now.Format(time.RFC3339),
		RunDurationMs:  elapsed.Milliseconds(),
		Seed:           seed,
		SampleCount:    sampleCount,
	}
}

// RunReport is the JSON artifact bundling a run's inputs and headline
// results. The full population stays in the CSV artifact; the report
// carries only the best row and summary statistics.
type RunReport struct {
	Metadata       RunMetadata              `json:"metadata"`
	Parameters     solver.Parameters        `json:"parameters"`
	Best           solver.ScoredScenario    `json:"best"`
	PopulationSize int                      `json:"population_size"`
	Summary        solver.PopulationSummary `json:"summary"`
	ParetoSize     int                      `json:"pareto_size,omitempty"`
	WalkSummary    *trace.TraceSummary      `json:"walk_summary,omitempty"`
}

// WriteReport writes the report to path as indented JSON.
func WriteReport(path string, report RunReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling run report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing run report: %w", err)
	}
	return nil
}
