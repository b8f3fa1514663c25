package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workforce-sim/workforce-sim/export"
)

// runCLI executes the root command with args, capturing stdout.
func runCLI(t *testing.T, args ...string) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	rootCmd.SetArgs(args)
	execErr := rootCmd.Execute()

	_ = w.Close()
	os.Stdout = old
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)

	require.NoError(t, execErr)
	return buf.String()
}

func TestGenerateCommand_WritesArtifacts(t *testing.T) {
	// GIVEN a generate run pointed at a fresh artifact directory
	dir := t.TempDir()

	// WHEN executed with the Pareto report enabled
	output := runCLI(t, "generate",
		"--samples", "400", "--seed", "7",
		"--pareto", "--trace-level", "steps",
		"--out-dir", dir)

	// THEN the leaderboard and best mix are printed
	assert.Contains(t, output, "Rank")
	assert.Contains(t, output, "Best mix:")
	assert.Contains(t, output, "Pareto-efficient scenarios")

	// AND all four artifacts exist and load
	pop, err := export.LoadPopulationCSV(filepath.Join(dir, "scenarios.csv"))
	require.NoError(t, err)
	assert.NotEmpty(t, pop)

	front, err := export.LoadPopulationCSV(filepath.Join(dir, "pareto.csv"))
	require.NoError(t, err)
	assert.NotEmpty(t, front)
	assert.LessOrEqual(t, len(front), len(pop))

	for _, name := range []string{"energy.csv", "report.json"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Greater(t, info.Size(), int64(0), name)
	}
}

func TestGenerateCommand_DeterministicAcrossRuns(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()

	runCLI(t, "generate", "--samples", "400", "--seed", "7", "--out-dir", dirA)
	runCLI(t, "generate", "--samples", "400", "--seed", "7", "--out-dir", dirB)

	popA, err := export.LoadPopulationCSV(filepath.Join(dirA, "scenarios.csv"))
	require.NoError(t, err)
	popB, err := export.LoadPopulationCSV(filepath.Join(dirB, "scenarios.csv"))
	require.NoError(t, err)
	require.Equal(t, popA, popB, "same seed and samples must reproduce the population")
}

func TestGenerateCommand_FlagsOverridePreset(t *testing.T) {
	dir := t.TempDir()

	runCLI(t, "generate",
		"--preset", "lean-cost", "--target", "80",
		"--samples", "400", "--seed", "3",
		"--out-dir", dir)

	pop, err := export.LoadPopulationCSV(filepath.Join(dir, "scenarios.csv"))
	require.NoError(t, err)

	// The lean-cost preset targets 120; the flag narrows it to 80, which
	// caps sampled coordinates at 2*80.
	for _, row := range pop {
		assert.LessOrEqual(t, row.FT, 240, "coordinates stay within the walk clamp for target 80")
		assert.LessOrEqual(t, row.PT, 240)
		assert.LessOrEqual(t, row.CT, 240)
	}
}

func TestParetoCommand_FiltersExportedPopulation(t *testing.T) {
	// GIVEN an exported population
	genDir := t.TempDir()
	runCLI(t, "generate", "--samples", "400", "--seed", "7", "--out-dir", genDir)
	popPath := filepath.Join(genDir, "scenarios.csv")
	outPath := filepath.Join(t.TempDir(), "front.csv")

	// WHEN filtered by the pareto subcommand
	output := runCLI(t, "pareto",
		"--population", popPath,
		"--minimize", "cost,risk",
		"--maximize", "retention",
		"--out", outPath)

	// THEN the front is reported and written
	assert.Contains(t, output, "Pareto front:")

	pop, err := export.LoadPopulationCSV(popPath)
	require.NoError(t, err)
	front, err := export.LoadPopulationCSV(outPath)
	require.NoError(t, err)
	require.NotEmpty(t, front)
	assert.LessOrEqual(t, len(front), len(pop))
}
