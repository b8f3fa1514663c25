package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workforce-sim/workforce-sim/solver"
)

func samplePopulation(t *testing.T) solver.Population {
	t.Helper()
	params := solver.DefaultParameters()
	pop, _, _ := solver.Generate(params, 400, 12)
	return pop
}

func TestPopulationCSV_RoundTrip(t *testing.T) {
	// GIVEN a generated population
	pop := samplePopulation(t)
	path := filepath.Join(t.TempDir(), "scenarios.csv")

	// WHEN written and re-loaded
	require.NoError(t, WritePopulationCSV(path, pop))
	loaded, err := LoadPopulationCSV(path)
	require.NoError(t, err)

	// THEN every row survives bit-exactly
	require.Equal(t, pop, loaded)
}

func TestWritePopulationCSV_Header(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.csv")
	require.NoError(t, WritePopulationCSV(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1, "empty population writes only the header")
	assert.Equal(t, "ft,pt,ct,fte,effective_target,cost,risk,retention,penalty,score", lines[0])
}

func TestLoadPopulationCSV_MissingFile(t *testing.T) {
	_, err := LoadPopulationCSV(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}

func TestLoadPopulationCSV_ShortRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	content := "ft,pt,ct,fte,effective_target,cost,risk,retention,penalty,score\n1,2,3\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := LoadPopulationCSV(path)

	require.Error(t, err)
}
