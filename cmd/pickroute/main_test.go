package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pickroute/config"
	"github.com/katalvlaran/pickroute/layout"
	"github.com/katalvlaran/pickroute/metrics"
	"github.com/katalvlaran/pickroute/planner"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func smallConfig() config.Config {
	cfg := config.Default()
	cfg.Grid = config.Grid{Columns: 5, Rows: 3}
	cfg.DistancePerCell = 2

	return cfg
}

// TestRun_Outbound prints visits and the outbound table only.
func TestRun_Outbound(t *testing.T) {
	path := writeFile(t, "floor.csv", "wall,1,1\ntarget,4,2\ntarget,2,0\nspawn,0,0\n")
	var out bytes.Buffer
	require.NoError(t, run(&out, smallConfig(), metrics.NewRecorder(nil), path, "", false))

	got := out.String()
	assert.Contains(t, got, "mode=greedy")
	assert.Contains(t, got, " 1 (2,0)")
	assert.Contains(t, got, " 2 (4,2)")
	assert.Contains(t, got, "I. SUM")
	assert.NotContains(t, got, "RTRN")
	assert.Contains(t, got, "12.00", "6 cells at 2 units each")
}

// TestRun_ReturnAndExport releases the return leg and exports YAML.
func TestRun_ReturnAndExport(t *testing.T) {
	path := writeFile(t, "floor.csv", "target,4,2\nbogus,1,1\n")
	export := filepath.Join(t.TempDir(), "floor.yaml")
	var out bytes.Buffer
	require.NoError(t, run(&out, smallConfig(), nil, path, export, true))
	assert.Contains(t, out.String(), "RTRN")
	assert.Contains(t, out.String(), "F. SUM")

	f, err := os.Open(export)
	require.NoError(t, err)
	defer f.Close()
	recs, err := layout.ReadYAML(f)
	require.NoError(t, err)
	assert.Equal(t, []layout.Record{
		{Tag: layout.TagTarget, Col: 4, Row: 2},
		{Tag: layout.TagSpawn, Col: 0, Row: 0},
	}, recs)
}

// TestRun_Unreachable surfaces the planning error.
func TestRun_Unreachable(t *testing.T) {
	path := writeFile(t, "floor.yaml", strings.Join([]string{
		"records:",
		"  - {tag: wall, col: 3, row: 2}",
		"  - {tag: wall, col: 4, row: 1}",
		"  - {tag: target, col: 4, row: 2}",
	}, "\n")+"\n")
	var out bytes.Buffer
	err := run(&out, smallConfig(), nil, path, "", false)
	assert.ErrorIs(t, err, planner.ErrUnreachableTarget)

	err = run(&out, smallConfig(), nil, filepath.Join(t.TempDir(), "none.csv"), "", false)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
