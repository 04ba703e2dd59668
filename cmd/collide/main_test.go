package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const demoScene = "../../pkg/scene/testdata/demo.yaml"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCheck(t *testing.T) {
	out, err := execute(t, "check", demoScene)
	require.NoError(t, err)
	assert.Equal(t, "2 overlaps\n  floor ramp\n  floor ledge\n", out)
}

func TestCheckJSON(t *testing.T) {
	out, err := execute(t, "check", demoScene, "--json", "--translation", "--steps", "2", "--dt", "0.1")
	require.NoError(t, err)

	var reports []checkReport
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 3)
	for i, report := range reports {
		assert.Equal(t, i, report.Step)
		assert.InDelta(t, float64(i)*0.1, report.Time, 1e-9)
		for _, o := range report.Overlaps {
			assert.NotNil(t, o.Translation)
		}
	}
}

func TestCheckErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "missing argument", args: []string{"check"}},
		{name: "missing file", args: []string{"check", "does-not-exist.yaml"}},
		{name: "negative steps", args: []string{"check", demoScene, "--steps", "-1"}},
		{name: "zero dt", args: []string{"check", demoScene, "--dt", "0"}},
		{name: "bad log level", args: []string{"check", demoScene, "--log-level", "loud"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestTriangulate(t *testing.T) {
	out, err := execute(t, "triangulate", "--orientation", "cw", "0,0", "0,2", "1,2", "1,1", "2,1", "2,0")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 4)
	for _, line := range lines {
		assert.Len(t, strings.Fields(line), 3)
	}
}

func TestTriangulateErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "too few points", args: []string{"triangulate", "0,0", "1,0"}},
		{name: "bad point", args: []string{"triangulate", "0,0", "1,0", "x"}},
		{name: "bad orientation", args: []string{"triangulate", "--orientation", "sideways", "0,0", "1,0", "0,1"}},
		{name: "wrong winding", args: []string{"triangulate", "--orientation", "cw", "0,0", "1,0", "0,1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestEncodeDecode(t *testing.T) {
	snapshot := filepath.Join(t.TempDir(), "demo.bin")

	_, err := execute(t, "encode", demoScene, "-o", snapshot)
	require.NoError(t, err)

	out, err := execute(t, "decode", snapshot)
	require.NoError(t, err)
	assert.Contains(t, out, "name: floor")
	assert.Contains(t, out, "name: dumbbell")
}

func TestEncodeRequiresOutput(t *testing.T) {
	_, err := execute(t, "encode", demoScene)
	assert.Error(t, err)
}

func TestNewRepositoryUnknownScheme(t *testing.T) {
	_, err := newRepository(context.Background(), "mysql://localhost/collide")
	assert.Error(t, err)
}
