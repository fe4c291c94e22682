package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"
)

const (
	patientFile = "../../testdata/patient.json"
	bundleFile  = "../../testdata/bundle.json"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestCommands(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		args []string
		want string
	}{
		"names": {
			args: []string{"names", patientFile},
			want: "\tHart  III, Dr. Julia \n",
		},
		"names natural": {
			args: []string{"names", "--natural", patientFile},
			want: "\tDr. Julia  Hart  III\n",
		},
		"names html": {
			args: []string{"--html", "names", patientFile},
			want: "&nbsp;&nbsp;&nbsp;&nbsp;Hart  III, Dr. Julia <br>\n",
		},
		"address": {
			args: []string{"address", patientFile},
			want: "postal home:\n\t202 Clinton St.\n\tWoburn, MA 01807\n",
		},
		"pages": {
			args: []string{"pages", bundleFile},
			want: "type: self on page: 1 with count: 2\ntype: next on page: 2 with count: 2\n",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTelecomCommand(t *testing.T) {
	t.Parallel()
	got, err := execute(t, "telecom", patientFile)
	require.NoError(t, err)
	assert.Contains(t, got, "\tphone:\n\twork phone : (505) 555 1212\n")
	assert.Contains(t, got, "\told phone : (702) 555 8834 Valid: 2010-01-01 - 2015-06-30\n")
}

func TestNarrativeCommand(t *testing.T) {
	t.Parallel()
	got, err := execute(t, "narrative", patientFile)
	require.NoError(t, err)
	assert.Contains(t, got, "Julia Hart")
	assert.Contains(t, got, "202 Clinton St., Woburn")
	assert.NotContains(t, got, "<p>")

	got, err = execute(t, "narrative", bundleFile)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReferenceCommand(t *testing.T) {
	t.Parallel()
	out, err := execute(t, "reference", "--display", "Julia Hart", patientFile)
	require.NoError(t, err)

	var ref fhir.Reference
	require.NoError(t, json.Unmarshal([]byte(out), &ref))
	require.NotNil(t, ref.Reference)
	assert.Equal(t, "Patient/a9831a75-3ff9-458c-9dbb-081ea3d71684", *ref.Reference)
	require.NotNil(t, ref.Display)
	assert.Equal(t, "Julia Hart", *ref.Display)
}

func TestReportCommand(t *testing.T) {
	t.Parallel()
	out, err := execute(t, "report", "--format", "csv", "--natural", patientFile, bundleFile)
	require.NoError(t, err)
	assert.Equal(t, 4, bytes.Count([]byte(out), []byte("\n")))
	assert.Contains(t, out, "Organization/org-1")
	assert.Contains(t, out, "Woburn Family Practice")
}

func TestReportCommandTitle(t *testing.T) {
	t.Parallel()
	out, err := execute(t, "report", "--title", "Directory", patientFile)
	require.NoError(t, err)
	assert.Contains(t, out, "Directory\n\nPatient/a9831a75-3ff9-458c-9dbb-081ea3d71684\n")
}

func TestCommandErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		args    []string
		wantErr string
	}{
		"missing file": {args: []string{"names", "missing.json"}, wantErr: "failed to read missing.json"},
		"no argument":  {args: []string{"names"}, wantErr: "accepts 1 arg"},
		"bad format":   {args: []string{"report", "--format", "xml", patientFile}, wantErr: "invalid format"},
		"not a bundle": {args: []string{"pages", "../../go.mod"}, wantErr: "invalid"},
		"unknown flag": {args: []string{"names", "--bogus", patientFile}, wantErr: "unknown flag"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := execute(t, tt.args...)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
