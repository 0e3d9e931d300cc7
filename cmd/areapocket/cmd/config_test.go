package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/areapocket/internal/pocket"
)

func TestDefaultJobConfigParsesAsValidMode(t *testing.T) {
	cfg := DefaultJobConfig()
	_, err := pocket.ParseMode(cfg.Mode)
	assert.NoError(t, err)
}

func TestMarshalUnmarshalYAMLFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "job.yml")

	want := DefaultJobConfig()
	want.ToolRadius = 4.5
	require.NoError(t, marshalYAMLFile(path, want))

	var got JobConfig
	require.NoError(t, unmarshalYAMLFile(path, &got))
	assert.Equal(t, want, got)
}

func TestFileExistsReportsMissingFile(t *testing.T) {
	dir := t.TempDir()
	err := fileExists(filepath.Join(dir, "missing.yml"))
	assert.Error(t, err)
}

func TestFileExistsAcceptsPresentFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "present.yml")
	require.NoError(t, os.WriteFile(path, []byte("units: 1\n"), 0644))
	assert.NoError(t, fileExists(path))
}
