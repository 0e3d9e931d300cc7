package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/areapocket/internal/boolean"
	"github.com/piwi3910/areapocket/internal/geom"
)

func TestWriteManifestCreatesNonEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.xlsx")

	curves := []geom.Curve{square(0, 0, 2, 2), square(5, 5, 6, 7)}
	boundary := []geom.Curve{square(-1, -1, 10, 10)}
	err := WriteManifest(path, curves, boundary, boolean.ClipperEngine{}, 1, 0.001)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteManifestHandlesNoCurves(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.xlsx")

	err := WriteManifest(path, nil, nil, nil, 1, 0.001)
	require.NoError(t, err)

	_, err = os.Stat(path)
	require.NoError(t, err)
}
