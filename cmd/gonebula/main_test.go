package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `1 2 0 0 0 1 0 0 0 1 0
1 -122 0 0 1 1 0 1 0 1 1
`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.tri")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestInfoCommand(t *testing.T) {
	out, err := execute(t, "info", writeSample(t))
	require.NoError(t, err)

	assert.Contains(t, out, "Valid: 2")
	assert.Contains(t, out, "Materials: 3")
	assert.Contains(t, out, "Triangles: 4")
}

func TestInfoRejectsOtherExtensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.stl")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	_, err := execute(t, "info", path)
	assert.ErrorContains(t, err, "not a .tri file")
}

func TestMaterialsCommand(t *testing.T) {
	out, err := execute(t, "materials", writeSample(t))
	require.NoError(t, err)

	assert.Contains(t, out, "Material 1")
	assert.Contains(t, out, "Ideal mirror")
	assert.Contains(t, out, "#9adabe")
}

func TestMaterialsTable(t *testing.T) {
	out, err := execute(t, "materials")
	require.NoError(t, err)

	assert.Contains(t, out, "Does nothing")
	assert.Contains(t, out, "#5e4fa2")
}

func TestPlanesCommand(t *testing.T) {
	out, err := execute(t, "planes", writeSample(t), "--z", "0.2:0.8")
	require.NoError(t, err)

	assert.Contains(t, out, "Planes (2)")
	assert.Contains(t, out, "z: fixed")
	assert.Contains(t, out, "x: auto")
}

func TestGridCommand(t *testing.T) {
	out, err := execute(t, "grid", writeSample(t))
	require.NoError(t, err)

	assert.Contains(t, out, "Extent: 200 x 200")
	assert.Contains(t, out, "Cell size: 10")
}

func TestRenderCommand(t *testing.T) {
	output := filepath.Join(t.TempDir(), "snapshot.png")
	_, err := execute(t, "render", writeSample(t), "-o", output, "--width", "64", "--height", "48")
	require.NoError(t, err)

	f, err := os.Open(output)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())
}
