package tri

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSingleRecord(t *testing.T) {
	result := ParseString("1 2 0 0 0 1 0 0 0 1 0\n")

	assert.ElementsMatch(t, []int{1, 2}, result.Materials)
	assert.Equal(t, 1, result.Records)
	require.Len(t, result.Geometries, 2)

	inside := result.Geometry(1)
	require.NotNil(t, inside)
	assert.Equal(t, []float32{0, 0, 0, 0, 1, 0, 1, 0, 0}, inside.Positions)
	assert.Equal(t, []float32{0, 0, -1, 0, 0, -1, 0, 0, -1}, inside.Normals)

	outside := result.Geometry(2)
	require.NotNil(t, outside)
	assert.Equal(t, []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}, outside.Positions)
	assert.Equal(t, []float32{0, 0, 1, 0, 0, 1, 0, 0, 1}, outside.Normals)
}

func TestParseNoRecords(t *testing.T) {
	inputs := []string{
		"",
		"\n\n\n",
		"# header line\n",
		"1 2 0 0 0 1 0 0 0 1\n",
		"1 2 0 0 0 1 0 0 0 1 0 7\n",
	}

	for _, input := range inputs {
		result := ParseString(input)
		assert.Empty(t, result.Materials, "input %q", input)
		assert.Empty(t, result.Geometries, "input %q", input)
		assert.True(t, result.IsEmpty())
		assert.Zero(t, result.Records)
	}
}

func TestParseSkipsMalformedLines(t *testing.T) {
	input := strings.Join([]string{
		"tri file v1",
		"  3   4\t0 0 0   2 0 0   0 2 0  ",
		"",
		"garbage",
		"4 3 0 0 1 2 0 1 0 2 1",
	}, "\n")

	result := ParseString(input)
	assert.Equal(t, 2, result.Records)
	assert.Equal(t, []int{3, 4}, result.Materials)
	assert.Equal(t, 2, result.Geometry(3).TriangleCount())
	assert.Equal(t, 2, result.Geometry(4).TriangleCount())
	assert.Equal(t, 3, result.Skipped)
}

func TestParseTwoTrianglesPerRecord(t *testing.T) {
	input := "5 5 0 0 0 1 0 0 0 1 0\n-123 7 0 0 0 0 1 0 0 0 1\n7 -123 1 1 1 2 1 1 1 2 1\n"

	result := ParseString(input)
	assert.Equal(t, 3, result.Records)
	assert.Equal(t, 6, result.TriangleCount())

	same := result.Geometry(5)
	require.NotNil(t, same)
	assert.Equal(t, 2, same.TriangleCount())

	for id, g := range result.Geometries {
		assert.Equal(t, len(g.Positions), len(g.Normals), "material %d", id)
		assert.Zero(t, len(g.Positions)%9, "material %d", id)
	}
}

func TestParseInsideIsMirrorOfOutside(t *testing.T) {
	result := ParseString("1 2 0.5 -1 2 3 4 5 -6 7 8.25")

	outside := result.Geometry(2).Triangle(0)
	inside := result.Geometry(1).Triangle(0)

	assert.Equal(t, outside.V1, inside.V1)
	assert.Equal(t, outside.V2, inside.V3)
	assert.Equal(t, outside.V3, inside.V2)
	assert.Equal(t, outside.Normal.Negate(), inside.Normal)
	assert.InDelta(t, 1.0, outside.Normal.Length(), 1e-6)
}

func TestParseFlatNormals(t *testing.T) {
	result := ParseString("1 2 0 0 0 3 0 1 0 2 5")
	normals := result.Geometry(2).Normals

	require.Len(t, normals, 9)
	for i := 3; i < 9; i++ {
		assert.Equal(t, normals[i%3], normals[i])
	}
}

func TestParseDegenerateTriangle(t *testing.T) {
	result := ParseString("1 2 0 0 0 1 1 1 2 2 2")

	require.Equal(t, 1, result.Records)
	for _, id := range []int{1, 2} {
		for _, n := range result.Geometry(id).Normals {
			assert.Zero(t, n)
		}
	}
}

func TestParseNumberPolicy(t *testing.T) {
	input := "1 2 0 0 0 abc 0 0 0 1 0\n1 2 0 0 0 1 0 0 0 1 0\n"

	propagated := ParseString(input)
	assert.Equal(t, 2, propagated.Records)
	assert.True(t, math.IsNaN(float64(propagated.Geometry(2).Positions[3])))

	skipped := ParseString(input, WithNumberPolicy(NumberPolicySkip))
	assert.Equal(t, 1, skipped.Records)
	assert.Equal(t, 1, skipped.Invalid)
	assert.Equal(t, 1, skipped.Geometry(2).TriangleCount())
	for _, v := range skipped.Geometry(2).Positions {
		assert.False(t, math.IsNaN(float64(v)))
	}
}

func TestParseOutOfRangeCoordinates(t *testing.T) {
	res := ParseString("1 2 0 0 0 1e400 0 0 0 -1e400 0\n", WithNumberPolicy(NumberPolicySkip))
	assert.Equal(t, 1, res.Records)
	assert.Equal(t, 0, res.Invalid)

	positions := res.Geometry(2).Positions
	assert.True(t, math.IsInf(float64(positions[3]), 1))
	assert.True(t, math.IsInf(float64(positions[7]), -1))
}

func TestParseMaterialTokens(t *testing.T) {
	result := ParseString("3.0 -122 0 0 0 1 0 0 0 1 0\n1.5 2 0 0 0 1 0 0 0 1 0\nx 2 0 0 0 1 0 0 0 1 0")

	assert.Equal(t, []int{3, -122}, result.Materials)
	assert.Equal(t, 1, result.Records)
	assert.Equal(t, 2, result.Invalid)
}

func TestParseMaterialOrder(t *testing.T) {
	result := ParseString("9 4 0 0 0 1 0 0 0 1 0\n4 1 0 0 0 1 0 0 0 1 0\n1 9 0 0 0 1 0 0 0 1 0")
	assert.Equal(t, []int{9, 4, 1}, result.Materials)
}

func TestParseReader(t *testing.T) {
	result, err := Parse(strings.NewReader("1 2 0 0 0 1 0 0 0 1 0\r\n2 3 0 0 1 1 0 1 0 1 1\r\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Records)
	assert.Equal(t, []int{1, 2, 3}, result.Materials)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestParseReaderError(t *testing.T) {
	_, err := Parse(failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "box.tri")
	require.NoError(t, os.WriteFile(path, []byte("1 2 0 0 0 1 0 0 0 1 0\n"), 0644))

	result, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Records)

	_, err = ParseFile(filepath.Join(dir, "missing.tri"))
	assert.Error(t, err)

	_, err = ParseFile(filepath.Join(dir, "model.stl"))
	assert.ErrorIs(t, err, ErrNotTriFile)
}

func TestIsTriFile(t *testing.T) {
	assert.True(t, IsTriFile("scene.tri"))
	assert.True(t, IsTriFile("/tmp/SCENE.TRI"))
	assert.False(t, IsTriFile("scene.stl"))
	assert.False(t, IsTriFile("tri"))
}

func TestGeometryBoundingBox(t *testing.T) {
	result := ParseString("1 2 -1 0 0 1 0 0 0 3 2")
	bbox := result.Geometry(1).BoundingBox()

	assert.Equal(t, -1.0, bbox.Min.X)
	assert.Equal(t, 1.0, bbox.Max.X)
	assert.Equal(t, 3.0, bbox.Max.Y)
	assert.Equal(t, 2.0, bbox.Max.Z)
}
