package tri

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/philipparndt/gonebula/pkg/geometry"
)

// Extension is the file extension of triangle documents
const Extension = ".tri"

// fieldsPerRecord is matIn, matOut and three xyz vertices
const fieldsPerRecord = 11

// maxLineSize bounds a single line; records are far shorter
const maxLineSize = 1024 * 1024

// ErrNotTriFile is returned by ParseFile for paths without the .tri extension
var ErrNotTriFile = errors.New("not a .tri file")

// NumberPolicy decides what happens to coordinates that do not parse
type NumberPolicy int

const (
	// NumberPolicyPropagate stores NaN for unparsable coordinates
	NumberPolicyPropagate NumberPolicy = iota
	// NumberPolicySkip drops records with an unparsable coordinate
	NumberPolicySkip
)

// String returns the config name of the policy
func (p NumberPolicy) String() string {
	if p == NumberPolicySkip {
		return "skip"
	}
	return "propagate"
}

type options struct {
	numbers NumberPolicy
}

// Option configures the parser
type Option func(*options)

// WithNumberPolicy selects how unparsable coordinates are handled
func WithNumberPolicy(p NumberPolicy) Option {
	return func(o *options) {
		o.numbers = p
	}
}

// IsTriFile reports whether path carries the .tri extension
func IsTriFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), Extension)
}

// ParseFile reads a .tri file and returns the per-material geometry
func ParseFile(path string, opts ...Option) (*Result, error) {
	if !IsTriFile(path) {
		return nil, fmt.Errorf("%s: %w", path, ErrNotTriFile)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Parse(file, opts...)
}

// ParseString parses an in-memory .tri document. It never fails: lines
// that are not records are skipped. Line counting matches Parse, so a
// final newline does not start another line.
func ParseString(text string, opts ...Option) *Result {
	o := newOptions(opts)
	result := NewResult()
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return result
	}
	for _, line := range strings.Split(text, "\n") {
		parseLine(result, line, o)
	}
	return result
}

// Parse reads a .tri document line by line. Only I/O failures are
// returned as errors; malformed lines are skipped.
func Parse(reader io.Reader, opts ...Option) (*Result, error) {
	o := newOptions(opts)
	result := NewResult()

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		parseLine(result, scanner.Text(), o)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading triangle data: %w", err)
	}

	return result, nil
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// parseLine handles one line: matIn matOut x1 y1 z1 x2 y2 z2 x3 y3 z3
func parseLine(result *Result, line string, o options) {
	fields := strings.Fields(line)
	if len(fields) != fieldsPerRecord {
		result.Skipped++
		return
	}

	matIn, okIn := parseMaterial(fields[0])
	matOut, okOut := parseMaterial(fields[1])
	if !okIn || !okOut {
		result.Invalid++
		return
	}

	var coords [9]float64
	for i := range coords {
		v, ok := parseCoordinate(fields[2+i])
		if !ok && o.numbers == NumberPolicySkip {
			result.Invalid++
			return
		}
		coords[i] = v
	}

	result.Records++
	result.registerMaterial(matIn)
	result.registerMaterial(matOut)

	outside := geometry.NewFace(
		geometry.NewVector3(coords[0], coords[1], coords[2]),
		geometry.NewVector3(coords[3], coords[4], coords[5]),
		geometry.NewVector3(coords[6], coords[7], coords[8]),
	)

	// The face as seen from the outer material keeps its winding, the
	// inner material sees the back side
	result.geometryFor(matOut).AddTriangle(outside)
	result.geometryFor(matIn).AddTriangle(outside.Flipped())
}

// parseCoordinate returns NaN (and false) for tokens that are not numbers.
// Out of range values become ±Inf.
func parseCoordinate(token string) (float64, bool) {
	v, err := strconv.ParseFloat(token, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN(), false
	}
	return v, true
}

// parseMaterial accepts integral numbers such as "3", "3.0" or "-122"
func parseMaterial(token string) (int, bool) {
	if id, err := strconv.Atoi(token); err == nil {
		return id, true
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, false
	}
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, false
	}
	return int(v), true
}
