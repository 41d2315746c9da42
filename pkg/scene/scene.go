// Package scene ties a parsed .tri document to its material records and
// the clipping state, and derives everything a renderer needs from them.
package scene

import (
	"fmt"
	"io"

	"github.com/philipparndt/gonebula/pkg/clipping"
	"github.com/philipparndt/gonebula/pkg/geometry"
	"github.com/philipparndt/gonebula/pkg/grid"
	"github.com/philipparndt/gonebula/pkg/material"
	"github.com/philipparndt/gonebula/pkg/tri"
	"go.uber.org/zap"
)

// BoundsMargin is added on every side of the visible bounding box
const BoundsMargin = 0.1

// ClippingPolicy decides what a load does to the clipping state
type ClippingPolicy int

const (
	// PolicyKeepClipping leaves enabled axes and their ranges alone
	PolicyKeepClipping ClippingPolicy = iota
	// PolicyResetClipping returns every axis to auto before the new
	// bounding box is ingested
	PolicyResetClipping
)

// String returns the policy name
func (p ClippingPolicy) String() string {
	if p == PolicyResetClipping {
		return "reset"
	}
	return "keep"
}

// Option configures a Scene
type Option func(*Scene)

// WithClippingPolicy selects how loads treat the clipping state
func WithClippingPolicy(p ClippingPolicy) Option {
	return func(s *Scene) {
		s.policy = p
	}
}

// WithNumberPolicy is handed to the parser on every load
func WithNumberPolicy(p tri.NumberPolicy) Option {
	return func(s *Scene) {
		s.numbers = p
	}
}

// WithLogger sets the logger for load and visibility events
func WithLogger(log *zap.Logger) Option {
	return func(s *Scene) {
		if log != nil {
			s.log = log
		}
	}
}

// Stats summarizes the loaded document
type Stats struct {
	Source           string
	Records          int
	Skipped          int
	Invalid          int
	Triangles        int
	Materials        int
	VisibleMaterials int
}

// DrawItem is the render input of one material
type DrawItem struct {
	ID        int
	Name      string
	Color     material.Color
	Visible   bool
	Positions []float32
	Normals   []float32
}

// TriangleCount returns the number of triangles of the item
func (d DrawItem) TriangleCount() int {
	return len(d.Positions) / 9
}

// Scene owns the loaded geometry, the material records and the clipping
// state. It is not safe for concurrent use; callers serialize access.
type Scene struct {
	clip       *clipping.State
	geometries map[int]*tri.Geometry
	materials  *material.List
	box        geometry.BoundingBox
	hasBox     bool
	source     string
	result     *tri.Result

	policy  ClippingPolicy
	numbers tri.NumberPolicy
	log     *zap.Logger
}

// New creates an empty scene driving clip. A nil clip gets a fresh state.
func New(clip *clipping.State, opts ...Option) *Scene {
	if clip == nil {
		clip = clipping.NewState()
	}
	s := &Scene{
		clip:       clip,
		geometries: make(map[int]*tri.Geometry),
		materials:  material.NewList(nil),
		result:     tri.NewResult(),
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Apply replaces geometry and materials with res and re-derives the
// bounding box. A nil result empties the scene.
func (s *Scene) Apply(res *tri.Result, source string) {
	if res == nil {
		res = tri.NewResult()
	}
	if s.policy == PolicyResetClipping {
		s.clip.Reset()
	}

	s.result = res
	s.geometries = res.Geometries
	s.materials = material.NewList(res.Materials)
	s.source = source
	s.rederive()

	s.log.Info("Scene loaded",
		zap.String("source", source),
		zap.Int("records", res.Records),
		zap.Int("skipped", res.Skipped),
		zap.Int("invalid", res.Invalid),
		zap.Int("materials", s.materials.Len()),
		zap.Int("triangles", res.TriangleCount()),
	)
}

// Load parses text and applies the result
func (s *Scene) Load(text, source string) {
	s.Apply(tri.ParseString(text, s.parseOptions()...), source)
}

// LoadReader parses r and applies the result. On a read error the scene
// is left unchanged.
func (s *Scene) LoadReader(r io.Reader, source string) error {
	res, err := tri.Parse(r, s.parseOptions()...)
	if err != nil {
		s.log.Warn("Load failed", zap.String("source", source), zap.Error(err))
		return fmt.Errorf("failed to load %s: %w", source, err)
	}
	s.Apply(res, source)
	return nil
}

// LoadFile parses the .tri file at path and applies the result. On error
// the scene is left unchanged.
func (s *Scene) LoadFile(path string) error {
	res, err := tri.ParseFile(path, s.parseOptions()...)
	if err != nil {
		s.log.Warn("Load failed", zap.String("source", path), zap.Error(err))
		return err
	}
	s.Apply(res, path)
	return nil
}

// ParseOptions returns the parser options the scene loads with, for
// callers that parse off the main goroutine and Apply later
func (s *Scene) ParseOptions() []tri.Option {
	return s.parseOptions()
}

func (s *Scene) parseOptions() []tri.Option {
	return []tri.Option{tri.WithNumberPolicy(s.numbers)}
}

// ToggleVisibility flips the visibility of a material and returns the new
// value. Unknown ids change nothing and report false.
func (s *Scene) ToggleVisibility(id int) bool {
	if _, ok := s.materials.Get(id); !ok {
		return false
	}
	visible := s.materials.Toggle(id)
	s.log.Debug("Material visibility", zap.Int("material", id), zap.Bool("visible", visible))
	s.rederive()
	return visible
}

// SetVisible sets the visibility of a material. It reports whether the
// id is known.
func (s *Scene) SetVisible(id int, visible bool) bool {
	if !s.materials.SetVisible(id, visible) {
		return false
	}
	s.log.Debug("Material visibility", zap.Int("material", id), zap.Bool("visible", visible))
	s.rederive()
	return true
}

// SetClippingEnabled enables or disables clipping along an axis
func (s *Scene) SetClippingEnabled(a clipping.Axis, enabled bool) {
	s.clip.SetEnabled(a, enabled)
	s.log.Debug("Clipping", zap.Stringer("axis", a), zap.Bool("enabled", enabled))
}

// SetClippingRange sets the clipping range of an axis
func (s *Scene) SetClippingRange(a clipping.Axis, r clipping.Range) {
	s.clip.SetRange(a, r)
	s.log.Debug("Clipping", zap.Stringer("axis", a), zap.Stringer("range", r))
}

// SetClippingField updates one clipping field from a loosely typed value
func (s *Scene) SetClippingField(a clipping.Axis, field clipping.Field, value any) error {
	if err := s.clip.SetField(a, field, value); err != nil {
		return err
	}
	s.log.Debug("Clipping", zap.Stringer("axis", a), zap.Stringer("field", field), zap.Any("value", value))
	return nil
}

// Materials returns the material records in discovery order
func (s *Scene) Materials() []material.Record {
	return s.materials.Records()
}

// Clipping returns the clipping state. Mutate it through the Scene
// setters so changes are logged.
func (s *Scene) Clipping() *clipping.State {
	return s.clip
}

// BoundingBox returns the margin-expanded bounds of the visible
// geometry. ok is false when nothing is visible.
func (s *Scene) BoundingBox() (geometry.BoundingBox, bool) {
	return s.box, s.hasBox
}

// Planes returns the active clip planes
func (s *Scene) Planes() []clipping.Plane {
	return s.clip.Planes()
}

// Grid returns the reference grid for the current bounding box, or nil
func (s *Scene) Grid() *grid.Params {
	if !s.hasBox {
		return nil
	}
	box := s.box
	return grid.Compute(&box)
}

// DrawList returns the render input of every material in discovery
// order. Materials with no triangles facing them have empty buffers.
func (s *Scene) DrawList() []DrawItem {
	records := s.materials.Records()
	items := make([]DrawItem, 0, len(records))
	for _, r := range records {
		item := DrawItem{
			ID:      r.ID,
			Name:    r.Name,
			Color:   r.Color,
			Visible: r.Visible,
		}
		if g, ok := s.geometries[r.ID]; ok {
			item.Positions = g.Positions
			item.Normals = g.Normals
		}
		items = append(items, item)
	}
	return items
}

// Source returns the name of the loaded document
func (s *Scene) Source() string {
	return s.source
}

// Stats summarizes the loaded document
func (s *Scene) Stats() Stats {
	return Stats{
		Source:           s.source,
		Records:          s.result.Records,
		Skipped:          s.result.Skipped,
		Invalid:          s.result.Invalid,
		Triangles:        s.result.TriangleCount(),
		Materials:        s.materials.Len(),
		VisibleMaterials: s.materials.VisibleCount(),
	}
}

// Geometry returns the buffers of one material, or nil
func (s *Scene) Geometry(id int) *tri.Geometry {
	return s.geometries[id]
}

// rederive recomputes the bounding box from the visible materials and
// hands it to the clipping state
func (s *Scene) rederive() {
	box, ok := VisibleBounds(s.geometries, s.materials)
	if !ok {
		s.box = geometry.BoundingBox{}
		s.hasBox = false
		s.clip.ClearBoundingBox()
		return
	}
	s.box = box.ExpandByScalar(BoundsMargin)
	s.hasBox = true
	s.clip.IngestBoundingBox(s.box)
}

// VisibleBounds returns the union of the bounds of every visible,
// non-empty material geometry. ok is false when there is none.
func VisibleBounds(geoms map[int]*tri.Geometry, materials *material.List) (geometry.BoundingBox, bool) {
	box := geometry.NewBoundingBox()
	found := false
	for _, id := range materials.IDs() {
		if !materials.Visible(id) {
			continue
		}
		g, ok := geoms[id]
		if !ok || g.IsEmpty() {
			continue
		}
		box.Union(g.BoundingBox())
		found = true
	}
	if !found {
		return geometry.BoundingBox{}, false
	}
	return box, true
}
