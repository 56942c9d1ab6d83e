// Package curve builds slider paths from control points and answers
// arc-length queries against them.
//
// A Path is a piecewise-linear flattening of one of the four curve types
// (Linear, PerfectCircle, Catmull, Bezier) with a cumulative-length table,
// so "point after d pixels of travel" is a table walk regardless of the
// underlying curve type.
package curve

import (
	"math"
	"sort"
)

// Vector is a 2D playfield point.
type Vector struct {
	X, Y float64
}

// Kind is the curve-type tag of a slider.
type Kind uint8

const (
	Bezier Kind = iota
	Linear
	Catmull
	PerfectCircle
)

func (k Kind) String() string {
	switch k {
	case Bezier:
		return "bezier"
	case Linear:
		return "linear"
	case Catmull:
		return "catmull"
	case PerfectCircle:
		return "perfect-circle"
	}
	return "unknown"
}

// ParseKind maps the single-letter tag from a slider line to a Kind.
// Unrecognized tags decode as Bezier, the format's default.
func ParseKind(tag string) Kind {
	switch tag {
	case "L":
		return Linear
	case "C":
		return Catmull
	case "P":
		return PerfectCircle
	default:
		return Bezier
	}
}

// Path is a flattened curve with an arc-length table.
type Path struct {
	kind  Kind
	verts []Vector
	cum   []float64 // cum[i] = pixels from verts[0] to verts[i]
}

// New flattens the control points into a Path.
//
// The returned note is empty for healthy geometry and describes the
// fallback applied for degenerate input (collinear perfect-circle points,
// fewer than two distinct points). Degenerate input never fails: the
// caller records the note as a warning and keeps the path.
func New(kind Kind, control []Vector) (*Path, string) {
	var verts []Vector
	var note string

	switch kind {
	case Linear:
		verts = control

	case PerfectCircle:
		// The perfect-circle form needs exactly 3 points; anything else
		// is treated as Bezier, matching the reference decoder.
		if len(control) != 3 {
			verts = flattenBezier(control)
		} else if collinear(control[0], control[1], control[2]) {
			verts = []Vector{control[0], control[2]}
			note = "collinear perfect-circle control points, degraded to linear"
		} else {
			verts = flattenArc(control[0], control[1], control[2])
		}

	case Catmull:
		verts = flattenCatmull(control)

	default:
		verts = flattenBezier(control)
	}

	// Flattening a fully-degenerate control sequence can drop every
	// vertex; keep at least the head so queries stay answerable.
	if len(verts) == 0 && len(control) > 0 {
		verts = control[:1]
	}
	verts = dedupe(verts)
	if len(verts) < 2 && note == "" {
		note = "fewer than two distinct control points, zero-length path"
	}

	cum := make([]float64, len(verts))
	for i := 1; i < len(verts); i++ {
		cum[i] = cum[i-1] + dist(verts[i-1], verts[i])
	}
	return &Path{kind: kind, verts: verts, cum: cum}, note
}

// Kind returns the curve-type tag the path was built from.
func (p *Path) Kind() Kind { return p.kind }

// Length returns the geometry-derived pixel length of the path. The
// explicit length on the slider line is authoritative over this value.
func (p *Path) Length() float64 {
	if len(p.cum) == 0 {
		return 0
	}
	return p.cum[len(p.cum)-1]
}

// Vertices returns the flattened polyline, head first. The slice is
// shared; callers must not modify it.
func (p *Path) Vertices() []Vector { return p.verts }

// PointAt returns the point after travelling the given pixel distance
// from the head. Negative distances clamp to the head; distances beyond
// the geometry extend linearly along the final segment, so an explicit
// slider length longer than the geometry still lands on a point.
func (p *Path) PointAt(distance float64) Vector {
	if len(p.verts) == 0 {
		return Vector{}
	}
	if len(p.verts) == 1 || distance <= 0 {
		return p.verts[0]
	}
	total := p.cum[len(p.cum)-1]
	if distance >= total {
		from := p.verts[len(p.verts)-1]
		dir := norm(sub(from, p.verts[len(p.verts)-2]))
		over := distance - total
		return Vector{X: from.X + dir.X*over, Y: from.Y + dir.Y*over}
	}
	i := sort.SearchFloat64s(p.cum, distance)
	if i == 0 {
		return p.verts[0]
	}
	a, b := p.verts[i-1], p.verts[i]
	seg := p.cum[i] - p.cum[i-1]
	t := (distance - p.cum[i-1]) / seg
	return Vector{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

// dedupe removes consecutive duplicate vertices.
func dedupe(pts []Vector) []Vector {
	if len(pts) < 2 {
		return pts
	}
	out := pts[:1]
	for _, p := range pts[1:] {
		if !almostEq(out[len(out)-1], p) {
			out = append(out, p)
		}
	}
	return out
}

// vector helpers

func sub(a, b Vector) Vector    { return Vector{a.X - b.X, a.Y - b.Y} }
func cross(a, b Vector) float64 { return a.X*b.Y - a.Y*b.X }
func dist(a, b Vector) float64  { return math.Hypot(a.X-b.X, a.Y-b.Y) }

func norm(v Vector) Vector {
	l := math.Hypot(v.X, v.Y)
	if l == 0 {
		return Vector{}
	}
	return Vector{v.X / l, v.Y / l}
}

func collinear(a, b, c Vector) bool {
	return math.Abs(cross(sub(b, a), sub(c, b))) < 1e-6
}

func almostEq(a, b Vector) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
