package curve

import (
	"math"
	"testing"
)

func approxEq(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestLinearPath(t *testing.T) {
	path, note := New(Linear, []Vector{{0, 0}, {100, 0}, {100, 100}})
	if note != "" {
		t.Fatalf("unexpected degeneracy note: %q", note)
	}
	if !approxEq(path.Length(), 200, 1e-9) {
		t.Errorf("Length() = %v, want 200", path.Length())
	}

	tests := []struct {
		name     string
		distance float64
		want     Vector
	}{
		{"head", 0, Vector{0, 0}},
		{"negative clamps to head", -10, Vector{0, 0}},
		{"mid first segment", 50, Vector{50, 0}},
		{"corner", 100, Vector{100, 0}},
		{"mid second segment", 150, Vector{100, 50}},
		{"tail", 200, Vector{100, 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := path.PointAt(tt.distance)
			if !approxEq(got.X, tt.want.X, 1e-9) || !approxEq(got.Y, tt.want.Y, 1e-9) {
				t.Errorf("PointAt(%v) = %v, want %v", tt.distance, got, tt.want)
			}
		})
	}
}

func TestPointAtExtendsPastEnd(t *testing.T) {
	path, _ := New(Linear, []Vector{{0, 0}, {100, 0}})
	got := path.PointAt(150)
	if !approxEq(got.X, 150, 1e-9) || !approxEq(got.Y, 0, 1e-9) {
		t.Errorf("PointAt(150) = %v, want (150,0)", got)
	}
}

func TestBezierDuplicateSplitsSegments(t *testing.T) {
	// A duplicated control point lifts the pen: two independent
	// degree-1 curves, (0,0)-(100,0) and (100,0)-(100,100).
	path, note := New(Bezier, []Vector{{0, 0}, {100, 0}, {100, 0}, {100, 100}})
	if note != "" {
		t.Fatalf("unexpected degeneracy note: %q", note)
	}
	if !approxEq(path.Length(), 200, 1e-6) {
		t.Errorf("Length() = %v, want 200", path.Length())
	}
	got := path.PointAt(50)
	if !approxEq(got.X, 50, 1e-6) || !approxEq(got.Y, 0, 1e-6) {
		t.Errorf("PointAt(50) = %v, want (50,0)", got)
	}
	got = path.PointAt(150)
	if !approxEq(got.X, 100, 1e-6) || !approxEq(got.Y, 50, 1e-6) {
		t.Errorf("PointAt(150) = %v, want (100,50)", got)
	}
}

func TestQuadraticBezierLength(t *testing.T) {
	// Quadratic through (0,0),(50,100),(100,0); exact arc length is
	// known in closed form, about 147.894.
	path, _ := New(Bezier, []Vector{{0, 0}, {50, 100}, {100, 0}})
	if !approxEq(path.Length(), 147.894, 0.5) {
		t.Errorf("Length() = %v, want about 147.894", path.Length())
	}
	end := path.PointAt(path.Length())
	if !approxEq(end.X, 100, 1e-6) || !approxEq(end.Y, 0, 1e-6) {
		t.Errorf("end point = %v, want (100,0)", end)
	}
}

func TestPerfectCircleSemicircle(t *testing.T) {
	// (0,0),(100,100),(200,0) lie on the circle centred at (100,0) with
	// radius 100; the arc through the middle point is the upper
	// semicircle of length 100*pi.
	path, note := New(PerfectCircle, []Vector{{0, 0}, {100, 100}, {200, 0}})
	if note != "" {
		t.Fatalf("unexpected degeneracy note: %q", note)
	}
	want := 100 * math.Pi
	if !approxEq(path.Length(), want, want*0.01) {
		t.Errorf("Length() = %v, want about %v", path.Length(), want)
	}
	top := path.PointAt(want / 2)
	if !approxEq(top.X, 100, 1.0) || !approxEq(top.Y, 100, 1.0) {
		t.Errorf("midpoint = %v, want about (100,100)", top)
	}
}

func TestPerfectCircleCollinearDegradesToLinear(t *testing.T) {
	path, note := New(PerfectCircle, []Vector{{0, 0}, {50, 0}, {100, 0}})
	if note == "" {
		t.Fatal("expected a degeneracy note for collinear points")
	}
	if !approxEq(path.Length(), 100, 1e-9) {
		t.Errorf("Length() = %v, want 100", path.Length())
	}
}

func TestPerfectCircleWrongPointCountFallsBackToBezier(t *testing.T) {
	// Four points cannot define the perfect-circle form; the reference
	// decoder treats them as a Bezier.
	path, note := New(PerfectCircle, []Vector{{0, 0}, {50, 0}, {100, 0}, {150, 0}})
	if note != "" {
		t.Fatalf("unexpected degeneracy note: %q", note)
	}
	if !approxEq(path.Length(), 150, 1e-6) {
		t.Errorf("Length() = %v, want 150", path.Length())
	}
}

func TestCatmullStraightSegment(t *testing.T) {
	path, _ := New(Catmull, []Vector{{0, 0}, {100, 0}})
	if !approxEq(path.Length(), 100, 0.1) {
		t.Errorf("Length() = %v, want about 100", path.Length())
	}
	end := path.PointAt(path.Length())
	if !approxEq(end.X, 100, 1e-6) || !approxEq(end.Y, 0, 1e-6) {
		t.Errorf("end point = %v, want (100,0)", end)
	}
}

func TestCatmullPassesThroughControlPoints(t *testing.T) {
	control := []Vector{{0, 0}, {100, 50}, {200, 0}}
	path, _ := New(Catmull, control)
	verts := path.Vertices()
	for _, c := range control {
		found := false
		for _, v := range verts {
			if approxEq(v.X, c.X, 1e-6) && approxEq(v.Y, c.Y, 1e-6) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("control point %v not on flattened path", c)
		}
	}
}

func TestZeroLengthPath(t *testing.T) {
	path, note := New(Bezier, []Vector{{50, 50}, {50, 50}})
	if note == "" {
		t.Fatal("expected a degeneracy note for a zero-length path")
	}
	if path.Length() != 0 {
		t.Errorf("Length() = %v, want 0", path.Length())
	}
	got := path.PointAt(10)
	if got.X != 50 || got.Y != 50 {
		t.Errorf("PointAt(10) = %v, want (50,50)", got)
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		tag  string
		want Kind
	}{
		{"L", Linear},
		{"C", Catmull},
		{"P", PerfectCircle},
		{"B", Bezier},
		{"X", Bezier}, // unknown tags decode as Bezier
	}
	for _, tt := range tests {
		if got := ParseKind(tt.tag); got != tt.want {
			t.Errorf("ParseKind(%q) = %v, want %v", tt.tag, got, tt.want)
		}
	}
}
