package curve

import "math"

// Sagitta tolerance driving the arc step angle.
const arcTolerance = 0.10

// flattenArc flattens the circular arc through p1, p2, p3: the unique
// circle through the three points, swept from p1 to p3 in the direction
// p2 lies on. Callers have already ruled out collinear input.
func flattenArc(p1, p2, p3 Vector) []Vector {
	cx, cy, ok := circumcenter(p1, p2, p3)
	if !ok {
		return []Vector{p1, p3}
	}
	r := dist(Vector{cx, cy}, p1)

	a1 := math.Atan2(p1.Y-cy, p1.X-cx)
	a3 := math.Atan2(p3.Y-cy, p3.X-cx)

	dir := 1.0
	if cross(sub(p2, p1), sub(p3, p2)) < 0 {
		dir = -1.0
	}
	delta := sweep(a1, a3, dir)

	// Step angle from the sagitta tolerance; the chord of each step then
	// deviates from the circle by at most arcTolerance pixels.
	step := 2 * math.Acos(clamp(1-arcTolerance/r, -1, 1))
	if step <= 0 || math.IsNaN(step) || step > math.Pi {
		step = math.Pi
	}
	steps := int(math.Ceil(math.Abs(delta) / step))
	if steps < 2 {
		steps = 2
	}
	step = math.Abs(delta) / float64(steps) * dir

	out := make([]Vector, 0, steps+1)
	out = append(out, p1)
	for i := 1; i < steps; i++ {
		a := a1 + float64(i)*step
		out = append(out, Vector{cx + math.Cos(a)*r, cy + math.Sin(a)*r})
	}
	out = append(out, p3)
	return out
}

// sweep returns the signed angle from aStart to aEnd travelling in the
// given direction.
func sweep(aStart, aEnd, dir float64) float64 {
	d := aEnd - aStart
	for d <= -math.Pi {
		d += 2 * math.Pi
	}
	for d > math.Pi {
		d -= 2 * math.Pi
	}
	if dir < 0 && d > 0 {
		d -= 2 * math.Pi
	} else if dir > 0 && d < 0 {
		d += 2 * math.Pi
	}
	return d
}

func circumcenter(a, b, c Vector) (x, y float64, ok bool) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if math.Abs(d) < 1e-8 {
		return 0, 0, false
	}
	a2 := a.X*a.X + a.Y*a.Y
	b2 := b.X*b.X + b.Y*b.Y
	c2 := c.X*c.X + c.Y*c.Y
	x = (a2*(b.Y-c.Y) + b2*(c.Y-a.Y) + c2*(a.Y-b.Y)) / d
	y = (a2*(c.X-b.X) + b2*(a.X-c.X) + c2*(b.X-a.X)) / d
	return x, y, true
}
