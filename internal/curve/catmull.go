package curve

// Samples per Catmull-Rom segment.
const catmullDetail = 50

// flattenCatmull samples a Catmull-Rom spline through the control points
// as piecewise cubics, duplicating the boundary points at the ends.
func flattenCatmull(pts []Vector) []Vector {
	n := len(pts)
	if n == 0 {
		return nil
	}
	if n == 1 {
		return []Vector{pts[0]}
	}
	out := make([]Vector, 0, (n-1)*catmullDetail+1)
	for i := 0; i < n-1; i++ {
		p0 := pts[max(i-1, 0)]
		p1 := pts[i]
		p2 := pts[i+1]
		p3 := pts[min(i+2, n-1)]
		if i == 0 {
			out = append(out, p1)
		}
		// Sample (0,1]; t=0 is the previous segment's end point.
		for s := 1; s <= catmullDetail; s++ {
			t := float64(s) / catmullDetail
			out = append(out, catmullPoint(p0, p1, p2, p3, t))
		}
	}
	return out
}

func catmullPoint(p0, p1, p2, p3 Vector, t float64) Vector {
	t2 := t * t
	t3 := t2 * t
	return Vector{
		X: 0.5 * ((2 * p1.X) + (-p0.X+p2.X)*t + (2*p0.X-5*p1.X+4*p2.X-p3.X)*t2 + (-p0.X+3*p1.X-3*p2.X+p3.X)*t3),
		Y: 0.5 * ((2 * p1.Y) + (-p0.Y+p2.Y)*t + (2*p0.Y-5*p1.Y+4*p2.Y-p3.Y)*t2 + (-p0.Y+3*p1.Y-3*p2.Y+p3.Y)*t3),
	}
}
