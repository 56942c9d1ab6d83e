package curve

// Flattening tolerance: a Bezier span is emitted as a straight step once
// every second difference of its control net is below this (squared).
const bezierTolSq = 0.25 * 0.25

// flattenBezier flattens a Bezier control sequence, honouring the format
// convention that a consecutive duplicate control point ends one
// independent sub-curve and starts the next ("lift pen"). Each sub-curve
// has degree len(segment)-1.
func flattenBezier(control []Vector) []Vector {
	var out []Vector
	for _, seg := range splitAtDuplicates(control) {
		pts := flattenBezierSegment(seg)
		// Consecutive segments share their joint; emit it once.
		if len(out) > 0 && len(pts) > 0 && almostEq(out[len(out)-1], pts[0]) {
			pts = pts[1:]
		}
		out = append(out, pts...)
	}
	return out
}

// splitAtDuplicates cuts the control sequence into independent Bezier
// segments at consecutive duplicate points. Single-point remainders are
// dropped; they describe no curve.
func splitAtDuplicates(control []Vector) [][]Vector {
	var segs [][]Vector
	var cur []Vector
	for i, p := range control {
		if i > 0 && p == cur[len(cur)-1] {
			if len(cur) >= 2 {
				segs = append(segs, cur)
			}
			cur = []Vector{p}
			continue
		}
		cur = append(cur, p)
	}
	if len(cur) >= 2 {
		segs = append(segs, cur)
	}
	return segs
}

// flattenBezierSegment adaptively subdivides one Bezier curve with
// de Casteljau halving until every span is flat enough, then emits the
// span start points plus the final end point.
func flattenBezierSegment(cp []Vector) []Vector {
	if len(cp) == 0 {
		return nil
	}
	if len(cp) == 1 {
		return []Vector{cp[0]}
	}
	var out []Vector
	stack := make([][]Vector, 0, 32)
	stack = append(stack, cp)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if flatEnough(cur) {
			out = append(out, cur[0])
			continue
		}
		l, r := subdivide(cur)
		// Push right first so points come out in path order.
		stack = append(stack, r)
		stack = append(stack, l)
	}
	out = append(out, cp[len(cp)-1])
	return out
}

func flatEnough(cp []Vector) bool {
	for i := 1; i < len(cp)-1; i++ {
		dx := cp[i-1].X - 2*cp[i].X + cp[i+1].X
		dy := cp[i-1].Y - 2*cp[i].Y + cp[i+1].Y
		if dx*dx+dy*dy > bezierTolSq {
			return false
		}
	}
	return true
}

// subdivide halves a Bezier curve at t=0.5. The de Casteljau triangle is
// kept in one flat buffer; the left half is the first column, the right
// half the reversed diagonal.
func subdivide(cp []Vector) (left, right []Vector) {
	n := len(cp)
	buf := make([]Vector, n*(n+1)/2)
	copy(buf, cp)

	rowStart := 0
	nextRowStart := n
	for r := 1; r < n; r++ {
		for i := 0; i < n-r; i++ {
			a := buf[rowStart+i]
			b := buf[rowStart+i+1]
			buf[nextRowStart+i] = Vector{(a.X + b.X) * 0.5, (a.Y + b.Y) * 0.5}
		}
		rowStart = nextRowStart
		nextRowStart += n - r
	}

	left = make([]Vector, n)
	right = make([]Vector, n)
	rowStart = 0
	rowEnd := n - 1
	for r := 0; r < n; r++ {
		left[r] = buf[rowStart]
		right[n-1-r] = buf[rowStart+rowEnd]
		rowStart += n - r
		rowEnd--
	}
	return left, right
}
