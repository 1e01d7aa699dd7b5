package termbackend

import "math"

// tessellateCubic flattens a cubic Bezier curve into a polyline using the
// Bernstein polynomial form. A fixed 20-segment subdivision is plenty at
// braille resolution; the result has 21 points including both endpoints.
func tessellateCubic(p0, p1, p2, p3 point) []point {
	const n = 20
	pts := make([]point, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / n
		mt := 1 - t
		x := mt*mt*mt*p0.x + 3*mt*mt*t*p1.x + 3*mt*t*t*p2.x + t*t*t*p3.x
		y := mt*mt*mt*p0.y + 3*mt*mt*t*p1.y + 3*mt*t*t*p2.y + t*t*t*p3.y
		pts = append(pts, point{x, y})
	}
	return pts
}

// vectorAngle returns the signed angle from vector u to vector v, the
// F.6.5.4 construction from SVG 1.1.
func vectorAngle(ux, uy, vx, vy float64) float64 {
	n := math.Sqrt((ux*ux + uy*uy) * (vx*vx + vy*vy))
	c := (ux*vx + uy*vy) / n
	c = math.Max(-1, math.Min(1, c))
	a := math.Acos(c)
	if ux*vy-uy*vx < 0 {
		return -a
	}
	return a
}

// tessellateArc flattens an SVG elliptical arc from p1 to p2 into a
// polyline, using the SVG 1.1 endpoint-to-center parameterization.
// Coincident endpoints or a zero radius degrade to a two-point straight
// line; too-small radii are scaled up uniformly to span the chord.
// All coordinates are scene space (translation already applied).
func tessellateArc(p1 point, rxIn, ryIn, xRotDeg float64, largeArc, sweep bool, p2 point) []point {
	if math.Abs(p1.x-p2.x) < 1e-10 && math.Abs(p1.y-p2.y) < 1e-10 {
		return []point{p1, p2}
	}
	if math.Abs(rxIn) < 1e-10 || math.Abs(ryIn) < 1e-10 {
		return []point{p1, p2}
	}

	phi := xRotDeg * math.Pi / 180
	cosPhi := math.Cos(phi)
	sinPhi := math.Sin(phi)

	// Half-chord midpoint in the rotated frame.
	dx := (p1.x - p2.x) / 2
	dy := (p1.y - p2.y) / 2
	x1p := cosPhi*dx + sinPhi*dy
	y1p := -sinPhi*dx + cosPhi*dy

	// Scale radii up if they cannot span the chord.
	rx := math.Abs(rxIn)
	ry := math.Abs(ryIn)
	lambda := (x1p/rx)*(x1p/rx) + (y1p/ry)*(y1p/ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	// Center in the rotated frame, sign chosen by the large-arc/sweep pair.
	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	var sq float64
	if den >= 1e-10 {
		sq = math.Sqrt(math.Max(num/den, 0))
	}
	if largeArc == sweep {
		sq = -sq
	}
	cxp := sq * rx * y1p / ry
	cyp := -sq * ry * x1p / rx

	// Center back in scene space.
	cx := cosPhi*cxp - sinPhi*cyp + (p1.x+p2.x)/2
	cy := sinPhi*cxp + cosPhi*cyp + (p1.y+p2.y)/2

	// Start angle and angular span.
	ux := (x1p - cxp) / rx
	uy := (y1p - cyp) / ry
	vx := (-x1p - cxp) / rx
	vy := (-y1p - cyp) / ry

	theta1 := vectorAngle(1, 0, ux, uy)
	dTheta := vectorAngle(ux, uy, vx, vy)
	if !sweep && dTheta > 0 {
		dTheta -= 2 * math.Pi
	} else if sweep && dTheta < 0 {
		dTheta += 2 * math.Pi
	}

	// ~1 segment per 5° of angular span is more than enough for braille
	// resolution.
	nSegs := max(int(math.Ceil(math.Abs(dTheta)/(5*math.Pi/180))), 2)
	pts := make([]point, 0, nSegs+1)
	for i := 0; i <= nSegs; i++ {
		t := float64(i) / float64(nSegs)
		theta := theta1 + t*dTheta
		x := cosPhi*rx*math.Cos(theta) - sinPhi*ry*math.Sin(theta) + cx
		y := sinPhi*rx*math.Cos(theta) + cosPhi*ry*math.Sin(theta) + cy
		pts = append(pts, point{x, y})
	}
	return pts
}
