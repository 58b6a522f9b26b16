package svgpath

import (
	"math"
)

// This file implements the reduction of elliptical arcs and
// basic shapes to curve segments.

// maxDx is the maximum radians a cubic splice is allowed to span
// in ellipse parametric when approximating an off-axis ellipse.
const maxDx float64 = math.Pi / 8

// Cubics approximates the arc by a sequence of cubic bezier curves.
// A degenerated arc (zero radius) is returned as a single straight cubic,
// and an arc whose end points coincide is empty.
func (a Arc) Cubics() []CubicBezier {
	if a.From == a.To {
		return nil
	}
	rx, ry := math.Abs(a.Radius.X), math.Abs(a.Radius.Y)
	if rx == 0 || ry == 0 {
		return []CubicBezier{{From: a.From, Control1: a.From, Control2: a.To, To: a.To}}
	}
	rotX := a.Rotation * math.Pi / 180
	cx, cy := findEllipseCenter(&rx, &ry, rotX, a.From.X, a.From.Y, a.To.X, a.To.Y, !a.Sweep, !a.LargeArc)

	startAngle := math.Atan2(a.From.Y-cy, a.From.X-cx) - rotX
	endAngle := math.Atan2(a.To.Y-cy, a.To.X-cx) - rotX
	deltaTheta := endAngle - startAngle
	arcBig := math.Abs(deltaTheta) > math.Pi

	// Approximate ellipse using cubic bezier splines
	etaStart := math.Atan2(math.Sin(startAngle)/ry, math.Cos(startAngle)/rx)
	etaEnd := math.Atan2(math.Sin(endAngle)/ry, math.Cos(endAngle)/rx)
	deltaEta := etaEnd - etaStart
	if arcBig != a.LargeArc {
		if deltaEta < 0 {
			deltaEta += math.Pi * 2
		} else {
			deltaEta -= math.Pi * 2
		}
	}
	// needed when the center of the ellipse is
	// the midpoint of the start and end points.
	if deltaEta < 0 && a.Sweep {
		deltaEta += math.Pi * 2
	} else if deltaEta >= 0 && !a.Sweep {
		deltaEta -= math.Pi * 2
	}

	segs := int(math.Abs(deltaEta)/maxDx) + 1
	dEta := deltaEta / float64(segs) // span of each segment
	// L. Maisonobe, "Drawing an elliptical arc using polylines, quadratic
	// or cubic Bezier curves", 2003
	// https://www.spaceroots.org/documents/elllipse/elliptical-arc.pdf
	tde := math.Tan(dEta / 2)
	alpha := math.Sin(dEta) * (math.Sqrt(4+3*tde*tde) - 1) / 3
	lx, ly := a.From.X, a.From.Y
	sinTheta, cosTheta := math.Sin(rotX), math.Cos(rotX)
	ldx, ldy := ellipsePrime(rx, ry, sinTheta, cosTheta, etaStart)
	out := make([]CubicBezier, 0, segs)
	for i := 1; i <= segs; i++ {
		eta := etaStart + dEta*float64(i)
		var px, py float64
		if i == segs {
			px, py = a.To.X, a.To.Y // exact end point, no roundoff
		} else {
			px, py = ellipsePointAt(rx, ry, sinTheta, cosTheta, eta, cx, cy)
		}
		dx, dy := ellipsePrime(rx, ry, sinTheta, cosTheta, eta)
		out = append(out, CubicBezier{
			From:     Point{lx, ly},
			Control1: Point{lx + alpha*ldx, ly + alpha*ldy},
			Control2: Point{px - alpha*dx, py - alpha*dy},
			To:       Point{px, py},
		})
		lx, ly, ldx, ldy = px, py, dx, dy
	}
	return out
}

// ellipsePrime gives tangent vectors for parameterized elipse; a, b, radii, eta parameter
func ellipsePrime(a, b, sinTheta, cosTheta, eta float64) (px, py float64) {
	bCosEta := b * math.Cos(eta)
	aSinEta := a * math.Sin(eta)
	px = -aSinEta*cosTheta - bCosEta*sinTheta
	py = -aSinEta*sinTheta + bCosEta*cosTheta
	return
}

// ellipsePointAt gives points for parameterized elipse; a, b, radii, eta parameter, center cx, cy
func ellipsePointAt(a, b, sinTheta, cosTheta, eta, cx, cy float64) (px, py float64) {
	aCosEta := a * math.Cos(eta)
	bSinEta := b * math.Sin(eta)
	px = cx + aCosEta*cosTheta - bSinEta*sinTheta
	py = cy + aCosEta*sinTheta + bSinEta*cosTheta
	return
}

// findEllipseCenter locates the center of the Ellipse if it exists. If it does not exist,
// the radius values will be increased minimally for a solution to be possible
// while preserving the ra to rb ratio. ra and rb are updated in place.
// The problem is reduced to finding the center of a circle going through
// the origin and an arbitrary point, which is then transformed back.
func findEllipseCenter(ra, rb *float64, rotX, startX, startY, endX, endY float64, sweep, smallArc bool) (cx, cy float64) {
	cos, sin := math.Cos(rotX), math.Sin(rotX)

	// Move origin to start point
	nx, ny := endX-startX, endY-startY

	// Rotate ellipse x-axis to coordinate x-axis
	nx, ny = nx*cos+ny*sin, -nx*sin+ny*cos
	// Scale X dimension so that ra = rb
	nx *= *rb / *ra

	midX, midY := nx/2, ny/2
	midlenSq := midX*midX + midY*midY

	var hr float64
	if *rb**rb < midlenSq {
		// the requested ellipse is too small to span
		// both points: scale ra, rb to fit
		nrb := math.Sqrt(midlenSq)
		if *ra == *rb {
			*ra = nrb // prevents roundoff
		} else {
			*ra = *ra * nrb / *rb
		}
		*rb = nrb
	} else {
		hr = math.Sqrt(*rb**rb-midlenSq) / math.Sqrt(midlenSq)
	}
	// if hr is zero, both answers are the same.
	if sweep == smallArc {
		cx = midX + midY*hr
		cy = midY - midX*hr
	} else {
		cx = midX - midY*hr
		cy = midY + midX*hr
	}

	// reverse scale
	cx *= *ra / *rb
	// reverse rotate and translate back to original coordinates
	return cx*cos - cy*sin + startX, cx*sin + cy*cos + startY
}

// Rect returns the outline of a rectangle, with corners rounded
// by rx and ry when they are positive, as drawn by the <rect> element.
func Rect(x, y, w, h, rx, ry float64) Path {
	if w <= 0 || h <= 0 {
		return nil
	}
	// a single specified radius applies to both axis
	if rx <= 0 && ry > 0 {
		rx = ry
	} else if ry <= 0 && rx > 0 {
		ry = rx
	}
	rx, ry = math.Min(rx, w/2), math.Min(ry, h/2)
	if rx <= 0 || ry <= 0 {
		return Polygon([]Point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}})
	}
	radius := Point{rx, ry}
	pts := [8]Point{
		{x + rx, y}, {x + w - rx, y},
		{x + w, y + ry}, {x + w, y + h - ry},
		{x + w - rx, y + h}, {x + rx, y + h},
		{x, y + h - ry}, {x, y + ry},
	}
	var out Path
	for i := 0; i < 8; i += 2 {
		if pts[i] != pts[i+1] {
			out = append(out, Line{pts[i], pts[i+1]})
		}
		out = append(out, Arc{From: pts[i+1], Radius: radius, Sweep: true, To: pts[(i+2)%8]})
	}
	return out
}

// Ellipse returns the outline of an ellipse as two half arcs,
// starting at its leftmost point.
func Ellipse(cx, cy, rx, ry float64) Path {
	if rx <= 0 || ry <= 0 {
		return nil
	}
	left, right := Point{cx - rx, cy}, Point{cx + rx, cy}
	radius := Point{rx, ry}
	return Path{
		Arc{From: left, Radius: radius, LargeArc: true, To: right},
		Arc{From: right, Radius: radius, LargeArc: true, To: left},
	}
}

// Polyline joins the points with straight lines.
func Polyline(points []Point) Path {
	if len(points) < 2 {
		return nil
	}
	out := make(Path, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		out = append(out, Line{points[i-1], points[i]})
	}
	return out
}

// Polygon is a Polyline closed back to its first point.
func Polygon(points []Point) Path {
	out := Polyline(points)
	if len(out) > 0 && points[len(points)-1] != points[0] {
		out = append(out, Line{points[len(points)-1], points[0]})
	}
	return out
}
