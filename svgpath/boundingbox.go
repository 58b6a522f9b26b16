package svgpath

import (
	"math"
)

// compute the bounding box of a path, needed to size the
// canvas a path is written or rendered onto

// Bounds is an axis aligned rectangle.
type Bounds struct{ X, Y, W, H float64 }

// union returns the smallest Bounds containing b and o
func (b Bounds) union(o Bounds) Bounds {
	minX, minY := math.Min(b.X, o.X), math.Min(b.Y, o.Y)
	maxX, maxY := math.Max(b.X+b.W, o.X+o.W), math.Max(b.Y+b.H, o.Y+o.H)
	return Bounds{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Bounds returns the bounding box of the path.
// An empty path has empty (zero) bounds.
func (p Path) Bounds() Bounds {
	var (
		out   Bounds
		found bool
	)
	for _, seg := range p {
		for _, curve := range curvesOf(seg) {
			b := computeBoundingBox(curve)
			if !found {
				out, found = b, true
			} else {
				out = out.union(b)
			}
		}
	}
	return out
}

// UnionBounds returns the bounding box of all the paths.
func UnionBounds(paths ...Path) Bounds {
	return Concat(paths...).Bounds()
}

func curvesOf(seg Segment) []bezier {
	switch seg := seg.(type) {
	case Line:
		return []bezier{line{seg.From, seg.To}}
	case QuadBezier:
		return []bezier{quadBezier{seg.From, seg.Control, seg.To}}
	case CubicBezier:
		return []bezier{cubicBezier{seg.From, seg.Control1, seg.Control2, seg.To}}
	case Arc:
		cubics := seg.Cubics()
		out := make([]bezier, len(cubics))
		for i, c := range cubics {
			out[i] = cubicBezier{c.From, c.Control1, c.Control2, c.To}
		}
		return out
	}
	return nil
}

type line [2]Point

func (l line) criticalPoints() (tX, tY []float64) {
	return nil, nil
}

func (l line) evaluateCurve(t float64) (x, y float64) {
	return bezierLine(l[0].X, l[1].X, t), bezierLine(l[0].Y, l[1].Y, t)
}

func bezierLine(p0, p1, t float64) float64 {
	return (p1-p0)*t + p0
}

type quadBezier [3]Point

// quadratic polinomial
// x = At^2 + Bt + C
// where
// A = p0 + p2 - 2p1
// B = 2(p1 - p0)
// C = p0
func bezierQuad(p0, p1, p2, t float64) float64 {
	return (p0+p2-2*p1)*t*t + 2*(p1-p0)*t + p0
}

// derivative as at + b where a,b :
func quadraticDerivative(p0, p1, p2 float64) (a, b float64) {
	return 2 * (p2 - p1 - (p1 - p0)), 2 * (p1 - p0)
}

// handle the case where a = 0
func linearRoots(a, b float64) []float64 {
	if a == 0 {
		return nil
	}
	return []float64{-b / a}
}

func (cu quadBezier) criticalPoints() (tX, tY []float64) {
	aX, bX := quadraticDerivative(cu[0].X, cu[1].X, cu[2].X)
	aY, bY := quadraticDerivative(cu[0].Y, cu[1].Y, cu[2].Y)
	return linearRoots(aX, bX), linearRoots(aY, bY)
}

func (cu quadBezier) evaluateCurve(t float64) (x, y float64) {
	return bezierQuad(cu[0].X, cu[1].X, cu[2].X, t), bezierQuad(cu[0].Y, cu[1].Y, cu[2].Y, t)
}

type cubicBezier [4]Point

func (cu cubicBezier) criticalPoints() (tX, tY []float64) {
	aX, bX, cX := cubicDerivative(cu[0].X, cu[1].X, cu[2].X, cu[3].X)
	aY, bY, cY := cubicDerivative(cu[0].Y, cu[1].Y, cu[2].Y, cu[3].Y)
	return quadraticRoots(aX, bX, cX), quadraticRoots(aY, bY, cY)
}

func (cu cubicBezier) evaluateCurve(t float64) (x, y float64) {
	return bezierSpline(cu[0].X, cu[1].X, cu[2].X, cu[3].X, t),
		bezierSpline(cu[0].Y, cu[1].Y, cu[2].Y, cu[3].Y, t)
}

// cubic polinomial
// x = At^3 + Bt^2 + Ct + D
// where A,B,C,D:
// A = p3 -3 * p2 + 3 * p1 - p0
// B = 3 * p2 - 6 * p1 +3 * p0
// C = 3 * p1 - 3 * p0
// D = p0
func bezierSpline(p0, p1, p2, p3, t float64) float64 {
	return (p3-3*p2+3*p1-p0)*t*t*t +
		(3*p2-6*p1+3*p0)*t*t +
		(3*p1-3*p0)*t +
		(p0)
}

// X' = (3*p3-9*p2+9*p1-3*p0)t^2 + (6*p2-12*p1+6*p0)t + (3*p1-3*p0)
// taken as aX^2 + bX + c
func cubicDerivative(p0, p1, p2, p3 float64) (a, b, c float64) {
	return 3*p3 - 9*p2 + 9*p1 - 3*p0, 6*p2 - 12*p1 + 6*p0, 3*p1 - 3*p0
}

// b^2 - 4ac
func determinant(a, b, c float64) float64 { return b*b - 4*a*c }

func solve(a, b, c float64, positive bool) float64 {
	sign := 1.
	if !positive {
		sign = -1.
	}
	return (-b + math.Sqrt(determinant(a, b, c))*sign) / (2 * a)
}

func quadraticRoots(a, b, c float64) []float64 {
	if a == 0 {
		// bX + c: a line
		return linearRoots(b, c)
	}
	d := determinant(a, b, c)
	if d < 0 {
		return nil
	}
	if d == 0 {
		return []float64{solve(a, b, c, true)}
	}
	return []float64{solve(a, b, c, true), solve(a, b, c, false)}
}

type bezier interface {
	// compute the t zeroing the derivative
	criticalPoints() (tX, tY []float64)
	// compute the point a time t
	evaluateCurve(t float64) (x, y float64)
}

func computeBoundingBox(curve bezier) Bounds {
	resX, resY := curve.criticalPoints()

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	// the end points are always candidates
	for _, t := range append(append(resX, 0, 1), resY...) {
		if !(0 <= t && t <= 1) {
			continue
		}
		x, y := curve.evaluateCurve(t)
		minX, minY = math.Min(x, minX), math.Min(y, minY)
		maxX, maxY = math.Max(x, maxX), math.Max(y, maxY)
	}
	return Bounds{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
