package board

import "math"

// Path is a continuous polyline through world-space waypoints, sampled
// by arc-length distance from the start.
type Path struct {
	points  []Point
	lengths []float64 // cumulative length up to points[i]
	total   float64
}

// Point is a world-space position.
type Point struct {
	X float64
	Y float64
}

// NewPath builds a path through pts in order. Duplicate consecutive
// points contribute zero length and are kept, so sampling stays stable
// for degenerate inputs.
func NewPath(pts []Point) *Path {
	p := &Path{
		points:  append([]Point(nil), pts...),
		lengths: make([]float64, len(pts)),
	}
	for i := 1; i < len(p.points); i++ {
		dx := p.points[i].X - p.points[i-1].X
		dy := p.points[i].Y - p.points[i-1].Y
		p.total += math.Hypot(dx, dy)
		p.lengths[i] = p.total
	}
	return p
}

// Length returns the total arc length of the path.
func (p *Path) Length() float64 {
	if p == nil {
		return 0
	}
	return p.total
}

// End returns the final waypoint.
func (p *Path) End() Point {
	if p == nil || len(p.points) == 0 {
		return Point{}
	}
	return p.points[len(p.points)-1]
}

// PointAt returns the position at the given arc-length distance from
// the start. Distances outside [0, Length] clamp to the endpoints.
func (p *Path) PointAt(dist float64) Point {
	if p == nil || len(p.points) == 0 {
		return Point{}
	}
	if dist <= 0 || p.total == 0 {
		return p.points[0]
	}
	if dist >= p.total {
		return p.points[len(p.points)-1]
	}
	// find the segment containing dist
	i := 1
	for i < len(p.lengths) && p.lengths[i] < dist {
		i++
	}
	segStart := p.lengths[i-1]
	segLen := p.lengths[i] - segStart
	if segLen == 0 {
		return p.points[i]
	}
	t := (dist - segStart) / segLen
	a := p.points[i-1]
	b := p.points[i]
	return Point{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}
