package charts

// Point is a position in surface pixels.
type Point struct {
	X, Y float64
}

// SegmentKind distinguishes straight from curved path segments.
type SegmentKind int

const (
	LineSegment SegmentKind = iota
	QuadSegment
)

// Segment is one step of a path. Ctrl is only meaningful for QuadSegment.
type Segment struct {
	Kind SegmentKind
	Ctrl Point
	To   Point
}

// Path is an immutable open path: a start point followed by segments.
type Path struct {
	start    Point
	segments []Segment
	empty    bool
}

// Start returns the first point of the path.
func (p Path) Start() Point { return p.start }

// Empty reports whether the path has no start point.
func (p Path) Empty() bool { return p.empty }

// Len returns the number of segments after the start point.
func (p Path) Len() int { return len(p.segments) }

// Segments returns a copy of the path's segments.
func (p Path) Segments() []Segment {
	return append([]Segment(nil), p.segments...)
}

// Flatten approximates the path with straight lines, splitting every quadratic
// segment into n pieces. The result starts with Start.
func (p Path) Flatten(n int) []Point {
	if p.empty {
		return nil
	}
	n = max(n, 1)
	pts := []Point{p.start}
	cur := p.start
	for _, s := range p.segments {
		if s.Kind == LineSegment {
			pts = append(pts, s.To)
			cur = s.To
			continue
		}
		for k := 1; k <= n; k++ {
			t := float64(k) / float64(n)
			u := 1 - t
			pts = append(pts, Point{
				X: u*u*cur.X + 2*u*t*s.Ctrl.X + t*t*s.To.X,
				Y: u*u*cur.Y + 2*u*t*s.Ctrl.Y + t*t*s.To.Y,
			})
		}
		cur = s.To
	}
	return pts
}

// SampleBound selects which indices a series path visits.
type SampleBound int

const (
	// BoundSeriesCount visits indices 2 through seriesCount-1 of every series,
	// skipping index 1. This is the historical layout and the default.
	BoundSeriesCount SampleBound = iota
	// BoundSampleCount visits every sample of each series from index 1.
	BoundSampleCount
)

func (b SampleBound) String() string {
	switch b {
	case BoundSeriesCount:
		return "series"
	case BoundSampleCount:
		return "samples"
	default:
		return "unknown"
	}
}

// BuildPath turns samples into a path starting at (0, vStep*samples[0]).
// Points 2 through bound-1 follow, as straight lines or as quadratic curves
// whose control point sits just past the previous sample. Indices past the end
// of samples end the path early. Index 1 is never visited.
func BuildPath(samples []int, bound int, hStep, vStep float64, smooth bool) Path {
	return buildPath(samples, 2, min(bound, len(samples)), hStep, vStep, smooth)
}

// BuildSeriesPath builds the path for one series of a data set with
// seriesCount series under the given bound mode.
func BuildSeriesPath(samples []int, seriesCount int, mode SampleBound, hStep, vStep float64, smooth bool) Path {
	if mode == BoundSampleCount {
		return buildPath(samples, 1, len(samples), hStep, vStep, smooth)
	}
	return BuildPath(samples, seriesCount, hStep, vStep, smooth)
}

func buildPath(samples []int, first, end int, hStep, vStep float64, smooth bool) Path {
	if len(samples) == 0 {
		return Path{empty: true}
	}
	p := Path{start: Point{X: 0, Y: vStep * float64(samples[0])}}
	for i := first; i < end; i++ {
		to := Point{X: hStep * float64(i), Y: vStep * float64(samples[i])}
		if !smooth {
			p.segments = append(p.segments, Segment{Kind: LineSegment, To: to})
			continue
		}
		jitter := 1.0
		if i%3 == 0 {
			jitter = 4
		}
		p.segments = append(p.segments, Segment{
			Kind: QuadSegment,
			Ctrl: Point{X: hStep*float64(i-1) + jitter, Y: vStep*float64(samples[i-1]) + 2},
			To:   to,
		})
	}
	return p
}
