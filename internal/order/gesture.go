package order

// DefaultDragThreshold is the pointer travel (in cells) required
// before a press is interpreted as a drag rather than a click.
const DefaultDragThreshold = 2

// Point is a pointer position in cell coordinates.
type Point struct {
	X int
	Y int
}

// Rect is the bounding region of a rendered tile.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// Center returns the center point of the rect.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether the point lies inside the rect.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Target is a drop candidate: a list element and its bounding region.
type Target struct {
	ID     string
	Bounds Rect
}

// ClosestTarget resolves the drop target: the element whose bounding
// region's center is closest to the given center. Ties resolve to the
// earlier element so the result is deterministic. Returns "" for an
// empty candidate list.
func ClosestTarget(targets []Target, center Point) string {
	bestID := ""
	bestDist := -1
	for _, t := range targets {
		c := t.Bounds.Center()
		dx := c.X - center.X
		dy := c.Y - center.Y
		dist := dx*dx + dy*dy
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			bestID = t.ID
		}
	}
	return bestID
}

// Gesture tracks a single press-move-release sequence and decides
// whether it was a click or a drag. Only one gesture may be active at
// a time; a second press while one is active is ignored.
type Gesture struct {
	threshold int
	active    bool
	dragging  bool
	sourceID  string
	origin    Point
	current   Point
}

// NewGesture creates a gesture tracker with the given drag threshold.
// A threshold <= 0 falls back to DefaultDragThreshold.
func NewGesture(threshold int) Gesture {
	if threshold <= 0 {
		threshold = DefaultDragThreshold
	}
	return Gesture{threshold: threshold}
}

// Press starts tracking a gesture on the element with the given ID.
func (g *Gesture) Press(id string, at Point) {
	if g.active {
		return
	}
	g.active = true
	g.dragging = false
	g.sourceID = id
	g.origin = at
	g.current = at
}

// Update records pointer movement. Once the travel from the press
// origin exceeds the threshold the gesture becomes a drag and stays
// one until released.
func (g *Gesture) Update(to Point) {
	if !g.active {
		return
	}
	g.current = to
	if g.dragging {
		return
	}
	dx := to.X - g.origin.X
	dy := to.Y - g.origin.Y
	if dx*dx+dy*dy > g.threshold*g.threshold {
		g.dragging = true
	}
}

// Release ends the gesture. It returns the pressed element's ID and
// whether the gesture qualified as a drag; sub-threshold travel means
// a click on the element instead.
func (g *Gesture) Release(at Point) (sourceID string, dragged bool) {
	if !g.active {
		return "", false
	}
	g.Update(at)
	sourceID = g.sourceID
	dragged = g.dragging
	g.active = false
	g.dragging = false
	g.sourceID = ""
	return sourceID, dragged
}

// Active reports whether a gesture is in progress.
func (g *Gesture) Active() bool {
	return g.active
}

// Dragging reports whether the active gesture has crossed the drag
// threshold.
func (g *Gesture) Dragging() bool {
	return g.dragging
}

// SourceID returns the ID of the pressed element, or "" when idle.
func (g *Gesture) SourceID() string {
	return g.sourceID
}

// Current returns the latest pointer position of the active gesture.
func (g *Gesture) Current() Point {
	return g.current
}
