package order_test

import (
	"testing"

	"github.com/calbers/startpage/internal/order"
)

func TestGesture_ClickBelowThreshold(t *testing.T) {
	g := order.NewGesture(2)

	g.Press("b1", order.Point{X: 10, Y: 5})
	g.Update(order.Point{X: 11, Y: 5})

	sourceID, dragged := g.Release(order.Point{X: 11, Y: 5})

	if sourceID != "b1" {
		t.Errorf("expected source b1, got %q", sourceID)
	}
	if dragged {
		t.Error("one-cell travel should be a click, not a drag")
	}
}

func TestGesture_ClickAtExactThreshold(t *testing.T) {
	g := order.NewGesture(2)

	g.Press("b1", order.Point{X: 10, Y: 5})
	g.Update(order.Point{X: 12, Y: 5})

	if g.Dragging() {
		t.Error("travel equal to the threshold should still be a click")
	}

	sourceID, dragged := g.Release(order.Point{X: 12, Y: 5})
	if sourceID != "b1" || dragged {
		t.Errorf("expected click release of b1, got %q dragged=%v", sourceID, dragged)
	}
}

func TestGesture_DragBeyondThreshold(t *testing.T) {
	g := order.NewGesture(2)

	g.Press("b1", order.Point{X: 10, Y: 5})
	g.Update(order.Point{X: 13, Y: 5})

	if !g.Dragging() {
		t.Error("expected drag once travel exceeds threshold")
	}

	sourceID, dragged := g.Release(order.Point{X: 13, Y: 5})
	if sourceID != "b1" || !dragged {
		t.Errorf("expected drag release of b1, got %q dragged=%v", sourceID, dragged)
	}
}

func TestGesture_DragStaysDragAfterReturningToOrigin(t *testing.T) {
	g := order.NewGesture(2)

	g.Press("b1", order.Point{X: 10, Y: 5})
	g.Update(order.Point{X: 20, Y: 5})
	g.Update(order.Point{X: 10, Y: 5})

	_, dragged := g.Release(order.Point{X: 10, Y: 5})
	if !dragged {
		t.Error("gesture that crossed the threshold should stay a drag")
	}
}

func TestGesture_SecondPressIgnoredWhileActive(t *testing.T) {
	g := order.NewGesture(2)

	g.Press("b1", order.Point{X: 0, Y: 0})
	g.Press("b2", order.Point{X: 50, Y: 0})

	if g.SourceID() != "b1" {
		t.Errorf("expected b1 to stay the source, got %q", g.SourceID())
	}
}

func TestGesture_ReleaseWithoutPress(t *testing.T) {
	g := order.NewGesture(2)

	sourceID, dragged := g.Release(order.Point{X: 0, Y: 0})
	if sourceID != "" || dragged {
		t.Errorf("expected no-op release, got %q dragged=%v", sourceID, dragged)
	}
}

func TestGesture_ResetsAfterRelease(t *testing.T) {
	g := order.NewGesture(2)

	g.Press("b1", order.Point{X: 0, Y: 0})
	g.Release(order.Point{X: 0, Y: 0})

	if g.Active() {
		t.Error("expected gesture inactive after release")
	}

	g.Press("b2", order.Point{X: 5, Y: 5})
	if g.SourceID() != "b2" {
		t.Errorf("expected fresh press to track b2, got %q", g.SourceID())
	}
	if g.Dragging() {
		t.Error("fresh press should not be dragging")
	}
}

func TestGesture_ZeroThresholdUsesDefault(t *testing.T) {
	g := order.NewGesture(0)

	g.Press("b1", order.Point{X: 0, Y: 0})
	g.Update(order.Point{X: 1, Y: 0})

	if g.Dragging() {
		t.Error("expected default threshold, one cell should not drag")
	}
}

func TestClosestTarget(t *testing.T) {
	targets := []order.Target{
		{ID: "b1", Bounds: order.Rect{X: 0, Y: 0, W: 20, H: 4}},   // center (10, 2)
		{ID: "b2", Bounds: order.Rect{X: 22, Y: 0, W: 20, H: 4}},  // center (32, 2)
		{ID: "b3", Bounds: order.Rect{X: 44, Y: 0, W: 20, H: 4}},  // center (54, 2)
	}

	tests := []struct {
		name  string
		point order.Point
		want  string
	}{
		{"on first center", order.Point{X: 10, Y: 2}, "b1"},
		{"near second", order.Point{X: 30, Y: 3}, "b2"},
		{"in gap between tiles", order.Point{X: 42, Y: 2}, "b2"},
		{"far right", order.Point{X: 70, Y: 2}, "b3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := order.ClosestTarget(targets, tt.point); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestClosestTarget_TieBreaksToEarlierTarget(t *testing.T) {
	targets := []order.Target{
		{ID: "b1", Bounds: order.Rect{X: 0, Y: 0, W: 20, H: 4}},  // center (10, 2)
		{ID: "b2", Bounds: order.Rect{X: 22, Y: 0, W: 20, H: 4}}, // center (32, 2)
	}

	// Equidistant from both centers.
	if got := order.ClosestTarget(targets, order.Point{X: 21, Y: 2}); got != "b1" {
		t.Errorf("expected tie to resolve to b1, got %s", got)
	}
}

func TestClosestTarget_Empty(t *testing.T) {
	if got := order.ClosestTarget(nil, order.Point{X: 0, Y: 0}); got != "" {
		t.Errorf("expected empty id, got %q", got)
	}
}

func TestRect_Contains(t *testing.T) {
	r := order.Rect{X: 2, Y: 3, W: 10, H: 4}

	if !r.Contains(order.Point{X: 2, Y: 3}) {
		t.Error("expected top-left corner inside")
	}
	if !r.Contains(order.Point{X: 11, Y: 6}) {
		t.Error("expected bottom-right cell inside")
	}
	if r.Contains(order.Point{X: 12, Y: 3}) {
		t.Error("expected right edge exclusive")
	}
	if r.Contains(order.Point{X: 2, Y: 7}) {
		t.Error("expected bottom edge exclusive")
	}
}
