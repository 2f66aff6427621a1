package overlay

import (
	"image"
	"testing"
)

func newTestSession() *Session {
	return NewSession(image.NewRGBA(image.Rect(0, 0, 4, 4)), "test", 10, DefaultLimits())
}

func TestNewSession_Defaults(t *testing.T) {
	s := newTestSession()
	if s.Scale() != 1.0 {
		t.Errorf("scale = %v, want 1.0", s.Scale())
	}
	if s.Radius() != 10 {
		t.Errorf("radius = %d, want 10", s.Radius())
	}
	if s.Offset() != (image.Point{}) {
		t.Errorf("offset = %v, want zero", s.Offset())
	}
	if s.Image().Generation != 1 {
		t.Errorf("generation = %d, want 1", s.Image().Generation)
	}
}

func TestNewSession_ClampsRadius(t *testing.T) {
	s := NewSession(image.NewRGBA(image.Rect(0, 0, 1, 1)), "test", 500, DefaultLimits())
	if s.Radius() != 100 {
		t.Errorf("radius = %d, want 100", s.Radius())
	}
}

func TestZoom_StaysWithinBounds(t *testing.T) {
	for _, dir := range []int{1, -1} {
		s := newTestSession()
		for i := 0; i < 500; i++ {
			s.Zoom(dir)
			if s.Scale() < 0.1 || s.Scale() > 10.0 {
				t.Fatalf("direction %d step %d: scale %v out of bounds", dir, i, s.Scale())
			}
		}
		want := 10.0
		if dir < 0 {
			want = 0.1
		}
		if s.Scale() != want {
			t.Errorf("direction %d: saturated scale = %v, want %v", dir, s.Scale(), want)
		}
	}
}

func TestZoom_Step(t *testing.T) {
	s := newTestSession()
	if !s.Zoom(1) {
		t.Fatal("Zoom(1) reported no change")
	}
	if got := s.Scale(); got < 1.0999 || got > 1.1001 {
		t.Errorf("scale after zoom in = %v, want 1.1", got)
	}
	s.Zoom(-1)
	if got := s.Scale(); got < 0.9999 || got > 1.0001 {
		t.Errorf("scale after zoom in+out = %v, want 1.0", got)
	}
	if s.Zoom(0) {
		t.Error("Zoom(0) should be a no-op")
	}
}

func TestZoom_AlternatingDirections(t *testing.T) {
	s := newTestSession()
	dirs := []int{1, 1, 1, -1, 1, -1, -1, -1, -1, -1, 1}
	for i := 0; i < 200; i++ {
		s.Zoom(dirs[i%len(dirs)] * (i%7 + 1))
		if s.Scale() < 0.1 || s.Scale() > 10.0 {
			t.Fatalf("step %d: scale %v out of bounds", i, s.Scale())
		}
	}
}

func TestAdjustRadius_Clamps(t *testing.T) {
	s := newTestSession()
	for i := 0; i < 300; i++ {
		s.AdjustRadius(1)
	}
	if s.Radius() != 100 {
		t.Errorf("radius = %d, want 100", s.Radius())
	}
	for i := 0; i < 300; i++ {
		s.AdjustRadius(-1)
	}
	if s.Radius() != 1 {
		t.Errorf("radius = %d, want 1", s.Radius())
	}
	if s.AdjustRadius(-1) {
		t.Error("AdjustRadius below minimum reported a change")
	}
}

func TestAdjustRadius_OnePerNotch(t *testing.T) {
	s := newTestSession()
	s.AdjustRadius(120) // raw wheel deltas count as one notch
	if s.Radius() != 11 {
		t.Errorf("radius = %d, want 11", s.Radius())
	}
}

func TestDrag_AccumulatesAcrossDrags(t *testing.T) {
	s := newTestSession()

	s.BeginDrag(image.Pt(100, 100))
	s.DragTo(image.Pt(110, 110))
	s.EndDrag()

	s.BeginDrag(image.Pt(300, 300))
	s.DragTo(image.Pt(305, 295))
	s.EndDrag()

	if got := s.Offset(); got != image.Pt(15, 5) {
		t.Errorf("offset = %v, want (15,5)", got)
	}
}

func TestDrag_FollowsPointerFromAnchor(t *testing.T) {
	s := newTestSession()
	s.BeginDrag(image.Pt(10, 10))
	s.DragTo(image.Pt(50, 50))
	s.DragTo(image.Pt(20, 30))
	if got := s.Offset(); got != image.Pt(10, 20) {
		t.Errorf("offset = %v, want (10,20)", got)
	}
}

func TestDragTo_IgnoredWhenNotDragging(t *testing.T) {
	s := newTestSession()
	if s.DragTo(image.Pt(50, 50)) {
		t.Error("DragTo without BeginDrag reported a change")
	}
	if s.Offset() != (image.Point{}) {
		t.Errorf("offset = %v, want zero", s.Offset())
	}
	s.BeginDrag(image.Pt(0, 0))
	s.EndDrag()
	s.DragTo(image.Pt(50, 50))
	if s.Offset() != (image.Point{}) {
		t.Errorf("offset after release = %v, want zero", s.Offset())
	}
}

func TestReplaceImage_BumpsGeneration(t *testing.T) {
	s := newTestSession()
	old := s.Image()
	s.ReplaceImage(image.NewRGBA(image.Rect(0, 0, 8, 2)), "clipboard")
	if s.Image().Generation != old.Generation+1 {
		t.Errorf("generation = %d, want %d", s.Image().Generation, old.Generation+1)
	}
	if s.Image().Size() != image.Pt(8, 2) {
		t.Errorf("size = %v, want (8,2)", s.Image().Size())
	}
	if old.Size() != image.Pt(4, 4) {
		t.Error("previous image value was mutated")
	}
}

func TestSetCursor(t *testing.T) {
	s := newTestSession()
	if !s.SetCursor(image.Pt(5, 5)) {
		t.Error("first SetCursor should report a change")
	}
	if s.SetCursor(image.Pt(5, 5)) {
		t.Error("repeated SetCursor should not report a change")
	}
}

func TestResetView(t *testing.T) {
	s := newTestSession()
	s.Zoom(1)
	s.BeginDrag(image.Point{})
	s.DragTo(image.Pt(9, 9))
	s.ResetView()
	if s.Scale() != 1.0 || s.Offset() != (image.Point{}) || s.Dragging() {
		t.Errorf("after reset: scale %v offset %v dragging %v", s.Scale(), s.Offset(), s.Dragging())
	}
}
