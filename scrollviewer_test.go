package panels

import (
	"testing"
)

func TestScrollViewer_Overflow(t *testing.T) {
	content := newFixed(50, 30)
	s := NewScrollViewer(content)
	h := mustHost(t, s)
	h.Layout(NewSize(20, 10))

	if got := s.ExtentSize(); got != NewSize(50, 30) {
		t.Errorf("ExtentSize() = %v, want (50,30)", got)
	}
	if got := s.ViewportSize(); got != NewSize(19, 9) {
		t.Errorf("ViewportSize() = %v, want (19,9)", got)
	}
	if got := s.ScrollableSize(); got != NewSize(31, 21) {
		t.Errorf("ScrollableSize() = %v, want (31,21)", got)
	}
	if !s.HorizontalBar().Active() || !s.VerticalBar().Active() {
		t.Fatal("both scroll bars should be active")
	}
	if got := s.HorizontalBar().Bounds(); got != NewRect(0, 9, 19, 1) {
		t.Errorf("horizontal bar Bounds() = %v, want (0,9,19,1)", got)
	}
	if got := s.VerticalBar().ThumbRect(); !rectNear(got, NewRect(19, 0, 1, 2.7)) {
		t.Errorf("vertical ThumbRect() = %v, want (19,0,1,2.7)", got)
	}

	s.ScrollTo(5, 100)
	if got := s.Offset(); got != (Point{X: 5, Y: 21}) {
		t.Errorf("Offset() = %v, want (5,21)", got)
	}
	if !h.Layout(NewSize(20, 10)) {
		t.Fatal("Layout() after ScrollTo = false, want true")
	}
	if got := content.Bounds(); got != NewRect(-5, -21, 50, 30) {
		t.Errorf("content.Bounds() = %v, want (-5,-21,50,30)", got)
	}
	if got := s.VerticalBar().ThumbRect(); !rectNear(got, NewRect(19, 6.3, 1, 2.7)) {
		t.Errorf("vertical ThumbRect() = %v, want (19,6.3,1,2.7)", got)
	}
	if content.measures != 1 {
		t.Errorf("content.measures = %d, want 1", content.measures)
	}
	if h.Layout(NewSize(20, 10)) {
		t.Error("repeated Layout() = true, want false")
	}
}

func TestScrollViewer_NoOverflow(t *testing.T) {
	s := NewScrollViewer(newFixed(10, 5))
	mustHost(t, s).Layout(NewSize(20, 10))

	if s.HorizontalBar().Active() || s.VerticalBar().Active() {
		t.Error("no scroll bar should be active")
	}
	if got := s.ViewportSize(); got != NewSize(20, 10) {
		t.Errorf("ViewportSize() = %v, want (20,10)", got)
	}
	if got := s.ScrollableSize(); got != (Size{}) {
		t.Errorf("ScrollableSize() = %v, want (0,0)", got)
	}
}

func TestScrollViewer_Visibility(t *testing.T) {
	type tc struct {
		horizontal, vertical ScrollBarVisibility
		showH, showV         bool
		extent               Size
	}

	tests := map[string]tc{
		"always visible": {
			horizontal: ScrollBarVisible,
			vertical:   ScrollBarVisible,
			showH:      true,
			showV:      true,
			extent:     NewSize(10, 5),
		},
		"hidden still scrolls": {
			horizontal: ScrollBarHidden,
			vertical:   ScrollBarHidden,
			extent:     NewSize(50, 30),
		},
		"disabled constrains content": {
			horizontal: ScrollBarDisabled,
			vertical:   ScrollBarAuto,
			showV:      true,
			extent:     NewSize(19, 30),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			size := NewSize(50, 30)
			if tt.horizontal == ScrollBarVisible {
				size = NewSize(10, 5)
			}
			s := NewScrollViewer(newFixed(size.Width, size.Height))
			s.SetHorizontalScrollBarVisibility(tt.horizontal)
			s.SetVerticalScrollBarVisibility(tt.vertical)
			mustHost(t, s).Layout(NewSize(20, 10))

			if got := s.HorizontalBar().Active(); got != tt.showH {
				t.Errorf("horizontal Active() = %v, want %v", got, tt.showH)
			}
			if got := s.VerticalBar().Active(); got != tt.showV {
				t.Errorf("vertical Active() = %v, want %v", got, tt.showV)
			}
			if got := s.ExtentSize(); got != tt.extent {
				t.Errorf("ExtentSize() = %v, want %v", got, tt.extent)
			}
		})
	}
}

func TestScrollViewer_ScrollToBottomBeforeLayout(t *testing.T) {
	s := NewScrollViewer(newFixed(50, 30))
	s.ScrollToBottom()
	mustHost(t, s).Layout(NewSize(20, 10))

	if got := s.Offset().Y; got != 21 {
		t.Errorf("Offset().Y = %v, want 21", got)
	}
	s.ScrollToTop()
	if got := s.Offset().Y; got != 0 {
		t.Errorf("Offset().Y after ScrollToTop = %v, want 0", got)
	}
}

func TestScrollViewer_OffsetClampedWhenContentShrinks(t *testing.T) {
	content := newFixed(50, 30)
	s := NewScrollViewer(content)
	h := mustHost(t, s)
	h.Layout(NewSize(20, 10))
	s.ScrollBy(0, 15)

	content.size = NewSize(50, 12)
	content.InvalidateMeasure()
	h.Layout(NewSize(20, 10))

	if got := s.Offset().Y; got != 3 {
		t.Errorf("Offset().Y = %v, want 3", got)
	}
}

func TestScrollViewer_ScrollIntoView(t *testing.T) {
	var items []Element
	for i := 0; i < 10; i++ {
		items = append(items, newFixed(5, 2))
	}
	s := NewScrollViewer(NewStackPanel(items...))
	h := mustHost(t, s)
	h.Layout(NewSize(10, 5))

	s.ScrollIntoView(items[6])
	if got := s.Offset().Y; got != 9 {
		t.Fatalf("Offset().Y = %v, want 9", got)
	}
	h.Layout(NewSize(10, 5))
	if got := items[6].Bounds().Y; got != 3 {
		t.Errorf("items[6].Bounds().Y = %v, want 3", got)
	}

	s.ScrollIntoView(items[1])
	if got := s.Offset().Y; got != 2 {
		t.Errorf("Offset().Y = %v, want 2", got)
	}

	s.ScrollIntoView(newFixed(1, 1))
	if got := s.Offset().Y; got != 2 {
		t.Errorf("Offset().Y after foreign element = %v, want 2", got)
	}
}

func TestThumbGeometry(t *testing.T) {
	type tc struct {
		track, extent, viewport, value, minThumb float64
		length, offset                           float64
	}

	tests := map[string]tc{
		"content fits":        {track: 10, extent: 5, viewport: 10, length: 10},
		"proportional":        {track: 10, extent: 40, viewport: 10, value: 15, minThumb: 1, length: 2.5, offset: 3.75},
		"minimum length":      {track: 10, extent: 1000, viewport: 10, value: 990, minThumb: 2, length: 2, offset: 8},
		"value clamped":       {track: 10, extent: 40, viewport: 10, value: 100, minThumb: 1, length: 2.5, offset: 7.5},
		"empty track":         {track: 0, extent: 40, viewport: 10},
		"min above the track": {track: 3, extent: 40, viewport: 10, minThumb: 5, length: 3},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			length, offset := ThumbGeometry(tt.track, tt.extent, tt.viewport, tt.value, tt.minThumb)
			if !near(length, tt.length) || !near(offset, tt.offset) {
				t.Errorf("ThumbGeometry() = (%v, %v), want (%v, %v)", length, offset, tt.length, tt.offset)
			}
		})
	}
}
