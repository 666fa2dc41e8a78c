package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureTap GestureType = iota
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
	GestureLongPress
)

// Gesture thresholds constants
const (
	DefaultSwipeThreshold    float32 = 50.0
	DefaultLongPressDuration         = 500 * time.Millisecond
)

// GestureHandler turns a pointer press/release pair into a gesture
type GestureHandler struct {
	onGesture func(GestureType)

	startTime time.Time
	startPos  fyne.Position
	active    bool

	swipeThreshold    float32
	longPressDuration time.Duration
}

// NewGestureHandler creates a new gesture handler
func NewGestureHandler(onGesture func(GestureType)) *GestureHandler {
	return &GestureHandler{
		onGesture:         onGesture,
		swipeThreshold:    DefaultSwipeThreshold,
		longPressDuration: DefaultLongPressDuration,
	}
}

// Begin records where and when a press started
func (gh *GestureHandler) Begin(pos fyne.Position) {
	gh.startTime = time.Now()
	gh.startPos = pos
	gh.active = true
}

// End classifies the gesture ending at pos and reports it
func (gh *GestureHandler) End(pos fyne.Position) {
	if !gh.active {
		return
	}
	gh.active = false

	gesture := gh.Classify(pos.X-gh.startPos.X, pos.Y-gh.startPos.Y, time.Since(gh.startTime))
	if gh.onGesture != nil {
		gh.onGesture(gesture)
	}
}

// Cancel drops the press in progress
func (gh *GestureHandler) Cancel() {
	gh.active = false
}

// Classify maps a movement of dx, dy over duration to a gesture. Movement
// shorter than the swipe threshold is a tap or a long press.
func (gh *GestureHandler) Classify(dx, dy float32, duration time.Duration) GestureType {
	if dx*dx+dy*dy < gh.swipeThreshold*gh.swipeThreshold {
		if duration >= gh.longPressDuration {
			return GestureLongPress
		}
		return GestureTap
	}

	absDx, absDy := dx, dy
	if absDx < 0 {
		absDx = -absDx
	}
	if absDy < 0 {
		absDy = -absDy
	}

	if absDx > absDy {
		if dx > 0 {
			return GestureSwipeRight
		}
		return GestureSwipeLeft
	}
	if dy > 0 {
		return GestureSwipeDown
	}
	return GestureSwipeUp
}

// SwipeArea wraps content and reports drags across it as gestures. Fyne
// delivers both mouse drags and touch moves as drag events.
type SwipeArea struct {
	widget.BaseWidget

	content  fyne.CanvasObject
	gestures *GestureHandler

	dragging bool
	lastPos  fyne.Position
}

var _ fyne.Draggable = (*SwipeArea)(nil)

// NewSwipeArea creates a swipe area around content
func NewSwipeArea(content fyne.CanvasObject, onGesture func(GestureType)) *SwipeArea {
	sa := &SwipeArea{
		content:  content,
		gestures: NewGestureHandler(onGesture),
	}
	sa.ExtendBaseWidget(sa)
	return sa
}

// CreateRenderer creates the widget renderer
func (sa *SwipeArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(sa.content)
}

// Dragged tracks the pointer while it moves
func (sa *SwipeArea) Dragged(ev *fyne.DragEvent) {
	if !sa.dragging {
		sa.dragging = true
		sa.gestures.Begin(ev.Position.Subtract(ev.Dragged))
	}
	sa.lastPos = ev.Position
}

// DragEnd reports the finished gesture
func (sa *SwipeArea) DragEnd() {
	if !sa.dragging {
		return
	}
	sa.dragging = false
	sa.gestures.End(sa.lastPos)
}
