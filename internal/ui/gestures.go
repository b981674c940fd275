package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/mobile"
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

// GestureHandler classifies raw touch events into gestures
type GestureHandler struct {
	onGesture func(GestureType)

	// Touch tracking
	touchStartTime time.Time
	touchStartPos  fyne.Position

	// Gesture thresholds
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

// TouchDown handles touch down events for gesture detection
func (gh *GestureHandler) TouchDown(event *mobile.TouchEvent) {
	gh.touchStartTime = time.Now()
	gh.touchStartPos = event.Position
}

// TouchUp handles touch up events for gesture detection
func (gh *GestureHandler) TouchUp(event *mobile.TouchEvent) {
	duration := time.Since(gh.touchStartTime)

	dx := event.Position.X - gh.touchStartPos.X
	dy := event.Position.Y - gh.touchStartPos.Y
	distance := abs(dx) + abs(dy)

	if duration < gh.longPressDuration && distance < gh.swipeThreshold {
		gh.trigger(GestureTap)
	} else if duration >= gh.longPressDuration && distance < gh.swipeThreshold {
		gh.trigger(GestureLongPress)
	} else if distance >= gh.swipeThreshold {
		gh.classifySwipe(dx, dy)
	}
}

// TouchCancel handles touch cancel events
func (gh *GestureHandler) TouchCancel(event *mobile.TouchEvent) {
	gh.touchStartTime = time.Time{}
}

// classifySwipe determines the direction of a swipe gesture
func (gh *GestureHandler) classifySwipe(dx, dy float32) {
	if abs(dx) > abs(dy) {
		if dx > 0 {
			gh.trigger(GestureSwipeRight)
		} else {
			gh.trigger(GestureSwipeLeft)
		}
		return
	}

	if dy > 0 {
		gh.trigger(GestureSwipeDown)
	} else {
		gh.trigger(GestureSwipeUp)
	}
}

// trigger invokes the gesture callback
func (gh *GestureHandler) trigger(gesture GestureType) {
	if gh.onGesture != nil {
		gh.onGesture(gesture)
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// SwipeableArea wraps content so touch gestures over it reach a handler.
// On non-touch drivers the wrapper is inert and just renders its content.
type SwipeableArea struct {
	*fyne.Container
	gestureHandler *GestureHandler
}

// NewSwipeableArea creates a gesture-aware wrapper around content
func NewSwipeableArea(content fyne.CanvasObject, onGesture func(GestureType)) *SwipeableArea {
	return &SwipeableArea{
		Container:      container.NewStack(content),
		gestureHandler: NewGestureHandler(onGesture),
	}
}

// TouchDown handles touch down events
func (sa *SwipeableArea) TouchDown(event *mobile.TouchEvent) {
	sa.gestureHandler.TouchDown(event)
}

// TouchUp handles touch up events
func (sa *SwipeableArea) TouchUp(event *mobile.TouchEvent) {
	sa.gestureHandler.TouchUp(event)
}

// TouchCancel handles touch cancel events
func (sa *SwipeableArea) TouchCancel(event *mobile.TouchEvent) {
	sa.gestureHandler.TouchCancel(event)
}
