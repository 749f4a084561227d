// Package dragreorder turns pointer drag gestures over a list of question
// cards into a single reorder commit.
package dragreorder

import "errors"

// Phase is the coarse state of a drag session.
type Phase int

const (
	Idle Phase = iota
	Dragging
)

// String returns a readable phase name.
func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Hit identifies the part of a card a gesture started on.
type Hit int

const (
	HitHandle Hit = iota
	HitSurface
	HitButton
	HitTextInput
	HitSelect
)

// Draggable reports whether a gesture starting on this target may begin a drag.
func (h Hit) Draggable() bool {
	switch h {
	case HitHandle, HitSurface:
		return true
	case HitButton, HitTextInput, HitSelect:
		return false
	default:
		return false
	}
}

// State is the coordinator state. Origin and Hover are only meaningful
// while Phase is Dragging.
type State struct {
	Phase    Phase
	Origin   int
	Hover    int
	Hovering bool
	Count    int
}

// Target returns the index a drop would commit to.
func (s State) Target() int {
	if s.Hovering {
		return s.Hover
	}
	return s.Origin
}

// Msg is an input to the coordinator.
type Msg interface {
	isMsg()
}

// Start begins a drag of the card at Origin in a list of Count cards.
type Start struct {
	Origin int
	Hit    Hit
	Count  int
}

// Hover moves the candidate drop position.
type Hover struct {
	Index int
}

// Drop ends the drag and commits the move.
type Drop struct{}

// Cancel ends the drag without committing.
type Cancel struct {
	Reason string
}

func (Start) isMsg()  {}
func (Hover) isMsg()  {}
func (Drop) isMsg()   {}
func (Cancel) isMsg() {}

// EffectKind describes what a step asks the host to do.
type EffectKind int

const (
	EffectNone EffectKind = iota
	// EffectCommit asks the host to move From to To.
	EffectCommit
	// EffectDropped reports a drop onto the origin; nothing moves.
	EffectDropped
	EffectCancelled
)

// Effect is the outcome of a terminating step.
type Effect struct {
	Kind   EffectKind
	From   int
	To     int
	Reason string
}

var (
	// ErrDragActive rejects a Start while another drag is in progress.
	ErrDragActive = errors.New("dragreorder: a drag is already active")
	// ErrNotDragging rejects Hover, Drop, and Cancel while idle.
	ErrNotDragging = errors.New("dragreorder: no active drag")
	// ErrInteractiveTarget rejects drags that start on buttons, inputs, or selects.
	ErrInteractiveTarget = errors.New("dragreorder: drag must start on the handle or card surface")
	// ErrOutOfRange rejects indices outside the card list.
	ErrOutOfRange = errors.New("dragreorder: index out of range")
)
