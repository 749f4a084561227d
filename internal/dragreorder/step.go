package dragreorder

import "fmt"

// Step applies msg to state. Rejected messages return the state unchanged
// with an error. Drop and Cancel always return an Idle state.
func Step(state State, msg Msg) (State, Effect, error) {
	switch m := msg.(type) {
	case Start:
		return start(state, m)
	case Hover:
		return hover(state, m)
	case Drop:
		return drop(state)
	case Cancel:
		if state.Phase != Dragging {
			return state, Effect{}, ErrNotDragging
		}
		return State{}, Effect{Kind: EffectCancelled, From: state.Origin, To: state.Origin, Reason: m.Reason}, nil
	case nil:
		return state, Effect{}, fmt.Errorf("dragreorder: nil message")
	}
	panic(fmt.Sprintf("dragreorder: unhandled message %T", msg))
}

func start(state State, m Start) (State, Effect, error) {
	if state.Phase == Dragging {
		return state, Effect{}, ErrDragActive
	}
	if !m.Hit.Draggable() {
		return state, Effect{}, ErrInteractiveTarget
	}
	if m.Origin < 0 || m.Origin >= m.Count {
		return state, Effect{}, fmt.Errorf("%w: origin %d of %d", ErrOutOfRange, m.Origin, m.Count)
	}
	return State{Phase: Dragging, Origin: m.Origin, Hover: m.Origin, Count: m.Count}, Effect{}, nil
}

func hover(state State, m Hover) (State, Effect, error) {
	if state.Phase != Dragging {
		return state, Effect{}, ErrNotDragging
	}
	if m.Index < 0 || m.Index >= state.Count {
		return state, Effect{}, fmt.Errorf("%w: hover %d of %d", ErrOutOfRange, m.Index, state.Count)
	}
	state.Hover = m.Index
	state.Hovering = true
	return state, Effect{}, nil
}

func drop(state State) (State, Effect, error) {
	if state.Phase != Dragging {
		return state, Effect{}, ErrNotDragging
	}
	target := state.Target()
	if target == state.Origin {
		return State{}, Effect{Kind: EffectDropped, From: state.Origin, To: target}, nil
	}
	return State{}, Effect{Kind: EffectCommit, From: state.Origin, To: target}, nil
}
