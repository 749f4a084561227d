package dragreorder

// Reorderer receives the single commit of a completed drag.
type Reorderer interface {
	ReorderQuestions(dragIndex, dropIndex int) bool
}

// Feedback is the transient visual state of a drag.
type Feedback struct {
	Active bool
	Origin int
	Hover  int
}

// Coordinator runs one drag session at a time against a Reorderer.
type Coordinator struct {
	state    State
	target   Reorderer
	observer func(Feedback)
}

// NewCoordinator builds a coordinator that commits drops to target.
// observer, when non-nil, receives feedback after every accepted message.
func NewCoordinator(target Reorderer, observer func(Feedback)) *Coordinator {
	return &Coordinator{target: target, observer: observer}
}

// State returns the current coordinator state.
func (c *Coordinator) State() State {
	return c.state
}

// Active reports whether a drag is in progress.
func (c *Coordinator) Active() bool {
	return c.state.Phase == Dragging
}

// Feedback returns what a renderer should highlight.
func (c *Coordinator) Feedback() Feedback {
	if c.state.Phase != Dragging {
		return Feedback{}
	}
	return Feedback{Active: true, Origin: c.state.Origin, Hover: c.state.Target()}
}

// Begin starts a drag of the card at origin.
func (c *Coordinator) Begin(origin int, hit Hit, count int) error {
	_, err := c.Dispatch(Start{Origin: origin, Hit: hit, Count: count})
	return err
}

// HoverOver moves the candidate drop position. It never mutates the
// collection.
func (c *Coordinator) HoverOver(index int) error {
	_, err := c.Dispatch(Hover{Index: index})
	return err
}

// Drop ends the drag and commits at most one reorder.
func (c *Coordinator) Drop() (Effect, error) {
	return c.Dispatch(Drop{})
}

// Cancel ends the drag without committing.
func (c *Coordinator) Cancel(reason string) error {
	_, err := c.Dispatch(Cancel{Reason: reason})
	return err
}

// Dispatch applies msg and performs the resulting commit. Any step that
// leaves Dragging resets the coordinator to Idle, even if the commit
// panics.
func (c *Coordinator) Dispatch(msg Msg) (Effect, error) {
	next, effect, err := Step(c.state, msg)
	if err != nil {
		return Effect{}, err
	}
	if c.state.Phase == Dragging && next.Phase == Idle {
		defer c.reset()
	}
	c.state = next
	if effect.Kind == EffectCommit && c.target != nil {
		c.target.ReorderQuestions(effect.From, effect.To)
	}
	c.notify()
	return effect, nil
}

func (c *Coordinator) reset() {
	c.state = State{}
	c.notify()
}

func (c *Coordinator) notify() {
	if c.observer != nil {
		c.observer(c.Feedback())
	}
}
