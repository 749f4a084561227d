package editor

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"prescreen/internal/dragreorder"
	"prescreen/internal/store"
)

func (m Model) updateMouse(msg tea.MouseMsg) Model {
	if m.editing != editNone {
		return m
	}
	data := m.store.Snapshot()
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m
		}
		index, hit, row, ok := hitAt(data, msg.X, msg.Y)
		if !ok {
			return m
		}
		err := m.drag.Begin(index, hit, len(data.Questions))
		if errors.Is(err, dragreorder.ErrDragActive) {
			m.status = err.Error()
			return m
		}
		m.moveCursor(index)
		if errors.Is(err, dragreorder.ErrInteractiveTarget) && hit == dragreorder.HitButton {
			q := data.Questions[index]
			if opt, ok := focusedOption(q, row); ok {
				m.store.Apply(store.SelectOption{QuestionID: q.ID, OptionID: opt.ID})
				m.option = row
			}
		}
	case tea.MouseActionMotion:
		if !m.drag.Active() {
			return m
		}
		if index, ok := nearestCard(data, msg.Y); ok {
			m.hover(index)
		}
	case tea.MouseActionRelease:
		if !m.drag.Active() {
			return m
		}
		effect, err := m.drag.Drop()
		if err == nil {
			m.cursor = effect.To
		}
	}
	return m
}
