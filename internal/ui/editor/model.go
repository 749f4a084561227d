// Package editor is the terminal host for editing a screening collection.
// Every edit goes through the question store; drags go through the
// reorder coordinator.
package editor

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"prescreen/internal/dragreorder"
	"prescreen/internal/question"
	"prescreen/internal/store"
)

// Options configures the editor model.
type Options struct {
	NoColor bool
	// OnChange receives every committed collection. Its error is shown in
	// the status line.
	OnChange func(question.ScreeningData) error
}

type editTarget int

const (
	editNone editTarget = iota
	editTitle
	editOption
	editAnswer
)

// saveState is shared by value copies of the model.
type saveState struct {
	saves   int
	lastErr error
}

// Model renders and edits a screening collection.
type Model struct {
	store   *store.Store
	drag    *dragreorder.Coordinator
	keys    keyMap
	help    help.Model
	input   textinput.Model
	editing editTarget
	cursor  int
	option  int
	status  string
	saved   *saveState
	noColor bool
	width   int
}

// New builds an editor over st. The store is shared, not copied.
func New(st *store.Store, opts Options) Model {
	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 280

	saved := &saveState{}
	if opts.OnChange != nil {
		onChange := opts.OnChange
		st.Subscribe(func(data question.ScreeningData) {
			saved.lastErr = onChange(data)
			if saved.lastErr == nil {
				saved.saves++
			}
		})
	}
	h := help.New()
	return Model{
		store:   st,
		drag:    dragreorder.NewCoordinator(st, nil),
		keys:    defaultKeyMap(),
		help:    h,
		input:   input,
		saved:   saved,
		noColor: opts.NoColor,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.help.Width = typed.Width
		return m, nil
	case tea.MouseMsg:
		return m.updateMouse(typed), nil
	case tea.KeyMsg:
		if m.editing != editNone {
			return m.updateInput(typed)
		}
		if m.drag.Active() {
			return m.updateDrag(typed)
		}
		return m.updateKey(typed)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	q, ok := m.store.QuestionAt(m.cursor)
	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(m.cursor - 1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(m.cursor + 1)
	case key.Matches(msg, m.keys.Append):
		if m.store.Apply(store.AddQuestion{}) {
			m.moveCursor(m.store.Len() - 1)
		}
	case !ok:
		return m, nil
	case key.Matches(msg, m.keys.NextOption):
		if len(q.Options) > 0 {
			m.option = (m.option + 1) % len(q.Options)
		}
	case key.Matches(msg, m.keys.Toggle):
		m.store.Apply(store.ToggleOpen{ID: q.ID})
	case key.Matches(msg, m.keys.AddAfter):
		if m.store.Apply(store.AddQuestion{AfterID: q.ID}) {
			m.moveCursor(m.cursor + 1)
		}
	case key.Matches(msg, m.keys.Delete):
		if !m.store.Apply(store.DeleteQuestion{ID: q.ID}) {
			m.status = "a screening needs at least one question"
		}
		m.moveCursor(m.cursor)
	case key.Matches(msg, m.keys.CycleType):
		m.store.Apply(store.ChangeQuestionType{ID: q.ID, Type: nextType(q.Type)})
		m.option = 0
	case key.Matches(msg, m.keys.Scoring):
		enabled := !q.EnableScoring
		m.store.Apply(store.UpdateQuestion{ID: q.ID, Patch: store.QuestionPatch{EnableScoring: &enabled}})
	case key.Matches(msg, m.keys.Disqualifier):
		disqualifier := !q.Disqualifier
		m.store.Apply(store.UpdateQuestion{ID: q.ID, Patch: store.QuestionPatch{Disqualifier: &disqualifier}})
	case key.Matches(msg, m.keys.AddOption):
		if m.store.Apply(store.AddOption{QuestionID: q.ID}) {
			m.option = len(q.Options)
		}
	case key.Matches(msg, m.keys.DeleteOption):
		if opt, ok := focusedOption(q, m.option); ok {
			if !m.store.Apply(store.DeleteOption{QuestionID: q.ID, OptionID: opt.ID}) {
				m.status = "a choice question needs at least one option"
			}
			m.clampOption()
		}
	case key.Matches(msg, m.keys.ScoreUp), key.Matches(msg, m.keys.ScoreDown):
		if opt, ok := focusedOption(q, m.option); ok {
			score := opt.Score + 1
			if key.Matches(msg, m.keys.ScoreDown) {
				score = opt.Score - 1
			}
			m.store.Apply(store.UpdateOption{QuestionID: q.ID, OptionID: opt.ID, Patch: store.OptionPatch{Score: &score}})
		}
	case key.Matches(msg, m.keys.Select):
		index := int(msg.Runes[0] - '1')
		if opt, ok := focusedOption(q, index); ok {
			m.store.Apply(store.SelectOption{QuestionID: q.ID, OptionID: opt.ID})
			m.option = index
		}
	case key.Matches(msg, m.keys.ClearSelection):
		m.store.Apply(store.ClearSelections{})
	case key.Matches(msg, m.keys.EditTitle):
		return m.startEdit(editTitle, q.Title)
	case key.Matches(msg, m.keys.EditOption):
		if opt, ok := focusedOption(q, m.option); ok {
			return m.startEdit(editOption, opt.Text)
		}
	case key.Matches(msg, m.keys.EditAnswer):
		if q.Type == question.FreeText {
			return m.startEdit(editAnswer, q.Answer)
		}
		m.status = "only free-text questions take a written answer"
	case key.Matches(msg, m.keys.Grab):
		if err := m.drag.Begin(m.cursor, dragreorder.HitHandle, m.store.Len()); err != nil {
			m.status = err.Error()
		}
	}
	return m, nil
}

func (m Model) updateDrag(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	target := m.drag.Feedback().Hover
	switch {
	case key.Matches(msg, m.keys.Quit):
		_ = m.drag.Cancel("quit")
		return m, tea.Quit
	case key.Matches(msg, m.keys.Grab):
		if err := m.drag.Begin(m.cursor, dragreorder.HitHandle, m.store.Len()); err != nil {
			m.status = err.Error()
		}
	case key.Matches(msg, m.keys.Up):
		m.hover(target - 1)
	case key.Matches(msg, m.keys.Down):
		m.hover(target + 1)
	case key.Matches(msg, m.keys.Drop):
		effect, err := m.drag.Drop()
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.cursor = effect.To
		if effect.Kind == dragreorder.EffectCommit {
			m.status = fmt.Sprintf("moved question %d to position %d", effect.From+1, effect.To+1)
		}
	case key.Matches(msg, m.keys.Cancel):
		_ = m.drag.Cancel("escape")
		m.status = "move cancelled"
	}
	return m, nil
}

func (m *Model) hover(index int) {
	if index < 0 || index >= m.store.Len() {
		return
	}
	if err := m.drag.HoverOver(index); err != nil {
		m.status = err.Error()
	}
}

func (m Model) startEdit(target editTarget, value string) (tea.Model, tea.Cmd) {
	m.editing = target
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.commitInput()
		m.editing = editNone
		m.input.Blur()
		return m, nil
	case tea.KeyEsc:
		m.editing = editNone
		m.input.Blur()
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) commitInput() {
	q, ok := m.store.QuestionAt(m.cursor)
	if !ok {
		return
	}
	value := m.input.Value()
	switch m.editing {
	case editTitle:
		m.store.Apply(store.UpdateQuestion{ID: q.ID, Patch: store.QuestionPatch{Title: &value}})
	case editOption:
		if opt, ok := focusedOption(q, m.option); ok {
			m.store.Apply(store.UpdateOption{QuestionID: q.ID, OptionID: opt.ID, Patch: store.OptionPatch{Text: &value}})
		}
	case editAnswer:
		m.store.Apply(store.SetAnswer{QuestionID: q.ID, Text: value})
	}
}

func (m *Model) moveCursor(index int) {
	if last := m.store.Len() - 1; index > last {
		index = last
	}
	if index < 0 {
		index = 0
	}
	if index != m.cursor {
		m.option = 0
	}
	m.cursor = index
	m.clampOption()
}

func (m *Model) clampOption() {
	q, ok := m.store.QuestionAt(m.cursor)
	if !ok || len(q.Options) == 0 {
		m.option = 0
		return
	}
	if m.option >= len(q.Options) {
		m.option = len(q.Options) - 1
	}
}

func focusedOption(q question.Question, index int) (question.Option, bool) {
	if index < 0 || index >= len(q.Options) {
		return question.Option{}, false
	}
	return q.Options[index], true
}

// nextType cycles single → multiple → free text. Unknown types restart at
// single choice.
func nextType(t question.Type) question.Type {
	switch t {
	case question.SingleChoice:
		return question.MultipleChoice
	case question.MultipleChoice:
		return question.FreeText
	default:
		return question.SingleChoice
	}
}

// Cursor returns the index of the focused question.
func (m Model) Cursor() int {
	return m.cursor
}

// Status returns the last status message.
func (m Model) Status() string {
	return m.status
}

// Dragging reports whether a card is currently grabbed.
func (m Model) Dragging() bool {
	return m.drag.Active()
}

// Editing reports whether the text input is open.
func (m Model) Editing() bool {
	return m.editing != editNone
}
