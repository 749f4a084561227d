package editor

import "github.com/charmbracelet/bubbles/key"

// keyMap lists every editor binding.
type keyMap struct {
	Up             key.Binding
	Down           key.Binding
	NextOption     key.Binding
	Toggle         key.Binding
	AddAfter       key.Binding
	Append         key.Binding
	Delete         key.Binding
	CycleType      key.Binding
	Scoring        key.Binding
	Disqualifier   key.Binding
	AddOption      key.Binding
	DeleteOption   key.Binding
	ScoreUp        key.Binding
	ScoreDown      key.Binding
	Select         key.Binding
	EditTitle      key.Binding
	EditOption     key.Binding
	EditAnswer     key.Binding
	Grab           key.Binding
	Drop           key.Binding
	Cancel         key.Binding
	ClearSelection key.Binding
	Help           key.Binding
	Quit           key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:             key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:           key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextOption:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next option")),
		Toggle:         key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "expand/collapse")),
		AddAfter:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add below")),
		Append:         key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "append")),
		Delete:         key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete question")),
		CycleType:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "cycle type")),
		Scoring:        key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "scoring")),
		Disqualifier:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "disqualifier")),
		AddOption:      key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "add option")),
		DeleteOption:   key.NewBinding(key.WithKeys("O"), key.WithHelp("O", "delete option")),
		ScoreUp:        key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "score up")),
		ScoreDown:      key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "score down")),
		Select:         key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "select option")),
		EditTitle:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit title")),
		EditOption:     key.NewBinding(key.WithKeys("E"), key.WithHelp("E", "edit option")),
		EditAnswer:     key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "write answer")),
		Grab:           key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "grab")),
		Drop:           key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "drop")),
		Cancel:         key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		ClearSelection: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "clear answers")),
		Help:           key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:           key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.AddAfter, k.Delete, k.Grab, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextOption, k.Toggle, k.Help, k.Quit},
		{k.AddAfter, k.Append, k.Delete, k.CycleType, k.Scoring, k.Disqualifier, k.EditTitle},
		{k.AddOption, k.DeleteOption, k.EditOption, k.ScoreUp, k.ScoreDown},
		{k.Select, k.EditAnswer, k.ClearSelection, k.Grab, k.Drop, k.Cancel},
	}
}

// dragKeys is the reduced help shown while a card is grabbed.
func (k keyMap) dragKeys() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Drop, k.Cancel}
}
