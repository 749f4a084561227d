package store

import (
	"fmt"

	"prescreen/internal/question"
)

// Action is a message a host sends to the Store instead of calling a
// method directly.
type Action interface {
	isAction()
}

type (
	AddQuestion struct {
		AfterID string
	}
	DeleteQuestion struct {
		ID string
	}
	ChangeQuestionType struct {
		ID   string
		Type question.Type
	}
	UpdateQuestion struct {
		ID    string
		Patch QuestionPatch
	}
	ToggleOpen struct {
		ID string
	}
	AddOption struct {
		QuestionID string
	}
	DeleteOption struct {
		QuestionID string
		OptionID   string
	}
	UpdateOption struct {
		QuestionID string
		OptionID   string
		Patch      OptionPatch
	}
	SelectOption struct {
		QuestionID string
		OptionID   string
	}
	SetAnswer struct {
		QuestionID string
		Text       string
	}
	ReorderQuestions struct {
		DragIndex int
		DropIndex int
	}
	SetGreeting struct {
		Greeting question.GreetingMessage
	}
	ClearSelections struct{}
)

func (AddQuestion) isAction()        {}
func (DeleteQuestion) isAction()     {}
func (ChangeQuestionType) isAction() {}
func (UpdateQuestion) isAction()     {}
func (ToggleOpen) isAction()         {}
func (AddOption) isAction()          {}
func (DeleteOption) isAction()       {}
func (UpdateOption) isAction()       {}
func (SelectOption) isAction()       {}
func (SetAnswer) isAction()          {}
func (ReorderQuestions) isAction()   {}
func (SetGreeting) isAction()        {}
func (ClearSelections) isAction()    {}

// Apply dispatches an action to the matching operation.
func (s *Store) Apply(action Action) bool {
	switch a := action.(type) {
	case AddQuestion:
		_, ok := s.AddQuestion(a.AfterID)
		return ok
	case DeleteQuestion:
		return s.DeleteQuestion(a.ID)
	case ChangeQuestionType:
		return s.ChangeQuestionType(a.ID, a.Type)
	case UpdateQuestion:
		return s.UpdateQuestion(a.ID, a.Patch)
	case ToggleOpen:
		return s.ToggleOpen(a.ID)
	case AddOption:
		_, ok := s.AddOption(a.QuestionID)
		return ok
	case DeleteOption:
		return s.DeleteOption(a.QuestionID, a.OptionID)
	case UpdateOption:
		return s.UpdateOption(a.QuestionID, a.OptionID, a.Patch)
	case SelectOption:
		return s.SelectOption(a.QuestionID, a.OptionID)
	case SetAnswer:
		return s.SetAnswer(a.QuestionID, a.Text)
	case ReorderQuestions:
		return s.ReorderQuestions(a.DragIndex, a.DropIndex)
	case SetGreeting:
		return s.SetGreeting(a.Greeting)
	case ClearSelections:
		return s.ClearSelections()
	case nil:
		return false
	}
	panic(fmt.Sprintf("store: unhandled action %T", action))
}
