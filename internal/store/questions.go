package store

import (
	"prescreen/internal/question"
)

// QuestionPatch lists the question fields UpdateQuestion may change.
// Nil fields are left as they are.
type QuestionPatch struct {
	Title         *string
	Disqualifier  *bool
	EnableScoring *bool
	IsOpen        *bool
}

func (p QuestionPatch) empty() bool {
	return p.Title == nil && p.Disqualifier == nil && p.EnableScoring == nil && p.IsOpen == nil
}

// AddQuestion inserts a new single-choice question with two default
// options directly after afterID. An empty or unknown afterID appends the
// question at the end. It returns the new question id.
func (s *Store) AddQuestion(afterID string) (string, bool) {
	id := s.newQuestionID()
	q := question.Question{
		ID:            id,
		Type:          question.SingleChoice,
		Title:         question.UntitledQuestion,
		Disqualifier:  false,
		EnableScoring: false,
		IsOpen:        true,
	}
	q.Options = s.defaultOptions(q)

	insertAt := len(s.data.Questions)
	if afterID != "" {
		if idx := s.data.QuestionIndex(afterID); idx >= 0 {
			insertAt = idx + 1
		}
	}
	questions := make([]question.Question, 0, len(s.data.Questions)+1)
	questions = append(questions, s.data.Questions[:insertAt]...)
	questions = append(questions, q)
	questions = append(questions, s.data.Questions[insertAt:]...)
	s.data.Questions = questions
	return id, s.changed()
}

// DeleteQuestion removes a question. Deleting the last remaining question
// is rejected.
func (s *Store) DeleteQuestion(id string) bool {
	idx := s.data.QuestionIndex(id)
	if idx < 0 || len(s.data.Questions) <= 1 {
		return false
	}
	s.data.Questions = append(s.data.Questions[:idx:idx], s.data.Questions[idx+1:]...)
	return s.changed()
}

// ChangeQuestionType switches a question to another known type.
//
// Switching to free-text clears options and scoring. Switching to a choice
// type clears any free-text answer and seeds two default options when the
// question has none. Switching to single-choice keeps at most the first
// selected option selected.
func (s *Store) ChangeQuestionType(id string, t question.Type) bool {
	q := s.find(id)
	if q == nil || !t.Known() || q.Type == t {
		return false
	}
	q.Type = t
	switch t {
	case question.FreeText:
		q.Options = []question.Option{}
		q.EnableScoring = false
	case question.SingleChoice, question.MultipleChoice:
		q.Answer = ""
		if len(q.Options) == 0 {
			q.Options = s.defaultOptions(*q)
		}
		if t == question.SingleChoice {
			keepFirstSelected(q.Options)
		}
	}
	return s.changed()
}

// UpdateQuestion shallow-merges patch into a question. EnableScoring is
// ignored for free-text questions, which have nothing to score.
func (s *Store) UpdateQuestion(id string, patch QuestionPatch) bool {
	q := s.find(id)
	if q == nil {
		return false
	}
	if !q.Type.IsChoice() {
		patch.EnableScoring = nil
	}
	if patch.empty() {
		return false
	}
	if patch.Title != nil {
		q.Title = *patch.Title
	}
	if patch.Disqualifier != nil {
		q.Disqualifier = *patch.Disqualifier
	}
	if patch.EnableScoring != nil {
		q.EnableScoring = *patch.EnableScoring
	}
	if patch.IsOpen != nil {
		q.IsOpen = *patch.IsOpen
	}
	return s.changed()
}

// ToggleOpen flips the expanded state of a question card.
func (s *Store) ToggleOpen(id string) bool {
	q := s.find(id)
	if q == nil {
		return false
	}
	open := !q.IsOpen
	return s.UpdateQuestion(id, QuestionPatch{IsOpen: &open})
}

// ReorderQuestions moves the question at dragIndex to dropIndex. Entity
// ids are never touched.
func (s *Store) ReorderQuestions(dragIndex, dropIndex int) bool {
	n := len(s.data.Questions)
	if dragIndex == dropIndex || dragIndex < 0 || dropIndex < 0 || dragIndex >= n || dropIndex >= n {
		return false
	}
	moved := s.data.Questions[dragIndex]
	questions := make([]question.Question, 0, n)
	questions = append(questions, s.data.Questions[:dragIndex]...)
	questions = append(questions, s.data.Questions[dragIndex+1:]...)
	questions = append(questions[:dropIndex], append([]question.Question{moved}, questions[dropIndex:]...)...)
	s.data.Questions = questions
	return s.changed()
}

// maxIDAttempts bounds draws from the configured id source before the
// store switches to crypto/rand suffixes.
const maxIDAttempts = 4

func (s *Store) newQuestionID() string {
	for attempt := 0; ; attempt++ {
		id := s.ids.QuestionID()
		if attempt >= maxIDAttempts {
			id = s.ids.UniqueQuestionID()
		}
		if s.data.QuestionIndex(id) < 0 {
			return id
		}
	}
}

func (s *Store) newOptionID(q question.Question, pending []question.Option) string {
	for attempt := 0; ; attempt++ {
		id := s.ids.OptionID(q.ID)
		if attempt >= maxIDAttempts {
			id = s.ids.UniqueOptionID(q.ID)
		}
		if q.OptionIndex(id) >= 0 {
			continue
		}
		clash := false
		for _, opt := range pending {
			if opt.ID == id {
				clash = true
				break
			}
		}
		if !clash {
			return id
		}
	}
}

func (s *Store) defaultOptions(q question.Question) []question.Option {
	var seeded []question.Option
	return question.DefaultOptions(func(int) string {
		id := s.newOptionID(q, seeded)
		seeded = append(seeded, question.Option{ID: id})
		return id
	})
}

func keepFirstSelected(options []question.Option) {
	seen := false
	for i := range options {
		if !options[i].Selected {
			continue
		}
		if seen {
			options[i].Selected = false
		}
		seen = true
	}
}
