package store

import (
	"prescreen/internal/question"
)

// OptionPatch lists the option fields UpdateOption may change.
type OptionPatch struct {
	Text     *string
	Score    *float64
	Selected *bool
}

func (p OptionPatch) empty() bool {
	return p.Text == nil && p.Score == nil && p.Selected == nil
}

// AddOption appends "Option {n+1}" with score 0 to a choice question and
// returns the new option id.
func (s *Store) AddOption(questionID string) (string, bool) {
	q := s.find(questionID)
	if q == nil || !q.Type.IsChoice() {
		return "", false
	}
	id := s.newOptionID(*q, nil)
	q.Options = append(q.Options, question.Option{
		ID:    id,
		Text:  question.OptionLabel(len(q.Options)),
		Score: 0,
	})
	return id, s.changed()
}

// DeleteOption removes an option. Removing the last option of a question
// is rejected.
func (s *Store) DeleteOption(questionID, optionID string) bool {
	q := s.find(questionID)
	if q == nil {
		return false
	}
	idx := q.OptionIndex(optionID)
	if idx < 0 || len(q.Options) <= 1 {
		return false
	}
	q.Options = append(q.Options[:idx:idx], q.Options[idx+1:]...)
	return s.changed()
}

// UpdateOption shallow-merges patch into an option. Selecting an option of
// a single-choice question deselects its siblings.
func (s *Store) UpdateOption(questionID, optionID string, patch OptionPatch) bool {
	q := s.find(questionID)
	if q == nil || patch.empty() {
		return false
	}
	idx := q.OptionIndex(optionID)
	if idx < 0 {
		return false
	}
	opt := &q.Options[idx]
	if patch.Text != nil {
		opt.Text = *patch.Text
	}
	if patch.Score != nil {
		opt.Score = *patch.Score
	}
	if patch.Selected != nil {
		if *patch.Selected && q.Type == question.SingleChoice {
			selectExclusive(q.Options, optionID)
		} else {
			opt.Selected = *patch.Selected
		}
	}
	return s.changed()
}

// SelectOption records a candidate pick. Single-choice questions select
// exactly the given option; multiple-choice questions toggle it. Other
// question types are left unchanged.
func (s *Store) SelectOption(questionID, optionID string) bool {
	q := s.find(questionID)
	if q == nil {
		return false
	}
	idx := q.OptionIndex(optionID)
	if idx < 0 {
		return false
	}
	switch q.Type {
	case question.SingleChoice:
		selectExclusive(q.Options, optionID)
	case question.MultipleChoice:
		q.Options[idx].Selected = !q.Options[idx].Selected
	default:
		return false
	}
	return s.changed()
}

// SetAnswer stores the free-text response of a free-text question.
func (s *Store) SetAnswer(questionID, text string) bool {
	q := s.find(questionID)
	if q == nil || q.Type != question.FreeText {
		return false
	}
	q.Answer = text
	return s.changed()
}

// ClearSelections resets every selection and free-text answer.
func (s *Store) ClearSelections() bool {
	dirty := false
	for i := range s.data.Questions {
		q := &s.data.Questions[i]
		if q.Answer != "" {
			q.Answer = ""
			dirty = true
		}
		for j := range q.Options {
			if q.Options[j].Selected {
				q.Options[j].Selected = false
				dirty = true
			}
		}
	}
	if !dirty {
		return false
	}
	return s.changed()
}

func selectExclusive(options []question.Option, optionID string) {
	for i := range options {
		options[i].Selected = options[i].ID == optionID
	}
}
