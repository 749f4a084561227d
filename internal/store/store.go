// Package store holds the editable screening question collection.
//
// Every mutation goes through a Store method. Operations are total: an
// unknown id or a change that would break an invariant leaves the state
// untouched and reports false instead of returning an error.
//
// A Store is not safe for concurrent use; hosts drive it from a single
// event loop.
package store

import (
	"prescreen/internal/question"
)

// Store owns the canonical screening data for one editing session.
type Store struct {
	data      question.ScreeningData
	ids       *question.IDGenerator
	listeners []func(question.ScreeningData)
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator sets the generator used for added questions and options.
func WithIDGenerator(ids *question.IDGenerator) Option {
	return func(s *Store) {
		if ids != nil {
			s.ids = ids
		}
	}
}

// New hydrates a Store with a deep copy of data.
func New(data question.ScreeningData, opts ...Option) *Store {
	s := &Store{
		data: data.Clone(),
		ids:  question.NewIDGenerator(nil, nil),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() question.ScreeningData {
	return s.data.Clone()
}

// Len returns the number of questions.
func (s *Store) Len() int {
	return len(s.data.Questions)
}

// Question returns a copy of the question with the given id.
func (s *Store) Question(id string) (question.Question, bool) {
	idx := s.data.QuestionIndex(id)
	if idx < 0 {
		return question.Question{}, false
	}
	return s.data.Questions[idx].Clone(), true
}

// QuestionAt returns a copy of the question at a position.
func (s *Store) QuestionAt(index int) (question.Question, bool) {
	if index < 0 || index >= len(s.data.Questions) {
		return question.Question{}, false
	}
	return s.data.Questions[index].Clone(), true
}

// Subscribe registers fn to receive a snapshot after every change.
func (s *Store) Subscribe(fn func(question.ScreeningData)) {
	if fn != nil {
		s.listeners = append(s.listeners, fn)
	}
}

func (s *Store) changed() bool {
	if len(s.listeners) == 0 {
		return true
	}
	snapshot := s.data.Clone()
	for _, fn := range s.listeners {
		fn(snapshot)
	}
	return true
}

// find returns a pointer into the collection for in-place edits.
func (s *Store) find(id string) *question.Question {
	idx := s.data.QuestionIndex(id)
	if idx < 0 {
		return nil
	}
	return &s.data.Questions[idx]
}

// SetGreeting replaces the greeting template.
func (s *Store) SetGreeting(greeting question.GreetingMessage) bool {
	s.data.GreetingMessage = question.GreetingMessage{
		Text:    greeting.Text,
		Options: append([]string{}, greeting.Options...),
	}
	return s.changed()
}
