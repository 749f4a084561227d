package question

// Type identifies how a question collects a candidate response.
type Type string

const (
	SingleChoice   Type = "single-choice"
	MultipleChoice Type = "multiple-choice"
	FreeText       Type = "free-text"
)

// Known reports whether the type is one of the canonical question types.
func (t Type) Known() bool {
	switch t {
	case SingleChoice, MultipleChoice, FreeText:
		return true
	default:
		return false
	}
}

// IsChoice reports whether questions of this type carry options.
func (t Type) IsChoice() bool {
	return t == SingleChoice || t == MultipleChoice
}

// ScreeningData is the root aggregate edited during a session.
type ScreeningData struct {
	GreetingMessage GreetingMessage `json:"greetingMessage" yaml:"greetingMessage"`
	Questions       []Question      `json:"questions" yaml:"questions"`
}

// GreetingMessage is the opening chat message and its button labels.
type GreetingMessage struct {
	Text    string   `json:"text" yaml:"text"`
	Options []string `json:"options" yaml:"options"`
}

// Question is a single screening prompt.
type Question struct {
	ID            string   `json:"id" yaml:"id"`
	Type          Type     `json:"type" yaml:"type"`
	Title         string   `json:"title" yaml:"title"`
	Options       []Option `json:"options" yaml:"options"`
	Disqualifier  bool     `json:"disqualifier" yaml:"disqualifier"`
	EnableScoring bool     `json:"enableScoring" yaml:"enableScoring"`
	Answer        string   `json:"answer,omitempty" yaml:"answer,omitempty"`
	IsOpen        bool     `json:"isOpen" yaml:"isOpen"`
}

// Option is a selectable, scoreable choice within a choice question.
type Option struct {
	ID       string  `json:"id" yaml:"id"`
	Text     string  `json:"text" yaml:"text"`
	Score    float64 `json:"score" yaml:"score"`
	Selected bool    `json:"selected" yaml:"selected"`
}

// Clone returns a deep copy of the data.
func (data ScreeningData) Clone() ScreeningData {
	out := ScreeningData{
		GreetingMessage: GreetingMessage{
			Text:    data.GreetingMessage.Text,
			Options: cloneStrings(data.GreetingMessage.Options),
		},
	}
	if data.Questions != nil {
		out.Questions = make([]Question, len(data.Questions))
		for i, q := range data.Questions {
			out.Questions[i] = q.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the question.
func (q Question) Clone() Question {
	if q.Options != nil {
		options := make([]Option, len(q.Options))
		copy(options, q.Options)
		q.Options = options
	}
	return q
}

// OptionIndex returns the position of an option, or -1.
func (q Question) OptionIndex(optionID string) int {
	for i, opt := range q.Options {
		if opt.ID == optionID {
			return i
		}
	}
	return -1
}

// QuestionIndex returns the position of a question, or -1.
func (data ScreeningData) QuestionIndex(id string) int {
	for i, q := range data.Questions {
		if q.ID == id {
			return i
		}
	}
	return -1
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}
