package question

// RawPayload is the external screening payload before normalization.
// Pointer fields distinguish a missing value from its zero value.
type RawPayload struct {
	GreetingMsg *RawGreeting  `json:"greeting_msg" yaml:"greeting_msg"`
	Questions   []RawQuestion `json:"questions" yaml:"questions"`
}

// RawGreeting is the greeting block of a raw payload.
type RawGreeting struct {
	Text    string   `json:"text" yaml:"text"`
	Options []string `json:"options" yaml:"options"`
}

// RawQuestion is a question as delivered by the payload source.
type RawQuestion struct {
	Type         string      `json:"type" yaml:"type"`
	Question     string      `json:"question" yaml:"question"`
	Disqualifier *bool       `json:"disqualifier,omitempty" yaml:"disqualifier,omitempty"`
	Options      []RawOption `json:"options,omitempty" yaml:"options,omitempty"`
}

// RawOption is a raw answer choice.
type RawOption struct {
	Value string   `json:"value" yaml:"value"`
	Score *float64 `json:"score,omitempty" yaml:"score,omitempty"`
}
