package question

import "fmt"

var rawTypes = map[string]Type{
	"single":    SingleChoice,
	"multiple":  MultipleChoice,
	"free_text": FreeText,
}

// NormalizeType maps a raw question type onto its canonical name.
// Unrecognized values pass through unchanged.
func NormalizeType(raw string) Type {
	if mapped, ok := rawTypes[raw]; ok {
		return mapped
	}
	return Type(raw)
}

// QuestionID returns the positional id assigned during normalization.
func QuestionID(index int) string {
	return fmt.Sprintf("q_%d", index)
}

// OptionID returns the positional option id assigned during normalization.
func OptionID(questionID string, index int) string {
	return fmt.Sprintf("%s_opt_%d", questionID, index)
}

// Normalize converts a raw payload into canonical screening data.
//
// Ids are derived from the raw ordering and are only valid for it; they
// must never be recomputed after questions have been reordered.
func Normalize(raw RawPayload) (ScreeningData, error) {
	collector := &issueCollector{}
	if raw.GreetingMsg == nil {
		collector.add("greeting_msg", "is required")
	}
	if raw.Questions == nil {
		collector.add("questions", "is required")
	} else if len(raw.Questions) == 0 {
		collector.add("questions", "must include at least one entry")
	}
	if err := collector.result(); err != nil {
		return ScreeningData{}, &NormalizationError{Err: err}
	}

	data := ScreeningData{
		GreetingMessage: GreetingMessage{
			Text:    raw.GreetingMsg.Text,
			Options: cloneStrings(raw.GreetingMsg.Options),
		},
		Questions: make([]Question, 0, len(raw.Questions)),
	}
	if data.GreetingMessage.Options == nil {
		data.GreetingMessage.Options = []string{}
	}
	for i, rq := range raw.Questions {
		data.Questions = append(data.Questions, normalizeQuestion(i, rq))
	}
	return data, nil
}

func normalizeQuestion(index int, rq RawQuestion) Question {
	id := QuestionID(index)
	q := Question{
		ID:            id,
		Type:          NormalizeType(rq.Type),
		Title:         rq.Question,
		Options:       []Option{},
		EnableScoring: scoringEnabled(rq.Options),
		IsOpen:        true,
	}
	if rq.Disqualifier != nil {
		q.Disqualifier = *rq.Disqualifier
	}
	if q.Type == FreeText {
		q.EnableScoring = false
		return q
	}
	for j, ro := range rq.Options {
		opt := Option{ID: OptionID(id, j), Text: ro.Value}
		if ro.Score != nil {
			opt.Score = *ro.Score
		}
		q.Options = append(q.Options, opt)
	}
	if q.Type.IsChoice() && len(q.Options) == 0 {
		q.Options = DefaultOptions(func(j int) string { return OptionID(id, j) })
	}
	return q
}

// scoringEnabled applies the scoring policy: on only when there is at
// least one option and every option carries an explicit score.
func scoringEnabled(options []RawOption) bool {
	if len(options) == 0 {
		return false
	}
	for _, opt := range options {
		if opt.Score == nil {
			return false
		}
	}
	return true
}
