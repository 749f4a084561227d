// Package preview scores the candidate responses recorded in a screening
// collection and renders them as plain text.
package preview

import "prescreen/internal/question"

// Result is the evaluation of one question.
type Result struct {
	QuestionID   string
	Answered     bool
	Score        float64
	Disqualified bool
}

// Outcome aggregates a whole collection.
type Outcome struct {
	Results      []Result
	Total        float64
	Disqualified bool
	Unanswered   int
}

// Evaluate scores the current selections. Only scoring-enabled questions
// contribute to Total. A disqualifier question rejects the candidate when a
// selected option scores zero.
func Evaluate(data question.ScreeningData) Outcome {
	outcome := Outcome{Results: make([]Result, 0, len(data.Questions))}
	for _, q := range data.Questions {
		result := evaluateQuestion(q)
		outcome.Results = append(outcome.Results, result)
		outcome.Total += result.Score
		if result.Disqualified {
			outcome.Disqualified = true
		}
		if !result.Answered {
			outcome.Unanswered++
		}
	}
	return outcome
}

func evaluateQuestion(q question.Question) Result {
	result := Result{QuestionID: q.ID, Answered: question.Answered(q)}
	if !q.Type.IsChoice() || !q.EnableScoring {
		return result
	}
	for _, opt := range question.SelectedOptions(q) {
		result.Score += opt.Score
		if q.Disqualifier && opt.Score == 0 {
			result.Disqualified = true
		}
	}
	return result
}
