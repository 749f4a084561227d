package question

import "strings"

// NormalizeAnswerText trims whitespace from a free-text response.
func NormalizeAnswerText(value string) string {
	return strings.TrimSpace(value)
}

// SelectedOptions returns the options currently marked selected.
func SelectedOptions(q Question) []Option {
	var selected []Option
	for _, opt := range q.Options {
		if opt.Selected {
			selected = append(selected, opt)
		}
	}
	return selected
}

// Answered reports whether the question carries a candidate response.
func Answered(q Question) bool {
	if q.Type == FreeText {
		return NormalizeAnswerText(q.Answer) != ""
	}
	return len(SelectedOptions(q)) > 0
}
