package question

import (
	"errors"
	"fmt"
	"strings"
)

// Issue captures a single validation problem.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("screening data validation failed: %s", strings.Join(parts, "; "))
}

// ErrNormalization matches any NormalizationError via errors.Is.
var ErrNormalization = errors.New("normalization failed")

// NormalizationError reports a raw payload that is missing required shape.
type NormalizationError struct {
	Err error
}

// Error returns the wrapped failure with a normalization prefix.
func (err *NormalizationError) Error() string {
	if err == nil || err.Err == nil {
		return ErrNormalization.Error()
	}
	return fmt.Sprintf("normalize payload: %v", err.Err)
}

// Unwrap exposes the underlying parse or validation error.
func (err *NormalizationError) Unwrap() error {
	return err.Err
}

// Is reports true for ErrNormalization.
func (err *NormalizationError) Is(target error) bool {
	return target == ErrNormalization
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Check reports every invariant the data violates.
func Check(data ScreeningData) error {
	collector := &issueCollector{}
	if len(data.Questions) == 0 {
		collector.add("questions", "must include at least one entry")
	}

	seenQuestions := map[string]struct{}{}
	for i, q := range data.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		if q.ID == "" {
			collector.add(prefix+".id", "is required")
		} else if _, exists := seenQuestions[q.ID]; exists {
			collector.add(prefix+".id", fmt.Sprintf("duplicate id %q", q.ID))
		} else {
			seenQuestions[q.ID] = struct{}{}
		}

		switch {
		case q.Type.IsChoice():
			if len(q.Options) == 0 {
				collector.add(prefix+".options", "choice question must include at least one option")
			}
		case q.Type == FreeText:
			if len(q.Options) > 0 {
				collector.add(prefix+".options", "free-text question must not have options")
			}
		}

		seenOptions := map[string]struct{}{}
		selected := 0
		for j, opt := range q.Options {
			optField := fmt.Sprintf("%s.options[%d]", prefix, j)
			if opt.ID == "" {
				collector.add(optField+".id", "is required")
			} else if _, exists := seenOptions[opt.ID]; exists {
				collector.add(optField+".id", fmt.Sprintf("duplicate id %q", opt.ID))
			} else {
				seenOptions[opt.ID] = struct{}{}
			}
			if opt.Selected {
				selected++
			}
		}
		if q.Type == SingleChoice && selected > 1 {
			collector.add(prefix+".options", fmt.Sprintf("single-choice question has %d selected options", selected))
		}
	}
	return collector.result()
}
