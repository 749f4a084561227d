package question

import (
	"errors"
	"strings"
	"testing"
)

// TestCheckValidData verifies normalized data satisfies every invariant.
func TestCheckValidData(t *testing.T) {
	data, err := Normalize(experiencePayload())
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if err := Check(data); err != nil {
		t.Fatalf("expected valid data, got %v", err)
	}
}

// TestCheckReportsViolations verifies each broken invariant is reported.
func TestCheckReportsViolations(t *testing.T) {
	data := ScreeningData{Questions: []Question{
		{ID: "q_0", Type: SingleChoice, Options: []Option{
			{ID: "o", Selected: true},
			{ID: "o", Selected: true},
		}},
		{ID: "q_0", Type: MultipleChoice},
		{ID: "q_2", Type: FreeText, Options: []Option{{ID: "x"}}},
	}}
	err := Check(data)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	message := err.Error()
	for _, want := range []string{
		`questions[0].options[1].id: duplicate id "o"`,
		"single-choice question has 2 selected options",
		`questions[1].id: duplicate id "q_0"`,
		"questions[1].options: choice question must include at least one option",
		"questions[2].options: free-text question must not have options",
	} {
		if !strings.Contains(message, want) {
			t.Fatalf("expected %q in %q", want, message)
		}
	}
}

// TestCheckEmptyCollection verifies an empty collection is invalid.
func TestCheckEmptyCollection(t *testing.T) {
	if err := Check(ScreeningData{}); err == nil {
		t.Fatalf("expected error for empty collection")
	}
}
