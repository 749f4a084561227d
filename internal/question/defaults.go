package question

import "fmt"

// UntitledQuestion is the title given to freshly added questions.
const UntitledQuestion = "Untitled Question"

const defaultGreetingText = "Thank you for your interest in an exciting career opportunity. " +
	"Let's spend the next few minutes getting to know one another to see if there's a current potential fit."

// DefaultGreeting returns the stock greeting used when a payload carries none.
func DefaultGreeting() GreetingMessage {
	return GreetingMessage{
		Text:    defaultGreetingText,
		Options: []string{"Ready to get Started", "Lets Begin", "Begin Screening", "Jump In"},
	}
}

// FAQ is a question and answer shown with the ending message.
type FAQ struct {
	Question string
	Answer   string
}

// EndingMessage is what a candidate sees after the last question.
type EndingMessage struct {
	Text string
	FAQs []FAQ
}

const defaultEndingText = "Thank you for taking the time to answer our screening questions. " +
	"We appreciate your interest and will be in touch about the next steps."

// DefaultEnding returns the stock ending message. Qualified and
// disqualified candidates see the same text and FAQs.
func DefaultEnding() EndingMessage {
	return EndingMessage{
		Text: defaultEndingText,
		FAQs: []FAQ{
			{Question: "What happens next?", Answer: "Your profile will be reviewed and we'll notify you about the next stage."},
			{Question: "When will I hear back?", Answer: "Within 24-48 hours."},
			{Question: "Will there be another interview?", Answer: "You may be invited for a technical round or a conversation with the hiring manager."},
		},
	}
}

// OptionLabel returns the default text for the option at position n (0-based).
func OptionLabel(n int) string {
	return fmt.Sprintf("Option %d", n+1)
}

// DefaultOptions builds the two seed options of a new choice question.
func DefaultOptions(id func(n int) string) []Option {
	return []Option{
		{ID: id(0), Text: OptionLabel(0), Score: 0},
		{ID: id(1), Text: OptionLabel(1), Score: 0},
	}
}
