package preview

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"prescreen/internal/question"
)

// Render writes a plain-text preview of data followed by the outcome and
// the default ending message.
func Render(w io.Writer, data question.ScreeningData, outcome Outcome) error {
	var b strings.Builder
	if text := strings.TrimSpace(data.GreetingMessage.Text); text != "" {
		b.WriteString(text)
		b.WriteString("\n")
		if len(data.GreetingMessage.Options) > 0 {
			fmt.Fprintf(&b, "  (%s)\n", strings.Join(data.GreetingMessage.Options, " / "))
		}
		b.WriteString("\n")
	}
	for i, q := range data.Questions {
		renderQuestion(&b, i, q)
	}
	renderOutcome(&b, outcome)
	renderEnding(&b, question.DefaultEnding(), outcome.Disqualified)
	_, err := io.WriteString(w, b.String())
	return err
}

func renderQuestion(b *strings.Builder, index int, q question.Question) {
	title := q.Title
	if strings.TrimSpace(title) == "" {
		title = question.UntitledQuestion
	}
	fmt.Fprintf(b, "%d. %s %s\n", index+1, title, badgeList(q))
	if q.Type == question.FreeText {
		answer := question.NormalizeAnswerText(q.Answer)
		if answer == "" {
			answer = "(no answer)"
		}
		fmt.Fprintf(b, "   > %s\n", answer)
	}
	for _, opt := range q.Options {
		mark := " "
		if opt.Selected {
			mark = "x"
		}
		line := fmt.Sprintf("   [%s] %s", mark, opt.Text)
		if q.EnableScoring {
			line += " (" + FormatScore(opt.Score) + ")"
			if opt.Score == 0 {
				line += " !"
			}
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func badgeList(q question.Question) string {
	badges := question.BadgesFor(q)
	labels := make([]string, 0, len(badges))
	for _, badge := range badges {
		labels = append(labels, "["+badge.Label()+"]")
	}
	return strings.Join(labels, " ")
}

func renderOutcome(b *strings.Builder, outcome Outcome) {
	status := "eligible"
	if outcome.Disqualified {
		status = "disqualified"
	}
	fmt.Fprintf(b, "Score: %s  Unanswered: %d  Status: %s\n", FormatScore(outcome.Total), outcome.Unanswered, status)
}

func renderEnding(b *strings.Builder, ending question.EndingMessage, disqualified bool) {
	tab := "qualified"
	if disqualified {
		tab = "disqualified"
	}
	fmt.Fprintf(b, "\nEnding message (%s):\n%s\n", tab, ending.Text)
	for _, faq := range ending.FAQs {
		fmt.Fprintf(b, "  Q: %s\n  A: %s\n", faq.Question, faq.Answer)
	}
}

// FormatScore prints a score without trailing zeros.
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}
