package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"prescreen/internal/dragreorder"
	"prescreen/internal/preview"
	"prescreen/internal/question"
)

// View implements tea.Model. The line layout must match layout().
func (m Model) View() string {
	data := m.store.Snapshot()
	feedback := m.drag.Feedback()

	var b strings.Builder
	b.WriteString(m.renderTitle(data))
	b.WriteString("\n")
	b.WriteString(stylize("Greeting: "+oneLine(data.GreetingMessage.Text), m.noColor, greetingStyle))
	b.WriteString("\n\n")
	for i, q := range data.Questions {
		b.WriteString(m.renderCard(i, q, feedback))
		b.WriteString("\n")
	}
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderTitle(data question.ScreeningData) string {
	outcome := preview.Evaluate(data)
	line := fmt.Sprintf("Screening questions (%d)  score %s", len(data.Questions), preview.FormatScore(outcome.Total))
	if outcome.Disqualified {
		line += "  disqualified"
	}
	return stylize(line, m.noColor, titleStyle)
}

func (m Model) renderCard(index int, q question.Question, feedback dragreorder.Feedback) string {
	lines := []string{m.renderCardHeader(index, q, feedback)}
	if q.IsOpen {
		lines = append(lines, m.renderCardBody(index, q)...)
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m Model) renderCardHeader(index int, q question.Question, feedback dragreorder.Feedback) string {
	title := oneLine(q.Title)
	if strings.TrimSpace(title) == "" {
		title = question.UntitledQuestion
	}
	badges := question.BadgesFor(q)
	rendered := make([]string, 0, len(badges))
	for _, badge := range badges {
		rendered = append(rendered, renderBadge(badge, m.noColor))
	}
	head := fmt.Sprintf("%d. %s", index+1, title)
	switch {
	case feedback.Active && index == feedback.Hover && index != feedback.Origin:
		head = stylize(head+"  ← drop here", m.noColor, hoverStyle)
	case feedback.Active && index == feedback.Origin:
		head = stylize(head+"  (moving)", m.noColor, originStyle)
	case index == m.cursor && m.noColor:
		head += " *"
	case index == m.cursor:
		head = cursorStyle.Render(head)
	}
	return "⠿ " + head + " " + strings.Join(rendered, " ")
}

func (m Model) renderCardBody(index int, q question.Question) []string {
	if q.Type == question.FreeText {
		answer := oneLine(question.NormalizeAnswerText(q.Answer))
		if answer == "" {
			answer = "(no answer)"
		}
		return []string{"    ✎ " + answer}
	}
	lines := make([]string, 0, len(q.Options))
	for j, opt := range q.Options {
		mark := "( )"
		if q.Type == question.MultipleChoice {
			mark = "[ ]"
		}
		if opt.Selected {
			mark = mark[:1] + "x" + mark[2:]
		}
		focus := "  "
		if index == m.cursor && j == m.option {
			focus = "› "
		}
		line := fmt.Sprintf("  %s%s %s", focus, mark, oneLine(opt.Text))
		if q.EnableScoring {
			score := " (" + preview.FormatScore(opt.Score) + ")"
			if opt.Score == 0 {
				score = stylize(score+" rejects", m.noColor, warnStyle)
			}
			line += score
		}
		if opt.Selected {
			line = stylize(line, m.noColor, selectedStyle)
		}
		lines = append(lines, line)
	}
	return lines
}

func (m Model) renderFooter() string {
	parts := []string{}
	if m.editing != editNone {
		parts = append(parts, editLabel(m.editing)+" "+m.input.View())
	}
	status := m.status
	switch {
	case m.saved.lastErr != nil:
		status = strings.TrimSpace(status + "  save failed: " + m.saved.lastErr.Error())
	case m.saved.saves > 0:
		status = strings.TrimSpace(status + fmt.Sprintf("  saved (%d)", m.saved.saves))
	}
	if status != "" {
		parts = append(parts, stylize(status, m.noColor, statusStyle))
	}
	if m.drag.Active() {
		parts = append(parts, m.help.ShortHelpView(m.keys.dragKeys()))
	} else {
		parts = append(parts, m.help.View(m.keys))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func editLabel(target editTarget) string {
	switch target {
	case editTitle:
		return "Title"
	case editOption:
		return "Option"
	case editAnswer:
		return "Answer"
	default:
		return ""
	}
}

// oneLine keeps user text on a single row so layout() stays accurate.
func oneLine(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
