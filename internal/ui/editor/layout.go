package editor

import (
	"prescreen/internal/dragreorder"
	"prescreen/internal/question"
)

// headerLines is the number of lines above the first card.
const headerLines = 3

// handleWidth is the width of the drag handle glyph and its padding.
const handleWidth = 2

// cardSpan is the vertical extent of one rendered card.
type cardSpan struct {
	start int
	lines int
}

// bodyLines returns how many lines a card renders under its header.
func bodyLines(q question.Question) int {
	if !q.IsOpen {
		return 0
	}
	if q.Type == question.FreeText {
		return 1
	}
	return len(q.Options)
}

// layout computes card spans for data. Cards are separated by one blank line.
func layout(data question.ScreeningData) []cardSpan {
	spans := make([]cardSpan, 0, len(data.Questions))
	line := headerLines
	for _, q := range data.Questions {
		span := cardSpan{start: line, lines: 1 + bodyLines(q)}
		spans = append(spans, span)
		line += span.lines + 1
	}
	return spans
}

// hitAt maps a screen cell to the card under it and the part that was hit.
// Option rows count as buttons. The second return is the option row, or -1.
func hitAt(data question.ScreeningData, x, y int) (int, dragreorder.Hit, int, bool) {
	for i, span := range layout(data) {
		if y < span.start || y >= span.start+span.lines {
			continue
		}
		row := y - span.start
		if row == 0 {
			if x < handleWidth {
				return i, dragreorder.HitHandle, -1, true
			}
			return i, dragreorder.HitSurface, -1, true
		}
		q := data.Questions[i]
		if q.Type == question.FreeText {
			return i, dragreorder.HitTextInput, -1, true
		}
		return i, dragreorder.HitButton, row - 1, true
	}
	return 0, dragreorder.HitSurface, -1, false
}

// nearestCard maps a row to the closest card, for hovering between cards.
func nearestCard(data question.ScreeningData, y int) (int, bool) {
	spans := layout(data)
	if len(spans) == 0 {
		return 0, false
	}
	for i, span := range spans {
		if y < span.start+span.lines+1 {
			return i, true
		}
	}
	return len(spans) - 1, true
}
