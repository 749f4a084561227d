package question

// Badge is a closed set of labels shown next to a question.
type Badge int

const (
	BadgeSingleChoice Badge = iota
	BadgeMultipleChoice
	BadgeFreeText
	// BadgeCustomType marks a question whose type is not one of the known kinds.
	BadgeCustomType
	BadgeDisqualifier
	BadgeEligibility
	BadgeTechnicalSkills
)

// Label returns the display text of a badge.
func (b Badge) Label() string {
	switch b {
	case BadgeSingleChoice:
		return "Single Choice"
	case BadgeMultipleChoice:
		return "Multiple Choice"
	case BadgeFreeText:
		return "Free Text"
	case BadgeCustomType:
		return "Custom"
	case BadgeDisqualifier:
		return "Disqualifier"
	case BadgeEligibility:
		return "Eligibility"
	case BadgeTechnicalSkills:
		return "Technical Skills"
	}
	panic("question: unhandled badge")
}

// TypeBadge returns the badge describing a question type.
func TypeBadge(t Type) Badge {
	switch t {
	case SingleChoice:
		return BadgeSingleChoice
	case MultipleChoice:
		return BadgeMultipleChoice
	case FreeText:
		return BadgeFreeText
	default:
		return BadgeCustomType
	}
}

// BadgesFor returns the badges to display for a question, in display order.
func BadgesFor(q Question) []Badge {
	badges := []Badge{TypeBadge(q.Type)}
	if q.Disqualifier {
		badges = append(badges, BadgeDisqualifier)
	}
	if q.EnableScoring {
		badges = append(badges, BadgeEligibility)
	}
	if q.Type == FreeText {
		badges = append(badges, BadgeTechnicalSkills)
	}
	return badges
}
