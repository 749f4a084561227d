package question

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
)

const suffixLength = 12

// IDGenerator mints ids for entities created after normalization.
// Generated ids never take the positional q_{n} form, so they cannot
// collide with normalization-era ids.
type IDGenerator struct {
	now    func() time.Time
	random io.Reader
}

// NewIDGenerator returns a generator; nil arguments fall back to the wall
// clock and crypto/rand.
func NewIDGenerator(now func() time.Time, random io.Reader) *IDGenerator {
	if now == nil {
		now = time.Now
	}
	if random == nil {
		random = rand.Reader
	}
	return &IDGenerator{now: now, random: random}
}

// QuestionID returns a new question id of the form q-{millis}-{suffix}.
func (g *IDGenerator) QuestionID() string {
	return g.questionID(g.suffix())
}

// OptionID returns a new option id scoped under questionID.
func (g *IDGenerator) OptionID(questionID string) string {
	return g.optionID(questionID, g.suffix())
}

// UniqueQuestionID is QuestionID with a suffix drawn from crypto/rand
// instead of the configured source. Callers switch to it when the
// configured source keeps repeating itself.
func (g *IDGenerator) UniqueQuestionID() string {
	return g.questionID(compact(uuid.New()))
}

// UniqueOptionID is the OptionID counterpart of UniqueQuestionID.
func (g *IDGenerator) UniqueOptionID(questionID string) string {
	return g.optionID(questionID, compact(uuid.New()))
}

func (g *IDGenerator) questionID(suffix string) string {
	return fmt.Sprintf("q-%d-%s", g.now().UnixMilli(), suffix)
}

func (g *IDGenerator) optionID(questionID, suffix string) string {
	return fmt.Sprintf("%s-opt-%d-%s", questionID, g.now().UnixMilli(), suffix)
}

func (g *IDGenerator) suffix() string {
	id, err := uuid.NewRandomFromReader(g.random)
	if err != nil {
		id = uuid.New()
	}
	return compact(id)
}

func compact(id uuid.UUID) string {
	return strings.ReplaceAll(id.String(), "-", "")[:suffixLength]
}
