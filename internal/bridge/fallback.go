package bridge

import (
	_ "embed"
	"fmt"

	"prescreen/internal/question"
)

//go:embed fallback.json
var fallbackPayload []byte

// LoadLocalFallback decodes the bundled payload.
func LoadLocalFallback() (question.RawPayload, error) {
	raw, err := question.ParsePayload(fallbackPayload, question.FormatJSON)
	if err != nil {
		return question.RawPayload{}, fmt.Errorf("bundled fallback: %w", err)
	}
	return raw, nil
}

// FallbackData returns the normalized bundled payload.
func FallbackData() (question.ScreeningData, error) {
	raw, err := LoadLocalFallback()
	if err != nil {
		return question.ScreeningData{}, err
	}
	data, err := question.Normalize(raw)
	if err != nil {
		return question.ScreeningData{}, fmt.Errorf("bundled fallback: %w", err)
	}
	return data, nil
}
