package chat

import (
	"encoding/json"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// stripCodeFences removes a surrounding markdown code fence, which some
// models wrap around JSON output despite instructions.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

type translationHint struct {
	Translation *string `json:"translation"`
	Hint        *string `json:"hint"`
}

// decodeTranslationHint parses the extraction call's output. Empty strings
// degrade to absent; a decode failure is an error for the caller to swallow.
func decodeTranslationHint(raw string) (translationHint, error) {
	var out translationHint
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &out); err != nil {
		return translationHint{}, err
	}
	if out.Translation != nil && strings.TrimSpace(*out.Translation) == "" {
		out.Translation = nil
	}
	if out.Hint != nil && strings.TrimSpace(*out.Hint) == "" {
		out.Hint = nil
	}
	return out, nil
}

type gradingResult struct {
	HasErrors   bool      `json:"hasErrors"`
	Corrected   string    `json:"corrected" validate:"required"`
	Mistakes    []Mistake `json:"mistakes"`
	Feedback    string    `json:"feedback"`
	Suggestions []string  `json:"suggestions"`
	Grade       Grade     `json:"grade"`
}

// decodeGrading parses and validates the grading call's output. The model's
// text is untrusted; any shape mismatch fails closed.
func decodeGrading(raw string) (gradingResult, error) {
	var out gradingResult
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &out); err != nil {
		return gradingResult{}, err
	}
	if err := validate.Struct(out); err != nil {
		return gradingResult{}, err
	}
	if out.Mistakes == nil {
		out.Mistakes = []Mistake{}
	}
	if out.Suggestions == nil {
		out.Suggestions = []string{}
	}
	return out, nil
}
