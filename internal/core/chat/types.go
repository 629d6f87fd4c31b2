package chat

import (
	"strings"

	"vyria-server/internal/core/llm"
)

// Message is one entry of the conversation history, oldest first.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// RoleplayContext frames the tutor's persona for a scenario session.
// All fields are free text supplied by the client.
type RoleplayContext struct {
	Scenario  string `json:"scenario"`
	Character string `json:"character"`
	Setting   string `json:"setting"`
}

// TurnRequest is one conversation turn as sent by the client.
type TurnRequest struct {
	Messages       []Message        `json:"messages"`
	Language       string           `json:"language"`
	Level          string           `json:"level"`
	Roleplay       *RoleplayContext `json:"roleplay,omitempty"`
	IsFirstMessage bool             `json:"isFirstMessage,omitempty"`
}

// Mistake is one error found in the learner's utterance.
type Mistake struct {
	Type        string `json:"type"`
	Original    string `json:"original"`
	Correction  string `json:"correction"`
	Explanation string `json:"explanation"`
}

// CorrectionAnalysis is the structured diff between the learner's
// utterance and its corrected form.
type CorrectionAnalysis struct {
	HasErrors   bool      `json:"hasErrors"`
	Corrected   string    `json:"corrected"`
	Mistakes    []Mistake `json:"mistakes"`
	Feedback    string    `json:"feedback"`
	Suggestions []string  `json:"suggestions"`
}

// Grade is the letter/score assessment of one analyzed utterance.
type Grade struct {
	Letter   string `json:"letter" validate:"oneof=A+ A B+ B C+ C D F"`
	Score    int    `json:"score" validate:"min=0,max=100"`
	Feedback string `json:"feedback"`
}

// TurnResponse is the assembled turn document. Correction, grade,
// translation and hint serialize as null when absent; points is always
// present, possibly 0.
type TurnResponse struct {
	Message     string              `json:"message"`
	Correction  *CorrectionAnalysis `json:"correction"`
	Grade       *Grade              `json:"grade"`
	Points      int                 `json:"points"`
	Translation *string             `json:"translation"`
	Hint        *string             `json:"hint"`
	Usage       llm.Usage           `json:"usage"`
}

// Levels lists the supported CEFR proficiency codes, easiest first.
var Levels = []string{"A1", "A2", "B1", "B2", "C1", "C2"}

// NormalizeLevel upper-cases a level code and reports whether it is supported.
func NormalizeLevel(s string) (string, bool) {
	for _, lvl := range Levels {
		if strings.EqualFold(strings.TrimSpace(s), lvl) {
			return lvl, true
		}
	}
	return "", false
}

// LevelRank returns the position of a level in CEFR order (A1=0 .. C2=5),
// or -1 for an unknown code.
func LevelRank(level string) int {
	for i, lvl := range Levels {
		if lvl == level {
			return i
		}
	}
	return -1
}
