package chat

import "testing"

func TestDecodeTranslationHint(t *testing.T) {
	th, err := decodeTranslationHint(`{"translation": "Hello, how are you?", "hint": "Try answering with 'estoy bien'."}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if th.Translation == nil || *th.Translation != "Hello, how are you?" {
		t.Errorf("translation = %v", th.Translation)
	}
	if th.Hint == nil {
		t.Errorf("hint should be present")
	}
}

func TestDecodeTranslationHintStripsFences(t *testing.T) {
	raw := "```json\n{\"translation\": \"Hi\", \"hint\": null}\n```"
	th, err := decodeTranslationHint(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if th.Translation == nil || *th.Translation != "Hi" {
		t.Errorf("translation = %v", th.Translation)
	}
	if th.Hint != nil {
		t.Errorf("hint should be absent, got %q", *th.Hint)
	}
}

func TestDecodeTranslationHintEmptyStringsDegrade(t *testing.T) {
	th, err := decodeTranslationHint(`{"translation": "", "hint": "  "}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if th.Translation != nil || th.Hint != nil {
		t.Errorf("empty fields must degrade to absent: %+v", th)
	}
}

func TestDecodeTranslationHintBadJSON(t *testing.T) {
	if _, err := decodeTranslationHint("Sure! Here is the translation: hello"); err == nil {
		t.Fatal("expected error for non-JSON output")
	}
}

const validGrading = `{
	"hasErrors": true,
	"corrected": "Hola, ¿cómo estás?",
	"mistakes": [{"type": "spelling", "original": "Ola", "correction": "Hola", "explanation": "Hola is spelled with a silent h."}],
	"feedback": "Nice try!",
	"suggestions": ["Watch out for silent letters."],
	"grade": {"letter": "B+", "score": 85, "feedback": "Good effort."}
}`

func TestDecodeGrading(t *testing.T) {
	g, err := decodeGrading(validGrading)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !g.HasErrors || g.Grade.Score != 85 || g.Grade.Letter != "B+" {
		t.Errorf("unexpected result: %+v", g)
	}
	if len(g.Mistakes) != 1 || g.Mistakes[0].Correction != "Hola" {
		t.Errorf("mistakes = %+v", g.Mistakes)
	}
}

func TestDecodeGradingFailsClosed(t *testing.T) {
	cases := map[string]string{
		"bad letter":     `{"corrected": "x", "grade": {"letter": "Z", "score": 50, "feedback": ""}}`,
		"score over 100": `{"corrected": "x", "grade": {"letter": "A", "score": 150, "feedback": ""}}`,
		"negative score": `{"corrected": "x", "grade": {"letter": "A", "score": -3, "feedback": ""}}`,
		"no corrected":   `{"grade": {"letter": "A", "score": 90, "feedback": ""}}`,
		"not json":       `the student did well overall`,
	}
	for name, raw := range cases {
		if _, err := decodeGrading(raw); err == nil {
			t.Errorf("%s: expected decode to fail closed", name)
		}
	}
}

func TestDecodeGradingDefaultsSlices(t *testing.T) {
	g, err := decodeGrading(`{"hasErrors": false, "corrected": "Bonjour.", "grade": {"letter": "A", "score": 95, "feedback": "ok"}}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Mistakes == nil || g.Suggestions == nil {
		t.Errorf("absent lists must decode to empty, not nil: %+v", g)
	}
}
