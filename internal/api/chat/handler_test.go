package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	corechat "vyria-server/internal/core/chat"
	"vyria-server/internal/core/llm"

	"github.com/gofiber/fiber/v3"
)

type scriptedCompleter struct {
	results []llm.Result
	err     error
	calls   int
}

func (s *scriptedCompleter) Complete(_ context.Context, _ llm.Request) (llm.Result, error) {
	i := s.calls
	s.calls++
	if s.err != nil {
		return llm.Result{}, s.err
	}
	if i < len(s.results) {
		return s.results[i], nil
	}
	return llm.Result{}, errors.New("unexpected extra call")
}

func newTestApp(completer llm.Completer) *fiber.App {
	app := fiber.New()
	RegisterRoutes(app, NewHandler(corechat.NewService(completer)))
	return app
}

func postChat(t *testing.T, app *fiber.App, body string) (int, map[string]json.RawMessage) {
	t.Helper()
	req := httptest.NewRequest("POST", "/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("response is not JSON: %v: %s", err, raw)
	}
	return resp.StatusCode, doc
}

func TestHandleTurnEndToEnd(t *testing.T) {
	completer := &scriptedCompleter{results: []llm.Result{
		{Text: "¡Hola! Estoy muy bien, gracias. ¿Y tú?", Usage: llm.Usage{TotalTokens: 42}},
		{Text: `{"translation": "Hi! I am very well, thanks. And you?", "hint": "Reply with 'yo también'."}`},
		{Text: `{
			"hasErrors": true,
			"corrected": "Hola, ¿cómo estás?",
			"mistakes": [{"type": "spelling", "original": "Ola", "correction": "Hola", "explanation": "Hola starts with a silent h."}],
			"feedback": "Almost there!",
			"suggestions": ["Mind the accents."],
			"grade": {"letter": "B+", "score": 85, "feedback": "Solid attempt."}
		}`},
	}}
	app := newTestApp(completer)

	code, doc := postChat(t, app, `{"messages":[{"role":"user","content":"Ola, como estas?"}],"language":"Spanish","level":"B1"}`)
	if code != fiber.StatusOK {
		t.Fatalf("status = %d", code)
	}

	var message string
	if err := json.Unmarshal(doc["message"], &message); err != nil || message == "" {
		t.Errorf("message must be a non-empty string: %s", doc["message"])
	}
	var correction corechat.CorrectionAnalysis
	if err := json.Unmarshal(doc["correction"], &correction); err != nil {
		t.Fatalf("correction: %v", err)
	}
	if correction.Corrected != "Hola, ¿cómo estás?" {
		t.Errorf("corrected = %q", correction.Corrected)
	}
	var grade corechat.Grade
	if err := json.Unmarshal(doc["grade"], &grade); err != nil {
		t.Fatalf("grade: %v", err)
	}
	if grade.Score >= 100 {
		t.Errorf("score = %d, want < 100", grade.Score)
	}
	var points int
	if err := json.Unmarshal(doc["points"], &points); err != nil {
		t.Fatalf("points: %v", err)
	}
	if want := grade.Score/10*10 + 5; points != want {
		t.Errorf("points = %d, want %d", points, want)
	}
}

func TestHandleTurnAbsentFieldsAreNull(t *testing.T) {
	completer := &scriptedCompleter{results: []llm.Result{
		{Text: "Bonjour !"},
		{Text: "not json at all"},
	}}
	app := newTestApp(completer)

	code, doc := postChat(t, app, `{"messages":[{"role":"assistant","content":"Salut"}],"language":"French","level":"C2"}`)
	if code != fiber.StatusOK {
		t.Fatalf("status = %d", code)
	}
	for _, field := range []string{"correction", "grade", "translation", "hint"} {
		if string(doc[field]) != "null" {
			t.Errorf("%s = %s, want null", field, doc[field])
		}
	}
	if string(doc["points"]) != "0" {
		t.Errorf("points = %s, want 0", doc["points"])
	}
}

func TestHandleTurnValidation(t *testing.T) {
	app := newTestApp(&scriptedCompleter{})

	cases := map[string]string{
		"missing language": `{"messages":[{"role":"user","content":"hi"}],"level":"B1"}`,
		"bad level":        `{"messages":[{"role":"user","content":"hi"}],"language":"Spanish","level":"Z9"}`,
		"no messages":      `{"messages":[],"language":"Spanish","level":"B1"}`,
		"bad json":         `{"messages": [}`,
	}
	for name, body := range cases {
		code, doc := postChat(t, app, body)
		if code != fiber.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", name, code)
		}
		if _, ok := doc["error"]; !ok {
			t.Errorf("%s: error body missing 'error' field", name)
		}
	}
}

func TestHandleTurnLevelIsCaseInsensitive(t *testing.T) {
	completer := &scriptedCompleter{results: []llm.Result{
		{Text: "Hallo!"},
		{Text: `{"translation": "Hello!", "hint": null}`},
		{Text: `{"hasErrors": false, "corrected": "Hallo", "grade": {"letter": "A", "score": 98, "feedback": "ok"}}`},
	}}
	app := newTestApp(completer)

	code, _ := postChat(t, app, `{"messages":[{"role":"user","content":"Hallo"}],"language":"German","level":"b1"}`)
	if code != fiber.StatusOK {
		t.Fatalf("status = %d, want 200 for lowercase level", code)
	}
}

func TestHandleTurnFirstRoleplayMessageAllowsEmptyHistory(t *testing.T) {
	completer := &scriptedCompleter{results: []llm.Result{
		{Text: "¡Buenos días! ¿Qué le pongo?"},
		{Text: `{"translation": "Good morning! What can I get you?", "hint": null}`},
	}}
	app := newTestApp(completer)

	body := `{"messages":[],"language":"Spanish","level":"A2","isFirstMessage":true,"roleplay":{"scenario":"Ordering coffee","character":"a barista","setting":"a cafe"}}`
	code, doc := postChat(t, app, body)
	if code != fiber.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if completer.calls != 2 {
		t.Errorf("expected 2 calls (no grading without a user message), got %d", completer.calls)
	}
	if string(doc["points"]) != "0" {
		t.Errorf("points = %s, want 0", doc["points"])
	}
}

func TestHandleTurnProviderFailure(t *testing.T) {
	app := newTestApp(&scriptedCompleter{err: errors.New("provider unreachable")})

	code, doc := postChat(t, app, `{"messages":[{"role":"user","content":"hi"}],"language":"Spanish","level":"B1"}`)
	if code != fiber.StatusBadGateway {
		t.Fatalf("status = %d, want 502", code)
	}
	if _, ok := doc["error"]; !ok {
		t.Error("error body missing 'error' field")
	}
	if _, ok := doc["details"]; !ok {
		t.Error("error body missing 'details' field")
	}
}
