package chat

import (
	"context"
	"strings"

	"vyria-server/config"
	"vyria-server/internal/core/llm"
	"vyria-server/pkg/logger"
)

// Sampling temperatures per call. The extraction and grading calls run
// colder to reduce JSON format drift.
const (
	replyTemperature   = 0.7
	extractTemperature = 0.2
	gradeTemperature   = 0.3
)

const extractMaxTokens = 400
const gradeMaxTokens = 700

// Awarded when the learner's message is flawless: 100 base + 20 perfect bonus.
const perfectPoints = 120

const perfectFeedback = "Perfect! Not a single mistake — keep it up!"

// Service orchestrates one conversation turn: tutor reply, translation/hint
// extraction, correction/grading, and deterministic point scoring.
type Service struct {
	completer llm.Completer
}

func NewService(completer llm.Completer) *Service {
	return &Service{completer: completer}
}

// Run executes one turn. Only a failure of the primary tutor-reply call is
// returned as an error; the extraction and grading calls degrade to absent
// fields on failure.
func (s *Service) Run(ctx context.Context, req TurnRequest) (TurnResponse, error) {
	sysPrompt := BuildSystemPrompt(req.Language, req.Level, req.Roleplay, req.IsFirstMessage)

	msgs := make([]llm.Message, 0, len(req.Messages)+1)
	msgs = append(msgs, llm.Message{Role: "system", Content: sysPrompt})
	for _, m := range req.Messages {
		msgs = append(msgs, llm.Message{Role: m.Role, Content: m.Content})
	}

	reply, err := s.completer.Complete(ctx, llm.Request{
		Messages:    msgs,
		Temperature: replyTemperature,
		MaxTokens:   config.Cfg.Chat.ReplyMaxTokens,
	})
	if err != nil {
		logger.Error(err, "%v: tutor reply failed", config.ModuleChat)
		return TurnResponse{}, err
	}

	resp := TurnResponse{
		Message: strings.TrimSpace(reply.Text),
		Usage:   reply.Usage,
	}

	th := s.extractTranslationHint(ctx, req.Language, resp.Message)
	resp.Translation = th.Translation
	resp.Hint = th.Hint

	if n := len(req.Messages); n > 0 && req.Messages[n-1].Role == "user" {
		s.gradeUtterance(ctx, req.Language, req.Messages[n-1].Content, &resp)
	}

	return resp, nil
}

// extractTranslationHint runs the second completion call. Failures are
// logged and swallowed; both fields stay absent.
func (s *Service) extractTranslationHint(ctx context.Context, language, reply string) translationHint {
	result, err := s.completer.Complete(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: "system", Content: translationExtractionPrompt(language)},
			{Role: "user", Content: reply},
		},
		Temperature: extractTemperature,
		MaxTokens:   extractMaxTokens,
	})
	if err != nil {
		logger.Error(err, "%v: translation extraction failed", config.ModuleChat)
		return translationHint{}
	}
	th, err := decodeTranslationHint(result.Text)
	if err != nil {
		logger.Error(err, "%v: translation extraction returned bad JSON", config.ModuleChat)
		return translationHint{}
	}
	return th
}

// gradeUtterance runs the third completion call against the learner's most
// recent message and fills correction, grade and points on the response.
// Failures are logged and swallowed; correction and grade stay absent and
// no points are awarded.
func (s *Service) gradeUtterance(ctx context.Context, language, utterance string, resp *TurnResponse) {
	result, err := s.completer.Complete(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: "system", Content: gradingPrompt(language)},
			{Role: "user", Content: utterance},
		},
		Temperature: gradeTemperature,
		MaxTokens:   gradeMaxTokens,
	})
	if err != nil {
		logger.Error(err, "%v: grading call failed", config.ModuleChat)
		return
	}
	g, err := decodeGrading(result.Text)
	if err != nil {
		logger.Error(err, "%v: grading returned bad JSON", config.ModuleChat)
		return
	}

	resp.Correction = &CorrectionAnalysis{
		HasErrors:   g.HasErrors,
		Corrected:   g.Corrected,
		Mistakes:    g.Mistakes,
		Feedback:    g.Feedback,
		Suggestions: g.Suggestions,
	}

	if g.HasErrors || g.Grade.Score < 100 {
		grade := g.Grade
		resp.Grade = &grade
		resp.Points = pointsFor(g.Grade.Score)
	} else {
		// Flawless message: synthesize the perfect grade regardless of the
		// model's literal wording.
		resp.Grade = &Grade{Letter: "A+", Score: 100, Feedback: perfectFeedback}
		resp.Points = perfectPoints
	}
}

// pointsFor converts a 0-100 score into points: partial credit in steps of
// ten plus a flat attempt bonus of five.
func pointsFor(score int) int {
	return score/10*10 + 5
}
