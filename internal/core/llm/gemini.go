package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Gemini completes via the Google Generative AI API.
type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, key, model string) (*Gemini, error) {
	if key == "" {
		return nil, errors.New("missing gemini key")
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(key))
	if err != nil {
		return nil, err
	}
	return &Gemini{client: cl, model: strings.TrimSpace(model)}, nil
}

func (g *Gemini) Complete(ctx context.Context, req Request) (Result, error) {
	m := g.client.GenerativeModel(g.model)
	if m == nil {
		return Result{}, fmt.Errorf("gemini: model is nil")
	}
	m.SetTemperature(req.Temperature)
	if req.MaxTokens > 0 {
		m.SetMaxOutputTokens(int32(req.MaxTokens))
	}

	// System messages become the system instruction; the rest is chat history.
	var sys []genai.Part
	var history []*genai.Content
	for _, msg := range req.Messages {
		switch msg.Role {
		case "system":
			sys = append(sys, genai.Text(msg.Content))
		case "assistant":
			history = append(history, &genai.Content{
				Role:  "model",
				Parts: []genai.Part{genai.Text(msg.Content)},
			})
		default:
			history = append(history, &genai.Content{
				Role:  "user",
				Parts: []genai.Part{genai.Text(msg.Content)},
			})
		}
	}
	if len(sys) > 0 {
		m.SystemInstruction = &genai.Content{Parts: sys}
	}

	// Gemini requires a final message to send; an opening roleplay turn has
	// no history yet, so nudge the model to start.
	last := genai.Part(genai.Text("Begin."))
	if n := len(history); n > 0 {
		if parts := history[n-1].Parts; len(parts) > 0 {
			last = parts[0]
		}
		history = history[:n-1]
	}

	cs := m.StartChat()
	cs.History = history
	resp, err := cs.SendMessage(ctx, last)
	if err != nil {
		return Result{}, err
	}

	txt := firstText(resp)
	if txt == "" {
		return Result{}, fmt.Errorf("gemini: empty response")
	}

	var usage Usage
	if resp.UsageMetadata != nil {
		usage = Usage{
			PromptTokens:     int(resp.UsageMetadata.PromptTokenCount),
			CompletionTokens: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(resp.UsageMetadata.TotalTokenCount),
		}
	}
	return Result{Text: strings.TrimSpace(txt), Usage: usage}, nil
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}
