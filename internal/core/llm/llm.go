package llm

import (
	"context"
	"fmt"

	"vyria-server/config"
)

// Message is one chat-completion message in provider-neutral form.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request captures one completion call: full message list plus sampling knobs.
type Request struct {
	Messages    []Message
	Temperature float32
	MaxTokens   int
}

// Usage is the provider's token accounting for one call.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Result is the completed text plus usage accounting.
type Result struct {
	Text  string
	Usage Usage
}

// Completer issues one completion call against an external language model.
// Implementations do not retry; callers decide whether a failure is fatal.
type Completer interface {
	Complete(ctx context.Context, req Request) (Result, error)
}

// New constructs the configured provider client. Called once at bootstrap;
// the returned client is shared by all requests.
func New(ctx context.Context) (Completer, error) {
	switch config.Cfg.Provider {
	case config.ProviderOpenAI:
		return NewOpenAI(config.Cfg.OpenAI.Key, config.Cfg.OpenAI.Model)
	case config.ProviderGemini:
		return NewGemini(ctx, config.Cfg.Gemini.Key, config.Cfg.Gemini.Model)
	default:
		return nil, fmt.Errorf("unknown provider %q", config.Cfg.Provider)
	}
}
