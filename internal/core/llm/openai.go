package llm

import (
	"context"
	"errors"
	"strings"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatChoice struct {
	Index   int `json:"index"`
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
	FinishReason string `json:"finish_reason"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
	Usage   Usage        `json:"usage"`
	Error   *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// OpenAI completes via the OpenAI chat-completions endpoint.
type OpenAI struct {
	client openai.Client
	model  string
}

func NewOpenAI(key, model string) (*OpenAI, error) {
	if key == "" {
		return nil, errors.New("missing openai key")
	}
	return &OpenAI{
		client: openai.NewClient(option.WithAPIKey(key)),
		model:  model,
	}, nil
}

func (o *OpenAI) Complete(ctx context.Context, req Request) (Result, error) {
	body := chatRequest{
		Model:       o.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	for _, m := range req.Messages {
		body.Messages = append(body.Messages, chatMessage{Role: m.Role, Content: m.Content})
	}

	var out chatResponse
	if err := o.client.Post(ctx, "/chat/completions", body, &out); err != nil {
		return Result{}, err
	}
	if out.Error != nil {
		return Result{}, errors.New(out.Error.Message)
	}
	if len(out.Choices) == 0 {
		return Result{}, errors.New("no choices returned")
	}
	return Result{
		Text:  strings.TrimSpace(out.Choices[0].Message.Content),
		Usage: out.Usage,
	}, nil
}
