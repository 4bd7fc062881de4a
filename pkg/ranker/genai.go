package ranker

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const (
	temperature     = 0.8
	maxOutputTokens = 3000
)

// GenAICompleter is a Completer backed by the Gemini API.
type GenAICompleter struct {
	client *genai.Client
	model  string
}

func NewGenAICompleter(ctx context.Context, apiKey, model string) (*GenAICompleter, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GenAICompleter{client: client, model: model}, nil
}

func (g *GenAICompleter) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx,
		g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature:     genai.Ptr[float32](temperature),
			MaxOutputTokens: maxOutputTokens,
		},
	)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty completion from %s", g.model)
	}
	return text, nil
}
