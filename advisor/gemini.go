package advisor

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Gemini is a Generator backed by Google's Gemini API.
type Gemini struct {
	client *genai.Client
	// Config is passed along every request, it can be nil.
	Config *genai.GenerateContentConfig
}

// NewGemini creates a Gemini generator. A nil cfg reads the credential and
// backend from the environment, as genai.NewClient does.
func NewGemini(ctx context.Context, cfg *genai.ClientConfig) (*Gemini, error) {
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("cannot create Gemini client: %w", err)
	}
	return &Gemini{client: client}, nil
}

// NewGeminiWithKey creates a Gemini generator on the Gemini API backend.
func NewGeminiWithKey(ctx context.Context, apiKey string) (*Gemini, error) {
	return NewGemini(ctx, &genai.ClientConfig{APIKey: apiKey, Backend: genai.BackendGeminiAPI})
}

// Generate implements Generator.
func (g *Gemini) Generate(ctx context.Context, model, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), g.Config)
	if err != nil {
		return "", fmt.Errorf("generate content with %s: %w", model, err)
	}
	return resp.Text(), nil
}
