// Package generator talks to the hosted language model behind enrichment.
package generator

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.0-flash"

// Format tells the model what shape of answer is expected.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// Prompt is a single-turn request to the model.
type Prompt struct {
	System string
	User   string
	Format Format
}

// GenAI generates text with Google's Gemini API.
type GenAI struct {
	client *genai.Client
	model  string
}

// NewGenAI builds a client for apiKey. An empty model selects DefaultModel.
func NewGenAI(ctx context.Context, apiKey, model string) (*GenAI, error) {
	if apiKey == "" {
		return nil, errors.New("genai API key is required")
	}
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GenAI{client: client, model: model}, nil
}

func (g *GenAI) Model() string {
	return g.model
}

// Generate returns the concatenated text parts of the first candidate.
func (g *GenAI) Generate(ctx context.Context, p Prompt) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.2),
	}
	if p.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(p.System, genai.RoleUser)
	}
	if p.Format == FormatJSON {
		cfg.ResponseMIMEType = "application/json"
	}

	contents := []*genai.Content{
		genai.NewContentFromText(p.User, genai.RoleUser),
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("genai generate failed: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return "", errors.New("genai returned no candidates")
	}
	return resp.Text(), nil
}
