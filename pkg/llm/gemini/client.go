// Package gemini adapts Google's Gemini API to llm.ChatModel.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DefaultModel replaces model ids that belong to other backends.
const DefaultModel = "gemini-2.5-flash"

// Client generates text with the Gemini API.
type Client struct {
	client *genai.Client
	model  string
}

// New creates a Gemini client. baseURL is optional and only useful for proxies.
func New(ctx context.Context, apiKey, baseURL, model string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	if !isGeminiModel(model) {
		model = DefaultModel
	}
	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &Client{client: client, model: model}, nil
}

// Ask sends the user prompt with the system prompt as system instruction.
func (c *Client) Ask(ctx context.Context, model, systemPrompt, userPrompt string) (string, error) {
	model = c.ResolveModel(model)
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.9),
	}
	if strings.TrimSpace(systemPrompt) != "" {
		cfg.SystemInstruction = genai.NewContentFromText(systemPrompt, genai.RoleUser)
	}
	resp, err := c.client.Models.GenerateContent(ctx, model, genai.Text(userPrompt), cfg)
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", errors.New("no text returned by model")
	}
	return text, nil
}

// ResolveModel maps ids of other backends to the client's Gemini model.
func (c *Client) ResolveModel(model string) string {
	if isGeminiModel(model) {
		return model
	}
	return c.model
}

func isGeminiModel(name string) bool {
	name = strings.TrimPrefix(name, "models/")
	return strings.HasPrefix(name, "gemini-") || strings.HasPrefix(name, "gemma-")
}
