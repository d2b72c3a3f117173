// Package provider picks the ChatModel implementation named by configuration.
package provider

import (
	"context"
	"fmt"

	"github.com/artem13815/asemic/pkg/config"
	"github.com/artem13815/asemic/pkg/llm"
	"github.com/artem13815/asemic/pkg/llm/gemini"
	"github.com/artem13815/asemic/pkg/llm/openai"
)

// New returns the chat backend for cfg.Provider. defaultModel is used when a
// request does not name one.
func New(ctx context.Context, cfg config.LLM, defaultModel string) (llm.ChatModel, error) {
	switch cfg.Provider {
	case "gemini":
		return gemini.New(ctx, cfg.APIKey, cfg.BaseURL, defaultModel)
	case "openai", "openrouter", "ollama", "lmstudio", "":
		return openai.New(cfg.APIKey, cfg.BaseURL, defaultModel, cfg.AppTitle, cfg.Referer, cfg.Timeout), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
