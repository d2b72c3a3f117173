package llm

import "context"

// ChatModel is a minimal abstraction for chat-based LLMs used by the domain.
// It intentionally hides concrete providers to preserve dependency direction.
type ChatModel interface {
	// Ask sends one system and one user message to model and returns the reply text.
	// An empty model lets the provider pick its configured default.
	Ask(ctx context.Context, model, systemPrompt, userPrompt string) (string, error)
}

// ChatModelFunc adapts a plain function to ChatModel.
type ChatModelFunc func(ctx context.Context, model, systemPrompt, userPrompt string) (string, error)

func (f ChatModelFunc) Ask(ctx context.Context, model, systemPrompt, userPrompt string) (string, error) {
	return f(ctx, model, systemPrompt, userPrompt)
}

// ModelResolver is implemented by backends that serve a different model than
// the one requested. Callers use it to report the model actually called.
type ModelResolver interface {
	ResolveModel(model string) string
}
