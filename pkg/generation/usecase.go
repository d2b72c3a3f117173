package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/asemic/pkg/artifact"
	"github.com/artem13815/asemic/pkg/history"
	"github.com/artem13815/asemic/pkg/llm"
	"github.com/artem13815/asemic/pkg/studio"
	"github.com/artem13815/asemic/pkg/svg"
)

// DefaultMaxAttempts bounds the retry loop when Options leaves it unset.
const DefaultMaxAttempts = 3

// UseCase is what the HTTP layer needs from the generator.
type UseCase interface {
	Generate(ctx context.Context, req Request) (Result, error)
}

// Options tunes a Service. Zero values pick defaults.
type Options struct {
	MaxAttempts    int
	MaxPromptChars int
	History        history.Repository
	Logger         *slog.Logger
	Now            func() time.Time
}

// Service turns a Request into an SVG by asking the chat model until an SVG
// can be extracted or the attempt budget runs out.
type Service struct {
	llm            llm.ChatModel
	catalog        *studio.Catalog
	store          artifact.Store
	history        history.Repository
	log            *slog.Logger
	now            func() time.Time
	maxAttempts    int
	maxPromptChars int
}

func NewService(model llm.ChatModel, catalog *studio.Catalog, store artifact.Store, opts Options) *Service {
	s := &Service{
		llm:            model,
		catalog:        catalog,
		store:          store,
		history:        opts.History,
		log:            opts.Logger,
		now:            opts.Now,
		maxAttempts:    opts.MaxAttempts,
		maxPromptChars: opts.MaxPromptChars,
	}
	if s.maxAttempts <= 0 {
		s.maxAttempts = DefaultMaxAttempts
	}
	if s.maxPromptChars <= 0 {
		s.maxPromptChars = 2000
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// MaxAttempts is the configured attempt budget.
func (s *Service) MaxAttempts() int { return s.maxAttempts }

// Generate validates req and runs the retry loop. Only validation errors are
// returned; backend and extraction failures end up in a fallback Result.
func (s *Service) Generate(ctx context.Context, req Request) (Result, error) {
	p, err := resolve(req, s.catalog, s.maxPromptChars)
	if err != nil {
		return Result{}, err
	}
	if r, ok := s.llm.(llm.ModelResolver); ok {
		p.Model = r.ResolveModel(p.Model)
	}
	s.log.Info("generating asemic entity",
		"model", p.Model, "complexity", p.Complexity.Name, "stroke", p.StrokeWidth, "blueprint", p.Blueprint)

	out := s.run(ctx, p)
	res := Result{
		Model:       p.Model,
		Complexity:  p.Complexity.Name,
		Palette:     p.Palette,
		StrokeWidth: p.StrokeWidth,
		Attempts:    out.Attempts,
		MaxAttempts: s.maxAttempts,
		Elapsed:     out.Elapsed,
		Blueprint:   out.Blueprint,
	}

	var artifactID uuid.UUID
	switch out.Kind {
	case Success:
		res.OK = true
		res.SVG = svg.Normalize(out.SVG)
		res.Status = fmt.Sprintf("Generated in %.1f seconds using %s (attempt %d/%d)",
			out.Elapsed.Seconds(), p.Model, out.Attempts, s.maxAttempts)
		a, err := s.store.Save(ctx, res.SVG)
		if err != nil {
			s.log.Warn("failed to save svg", "err", err)
			res.Status += fmt.Sprintf("; download unavailable: %v", err)
		} else {
			artifactID = a.ID
			res.FileID = a.ID.String()
			res.FilePath = a.Path
		}
		s.log.Info("generated", "model", p.Model, "attempts", out.Attempts, "elapsed", out.Elapsed.Round(time.Millisecond))
	case Exhausted:
		msg := "unknown error"
		if out.LastErr != nil {
			msg = out.LastErr.Error()
		}
		res.SVG = svg.Fallback(msg)
		res.Error = msg
		res.Status = fmt.Sprintf("Generation failed after %d attempts: %s", out.Attempts, msg)
		s.log.Error("generation exhausted", "model", p.Model, "attempts", out.Attempts, "err", out.LastErr)
	}

	s.record(ctx, p, res, artifactID)
	return res, nil
}

// run is the bounded retry loop. Backend errors and extraction failures
// spend the same budget.
func (s *Service) run(ctx context.Context, p params) Outcome {
	start := s.now()
	var lastErr error
	var blueprint string
	for n := 1; n <= s.maxAttempts; n++ {
		if err := ctx.Err(); err != nil {
			return Outcome{Kind: Exhausted, Attempts: n - 1, Elapsed: s.now().Sub(start), LastErr: err, Blueprint: blueprint}
		}
		fragment, bp, err := s.attempt(ctx, p)
		if bp != "" {
			blueprint = bp
		}
		if err == nil {
			return Outcome{Kind: Success, SVG: fragment, Attempts: n, Elapsed: s.now().Sub(start), Blueprint: blueprint}
		}
		lastErr = err
		s.log.Warn("attempt failed", "attempt", n, "of", s.maxAttempts, "err", err)
	}
	return Outcome{Kind: Exhausted, Attempts: s.maxAttempts, Elapsed: s.now().Sub(start), LastErr: lastErr, Blueprint: blueprint}
}

func (s *Service) attempt(ctx context.Context, p params) (fragment, blueprint string, err error) {
	user := buildUserPrompt(p)
	if p.Blueprint {
		blueprint, err = s.llm.Ask(ctx, p.Model, s.catalog.BlueprintPrompt, buildBlueprintPrompt(p))
		if err != nil {
			return "", "", fmt.Errorf("blueprint: %w", err)
		}
		user = buildRenderPrompt(p, blueprint)
	}
	raw, err := s.llm.Ask(ctx, p.Model, s.catalog.SystemPrompt, user)
	if err != nil {
		return "", blueprint, err
	}
	fragment, err = svg.Extract(raw)
	if err != nil {
		s.log.Debug("no svg in response", "chars", len(raw))
		return "", blueprint, err
	}
	return fragment, blueprint, nil
}

func (s *Service) record(ctx context.Context, p params, res Result, artifactID uuid.UUID) {
	if s.history == nil {
		return
	}
	e := history.Entry{
		ID:          uuid.New(),
		Prompt:      p.Prompt,
		Model:       p.Model,
		Complexity:  p.Complexity.Name,
		Colors:      p.Colors,
		StrokeWidth: p.StrokeWidth,
		Attempts:    res.Attempts,
		Status:      history.StatusOK,
		Error:       res.Error,
		ElapsedMs:   res.Elapsed.Milliseconds(),
		ArtifactID:  artifactID,
		CreatedAt:   s.now().UTC(),
	}
	if !res.OK {
		e.Status = history.StatusFailed
	}
	// The request may already be gone; the log entry should still land.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()
	if err := s.history.Create(ctx, e); err != nil && !errors.Is(err, context.Canceled) {
		s.log.Warn("failed to record generation", "err", err)
	}
}
