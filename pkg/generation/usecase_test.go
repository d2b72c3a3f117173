package generation

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/asemic/pkg/artifact"
	"github.com/artem13815/asemic/pkg/history"
	"github.com/artem13815/asemic/pkg/llm"
	"github.com/artem13815/asemic/pkg/studio"
	"github.com/artem13815/asemic/pkg/svg"
)

type call struct {
	model, system, user string
}

// scripted replies with the next entry on each call and repeats the last one.
type scripted struct {
	mu      sync.Mutex
	replies []reply
	calls   []call
}

type reply struct {
	text string
	err  error
}

func (s *scripted) Ask(_ context.Context, model, system, user string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, call{model, system, user})
	r := s.replies[min(len(s.calls), len(s.replies))-1]
	return r.text, r.err
}

type memHistory struct {
	mu      sync.Mutex
	entries []history.Entry
}

func (m *memHistory) Create(_ context.Context, e history.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, e)
	return nil
}

func (m *memHistory) List(context.Context, int, int) ([]history.Entry, error) {
	return m.entries, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newService(t *testing.T, model llm.ChatModel, opts Options) (*Service, *studio.Catalog) {
	t.Helper()
	cat, err := studio.Default()
	require.NoError(t, err)
	store, err := artifact.NewFileStore(t.TempDir())
	require.NoError(t, err)
	if opts.Logger == nil {
		opts.Logger = quietLogger()
	}
	return NewService(model, cat, store, opts), cat
}

func TestGenerateSpiralGalaxy(t *testing.T) {
	stub := &scripted{replies: []reply{{text: "noise <svg width='10' height='10'><circle/></svg> trailing"}}}
	s, cat := newService(t, stub, Options{})

	res, err := s.Generate(context.Background(), Request{
		Prompt:      "A spiral galaxy",
		Colors:      nil,
		StrokeWidth: 1.5,
		Complexity:  "Complex",
	})
	require.NoError(t, err)

	assert.True(t, res.OK)
	assert.Equal(t, "<svg width='10' height='10'><circle/></svg>", res.SVG)
	require.NotEmpty(t, res.FilePath)
	data, err := os.ReadFile(res.FilePath)
	require.NoError(t, err)
	assert.Equal(t, res.SVG, string(data))
	assert.NotEmpty(t, res.FileID)
	assert.Equal(t, 1, res.Attempts)
	assert.Equal(t, "Complex", res.Complexity)
	assert.Equal(t, "gpt-oss:20b", res.Model)

	require.Len(t, stub.calls, 1)
	c := stub.calls[0]
	assert.Equal(t, "gpt-oss:20b", c.model)
	assert.Equal(t, cat.SystemPrompt, c.system)
	assert.Contains(t, c.user, `"A spiral galaxy"`)
	assert.Contains(t, c.user, "Colors: Black(#000000), Gold(#FFD700)")
	assert.Contains(t, c.user, "Base stroke width: 1.5")
	assert.Contains(t, c.user, "8-12+ intricate elements, 5+ dynamic animations")
	assert.Contains(t, c.user, "from 0.75 to 4.5")
	assert.NotContains(t, c.user, "Remix mode")
}

func TestGenerateNormalizesUnsizedSVG(t *testing.T) {
	stub := &scripted{replies: []reply{{text: "<svg><g/></svg>"}}}
	s, _ := newService(t, stub, Options{})

	res, err := s.Generate(context.Background(), Request{Prompt: "x"})
	require.NoError(t, err)
	assert.Equal(t, `<svg viewBox="0 0 600 600" width="600" height="600"><g/></svg>`, res.SVG)
}

func TestGenerateExhaustsOnMissingSVG(t *testing.T) {
	stub := &scripted{replies: []reply{{text: "I would rather describe it in words."}}}
	s, _ := newService(t, stub, Options{})

	res, err := s.Generate(context.Background(), Request{Prompt: "A spiral galaxy"})
	require.NoError(t, err)

	assert.False(t, res.OK)
	assert.Len(t, stub.calls, DefaultMaxAttempts)
	assert.Equal(t, DefaultMaxAttempts, res.Attempts)
	assert.Equal(t, svg.Fallback(svg.ErrNoSVG.Error()), res.SVG)
	assert.Empty(t, res.FilePath)
	assert.Empty(t, res.FileID)
	assert.Equal(t, "Generation failed after 3 attempts: "+svg.ErrNoSVG.Error(), res.Status)
}

func TestGenerateCustomAttemptBudget(t *testing.T) {
	stub := &scripted{replies: []reply{{text: "nope"}}}
	s, _ := newService(t, stub, Options{MaxAttempts: 5})

	res, err := s.Generate(context.Background(), Request{Prompt: "x"})
	require.NoError(t, err)
	assert.Len(t, stub.calls, 5)
	assert.Equal(t, 5, res.MaxAttempts)
}

func TestGenerateUsesLastError(t *testing.T) {
	stub := &scripted{replies: []reply{
		{err: errors.New("connection refused")},
		{text: "no markup"},
		{err: errors.New("model overloaded")},
	}}
	s, _ := newService(t, stub, Options{})

	res, err := s.Generate(context.Background(), Request{Prompt: "x"})
	require.NoError(t, err)
	assert.Equal(t, svg.Fallback("model overloaded"), res.SVG)
	assert.Equal(t, "model overloaded", res.Error)
}

func TestGenerateRecoversAfterBackendError(t *testing.T) {
	stub := &scripted{replies: []reply{
		{err: errors.New("llm http 502: bad gateway")},
		{text: "<svg width=\"1\"></svg>"},
	}}
	var ticks int
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	now := func() time.Time {
		ticks++
		if ticks == 1 {
			return t0
		}
		return t0.Add(1200 * time.Millisecond)
	}
	s, _ := newService(t, stub, Options{Now: now})

	res, err := s.Generate(context.Background(), Request{Prompt: "x"})
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.Equal(t, 2, res.Attempts)
	assert.Equal(t, "Generated in 1.2 seconds using gpt-oss:20b (attempt 2/3)", res.Status)
}

func TestGenerateEmptyPrompt(t *testing.T) {
	stub := &scripted{replies: []reply{{text: "<svg></svg>"}}}
	s, _ := newService(t, stub, Options{})

	for _, p := range []string{"", "   \n\t"} {
		_, err := s.Generate(context.Background(), Request{Prompt: p})
		assert.ErrorIs(t, err, ErrEmptyPrompt)
	}
	assert.Empty(t, stub.calls)
}

func TestGenerateResolvesUnknownValues(t *testing.T) {
	stub := &scripted{replies: []reply{{text: "<svg width='1'></svg>"}}}
	s, _ := newService(t, stub, Options{})

	res, err := s.Generate(context.Background(), Request{
		Prompt:      "x",
		Model:       "mystery-model",
		Colors:      []string{"Teal", "Plaid"},
		Complexity:  "Baroque",
		StrokeWidth: 99,
	})
	require.NoError(t, err)
	assert.Equal(t, "gpt-oss:20b", res.Model)
	assert.Equal(t, "Moderate", res.Complexity)
	assert.Equal(t, "Teal(#008080)", res.Palette)
	assert.Equal(t, 5.0, res.StrokeWidth)
	assert.Contains(t, stub.calls[0].user, "5-8 layered elements")
	assert.NotContains(t, stub.calls[0].user, "Plaid")
}

func TestGenerateKeepsKnownModel(t *testing.T) {
	stub := &scripted{replies: []reply{{text: "<svg width='1'></svg>"}}}
	s, _ := newService(t, stub, Options{})

	res, err := s.Generate(context.Background(), Request{Prompt: "x", Model: "gpt-oss-120b"})
	require.NoError(t, err)
	assert.Equal(t, "gpt-oss-120b", stub.calls[0].model)
	assert.Equal(t, "gpt-oss-120b", res.Model)
}

func TestGenerateTruncatesLongPrompt(t *testing.T) {
	stub := &scripted{replies: []reply{{text: "<svg width='1'></svg>"}}}
	s, _ := newService(t, stub, Options{MaxPromptChars: 10})

	_, err := s.Generate(context.Background(), Request{Prompt: strings.Repeat("é", 50)})
	require.NoError(t, err)
	assert.Contains(t, stub.calls[0].user, `"`+strings.Repeat("é", 10)+`"`)
	assert.NotContains(t, stub.calls[0].user, strings.Repeat("é", 11))
}

func TestGenerateBlueprintMode(t *testing.T) {
	stub := &scripted{replies: []reply{
		{text: "<entity><ring/></entity>"},
		{text: "<svg width='3'><circle/></svg>"},
	}}
	s, cat := newService(t, stub, Options{})

	res, err := s.Generate(context.Background(), Request{Prompt: "A labyrinth", Blueprint: true, Remix: true})
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.Equal(t, "<entity><ring/></entity>", res.Blueprint)

	require.Len(t, stub.calls, 2)
	assert.Equal(t, cat.BlueprintPrompt, stub.calls[0].system)
	assert.Contains(t, stub.calls[0].user, "XML-like structure")
	assert.Equal(t, cat.SystemPrompt, stub.calls[1].system)
	assert.Contains(t, stub.calls[1].user, "Blueprint:\n<entity><ring/></entity>")
	assert.Contains(t, stub.calls[1].user, "Remix mode")
}

func TestGenerateBlueprintFailureSpendsBudget(t *testing.T) {
	stub := &scripted{replies: []reply{{err: errors.New("timeout")}}}
	s, _ := newService(t, stub, Options{})

	res, err := s.Generate(context.Background(), Request{Prompt: "x", Blueprint: true})
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Len(t, stub.calls, 3, "render step never reached")
	assert.Equal(t, "blueprint: timeout", res.Error)
}

func TestGenerateCancelledContext(t *testing.T) {
	stub := &scripted{replies: []reply{{text: "<svg></svg>"}}}
	s, _ := newService(t, stub, Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := s.Generate(ctx, Request{Prompt: "x"})
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Empty(t, stub.calls)
	assert.Equal(t, 0, res.Attempts)
	assert.Equal(t, svg.Fallback(context.Canceled.Error()), res.SVG)
}

func TestGenerateRecordsHistory(t *testing.T) {
	hist := &memHistory{}
	ok := &scripted{replies: []reply{{text: "<svg width='1'></svg>"}}}
	s, _ := newService(t, ok, Options{History: hist})
	res, err := s.Generate(context.Background(), Request{Prompt: "ok one", Complexity: "Simple"})
	require.NoError(t, err)

	bad := &scripted{replies: []reply{{err: errors.New("down")}}}
	s2, _ := newService(t, bad, Options{History: hist, MaxAttempts: 2})
	_, err = s2.Generate(context.Background(), Request{Prompt: "bad one"})
	require.NoError(t, err)

	require.Len(t, hist.entries, 2)
	first, second := hist.entries[0], hist.entries[1]
	assert.Equal(t, history.StatusOK, first.Status)
	assert.Equal(t, "ok one", first.Prompt)
	assert.Equal(t, "Simple", first.Complexity)
	assert.Equal(t, []string{"Black", "Gold"}, first.Colors)
	assert.Equal(t, res.FileID, first.ArtifactID.String())

	assert.Equal(t, history.StatusFailed, second.Status)
	assert.Equal(t, 2, second.Attempts)
	assert.Equal(t, "down", second.Error)
	assert.Equal(t, uuid.Nil, second.ArtifactID)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "success", Success.String())
	assert.Equal(t, "exhausted", Exhausted.String())
}

// remapping serves every request with one fixed model.
type remapping struct {
	scripted
	served string
}

func (r *remapping) ResolveModel(string) string { return r.served }

func TestGenerateReportsServedModel(t *testing.T) {
	stub := &remapping{served: "gemini-2.5-flash"}
	stub.replies = []reply{{text: "<svg width='1'></svg>"}}
	hist := &memHistory{}
	s, _ := newService(t, stub, Options{History: hist})

	res, err := s.Generate(context.Background(), Request{Prompt: "x", Model: "gpt-oss:20b"})
	require.NoError(t, err)
	require.Len(t, stub.calls, 1)
	assert.Equal(t, "gemini-2.5-flash", stub.calls[0].model)
	assert.Equal(t, "gemini-2.5-flash", res.Model)
	assert.Contains(t, res.Status, "using gemini-2.5-flash (attempt 1/3)")
	require.Len(t, hist.entries, 1)
	assert.Equal(t, "gemini-2.5-flash", hist.entries[0].Model)
}

func TestPromptTextIsNotEscaped(t *testing.T) {
	const prompt = "a \"quiet\" glyph\nover water"
	for _, blueprint := range []bool{false, true} {
		stub := &scripted{replies: []reply{{text: "<svg width='1'></svg>"}}}
		s, _ := newService(t, stub, Options{})

		_, err := s.Generate(context.Background(), Request{Prompt: prompt, Blueprint: blueprint})
		require.NoError(t, err)
		// The first call carries the prompt in both modes.
		user := stub.calls[0].user
		assert.Contains(t, user, `"`+prompt+`"`)
		assert.NotContains(t, user, `\n`)
		assert.NotContains(t, user, `\"`)
	}
}
