package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/asemic/api/http/presenter"
	"github.com/artem13815/asemic/pkg/generation"
)

// GenerateRequest is the form the UI posts. JSON and urlencoded bodies are
// both accepted.
type GenerateRequest struct {
	Prompt      string   `json:"prompt" form:"prompt"`
	Model       string   `json:"model" form:"model"`
	Colors      []string `json:"colors" form:"colors"`
	StrokeWidth float64  `json:"strokeWidth" form:"strokeWidth"`
	Complexity  string   `json:"complexity" form:"complexity"`
	Blueprint   bool     `json:"blueprint" form:"blueprint"`
	Remix       bool     `json:"remix" form:"remix"`
}

// GenerateResponse is a generation.Result plus what the browser needs to
// download the file.
type GenerateResponse struct {
	generation.Result
	DownloadURL string `json:"downloadUrl,omitempty"`
	ElapsedMs   int64  `json:"elapsedMs"`
}

type GenerateHandler struct {
	svc        generation.UseCase
	filesRoute string
}

// NewGenerateHandler builds download links as <filesRoute>/<fileId>.
func NewGenerateHandler(svc generation.UseCase, filesRoute string) *GenerateHandler {
	return &GenerateHandler{svc: svc, filesRoute: filesRoute}
}

// Generate runs one generation.
// @Summary     Generate an asemic entity
// @Description Asks the chat model for an SVG, retrying until one can be extracted. When every attempt fails the response still carries a placeholder SVG with ok=false.
// @Tags        generation
// @Accept      json
// @Produce     json
// @Param       request body     GenerateRequest true "Prompt and style"
// @Success     200     {object} GenerateResponse
// @Failure     400     {object} presenter.ErrorResponse "Empty prompt or malformed body"
// @Failure     429     {object} presenter.ErrorResponse "Rate limited"
// @Router      /generate [post]
func (h *GenerateHandler) Generate(c *fiber.Ctx) error {
	var req GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid request body")
	}
	res, err := h.svc.Generate(c.Context(), generation.Request{
		Prompt:      req.Prompt,
		Model:       req.Model,
		Colors:      req.Colors,
		StrokeWidth: req.StrokeWidth,
		Complexity:  req.Complexity,
		Blueprint:   req.Blueprint,
		Remix:       req.Remix,
	})
	if err != nil {
		if errors.Is(err, generation.ErrEmptyPrompt) {
			return presenter.Error(c, http.StatusBadRequest, "Please enter a description for your asemic entity")
		}
		return presenter.Err(c, err)
	}
	out := GenerateResponse{Result: res, ElapsedMs: res.Elapsed.Milliseconds()}
	if res.FileID != "" {
		out.DownloadURL = h.filesRoute + "/" + res.FileID
	}
	return presenter.JSON(c, http.StatusOK, out)
}
