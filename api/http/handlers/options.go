package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/asemic/api/http/presenter"
	"github.com/artem13815/asemic/pkg/studio"
)

// OptionsResponse is everything the form needs to render its controls.
type OptionsResponse struct {
	*studio.Catalog
	MaxAttempts    int  `json:"maxAttempts"`
	HistoryEnabled bool `json:"historyEnabled"`
}

type OptionsHandler struct {
	cat            *studio.Catalog
	maxAttempts    int
	historyEnabled bool
}

func NewOptionsHandler(cat *studio.Catalog, maxAttempts int, historyEnabled bool) *OptionsHandler {
	return &OptionsHandler{cat: cat, maxAttempts: maxAttempts, historyEnabled: historyEnabled}
}

// Options returns the studio catalogue.
// @Summary List models, colours, complexity presets and stroke range
// @Tags    studio
// @Produce json
// @Success 200 {object} OptionsResponse
// @Router  /options [get]
func (h *OptionsHandler) Options(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, OptionsResponse{
		Catalog:        h.cat,
		MaxAttempts:    h.maxAttempts,
		HistoryEnabled: h.historyEnabled,
	})
}

// Surprise returns a random prompt.
// @Summary Random prompt
// @Tags    studio
// @Produce json
// @Success 200 {object} map[string]string
// @Router  /surprise [get]
func (h *OptionsHandler) Surprise(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, fiber.Map{"prompt": h.cat.Surprise(nil)})
}
