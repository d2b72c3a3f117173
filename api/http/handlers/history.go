package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/asemic/api/http/presenter"
	"github.com/artem13815/asemic/pkg/history"
)

// HistoryHandler lists past generations. repo may be nil when no database
// is configured.
type HistoryHandler struct{ repo history.Repository }

func NewHistoryHandler(repo history.Repository) *HistoryHandler { return &HistoryHandler{repo: repo} }

// List returns generation metadata, newest first.
// @Summary List past generations
// @Tags    history
// @Produce json
// @Param   limit  query int false "Page size (1..200, default 20)"
// @Param   offset query int false "Offset"
// @Success 200 {object} map[string]any
// @Failure 404 {object} presenter.ErrorResponse "History disabled"
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /generations [get]
func (h *HistoryHandler) List(c *fiber.Ctx) error {
	if h.repo == nil {
		return presenter.Error(c, http.StatusNotFound, "generation history is disabled")
	}
	limit, offset := parseLimitOffset(c, 20)
	items, err := h.repo.List(c.Context(), limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list generations")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"items":  items,
		"limit":  limit,
		"offset": offset,
	})
}
