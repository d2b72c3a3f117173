package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/asemic/api/http/presenter"
	"github.com/artem13815/asemic/pkg/artifact"
)

type FilesHandler struct{ store artifact.Store }

func NewFilesHandler(store artifact.Store) *FilesHandler { return &FilesHandler{store: store} }

// Download streams a saved SVG as an attachment.
// @Summary  Download a generated SVG
// @Tags     generation
// @Produce  image/svg+xml
// @Param    id  path   string true "File id returned by /generate"
// @Success  200 {file} file
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /files/{id} [get]
func (h *FilesHandler) Download(c *fiber.Ctx) error {
	rc, a, err := h.store.Open(c.Params("id"))
	if err != nil {
		return presenter.Err(c, err)
	}
	c.Attachment(a.Filename())
	c.Set(fiber.HeaderContentType, "image/svg+xml")
	// fasthttp closes rc once the body is written.
	return c.Status(http.StatusOK).SendStream(rc, int(a.Size))
}
