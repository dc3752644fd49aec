package http

import (
	"context"
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
	"github.com/jhoicas/ecommerce-admin-api/internal/infrastructure/storage"
)

// tempSaver lo cumple *storage.FileStore.
type tempSaver interface {
	SaveTemp(ctx context.Context, filename string, r io.Reader) (string, int64, error)
}

// UploadHandler recibe archivos y devuelve la referencia temporal.
type UploadHandler struct {
	store tempSaver
}

// NewUploadHandler construye el handler.
func NewUploadHandler(store tempSaver) *UploadHandler {
	return &UploadHandler{store: store}
}

// Upload godoc
// @Summary      Subir imagen (logo, imagen de producto, avatar)
// @Tags         uploads
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "imagen png, jpg, jpeg, gif, webp o svg"
// @Success      200   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Router       /api/uploads [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return domain.BadRequest("se requiere el archivo en el campo file")
	}
	f, err := fh.Open()
	if err != nil {
		return domain.Internal(err, "no se pudo leer el archivo subido")
	}
	defer f.Close()

	ref, size, err := h.store.SaveTemp(c.UserContext(), fh.Filename, f)
	switch {
	case errors.Is(err, storage.ErrInvalidPath):
		return domain.BadRequest("tipo de archivo no permitido: %s", fh.Filename)
	case errors.Is(err, storage.ErrTooLarge):
		return domain.BadRequest("el archivo supera el tamaño máximo permitido")
	case err != nil:
		return domain.Internal(err, "no se pudo guardar el archivo")
	}
	return c.JSON(dto.OK("archivo recibido", dto.UploadResponse{Reference: ref, Size: size}))
}
