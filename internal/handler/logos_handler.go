package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/castromatias32878-collab/WebVastum2025/internal/dto"
	"github.com/castromatias32878-collab/WebVastum2025/internal/service"
)

var logoErrors = struct {
	create errorMessages
	list   errorMessages
	delete errorMessages
}{
	create: errorMessages{Internal: "Error al agregar el logo"},
	list:   errorMessages{Internal: "Error al obtener los logos"},
	delete: errorMessages{NotFound: "Logo no encontrado", Internal: "Error al eliminar el logo"},
}

// LogosHandler exposes the logo gallery endpoints.
type LogosHandler struct {
	service *service.LogosService
}

// NewLogosHandler creates a new handler instance.
func NewLogosHandler(service *service.LogosService) *LogosHandler {
	return &LogosHandler{service: service}
}

// Create handles POST /api/logos requests.
func (h *LogosHandler) Create(c echo.Context) error {
	var req dto.LogoRequest
	if err := bindBody(c, &req); err != nil {
		return writeError(c, err, logoErrors.create)
	}

	id, err := h.service.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err, logoErrors.create)
	}

	return Success(c, http.StatusCreated, dto.CreatedResponse{
		Success: true,
		Message: "Logo agregado exitosamente",
		ID:      id,
	})
}

// List handles GET /api/logos requests.
func (h *LogosHandler) List(c echo.Context) error {
	logos, err := h.service.List(c.Request().Context())
	if err != nil {
		return writeError(c, err, logoErrors.list)
	}

	return Success(c, http.StatusOK, dto.LogoListResponse{
		Success: true,
		Logos:   logos,
		Total:   len(logos),
	})
}

// Delete handles DELETE /api/logos/:logo_id requests.
func (h *LogosHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("logo_id")); err != nil {
		return writeError(c, err, logoErrors.delete)
	}

	return Success(c, http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: "Logo eliminado exitosamente",
	})
}
