package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/castromatias32878-collab/WebVastum2025/internal/dto"
	"github.com/castromatias32878-collab/WebVastum2025/internal/service"
)

var contactErrors = struct {
	create errorMessages
	list   errorMessages
}{
	create: errorMessages{Internal: "Error interno al procesar el contacto"},
	list:   errorMessages{Internal: "Error al obtener los contactos"},
}

// ContactsHandler exposes the contact form endpoints.
type ContactsHandler struct {
	service *service.ContactsService
}

// NewContactsHandler creates a new handler instance.
func NewContactsHandler(service *service.ContactsService) *ContactsHandler {
	return &ContactsHandler{service: service}
}

// Create handles POST /api/contacto requests.
func (h *ContactsHandler) Create(c echo.Context) error {
	var req dto.ContactRequest
	if err := bindBody(c, &req); err != nil {
		return writeError(c, err, contactErrors.create)
	}

	id, err := h.service.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err, contactErrors.create)
	}

	return Success(c, http.StatusCreated, dto.CreatedResponse{
		Success: true,
		Message: "Contacto registrado exitosamente",
		ID:      id,
	})
}

// List handles GET /api/contactos requests.
func (h *ContactsHandler) List(c echo.Context) error {
	contacts, err := h.service.List(c.Request().Context())
	if err != nil {
		return writeError(c, err, contactErrors.list)
	}

	return Success(c, http.StatusOK, dto.ContactListResponse{
		Success:   true,
		Contactos: contacts,
		Total:     len(contacts),
	})
}
