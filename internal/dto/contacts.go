package dto

import "github.com/castromatias32878-collab/WebVastum2025/internal/entity"

// ContactRequest captures the landing page form. Pointer fields distinguish
// an absent value from an empty one.
type ContactRequest struct {
	Nombre      *string `json:"nombre" validate:"required,min=2"`
	Email       *string `json:"email" validate:"required,contact_email"`
	Telefono    *string `json:"telefono" validate:"required,min=5"`
	Empresa     *string `json:"empresa" validate:"required,min=2"`
	TipoEmpresa *string `json:"tipoEmpresa"`
	Mensaje     *string `json:"mensaje"`
}

// ContactListResponse is returned by GET /api/contactos.
type ContactListResponse struct {
	Success   bool             `json:"success"`
	Contactos []entity.Contact `json:"contactos"`
	Total     int              `json:"total"`
}
