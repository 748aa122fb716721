package dto

import "github.com/castromatias32878-collab/WebVastum2025/internal/entity"

// LogoRequest captures a new slider logo.
type LogoRequest struct {
	Nombre       *string `json:"nombre" validate:"required"`
	ImagenBase64 *string `json:"imagen_base64" validate:"required"`
}

// LogoListResponse is returned by GET /api/logos.
type LogoListResponse struct {
	Success bool          `json:"success"`
	Logos   []entity.Logo `json:"logos"`
	Total   int           `json:"total"`
}
