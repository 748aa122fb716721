package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/castromatias32878-collab/WebVastum2025/internal/dto"
)

const validationDetail = "Error de validación"

// Success writes payload as the JSON body of a successful response.
func Success(c echo.Context, status int, payload any) error {
	if status == 0 {
		status = http.StatusOK
	}
	return c.JSON(status, payload)
}

// Error writes the {"detail": ...} envelope shared by every failure.
func Error(c echo.Context, status int, detail string) error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return c.JSON(status, dto.ErrorResponse{Detail: detail})
}

// ValidationFailed writes a 422 listing the offending fields.
func ValidationFailed(c echo.Context, fields map[string]string) error {
	return c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponse{
		Detail: validationDetail,
		Fields: fields,
	})
}
