package dto

// CreatedResponse acknowledges a newly stored resource.
type CreatedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
}

// MessageResponse acknowledges an operation without a payload.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse is the envelope for every 4xx/5xx response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ValidationErrorResponse lists the offending fields of a rejected payload.
type ValidationErrorResponse struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

// InvalidCompanyTypeResponse tells the caller which company types are accepted.
type InvalidCompanyTypeResponse struct {
	Detail     string   `json:"detail"`
	ValidTypes []string `json:"valid_types"`
}
