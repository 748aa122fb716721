package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound is matched by every not-found error of the services.
	ErrNotFound = errors.New("not found")
	// ErrLogoNotFound is returned when no logo carries the requested id.
	ErrLogoNotFound = fmt.Errorf("logo %w", ErrNotFound)
)

// ShapeError reports payload fields that are missing or malformed. Fields maps
// the JSON field name to a human readable message.
type ShapeError struct {
	Fields map[string]string
}

func (e *ShapeError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "invalid payload: " + strings.Join(names, ", ")
}

// DomainError reports a well formed value outside the accepted domain.
type DomainError struct {
	Field   string
	Value   string
	Allowed []string
	Message string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s %q not allowed", e.Field, e.Value)
}
