package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/castromatias32878-collab/WebVastum2025/internal/dto"
	"github.com/castromatias32878-collab/WebVastum2025/internal/entity"
	"github.com/castromatias32878-collab/WebVastum2025/internal/metrics"
	"github.com/castromatias32878-collab/WebVastum2025/internal/repository"
)

// DefaultListLimit caps list endpoints when no limit is configured.
const DefaultListLimit int64 = 1000

// DefaultCompanyTypes is the company type enumeration accepted by default.
var DefaultCompanyTypes = []string{
	"Municipalidad",
	"Empresa Privada",
	"Cooperativa",
	"Organismo Provincial",
	"Otro",
}

// ContactsService stores and lists landing page contact submissions.
type ContactsService struct {
	store        repository.DocumentStore
	companyTypes []string
	phoneRegion  string
	listLimit    int64
	now          func() time.Time
}

// ContactsOption configures optional behaviour of ContactsService.
type ContactsOption func(*ContactsService)

// WithCompanyTypes replaces the accepted company types. Empty lists are ignored.
func WithCompanyTypes(types []string) ContactsOption {
	return func(s *ContactsService) {
		if len(types) > 0 {
			s.companyTypes = append([]string(nil), types...)
		}
	}
}

// WithPhoneRegion sets the region used to normalise phone numbers.
func WithPhoneRegion(region string) ContactsOption {
	return func(s *ContactsService) {
		if region = strings.ToUpper(strings.TrimSpace(region)); region != "" {
			s.phoneRegion = region
		}
	}
}

// WithListLimit caps how many contacts List returns.
func WithListLimit(limit int64) ContactsOption {
	return func(s *ContactsService) {
		if limit > 0 {
			s.listLimit = limit
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) ContactsOption {
	return func(s *ContactsService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewContactsService creates a new instance of ContactsService.
func NewContactsService(store repository.DocumentStore, opts ...ContactsOption) *ContactsService {
	s := &ContactsService{
		store:        store,
		companyTypes: DefaultCompanyTypes,
		phoneRegion:  defaultPhoneRegion,
		listLimit:    DefaultListLimit,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CompanyTypes returns a copy of the accepted company types.
func (s *ContactsService) CompanyTypes() []string {
	return append([]string(nil), s.companyTypes...)
}

// Create validates req, stores it and returns the new contact id.
func (s *ContactsService) Create(ctx context.Context, req dto.ContactRequest) (string, error) {
	if err := ValidateContactShape(req); err != nil {
		return "", err
	}
	if err := ValidateCompanyType(*req.TipoEmpresa, s.companyTypes); err != nil {
		return "", err
	}

	contact := entity.Contact{
		ID:           uuid.NewString(),
		Nombre:       *req.Nombre,
		Email:        *req.Email,
		Telefono:     *req.Telefono,
		TelefonoE164: normalizePhone(*req.Telefono, s.phoneRegion),
		Empresa:      *req.Empresa,
		TipoEmpresa:  *req.TipoEmpresa,
		Mensaje:      req.Mensaje,
		CreatedAt:    entity.NewTimestamp(s.now()),
	}

	if _, err := s.store.Insert(ctx, repository.CollectionContacts, contact); err != nil {
		return "", fmt.Errorf("store contact: %w", err)
	}

	metrics.ContactsCreated.WithLabelValues(contact.TipoEmpresa).Inc()
	log.Info().Str("contact_id", contact.ID).Str("email", contact.Email).Msg("contact registered")
	return contact.ID, nil
}

// List returns stored contacts, newest first.
func (s *ContactsService) List(ctx context.Context) ([]entity.Contact, error) {
	contacts := make([]entity.Contact, 0)
	sort := repository.Sort{Field: "created_at", Direction: repository.Descending}
	if err := s.store.FindSorted(ctx, repository.CollectionContacts, sort, s.listLimit, &contacts); err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}
