package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/castromatias32878-collab/WebVastum2025/internal/dto"
	"github.com/castromatias32878-collab/WebVastum2025/internal/entity"
	"github.com/castromatias32878-collab/WebVastum2025/internal/metrics"
	"github.com/castromatias32878-collab/WebVastum2025/internal/repository"
)

var logoFields = []string{"id", "nombre", "imagen_base64", "created_at"}

// LogosService manages the partner logo gallery.
type LogosService struct {
	store     repository.DocumentStore
	listLimit int64
	now       func() time.Time
}

// NewLogosService creates a new instance of LogosService. A non-positive
// limit falls back to DefaultListLimit.
func NewLogosService(store repository.DocumentStore, listLimit int64) *LogosService {
	if listLimit <= 0 {
		listLimit = DefaultListLimit
	}
	return &LogosService{store: store, listLimit: listLimit, now: time.Now}
}

// Create stores a logo and returns its id. The image is kept as received.
func (s *LogosService) Create(ctx context.Context, req dto.LogoRequest) (string, error) {
	if err := ValidateLogoShape(req); err != nil {
		return "", err
	}

	logo := entity.Logo{
		ID:           uuid.NewString(),
		Nombre:       *req.Nombre,
		ImagenBase64: *req.ImagenBase64,
		CreatedAt:    entity.NewTimestamp(s.now()),
	}
	if _, err := s.store.Insert(ctx, repository.CollectionLogos, logo); err != nil {
		return "", fmt.Errorf("store logo: %w", err)
	}

	metrics.LogosCreated.Inc()
	log.Info().Str("logo_id", logo.ID).Str("nombre", logo.Nombre).Msg("logo added")
	return logo.ID, nil
}

// List returns every logo, oldest first.
func (s *LogosService) List(ctx context.Context) ([]entity.Logo, error) {
	logos := make([]entity.Logo, 0)
	sort := repository.Sort{Field: "created_at", Direction: repository.Ascending}
	if err := s.store.FindProjected(ctx, repository.CollectionLogos, repository.Filter{}, logoFields, sort, s.listLimit, &logos); err != nil {
		return nil, fmt.Errorf("list logos: %w", err)
	}
	return logos, nil
}

// Delete removes the logo with the given id.
func (s *LogosService) Delete(ctx context.Context, id string) error {
	deleted, err := s.store.DeleteByKey(ctx, repository.CollectionLogos, "id", id)
	if err != nil {
		return fmt.Errorf("delete logo: %w", err)
	}
	if deleted == 0 {
		return ErrLogoNotFound
	}

	metrics.LogosDeleted.Inc()
	log.Info().Str("logo_id", id).Msg("logo deleted")
	return nil
}
