package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/timeline/internal/editor"
	"github.com/dmitrijs2005/timeline/internal/logging"
	"github.com/dmitrijs2005/timeline/internal/models"
	"github.com/dmitrijs2005/timeline/internal/server/repositories/repomanager"
)

// ReferenceService manages standalone reference tags.
type ReferenceService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewReferenceService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *ReferenceService {
	return &ReferenceService{db: db, repomanager: m, logger: logger.With("module", "references")}
}

func (s *ReferenceService) List(ctx context.Context) ([]*models.ReferenceTag, error) {
	return s.repomanager.References(s.db).List(ctx)
}

// Create stores a tag named name. Duplicate names yield common.ErrorAlreadyExists.
func (s *ReferenceService) Create(ctx context.Context, name string) (*models.ReferenceTag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &editor.ValidationError{Field: "name", Reason: "is required"}
	}

	tag := &models.ReferenceTag{ID: newID(), Name: name}
	if err := s.repomanager.References(s.db).Create(ctx, tag); err != nil {
		return nil, fmt.Errorf("create reference tag: %w", err)
	}

	s.logger.Info(ctx, "reference tag created", "id", tag.ID, "name", tag.Name)
	return tag, nil
}
