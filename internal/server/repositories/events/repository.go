package events

import (
	"context"

	"github.com/dmitrijs2005/timeline/internal/models"
)

type Repository interface {
	Create(ctx context.Context, e *models.Event) error
	Get(ctx context.Context, id string) (*models.Event, error)
	GetForUpdate(ctx context.Context, id string) (*models.Event, error)
	Update(ctx context.Context, e *models.Event) error
	List(ctx context.Context) ([]*models.Event, error)
}
