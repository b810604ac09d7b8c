package references

import (
	"context"

	"github.com/dmitrijs2005/timeline/internal/models"
)

type Repository interface {
	Create(ctx context.Context, tag *models.ReferenceTag) error
	List(ctx context.Context) ([]*models.ReferenceTag, error)
}
