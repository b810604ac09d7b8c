package client

import (
	"context"

	"github.com/dmitrijs2005/timeline/internal/models"
)

// Gateway is everything the editor and the views need from the event store.
type Gateway interface {
	Ping(ctx context.Context) error
	SubscribeToEvents(ctx context.Context, onUpdate func(*models.Snapshot)) (func(), error)
	CreateEvent(ctx context.Context, e *models.Event) (string, error)
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	UpdateEvent(ctx context.Context, id string, e *models.Event, mask []string) (*models.Event, error)
	ListEvents(ctx context.Context) ([]*models.Event, error)
	ListReferenceTags(ctx context.Context) ([]string, error)
	CreateReferenceTag(ctx context.Context, name string) (string, error)
	GetOverlayUploadURL(ctx context.Context, contentType string) (*OverlayUpload, error)
	Close() error
}

// OverlayUpload mirrors the server's presigned pair for one overlay image.
type OverlayUpload struct {
	Key       string
	UploadURL string
	ImageURL  string
}
