package repository

import (
	"context"

	"threadline/web/internal/model"
)

// ContactRepository stores submissions of the public contact form.
type ContactRepository interface {
	Create(ctx context.Context, s *model.ContactSubmission) error
	Get(ctx context.Context, id string) (*model.ContactSubmission, error)
	// List returns submissions newest first.
	List(ctx context.Context, limit, offset int) ([]model.ContactSubmission, error)
	Count(ctx context.Context) (int, error)
}
