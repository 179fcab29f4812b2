package interfaces

import (
	"context"

	"autorent/internal/models"
	"autorent/internal/utils"
)

type ContactRepository interface {
	Create(ctx context.Context, submission *models.ContactSubmission) error
	List(ctx context.Context, params *utils.PaginationParams) ([]*models.ContactSubmission, int64, error)
}
