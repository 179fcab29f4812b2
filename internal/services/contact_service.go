package services

import (
	"context"

	"autorent/internal/models"
	"autorent/internal/repositories/interfaces"
	"autorent/internal/utils"
	"autorent/pkg/logger"
)

// ContactService records messages from the public contact form for admins to
// read later.
type ContactService interface {
	SubmitMessage(ctx context.Context, submission *models.ContactSubmission) error
	ListMessages(ctx context.Context, params *utils.PaginationParams) ([]*models.ContactSubmission, int64, error)
}

type contactService struct {
	contactRepo interfaces.ContactRepository
	logger      *logger.Logger
}

func NewContactService(contactRepo interfaces.ContactRepository, log *logger.Logger) ContactService {
	return &contactService{
		contactRepo: contactRepo,
		logger:      log,
	}
}

func (s *contactService) SubmitMessage(ctx context.Context, submission *models.ContactSubmission) error {
	if err := s.contactRepo.Create(ctx, submission); err != nil {
		return err
	}

	s.logger.WithField("email", submission.Email).Info("contact form submitted")
	return nil
}

func (s *contactService) ListMessages(ctx context.Context, params *utils.PaginationParams) ([]*models.ContactSubmission, int64, error) {
	return s.contactRepo.List(ctx, params)
}
