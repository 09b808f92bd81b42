package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "financebook/internal/errors"
	"financebook/internal/models"
)

// recipientService handles recipient business logic.
type recipientService struct {
	db *gorm.DB
}

// NewRecipientService creates a new RecipientServicer.
func NewRecipientService(db *gorm.DB) RecipientServicer {
	return &recipientService{db: db}
}

// CreateRecipient creates a new recipient.
func (s *recipientService) CreateRecipient(name, address string) (*models.Recipient, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "recipient name is required")
	}

	recipient := &models.Recipient{
		Name:    name,
		Address: address,
	}
	if err := s.db.Create(recipient).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return recipient, nil
}

// ListRecipients retrieves all recipients.
func (s *recipientService) ListRecipients() ([]models.Recipient, error) {
	var recipients []models.Recipient
	if err := s.db.Find(&recipients).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return recipients, nil
}

// GetRecipientByID retrieves a recipient by ID.
func (s *recipientService) GetRecipientByID(id uint) (*models.Recipient, error) {
	var recipient models.Recipient
	if err := s.db.First(&recipient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecipientNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &recipient, nil
}
