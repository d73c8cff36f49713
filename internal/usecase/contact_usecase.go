package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"kalakruti_api/internal/domain/entities"
	"kalakruti_api/internal/domain/validation"
	"kalakruti_api/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidContact = errors.New("invalid contact details")
	ErrSaveContact    = errors.New("failed to save contact")
)

// ContactSubmission is the public contact form. Unlike the calculators, the
// phone number is any 10 digits.
type ContactSubmission struct {
	Name    string `json:"name" validate:"required,trimmed_min=2,alpha_space"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,ten_digits"`
	Message string `json:"message" validate:"required,trimmed_min=10"`
}

type IContactUseCase interface {
	Submit(ctx context.Context, s ContactSubmission) (entities.Contact, error)
}

type ContactUseCase struct {
	repo     interfaces.IContactRepository
	notifier interfaces.ILeadNotifier
	validate *validation.Validator
	log      *zap.Logger
}

var _ IContactUseCase = (*ContactUseCase)(nil)

func NewContactUseCase(repo interfaces.IContactRepository, notifier interfaces.ILeadNotifier, logger *zap.Logger) *ContactUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactUseCase{repo: repo, notifier: notifier, validate: validation.New(), log: logger}
}

func (u *ContactUseCase) Submit(ctx context.Context, s ContactSubmission) (entities.Contact, error) {
	if err := u.validate.Struct(s); err != nil {
		return entities.Contact{}, fmt.Errorf("%w: %w", ErrInvalidContact, err)
	}

	c := entities.Contact{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(s.Name),
		Email:     strings.TrimSpace(s.Email),
		Phone:     s.Phone,
		Message:   strings.TrimSpace(s.Message),
		CreatedAt: time.Now().UTC(),
	}

	saved, err := u.repo.Create(ctx, c)
	if err != nil {
		u.log.Error("[contact][usecase] save failed", zap.String("contact_id", c.ID), zap.Error(err))
		return entities.Contact{}, fmt.Errorf("%w: %w", ErrSaveContact, err)
	}
	u.log.Info("[contact][usecase] saved", zap.String("contact_id", saved.ID))

	if u.notifier != nil {
		if err := u.notifier.NotifyContact(ctx, saved); err != nil {
			u.log.Warn("[contact][usecase] lead notification failed", zap.String("contact_id", saved.ID), zap.Error(err))
		}
	}
	return saved, nil
}
