package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"kalakruti_api/internal/domain/entities"
	"kalakruti_api/internal/domain/pricing"
	"kalakruti_api/internal/domain/validation"
	"kalakruti_api/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidEstimate  = errors.New("invalid estimate input")
	ErrInvalidKind      = errors.New("invalid estimate kind")
	ErrSaveEstimate     = errors.New("failed to save estimate")
	ErrListEstimates    = errors.New("failed to list estimates")
	ErrExportEstimates  = errors.New("failed to export estimates")
	ErrExportNotEnabled = errors.New("estimate export not configured")
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// HomeSubmission is a home lead: contact fields plus the raw calculator input.
// ClientPrice is whatever price the client showed the user; it is only
// compared against the recomputed one.
type HomeSubmission struct {
	Name         string            `json:"name" validate:"required,trimmed_min=2"`
	Email        string            `json:"email" validate:"required,email"`
	Phone        string            `json:"phone" validate:"required,indian_phone"`
	PropertyName string            `json:"propertyName" validate:"required,trimmed_min=2"`
	Estimate     pricing.HomeInput `json:"-" validate:"-"`
	ClientPrice  *float64          `json:"-" validate:"-"`
}

type KitchenSubmission struct {
	Name        string               `json:"name" validate:"required,trimmed_min=2,alpha_space"`
	Email       string               `json:"email" validate:"required,email"`
	Phone       string               `json:"phone" validate:"required,indian_phone"`
	City        string               `json:"city" validate:"required,trimmed_min=2,alpha_space"`
	Message     string               `json:"message"`
	Estimate    pricing.KitchenInput `json:"-" validate:"-"`
	ClientPrice *float64             `json:"-" validate:"-"`
}

type WardrobeSubmission struct {
	Name            string                `json:"name" validate:"required,trimmed_min=2"`
	Email           string                `json:"email" validate:"required,email"`
	Phone           string                `json:"phone" validate:"required,indian_phone"`
	PropertyName    string                `json:"propertyName" validate:"required,trimmed_min=2"`
	WhatsappUpdates bool                  `json:"whatsappUpdates"`
	Estimate        pricing.WardrobeInput `json:"-" validate:"-"`
	ClientPrice     *float64              `json:"-" validate:"-"`
}

// SubmitResult confirms a stored lead. PriceRange is only set for home
// estimates.
type SubmitResult struct {
	Estimate   entities.Estimate
	Message    string
	PriceRange *pricing.PriceRange
}

// IEstimateUseCase exposes the three calculators, lead submission and the
// admin listing.
type IEstimateUseCase interface {
	CalculateHome(in pricing.HomeInput) (pricing.HomeQuote, error)
	CalculateKitchen(in pricing.KitchenInput) (pricing.KitchenQuote, error)
	CalculateWardrobe(in pricing.WardrobeInput) (pricing.WardrobeQuote, error)
	SubmitHome(ctx context.Context, s HomeSubmission) (SubmitResult, error)
	SubmitKitchen(ctx context.Context, s KitchenSubmission) (SubmitResult, error)
	SubmitWardrobe(ctx context.Context, s WardrobeSubmission) (SubmitResult, error)
	ListEstimates(ctx context.Context, kind entities.EstimateKind, page, limit int) (entities.EstimatePage, error)
	ExportEstimates(ctx context.Context, kind entities.EstimateKind, page, limit int) ([]byte, error)
}

type EstimateUseCase struct {
	engine   *pricing.Engine
	repo     interfaces.IEstimateRepository
	notifier interfaces.ILeadNotifier
	exporter interfaces.IEstimateExporter
	validate *validation.Validator
	log      *zap.Logger
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

// NewEstimateUseCase wires the engine to its collaborators. notifier and
// exporter are optional.
func NewEstimateUseCase(
	engine *pricing.Engine,
	repo interfaces.IEstimateRepository,
	notifier interfaces.ILeadNotifier,
	exporter interfaces.IEstimateExporter,
	logger *zap.Logger,
) *EstimateUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EstimateUseCase{
		engine:   engine,
		repo:     repo,
		notifier: notifier,
		exporter: exporter,
		validate: validation.New(),
		log:      logger,
	}
}

func (u *EstimateUseCase) CalculateHome(in pricing.HomeInput) (pricing.HomeQuote, error) {
	q, err := u.engine.EstimateHome(in)
	if err != nil {
		return pricing.HomeQuote{}, fmt.Errorf("%w: %w", ErrInvalidEstimate, err)
	}
	return q, nil
}

func (u *EstimateUseCase) CalculateKitchen(in pricing.KitchenInput) (pricing.KitchenQuote, error) {
	q, err := u.engine.EstimateKitchen(in)
	if err != nil {
		return pricing.KitchenQuote{}, fmt.Errorf("%w: %w", ErrInvalidEstimate, err)
	}
	return q, nil
}

func (u *EstimateUseCase) CalculateWardrobe(in pricing.WardrobeInput) (pricing.WardrobeQuote, error) {
	q, err := u.engine.EstimateWardrobe(in)
	if err != nil {
		return pricing.WardrobeQuote{}, fmt.Errorf("%w: %w", ErrInvalidEstimate, err)
	}
	return q, nil
}

func (u *EstimateUseCase) SubmitHome(ctx context.Context, s HomeSubmission) (SubmitResult, error) {
	if err := u.validate.Struct(s); err != nil {
		return SubmitResult{}, fmt.Errorf("%w: %w", ErrInvalidContact, err)
	}
	q, err := u.CalculateHome(s.Estimate)
	if err != nil {
		return SubmitResult{}, err
	}
	u.checkClientPrice(entities.EstimateKindHome, s.ClientPrice, q.EstimatedPrice)

	e := entities.Estimate{
		Kind:         entities.EstimateKindHome,
		Name:         strings.TrimSpace(s.Name),
		Email:        strings.TrimSpace(s.Email),
		Phone:        s.Phone,
		PropertyName: strings.TrimSpace(s.PropertyName),
		Home: &entities.HomeDetails{
			BHK:          q.BHK,
			Size:         q.Size,
			Package:      q.Package,
			Rooms:        toEntityRooms(q.Rooms),
			MinPrice:     q.PriceRange.Min,
			MaxPrice:     q.PriceRange.Max,
			DisplayRange: q.PriceRange.DisplayRange,
		},
		EstimatedPrice: q.EstimatedPrice,
	}
	saved, err := u.save(ctx, e)
	if err != nil {
		return SubmitResult{}, err
	}

	pr := q.PriceRange
	return SubmitResult{
		Estimate:   saved,
		Message:    fmt.Sprintf("Thank you %s! Your home interior estimate is %s. We'll contact you soon.", saved.Name, pr.DisplayRange),
		PriceRange: &pr,
	}, nil
}

func (u *EstimateUseCase) SubmitKitchen(ctx context.Context, s KitchenSubmission) (SubmitResult, error) {
	if err := u.validate.Struct(s); err != nil {
		return SubmitResult{}, fmt.Errorf("%w: %w", ErrInvalidContact, err)
	}
	q, err := u.CalculateKitchen(s.Estimate)
	if err != nil {
		return SubmitResult{}, err
	}
	u.checkClientPrice(entities.EstimateKindKitchen, s.ClientPrice, q.EstimatedPrice)

	e := entities.Estimate{
		Kind:    entities.EstimateKindKitchen,
		Name:    strings.TrimSpace(s.Name),
		Email:   strings.TrimSpace(s.Email),
		Phone:   s.Phone,
		City:    strings.TrimSpace(s.City),
		Message: strings.TrimSpace(s.Message),
		Kitchen: &entities.KitchenDetails{
			Layout:       q.Layout,
			A:            q.A,
			B:            q.B,
			C:            q.C,
			Package:      q.Package,
			LinearFeet:   q.LinearFeet,
			AssumedWidth: q.AssumedWidth,
			Area:         q.Area,
			RatePerSqFt:  q.RatePerSqFt,
		},
		EstimatedPrice: q.EstimatedPrice,
	}
	saved, err := u.save(ctx, e)
	if err != nil {
		return SubmitResult{}, err
	}

	return SubmitResult{
		Estimate: saved,
		Message:  fmt.Sprintf("Thank you %s! Your kitchen estimate is ₹%s. We'll contact you soon.", saved.Name, pricing.FormatINR(saved.EstimatedPrice)),
	}, nil
}

func (u *EstimateUseCase) SubmitWardrobe(ctx context.Context, s WardrobeSubmission) (SubmitResult, error) {
	if err := u.validate.Struct(s); err != nil {
		return SubmitResult{}, fmt.Errorf("%w: %w", ErrInvalidContact, err)
	}
	q, err := u.CalculateWardrobe(s.Estimate)
	if err != nil {
		return SubmitResult{}, err
	}
	u.checkClientPrice(entities.EstimateKindWardrobe, s.ClientPrice, q.EstimatedPrice)

	e := entities.Estimate{
		Kind:            entities.EstimateKindWardrobe,
		Name:            strings.TrimSpace(s.Name),
		Email:           strings.TrimSpace(s.Email),
		Phone:           s.Phone,
		PropertyName:    strings.TrimSpace(s.PropertyName),
		WhatsappUpdates: s.WhatsappUpdates,
		Wardrobe: &entities.WardrobeDetails{
			Length:       q.Length,
			Height:       q.Height,
			Area:         q.Area,
			Type:         q.Type,
			Package:      q.Package,
			PricePerSqFt: q.PricePerSqFt,
		},
		EstimatedPrice: q.EstimatedPrice,
	}
	saved, err := u.save(ctx, e)
	if err != nil {
		return SubmitResult{}, err
	}

	return SubmitResult{
		Estimate: saved,
		Message:  fmt.Sprintf("Thank you %s! Your wardrobe estimate is ₹%s. We'll contact you soon.", saved.Name, pricing.FormatINR(saved.EstimatedPrice)),
	}, nil
}

// save assigns identity, stores the record and notifies sales. A failed
// notification is logged and otherwise ignored.
func (u *EstimateUseCase) save(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	e.ID = uuid.NewString()
	e.CreatedAt = time.Now().UTC()

	saved, err := u.repo.Create(ctx, e)
	if err != nil {
		u.log.Error("[estimate][usecase] save failed",
			zap.String("kind", string(e.Kind)), zap.String("estimate_id", e.ID), zap.Error(err))
		return entities.Estimate{}, fmt.Errorf("%w: %s: %w", ErrSaveEstimate, e.Kind, err)
	}
	u.log.Info("[estimate][usecase] saved",
		zap.String("kind", string(saved.Kind)), zap.String("estimate_id", saved.ID), zap.Int64("estimated_price", saved.EstimatedPrice))

	if u.notifier != nil {
		if err := u.notifier.NotifyEstimate(ctx, saved); err != nil {
			u.log.Warn("[estimate][usecase] lead notification failed",
				zap.String("estimate_id", saved.ID), zap.Error(err))
		}
	}
	return saved, nil
}

func (u *EstimateUseCase) checkClientPrice(kind entities.EstimateKind, client *float64, computed int64) {
	if client == nil {
		return
	}
	if math.Abs(*client-float64(computed)) >= 1 {
		u.log.Warn("[estimate][usecase] client price ignored",
			zap.String("kind", string(kind)), zap.Float64("client_price", *client), zap.Int64("computed_price", computed))
	}
}

// ListEstimates returns one page of a kind, newest first. Out-of-range page
// and limit values are clamped to the defaults.
func (u *EstimateUseCase) ListEstimates(ctx context.Context, kind entities.EstimateKind, page, limit int) (entities.EstimatePage, error) {
	if !kind.Valid() {
		return entities.EstimatePage{}, ErrInvalidKind
	}
	page, limit = NormalizePage(page, limit)

	total, err := u.repo.Count(ctx, kind)
	if err != nil {
		u.log.Error("[estimate][usecase] count failed", zap.String("kind", string(kind)), zap.Error(err))
		return entities.EstimatePage{}, fmt.Errorf("%w: %w", ErrListEstimates, err)
	}

	items := []entities.Estimate{}
	offset := (page - 1) * limit
	if offset < total {
		items, err = u.repo.List(ctx, kind, offset, limit)
		if err != nil {
			u.log.Error("[estimate][usecase] list failed", zap.String("kind", string(kind)), zap.Error(err))
			return entities.EstimatePage{}, fmt.Errorf("%w: %w", ErrListEstimates, err)
		}
	}

	return entities.EstimatePage{
		Items:      items,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: TotalPages(total, limit),
	}, nil
}

func (u *EstimateUseCase) ExportEstimates(ctx context.Context, kind entities.EstimateKind, page, limit int) ([]byte, error) {
	if u.exporter == nil {
		return nil, ErrExportNotEnabled
	}
	p, err := u.ListEstimates(ctx, kind, page, limit)
	if err != nil {
		return nil, err
	}
	out, err := u.exporter.Export(kind, p.Items)
	if err != nil {
		u.log.Error("[estimate][usecase] export failed", zap.String("kind", string(kind)), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrExportEstimates, err)
	}
	return out, nil
}

// NormalizePage applies the listing defaults: page < 1 becomes 1, limit < 1
// becomes DefaultLimit and limit is capped at MaxLimit.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

func TotalPages(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

func toEntityRooms(r *pricing.RoomCounts) *entities.RoomCounts {
	if r == nil {
		return nil
	}
	return &entities.RoomCounts{
		LivingRoom: r.LivingRoom,
		Kitchen:    r.Kitchen,
		Bedroom:    r.Bedroom,
		Bathroom:   r.Bathroom,
		Dining:     r.Dining,
	}
}
