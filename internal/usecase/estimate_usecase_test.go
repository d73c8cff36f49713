package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"kalakruti_api/internal/domain/entities"
	"kalakruti_api/internal/domain/pricing"
	"kalakruti_api/internal/domain/validation"
	mock_interfaces "kalakruti_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newEngine(t *testing.T) *pricing.Engine {
	t.Helper()
	tables, err := pricing.DefaultTables()
	if err != nil {
		t.Fatalf("default tables: %v", err)
	}
	return pricing.NewEngine(tables)
}

func validKitchenSubmission() KitchenSubmission {
	return KitchenSubmission{
		Name:     "Asha Rao",
		Email:    "asha@example.com",
		Phone:    "9876543210",
		City:     "Pune",
		Estimate: pricing.KitchenInput{Layout: pricing.LayoutStraight, A: 10, Package: "essentials"},
	}
}

func TestEstimateUseCase_Calculate(t *testing.T) {
	uc := NewEstimateUseCase(newEngine(t), nil, nil, nil, nil)

	t.Run("home", func(t *testing.T) {
		q, err := uc.CalculateHome(pricing.HomeInput{BHK: "2bhk", Package: "premium"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.EstimatedPrice != 1400000 {
			t.Fatalf("expected 1400000, got %d", q.EstimatedPrice)
		}
	})

	t.Run("invalid input is wrapped", func(t *testing.T) {
		_, err := uc.CalculateWardrobe(pricing.WardrobeInput{Length: 8, Height: 7, Type: "sliding", Package: "deluxe"})
		if !errors.Is(err, ErrInvalidEstimate) {
			t.Fatalf("expected ErrInvalidEstimate, got %v", err)
		}
		var verr *validation.Error
		if !errors.As(err, &verr) || !verr.Has("package") {
			t.Fatalf("expected package field error, got %v", err)
		}
	})

	t.Run("kitchen missing B", func(t *testing.T) {
		_, err := uc.CalculateKitchen(pricing.KitchenInput{Layout: pricing.LayoutLShaped, A: 8, Package: "premium"})
		var verr *validation.Error
		if !errors.Is(err, ErrInvalidEstimate) || !errors.As(err, &verr) || !verr.Has("B") {
			t.Fatalf("expected B field error, got %v", err)
		}
	})
}

func TestEstimateUseCase_SubmitKitchen(t *testing.T) {
	t.Run("invalid contact stores nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(newEngine(t), repo, nil, nil, nil)

		s := validKitchenSubmission()
		s.Phone = "1234567890"
		s.City = "P"

		_, err := uc.SubmitKitchen(context.Background(), s)
		if !errors.Is(err, ErrInvalidContact) {
			t.Fatalf("expected ErrInvalidContact, got %v", err)
		}
		var verr *validation.Error
		if !errors.As(err, &verr) || !verr.Has("phone") || !verr.Has("city") {
			t.Fatalf("expected phone and city errors, got %v", err)
		}
	})

	t.Run("invalid estimate stores nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(newEngine(t), repo, nil, nil, nil)

		s := validKitchenSubmission()
		s.Estimate.Layout = pricing.LayoutUShaped
		s.Estimate.B = 8

		_, err := uc.SubmitKitchen(context.Background(), s)
		if !errors.Is(err, ErrInvalidEstimate) {
			t.Fatalf("expected ErrInvalidEstimate, got %v", err)
		}
	})

	t.Run("client price is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		notifier := mock_interfaces.NewMockILeadNotifier(ctrl)
		uc := NewEstimateUseCase(newEngine(t), repo, notifier, nil, nil)

		s := validKitchenSubmission()
		tampered := 1.0
		s.ClientPrice = &tampered

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.ID == "" || e.CreatedAt.IsZero() {
					t.Fatalf("expected id and timestamp, got %+v", e)
				}
				if e.Kind != entities.EstimateKindKitchen || e.EstimatedPrice != 40000 {
					t.Fatalf("unexpected estimate: %+v", e)
				}
				if e.Kitchen == nil || e.Kitchen.LinearFeet != 10 || e.Kitchen.Area != 20 || e.City != "Pune" {
					t.Fatalf("unexpected kitchen details: %+v", e.Kitchen)
				}
				return e, nil
			},
		)
		notifier.EXPECT().NotifyEstimate(gomock.Any(), gomock.Any()).Return(nil)

		res, err := uc.SubmitKitchen(context.Background(), s)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Estimate.EstimatedPrice != 40000 {
			t.Fatalf("expected 40000, got %d", res.Estimate.EstimatedPrice)
		}
		if res.Message != "Thank you Asha Rao! Your kitchen estimate is ₹40,000. We'll contact you soon." {
			t.Fatalf("unexpected message: %q", res.Message)
		}
		if res.PriceRange != nil {
			t.Fatalf("kitchen results carry no price range")
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(newEngine(t), repo, nil, nil, nil)

		dbErr := errors.New("db down")
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, dbErr)

		_, err := uc.SubmitKitchen(context.Background(), validKitchenSubmission())
		if !errors.Is(err, ErrSaveEstimate) || !errors.Is(err, dbErr) {
			t.Fatalf("expected ErrSaveEstimate wrapping db error, got %v", err)
		}
		if !strings.Contains(err.Error(), "kitchen") {
			t.Fatalf("expected calculator context in %q", err.Error())
		}
	})

	t.Run("notification failure does not fail submission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		notifier := mock_interfaces.NewMockILeadNotifier(ctrl)
		uc := NewEstimateUseCase(newEngine(t), repo, notifier, nil, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) { return e, nil },
		)
		notifier.EXPECT().NotifyEstimate(gomock.Any(), gomock.Any()).Return(errors.New("telegram"))

		if _, err := uc.SubmitKitchen(context.Background(), validKitchenSubmission()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEstimateUseCase_SubmitHome(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
	uc := NewEstimateUseCase(newEngine(t), repo, nil, nil, nil)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
			if e.Home == nil || e.Home.DisplayRange != "10L-18L" || e.EstimatedPrice != 1400000 {
				t.Fatalf("unexpected home estimate: %+v", e)
			}
			if e.PropertyName != "Green Acres" {
				t.Fatalf("expected trimmed property name, got %q", e.PropertyName)
			}
			return e, nil
		},
	)

	res, err := uc.SubmitHome(context.Background(), HomeSubmission{
		Name:         "Ravi",
		Email:        "ravi@example.com",
		Phone:        "9123456789",
		PropertyName: "  Green Acres ",
		Estimate:     pricing.HomeInput{BHK: "2bhk", Package: "premium"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Message != "Thank you Ravi! Your home interior estimate is 10L-18L. We'll contact you soon." {
		t.Fatalf("unexpected message: %q", res.Message)
	}
	if res.PriceRange == nil || res.PriceRange.DisplayRange != "10L-18L" {
		t.Fatalf("expected price range, got %+v", res.PriceRange)
	}
}

func TestEstimateUseCase_SubmitWardrobe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
	uc := NewEstimateUseCase(newEngine(t), repo, nil, nil, nil)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
			if e.Wardrobe == nil || e.Wardrobe.Area != 56 || e.EstimatedPrice != 252000 || !e.WhatsappUpdates {
				t.Fatalf("unexpected wardrobe estimate: %+v", e)
			}
			return e, nil
		},
	)

	res, err := uc.SubmitWardrobe(context.Background(), WardrobeSubmission{
		Name:            "Meera",
		Email:           "meera@example.com",
		Phone:           "8123456789",
		PropertyName:    "Lake View",
		WhatsappUpdates: true,
		Estimate:        pricing.WardrobeInput{Length: 8, Height: 7, Type: "sliding", Package: "luxury"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(res.Message, "₹2,52,000") {
		t.Fatalf("unexpected message: %q", res.Message)
	}
}

func TestEstimateUseCase_ListEstimates(t *testing.T) {
	t.Run("invalid kind", func(t *testing.T) {
		uc := NewEstimateUseCase(newEngine(t), nil, nil, nil, nil)
		_, err := uc.ListEstimates(context.Background(), "garage", 1, 10)
		if !errors.Is(err, ErrInvalidKind) {
			t.Fatalf("expected ErrInvalidKind, got %v", err)
		}
	})

	t.Run("page math", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(newEngine(t), repo, nil, nil, nil)

		repo.EXPECT().Count(gomock.Any(), entities.EstimateKindHome).Return(25, nil)
		repo.EXPECT().List(gomock.Any(), entities.EstimateKindHome, 10, 10).Return(make([]entities.Estimate, 10), nil)

		p, err := uc.ListEstimates(context.Background(), entities.EstimateKindHome, 2, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Total != 25 || p.TotalPages != 3 || p.Page != 2 || p.Limit != 10 || len(p.Items) != 10 {
			t.Fatalf("unexpected page: %+v", p)
		}
	})

	t.Run("clamps page and limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(newEngine(t), repo, nil, nil, nil)

		repo.EXPECT().Count(gomock.Any(), entities.EstimateKindKitchen).Return(250, nil)
		repo.EXPECT().List(gomock.Any(), entities.EstimateKindKitchen, 0, 100).Return(nil, nil)

		p, err := uc.ListEstimates(context.Background(), entities.EstimateKindKitchen, 0, 500)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Page != 1 || p.Limit != 100 || p.TotalPages != 3 {
			t.Fatalf("unexpected page: %+v", p)
		}
	})

	t.Run("page past the end skips the query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(newEngine(t), repo, nil, nil, nil)

		repo.EXPECT().Count(gomock.Any(), entities.EstimateKindWardrobe).Return(0, nil)

		p, err := uc.ListEstimates(context.Background(), entities.EstimateKindWardrobe, 3, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Items == nil || len(p.Items) != 0 || p.TotalPages != 0 {
			t.Fatalf("unexpected page: %+v", p)
		}
	})

	t.Run("count failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(newEngine(t), repo, nil, nil, nil)

		repo.EXPECT().Count(gomock.Any(), entities.EstimateKindHome).Return(0, errors.New("db"))

		_, err := uc.ListEstimates(context.Background(), entities.EstimateKindHome, 1, 10)
		if !errors.Is(err, ErrListEstimates) {
			t.Fatalf("expected ErrListEstimates, got %v", err)
		}
	})
}

func TestEstimateUseCase_ExportEstimates(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		uc := NewEstimateUseCase(newEngine(t), nil, nil, nil, nil)
		_, err := uc.ExportEstimates(context.Background(), entities.EstimateKindHome, 1, 10)
		if !errors.Is(err, ErrExportNotEnabled) {
			t.Fatalf("expected ErrExportNotEnabled, got %v", err)
		}
	})

	t.Run("renders the listed page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		exporter := mock_interfaces.NewMockIEstimateExporter(ctrl)
		uc := NewEstimateUseCase(newEngine(t), repo, nil, exporter, nil)

		items := []entities.Estimate{{ID: "e-1", Kind: entities.EstimateKindHome}}
		repo.EXPECT().Count(gomock.Any(), entities.EstimateKindHome).Return(1, nil)
		repo.EXPECT().List(gomock.Any(), entities.EstimateKindHome, 0, 10).Return(items, nil)
		exporter.EXPECT().Export(entities.EstimateKindHome, items).Return([]byte("xlsx"), nil)

		out, err := uc.ExportEstimates(context.Background(), entities.EstimateKindHome, 1, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(out) != "xlsx" {
			t.Fatalf("unexpected output: %q", out)
		}
	})
}

func TestTotalPages(t *testing.T) {
	cases := []struct{ total, limit, want int }{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.total, tc.limit); got != tc.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tc.total, tc.limit, got, tc.want)
		}
	}
}

func TestEstimateUseCase_SubmitNamePunctuation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
	uc := NewEstimateUseCase(newEngine(t), repo, nil, nil, nil)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e entities.Estimate) (entities.Estimate, error) { return e, nil },
	).Times(2)

	t.Run("home accepts hyphen and apostrophe", func(t *testing.T) {
		_, err := uc.SubmitHome(context.Background(), HomeSubmission{
			Name:         "Anne-Marie D'Souza",
			Email:        "anne@example.com",
			Phone:        "9123456789",
			PropertyName: "Green Acres",
			Estimate:     pricing.HomeInput{BHK: "2bhk", Package: "premium"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("wardrobe accepts a dotted title", func(t *testing.T) {
		_, err := uc.SubmitWardrobe(context.Background(), WardrobeSubmission{
			Name:         "Dr. Rao",
			Email:        "rao@example.com",
			Phone:        "8123456789",
			PropertyName: "Lake View",
			Estimate:     pricing.WardrobeInput{Length: 8, Height: 7, Type: "sliding", Package: "luxury"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("kitchen still requires letters and spaces", func(t *testing.T) {
		s := validKitchenSubmission()
		s.Name = "Dr. Rao"
		_, err := uc.SubmitKitchen(context.Background(), s)
		if !errors.Is(err, ErrInvalidContact) {
			t.Fatalf("expected ErrInvalidContact, got %v", err)
		}
	})

	t.Run("home still needs two characters", func(t *testing.T) {
		_, err := uc.SubmitHome(context.Background(), HomeSubmission{
			Name:         " A ",
			Email:        "a@example.com",
			Phone:        "9123456789",
			PropertyName: "Green Acres",
			Estimate:     pricing.HomeInput{BHK: "2bhk", Package: "premium"},
		})
		if !errors.Is(err, ErrInvalidContact) {
			t.Fatalf("expected ErrInvalidContact, got %v", err)
		}
	})
}
