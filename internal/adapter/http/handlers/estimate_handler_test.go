package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"kalakruti_api/internal/adapter/http/handlers/mocks"
	"kalakruti_api/internal/domain/entities"
	"kalakruti_api/internal/domain/pricing"
	"kalakruti_api/internal/domain/validation"
	"kalakruti_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newEstimateRouter(h *EstimateHandler) *gin.Engine {
	r := gin.New()
	calc := r.Group("/api/price-calculators/:kind/calculator")
	calc.POST("/estimate", h.Calculate)
	calc.POST("/submit", h.Submit)
	calc.GET("/estimates", h.List)
	calc.GET("/estimates/export", h.Export)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestEstimateHandler_Calculate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newEstimateRouter(NewEstimateHandler(uc, nil))

		w := postJSON(r, "/api/price-calculators/home/calculator/estimate", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown calculator", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newEstimateRouter(NewEstimateHandler(uc, nil))

		w := postJSON(r, "/api/price-calculators/bathroom/calculator/estimate", "{}")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("kitchen validation error is 422 with fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newEstimateRouter(NewEstimateHandler(uc, nil))

		vErr := &validation.Error{Fields: []validation.FieldError{{Field: "B", Message: "Dimension B is required for l-shaped layout"}}}
		uc.EXPECT().
			CalculateKitchen(pricing.KitchenInput{Layout: "l-shaped", A: 8, Package: "premium"}).
			Return(pricing.KitchenQuote{}, fmt.Errorf("%w: %w", usecase.ErrInvalidEstimate, vErr))

		w := postJSON(r, "/api/price-calculators/kitchen/calculator/estimate", `{"layout":"l-shaped","A":8,"package":"premium"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body struct {
			Status string `json:"status"`
			Errors []struct {
				Field   string `json:"field"`
				Message string `json:"message"`
			} `json:"errors"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Status != "error" || len(body.Errors) != 1 || body.Errors[0].Field != "B" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("missing table entry is a 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newEstimateRouter(NewEstimateHandler(uc, nil))

		kErr := &pricing.UnknownKeyError{Table: "home", Key: "2bhk/premium", Reason: "unknown package for BHK"}
		uc.EXPECT().
			CalculateHome(pricing.HomeInput{BHK: "2bhk", Package: "premium"}).
			Return(pricing.HomeQuote{}, fmt.Errorf("%w: %w", usecase.ErrInvalidEstimate, kErr))

		w := postJSON(r, "/api/price-calculators/home/calculator/estimate", `{"bhk":"2bhk","package":"premium"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var body struct {
			Code   string `json:"code"`
			Errors []any  `json:"errors"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Code != "INTERNAL_ERROR" || len(body.Errors) != 0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("home success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newEstimateRouter(NewEstimateHandler(uc, nil))

		maxPrice := int64(1800000)
		uc.EXPECT().
			CalculateHome(pricing.HomeInput{BHK: "2bhk", Package: "premium"}).
			Return(pricing.HomeQuote{
				BHK:            "2bhk",
				Package:        "premium",
				PriceRange:     pricing.PriceRange{Min: 1000000, Max: &maxPrice, DisplayRange: "10L-18L"},
				EstimatedPrice: 1400000,
			}, nil)

		w := postJSON(r, "/api/price-calculators/home/calculator/estimate", `{"bhk":"2bhk","package":"premium"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "success" || body["estimatedPrice"] != float64(1400000) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("wardrobe success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newEstimateRouter(NewEstimateHandler(uc, nil))

		uc.EXPECT().
			CalculateWardrobe(pricing.WardrobeInput{Length: 8, Height: 7, Type: "sliding", Package: "luxury"}).
			Return(pricing.WardrobeQuote{Length: 8, Height: 7, Area: 56, Type: "sliding", Package: "luxury", PricePerSqFt: 4500, EstimatedPrice: 252000}, nil)

		w := postJSON(r, "/api/price-calculators/wardrobe/calculator/estimate", `{"length":8,"height":7,"type":"sliding","package":"luxury"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid contact is 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newEstimateRouter(NewEstimateHandler(uc, nil))

		vErr := &validation.Error{Fields: []validation.FieldError{{Field: "phone", Message: "invalid"}}}
		uc.EXPECT().SubmitWardrobe(gomock.Any(), gomock.Any()).Return(usecase.SubmitResult{}, fmt.Errorf("%w: %w", usecase.ErrInvalidContact, vErr))

		w := postJSON(r, "/api/price-calculators/wardrobe/calculator/submit", `{"name":"Meera","phone":"123"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("save failure is generic 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newEstimateRouter(NewEstimateHandler(uc, nil))

		uc.EXPECT().SubmitKitchen(gomock.Any(), gomock.Any()).
			Return(usecase.SubmitResult{}, fmt.Errorf("%w: kitchen: %w", usecase.ErrSaveEstimate, errors.New("dynamodb: throttled")))

		w := postJSON(r, "/api/price-calculators/kitchen/calculator/submit", `{"name":"Asha"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if bytes.Contains(w.Body.Bytes(), []byte("throttled")) {
			t.Fatalf("internal error leaked: %s", w.Body.String())
		}
	})

	t.Run("home success carries price range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newEstimateRouter(NewEstimateHandler(uc, nil))

		uc.EXPECT().SubmitHome(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s usecase.HomeSubmission) (usecase.SubmitResult, error) {
				if s.Estimate.BHK != "2bhk" || s.ClientPrice == nil || *s.ClientPrice != 1 {
					t.Fatalf("unexpected submission: %+v", s)
				}
				pr := pricing.PriceRange{Min: 1000000, DisplayRange: "10L-18L"}
				return usecase.SubmitResult{
					Estimate:   entities.Estimate{ID: "est-1", EstimatedPrice: 1400000},
					Message:    "Thank you Asha! Your home interior estimate is 10L-18L. We'll contact you soon.",
					PriceRange: &pr,
				}, nil
			})

		body := `{"name":"Asha","email":"a@b.co","phone":"9876543210","propertyName":"Lakeside","estimate":{"bhk":"2bhk","package":"premium","estimatedPrice":1}}`
		w := postJSON(r, "/api/price-calculators/home/calculator/submit", body)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res["estimateId"] != "est-1" || res["estimatedPrice"] != float64(1400000) || res["priceRange"] == nil {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestEstimateHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes query through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newEstimateRouter(NewEstimateHandler(uc, nil))

		uc.EXPECT().ListEstimates(gomock.Any(), entities.EstimateKindKitchen, 2, 10).
			Return(entities.EstimatePage{Items: []entities.Estimate{{ID: "k-11"}}, Page: 2, Limit: 10, Total: 25, TotalPages: 3}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/price-calculators/kitchen/calculator/estimates?page=2&limit=10", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Pagination struct {
				TotalPages int `json:"totalPages"`
			} `json:"pagination"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Pagination.TotalPages != 3 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newEstimateRouter(NewEstimateHandler(uc, nil))

		uc.EXPECT().ListEstimates(gomock.Any(), entities.EstimateKind("sofa"), 0, 0).Return(entities.EstimatePage{}, usecase.ErrInvalidKind)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/price-calculators/sofa/calculator/estimates", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_Export(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIEstimateUseCase(ctrl)
	r := newEstimateRouter(NewEstimateHandler(uc, nil))

	uc.EXPECT().ExportEstimates(gomock.Any(), entities.EstimateKindWardrobe, 0, 0).Return([]byte("PK"), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/price-calculators/wardrobe/calculator/estimates/export", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get("Content-Type") != xlsxContentType {
		t.Fatalf("unexpected content type %q", w.Header().Get("Content-Type"))
	}
	if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="wardrobe-estimates-page-1.xlsx"` {
		t.Fatalf("unexpected disposition %q", got)
	}
}
