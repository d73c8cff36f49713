package export

import (
	"bytes"
	"testing"
	"time"

	"kalakruti_api/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

func TestXLSXExporter_KitchenRows(t *testing.T) {
	b := 6.0
	items := []entities.Estimate{
		{
			ID:        "k-2",
			Name:      "Asha",
			Email:     "asha@example.com",
			Phone:     "9876543210",
			City:      "Pune",
			CreatedAt: time.Date(2025, 3, 2, 9, 30, 0, 0, time.UTC),
			Kitchen: &entities.KitchenDetails{
				Layout: "l-shaped", A: 8, B: &b, Package: "premium", Area: 24, RatePerSqFt: 3900,
			},
			EstimatedPrice: 93600,
		},
		{
			ID:             "k-1",
			Name:           "Ravi",
			CreatedAt:      time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC),
			Kitchen:        &entities.KitchenDetails{Layout: "straight", A: 10, Package: "basic"},
			EstimatedPrice: 40000,
		},
	}

	out, err := NewXLSXExporter().Export(entities.EstimateKindKitchen, items)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	if sheets := f.GetSheetList(); len(sheets) != 1 || sheets[0] != "Kitchen Estimates" {
		t.Fatalf("unexpected sheets: %v", sheets)
	}
	rows, err := f.GetRows("Kitchen Estimates")
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "ID" || rows[0][len(rows[0])-1] != "Estimated Price" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if rows[1][0] != "k-2" || rows[1][1] != "2025-03-02 09:30" || rows[1][6] != "l-shaped" {
		t.Fatalf("unexpected first row: %v", rows[1])
	}
	if rows[2][len(rows[2])-1] != "40000" {
		t.Fatalf("unexpected price cell: %v", rows[2])
	}
}

func TestXLSXExporter_EmptyPage(t *testing.T) {
	out, err := NewXLSXExporter().Export(entities.EstimateKindHome, nil)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, _ := f.GetRows("Home Estimates")
	if len(rows) != 1 {
		t.Fatalf("expected only the header row, got %d", len(rows))
	}
}
