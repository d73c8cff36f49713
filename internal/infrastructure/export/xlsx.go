package export

import (
	"fmt"
	"strings"

	"kalakruti_api/internal/domain/entities"
	"kalakruti_api/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

// XLSXExporter renders estimates as a single-sheet workbook, one row per
// estimate in the order given.
type XLSXExporter struct{}

var _ interfaces.IEstimateExporter = (*XLSXExporter)(nil)

func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

// SheetName is the worksheet title used for a kind.
func SheetName(kind entities.EstimateKind) string {
	s := string(kind)
	if s == "" {
		return "Estimates"
	}
	return strings.ToUpper(s[:1]) + s[1:] + " Estimates"
}

func (x *XLSXExporter) Export(kind entities.EstimateKind, items []entities.Estimate) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := SheetName(kind)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	headers := append(append([]string{"ID", "Created At", "Name", "Email", "Phone"}, kindHeaders(kind)...), "Estimated Price")
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for row, e := range items {
		data := append(append([]interface{}{
			e.ID,
			e.CreatedAt.Format("2006-01-02 15:04"),
			e.Name,
			e.Email,
			e.Phone,
		}, kindValues(kind, e)...), e.EstimatedPrice)
		for col, value := range data {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", row+2, err)
			}
		}
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	if err := f.SetColWidth(sheet, "A", lastCol, 18); err != nil {
		return nil, fmt.Errorf("failed to size columns: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func kindHeaders(kind entities.EstimateKind) []string {
	switch kind {
	case entities.EstimateKindHome:
		return []string{"Property", "BHK", "Size", "Package", "Price Range"}
	case entities.EstimateKindKitchen:
		return []string{"City", "Layout", "A (ft)", "B (ft)", "C (ft)", "Package", "Area (sq ft)", "Rate", "Message"}
	case entities.EstimateKindWardrobe:
		return []string{"Property", "Type", "Length (ft)", "Height (ft)", "Package", "Area (sq ft)", "Rate", "WhatsApp Updates"}
	}
	return nil
}

func kindValues(kind entities.EstimateKind, e entities.Estimate) []interface{} {
	switch kind {
	case entities.EstimateKindHome:
		h := e.Home
		if h == nil {
			h = &entities.HomeDetails{}
		}
		return []interface{}{e.PropertyName, strings.ToUpper(h.BHK), h.Size, h.Package, h.DisplayRange}
	case entities.EstimateKindKitchen:
		k := e.Kitchen
		if k == nil {
			k = &entities.KitchenDetails{}
		}
		return []interface{}{e.City, k.Layout, k.A, optional(k.B), optional(k.C), k.Package, k.Area, k.RatePerSqFt, e.Message}
	case entities.EstimateKindWardrobe:
		w := e.Wardrobe
		if w == nil {
			w = &entities.WardrobeDetails{}
		}
		whatsapp := "No"
		if e.WhatsappUpdates {
			whatsapp = "Yes"
		}
		return []interface{}{e.PropertyName, w.Type, w.Length, w.Height, w.Package, w.Area, w.PricePerSqFt, whatsapp}
	}
	return nil
}

func optional(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}
