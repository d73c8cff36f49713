package interfaces

import "kalakruti_api/internal/domain/entities"

// IEstimateExporter renders a page of estimates as a spreadsheet.
type IEstimateExporter interface {
	Export(kind entities.EstimateKind, items []entities.Estimate) ([]byte, error)
}
