package interfaces

import (
	"context"

	"kalakruti_api/internal/domain/entities"
)

// ILeadNotifier pushes new leads to the sales team. Failures are reported to
// the caller but never undo a stored record.
type ILeadNotifier interface {
	NotifyEstimate(ctx context.Context, e entities.Estimate) error
	NotifyContact(ctx context.Context, c entities.Contact) error
}
