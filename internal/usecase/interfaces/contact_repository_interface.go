package interfaces

import (
	"context"

	"kalakruti_api/internal/domain/entities"
)

type IContactRepository interface {
	Create(ctx context.Context, c entities.Contact) (entities.Contact, error)
}
