package interfaces

import (
	"context"

	"kalakruti_api/internal/domain/entities"
)

// ICatalogRepository reads designs and delivered projects from the catalog
// database. Lookups by key return a zero value (empty Slug / ID) when nothing
// matches.
type ICatalogRepository interface {
	ListDesignsByCategory(ctx context.Context, categoryID string) ([]entities.Design, error)
	GetDesignBySlug(ctx context.Context, slug string) (entities.Design, error)
	ListDeliveredProjects(ctx context.Context) ([]entities.Project, error)
	GetProjectByID(ctx context.Context, id string) (entities.Project, error)
}
