package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"kalakruti_api/internal/domain/entities"
	"kalakruti_api/internal/usecase/interfaces"

	"github.com/jmoiron/sqlx"
)

const projectColumns = `id, title, description, long_description, location, scope, bhk, pricing, budget, area, style, status, created_at`

// CatalogSQLRepository reads designs and projects through sqlx. Queries use ?
// placeholders and are rebound for the connected driver.
type CatalogSQLRepository struct {
	db *sqlx.DB
}

var _ interfaces.ICatalogRepository = (*CatalogSQLRepository)(nil)

func NewCatalogSQLRepository(db *sqlx.DB) *CatalogSQLRepository {
	return &CatalogSQLRepository{db: db}
}

func (r *CatalogSQLRepository) ListDesignsByCategory(ctx context.Context, categoryID string) ([]entities.Design, error) {
	designs := []entities.Design{}
	q := r.db.Rebind(`SELECT slug, category_id, title, style, price, image, description, created_at
		FROM designs WHERE category_id = ? ORDER BY created_at DESC, slug`)
	if err := r.db.SelectContext(ctx, &designs, q, categoryID); err != nil {
		return nil, fmt.Errorf("select designs: %w", err)
	}
	return designs, nil
}

func (r *CatalogSQLRepository) GetDesignBySlug(ctx context.Context, slug string) (entities.Design, error) {
	var d entities.Design
	q := r.db.Rebind(`SELECT slug, category_id, title, style, price, image, description, created_at
		FROM designs WHERE slug = ?`)
	if err := r.db.GetContext(ctx, &d, q, slug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.Design{}, nil
		}
		return entities.Design{}, fmt.Errorf("get design: %w", err)
	}
	return d, nil
}

// ListDeliveredProjects returns completed projects, newest first, each with
// its first image only.
func (r *CatalogSQLRepository) ListDeliveredProjects(ctx context.Context) ([]entities.Project, error) {
	projects := []entities.Project{}
	q := r.db.Rebind(`SELECT ` + projectColumns + ` FROM projects WHERE status = ? ORDER BY created_at DESC`)
	if err := r.db.SelectContext(ctx, &projects, q, entities.ProjectStatusCompleted); err != nil {
		return nil, fmt.Errorf("select projects: %w", err)
	}
	if len(projects) == 0 {
		return projects, nil
	}

	ids := make([]string, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
	}
	imgQ, args, err := sqlx.In(`SELECT project_id, url FROM project_images
		WHERE project_id IN (?) ORDER BY project_id, position`, ids)
	if err != nil {
		return nil, fmt.Errorf("build image query: %w", err)
	}

	var images []projectImageRow
	if err := r.db.SelectContext(ctx, &images, r.db.Rebind(imgQ), args...); err != nil {
		return nil, fmt.Errorf("select project images: %w", err)
	}

	first := make(map[string]string, len(projects))
	for _, img := range images {
		if _, ok := first[img.ProjectID]; !ok {
			first[img.ProjectID] = img.URL
		}
	}
	for i := range projects {
		if url, ok := first[projects[i].ID]; ok {
			projects[i].Images = []string{url}
		}
	}
	return projects, nil
}

// GetProjectByID returns the project with all images ordered by position,
// whatever its status.
func (r *CatalogSQLRepository) GetProjectByID(ctx context.Context, id string) (entities.Project, error) {
	var p entities.Project
	q := r.db.Rebind(`SELECT ` + projectColumns + ` FROM projects WHERE id = ?`)
	if err := r.db.GetContext(ctx, &p, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.Project{}, nil
		}
		return entities.Project{}, fmt.Errorf("get project: %w", err)
	}

	p.Images = []string{}
	imgQ := r.db.Rebind(`SELECT url FROM project_images WHERE project_id = ? ORDER BY position`)
	if err := r.db.SelectContext(ctx, &p.Images, imgQ, id); err != nil {
		return entities.Project{}, fmt.Errorf("select project images: %w", err)
	}
	return p, nil
}

type projectImageRow struct {
	ProjectID string `db:"project_id"`
	URL       string `db:"url"`
}
