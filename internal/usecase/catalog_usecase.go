package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"kalakruti_api/internal/domain/entities"
	"kalakruti_api/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrDesignsNotFound  = errors.New("no designs found")
	ErrDesignNotFound   = errors.New("design not found")
	ErrProjectsNotFound = errors.New("no delivered projects found")
	ErrProjectNotFound  = errors.New("delivered project not found")
	ErrCatalogLookup    = errors.New("catalog lookup failed")
)

type ICatalogUseCase interface {
	ListCategories() []entities.DesignCategory
	ListDesigns(ctx context.Context, categoryID string) ([]entities.Design, error)
	GetDesign(ctx context.Context, categoryID, slug string) (entities.Design, error)
	ListDeliveredProjects(ctx context.Context) ([]entities.Project, error)
	GetDeliveredProject(ctx context.Context, id string) (entities.Project, error)
}

type CatalogUseCase struct {
	repo interfaces.ICatalogRepository
	log  *zap.Logger
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository, logger *zap.Logger) *CatalogUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogUseCase{repo: repo, log: logger}
}

// ListCategories returns a copy of the fixed category list.
func (u *CatalogUseCase) ListCategories() []entities.DesignCategory {
	out := make([]entities.DesignCategory, len(designCategories))
	copy(out, designCategories)
	return out
}

func (u *CatalogUseCase) ListDesigns(ctx context.Context, categoryID string) ([]entities.Design, error) {
	categoryID = strings.TrimSpace(categoryID)
	designs, err := u.repo.ListDesignsByCategory(ctx, categoryID)
	if err != nil {
		u.log.Error("[catalog][usecase] list designs failed", zap.String("category_id", categoryID), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrCatalogLookup, err)
	}
	if len(designs) == 0 {
		return nil, ErrDesignsNotFound
	}
	return designs, nil
}

// GetDesign resolves a design by slug. Slugs are globally unique, so the
// category segment of the route only scopes the URL.
func (u *CatalogUseCase) GetDesign(ctx context.Context, categoryID, slug string) (entities.Design, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return entities.Design{}, ErrDesignNotFound
	}
	d, err := u.repo.GetDesignBySlug(ctx, slug)
	if err != nil {
		u.log.Error("[catalog][usecase] get design failed",
			zap.String("category_id", categoryID), zap.String("slug", slug), zap.Error(err))
		return entities.Design{}, fmt.Errorf("%w: %w", ErrCatalogLookup, err)
	}
	if d.Slug == "" {
		return entities.Design{}, ErrDesignNotFound
	}
	return d, nil
}

func (u *CatalogUseCase) ListDeliveredProjects(ctx context.Context) ([]entities.Project, error) {
	projects, err := u.repo.ListDeliveredProjects(ctx)
	if err != nil {
		u.log.Error("[catalog][usecase] list projects failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrCatalogLookup, err)
	}
	if len(projects) == 0 {
		return nil, ErrProjectsNotFound
	}
	return projects, nil
}

// GetDeliveredProject hides projects that are not completed yet.
func (u *CatalogUseCase) GetDeliveredProject(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	p, err := u.repo.GetProjectByID(ctx, id)
	if err != nil {
		u.log.Error("[catalog][usecase] get project failed", zap.String("project_id", id), zap.Error(err))
		return entities.Project{}, fmt.Errorf("%w: %w", ErrCatalogLookup, err)
	}
	if p.ID == "" || p.Status != entities.ProjectStatusCompleted {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

var designCategories = []entities.DesignCategory{
	{ID: "kitchen", Title: "Modular Kitchen Designs", Description: "Functional and beautiful kitchens with smart storage solutions", Image: "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?w=500", Count: 15},
	{ID: "wardrobe", Title: "Wardrobe Designs", Description: "Customized wardrobes with optimal storage and style", Image: "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=500", Count: 12},
	{ID: "bathroom", Title: "Bathroom Designs", Description: "Luxurious and practical bathroom designs for daily comfort", Image: "https://images.unsplash.com/photo-1584622650111-993a426fbf0a?w=500", Count: 10},
	{ID: "master-bedroom", Title: "Master Bedroom Designs", Description: "Elegant master bedroom designs for peaceful rest", Image: "https://images.unsplash.com/photo-1616486338812-3dadae4b4ace?w=500", Count: 18},
	{ID: "living-room", Title: "Living Room Designs", Description: "Inviting living spaces for relaxation and entertainment", Image: "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=500", Count: 24},
	{ID: "pooja-room", Title: "Pooja Room Designs", Description: "Sacred spaces designed with tradition and elegance", Image: "https://images.unsplash.com/photo-1604328727240-3e2d3f9e2e2f?w=500", Count: 8},
	{ID: "tv-unit", Title: "TV Unit Designs", Description: "Stylish TV units that enhance your entertainment area", Image: "https://images.unsplash.com/photo-1574269909862-7e1d70bb8078?w=500", Count: 14},
	{ID: "false-ceiling", Title: "False Ceiling Designs", Description: "Modern ceiling designs that add dimension and style", Image: "https://images.unsplash.com/photo-1600585154340-be6161a56a0c?w=500", Count: 16},
	{ID: "kids-bedroom", Title: "Kids Bedroom Designs", Description: "Fun and functional spaces for children to grow and play", Image: "https://images.unsplash.com/photo-1586105449897-20b5efeb3c35?w=500", Count: 11},
	{ID: "dining-room", Title: "Dining Room Designs", Description: "Elegant dining spaces for memorable meals and gatherings", Image: "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?w=500", Count: 10},
	{ID: "foyer", Title: "Foyer Designs", Description: "Make a stunning first impression with elegant foyer designs", Image: "https://images.unsplash.com/photo-1600210492486-724fe5c67fb0?w=500", Count: 7},
	{ID: "homes-livspace", Title: "Homes by KalaKruti Studio", Description: "Complete home interior solutions from Livspace", Image: "https://images.unsplash.com/photo-1600566753086-00f18fb6b3ea?w=500", Count: 20},
	{ID: "home-office", Title: "Home Office Designs", Description: "Productive workspaces designed for focus and creativity", Image: "https://images.unsplash.com/photo-1497366216548-37526070297c?w=500", Count: 13},
	{ID: "wallpaper", Title: "Home Wallpaper Designs", Description: "Stunning wallpaper designs to transform your walls", Image: "https://images.unsplash.com/photo-1618219908412-a29a1bb7b86e?w=500", Count: 16},
	{ID: "tile", Title: "Tile Designs", Description: "Beautiful tile patterns for floors and walls", Image: "https://images.unsplash.com/photo-1604709177225-055f99402ea3?w=500", Count: 14},
	{ID: "study-room", Title: "Study Room Designs", Description: "Focused study spaces for learning and concentration", Image: "https://images.unsplash.com/photo-1524758631624-e2822e304c36?w=500", Count: 9},
	{ID: "space-saving", Title: "Space Saving Designs", Description: "Smart solutions to maximize your living space", Image: "https://images.unsplash.com/photo-1600121848594-d8644e57abab?w=500", Count: 17},
	{ID: "door", Title: "Door Designs", Description: "Stylish door designs for every room in your home", Image: "https://images.unsplash.com/photo-1600585152915-d208bec867a1?w=500", Count: 11},
	{ID: "crockery-unit", Title: "Crockery Unit Designs", Description: "Display and storage solutions for your dinnerware", Image: "https://images.unsplash.com/photo-1600210491892-03d54c0aaf87?w=500", Count: 8},
}
