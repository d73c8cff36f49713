package response

import "kalakruti_api/internal/domain/entities"

type CategoryResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Count       int    `json:"count"`
}

type DesignResponse struct {
	Slug        string `json:"slug"`
	CategoryID  string `json:"categoryId"`
	Title       string `json:"title"`
	Style       string `json:"style"`
	Price       string `json:"price"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

type DesignListResponse struct {
	Success      bool             `json:"success"`
	Category     string           `json:"category"`
	TotalDesigns int              `json:"totalDesigns"`
	Data         []DesignResponse `json:"data"`
}

type DesignDetailResponse struct {
	Success bool           `json:"success"`
	Data    DesignResponse `json:"data"`
}

// ProjectSummaryResponse is a delivered project card. Image is null when the
// project has no pictures.
type ProjectSummaryResponse struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Location string  `json:"location"`
	Scope    string  `json:"scope"`
	BHK      string  `json:"bhk"`
	Pricing  string  `json:"pricing"`
	Image    *string `json:"image"`
	Status   string  `json:"status"`
	Type     string  `json:"type"`
}

type ProjectDetailResponse struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Location        string   `json:"location"`
	Budget          string   `json:"budget"`
	Area            string   `json:"area"`
	Style           string   `json:"style"`
	Scope           string   `json:"scope"`
	BHK             string   `json:"bhk"`
	Pricing         string   `json:"pricing"`
	Images          []string `json:"images"`
	LongDescription string   `json:"longDescription"`
}

func FromCategories(cs []entities.DesignCategory) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, CategoryResponse{
			ID:          c.ID,
			Title:       c.Title,
			Description: c.Description,
			Image:       c.Image,
			Count:       c.Count,
		})
	}
	return out
}

func FromDesign(d entities.Design) DesignResponse {
	return DesignResponse{
		Slug:        d.Slug,
		CategoryID:  d.CategoryID,
		Title:       d.Title,
		Style:       d.Style,
		Price:       d.Price,
		Image:       d.Image,
		Description: d.Description,
	}
}

func FromDesigns(categoryID string, ds []entities.Design) DesignListResponse {
	data := make([]DesignResponse, 0, len(ds))
	for _, d := range ds {
		data = append(data, FromDesign(d))
	}
	return DesignListResponse{
		Success:      true,
		Category:     categoryID,
		TotalDesigns: len(data),
		Data:         data,
	}
}

func FromProjectSummary(p entities.Project) ProjectSummaryResponse {
	res := ProjectSummaryResponse{
		ID:       p.ID,
		Title:    p.Title,
		Location: p.Location,
		Scope:    p.Scope,
		BHK:      p.BHK,
		Pricing:  p.Pricing,
		Status:   entities.ProjectStatusCompleted,
		Type:     "delivered",
	}
	if len(p.Images) > 0 {
		img := p.Images[0]
		res.Image = &img
	}
	return res
}

func FromProjectSummaries(ps []entities.Project) []ProjectSummaryResponse {
	out := make([]ProjectSummaryResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProjectSummary(p))
	}
	return out
}

func FromProjectDetail(p entities.Project) ProjectDetailResponse {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return ProjectDetailResponse{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		Location:        p.Location,
		Budget:          p.Budget,
		Area:            p.Area,
		Style:           p.Style,
		Scope:           p.Scope,
		BHK:             p.BHK,
		Pricing:         p.Pricing,
		Images:          images,
		LongDescription: p.LongDescription,
	}
}
