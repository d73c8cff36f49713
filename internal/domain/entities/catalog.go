package entities

import "time"

type DesignCategory struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Count       int    `json:"count"`
}

type Design struct {
	Slug        string    `json:"slug" db:"slug"`
	CategoryID  string    `json:"categoryId" db:"category_id"`
	Title       string    `json:"title" db:"title"`
	Style       string    `json:"style" db:"style"`
	Price       string    `json:"price" db:"price"`
	Image       string    `json:"image" db:"image"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// ProjectStatusCompleted marks a project as delivered. Other statuses are
// never exposed.
const ProjectStatusCompleted = "COMPLETED"

type Project struct {
	ID              string    `db:"id"`
	Title           string    `db:"title"`
	Description     string    `db:"description"`
	LongDescription string    `db:"long_description"`
	Location        string    `db:"location"`
	Scope           string    `db:"scope"`
	BHK             string    `db:"bhk"`
	Pricing         string    `db:"pricing"`
	Budget          string    `db:"budget"`
	Area            string    `db:"area"`
	Style           string    `db:"style"`
	Status          string    `db:"status"`
	CreatedAt       time.Time `db:"created_at"`
	// Images are ordered by position. Listings carry only the first one.
	Images []string `db:"-"`
}
