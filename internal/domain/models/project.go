// internal/domain/models/project.go
package models

import (
	"time"
)

// Project is one portfolio entry. Projects carry application-assigned integer
// ids (allocated from the counters collection) rather than ObjectIDs because
// the public site and admin panel address them by small stable numbers.
type Project struct {
	ID          int      `bson:"id" json:"id"`
	Title       string   `bson:"title" json:"title"`
	Category    string   `bson:"category" json:"category"`
	Description string   `bson:"description" json:"description"`
	Year        int      `bson:"year" json:"year"`
	Image       string   `bson:"image" json:"image"` // URL or embedded data URI
	Link        string   `bson:"link" json:"link"`
	Tech        []string `bson:"tech" json:"tech"`

	// Order drives display sorting; mutated in bulk by the reorder operation.
	// Unset (zero) orders sort first, ties break on id.
	Order int `bson:"order" json:"order"`

	CreatedAt time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}

// ProjectPatch is a partial update to a project; nil fields are kept.
type ProjectPatch struct {
	Title       *string
	Category    *string
	Description *string
	Year        *int
	Image       *string
	Link        *string
	Tech        *[]string
	Order       *int
}

// IsEmpty reports whether the patch would change nothing.
func (p ProjectPatch) IsEmpty() bool {
	return p.Title == nil && p.Category == nil && p.Description == nil &&
		p.Year == nil && p.Image == nil && p.Link == nil && p.Tech == nil &&
		p.Order == nil
}

// ProjectOrder is one entry of a bulk reorder request.
type ProjectOrder struct {
	ID    int `json:"id"`
	Order int `json:"order"`
}
