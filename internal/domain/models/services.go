// internal/domain/models/services.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service is one offering inside a category. Service ids are unique across
// the entire services document, not just within their category.
type Service struct {
	ID          int    `bson:"id" json:"id"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Icon        string `bson:"icon" json:"icon"` // key into the icon set below
	Featured    bool   `bson:"featured" json:"featured"`
}

// ServiceCategory groups services under a string slug id.
type ServiceCategory struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Services    []Service `bson:"services" json:"services"`
}

// ServicesDocument is the single nested aggregate holding all categories.
// Version guards read-modify-write cycles: writers match on the version they
// read and bump it, so concurrent edits conflict instead of clobbering.
type ServicesDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Version    int64              `bson:"version" json:"-"`
	Categories []ServiceCategory  `bson:"categories" json:"categories"`

	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}

// MaxServiceID returns the highest service id across all categories, 0 when
// the document holds no services.
func (d *ServicesDocument) MaxServiceID() int {
	max := 0
	for _, cat := range d.Categories {
		for _, svc := range cat.Services {
			if svc.ID > max {
				max = svc.ID
			}
		}
	}
	return max
}

// ServicePatch is a partial update to a service; nil fields are kept.
type ServicePatch struct {
	Title       *string
	Description *string
	Icon        *string
	Featured    *bool
}

// CategoryPatch is a partial update to a category's title/description.
type CategoryPatch struct {
	Title       *string
	Description *string
}

// DefaultServiceIcon is used when a request omits the icon or names one that
// is not in the icon set.
const DefaultServiceIcon = "code"

// serviceIcons is the fixed set of icon names the frontend can render.
var serviceIcons = map[string]struct{}{
	"code":     {},
	"mobile":   {},
	"cloud":    {},
	"design":   {},
	"ai":       {},
	"data":     {},
	"security": {},
	"support":  {},
}

// IsValidServiceIcon reports whether name is a renderable icon key.
func IsValidServiceIcon(name string) bool {
	_, ok := serviceIcons[name]
	return ok
}
