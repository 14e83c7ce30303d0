// internal/domain/models/navbar.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NavLink is one entry in the site navigation.
type NavLink struct {
	Name string `bson:"name" json:"name"`
	Href string `bson:"href" json:"href"`
}

// NavbarLogo is the text logo shown in the navigation bar.
type NavbarLogo struct {
	Text string `bson:"text" json:"text"`
}

// NavbarContent is the site navigation. Singleton document, replaced
// wholesale on every save (no per-field merge).
type NavbarContent struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"-"`

	Logo  NavbarLogo `bson:"logo" json:"logo"`
	Links []NavLink  `bson:"links" json:"links"`
	CTA   CTA        `bson:"cta" json:"cta"`

	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}

// DefaultNavbar is returned to public readers when no navbar document has
// been saved yet. The navbar endpoint never reports not-found.
func DefaultNavbar() NavbarContent {
	return NavbarContent{
		Logo: NavbarLogo{Text: "BrightForge"},
		Links: []NavLink{
			{Name: "Services", Href: "#services"},
			{Name: "Work", Href: "#work"},
			{Name: "About", Href: "#about"},
			{Name: "Team", Href: "#team"},
		},
		CTA: CTA{Text: "Start a project", Href: "#contact"},
	}
}
