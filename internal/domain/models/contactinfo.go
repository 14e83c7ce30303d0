// internal/domain/models/contactinfo.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Socials holds the agency's social profile URLs.
type Socials struct {
	Twitter   string `bson:"twitter" json:"twitter"`
	Instagram string `bson:"instagram" json:"instagram"`
	LinkedIn  string `bson:"linkedin" json:"linkedin"`
}

// ContactInfo is the contact section content. Singleton document, replaced
// wholesale on save. Public reads fall back to defaults and never 404.
type ContactInfo struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"-"`

	Heading    string  `bson:"heading" json:"heading"`
	Subheading string  `bson:"subheading" json:"subheading"`
	Email      string  `bson:"email" json:"email"`
	Socials    Socials `bson:"socials" json:"socials"`

	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}

// DefaultContactInfo is served when no contact document exists yet.
func DefaultContactInfo() ContactInfo {
	return ContactInfo{
		Heading:    "Let's build something together",
		Subheading: "Tell us about your project and we'll get back to you within a day.",
		Email:      "hello@brightforge.dev",
	}
}
