// internal/domain/models/hero.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CTA is a call-to-action button: the label shown and the link it points at.
type CTA struct {
	Text string `bson:"text" json:"text"`
	Href string `bson:"href" json:"href"`
}

// HeroContent is the landing-page hero section. Exactly one document of this
// kind exists; it is created by the seed step and only ever updated in place.
type HeroContent struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"-"`

	Headline1   string `bson:"headline1" json:"headline1"`
	Headline2   string `bson:"headline2" json:"headline2"`
	Description string `bson:"description" json:"description"`

	PrimaryCTA   CTA `bson:"primary_cta" json:"primaryCta"`
	SecondaryCTA CTA `bson:"secondary_cta" json:"secondaryCta"`

	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}

// CTAPatch carries the sub-fields of a CTA present in an update request.
// Nil means "not provided, keep the stored value".
type CTAPatch struct {
	Text *string
	Href *string
}

// HeroPatch is a partial update to the hero document. Only non-nil fields are
// written, so an explicitly provided empty string clears the stored value.
type HeroPatch struct {
	Headline1   *string
	Headline2   *string
	Description *string
	PrimaryCTA  *CTAPatch
	SecondaryCTA *CTAPatch
}

// IsEmpty reports whether the patch would change nothing.
func (p HeroPatch) IsEmpty() bool {
	return p.Headline1 == nil && p.Headline2 == nil && p.Description == nil &&
		p.PrimaryCTA == nil && p.SecondaryCTA == nil
}
