// internal/domain/models/about.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AboutContent is the about section of the site. Singleton document.
//
// Paragraphs render as raw markup on the site, so they are stored with their
// HTML intact (sanitized, not escaped). Everything else is escaped plain text.
type AboutContent struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"-"`

	Label          string `bson:"label" json:"label"`
	Title          string `bson:"title" json:"title"`
	TitleHighlight string `bson:"title_highlight" json:"titleHighlight"`
	GraphicText    string `bson:"graphic_text" json:"graphicText"`
	GraphicSubtext string `bson:"graphic_subtext" json:"graphicSubtext"`

	Paragraphs   []string `bson:"paragraphs" json:"paragraphs"`
	Images       []string `bson:"images" json:"images"`
	PartnerLogos []string `bson:"partner_logos" json:"partnerLogos"`

	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}

// AboutPatch is a partial update to the about document; nil fields are kept.
type AboutPatch struct {
	Label          *string
	Title          *string
	TitleHighlight *string
	GraphicText    *string
	GraphicSubtext *string
	Paragraphs     *[]string
	Images         *[]string
	PartnerLogos   *[]string
}

// IsEmpty reports whether the patch would change nothing.
func (p AboutPatch) IsEmpty() bool {
	return p.Label == nil && p.Title == nil && p.TitleHighlight == nil &&
		p.GraphicText == nil && p.GraphicSubtext == nil &&
		p.Paragraphs == nil && p.Images == nil && p.PartnerLogos == nil
}
