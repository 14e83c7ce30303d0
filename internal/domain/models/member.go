// internal/domain/models/member.go
package models

import (
	"time"
)

// Member is one team member shown on the site.
//
// The integer id is the sole identity key for updates and deletes. Name is a
// mutable display attribute, never an identifier.
type Member struct {
	ID    int    `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Role  string `bson:"role" json:"role"`
	Image string `bson:"image" json:"image"`

	CreatedAt time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}

// MemberPatch is a partial update to a member; nil fields are kept.
type MemberPatch struct {
	Name  *string
	Role  *string
	Image *string
}

// IsEmpty reports whether the patch would change nothing.
func (p MemberPatch) IsEmpty() bool {
	return p.Name == nil && p.Role == nil && p.Image == nil
}
