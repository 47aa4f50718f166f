package types

import "time"

// Group represents a community group. Membership is additive: users join
// and are never removed through this API.
type Group struct {
	// ID is the unique identifier of the group.
	ID int `json:"id" db:"id"`

	// Name is the human-readable group name.
	Name string `json:"name" db:"name"`

	// Description is an optional free-text description, empty when unset.
	Description string `json:"description" db:"description"`

	// CreatedBy is the ID of the user who created the group. The creator
	// is always the group's first member.
	CreatedBy int `json:"createdBy" db:"created_by"`

	// MemberCount is derived from the membership rows, never stored.
	MemberCount int `json:"memberCount" db:"member_count"`

	// CreatedAt is the timestamp at which the group was created.
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
