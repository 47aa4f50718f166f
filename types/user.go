package types

import "time"

// User represents an account in the platform.
// Field names in the JSON form are part of the API contract.
type User struct {
	// ID is the unique identifier of the user.
	ID int `json:"id" db:"id"`

	// Phone is the unique phone number used as the login identifier.
	Phone string `json:"phone" db:"phone"`

	// FullName is the user's display name.
	FullName string `json:"fullName" db:"full_name"`

	// Position is a free-text role label (e.g. "Mentor", "Mentee").
	Position string `json:"position" db:"position"`

	// Email is the user's email address, settable after registration.
	Email *string `json:"email" db:"email"`

	// BirthDate is the user's date of birth in YYYY-MM-DD form.
	BirthDate *string `json:"birthDate" db:"birth_date"`

	// Bio is a free-text profile description.
	Bio *string `json:"bio" db:"bio"`

	// AvatarURL points at the user's avatar in object storage, if uploaded.
	AvatarURL *string `json:"avatarUrl,omitempty" db:"avatar_url"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This field is never exposed in API responses.
	PasswordHash string `json:"-" db:"password_hash"`

	// RegisteredAt is the timestamp when the account was created.
	RegisteredAt time.Time `json:"registeredAt" db:"registered_at"`

	// UpdatedAt is the timestamp of the most recent profile mutation.
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// ProfileUpdate carries a partial profile mutation. Nil fields are left
// untouched; non-nil fields are written as given.
type ProfileUpdate struct {
	FullName  *string `json:"fullName"`
	Position  *string `json:"position"`
	Email     *string `json:"email"`
	BirthDate *string `json:"birthDate"`
	Bio       *string `json:"bio"`
}

// IsEmpty reports whether no fields were supplied.
func (u ProfileUpdate) IsEmpty() bool {
	return u.FullName == nil && u.Position == nil && u.Email == nil &&
		u.BirthDate == nil && u.Bio == nil
}
