package types

import "time"

// Post is a feed entry. Posts are auto-approved on creation: IsModerated
// acts as the feed's listing predicate, not as a pending-review gate.
type Post struct {
	// ID is the unique identifier of the post.
	ID int `json:"id" db:"id"`

	// UserID is the ID of the authoring user.
	UserID int `json:"userId" db:"user_id"`

	// UserName is the author's full name, resolved at read time.
	UserName string `json:"userName" db:"user_name"`

	// UserPosition is the author's role label, resolved at read time.
	UserPosition string `json:"userPosition" db:"user_position"`

	// Content is the post body.
	Content string `json:"content" db:"content"`

	// IsModerated marks the post as visible in the feed.
	IsModerated bool `json:"isModerated" db:"is_moderated"`

	// CreatedAt is the timestamp at which the post was created.
	CreatedAt time.Time `json:"timestamp" db:"created_at"`
}
