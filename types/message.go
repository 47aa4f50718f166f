package types

import "time"

// Message is a direct or broadcast chat message. Messages are immutable
// once created.
type Message struct {
	// ID is the unique identifier of the message.
	ID int `json:"id" db:"id"`

	// FromUserID is the ID of the sending user.
	FromUserID int `json:"fromUserId" db:"from_user_id"`

	// FromUserName is the sender's full name, resolved at read time.
	FromUserName string `json:"fromUserName" db:"from_user_name"`

	// ToUserID is the recipient's ID. Nil means the message is a
	// broadcast visible to everyone.
	ToUserID *int `json:"toUserId,omitempty" db:"to_user_id"`

	// Content is the message body.
	Content string `json:"content" db:"content"`

	// CreatedAt is the timestamp at which the message was sent.
	CreatedAt time.Time `json:"timestamp" db:"created_at"`
}

// IsBroadcast reports whether the message has no specific recipient.
func (m Message) IsBroadcast() bool {
	return m.ToUserID == nil
}
