package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mentorhub/apiserver/types"
)

// MessageRepository handles persistence for direct and broadcast messages.
type MessageRepository struct {
	db *sql.DB
}

func NewMessageRepository(db *sql.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// ListForUser returns the user's merged inbox: messages they sent, messages
// addressed to them, and broadcasts. Newest first.
func (r *MessageRepository) ListForUser(ctx context.Context, userID, limit int) ([]types.Message, error) {
	const query = `
		SELECT m.id, m.from_user_id, u.full_name, m.to_user_id, m.content, m.created_at
		FROM messages m
		JOIN users u ON m.from_user_id = u.id
		WHERE m.to_user_id = $1 OR m.from_user_id = $1 OR m.to_user_id IS NULL
		ORDER BY m.created_at DESC
		LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMessages(rows)
}

// ListBroadcast returns broadcast messages only, newest first.
func (r *MessageRepository) ListBroadcast(ctx context.Context, limit int) ([]types.Message, error) {
	const query = `
		SELECT m.id, m.from_user_id, u.full_name, m.to_user_id, m.content, m.created_at
		FROM messages m
		JOIN users u ON m.from_user_id = u.id
		WHERE m.to_user_id IS NULL
		ORDER BY m.created_at DESC
		LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMessages(rows)
}

// Create inserts the message and resolves the sender's display name in the
// same transaction.
func (r *MessageRepository) Create(ctx context.Context, message types.Message) (types.Message, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return types.Message{}, err
	}
	defer tx.Rollback()

	const insert = `
		INSERT INTO messages (from_user_id, to_user_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`
	var toUserID sql.NullInt64
	if message.ToUserID != nil {
		toUserID = sql.NullInt64{Int64: int64(*message.ToUserID), Valid: true}
	}
	if err := tx.QueryRowContext(
		ctx,
		insert,
		message.FromUserID,
		toUserID,
		message.Content,
	).Scan(&message.ID, &message.CreatedAt); err != nil {
		return types.Message{}, mapError(err)
	}

	const senderName = `SELECT full_name FROM users WHERE id = $1`
	if err := tx.QueryRowContext(ctx, senderName, message.FromUserID).Scan(&message.FromUserName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Message{}, ErrNotFound
		}
		return types.Message{}, err
	}

	if err := tx.Commit(); err != nil {
		return types.Message{}, err
	}
	return message, nil
}

func collectMessages(rows *sql.Rows) ([]types.Message, error) {
	messages := make([]types.Message, 0)
	for rows.Next() {
		var message types.Message
		var toUserID sql.NullInt64
		if err := rows.Scan(
			&message.ID,
			&message.FromUserID,
			&message.FromUserName,
			&toUserID,
			&message.Content,
			&message.CreatedAt,
		); err != nil {
			return nil, err
		}
		if toUserID.Valid {
			id := int(toUserID.Int64)
			message.ToUserID = &id
		}
		messages = append(messages, message)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return messages, nil
}
