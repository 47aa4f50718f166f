package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mentorhub/apiserver/types"
)

// PostRepository handles persistence for feed posts.
type PostRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) *PostRepository {
	return &PostRepository{db: db}
}

// ListModerated returns feed-visible posts, newest first, joined with the
// author's name and position.
func (r *PostRepository) ListModerated(ctx context.Context, limit int) ([]types.Post, error) {
	const query = `
		SELECT p.id, p.user_id, u.full_name, u.position, p.content, p.is_moderated, p.created_at
		FROM posts p
		JOIN users u ON p.user_id = u.id
		WHERE p.is_moderated = true
		ORDER BY p.created_at DESC
		LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]types.Post, 0, limit)
	for rows.Next() {
		var post types.Post
		if err := rows.Scan(
			&post.ID,
			&post.UserID,
			&post.UserName,
			&post.UserPosition,
			&post.Content,
			&post.IsModerated,
			&post.CreatedAt,
		); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return posts, nil
}

// Create inserts the post and resolves the author's name and position in
// the same transaction.
func (r *PostRepository) Create(ctx context.Context, post types.Post) (types.Post, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return types.Post{}, err
	}
	defer tx.Rollback()

	const insert = `
		INSERT INTO posts (user_id, content, is_moderated)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`
	if err := tx.QueryRowContext(
		ctx,
		insert,
		post.UserID,
		post.Content,
		post.IsModerated,
	).Scan(&post.ID, &post.CreatedAt); err != nil {
		return types.Post{}, mapError(err)
	}

	const author = `SELECT full_name, position FROM users WHERE id = $1`
	if err := tx.QueryRowContext(ctx, author, post.UserID).Scan(&post.UserName, &post.UserPosition); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Post{}, ErrNotFound
		}
		return types.Post{}, err
	}

	if err := tx.Commit(); err != nil {
		return types.Post{}, err
	}
	return post, nil
}
