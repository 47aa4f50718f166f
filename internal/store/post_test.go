package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mentorhub/apiserver/types"
)

func TestPostRepositoryCreateResolvesAuthor(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO posts").
		WithArgs(5, "first post", true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, time.Now()))
	mock.ExpectQuery("SELECT full_name, position FROM users").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"full_name", "position"}).AddRow("Anna", "Mentor"))
	mock.ExpectCommit()

	repo := NewPostRepository(db)
	post, err := repo.Create(context.Background(), types.Post{
		UserID:      5,
		Content:     "first post",
		IsModerated: true,
	})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if post.UserName != "Anna" || post.UserPosition != "Mentor" {
		t.Fatalf("unexpected author: %q %q", post.UserName, post.UserPosition)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPostRepositoryListModeratedOnly(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "user_id", "full_name", "position", "content", "is_moderated", "created_at"}).
		AddRow(2, 5, "Anna", "Mentor", "second", true, now).
		AddRow(1, 6, "Boris", "Mentee", "first", true, now.Add(-time.Hour))
	mock.ExpectQuery(`WHERE p\.is_moderated = true`).
		WithArgs(50).
		WillReturnRows(rows)

	repo := NewPostRepository(db)
	posts, err := repo.ListModerated(context.Background(), 50)
	if err != nil {
		t.Fatalf("list posts: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	for _, post := range posts {
		if !post.IsModerated {
			t.Fatalf("post %d not moderated", post.ID)
		}
	}
}
