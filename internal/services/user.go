package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/mentorhub/apiserver/internal/storage"
	"github.com/mentorhub/apiserver/internal/store"
	"github.com/mentorhub/apiserver/types"
	"golang.org/x/crypto/bcrypt"
)

// DefaultPosition is assigned to accounts registered without an explicit
// role label.
const DefaultPosition = "Mentor"

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id int) (types.User, error)
	GetByPhone(ctx context.Context, phone string) (types.User, error)
	Create(ctx context.Context, user types.User) (types.User, error)
	UpdateProfile(ctx context.Context, id int, update types.ProfileUpdate) (types.User, error)
	SetAvatarURL(ctx context.Context, id int, avatarURL string) error
}

// UserService encapsulates account use-cases: registration, login, and
// profile maintenance.
type UserService struct {
	repo          UserRepository
	avatars       *storage.Storage
	avatarBaseURL string
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// SetAvatarStorage wires optional object storage for avatar uploads.
func (s *UserService) SetAvatarStorage(avatars *storage.Storage, publicBaseURL string) {
	s.avatars = avatars
	s.avatarBaseURL = strings.TrimRight(publicBaseURL, "/")
}

// RegisterParams carries the registration input.
type RegisterParams struct {
	Phone    string
	FullName string
	Position string
	Password string
}

// Register creates an account. The password is bcrypt-hashed before it
// reaches the store; the plaintext is never persisted.
func (s *UserService) Register(ctx context.Context, params RegisterParams) (types.User, error) {
	params.Phone = strings.TrimSpace(params.Phone)
	params.FullName = strings.TrimSpace(params.FullName)
	params.Position = strings.TrimSpace(params.Position)
	if params.Phone == "" || params.FullName == "" || params.Password == "" {
		return types.User{}, invalid("phone, full name and password are required")
	}
	if params.Position == "" {
		params.Position = DefaultPosition
	}

	if _, err := s.repo.GetByPhone(ctx, params.Phone); err == nil {
		return types.User{}, store.ErrDuplicate
	} else if !errors.Is(err, store.ErrNotFound) {
		return types.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return types.User{}, err
	}

	// The unique index on phone still backstops concurrent registrations;
	// the store maps that violation to ErrDuplicate.
	return s.repo.Create(ctx, types.User{
		Phone:        params.Phone,
		FullName:     params.FullName,
		Position:     params.Position,
		PasswordHash: string(hashed),
	})
}

// Login verifies credentials and returns the matching profile. Unknown
// phone and wrong password both yield ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, phone, password string) (types.User, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" || password == "" {
		return types.User{}, invalid("phone and password are required")
	}

	user, err := s.repo.GetByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.User{}, ErrInvalidCredentials
		}
		return types.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return types.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// UpdateProfile applies a partial profile mutation and returns the
// post-mutation profile.
func (s *UserService) UpdateProfile(ctx context.Context, userID int, update types.ProfileUpdate) (types.User, error) {
	if userID < 1 {
		return types.User{}, invalid("user id is required")
	}
	if update.IsEmpty() {
		return types.User{}, invalid("no fields to update")
	}
	return s.repo.UpdateProfile(ctx, userID, update)
}

// GetByID loads a single profile.
func (s *UserService) GetByID(ctx context.Context, userID int) (types.User, error) {
	return s.repo.GetByID(ctx, userID)
}

// SaveAvatar stores the uploaded image in object storage and records its
// public URL on the profile.
func (s *UserService) SaveAvatar(ctx context.Context, userID int, filename, contentType string, data []byte) (types.User, error) {
	if userID < 1 {
		return types.User{}, invalid("user id is required")
	}
	if len(data) == 0 {
		return types.User{}, invalid("avatar file is required")
	}
	if s.avatars == nil {
		return types.User{}, ErrStorageDisabled
	}

	if _, err := s.repo.GetByID(ctx, userID); err != nil {
		return types.User{}, err
	}

	ext := strings.ToLower(path.Ext(filename))
	key := fmt.Sprintf("avatars/%d%s", userID, ext)
	if err := s.avatars.Put(ctx, key, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		return types.User{}, err
	}

	avatarURL := key
	if s.avatarBaseURL != "" {
		avatarURL = s.avatarBaseURL + "/" + key
	}
	if err := s.repo.SetAvatarURL(ctx, userID, avatarURL); err != nil {
		return types.User{}, err
	}
	return s.repo.GetByID(ctx, userID)
}
