package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mentorhub/apiserver/types"
)

const birthDateLayout = "2006-01-02"

const userColumns = `id, phone, full_name, position, email, birth_date, bio, avatar_url, password_hash, registered_at, updated_at`

// UserRepository handles persistence for users.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, id int) (types.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1`
	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.User{}, ErrNotFound
		}
		return types.User{}, err
	}
	return user, nil
}

func (r *UserRepository) GetByPhone(ctx context.Context, phone string) (types.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE phone = $1`
	user, err := scanUser(r.db.QueryRowContext(ctx, query, phone))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.User{}, ErrNotFound
		}
		return types.User{}, err
	}
	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, user types.User) (types.User, error) {
	now := time.Now()
	user.RegisteredAt = now
	user.UpdatedAt = now

	const query = `
		INSERT INTO users (phone, full_name, position, password_hash, registered_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		user.Phone,
		user.FullName,
		user.Position,
		user.PasswordHash,
		user.RegisteredAt,
		user.UpdatedAt,
	).Scan(&user.ID); err != nil {
		return types.User{}, mapError(err)
	}
	return user, nil
}

// UpdateProfile writes only the supplied fields and refreshes updated_at.
// The caller guarantees at least one field is set.
func (r *UserRepository) UpdateProfile(ctx context.Context, id int, update types.ProfileUpdate) (types.User, error) {
	sets := make([]string, 0, 6)
	args := make([]any, 0, 8)
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.FullName != nil {
		add("full_name", *update.FullName)
	}
	if update.Position != nil {
		add("position", *update.Position)
	}
	if update.Email != nil {
		add("email", *update.Email)
	}
	if update.BirthDate != nil {
		add("birth_date", *update.BirthDate)
	}
	if update.Bio != nil {
		add("bio", *update.Bio)
	}
	if len(sets) == 0 {
		return types.User{}, errors.New("no profile fields to update")
	}
	add("updated_at", time.Now())
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE users
		SET %s
		WHERE id = $%d
		RETURNING `+userColumns, strings.Join(sets, ", "), len(args))
	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.User{}, ErrNotFound
		}
		return types.User{}, err
	}
	return user, nil
}

// SetAvatarURL records the object-storage location of the user's avatar.
func (r *UserRepository) SetAvatarURL(ctx context.Context, id int, avatarURL string) error {
	const query = `
		UPDATE users
		SET avatar_url = $1,
			updated_at = $2
		WHERE id = $3`
	result, err := r.db.ExecContext(ctx, query, avatarURL, time.Now(), id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (types.User, error) {
	var user types.User
	var email, bio, avatarURL sql.NullString
	var birthDate sql.NullTime
	if err := row.Scan(
		&user.ID,
		&user.Phone,
		&user.FullName,
		&user.Position,
		&email,
		&birthDate,
		&bio,
		&avatarURL,
		&user.PasswordHash,
		&user.RegisteredAt,
		&user.UpdatedAt,
	); err != nil {
		return types.User{}, err
	}
	if email.Valid {
		user.Email = &email.String
	}
	if birthDate.Valid {
		formatted := birthDate.Time.Format(birthDateLayout)
		user.BirthDate = &formatted
	}
	if bio.Valid {
		user.Bio = &bio.String
	}
	if avatarURL.Valid {
		user.AvatarURL = &avatarURL.String
	}
	return user, nil
}
