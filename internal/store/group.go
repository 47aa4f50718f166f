package store

import (
	"context"
	"database/sql"

	"github.com/mentorhub/apiserver/types"
)

// GroupRepository handles persistence for groups and their memberships.
type GroupRepository struct {
	db *sql.DB
}

func NewGroupRepository(db *sql.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// ListForUser returns groups the user created or belongs to, newest first.
func (r *GroupRepository) ListForUser(ctx context.Context, userID int) ([]types.Group, error) {
	const query = `
		SELECT g.id, g.name, g.description, g.created_by, g.created_at,
		       (SELECT COUNT(*) FROM group_members WHERE group_id = g.id) AS member_count
		FROM groups g
		WHERE g.created_by = $1
		   OR EXISTS (SELECT 1 FROM group_members gm WHERE gm.group_id = g.id AND gm.user_id = $1)
		ORDER BY g.created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectGroups(rows)
}

// ListRecent returns the most recently created groups system-wide.
func (r *GroupRepository) ListRecent(ctx context.Context, limit int) ([]types.Group, error) {
	const query = `
		SELECT g.id, g.name, g.description, g.created_by, g.created_at,
		       (SELECT COUNT(*) FROM group_members WHERE group_id = g.id) AS member_count
		FROM groups g
		ORDER BY g.created_at DESC
		LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectGroups(rows)
}

// Create inserts the group and the creator's membership row in one
// transaction. Either both rows exist afterwards or neither does.
func (r *GroupRepository) Create(ctx context.Context, group types.Group) (types.Group, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return types.Group{}, err
	}
	defer tx.Rollback()

	const insertGroup = `
		INSERT INTO groups (name, description, created_by)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`
	if err := tx.QueryRowContext(
		ctx,
		insertGroup,
		group.Name,
		group.Description,
		group.CreatedBy,
	).Scan(&group.ID, &group.CreatedAt); err != nil {
		return types.Group{}, mapError(err)
	}

	const insertMember = `
		INSERT INTO group_members (group_id, user_id)
		VALUES ($1, $2)`
	if _, err := tx.ExecContext(ctx, insertMember, group.ID, group.CreatedBy); err != nil {
		return types.Group{}, mapError(err)
	}

	if err := tx.Commit(); err != nil {
		return types.Group{}, err
	}

	group.MemberCount = 1
	return group, nil
}

func collectGroups(rows *sql.Rows) ([]types.Group, error) {
	groups := make([]types.Group, 0)
	for rows.Next() {
		var group types.Group
		if err := rows.Scan(
			&group.ID,
			&group.Name,
			&group.Description,
			&group.CreatedBy,
			&group.CreatedAt,
			&group.MemberCount,
		); err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return groups, nil
}
