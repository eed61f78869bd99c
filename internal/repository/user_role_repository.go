package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/medicore/hospital-api/internal/model"
)

// UserRoleRepo manages the user<->role join table.  Duplicate assignments
// are possible; removal targets the pair by exact match.
type UserRoleRepo struct{ DB *sql.DB }

func NewUserRoleRepo(db *sql.DB) *UserRoleRepo { return &UserRoleRepo{DB: db} }

// Create inserts a user-role assignment.
func (r *UserRoleRepo) Create(ctx context.Context, ur *model.UserRole) error {
	ur.ID = uuid.NewString()
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO user_roles (id,user_id,role_id) VALUES (?,?,?)",
		ur.ID, ur.UserID, ur.RoleID)
	return err
}

// ListByUser returns the roles assigned to a user via the join table.
func (r *UserRoleRepo) ListByUser(ctx context.Context, userID string) ([]model.Role, error) {
	const q = `SELECT ro.id, ro.role_name, ro.is_active
        FROM user_roles ur
        JOIN roles ro ON ro.id = ur.role_id
        WHERE ur.user_id = ?`
	rows, err := r.DB.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Role{}
	for rows.Next() {
		var role model.Role
		if err := rows.Scan(&role.ID, &role.RoleName, &role.IsActive); err != nil {
			return nil, err
		}
		out = append(out, role)
	}
	return out, rows.Err()
}

// DeletePair removes a (user, role) assignment.  ErrNotFound when absent.
func (r *UserRoleRepo) DeletePair(ctx context.Context, userID, roleID string) error {
	res, err := r.DB.ExecContext(ctx,
		"DELETE FROM user_roles WHERE user_id=? AND role_id=? LIMIT 1", userID, roleID)
	if err != nil {
		return err
	}
	return notFoundOnZero(res)
}
