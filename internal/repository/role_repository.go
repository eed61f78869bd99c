package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/medicore/hospital-api/internal/model"
)

// RoleRepo provides CRUD access to the generic roles table.  Note that the
// access-control layer never consults these rows; effective roles come from
// profile existence.  The CRUD surface is administrative bookkeeping only.
type RoleRepo struct{ DB *sql.DB }

func NewRoleRepo(db *sql.DB) *RoleRepo { return &RoleRepo{DB: db} }

// Create inserts a role and fills in the generated ID.
func (r *RoleRepo) Create(ctx context.Context, role *model.Role) error {
	role.ID = uuid.NewString()
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO roles (id,role_name,is_active) VALUES (?,?,?)",
		role.ID, role.RoleName, role.IsActive)
	return err
}

// GetByID fetches a single role.
func (r *RoleRepo) GetByID(ctx context.Context, id string) (model.Role, error) {
	var role model.Role
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,role_name,is_active FROM roles WHERE id=? LIMIT 1", id).
		Scan(&role.ID, &role.RoleName, &role.IsActive)
	if err == sql.ErrNoRows {
		return role, ErrNotFound
	}
	return role, err
}

// List returns all roles.
func (r *RoleRepo) List(ctx context.Context) ([]model.Role, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT id,role_name,is_active FROM roles")
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

// Update overwrites the mutable fields of a role.
func (r *RoleRepo) Update(ctx context.Context, role *model.Role) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE roles SET role_name=?,is_active=? WHERE id=?",
		role.RoleName, role.IsActive, role.ID)
	return err
}

// Delete removes a role; user_roles rows referencing it survive.
func (r *RoleRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM roles WHERE id=?", id)
	if err != nil {
		return err
	}
	return notFoundOnZero(res)
}
