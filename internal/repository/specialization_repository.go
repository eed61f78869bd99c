package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"

	"github.com/medicore/hospital-api/internal/model"
)

// SpecializationRepo provides CRUD access to the specialization catalog.
type SpecializationRepo struct{ DB *sql.DB }

func NewSpecializationRepo(db *sql.DB) *SpecializationRepo { return &SpecializationRepo{DB: db} }

// Create inserts a specialization and fills in the generated ID.
func (r *SpecializationRepo) Create(ctx context.Context, s *model.Specialization) error {
	s.ID = uuid.NewString()
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO specializations (id,general_title,specific_title,is_active) VALUES (?,?,?,?)",
		s.ID, s.GeneralTitle, s.SpecificTitle, s.IsActive)
	return err
}

// GetByID fetches a single specialization.
func (r *SpecializationRepo) GetByID(ctx context.Context, id string) (model.Specialization, error) {
	var s model.Specialization
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,general_title,specific_title,is_active FROM specializations WHERE id=? LIMIT 1", id).
		Scan(&s.ID, &s.GeneralTitle, &s.SpecificTitle, &s.IsActive)
	if err == sql.ErrNoRows {
		return s, ErrNotFound
	}
	return s, err
}

// List returns the whole catalog.
func (r *SpecializationRepo) List(ctx context.Context) ([]model.Specialization, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,general_title,specific_title,is_active FROM specializations ORDER BY general_title")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Specialization{}
	for rows.Next() {
		var s model.Specialization
		if err := rows.Scan(&s.ID, &s.GeneralTitle, &s.SpecificTitle, &s.IsActive); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// CountByIDs reports how many of the given ids exist.  The bulk-assign
// endpoint uses this to verify a whole batch before inserting join rows.
func (r *SpecializationRepo) CountByIDs(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	var n int
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM specializations WHERE id IN ("+placeholders+")", args...).Scan(&n)
	return n, err
}

// Update overwrites the mutable fields of a specialization.
func (r *SpecializationRepo) Update(ctx context.Context, s *model.Specialization) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE specializations SET general_title=?,specific_title=?,is_active=? WHERE id=?",
		s.GeneralTitle, s.SpecificTitle, s.IsActive, s.ID)
	return err
}

// Delete removes a specialization; join rows referencing it survive.
func (r *SpecializationRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM specializations WHERE id=?", id)
	if err != nil {
		return err
	}
	return notFoundOnZero(res)
}
