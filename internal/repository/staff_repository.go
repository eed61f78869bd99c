package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/medicore/hospital-api/internal/model"
)

// StaffRepo provides CRUD access to staff records.
type StaffRepo struct{ DB *sql.DB }

func NewStaffRepo(db *sql.DB) *StaffRepo { return &StaffRepo{DB: db} }

const staffColumns = "id,user_id,name,title,office_num,building_num,is_active"

// Create inserts a staff record and fills in the generated ID.
func (r *StaffRepo) Create(ctx context.Context, s *model.Staff) error {
	s.ID = uuid.NewString()
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO staff (id,user_id,name,title,office_num,building_num,is_active) VALUES (?,?,?,?,?,?,?)",
		s.ID, s.UserID, s.Name, s.Title, s.OfficeNum, s.BuildingNum, s.IsActive)
	return err
}

// GetByID fetches a single staff record.
func (r *StaffRepo) GetByID(ctx context.Context, id string) (model.Staff, error) {
	var s model.Staff
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+staffColumns+" FROM staff WHERE id=? LIMIT 1", id).
		Scan(&s.ID, &s.UserID, &s.Name, &s.Title, &s.OfficeNum, &s.BuildingNum, &s.IsActive)
	if err == sql.ErrNoRows {
		return s, ErrNotFound
	}
	return s, err
}

// List returns all staff records.
func (r *StaffRepo) List(ctx context.Context) ([]model.Staff, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT "+staffColumns+" FROM staff")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Staff{}
	for rows.Next() {
		var s model.Staff
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Title, &s.OfficeNum,
			&s.BuildingNum, &s.IsActive); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Update overwrites the mutable fields of a staff record.
func (r *StaffRepo) Update(ctx context.Context, s *model.Staff) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE staff SET name=?,title=?,office_num=?,building_num=?,is_active=? WHERE id=?",
		s.Name, s.Title, s.OfficeNum, s.BuildingNum, s.IsActive, s.ID)
	return err
}

// Delete removes a staff record.
func (r *StaffRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM staff WHERE id=?", id)
	if err != nil {
		return err
	}
	return notFoundOnZero(res)
}
