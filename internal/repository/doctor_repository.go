package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/medicore/hospital-api/internal/model"
)

// DoctorRepo provides CRUD access to the doctors role-profile table.
type DoctorRepo struct{ DB *sql.DB }

func NewDoctorRepo(db *sql.DB) *DoctorRepo { return &DoctorRepo{DB: db} }

// Create inserts a doctor profile and fills in the generated ID.
func (r *DoctorRepo) Create(ctx context.Context, d *model.Doctor) error {
	d.ID = uuid.NewString()
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO doctors (id,user_id,office_number,is_active) VALUES (?,?,?,?)",
		d.ID, d.UserID, d.OfficeNumber, d.IsActive)
	return err
}

// GetByID fetches a doctor profile by its own id.
func (r *DoctorRepo) GetByID(ctx context.Context, id string) (model.Doctor, error) {
	return scanDoctor(r.DB.QueryRowContext(ctx,
		"SELECT id,user_id,office_number,is_active FROM doctors WHERE id=? LIMIT 1", id))
}

// GetByUserID fetches a doctor profile by the owning user's id.  The login
// role probe checks this table before patients.
func (r *DoctorRepo) GetByUserID(ctx context.Context, userID string) (model.Doctor, error) {
	return scanDoctor(r.DB.QueryRowContext(ctx,
		"SELECT id,user_id,office_number,is_active FROM doctors WHERE user_id=? LIMIT 1", userID))
}

// List returns all doctor profiles.
func (r *DoctorRepo) List(ctx context.Context) ([]model.Doctor, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,user_id,office_number,is_active FROM doctors")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Doctor{}
	for rows.Next() {
		var d model.Doctor
		if err := rows.Scan(&d.ID, &d.UserID, &d.OfficeNumber, &d.IsActive); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Update overwrites the mutable fields of a doctor profile.
func (r *DoctorRepo) Update(ctx context.Context, d *model.Doctor) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE doctors SET office_number=?,is_active=? WHERE id=?",
		d.OfficeNumber, d.IsActive, d.ID)
	return err
}

// SetActiveByUserID flips the activation flag for the profile owned by the
// given user.  Used by the confirmation flow.
func (r *DoctorRepo) SetActiveByUserID(ctx context.Context, userID string, active bool) error {
	if _, err := r.GetByUserID(ctx, userID); err != nil {
		return err
	}
	_, err := r.DB.ExecContext(ctx,
		"UPDATE doctors SET is_active=? WHERE user_id=?", active, userID)
	return err
}

// Delete removes a doctor profile without touching dependent rows.
func (r *DoctorRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM doctors WHERE id=?", id)
	if err != nil {
		return err
	}
	return notFoundOnZero(res)
}

func scanDoctor(row *sql.Row) (model.Doctor, error) {
	var d model.Doctor
	err := row.Scan(&d.ID, &d.UserID, &d.OfficeNumber, &d.IsActive)
	if err == sql.ErrNoRows {
		return d, ErrNotFound
	}
	return d, err
}
