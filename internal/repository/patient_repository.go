package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/medicore/hospital-api/internal/model"
)

// PatientRepo provides CRUD access to the patients role-profile table.
type PatientRepo struct{ DB *sql.DB }

func NewPatientRepo(db *sql.DB) *PatientRepo { return &PatientRepo{DB: db} }

// Create inserts a patient profile and fills in the generated ID.  New
// profiles are inactive until the confirmation link is redeemed.
func (r *PatientRepo) Create(ctx context.Context, p *model.Patient) error {
	p.ID = uuid.NewString()
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO patients (id,user_id,marital_status,is_active) VALUES (?,?,?,?)",
		p.ID, p.UserID, p.MaritalStatus, p.IsActive)
	return err
}

// GetByID fetches a patient profile by its own id.
func (r *PatientRepo) GetByID(ctx context.Context, id string) (model.Patient, error) {
	return scanPatient(r.DB.QueryRowContext(ctx,
		"SELECT id,user_id,marital_status,is_active FROM patients WHERE id=? LIMIT 1", id))
}

// GetByUserID fetches a patient profile by the owning user's id.  Role
// resolution at login probes this.
func (r *PatientRepo) GetByUserID(ctx context.Context, userID string) (model.Patient, error) {
	return scanPatient(r.DB.QueryRowContext(ctx,
		"SELECT id,user_id,marital_status,is_active FROM patients WHERE user_id=? LIMIT 1", userID))
}

// List returns all patient profiles.
func (r *PatientRepo) List(ctx context.Context) ([]model.Patient, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,user_id,marital_status,is_active FROM patients")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Patient{}
	for rows.Next() {
		var p model.Patient
		if err := rows.Scan(&p.ID, &p.UserID, &p.MaritalStatus, &p.IsActive); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Update overwrites the mutable fields of a patient profile.  Callers load
// the row first, so a zero-row result here just means a no-change write.
func (r *PatientRepo) Update(ctx context.Context, p *model.Patient) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE patients SET marital_status=?,is_active=? WHERE id=?",
		p.MaritalStatus, p.IsActive, p.ID)
	return err
}

// SetActiveByUserID flips the activation flag for the profile owned by the
// given user.  Re-activating an already-active profile is a harmless no-op
// write; zero affected rows only signal a missing profile.
func (r *PatientRepo) SetActiveByUserID(ctx context.Context, userID string, active bool) error {
	if _, err := r.GetByUserID(ctx, userID); err != nil {
		return err
	}
	_, err := r.DB.ExecContext(ctx,
		"UPDATE patients SET is_active=? WHERE user_id=?", active, userID)
	return err
}

// Delete removes a patient profile.  Dependent appointments, billings and
// medical records are left in place (no cascade).
func (r *PatientRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM patients WHERE id=?", id)
	if err != nil {
		return err
	}
	return notFoundOnZero(res)
}

func scanPatient(row *sql.Row) (model.Patient, error) {
	var p model.Patient
	err := row.Scan(&p.ID, &p.UserID, &p.MaritalStatus, &p.IsActive)
	if err == sql.ErrNoRows {
		return p, ErrNotFound
	}
	return p, err
}

// notFoundOnZero maps an UPDATE/DELETE that touched no rows to ErrNotFound.
func notFoundOnZero(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
