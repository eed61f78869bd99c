package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/medicore/hospital-api/internal/model"
)

// DoctorSpecializationRepo manages the doctor<->specialization join table.
// No uniqueness is enforced on (doctor_id, specialization_id) pairs;
// duplicate assignments are possible.
type DoctorSpecializationRepo struct{ DB *sql.DB }

func NewDoctorSpecializationRepo(db *sql.DB) *DoctorSpecializationRepo {
	return &DoctorSpecializationRepo{DB: db}
}

// Create inserts a single join row.
func (r *DoctorSpecializationRepo) Create(ctx context.Context, ds *model.DoctorSpecialization) error {
	ds.ID = uuid.NewString()
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO doctor_specializations (id,doctor_id,specialization_id) VALUES (?,?,?)",
		ds.ID, ds.DoctorID, ds.SpecializationID)
	return err
}

// BulkCreate inserts one join row per specialization id in a single
// statement.  Passing an empty slice has no effect and returns nil.
func (r *DoctorSpecializationRepo) BulkCreate(ctx context.Context, doctorID string, specializationIDs []string) error {
	if len(specializationIDs) == 0 {
		return nil
	}
	query := "INSERT INTO doctor_specializations (id,doctor_id,specialization_id) VALUES "
	args := make([]any, 0, len(specializationIDs)*3)
	for i, specID := range specializationIDs {
		if i > 0 {
			query += ","
		}
		query += "(?,?,?)"
		args = append(args, uuid.NewString(), doctorID, specID)
	}
	_, err := r.DB.ExecContext(ctx, query, args...)
	return err
}

// ListByDoctor returns the specializations assigned to a doctor via the
// join table.
func (r *DoctorSpecializationRepo) ListByDoctor(ctx context.Context, doctorID string) ([]model.Specialization, error) {
	const q = `SELECT s.id, s.general_title, s.specific_title, s.is_active
        FROM doctor_specializations ds
        JOIN specializations s ON s.id = ds.specialization_id
        WHERE ds.doctor_id = ?`
	rows, err := r.DB.QueryContext(ctx, q, doctorID)
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

// ListDoctorsBySpecialization returns the doctors holding a specialization.
func (r *DoctorSpecializationRepo) ListDoctorsBySpecialization(ctx context.Context, specializationID string) ([]model.Doctor, error) {
	const q = `SELECT d.id, d.user_id, d.office_number, d.is_active
        FROM doctor_specializations ds
        JOIN doctors d ON d.id = ds.doctor_id
        WHERE ds.specialization_id = ?`
	rows, err := r.DB.QueryContext(ctx, q, specializationID)
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

// DeletePair removes a (doctor, specialization) assignment by exact pointer
// match.  ErrNotFound when no such pair exists.
func (r *DoctorSpecializationRepo) DeletePair(ctx context.Context, doctorID, specializationID string) error {
	res, err := r.DB.ExecContext(ctx,
		"DELETE FROM doctor_specializations WHERE doctor_id=? AND specialization_id=? LIMIT 1",
		doctorID, specializationID)
	if err != nil {
		return err
	}
	return notFoundOnZero(res)
}

// UpdatePair repoints an existing (doctor, specialization) assignment at a
// new specialization.  ErrNotFound when the original pair is absent.
func (r *DoctorSpecializationRepo) UpdatePair(ctx context.Context, doctorID, oldSpecializationID, newSpecializationID string) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE doctor_specializations SET specialization_id=? WHERE doctor_id=? AND specialization_id=? LIMIT 1",
		newSpecializationID, doctorID, oldSpecializationID)
	if err != nil {
		return err
	}
	return notFoundOnZero(res)
}
