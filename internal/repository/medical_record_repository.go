package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/medicore/hospital-api/internal/model"
)

// MedicalRecordRepo provides CRUD access to diagnosis records.
type MedicalRecordRepo struct{ DB *sql.DB }

func NewMedicalRecordRepo(db *sql.DB) *MedicalRecordRepo { return &MedicalRecordRepo{DB: db} }

const medicalRecordColumns = "id,appointment_id,patient_id,detail,medications,allergies,surgeries,created_at"

// Create inserts a medical record, stamping CreatedAt and the generated ID.
func (r *MedicalRecordRepo) Create(ctx context.Context, m *model.MedicalRecord) error {
	m.ID = uuid.NewString()
	m.CreatedAt = time.Now().UTC()
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO medical_records (id,appointment_id,patient_id,detail,medications,allergies,surgeries,created_at) VALUES (?,?,?,?,?,?,?,?)",
		m.ID, m.AppointmentID, m.PatientID, m.Detail, m.Medications, m.Allergies, m.Surgeries, m.CreatedAt)
	return err
}

// GetByID fetches a single medical record.
func (r *MedicalRecordRepo) GetByID(ctx context.Context, id string) (model.MedicalRecord, error) {
	var m model.MedicalRecord
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+medicalRecordColumns+" FROM medical_records WHERE id=? LIMIT 1", id).
		Scan(&m.ID, &m.AppointmentID, &m.PatientID, &m.Detail, &m.Medications,
			&m.Allergies, &m.Surgeries, &m.CreatedAt)
	if err == sql.ErrNoRows {
		return m, ErrNotFound
	}
	return m, err
}

// ListByPatient returns every medical record for a patient, newest first.
func (r *MedicalRecordRepo) ListByPatient(ctx context.Context, patientID string) ([]model.MedicalRecord, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+medicalRecordColumns+" FROM medical_records WHERE patient_id=? ORDER BY created_at DESC", patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.MedicalRecord{}
	for rows.Next() {
		var m model.MedicalRecord
		if err := rows.Scan(&m.ID, &m.AppointmentID, &m.PatientID, &m.Detail,
			&m.Medications, &m.Allergies, &m.Surgeries, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Update overwrites the diagnosis text fields of a record.
func (r *MedicalRecordRepo) Update(ctx context.Context, m *model.MedicalRecord) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE medical_records SET detail=?,medications=?,allergies=?,surgeries=? WHERE id=?",
		m.Detail, m.Medications, m.Allergies, m.Surgeries, m.ID)
	return err
}

// Delete removes a medical record.
func (r *MedicalRecordRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM medical_records WHERE id=?", id)
	if err != nil {
		return err
	}
	return notFoundOnZero(res)
}
