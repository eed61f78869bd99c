package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/medicore/hospital-api/internal/model"
)

// AppointmentRepo provides CRUD access to appointments plus the join query
// used by the daily reminder sweep.  All timestamps are stored in UTC.
type AppointmentRepo struct{ DB *sql.DB }

func NewAppointmentRepo(db *sql.DB) *AppointmentRepo { return &AppointmentRepo{DB: db} }

const appointmentColumns = "id,patient_id,doctor_id,visit_datetime,is_follow_up,reason,status,cancelling_reason"

// Create inserts an appointment and fills in the generated ID.  Referential
// existence checks happen in the handler before this is called.
func (r *AppointmentRepo) Create(ctx context.Context, a *model.Appointment) error {
	a.ID = uuid.NewString()
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO appointments (id,patient_id,doctor_id,visit_datetime,is_follow_up,reason,status,cancelling_reason) VALUES (?,?,?,?,?,?,?,?)",
		a.ID, a.PatientID, a.DoctorID, a.VisitDatetime, a.IsFollowUp, a.Reason, a.Status, a.CancellingReason)
	return err
}

// GetByID fetches a single appointment.
func (r *AppointmentRepo) GetByID(ctx context.Context, id string) (model.Appointment, error) {
	var a model.Appointment
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+appointmentColumns+" FROM appointments WHERE id=? LIMIT 1", id).
		Scan(&a.ID, &a.PatientID, &a.DoctorID, &a.VisitDatetime, &a.IsFollowUp,
			&a.Reason, &a.Status, &a.CancellingReason)
	if err == sql.ErrNoRows {
		return a, ErrNotFound
	}
	return a, err
}

// List returns all appointments.
func (r *AppointmentRepo) List(ctx context.Context) ([]model.Appointment, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+appointmentColumns+" FROM appointments ORDER BY visit_datetime")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Appointment{}
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(&a.ID, &a.PatientID, &a.DoctorID, &a.VisitDatetime,
			&a.IsFollowUp, &a.Reason, &a.Status, &a.CancellingReason); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Update overwrites the full row.  Partial-patch semantics live in the
// handler: it loads the row, applies only the supplied fields, then saves.
func (r *AppointmentRepo) Update(ctx context.Context, a *model.Appointment) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE appointments SET patient_id=?,doctor_id=?,visit_datetime=?,is_follow_up=?,reason=?,status=?,cancelling_reason=? WHERE id=?",
		a.PatientID, a.DoctorID, a.VisitDatetime, a.IsFollowUp, a.Reason, a.Status, a.CancellingReason, a.ID)
	return err
}

// Delete removes an appointment.  Dependent billing and medical-record rows
// are intentionally left behind (no cascade).
func (r *AppointmentRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM appointments WHERE id=?", id)
	if err != nil {
		return err
	}
	return notFoundOnZero(res)
}

// ReminderAppointment is the joined row shape consumed by the reminder
// sweep: one confirmed appointment plus the contact details of both parties.
type ReminderAppointment struct {
	AppointmentID string
	VisitDatetime time.Time
	PatientName   string
	PatientEmail  string
	DoctorName    string
	DoctorEmail   string
}

// ListConfirmedBetween returns confirmed appointments whose visit_datetime
// falls in [from, to), joined with the patient and doctor user rows so the
// sweep can address its emails without further queries.
func (r *AppointmentRepo) ListConfirmedBetween(ctx context.Context, from, to time.Time) ([]ReminderAppointment, error) {
	const q = `SELECT a.id, a.visit_datetime, pu.name, pu.email, du.name, du.email
        FROM appointments a
        JOIN patients p ON p.id = a.patient_id
        JOIN users pu   ON pu.id = p.user_id
        JOIN doctors d  ON d.id = a.doctor_id
        JOIN users du   ON du.id = d.user_id
        WHERE a.status = ? AND a.visit_datetime >= ? AND a.visit_datetime < ?`
	rows, err := r.DB.QueryContext(ctx, q, model.AppointmentStatusConfirmed, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []ReminderAppointment{}
	for rows.Next() {
		var ra ReminderAppointment
		if err := rows.Scan(&ra.AppointmentID, &ra.VisitDatetime,
			&ra.PatientName, &ra.PatientEmail, &ra.DoctorName, &ra.DoctorEmail); err != nil {
			return nil, err
		}
		out = append(out, ra)
	}
	return out, rows.Err()
}
