package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/medicore/hospital-api/internal/model"
)

// BillingRepo provides CRUD access to billing records.
type BillingRepo struct{ DB *sql.DB }

func NewBillingRepo(db *sql.DB) *BillingRepo { return &BillingRepo{DB: db} }

const billingColumns = "id,patient_id,appointment_id,amount,amount_paid,status,last_payment_date"

// Create inserts a billing record and fills in the generated ID.  The status
// supplied by the caller is stored verbatim; derivation only runs on update.
func (r *BillingRepo) Create(ctx context.Context, b *model.Billing) error {
	b.ID = uuid.NewString()
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO billings (id,patient_id,appointment_id,amount,amount_paid,status,last_payment_date) VALUES (?,?,?,?,?,?,?)",
		b.ID, b.PatientID, b.AppointmentID, b.Amount, b.AmountPaid, b.Status, b.LastPaymentDate)
	return err
}

// GetByID fetches a single billing record.
func (r *BillingRepo) GetByID(ctx context.Context, id string) (model.Billing, error) {
	var b model.Billing
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+billingColumns+" FROM billings WHERE id=? LIMIT 1", id).
		Scan(&b.ID, &b.PatientID, &b.AppointmentID, &b.Amount, &b.AmountPaid,
			&b.Status, &b.LastPaymentDate)
	if err == sql.ErrNoRows {
		return b, ErrNotFound
	}
	return b, err
}

// ListByPatient returns every billing record for a patient.
func (r *BillingRepo) ListByPatient(ctx context.Context, patientID string) ([]model.Billing, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+billingColumns+" FROM billings WHERE patient_id=?", patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Billing{}
	for rows.Next() {
		var b model.Billing
		if err := rows.Scan(&b.ID, &b.PatientID, &b.AppointmentID, &b.Amount,
			&b.AmountPaid, &b.Status, &b.LastPaymentDate); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Update overwrites the payment fields of a billing record.  The handler
// applies overrides and re-derives the status before calling this.
func (r *BillingRepo) Update(ctx context.Context, b *model.Billing) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE billings SET amount=?,amount_paid=?,status=?,last_payment_date=? WHERE id=?",
		b.Amount, b.AmountPaid, b.Status, b.LastPaymentDate, b.ID)
	return err
}

// Delete removes a billing record unconditionally; no audit trail is kept.
func (r *BillingRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM billings WHERE id=?", id)
	if err != nil {
		return err
	}
	return notFoundOnZero(res)
}
