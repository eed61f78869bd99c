package model

import "time"

// Billing status values.  The status supplied at creation is stored verbatim;
// every update re-derives the status from amount vs. amount_paid, which
// collapses "Pending" into "Partial" once any update runs.  Clients depend
// on that collapse, so it is kept as-is.
const (
    BillingStatusPending = "Pending"
    BillingStatusPartial = "Partial"
    BillingStatusPaid    = "Paid"
)

// Billing is an invoice attached to an appointment.
//
// Fields:
//  ID              – primary key (UUID).
//  PatientID       – patient profile reference.
//  AppointmentID   – appointment reference.
//  Amount          – total amount owed.
//  AmountPaid      – amount paid so far (defaults to 0).
//  Status          – Pending / Partial / Paid (derived on update).
//  LastPaymentDate – timestamp of the most recent payment (nullable).
type Billing struct {
    ID              string     `json:"id"`                          // billings.id
    PatientID       string     `json:"patient_id"`                  // billings.patient_id
    AppointmentID   string     `json:"appointment_id"`              // billings.appointment_id
    Amount          float64    `json:"amount"`                      // billings.amount
    AmountPaid      float64    `json:"amount_paid"`                 // billings.amount_paid
    Status          string     `json:"status"`                      // billings.status
    LastPaymentDate *time.Time `json:"last_payment_date,omitempty"` // billings.last_payment_date (nullable)
}

// DeriveBillingStatus computes the status stored after a billing update:
// anything fully covered is Paid, everything else is Partial.  Note the
// deliberate absence of a Pending branch — see the constant block above.
func DeriveBillingStatus(amount, amountPaid float64) string {
    if amount-amountPaid <= 0 {
        return BillingStatusPaid
    }
    return BillingStatusPartial
}
