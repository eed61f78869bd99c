package model

import "time"

// Appointment status codes.  Code 0 covers both "pending" and "canceled";
// there is no transition table and any permitted caller may overwrite the
// status unconditionally.
const (
    AppointmentStatusPending   = 0 // also used for canceled appointments
    AppointmentStatusConfirmed = 1
)

// Appointment links a patient and a doctor to a visit slot.  Both referenced
// profiles must exist at creation time; nothing is enforced afterwards, so
// deleting either side leaves the appointment orphaned.
//
// Fields:
//  ID               – primary key (UUID).
//  PatientID        – patient profile reference.
//  DoctorID         – doctor profile reference.
//  VisitDatetime    – scheduled visit date and time (UTC).
//  IsFollowUp       – whether this is a follow-up visit.
//  Reason           – reason for the visit (optional).
//  Status           – numeric status code (0 pending/canceled, 1 confirmed).
//  CancellingReason – reason for cancellation (optional).
type Appointment struct {
    ID               string    `json:"id"`                          // appointments.id
    PatientID        string    `json:"patient_id"`                  // appointments.patient_id
    DoctorID         string    `json:"doctor_id"`                   // appointments.doctor_id
    VisitDatetime    time.Time `json:"visit_datetime"`              // appointments.visit_datetime
    IsFollowUp       bool      `json:"is_follow_up"`                // appointments.is_follow_up
    Reason           string    `json:"reason,omitempty"`            // appointments.reason
    Status           int       `json:"status"`                      // appointments.status
    CancellingReason string    `json:"cancelling_reason,omitempty"` // appointments.cancelling_reason
}
