package model

import "time"

// MedicalRecord is a diagnosis written against an appointment.  Records are
// append-only in intent: there is no versioning, and deleting an appointment
// leaves its records in place.  PatientID is carried alongside the
// appointment reference so records can be listed per patient directly.
//
// Fields:
//  ID            – primary key (UUID).
//  AppointmentID – appointment reference.
//  PatientID     – patient profile reference.
//  Detail        – diagnosis detail.
//  Medications   – prescribed medications.
//  Allergies     – known allergies.
//  Surgeries     – past surgeries.
//  CreatedAt     – creation timestamp.
type MedicalRecord struct {
    ID            string    `json:"id"`             // medical_records.id
    AppointmentID string    `json:"appointment_id"` // medical_records.appointment_id
    PatientID     string    `json:"patient_id"`     // medical_records.patient_id
    Detail        string    `json:"detail"`         // medical_records.detail
    Medications   string    `json:"medications"`    // medical_records.medications
    Allergies     string    `json:"allergies"`      // medical_records.allergies
    Surgeries     string    `json:"surgeries"`      // medical_records.surgeries
    CreatedAt     time.Time `json:"created_at"`     // medical_records.created_at
}
