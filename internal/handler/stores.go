package handler

import (
	"context"

	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/internal/queue"
)

// The handler layer depends on narrow store interfaces rather than the
// concrete repositories so tests can substitute mocks.  The *Repo types in
// internal/repository satisfy these by construction.

// UserStore is the identity slice handlers need.
type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByID(ctx context.Context, id string) (model.User, error)
	Update(ctx context.Context, u *model.User) error
}

// PatientStore covers patient profiles.
type PatientStore interface {
	Create(ctx context.Context, p *model.Patient) error
	GetByID(ctx context.Context, id string) (model.Patient, error)
	GetByUserID(ctx context.Context, userID string) (model.Patient, error)
	List(ctx context.Context) ([]model.Patient, error)
	Update(ctx context.Context, p *model.Patient) error
	SetActiveByUserID(ctx context.Context, userID string, active bool) error
	Delete(ctx context.Context, id string) error
}

// DoctorStore covers doctor profiles.
type DoctorStore interface {
	Create(ctx context.Context, d *model.Doctor) error
	GetByID(ctx context.Context, id string) (model.Doctor, error)
	GetByUserID(ctx context.Context, userID string) (model.Doctor, error)
	List(ctx context.Context) ([]model.Doctor, error)
	Update(ctx context.Context, d *model.Doctor) error
	SetActiveByUserID(ctx context.Context, userID string, active bool) error
	Delete(ctx context.Context, id string) error
}

// AppointmentStore covers appointments.
type AppointmentStore interface {
	Create(ctx context.Context, a *model.Appointment) error
	GetByID(ctx context.Context, id string) (model.Appointment, error)
	List(ctx context.Context) ([]model.Appointment, error)
	Update(ctx context.Context, a *model.Appointment) error
	Delete(ctx context.Context, id string) error
}

// BillingStore covers billing records.
type BillingStore interface {
	Create(ctx context.Context, b *model.Billing) error
	GetByID(ctx context.Context, id string) (model.Billing, error)
	ListByPatient(ctx context.Context, patientID string) ([]model.Billing, error)
	Update(ctx context.Context, b *model.Billing) error
	Delete(ctx context.Context, id string) error
}

// SpecializationStore covers the specialization catalog.
type SpecializationStore interface {
	Create(ctx context.Context, s *model.Specialization) error
	GetByID(ctx context.Context, id string) (model.Specialization, error)
	List(ctx context.Context) ([]model.Specialization, error)
	CountByIDs(ctx context.Context, ids []string) (int, error)
	Update(ctx context.Context, s *model.Specialization) error
	Delete(ctx context.Context, id string) error
}

// DoctorSpecializationStore covers the doctor↔specialization join.
type DoctorSpecializationStore interface {
	Create(ctx context.Context, ds *model.DoctorSpecialization) error
	BulkCreate(ctx context.Context, doctorID string, specializationIDs []string) error
	ListByDoctor(ctx context.Context, doctorID string) ([]model.Specialization, error)
	ListDoctorsBySpecialization(ctx context.Context, specializationID string) ([]model.Doctor, error)
	DeletePair(ctx context.Context, doctorID, specializationID string) error
	UpdatePair(ctx context.Context, doctorID, oldSpecializationID, newSpecializationID string) error
}

// StaffStore covers staff records.
type StaffStore interface {
	Create(ctx context.Context, s *model.Staff) error
	GetByID(ctx context.Context, id string) (model.Staff, error)
	List(ctx context.Context) ([]model.Staff, error)
	Update(ctx context.Context, s *model.Staff) error
	Delete(ctx context.Context, id string) error
}

// RoleStore covers the role catalog.
type RoleStore interface {
	Create(ctx context.Context, role *model.Role) error
	GetByID(ctx context.Context, id string) (model.Role, error)
	List(ctx context.Context) ([]model.Role, error)
	Update(ctx context.Context, role *model.Role) error
	Delete(ctx context.Context, id string) error
}

// UserRoleStore covers the user↔role join.
type UserRoleStore interface {
	Create(ctx context.Context, ur *model.UserRole) error
	ListByUser(ctx context.Context, userID string) ([]model.Role, error)
	DeletePair(ctx context.Context, userID, roleID string) error
}

// MedicalRecordStore covers medical records.
type MedicalRecordStore interface {
	Create(ctx context.Context, m *model.MedicalRecord) error
	GetByID(ctx context.Context, id string) (model.MedicalRecord, error)
	ListByPatient(ctx context.Context, patientID string) ([]model.MedicalRecord, error)
	Update(ctx context.Context, m *model.MedicalRecord) error
	Delete(ctx context.Context, id string) error
}

// MailPublisher queues an outbound email event for background delivery.
type MailPublisher interface {
	Publish(ctx context.Context, event queue.MailRequestedEvent) error
}
