package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/internal/queue"
)

// Testify mocks for the store interfaces the handler tests exercise.

type MockUserStore struct{ mock.Mock }

func (m *MockUserStore) Create(ctx context.Context, u *model.User) error {
	args := m.Called(ctx, u)
	if args.Error(0) == nil {
		u.ID = "user-1"
	}
	return args.Error(0)
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserStore) GetByID(ctx context.Context, id string) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserStore) Update(ctx context.Context, u *model.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

type MockPatientStore struct{ mock.Mock }

func (m *MockPatientStore) Create(ctx context.Context, p *model.Patient) error {
	args := m.Called(ctx, p)
	if args.Error(0) == nil && p.ID == "" {
		p.ID = "patient-1"
	}
	return args.Error(0)
}

func (m *MockPatientStore) GetByID(ctx context.Context, id string) (model.Patient, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Patient), args.Error(1)
}

func (m *MockPatientStore) GetByUserID(ctx context.Context, userID string) (model.Patient, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.Patient), args.Error(1)
}

func (m *MockPatientStore) List(ctx context.Context) ([]model.Patient, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Patient), args.Error(1)
}

func (m *MockPatientStore) Update(ctx context.Context, p *model.Patient) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPatientStore) SetActiveByUserID(ctx context.Context, userID string, active bool) error {
	args := m.Called(ctx, userID, active)
	return args.Error(0)
}

func (m *MockPatientStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockDoctorStore struct{ mock.Mock }

func (m *MockDoctorStore) Create(ctx context.Context, d *model.Doctor) error {
	args := m.Called(ctx, d)
	if args.Error(0) == nil && d.ID == "" {
		d.ID = "doctor-1"
	}
	return args.Error(0)
}

func (m *MockDoctorStore) GetByID(ctx context.Context, id string) (model.Doctor, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Doctor), args.Error(1)
}

func (m *MockDoctorStore) GetByUserID(ctx context.Context, userID string) (model.Doctor, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.Doctor), args.Error(1)
}

func (m *MockDoctorStore) List(ctx context.Context) ([]model.Doctor, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Doctor), args.Error(1)
}

func (m *MockDoctorStore) Update(ctx context.Context, d *model.Doctor) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDoctorStore) SetActiveByUserID(ctx context.Context, userID string, active bool) error {
	args := m.Called(ctx, userID, active)
	return args.Error(0)
}

func (m *MockDoctorStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAppointmentStore struct{ mock.Mock }

func (m *MockAppointmentStore) Create(ctx context.Context, a *model.Appointment) error {
	args := m.Called(ctx, a)
	if args.Error(0) == nil && a.ID == "" {
		a.ID = "appt-1"
	}
	return args.Error(0)
}

func (m *MockAppointmentStore) GetByID(ctx context.Context, id string) (model.Appointment, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Appointment), args.Error(1)
}

func (m *MockAppointmentStore) List(ctx context.Context) ([]model.Appointment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Appointment), args.Error(1)
}

func (m *MockAppointmentStore) Update(ctx context.Context, a *model.Appointment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAppointmentStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBillingStore struct{ mock.Mock }

func (m *MockBillingStore) Create(ctx context.Context, b *model.Billing) error {
	args := m.Called(ctx, b)
	if args.Error(0) == nil && b.ID == "" {
		b.ID = "billing-1"
	}
	return args.Error(0)
}

func (m *MockBillingStore) GetByID(ctx context.Context, id string) (model.Billing, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Billing), args.Error(1)
}

func (m *MockBillingStore) ListByPatient(ctx context.Context, patientID string) ([]model.Billing, error) {
	args := m.Called(ctx, patientID)
	return args.Get(0).([]model.Billing), args.Error(1)
}

func (m *MockBillingStore) Update(ctx context.Context, b *model.Billing) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBillingStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockMailPublisher struct{ mock.Mock }

func (m *MockMailPublisher) Publish(ctx context.Context, event queue.MailRequestedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
