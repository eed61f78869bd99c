package scheduler

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/medicore/hospital-api/internal/queue"
	"github.com/medicore/hospital-api/internal/repository"
)

type MockAppointmentSource struct{ mock.Mock }

func (m *MockAppointmentSource) ListConfirmedBetween(ctx context.Context, from, to time.Time) ([]repository.ReminderAppointment, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]repository.ReminderAppointment), args.Error(1)
}

type MockMailPublisher struct{ mock.Mock }

func (m *MockMailPublisher) Publish(ctx context.Context, event queue.MailRequestedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestRunOnceSelectsNextCalendarDay(t *testing.T) {
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	wantFrom := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	wantTo := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	src := &MockAppointmentSource{}
	src.On("ListConfirmedBetween", mock.Anything, wantFrom, wantTo).
		Return([]repository.ReminderAppointment{}, nil)

	job := &ReminderJob{Appointments: src, Mail: &MockMailPublisher{}, Log: quietLogger()}
	require.NoError(t, job.RunOnce(context.Background(), now))
	src.AssertExpectations(t)
}

func TestRunOnceSendsOneMailToEachParty(t *testing.T) {
	visit := time.Date(2026, 8, 29, 14, 30, 0, 0, time.UTC)
	src := &MockAppointmentSource{}
	src.On("ListConfirmedBetween", mock.Anything, mock.Anything, mock.Anything).
		Return([]repository.ReminderAppointment{{
			AppointmentID: "a1",
			VisitDatetime: visit,
			PatientName:   "Jane Roe",
			PatientEmail:  "jane@example.com",
			DoctorName:    "Gregory House",
			DoctorEmail:   "house@example.com",
		}}, nil)

	var sent []queue.MailRequestedEvent
	mail := &MockMailPublisher{}
	mail.On("Publish", mock.Anything, mock.MatchedBy(func(ev queue.MailRequestedEvent) bool {
		sent = append(sent, ev)
		return true
	})).Return(nil)

	job := &ReminderJob{Appointments: src, Mail: mail, Log: quietLogger()}
	require.NoError(t, job.RunOnce(context.Background(), time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)))

	require.Len(t, sent, 2)
	assert.Equal(t, "jane@example.com", sent[0].To)
	assert.Equal(t, "Appointment Reminder", sent[0].Subject)
	assert.Contains(t, sent[0].Text, "Dear Jane Roe, you have an appointment tomorrow with Dr. Gregory House at 14:30.")
	assert.Equal(t, "house@example.com", sent[1].To)
	assert.Contains(t, sent[1].Text, "Dear Dr. Gregory House, you have an appointment tomorrow with Jane Roe at 14:30.")
}

func TestRunOnceIsolatesPerAppointmentFailures(t *testing.T) {
	visit := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	src := &MockAppointmentSource{}
	src.On("ListConfirmedBetween", mock.Anything, mock.Anything, mock.Anything).
		Return([]repository.ReminderAppointment{
			{AppointmentID: "a1", VisitDatetime: visit, PatientEmail: "broken@example.com", DoctorEmail: "d1@example.com"},
			{AppointmentID: "a2", VisitDatetime: visit, PatientEmail: "fine@example.com", DoctorEmail: "d2@example.com"},
		}, nil)

	mail := &MockMailPublisher{}
	mail.On("Publish", mock.Anything, mock.MatchedBy(func(ev queue.MailRequestedEvent) bool {
		return ev.To == "broken@example.com"
	})).Return(assert.AnError)
	mail.On("Publish", mock.Anything, mock.Anything).Return(nil)

	job := &ReminderJob{Appointments: src, Mail: mail, Log: quietLogger()}
	require.NoError(t, job.RunOnce(context.Background(), time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)))

	// All four publishes are attempted despite the first failing.
	mail.AssertNumberOfCalls(t, "Publish", 4)
}

func TestRunOnceReturnsListError(t *testing.T) {
	src := &MockAppointmentSource{}
	src.On("ListConfirmedBetween", mock.Anything, mock.Anything, mock.Anything).
		Return([]repository.ReminderAppointment(nil), assert.AnError)

	job := &ReminderJob{Appointments: src, Mail: &MockMailPublisher{}, Log: quietLogger()}
	assert.Error(t, job.RunOnce(context.Background(), time.Now()))
}
