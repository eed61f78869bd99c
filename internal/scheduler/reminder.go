// Package scheduler runs the daily appointment-reminder sweep: every morning
// it looks up tomorrow's confirmed appointments and queues a reminder email
// to the patient and the doctor of each one.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/medicore/hospital-api/internal/queue"
	"github.com/medicore/hospital-api/internal/repository"
)

// reminderHour is the UTC hour of day at which the sweep fires.
const reminderHour = 9

// AppointmentSource lists confirmed appointments in a time window, joined
// with the participants' names and email addresses.
type AppointmentSource interface {
	ListConfirmedBetween(ctx context.Context, from, to time.Time) ([]repository.ReminderAppointment, error)
}

// MailPublisher queues an email for background delivery.
type MailPublisher interface {
	Publish(ctx context.Context, event queue.MailRequestedEvent) error
}

// ReminderJob owns the daily sweep. Appointments supplies tomorrow's
// confirmed visits and Mail queues the reminders.
type ReminderJob struct {
	Appointments AppointmentSource
	Mail         MailPublisher
	Log          *logrus.Logger
}

// Start blocks until ctx is cancelled, running the sweep once per day at
// 09:00 UTC. A failed run is logged and retried at the next tick.
func (j *ReminderJob) Start(ctx context.Context) {
	for {
		now := time.Now().UTC()
		next := time.Date(now.Year(), now.Month(), now.Day(), reminderHour, 0, 0, 0, time.UTC)
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(next.Sub(now)):
		}
		if err := j.RunOnce(ctx, time.Now().UTC()); err != nil {
			j.Log.WithError(err).Error("reminder: sweep failed")
		}
	}
}

// RunOnce performs a single sweep relative to now: it selects confirmed
// appointments falling on the next calendar day (UTC) and queues one
// reminder to the patient and one to the doctor for each. A failure on one
// appointment is logged and does not stop the rest of the sweep; only a
// failure to list appointments is returned.
func (j *ReminderJob) RunOnce(ctx context.Context, now time.Time) error {
	now = now.UTC()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Add(24 * time.Hour)
	to := from.Add(24 * time.Hour)

	appts, err := j.Appointments.ListConfirmedBetween(ctx, from, to)
	if err != nil {
		return fmt.Errorf("list confirmed appointments: %w", err)
	}
	j.Log.WithField("count", len(appts)).Info("reminder: sweep started")

	for _, a := range appts {
		when := a.VisitDatetime.UTC().Format("15:04")

		patientText := fmt.Sprintf("Dear %s, you have an appointment tomorrow with Dr. %s at %s.",
			a.PatientName, a.DoctorName, when)
		if err := j.publish(ctx, a.PatientEmail, "Appointment Reminder", patientText); err != nil {
			j.Log.WithError(err).WithField("appointment_id", a.AppointmentID).
				Error("reminder: patient mail failed")
		}

		doctorText := fmt.Sprintf("Dear Dr. %s, you have an appointment tomorrow with %s at %s.",
			a.DoctorName, a.PatientName, when)
		if err := j.publish(ctx, a.DoctorEmail, "Appointment Reminder", doctorText); err != nil {
			j.Log.WithError(err).WithField("appointment_id", a.AppointmentID).
				Error("reminder: doctor mail failed")
		}
	}
	return nil
}

func (j *ReminderJob) publish(ctx context.Context, to, subject, text string) error {
	return j.Mail.Publish(ctx, queue.MailRequestedEvent{
		To:      to,
		Subject: subject,
		Text:    text,
		HTML:    "<p>" + text + "</p>",
	})
}
