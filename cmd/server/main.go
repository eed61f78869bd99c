package main // Entry point package

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/medicore/hospital-api/internal/config"
	"github.com/medicore/hospital-api/internal/database"
	"github.com/medicore/hospital-api/internal/handler"
	"github.com/medicore/hospital-api/internal/mailer"
	"github.com/medicore/hospital-api/internal/queue"
	"github.com/medicore/hospital-api/internal/repository"
	"github.com/medicore/hospital-api/internal/router"
	"github.com/medicore/hospital-api/internal/scheduler"
	"github.com/medicore/hospital-api/internal/service"
)

func main() {
	// .env is a development convenience; in production the variables come
	// from the environment directly.
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.WithError(err).Fatal("database connection failed")
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Warn("redis unavailable, rate limiting and caching disabled")
	}

	users := repository.NewUserRepo(db)
	patients := repository.NewPatientRepo(db)
	doctors := repository.NewDoctorRepo(db)
	appointments := repository.NewAppointmentRepo(db)
	billings := repository.NewBillingRepo(db)
	specializations := repository.NewSpecializationRepo(db)
	doctorSpecs := repository.NewDoctorSpecializationRepo(db)
	records := repository.NewMedicalRecordRepo(db)
	staff := repository.NewStaffRepo(db)
	roles := repository.NewRoleRepo(db)
	userRoles := repository.NewUserRoleRepo(db)

	mail := service.NewMailPublisher(queue.BrokerURL(), log)

	h := router.Handlers{
		Auth:                  handler.NewAuthHandler(cfg, users, patients, doctors, mail),
		Confirmation:          handler.NewConfirmationHandler(cfg.JWTSecret, patients, doctors),
		Patients:              handler.NewPatientHandler(patients, users),
		Doctors:               handler.NewDoctorHandler(doctors, users),
		Appointments:          handler.NewAppointmentHandler(appointments, patients, doctors),
		Billings:              handler.NewBillingHandler(billings, patients, appointments),
		Specializations:       handler.NewSpecializationHandler(specializations),
		DoctorSpecializations: handler.NewDoctorSpecializationHandler(doctorSpecs, specializations, doctors),
		MedicalRecords:        handler.NewMedicalRecordHandler(records, patients),
		Staff:                 handler.NewStaffHandler(staff, users),
		Roles:                 handler.NewRoleHandler(roles),
		UserRoles:             handler.NewUserRoleHandler(userRoles, roles),
	}

	e := echo.New()
	e.HideBanner = true
	router.Register(e, h, cfg, users, rdb)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Background workers: the SMTP delivery consumer and the daily
	// appointment-reminder sweep.  Both stop when the context is cancelled.
	smtp := mailer.NewSMTPMailer(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass)
	go func() {
		if err := queue.StartMailConsumer(ctx, smtp, log); err != nil && ctx.Err() == nil {
			log.WithError(err).Error("mail consumer stopped")
		}
	}()

	reminders := &scheduler.ReminderJob{Appointments: appointments, Mail: mail, Log: log}
	go reminders.Start(ctx)

	go func() {
		<-ctx.Done()
		_ = e.Shutdown(context.Background())
	}()

	addr := ":" + cfg.Port
	log.WithFields(logrus.Fields{"addr": addr, "env": cfg.Env}).Info("server starting")
	if err := e.Start(addr); err != nil && ctx.Err() == nil {
		log.WithError(err).Fatal("server stopped")
	}
}
