package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/internal/repository"
)

// AppointmentHandler owns the /api/appointments endpoints.
type AppointmentHandler struct {
	Appointments AppointmentStore
	Patients     PatientStore
	Doctors      DoctorStore
}

func NewAppointmentHandler(a AppointmentStore, p PatientStore, d DoctorStore) *AppointmentHandler {
	return &AppointmentHandler{Appointments: a, Patients: p, Doctors: d}
}

type createAppointmentReq struct {
	PatientID        string    `json:"patient_id"`
	DoctorID         string    `json:"doctor_id"`
	VisitDatetime    time.Time `json:"visit_datetime"`
	IsFollowUp       bool      `json:"is_follow_up"`
	Reason           string    `json:"reason"`
	Status           int       `json:"status"`
	CancellingReason string    `json:"cancelling_reason"`
}

// updateAppointmentReq is a partial patch: only non-nil fields are applied.
type updateAppointmentReq struct {
	PatientID        *string    `json:"patient_id"`
	DoctorID         *string    `json:"doctor_id"`
	VisitDatetime    *time.Time `json:"visit_datetime"`
	IsFollowUp       *bool      `json:"is_follow_up"`
	Reason           *string    `json:"reason"`
	Status           *int       `json:"status"`
	CancellingReason *string    `json:"cancelling_reason"`
}

// List returns every appointment.
func (h *AppointmentHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	appts, err := h.Appointments.List(ctx)
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, appts)
}

// Get returns one appointment by id.
func (h *AppointmentHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	a, err := h.Appointments.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Appointment not found")
		}
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

// Create books an appointment after verifying both referenced profiles
// exist.  The caller-supplied status is stored as-is.
func (h *AppointmentHandler) Create(c echo.Context) error {
	var req createAppointmentReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.PatientID == "" || req.DoctorID == "" || req.VisitDatetime.IsZero() {
		return badRequest(c, "patient_id, doctor_id and visit_datetime are required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.Patients.GetByID(ctx, req.PatientID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Patient not found")
		}
		return serverError(c, err)
	}
	if _, err := h.Doctors.GetByID(ctx, req.DoctorID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Doctor not found")
		}
		return serverError(c, err)
	}

	a := model.Appointment{
		PatientID:        req.PatientID,
		DoctorID:         req.DoctorID,
		VisitDatetime:    req.VisitDatetime.UTC(),
		IsFollowUp:       req.IsFollowUp,
		Reason:           req.Reason,
		Status:           req.Status,
		CancellingReason: req.CancellingReason,
	}
	if err := h.Appointments.Create(ctx, &a); err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message":     "Appointment created successfully",
		"appointment": a,
	})
}

// Update applies the supplied fields over the stored row.  Any status value
// may overwrite any other; cancellation is just an update that sets status 0
// and a cancelling_reason.
func (h *AppointmentHandler) Update(c echo.Context) error {
	var req updateAppointmentReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	a, err := h.Appointments.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Appointment not found")
		}
		return serverError(c, err)
	}

	if req.PatientID != nil {
		a.PatientID = *req.PatientID
	}
	if req.DoctorID != nil {
		a.DoctorID = *req.DoctorID
	}
	if req.VisitDatetime != nil {
		a.VisitDatetime = req.VisitDatetime.UTC()
	}
	if req.IsFollowUp != nil {
		a.IsFollowUp = *req.IsFollowUp
	}
	if req.Reason != nil {
		a.Reason = *req.Reason
	}
	if req.Status != nil {
		a.Status = *req.Status
	}
	if req.CancellingReason != nil {
		a.CancellingReason = *req.CancellingReason
	}

	if err := h.Appointments.Update(ctx, &a); err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":     "Appointment updated successfully",
		"appointment": a,
	})
}

// Delete removes the appointment row.  Billing records and medical records
// referencing it stay behind.
func (h *AppointmentHandler) Delete(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.Appointments.GetByID(ctx, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Appointment not found")
		}
		return serverError(c, err)
	}
	if err := h.Appointments.Delete(ctx, c.Param("id")); err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Appointment deleted successfully"})
}
