package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/internal/repository"
)

// BillingHandler owns the /api/billings endpoints.
type BillingHandler struct {
	Billings     BillingStore
	Patients     PatientStore
	Appointments AppointmentStore
}

func NewBillingHandler(b BillingStore, p PatientStore, a AppointmentStore) *BillingHandler {
	return &BillingHandler{Billings: b, Patients: p, Appointments: a}
}

type createBillingReq struct {
	PatientID     string  `json:"patient_id"`
	AppointmentID string  `json:"appointment_id"`
	Amount        float64 `json:"amount"`
	AmountPaid    float64 `json:"amount_paid"`
	Status        string  `json:"status"`
}

// updateBillingReq is a partial patch over the payment fields.
type updateBillingReq struct {
	AmountPaid      *float64   `json:"amount_paid"`
	Status          *string    `json:"status"`
	LastPaymentDate *time.Time `json:"last_payment_date"`
}

// Create stores a new billing record.  The supplied status is persisted
// verbatim — derivation only happens on update, so a record can legitimately
// sit at "Pending" until its first payment update.
func (h *BillingHandler) Create(c echo.Context) error {
	var req createBillingReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.PatientID == "" || req.AppointmentID == "" || req.Amount == 0 {
		return badRequest(c, "patient_id, appointment_id and amount are required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	// Both references must resolve; either missing yields the same 404.
	if _, err := h.Patients.GetByID(ctx, req.PatientID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Patient or Appointment not found")
		}
		return serverError(c, err)
	}
	if _, err := h.Appointments.GetByID(ctx, req.AppointmentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Patient or Appointment not found")
		}
		return serverError(c, err)
	}

	b := model.Billing{
		PatientID:     req.PatientID,
		AppointmentID: req.AppointmentID,
		Amount:        req.Amount,
		AmountPaid:    req.AmountPaid, // absent in the body means 0
		Status:        req.Status,
	}
	if err := h.Billings.Create(ctx, &b); err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Billing record created successfully",
		"billing": b,
	})
}

// ListByPatient returns all billing records for one patient.
func (h *BillingHandler) ListByPatient(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	bs, err := h.Billings.ListByPatient(ctx, c.Param("patient_id"))
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, bs)
}

// Update applies payment overrides and then re-derives the status from the
// outstanding amount.  The derivation runs unconditionally, so a supplied
// status is only an intermediate value and a "Pending" record becomes
// "Partial" after any update that leaves a balance.
func (h *BillingHandler) Update(c echo.Context) error {
	var req updateBillingReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	b, err := h.Billings.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Billing record not found")
		}
		return serverError(c, err)
	}

	if req.AmountPaid != nil {
		b.AmountPaid = *req.AmountPaid
	}
	if req.Status != nil {
		b.Status = *req.Status
	}
	if req.LastPaymentDate != nil {
		t := req.LastPaymentDate.UTC()
		b.LastPaymentDate = &t
	}
	b.Status = model.DeriveBillingStatus(b.Amount, b.AmountPaid)

	if err := h.Billings.Update(ctx, &b); err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Billing record updated successfully",
		"billing": b,
	})
}

// Delete removes a billing record and echoes it back.
func (h *BillingHandler) Delete(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	b, err := h.Billings.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Billing record not found")
		}
		return serverError(c, err)
	}
	if err := h.Billings.Delete(ctx, b.ID); err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Billing record deleted successfully",
		"billing": b,
	})
}
