package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/internal/repository"
)

// MedicalRecordHandler owns the /api/medicalRecords endpoints.  Every
// operation is scoped by patient and verifies the patient exists first.
type MedicalRecordHandler struct {
	Records  MedicalRecordStore
	Patients PatientStore
}

func NewMedicalRecordHandler(r MedicalRecordStore, p PatientStore) *MedicalRecordHandler {
	return &MedicalRecordHandler{Records: r, Patients: p}
}

type createRecordReq struct {
	AppointmentID string `json:"appointment_id"`
	Detail        string `json:"detail"`
	Medications   string `json:"medications"`
	Allergies     string `json:"allergies"`
	Surgeries     string `json:"surgeries"`
}

type updateRecordReq struct {
	Detail      *string `json:"detail"`
	Medications *string `json:"medications"`
	Allergies   *string `json:"allergies"`
	Surgeries   *string `json:"surgeries"`
}

// requirePatient resolves the :patientId segment, translating absence into
// the shared 404.  The bool reports whether a response was already written.
func (h *MedicalRecordHandler) requirePatient(c echo.Context) (bool, error) {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.Patients.GetByID(ctx, c.Param("patientId")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return true, notFound(c, "Patient not found")
		}
		return true, serverError(c, err)
	}
	return false, nil
}

// ListForPatient returns every record for one patient, newest first.
func (h *MedicalRecordHandler) ListForPatient(c echo.Context) error {
	if done, err := h.requirePatient(c); done {
		return err
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	rs, err := h.Records.ListByPatient(ctx, c.Param("patientId"))
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, rs)
}

// Get returns one record by id within a patient's scope.
func (h *MedicalRecordHandler) Get(c echo.Context) error {
	if done, err := h.requirePatient(c); done {
		return err
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	r, err := h.Records.GetByID(ctx, c.Param("recordId"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Medical record not found")
		}
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, r)
}

// Create writes a new diagnosis for the patient.
func (h *MedicalRecordHandler) Create(c echo.Context) error {
	var req createRecordReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if done, err := h.requirePatient(c); done {
		return err
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	r := model.MedicalRecord{
		AppointmentID: req.AppointmentID,
		PatientID:     c.Param("patientId"),
		Detail:        req.Detail,
		Medications:   req.Medications,
		Allergies:     req.Allergies,
		Surgeries:     req.Surgeries,
	}
	if err := h.Records.Create(ctx, &r); err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message":       "Medical record created successfully",
		"medicalRecord": r,
	})
}

// Update patches the diagnosis fields of an existing record.
func (h *MedicalRecordHandler) Update(c echo.Context) error {
	var req updateRecordReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if done, err := h.requirePatient(c); done {
		return err
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	r, err := h.Records.GetByID(ctx, c.Param("recordId"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Medical record not found")
		}
		return serverError(c, err)
	}

	if req.Detail != nil {
		r.Detail = *req.Detail
	}
	if req.Medications != nil {
		r.Medications = *req.Medications
	}
	if req.Allergies != nil {
		r.Allergies = *req.Allergies
	}
	if req.Surgeries != nil {
		r.Surgeries = *req.Surgeries
	}

	if err := h.Records.Update(ctx, &r); err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":       "Medical record updated successfully",
		"medicalRecord": r,
	})
}

// Delete removes one record.
func (h *MedicalRecordHandler) Delete(c echo.Context) error {
	if done, err := h.requirePatient(c); done {
		return err
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Records.Delete(ctx, c.Param("recordId")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Medical record not found")
		}
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Medical record deleted successfully"})
}
