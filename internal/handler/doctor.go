package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/internal/repository"
)

// DoctorHandler owns the /api/doctors endpoints.
type DoctorHandler struct {
	Doctors DoctorStore
	Users   UserStore
}

func NewDoctorHandler(d DoctorStore, u UserStore) *DoctorHandler {
	return &DoctorHandler{Doctors: d, Users: u}
}

type createDoctorReq struct {
	UserID       string `json:"user_id"`
	OfficeNumber string `json:"office_number"`
	IsActive     bool   `json:"is_active"`
}

type updateDoctorReq struct {
	OfficeNumber *string `json:"office_number"`
	IsActive     *bool   `json:"is_active"`
}

// List returns every doctor profile.  This listing is a cache candidate:
// patients browse it when booking.
func (h *DoctorHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	ds, err := h.Doctors.List(ctx)
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, ds)
}

// Get returns one doctor by profile id.
func (h *DoctorHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	d, err := h.Doctors.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Doctor not found")
		}
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

// Create registers a doctor profile for an existing user.
func (h *DoctorHandler) Create(c echo.Context) error {
	var req createDoctorReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.UserID == "" {
		return badRequest(c, "user_id is required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.Users.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "User not found")
		}
		return serverError(c, err)
	}

	d := model.Doctor{UserID: req.UserID, OfficeNumber: req.OfficeNumber, IsActive: req.IsActive}
	if err := h.Doctors.Create(ctx, &d); err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Doctor created successfully", "doctor": d})
}

// Update patches the profile fields.
func (h *DoctorHandler) Update(c echo.Context) error {
	var req updateDoctorReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	d, err := h.Doctors.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Doctor not found")
		}
		return serverError(c, err)
	}

	if req.OfficeNumber != nil {
		d.OfficeNumber = *req.OfficeNumber
	}
	if req.IsActive != nil {
		d.IsActive = *req.IsActive
	}

	if err := h.Doctors.Update(ctx, &d); err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Doctor updated successfully", "doctor": d})
}

// Delete removes the profile row, leaving appointments and join rows behind.
func (h *DoctorHandler) Delete(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.Doctors.GetByID(ctx, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Doctor not found")
		}
		return serverError(c, err)
	}
	if err := h.Doctors.Delete(ctx, c.Param("id")); err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Doctor deleted successfully"})
}
