package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/internal/repository"
)

// PatientHandler owns the /api/patients endpoints, including the
// self-service profile routes that address a patient by user id.
type PatientHandler struct {
	Patients PatientStore
	Users    UserStore
}

func NewPatientHandler(p PatientStore, u UserStore) *PatientHandler {
	return &PatientHandler{Patients: p, Users: u}
}

type createPatientReq struct {
	UserID        string `json:"user_id"`
	MaritalStatus string `json:"marital_status"`
	IsActive      bool   `json:"is_active"`
}

type updatePatientReq struct {
	MaritalStatus *string `json:"marital_status"`
	IsActive      *bool   `json:"is_active"`
}

// updateProfileReq carries the identity fields a patient may edit on their
// own linked user record.
type updateProfileReq struct {
	Name               *string `json:"name"`
	Email              *string `json:"email"`
	PhoneNumber        *string `json:"phone_number"`
	DateOfBirth        *string `json:"date_of_birth"`
	Gender             *string `json:"gender"`
	Address            *string `json:"address"`
	IdentityCardNumber *string `json:"identity_card_number"`
}

// profileResp nests the linked user under the profile, password excluded.
type profileResp struct {
	model.Patient
	User model.User `json:"user"`
}

// List returns every patient profile.
func (h *PatientHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	ps, err := h.Patients.List(ctx)
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, ps)
}

// Get returns one patient by profile id.
func (h *PatientHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	p, err := h.Patients.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Patient not found")
		}
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// Create registers a patient profile for an existing user (admin path; the
// normal route is signup with role "patient").
func (h *PatientHandler) Create(c echo.Context) error {
	var req createPatientReq
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

	p := model.Patient{UserID: req.UserID, MaritalStatus: req.MaritalStatus, IsActive: req.IsActive}
	if err := h.Patients.Create(ctx, &p); err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Patient created successfully", "patient": p})
}

// Update patches the profile fields.
func (h *PatientHandler) Update(c echo.Context) error {
	var req updatePatientReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	p, err := h.Patients.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Patient not found")
		}
		return serverError(c, err)
	}

	if req.MaritalStatus != nil {
		p.MaritalStatus = *req.MaritalStatus
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	if err := h.Patients.Update(ctx, &p); err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Patient updated successfully", "patient": p})
}

// Delete removes the profile row.  Appointments, billings and records
// referencing the patient stay behind.
func (h *PatientHandler) Delete(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.Patients.GetByID(ctx, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Patient not found")
		}
		return serverError(c, err)
	}
	if err := h.Patients.Delete(ctx, c.Param("id")); err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Patient deleted successfully"})
}

// GetProfile looks a patient up by user id and returns the profile together
// with the linked identity record.
func (h *PatientHandler) GetProfile(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	userID := c.Param("id")
	p, err := h.Patients.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Patient not found")
		}
		return serverError(c, err)
	}
	u, err := h.Users.GetByID(ctx, userID)
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, profileResp{Patient: p, User: u})
}

// UpdateProfile lets a patient edit the identity fields of their linked
// user record, addressed by user id.
func (h *PatientHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	userID := c.Param("id")
	p, err := h.Patients.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Patient not found")
		}
		return serverError(c, err)
	}
	u, err := h.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "User not found")
		}
		return serverError(c, err)
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		u.PhoneNumber = *req.PhoneNumber
	}
	if req.DateOfBirth != nil {
		dob, err := parseDate(*req.DateOfBirth)
		if err != nil {
			return badRequest(c, "Invalid date_of_birth")
		}
		u.DateOfBirth = dob
	}
	if req.Gender != nil {
		u.Gender = *req.Gender
	}
	if req.Address != nil {
		u.Address = *req.Address
	}
	if req.IdentityCardNumber != nil {
		u.IdentityCardNumber = req.IdentityCardNumber
	}

	if err := h.Users.Update(ctx, &u); err != nil {
		if errors.Is(err, repository.ErrEmailExists) || errors.Is(err, repository.ErrIdentityCardExists) {
			return badRequest(c, "User already exists")
		}
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Profile updated successfully",
		"user":    u,
		"patient": p,
	})
}
