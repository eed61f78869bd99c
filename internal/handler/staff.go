package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/internal/repository"
)

// StaffHandler owns the admin-only /api/staff endpoints.
type StaffHandler struct {
	Staff StaffStore
	Users UserStore
}

func NewStaffHandler(s StaffStore, u UserStore) *StaffHandler {
	return &StaffHandler{Staff: s, Users: u}
}

type createStaffReq struct {
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	Title       string `json:"title"`
	OfficeNum   string `json:"office_num"`
	BuildingNum string `json:"building_num"`
	IsActive    bool   `json:"is_active"`
}

type updateStaffReq struct {
	Name        *string `json:"name"`
	Title       *string `json:"title"`
	OfficeNum   *string `json:"office_num"`
	BuildingNum *string `json:"building_num"`
	IsActive    *bool   `json:"is_active"`
}

func (h *StaffHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	ss, err := h.Staff.List(ctx)
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, ss)
}

func (h *StaffHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	s, err := h.Staff.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Staff member not found")
		}
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

// Create registers a staff member linked to an existing user.
func (h *StaffHandler) Create(c echo.Context) error {
	var req createStaffReq
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

	s := model.Staff{
		UserID:      req.UserID,
		Name:        req.Name,
		Title:       req.Title,
		OfficeNum:   req.OfficeNum,
		BuildingNum: req.BuildingNum,
		IsActive:    req.IsActive,
	}
	if err := h.Staff.Create(ctx, &s); err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *StaffHandler) Update(c echo.Context) error {
	var req updateStaffReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	s, err := h.Staff.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Staff member not found")
		}
		return serverError(c, err)
	}

	if req.Name != nil {
		s.Name = *req.Name
	}
	if req.Title != nil {
		s.Title = *req.Title
	}
	if req.OfficeNum != nil {
		s.OfficeNum = *req.OfficeNum
	}
	if req.BuildingNum != nil {
		s.BuildingNum = *req.BuildingNum
	}
	if req.IsActive != nil {
		s.IsActive = *req.IsActive
	}

	if err := h.Staff.Update(ctx, &s); err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *StaffHandler) Delete(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Staff.Delete(ctx, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Staff member not found")
		}
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Staff member deleted successfully"})
}
