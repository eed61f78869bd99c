package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/internal/repository"
)

// SpecializationHandler owns the /api/specializations catalog behind the
// doctor↔specialization join.
type SpecializationHandler struct {
	Specializations SpecializationStore
}

func NewSpecializationHandler(s SpecializationStore) *SpecializationHandler {
	return &SpecializationHandler{Specializations: s}
}

type specializationReq struct {
	GeneralTitle  string `json:"general_title"`
	SpecificTitle string `json:"specific_title"`
	IsActive      bool   `json:"is_active"`
}

// List returns the full catalog.  Another cache candidate: the catalog
// changes rarely and is read on every booking screen.
func (h *SpecializationHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	ss, err := h.Specializations.List(ctx)
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, ss)
}

func (h *SpecializationHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	s, err := h.Specializations.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Specialization not found")
		}
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *SpecializationHandler) Create(c echo.Context) error {
	var req specializationReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.GeneralTitle == "" {
		return badRequest(c, "general_title is required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	s := model.Specialization{
		GeneralTitle:  req.GeneralTitle,
		SpecificTitle: req.SpecificTitle,
		IsActive:      req.IsActive,
	}
	if err := h.Specializations.Create(ctx, &s); err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Specialization created successfully", "specialization": s})
}

func (h *SpecializationHandler) Update(c echo.Context) error {
	var req specializationReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	s, err := h.Specializations.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Specialization not found")
		}
		return serverError(c, err)
	}

	s.GeneralTitle = req.GeneralTitle
	s.SpecificTitle = req.SpecificTitle
	s.IsActive = req.IsActive
	if err := h.Specializations.Update(ctx, &s); err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Specialization updated successfully", "specialization": s})
}

func (h *SpecializationHandler) Delete(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Specializations.Delete(ctx, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Specialization not found")
		}
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Specialization deleted successfully"})
}
