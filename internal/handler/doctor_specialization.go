package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/internal/repository"
)

// DoctorSpecializationHandler owns the /api/doctorSpecialization join
// endpoints: bulk and single assignment, lookups in both directions, and
// pair-addressed edit/removal.
type DoctorSpecializationHandler struct {
	Pairs           DoctorSpecializationStore
	Specializations SpecializationStore
	Doctors         DoctorStore
}

func NewDoctorSpecializationHandler(p DoctorSpecializationStore, s SpecializationStore, d DoctorStore) *DoctorSpecializationHandler {
	return &DoctorSpecializationHandler{Pairs: p, Specializations: s, Doctors: d}
}

type bulkAssignReq struct {
	SpecializationIDs []string `json:"specializationIds"`
}

type singleAssignReq struct {
	SpecializationID string `json:"specializationId"`
}

type editPairReq struct {
	SpecializationID    string `json:"specializationId"`
	NewSpecializationID string `json:"newSpecializationId"`
}

// ListForDoctor returns the specializations assigned to one doctor.  An
// empty assignment list is reported as 404 rather than an empty array.
func (h *DoctorSpecializationHandler) ListForDoctor(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	specs, err := h.Pairs.ListByDoctor(ctx, c.Param("doctorId"))
	if err != nil {
		return serverError(c, err)
	}
	if len(specs) == 0 {
		return notFound(c, "No specializations found for this doctor")
	}
	return c.JSON(http.StatusOK, specs)
}

// BulkAssign attaches a set of specializations to a doctor in one request.
// Every id must resolve or nothing is inserted.
func (h *DoctorSpecializationHandler) BulkAssign(c echo.Context) error {
	var req bulkAssignReq
	if err := c.Bind(&req); err != nil || len(req.SpecializationIDs) == 0 {
		return badRequest(c, "Please provide valid specialization IDs")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	n, err := h.Specializations.CountByIDs(ctx, req.SpecializationIDs)
	if err != nil {
		return serverError(c, err)
	}
	if n != len(req.SpecializationIDs) {
		return notFound(c, "One or more specializations not found")
	}

	if err := h.Pairs.BulkCreate(ctx, c.Param("doctorId"), req.SpecializationIDs); err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Specializations assigned to doctor successfully"})
}

// ListDoctors returns the doctors holding one specialization.
func (h *DoctorSpecializationHandler) ListDoctors(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	docs, err := h.Pairs.ListDoctorsBySpecialization(ctx, c.Param("specializationId"))
	if err != nil {
		return serverError(c, err)
	}
	if len(docs) == 0 {
		return notFound(c, "No doctors found for this specialization")
	}
	return c.JSON(http.StatusOK, docs)
}

// AssignOne attaches a single specialization to a doctor.
func (h *DoctorSpecializationHandler) AssignOne(c echo.Context) error {
	var req singleAssignReq
	if err := c.Bind(&req); err != nil || req.SpecializationID == "" {
		return badRequest(c, "specializationId is required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.Specializations.GetByID(ctx, req.SpecializationID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Specialization not found")
		}
		return serverError(c, err)
	}

	ds := model.DoctorSpecialization{DoctorID: c.Param("doctorId"), SpecializationID: req.SpecializationID}
	if err := h.Pairs.Create(ctx, &ds); err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Specialization added to doctor successfully"})
}

// EditPair swaps one assignment for another.  The replacement must exist;
// the pair being replaced must be currently assigned.
func (h *DoctorSpecializationHandler) EditPair(c echo.Context) error {
	var req editPairReq
	if err := c.Bind(&req); err != nil || req.SpecializationID == "" || req.NewSpecializationID == "" {
		return badRequest(c, "specializationId and newSpecializationId are required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.Specializations.GetByID(ctx, req.NewSpecializationID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "New specialization not found")
		}
		return serverError(c, err)
	}

	err := h.Pairs.UpdatePair(ctx, c.Param("doctorId"), req.SpecializationID, req.NewSpecializationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Doctor specialization not found")
		}
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Specialization updated successfully"})
}

// RemovePair deletes one assignment of the pair.
func (h *DoctorSpecializationHandler) RemovePair(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	err := h.Pairs.DeletePair(ctx, c.Param("doctorId"), c.Param("specializationId"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Doctor specialization not found")
		}
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Specialization removed from doctor successfully"})
}
