package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/internal/repository"
)

// RoleHandler owns the admin-only /api/roles catalog.  Note that these roles
// are bookkeeping only: access control derives the effective role from the
// doctor/patient profile tables, not from this catalog.
type RoleHandler struct {
	Roles RoleStore
}

func NewRoleHandler(r RoleStore) *RoleHandler { return &RoleHandler{Roles: r} }

type roleReq struct {
	RoleName string `json:"role_name"`
	IsActive bool   `json:"is_active"`
}

func (h *RoleHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	rs, err := h.Roles.List(ctx)
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, rs)
}

func (h *RoleHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	r, err := h.Roles.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Role not found")
		}
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, r)
}

func (h *RoleHandler) Create(c echo.Context) error {
	var req roleReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.RoleName == "" {
		return badRequest(c, "role_name is required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	r := model.Role{RoleName: req.RoleName, IsActive: req.IsActive}
	if err := h.Roles.Create(ctx, &r); err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusCreated, r)
}

func (h *RoleHandler) Update(c echo.Context) error {
	var req roleReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	r, err := h.Roles.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Role not found")
		}
		return serverError(c, err)
	}

	r.RoleName = req.RoleName
	r.IsActive = req.IsActive
	if err := h.Roles.Update(ctx, &r); err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, r)
}

func (h *RoleHandler) Delete(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Roles.Delete(ctx, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Role not found")
		}
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Role deleted successfully"})
}
