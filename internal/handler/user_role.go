package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/internal/repository"
)

// UserRoleHandler owns the /api/userRoles join endpoints.  Assignments are
// not deduplicated; assigning the same role twice yields two rows.
type UserRoleHandler struct {
	UserRoles UserRoleStore
	Roles     RoleStore
}

func NewUserRoleHandler(ur UserRoleStore, r RoleStore) *UserRoleHandler {
	return &UserRoleHandler{UserRoles: ur, Roles: r}
}

// Assign attaches a role to a user.  Only the role is existence-checked;
// the user id is taken at face value.
func (h *UserRoleHandler) Assign(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	userID, roleID := c.Param("userId"), c.Param("roleId")
	if _, err := h.Roles.GetByID(ctx, roleID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Role not found")
		}
		return serverError(c, err)
	}

	ur := model.UserRole{UserID: userID, RoleID: roleID}
	if err := h.UserRoles.Create(ctx, &ur); err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Role assigned successfully"})
}

// Remove deletes one assignment of the pair.
func (h *UserRoleHandler) Remove(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.UserRoles.DeletePair(ctx, c.Param("userId"), c.Param("roleId")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Role assignment not found")
		}
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Role removed successfully"})
}

// ListForUser returns the roles assigned to a user.
func (h *UserRoleHandler) ListForUser(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	roles, err := h.UserRoles.ListByUser(ctx, c.Param("userId"))
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, roles)
}
