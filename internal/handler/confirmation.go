package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medicore/hospital-api/internal/repository"
	"github.com/medicore/hospital-api/internal/utils"
)

// ConfirmationHandler redeems the emailed confirmation link.  The link
// carries the same 1-hour JWT issued at signup; the embedded role decides
// which profile table gets activated.
type ConfirmationHandler struct {
	Secret   string
	Patients PatientStore
	Doctors  DoctorStore
}

func NewConfirmationHandler(secret string, p PatientStore, d DoctorStore) *ConfirmationHandler {
	return &ConfirmationHandler{Secret: secret, Patients: p, Doctors: d}
}

// ConfirmAccount flips the matching profile's is_active flag to true.
// Redeeming an already-confirmed link is a no-op that still reports
// success.  A token carrying a role with no profile table (e.g. admin)
// is rejected.
func (h *ConfirmationHandler) ConfirmAccount(c echo.Context) error {
	claims, err := utils.VerifyAuthToken(h.Secret, c.QueryParam("token"))
	if err != nil {
		return badRequest(c, "Invalid or expired token")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	switch claims.Role {
	case "patient":
		if _, err := h.Patients.GetByUserID(ctx, claims.UserID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return notFound(c, "Patient not found")
			}
			return serverError(c, err)
		}
		if err := h.Patients.SetActiveByUserID(ctx, claims.UserID, true); err != nil {
			return serverError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "Patient account confirmed!"})
	case "doctor":
		if _, err := h.Doctors.GetByUserID(ctx, claims.UserID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return notFound(c, "Doctor not found")
			}
			return serverError(c, err)
		}
		if err := h.Doctors.SetActiveByUserID(ctx, claims.UserID, true); err != nil {
			return serverError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "Doctor account confirmed!"})
	default:
		return badRequest(c, "Invalid token type")
	}
}
