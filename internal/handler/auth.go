package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/medicore/hospital-api/internal/config"
	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/internal/queue"
	"github.com/medicore/hospital-api/internal/repository"
	"github.com/medicore/hospital-api/internal/utils"
)

// AuthHandler bundles dependencies for signup and login.
type AuthHandler struct {
	Cfg      config.Config
	Users    UserStore
	Patients PatientStore
	Doctors  DoctorStore
	Mail     MailPublisher
}

func NewAuthHandler(cfg config.Config, u UserStore, p PatientStore, d DoctorStore, m MailPublisher) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u, Patients: p, Doctors: d, Mail: m}
}

// ----- DTOs -----

type signupReq struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	Password           string `json:"password"`
	PhoneNumber        string `json:"phone_number"`
	DateOfBirth        string `json:"date_of_birth"`
	Gender             string `json:"gender"`
	IdentityCardNumber string `json:"identity_card_number"`
	Address            string `json:"address"`
	Role               string `json:"role"` // doctor | patient
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userPart struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type loginUserPart struct {
	userPart
	IsActive bool `json:"isActive"`
}

// Signup registers a user, creates the inactive role profile and emails a
// confirmation link.  The profile is written in a second statement after the
// user row; a crash in between leaves a user without a profile, who then
// resolves to the admin fallback role at login.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "All fields are required")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || req.Email == "" || req.Password == "" || req.Role == "" {
		return badRequest(c, "All fields are required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.Users.GetByEmail(ctx, req.Email); err == nil {
		return badRequest(c, "User already exists")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return serverError(c, err)
	}

	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return serverError(c, err)
	}

	u := model.User{
		Name:         req.Name,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		Gender:       req.Gender,
		Address:      req.Address,
		PasswordHash: hash,
	}
	if req.DateOfBirth != "" {
		dob, err := parseDate(req.DateOfBirth)
		if err != nil {
			return badRequest(c, "Invalid date_of_birth")
		}
		u.DateOfBirth = dob
	}
	if req.IdentityCardNumber != "" {
		u.IdentityCardNumber = &req.IdentityCardNumber
	}

	if err := h.Users.Create(ctx, &u); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return badRequest(c, "User already exists")
		}
		return serverError(c, err)
	}

	// Role profile starts inactive until the confirmation link is redeemed.
	switch req.Role {
	case "doctor":
		if err := h.Doctors.Create(ctx, &model.Doctor{UserID: u.ID}); err != nil {
			return serverError(c, err)
		}
	case "patient":
		if err := h.Patients.Create(ctx, &model.Patient{UserID: u.ID}); err != nil {
			return serverError(c, err)
		}
	}

	tok, err := utils.NewAuthToken(h.Cfg.JWTSecret, u.ID, req.Role)
	if err != nil {
		return serverError(c, err)
	}

	confirmURL := h.Cfg.BaseURL + "/api/confirmation/confirm-account?token=" + tok.Token
	ev := queue.MailRequestedEvent{
		To:      u.Email,
		Subject: "Confirm Your Account",
		Text:    "Please confirm your account by clicking the link below.",
		HTML:    `<p>Please confirm your account by clicking the link below:</p><a href="` + confirmURL + `">Confirm Account</a>`,
	}
	if err := h.Mail.Publish(ctx, ev); err != nil {
		return serverError(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "User registered successfully! Please check your email to confirm your account.",
		"user":    userPart{ID: u.ID, Name: u.Name, Email: u.Email, Role: req.Role},
	})
}

// Login verifies credentials, resolves the caller's effective role from the
// profile tables and issues a fresh token.  Unknown email and wrong password
// are deliberately indistinguishable to the client.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Email and password are required")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return badRequest(c, "Email and password are required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid credentials"})
		}
		return serverError(c, err)
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid credentials"})
	}

	role, isActive, err := h.resolveRole(c, u.ID)
	if err != nil {
		return serverError(c, err)
	}

	tok, err := utils.NewAuthToken(h.Cfg.JWTSecret, u.ID, role)
	if err != nil {
		return serverError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Login successful",
		"user": loginUserPart{
			userPart: userPart{ID: u.ID, Name: u.Name, Email: u.Email, Role: role},
			IsActive: isActive,
		},
		"token": tok.Token,
	})
}

// resolveRole probes the profile tables: a doctor profile wins over a
// patient profile, and a user with neither is treated as admin.  The
// activation flag comes from whichever profile matched; admins have no
// profile and report inactive.
func (h *AuthHandler) resolveRole(c echo.Context, userID string) (string, bool, error) {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if d, err := h.Doctors.GetByUserID(ctx, userID); err == nil {
		return "doctor", d.IsActive, nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return "", false, err
	}
	if p, err := h.Patients.GetByUserID(ctx, userID); err == nil {
		return "patient", p.IsActive, nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return "", false, err
	}
	return "admin", false, nil
}

// parseDate accepts a bare date or a full RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
