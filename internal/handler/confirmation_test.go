package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/internal/repository"
	"github.com/medicore/hospital-api/internal/utils"
)

func confirmRequest(t *testing.T, h *ConfirmationHandler, token string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/confirmation/confirm-account?token="+token, nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.ConfirmAccount(e.NewContext(req, rec)))
	return rec
}

func TestConfirmAccountRejectsBadToken(t *testing.T) {
	h := NewConfirmationHandler(testSecret, &MockPatientStore{}, &MockDoctorStore{})

	rec := confirmRequest(t, h, "not-a-jwt")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid or expired token", decodeBody(t, rec)["message"])

	// Valid signature, wrong secret.
	tok, err := utils.NewAuthToken("other-secret", "user-1", "patient")
	require.NoError(t, err)
	rec = confirmRequest(t, h, tok.Token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid or expired token", decodeBody(t, rec)["message"])
}

func TestConfirmAccountRejectsUnknownRole(t *testing.T) {
	h := NewConfirmationHandler(testSecret, &MockPatientStore{}, &MockDoctorStore{})

	tok, err := utils.NewAuthToken(testSecret, "user-1", "admin")
	require.NoError(t, err)

	rec := confirmRequest(t, h, tok.Token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid token type", decodeBody(t, rec)["message"])
}

func TestConfirmAccountActivatesOnlyTheTokenRole(t *testing.T) {
	patients := &MockPatientStore{}
	doctors := &MockDoctorStore{}
	doctors.On("GetByUserID", mock.Anything, "user-1").
		Return(model.Doctor{ID: "d1", UserID: "user-1"}, nil)
	doctors.On("SetActiveByUserID", mock.Anything, "user-1", true).Return(nil)

	h := NewConfirmationHandler(testSecret, patients, doctors)

	tok, err := utils.NewAuthToken(testSecret, "user-1", "doctor")
	require.NoError(t, err)

	rec := confirmRequest(t, h, tok.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Doctor account confirmed!", decodeBody(t, rec)["message"])

	doctors.AssertExpectations(t)
	// The patient table is never touched by a doctor token.
	patients.AssertNotCalled(t, "SetActiveByUserID", mock.Anything, mock.Anything, mock.Anything)
}

func TestConfirmAccountMissingProfile(t *testing.T) {
	patients := &MockPatientStore{}
	patients.On("GetByUserID", mock.Anything, "user-9").Return(model.Patient{}, repository.ErrNotFound)

	h := NewConfirmationHandler(testSecret, patients, &MockDoctorStore{})

	tok, err := utils.NewAuthToken(testSecret, "user-9", "patient")
	require.NoError(t, err)

	rec := confirmRequest(t, h, tok.Token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Patient not found", decodeBody(t, rec)["message"])
}

func TestConfirmAccountIsIdempotent(t *testing.T) {
	patients := &MockPatientStore{}
	patients.On("GetByUserID", mock.Anything, "user-1").
		Return(model.Patient{ID: "p1", UserID: "user-1", IsActive: true}, nil)
	patients.On("SetActiveByUserID", mock.Anything, "user-1", true).Return(nil)

	h := NewConfirmationHandler(testSecret, patients, &MockDoctorStore{})

	tok, err := utils.NewAuthToken(testSecret, "user-1", "patient")
	require.NoError(t, err)

	// Redeeming twice still reports success both times.
	for i := 0; i < 2; i++ {
		rec := confirmRequest(t, h, tok.Token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Patient account confirmed!", decodeBody(t, rec)["message"])
	}
}
