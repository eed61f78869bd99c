package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/internal/repository"
)

func TestCreateAppointmentChecksReferences(t *testing.T) {
	patients := &MockPatientStore{}
	patients.On("GetByID", mock.Anything, "missing-patient").Return(model.Patient{}, repository.ErrNotFound)
	patients.On("GetByID", mock.Anything, "p1").Return(model.Patient{ID: "p1"}, nil)

	doctors := &MockDoctorStore{}
	doctors.On("GetByID", mock.Anything, "missing-doctor").Return(model.Doctor{}, repository.ErrNotFound)

	h := NewAppointmentHandler(&MockAppointmentStore{}, patients, doctors)

	c, rec := newJSONContext(t, http.MethodPost, "/api/appointments",
		`{"patient_id":"missing-patient","doctor_id":"d1","visit_datetime":"2026-09-01T10:00:00Z"}`)
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Patient not found", decodeBody(t, rec)["message"])

	c, rec = newJSONContext(t, http.MethodPost, "/api/appointments",
		`{"patient_id":"p1","doctor_id":"missing-doctor","visit_datetime":"2026-09-01T10:00:00Z"}`)
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Doctor not found", decodeBody(t, rec)["message"])
}

func TestCreateAppointmentStoresCallerStatus(t *testing.T) {
	patients := &MockPatientStore{}
	patients.On("GetByID", mock.Anything, "p1").Return(model.Patient{ID: "p1"}, nil)
	doctors := &MockDoctorStore{}
	doctors.On("GetByID", mock.Anything, "d1").Return(model.Doctor{ID: "d1"}, nil)

	appts := &MockAppointmentStore{}
	appts.On("Create", mock.Anything, mock.MatchedBy(func(a *model.Appointment) bool {
		return a.PatientID == "p1" && a.DoctorID == "d1" && a.Status == model.AppointmentStatusConfirmed
	})).Return(nil)

	h := NewAppointmentHandler(appts, patients, doctors)

	c, rec := newJSONContext(t, http.MethodPost, "/api/appointments",
		`{"patient_id":"p1","doctor_id":"d1","visit_datetime":"2026-09-01T10:00:00Z","status":1,"reason":"checkup"}`)
	require.NoError(t, h.Create(c))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Appointment created successfully", decodeBody(t, rec)["message"])
	appts.AssertExpectations(t)
}

func TestUpdateAppointmentPartialPatch(t *testing.T) {
	visit := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	stored := model.Appointment{
		ID: "a1", PatientID: "p1", DoctorID: "d1",
		VisitDatetime: visit, Reason: "checkup", Status: model.AppointmentStatusConfirmed,
	}

	appts := &MockAppointmentStore{}
	appts.On("GetByID", mock.Anything, "a1").Return(stored, nil)
	appts.On("Update", mock.Anything, mock.MatchedBy(func(a *model.Appointment) bool {
		// Only the status and cancelling reason change; everything else is kept.
		return a.Status == model.AppointmentStatusPending &&
			a.CancellingReason == "patient request" &&
			a.PatientID == "p1" && a.Reason == "checkup" && a.VisitDatetime.Equal(visit)
	})).Return(nil)

	h := NewAppointmentHandler(appts, &MockPatientStore{}, &MockDoctorStore{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/api/appointments/a1",
		strings.NewReader(`{"status":0,"cancelling_reason":"patient request"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/appointments/:id")
	c.SetParamNames("id")
	c.SetParamValues("a1")

	require.NoError(t, h.Update(c))
	require.Equal(t, http.StatusOK, rec.Code)
	appts.AssertExpectations(t)
}

func TestUpdateAppointmentNotFound(t *testing.T) {
	appts := &MockAppointmentStore{}
	appts.On("GetByID", mock.Anything, "ghost").Return(model.Appointment{}, repository.ErrNotFound)

	h := NewAppointmentHandler(appts, &MockPatientStore{}, &MockDoctorStore{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/api/appointments/ghost", strings.NewReader(`{"status":1}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Appointment not found", decodeBody(t, rec)["message"])
}

func TestDeleteAppointmentLeavesDependentsAlone(t *testing.T) {
	appts := &MockAppointmentStore{}
	appts.On("GetByID", mock.Anything, "a1").Return(model.Appointment{ID: "a1"}, nil)
	appts.On("Delete", mock.Anything, "a1").Return(nil)

	// The handler has no access to billing or medical record stores at all;
	// deletion cannot cascade by construction.
	h := NewAppointmentHandler(appts, &MockPatientStore{}, &MockDoctorStore{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/appointments/a1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("a1")

	require.NoError(t, h.Delete(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Appointment deleted successfully", decodeBody(t, rec)["message"])
	appts.AssertExpectations(t)
}
