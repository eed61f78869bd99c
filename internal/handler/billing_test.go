package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/internal/repository"
)

func billingUpdateContext(t *testing.T, id, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/api/billings/"+id, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}

func TestCreateBillingChecksBothReferences(t *testing.T) {
	patients := &MockPatientStore{}
	patients.On("GetByID", mock.Anything, "ghost").Return(model.Patient{}, repository.ErrNotFound)
	patients.On("GetByID", mock.Anything, "p1").Return(model.Patient{ID: "p1"}, nil)

	appts := &MockAppointmentStore{}
	appts.On("GetByID", mock.Anything, "ghost").Return(model.Appointment{}, repository.ErrNotFound)

	h := NewBillingHandler(&MockBillingStore{}, patients, appts)

	// Missing patient and missing appointment produce the same message.
	c, rec := newJSONContext(t, http.MethodPost, "/api/billings",
		`{"patient_id":"ghost","appointment_id":"a1","amount":100}`)
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Patient or Appointment not found", decodeBody(t, rec)["message"])

	c, rec = newJSONContext(t, http.MethodPost, "/api/billings",
		`{"patient_id":"p1","appointment_id":"ghost","amount":100}`)
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Patient or Appointment not found", decodeBody(t, rec)["message"])
}

func TestCreateBillingStoresStatusVerbatim(t *testing.T) {
	patients := &MockPatientStore{}
	patients.On("GetByID", mock.Anything, "p1").Return(model.Patient{ID: "p1"}, nil)
	appts := &MockAppointmentStore{}
	appts.On("GetByID", mock.Anything, "a1").Return(model.Appointment{ID: "a1"}, nil)

	billings := &MockBillingStore{}
	billings.On("Create", mock.Anything, mock.MatchedBy(func(b *model.Billing) bool {
		// No derivation at creation: Pending stays Pending, amount_paid defaults to 0.
		return b.Status == model.BillingStatusPending && b.AmountPaid == 0 && b.Amount == 250
	})).Return(nil)

	h := NewBillingHandler(billings, patients, appts)

	c, rec := newJSONContext(t, http.MethodPost, "/api/billings",
		`{"patient_id":"p1","appointment_id":"a1","amount":250,"status":"Pending"}`)
	require.NoError(t, h.Create(c))

	require.Equal(t, http.StatusCreated, rec.Code)
	billings.AssertExpectations(t)
}

func TestUpdateBillingDerivesPaid(t *testing.T) {
	billings := &MockBillingStore{}
	billings.On("GetByID", mock.Anything, "b1").Return(model.Billing{
		ID: "b1", PatientID: "p1", AppointmentID: "a1",
		Amount: 200, AmountPaid: 50, Status: model.BillingStatusPartial,
	}, nil)
	billings.On("Update", mock.Anything, mock.MatchedBy(func(b *model.Billing) bool {
		return b.AmountPaid == 200 && b.Status == model.BillingStatusPaid
	})).Return(nil)

	h := NewBillingHandler(billings, &MockPatientStore{}, &MockAppointmentStore{})

	c, rec := billingUpdateContext(t, "b1", `{"amount_paid":200}`)
	require.NoError(t, h.Update(c))
	require.Equal(t, http.StatusOK, rec.Code)
	billings.AssertExpectations(t)
}

func TestUpdateBillingCollapsesPendingToPartial(t *testing.T) {
	// A record created as Pending with no payment: any update, even one that
	// pays nothing, re-derives the status and lands on Partial.
	billings := &MockBillingStore{}
	billings.On("GetByID", mock.Anything, "b1").Return(model.Billing{
		ID: "b1", Amount: 300, AmountPaid: 0, Status: model.BillingStatusPending,
	}, nil)
	billings.On("Update", mock.Anything, mock.MatchedBy(func(b *model.Billing) bool {
		return b.AmountPaid == 0 && b.Status == model.BillingStatusPartial
	})).Return(nil)

	h := NewBillingHandler(billings, &MockPatientStore{}, &MockAppointmentStore{})

	c, rec := billingUpdateContext(t, "b1", `{"amount_paid":0}`)
	require.NoError(t, h.Update(c))
	require.Equal(t, http.StatusOK, rec.Code)
	billings.AssertExpectations(t)
}

func TestUpdateBillingSuppliedStatusIsOverridden(t *testing.T) {
	// The caller may send any status; the derivation always wins.
	billings := &MockBillingStore{}
	billings.On("GetByID", mock.Anything, "b1").Return(model.Billing{
		ID: "b1", Amount: 100, AmountPaid: 100, Status: model.BillingStatusPartial,
	}, nil)
	billings.On("Update", mock.Anything, mock.MatchedBy(func(b *model.Billing) bool {
		return b.Status == model.BillingStatusPaid
	})).Return(nil)

	h := NewBillingHandler(billings, &MockPatientStore{}, &MockAppointmentStore{})

	c, rec := billingUpdateContext(t, "b1", `{"status":"Pending"}`)
	require.NoError(t, h.Update(c))
	require.Equal(t, http.StatusOK, rec.Code)
	billings.AssertExpectations(t)
}

func TestUpdateBillingNotFound(t *testing.T) {
	billings := &MockBillingStore{}
	billings.On("GetByID", mock.Anything, "ghost").Return(model.Billing{}, repository.ErrNotFound)

	h := NewBillingHandler(billings, &MockPatientStore{}, &MockAppointmentStore{})

	c, rec := billingUpdateContext(t, "ghost", `{"amount_paid":10}`)
	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Billing record not found", decodeBody(t, rec)["message"])
}
