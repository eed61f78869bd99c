package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRole(t *testing.T, role any, allowed ...string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/staff", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != nil {
		c.Set("role", role)
	}

	called := false
	next := func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	}
	require.NoError(t, RequireRole(allowed...)(next)(c))
	return rec, called
}

func TestRequireRoleAllows(t *testing.T) {
	rec, called := runRole(t, "admin", "admin", "doctor")
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleForbids(t *testing.T) {
	rec, called := runRole(t, "patient", "admin", "doctor")
	assert.False(t, called)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Forbidden: You don't have access to this resource")
}

func TestRequireRoleMissingRole(t *testing.T) {
	rec, called := runRole(t, nil, "admin")
	assert.False(t, called)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
