package httperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/dental-scheduler/internal/httperr"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestBusinessError_Catalog(t *testing.T) {
	be := httperr.BusinessError{Code: "time_conflict"}
	assert.Equal(t, http.StatusConflict, be.Status())
	assert.Equal(t, "The dentist is already booked at this time", be.Message())

	unknown := httperr.BusinessError{Code: "weird"}
	assert.Equal(t, http.StatusBadRequest, unknown.Status())
	assert.Equal(t, "weird", unknown.Message())
}

func TestIsBusiness_Wrapped(t *testing.T) {
	err := fmt.Errorf("cancel: %w", httperr.ErrBusiness("invalid_state"))

	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	assert.False(t, httperr.IsBusiness(err, "time_conflict"))
	assert.False(t, httperr.IsBusiness(errors.New("invalid_state"), "invalid_state"))
}

func TestFromError(t *testing.T) {
	t.Run("business error keeps status", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		httperr.FromError(c, zap.NewNop(), httperr.ErrBusiness("appointment_not_found"))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"data":null,"message":"Appointment not found","success":false}`, w.Body.String())
	})

	t.Run("unknown error becomes 500", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		httperr.FromError(c, zap.NewNop(), errors.New("connection reset"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection reset")
		assert.Len(t, c.Errors, 1)
	})
}
