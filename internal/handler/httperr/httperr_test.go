//go:build unit

package httperr_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel-core/internal/handler/httperr"
	"hotel-core/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	base := errors.New("boom")

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "validation", err: errs.AsValidation(base), want: http.StatusBadRequest},
		{name: "not found", err: errs.NotFoundf("room %s not found", "101"), want: http.StatusNotFound},
		{name: "conflict", err: errs.AsConflict(base), want: http.StatusConflict},
		{name: "concurrency conflict", err: errs.ConcurrencyConflictf("stale"), want: http.StatusConflict},
		{name: "idempotency conflict", err: errs.IdempotencyConflictf("reused"), want: http.StatusUnprocessableEntity},
		{name: "retryable", err: errs.AsRetryable(base), want: http.StatusServiceUnavailable},
		{name: "wrapped keeps category", err: errs.Wrap(errs.AsConflict(base), "create reservation"), want: http.StatusConflict},
		{name: "unclassified", err: base, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, httperr.StatusOf(tt.err))
		})
	}
}

func performAbort(t *testing.T, err error) (*httptest.ResponseRecorder, httperr.Response) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/reservations", nil)

	httperr.Abort(c, err)

	var body httperr.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, c.IsAborted())
	require.Len(t, c.Errors, 1)
	return w, body
}

func TestAbort(t *testing.T) {
	t.Run("conflict: message and category are exposed", func(t *testing.T) {
		w, body := performAbort(t, errs.Conflictf("room is already booked for the requested dates"))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "CONFLICT", body.Error.Code)
		assert.Equal(t, "room is already booked for the requested dates", body.Error.Message)
		assert.Empty(t, w.Header().Get("Retry-After"))
	})

	t.Run("retryable: advertises Retry-After", func(t *testing.T) {
		w, body := performAbort(t, errs.AsRetryable(errors.New("lock timeout")))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "RETRYABLE", body.Error.Code)
		assert.Equal(t, httperr.RetryAfterSeconds, w.Header().Get("Retry-After"))
	})

	t.Run("internal: message is hidden", func(t *testing.T) {
		w, body := performAbort(t, errors.New("pq: connection refused on 10.0.0.3"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "INTERNAL", body.Error.Code)
		assert.Equal(t, "Internal server error", body.Error.Message)
	})
}

func TestBadRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/availability", nil)

	httperr.BadRequest(c, errors.New("strconv.Atoi: parsing \"x\""), "Invalid query parameters")

	var body httperr.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION", body.Error.Code)
	assert.Equal(t, "Invalid query parameters", body.Error.Message)
	assert.Len(t, c.Errors, 1)
}

func TestAbortWithError_PanicsOnNil(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Panics(t, func() {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "bad", nil)
	})
}
