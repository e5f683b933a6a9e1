//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"dh-booking/internal/handler/middleware"

	"github.com/stretchr/testify/assert"
)

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for name, want := range expected {
		assert.Equal(t, want, w.Header().Get(name), "header %s", name)
	}
}

// RequestID returns the X-Request-ID the server answered with, failing the
// test when there is none.
func RequestID(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	id := w.Header().Get(middleware.RequestIDHeader)
	assert.NotEmpty(t, id, "response carries no %s", middleware.RequestIDHeader)
	return id
}
