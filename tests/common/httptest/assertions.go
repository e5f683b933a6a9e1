//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"dh-booking/internal/handler/httperr"
	"dh-booking/internal/handler/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccessResponse checks the status and, for 2xx replies, decodes the
// body into target when target is non-nil.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}
	if target == nil || w.Code < 200 || w.Code >= 300 {
		return
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "body is not the expected JSON: %s", w.Body.String())
}

// AssertErrorResponse checks the error envelope: status, a message containing
// expectedMsg (skipped when empty), and a requestId matching the response
// header. The decoded envelope is returned for further checks on Detail.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) httperr.Response {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var body httperr.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "error body is not JSON: %s", w.Body.String())
	body.Status = w.Code

	if expectedMsg != "" {
		assert.Contains(t, body.Error.Message, expectedMsg)
	}
	assert.Equal(t, w.Header().Get(middleware.RequestIDHeader), body.RequestID, "error body requestId must echo the response header")
	return body
}
