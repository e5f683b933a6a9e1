//go:build unit

package handler_test

import (
	"net/http"
	"strings"
	"testing"

	"dh-booking/internal/handler"
	"dh-booking/internal/handler/api"
	"dh-booking/internal/handler/middleware"
	"dh-booking/internal/pkg/config"
	"dh-booking/internal/usecase/queries"
	"dh-booking/tests/common/httptest"
	commandsmock "dh-booking/tests/mock/commands"
	queriesmock "dh-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*gin.Engine, *queriesmock.MockReservationQueries) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	cfg := config.NewTestConfig()
	reservationQueries := queriesmock.NewMockReservationQueries(ctrl)
	reservations := api.NewReservationHandler(commandsmock.NewMockReservationCommands(ctrl), reservationQueries)
	products := api.NewProductHandler(
		queriesmock.NewMockAvailabilityQueries(ctrl),
		queriesmock.NewMockRatingQueries(ctrl),
		commandsmock.NewMockRatingCommands(ctrl),
	)

	engine := gin.New()
	handler.NewRouter(engine, cfg, middleware.NewLogger(cfg.Log), reservations, products)
	return engine, reservationQueries
}

func TestRouter_Health(t *testing.T) {
	router, _ := newRouter(t)

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/health", nil)

	httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestRouter_RequestID(t *testing.T) {
	router, _ := newRouter(t)

	t.Run("well-formed id is echoed", func(t *testing.T) {
		rec := httptest.PerformRequestWithHeaders(t, router, http.MethodGet, "/health", nil,
			map[string]string{middleware.RequestIDHeader: "trace-42"})
		httptest.AssertHeaders(t, rec, map[string]string{middleware.RequestIDHeader: "trace-42"})
	})

	t.Run("malformed id is replaced", func(t *testing.T) {
		bad := "bad id " + strings.Repeat("x", 80)
		rec := httptest.PerformRequestWithHeaders(t, router, http.MethodGet, "/health", nil,
			map[string]string{middleware.RequestIDHeader: bad})
		got := rec.Header().Get(middleware.RequestIDHeader)
		assert.NotEmpty(t, got)
		assert.NotEqual(t, bad, got)
	})
}

func TestRouter_CORS(t *testing.T) {
	router, _ := newRouter(t)

	rec := httptest.PerformRequestWithHeaders(t, router, http.MethodOptions, "/api/reservations", nil,
		map[string]string{
			"Origin":                        "http://localhost:3000",
			"Access-Control-Request-Method": http.MethodPost,
		})

	assert.Equal(t, http.StatusNoContent, rec.Code)
	httptest.AssertHeaders(t, rec, map[string]string{"Access-Control-Allow-Origin": "http://localhost:3000"})
}

func TestRouter_ErrorsUseEnvelope(t *testing.T) {
	router, reservationQueries := newRouter(t)
	id := uuid.New()
	reservationQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, queries.ErrReservationNotFound).Times(2)

	t.Run("generated id", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/api/reservations/"+id.String(), nil)
		body := httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "reservation not found")
		assert.Equal(t, httptest.RequestID(t, rec), body.RequestID)
	})

	t.Run("caller id", func(t *testing.T) {
		rec := httptest.PerformRequestWithHeaders(t, router, http.MethodGet, "/api/reservations/"+id.String(), nil,
			map[string]string{middleware.RequestIDHeader: "trace-42"})
		body := httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "reservation not found")
		assert.Equal(t, "trace-42", body.RequestID)
	})
}

func TestRouter_PanicUsesEnvelope(t *testing.T) {
	router, _ := newRouter(t)
	router.GET("/boom", func(*gin.Context) { panic("boom") })

	rec := httptest.PerformRequestWithHeaders(t, router, http.MethodGet, "/boom", nil,
		map[string]string{middleware.RequestIDHeader: "trace-43"})

	body := httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	assert.Equal(t, "trace-43", body.RequestID)
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestRouter_CORSExposesRequestID(t *testing.T) {
	router, _ := newRouter(t)

	rec := httptest.PerformRequestWithHeaders(t, router, http.MethodGet, "/health", nil,
		map[string]string{"Origin": "http://localhost:3000"})

	exposed := strings.ToLower(rec.Header().Get("Access-Control-Expose-Headers"))
	assert.Contains(t, exposed, strings.ToLower(middleware.RequestIDHeader))
}
