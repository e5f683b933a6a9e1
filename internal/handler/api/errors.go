package api

import (
	"log/slog"
	"net/http"

	"dh-booking/internal/handler/httperr"
	"dh-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// respondError writes err with the status of its kind. Messages of business
// errors are safe to show; anything else gets a generic text.
func respondError(c *gin.Context, err error) {
	status := StatusFor(err)
	msg := err.Error()
	switch status {
	case http.StatusServiceUnavailable:
		msg = "Service temporarily unavailable"
	case http.StatusInternalServerError:
		msg = "Internal server error"
		slog.Error("unclassified error",
			"path", c.FullPath(),
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 12))
	}
	httperr.AbortWithError(c, status, err, msg, nil)
}

func StatusFor(err error) int {
	switch errs.KindOf(err) {
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindInvalidArgument:
		return http.StatusBadRequest
	case errs.KindConflict:
		return http.StatusConflict
	case errs.KindPermissionDenied:
		return http.StatusForbidden
	case errs.KindTransient:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func badRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}
