package api

import (
	"errors"
	"log/slog"
	"net/http"

	"field-reservation/internal/handler/httperr"
	"field-reservation/internal/handler/middleware"
	"field-reservation/internal/pkg/errs"
	"field-reservation/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

var errMissingActor = errors.New("authenticated actor missing from context")

var kindStatus = map[errs.Kind]int{
	errs.KindNotFound:                  http.StatusNotFound,
	errs.KindResourceUnavailable:       http.StatusUnprocessableEntity,
	errs.KindSlotNotOffered:            http.StatusUnprocessableEntity,
	errs.KindSlotConflict:              http.StatusConflict,
	errs.KindCancellationWindowExpired: http.StatusUnprocessableEntity,
	errs.KindAlreadyTerminal:           http.StatusConflict,
	errs.KindAmountMismatch:            http.StatusUnprocessableEntity,
	errs.KindInvalidInput:              http.StatusBadRequest,
	errs.KindForbidden:                 http.StatusForbidden,
	errs.KindInvalidTransition:         http.StatusConflict,
	errs.KindConcurrentUpdate:          http.StatusConflict,
	errs.KindPersistenceFailure:        http.StatusServiceUnavailable,
}

// StatusForKind maps an engine error kind to its HTTP status.
func StatusForKind(kind errs.Kind) int {
	if status, ok := kindStatus[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// abortWithKind writes the error envelope for err, using msg as the public message
// for anything below 500.
func abortWithKind(c *gin.Context, err error, msg string) {
	kind := errs.KindOf(err)
	status := StatusForKind(kind)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), msg, "error", err, "kind", kind.String())
		msg = "Internal server error"
		if status == http.StatusServiceUnavailable {
			msg = "Storage temporarily unavailable"
		}
	}
	httperr.AbortWithKind(c, status, err, msg, kind)
}

func badRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithKind(c, http.StatusBadRequest, err, msg, errs.KindInvalidInput)
}

func requireActor(c *gin.Context) (shared.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingActor, "Unauthorized")
		return shared.Actor{}, false
	}
	return actor, true
}
