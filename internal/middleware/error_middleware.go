package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scholarstream/scholarstream/internal/app/models/dto"
	"github.com/scholarstream/scholarstream/internal/pkg/apperrors"
	"github.com/scholarstream/scholarstream/internal/pkg/logger"
)

// statusForError maps the error taxonomy onto HTTP statuses. Internal error
// detail is logged by whoever produced it and never returned to the caller.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrUnauthenticated),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid):
		return http.StatusUnauthorized, "unauthorized access."
	case errors.Is(err, apperrors.ErrNotRegistered):
		return http.StatusForbidden, "Forbidden: account is not registered"
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, apperrors.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, apperrors.ErrScholarshipNotFound):
		return http.StatusNotFound, "Scholarship not found"
	case errors.Is(err, apperrors.ErrApplicationNotFound),
		// A submitted application is no longer deletable; callers see the
		// same answer as for one that never existed.
		errors.Is(err, apperrors.ErrApplicationNotDeletable):
		return http.StatusNotFound, "Application not found"
	case errors.Is(err, apperrors.ErrReviewNotFound):
		return http.StatusNotFound, "Review not found"
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, "Resource not found"
	case errors.Is(err, apperrors.ErrInvalidRole):
		return http.StatusBadRequest, "Invalid role"
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, apperrors.ErrResourceAlreadyExists),
		errors.Is(err, apperrors.ErrEmailAlreadyExists):
		return http.StatusConflict, "Already exists"
	case errors.Is(err, apperrors.ErrUpstream):
		return http.StatusBadGateway, "Upstream service failure"
	default:
		logger.Error().Err(err).Msg("Unhandled error")
		return http.StatusInternalServerError, "Internal Server Error"
	}
}

// HandleAPIError maps an error to the standard `{message}` envelope.
func HandleAPIError(c *gin.Context, err error) {
	status, message := statusForError(err)
	c.JSON(status, dto.MessageResponse{Message: message})
}

// HandlePaymentError maps an error to the payment routes' `{success:false}`
// envelope.
func HandlePaymentError(c *gin.Context, err error) {
	status, message := statusForError(err)
	c.JSON(status, dto.PaymentResponse{Success: false, Message: message})
}
