package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/plats-network/sponsor-ledger/internal/api/shared/errors"
	"github.com/plats-network/sponsor-ledger/internal/domain"
	"github.com/plats-network/sponsor-ledger/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusUnprocessableEntity, apierrors.NewValidationError(message))
}

// respondInternalError logs the underlying error and responds with an
// internal server error
func respondInternalError(c *gin.Context, err error, message string, details ...string) {
	logger.ErrorCtx(c.Request.Context(), err, zap.String("path", c.FullPath()))
	c.JSON(http.StatusInternalServerError, apierrors.NewInternalError(message, details...))
}

// respondError maps an executor error to its HTTP response. Domain sentinels
// map to stable client-facing statuses; structured APIErrors keep the status
// implied by their code; anything else is an internal error.
func respondError(c *gin.Context, err error, fallbackMessage string) {
	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrNotSponsored),
		errors.Is(err, domain.ErrAccountNotRegistered),
		errors.Is(err, domain.ErrTransferNotFound):
		c.JSON(http.StatusNotFound, apierrors.NewNotFoundError(err.Error()))

	case errors.Is(err, domain.ErrAlreadySponsored),
		errors.Is(err, domain.ErrAccountRegistered),
		errors.Is(err, domain.ErrClaimPending),
		errors.Is(err, domain.ErrInvalidEventState):
		c.JSON(http.StatusConflict, apierrors.NewConflictError(err.Error()))

	case errors.Is(err, domain.ErrPaymentMismatch),
		errors.Is(err, domain.ErrInsufficientPayment),
		errors.Is(err, domain.ErrAmountOverflow),
		errors.Is(err, domain.ErrInsufficientBalance):
		c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(err.Error()))

	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusForbidden, apierrors.NewForbiddenError(err.Error()))

	default:
		var apiErr *apierrors.APIError
		if errors.As(err, &apiErr) {
			c.JSON(statusForCode(apiErr.Code), apiErr)
			return
		}
		respondInternalError(c, err, fallbackMessage)
	}
}

func statusForCode(code apierrors.ErrorCode) int {
	switch code {
	case apierrors.ErrCodeBadRequest:
		return http.StatusBadRequest
	case apierrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apierrors.ErrCodeValidationFailed:
		return http.StatusUnprocessableEntity
	case apierrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case apierrors.ErrCodeForbidden:
		return http.StatusForbidden
	case apierrors.ErrCodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
