package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	pricingdomain "github.com/freightdesk/tariff/internal/pricing/domain"
	quotedomain "github.com/freightdesk/tariff/internal/quote/domain"
	templatedomain "github.com/freightdesk/tariff/internal/template/domain"
	"gorm.io/gorm"
)

type errorPayload struct {
	Type     string     `json:"type"`
	Message  string     `json:"message"`
	LockedAt *time.Time `json:"lockedAt,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrConflict       = errors.New("conflict")
	ErrInvalidRequest = errors.New("invalid_request")
)

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func invalidRequestError() error {
	return ErrInvalidRequest
}

func mapError(err error) (int, errorPayload) {
	if err == nil {
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}

	var locked *pricingdomain.PricingLockedError
	if errors.As(err, &locked) {
		lockedAt := locked.LockedAt
		return http.StatusLocked, errorPayload{
			Type:     "pricing_locked",
			Message:  "pricing is locked",
			LockedAt: &lockedAt,
		}
	}

	switch {
	case errors.Is(err, ErrUnauthorized), errors.Is(err, pricingdomain.ErrActorRequired):
		return http.StatusUnauthorized, errorPayload{
			Type:    "unauthorized",
			Message: "unauthorized",
		}
	case errors.Is(err, ErrForbidden), errors.Is(err, pricingdomain.ErrAdminOnly):
		return http.StatusForbidden, errorPayload{
			Type:    "forbidden",
			Message: "forbidden",
		}
	case isValidationError(err):
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: err.Error(),
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: err.Error(),
		}
	case errors.Is(err, ErrConflict),
		errors.Is(err, pricingdomain.ErrChargeExists),
		errors.Is(err, pricingdomain.ErrDuplicateContainerType),
		errors.Is(err, pricingdomain.ErrTransferOwnershipExists):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: err.Error(),
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, templatedomain.ErrInvalidMode),
		errors.Is(err, pricingdomain.ErrTemplateModeMismatch),
		errors.Is(err, pricingdomain.ErrContainerDetailRequired),
		errors.Is(err, pricingdomain.ErrAddonNotSupported),
		errors.Is(err, pricingdomain.ErrBlockRequired),
		errors.Is(err, pricingdomain.ErrLineMandatory),
		errors.Is(err, pricingdomain.ErrDirectionRequired),
		errors.Is(err, pricingdomain.ErrLockReasonRequired),
		errors.Is(err, pricingdomain.ErrNegativeRate):
		return true
	default:
		return false
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, templatedomain.ErrNotFound),
		errors.Is(err, templatedomain.ErrLineNotFound),
		errors.Is(err, quotedomain.ErrNotFound),
		errors.Is(err, pricingdomain.ErrPricingNotFound),
		errors.Is(err, pricingdomain.ErrBlockNotFound),
		errors.Is(err, pricingdomain.ErrChargeNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}
