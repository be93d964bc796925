package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/server/http/dto"
	"github.com/polkiloo/orderdesk/internal/server/http/middleware"
)

// CurrentSession extracts the authenticated admin session from context.
func CurrentSession(c *gin.Context) *model.Session {
	val, ok := c.Get(middleware.SessionContextKey)
	if !ok {
		return nil
	}
	session, _ := val.(*model.Session)
	return session
}

func abortBadRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg})
}

// writeError maps domain errors onto HTTP statuses.
func writeError(c *gin.Context, err error) {
	var verr *domainErrors.ValidationError
	switch {
	case errors.As(err, &verr):
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: domainErrors.ErrValidation.Error(), Fields: verr.Fields})
	case errors.Is(err, domainErrors.ErrValidation):
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainErrors.ErrTooManyAttempts):
		c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainErrors.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainErrors.ErrConfirmationRequired):
		c.AbortWithStatusJSON(http.StatusPreconditionRequired, dto.ErrorResponse{Error: err.Error()})
	default:
		_ = c.Error(err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
	}
}
