package handlers

import (
	"errors"
	"net/http"

	"scoreboard/internal/service"

	"github.com/gin-gonic/gin"
)

const msgInvalidBody = "Invalid request body"

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": msgInvalidBody})
		return false
	}
	return true
}

// statusFor maps a service error kind to an HTTP status. notFound differs
// between login (400) and resource routes (404).
func statusFor(err error, notFound int) int {
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrConflict),
		errors.Is(err, service.ErrAuthentication):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		return notFound
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes {message} for err. Internal failures are logged and
// answered with fallback so store details never reach the client.
func (h *Handler) respondError(c *gin.Context, err error, notFound int, fallback, logKey string, kv ...interface{}) {
	code := statusFor(err, notFound)
	if code == http.StatusInternalServerError {
		if h.log != nil {
			h.log.Errorw(logKey, append([]interface{}{"err", err}, kv...)...)
		}
		c.JSON(code, gin.H{"message": fallback})
		return
	}
	if h.log != nil {
		h.log.Infow(logKey, append([]interface{}{"err", err}, kv...)...)
	}
	c.JSON(code, gin.H{"message": service.Message(err, fallback)})
}
