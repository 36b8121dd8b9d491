// Package httpapi holds the response conventions shared by every
// handler: how gateway errors map onto HTTP statuses.
package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	custom_error "github.com/mEdHaT33/Arkan/pkg/errors"
)

// Error writes the JSON error response for a gateway failure. Backend
// rejections keep their verbatim message on 422 so the operator sees what
// the backend said; transport and decode problems collapse to a generic
// 502 because their details belong in the log, not the screen.
func Error(c *gin.Context, err error) {
	var remoteErr *custom_error.RemoteError
	if errors.As(err, &remoteErr) {
		message := remoteErr.Message
		if message == "" {
			message = "request rejected by backend"
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": message})
		return
	}

	var transportErr *custom_error.TransportError
	if errors.As(err, &transportErr) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "network error"})
		return
	}

	var decodeErr *custom_error.DecodeError
	if errors.As(err, &decodeErr) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "invalid response from backend"})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error", "details": err.Error()})
}
