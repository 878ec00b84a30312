package main

import (
	"errors"
	"net/http"

	"sentry-safety/internal/faults"

	"github.com/gin-gonic/gin"
)

// writeServiceError maps the service failure taxonomy onto HTTP statuses.
// Invalid input and missing lookups are the caller's problem; everything else
// is logged and reported as a gateway or server failure.
func (app *App) writeServiceError(c *gin.Context, err error) {
	var invalid *faults.InvalidInput
	if errors.As(err, &invalid) {
		c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Error()})
		return
	}
	if errors.Is(err, faults.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	var upstream *faults.UpstreamError
	if errors.As(err, &upstream) {
		app.logger.Error("upstream provider failed",
			"provider", upstream.Provider,
			"status", upstream.Status,
			"error", err,
		)
		status := http.StatusBadGateway
		if upstream.Status == http.StatusGatewayTimeout {
			status = http.StatusGatewayTimeout
		}
		c.JSON(status, gin.H{"error": "upstream provider unavailable"})
		return
	}

	var integrity *faults.DataIntegrityError
	if errors.As(err, &integrity) {
		app.logger.Error("static dataset unusable", "source", integrity.Source, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "dataset unavailable"})
		return
	}

	app.logger.Error("request failed", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
