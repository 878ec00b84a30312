package main

import (
	"net/http"

	"sentry-safety/internal/routing"
	"sentry-safety/internal/types"

	"github.com/gin-gonic/gin"
)

// RouteEndpointInput is one route endpoint: explicit coordinates, or a
// location name to geocode when coordinates are absent.
type RouteEndpointInput struct {
	Location  string   `json:"location" example:"Connaught Place"`
	Latitude  *float64 `json:"lat" example:"28.6328"`
	Longitude *float64 `json:"lng" example:"77.2197"`
}

// SafeRouteInput is the request body for the safe-route endpoint.
type SafeRouteInput struct {
	Start           RouteEndpointInput `json:"start" binding:"required"`
	End             RouteEndpointInput `json:"end" binding:"required"`
	Profile         string             `json:"profile" example:"foot-walking"`
	AvoidRiskLevels []string           `json:"avoid_risk_levels" example:"forbidden"`
}

func (in RouteEndpointInput) toEndpoint() routing.Endpoint {
	ep := routing.Endpoint{Location: in.Location}
	if in.Latitude != nil && in.Longitude != nil {
		coords := types.NewCoords(*in.Latitude, *in.Longitude)
		ep.Coords = &coords
	}
	return ep
}

// handlePostSafeRoute godoc
// @Summary Compute a risk-aware route
// @Description Compute a route between two points that detours around zones at the requested risk levels, falling back to an unconstrained route when avoidance makes routing infeasible
// @Tags routing
// @Accept json
// @Produce json
// @Param request body SafeRouteInput true "Route request"
// @Success 200 {object} routing.RouteResult
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /safe-route [post]
func (app *App) handlePostSafeRoute(c *gin.Context) {
	var input SafeRouteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile := input.Profile
	if profile == "" {
		profile = "foot-walking"
	}

	result, err := app.routingService.ComputeSafeRoute(c.Request.Context(), routing.RouteRequest{
		Start:           input.Start.toEndpoint(),
		End:             input.End.toEndpoint(),
		Profile:         profile,
		AvoidRiskLevels: input.AvoidRiskLevels,
	})
	if err != nil {
		app.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// handleGeocode godoc
// @Summary Geocode a location name
// @Description Resolve a free-form location name to coordinates
// @Tags routing
// @Produce json
// @Param location query string true "Location name to resolve" example(India Gate)
// @Success 200 {object} routing.GeocodedLocation
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /geocode [get]
func (app *App) handleGeocode(c *gin.Context) {
	location := c.Query("location")

	result, err := app.routingService.Geocode(c.Request.Context(), location)
	if err != nil {
		app.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
