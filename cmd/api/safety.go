package main

import (
	"net/http"

	"sentry-safety/internal/safety"

	"github.com/gin-gonic/gin"
)

// GetSafetyAreasInput defines the query parameters for the safety areas
// endpoint. Month and day default to the current date in the boundary
// region's timezone.
type GetSafetyAreasInput struct {
	Month int  `form:"month"`                               // Month 1-12, 0 for current
	Day   int  `form:"day"`                                 // Day 1-31, 0 for current
	Live  bool `form:"use_current_conditions,default=true"` // Use live air-quality readings
}

// handleGetSafetyAreas godoc
// @Summary Get risk-annotated safety areas
// @Description Retrieve all zone boundaries annotated with risk level, safety score, and air-quality data
// @Tags safety
// @Produce json
// @Param month query int false "Month (1-12), defaults to current" minimum(1) maximum(12)
// @Param day query int false "Day (1-31), defaults to current" minimum(1) maximum(31)
// @Param use_current_conditions query bool false "Use live air-quality readings" default(true)
// @Success 200 {object} safety.AnnotatedDataset
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /safety-areas [get]
func (app *App) handleGetSafetyAreas(c *gin.Context) {
	var input GetSafetyAreasInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dataset, err := app.safetyService.GetAnnotatedZones(c.Request.Context(), input.Month, input.Day, input.Live)
	if err != nil {
		app.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dataset)
}

// StationAQI is one station's live reading with its descriptive band.
type StationAQI struct {
	Station  string  `json:"station"`
	AQI      float64 `json:"aqi"`
	Category string  `json:"category"`
}

// AQIResponse is the live air-quality snapshot across all stations.
type AQIResponse struct {
	Stations  []StationAQI `json:"stations"`
	MedianAQI float64      `json:"median_aqi"`
	Count     int          `json:"count"`
}

// handleGetAQI godoc
// @Summary Get live air-quality readings
// @Description Retrieve current AQI for every monitored station with the citywide median
// @Tags safety
// @Produce json
// @Success 200 {object} AQIResponse
// @Failure 502 {object} map[string]string
// @Router /aqi [get]
func (app *App) handleGetAQI(c *gin.Context) {
	readings, err := app.aqiClient.FetchAll(c.Request.Context())
	if err != nil {
		app.logger.Error("failed to fetch air-quality readings", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "air-quality provider unavailable"})
		return
	}

	stations := make([]StationAQI, 0, len(readings))
	for station, reading := range readings {
		stations = append(stations, StationAQI{
			Station:  station,
			AQI:      reading.AQI,
			Category: safety.CategorizeAQI(reading.AQI),
		})
	}

	c.JSON(http.StatusOK, AQIResponse{
		Stations:  stations,
		MedianAQI: safety.MedianAQI(readings),
		Count:     len(stations),
	})
}
