package safety

import (
	"time"

	"sentry-safety/internal/boundary"
	"sentry-safety/internal/classifier"
)

// Zone is one administrative area with its current risk annotation. Geometry
// is loaded once at startup and never mutated; the annotation fields are
// rewritten wholesale on every annotation pass.
type Zone struct {
	ID             string               `json:"id"`
	Name           string               `json:"name"`
	District       string               `json:"district,omitempty"`
	Range          string               `json:"range,omitempty"`
	Subdivision    string               `json:"subdivision,omitempty"`
	Geometry       boundary.Geometry    `json:"geometry"`
	RiskLevel      classifier.RiskLevel `json:"risk_level"`
	SafetyScore    float64              `json:"safety_score"`
	PredictedLabel string               `json:"predicted_label"`
	AQI            float64              `json:"aqi"`
	MatchedStation string               `json:"matched_station,omitempty"`
	MatchKind      MatchKind            `json:"match_kind"`
}

// Meta describes one annotation pass.
type Meta struct {
	GeneratedAt time.Time `json:"generated_at"`
	Month       int       `json:"month"`
	Day         int       `json:"day"`
	MedianAQI   float64   `json:"median_aqi"`
	Count       int       `json:"count"`
}

// AnnotatedDataset is an immutable snapshot of all zones from one annotation
// pass. A newer pass supersedes it; nothing mutates it in place.
type AnnotatedDataset struct {
	Zones []Zone `json:"zones"`
	Meta  Meta   `json:"metadata"`
}

// DefaultAQI is the sentinel used when a live reading is unavailable.
const DefaultAQI = 150.0

// Default weather profile applied to every feature row. Live weather is not
// wired; these constants approximate the region's climate the model was
// trained against.
const (
	defaultMaxTemperature = 32.0
	defaultAvgTemperature = 28.0
	defaultMinTemperature = 24.0
	defaultHumidity       = 65.0
	defaultWindSpeed      = 3.5
	defaultPrecipitation  = 0.0
)

// CategorizeAQI maps an AQI value onto the standard descriptive bands.
func CategorizeAQI(aqi float64) string {
	switch {
	case aqi <= 50:
		return "Good"
	case aqi <= 100:
		return "Moderate"
	case aqi <= 150:
		return "Unhealthy for Sensitive Groups"
	case aqi <= 200:
		return "Unhealthy"
	case aqi <= 300:
		return "Very Unhealthy"
	default:
		return "Hazardous"
	}
}
