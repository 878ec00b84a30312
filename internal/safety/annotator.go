package safety

import (
	"context"
	"fmt"
	"sort"

	"sentry-safety/internal/classifier"
	"sentry-safety/internal/providers/waqi"
)

// annotate runs one full annotation pass: reconcile every boundary feature
// with a live reading, classify all zones in a single batch, and assemble the
// immutable dataset snapshot.
func (s *safetyService) annotate(ctx context.Context, month, day int, useLive bool) (*AnnotatedDataset, error) {
	fc, err := s.boundaries.Load()
	if err != nil {
		return nil, err
	}

	readings := map[string]waqi.Reading{}
	if useLive {
		fetched, err := s.aqi.FetchAll(ctx)
		if err != nil {
			// Live readings are best-effort: the pass continues on
			// sentinel values.
			s.logger.Warn("failed to fetch live air-quality data, using defaults", "error", err)
		} else {
			readings = fetched
		}
	}
	medianAQI := MedianAQI(readings)

	rows := make([]classifier.FeatureRow, 0, len(fc.Features))
	matches := make([]MatchResult, 0, len(fc.Features))
	zoneAQIs := make([]float64, 0, len(fc.Features))

	for _, feature := range fc.Features {
		match := s.matcher.Match(feature.Properties.StationName)
		matches = append(matches, match)

		aqi := DefaultAQI
		if reading, ok := readings[match.Key]; ok {
			aqi = reading.AQI
		}
		zoneAQIs = append(zoneAQIs, aqi)

		rows = append(rows, classifier.FeatureRow{
			Month:              month,
			Day:                day,
			Station:            match.Key,
			MaxTemperature:     defaultMaxTemperature,
			AvgTemperature:     defaultAvgTemperature,
			MinTemperature:     defaultMinTemperature,
			MaxHumidity:        defaultHumidity,
			AvgHumidity:        defaultHumidity,
			MinHumidity:        defaultHumidity,
			MaxWindSpeed:       defaultWindSpeed,
			AvgWindSpeed:       defaultWindSpeed,
			MinWindSpeed:       defaultWindSpeed,
			TotalPrecipitation: defaultPrecipitation,
			AQI:                aqi,
			AQIMedian:          medianAQI,
		})
	}

	var labels []string
	var probs [][]float64
	if len(rows) > 0 {
		labels, probs, err = s.model.Predict(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to classify zones: %w", err)
		}
	}

	zones := make([]Zone, 0, len(fc.Features))
	for idx, feature := range fc.Features {
		zone := Zone{
			ID:             fmt.Sprintf("zone_%03d", idx),
			Name:           feature.Properties.StationName,
			District:       feature.Properties.District,
			Range:          feature.Properties.Range,
			Subdivision:    feature.Properties.Subdivision,
			Geometry:       feature.Geometry,
			AQI:            zoneAQIs[idx],
			MatchedStation: matches[idx].Key,
			MatchKind:      matches[idx].Kind,
		}

		if idx < len(labels) && idx < len(probs) {
			zone.PredictedLabel = labels[idx]
			zone.SafetyScore = classifier.ExtractSafeProbability(probs[idx], s.classOrder)
			zone.RiskLevel = classifier.ClassifyRiskLevel(zone.SafetyScore, zone.PredictedLabel)
		} else {
			// Unscored zones are never treated as safe.
			zone.PredictedLabel = "Unknown"
			zone.SafetyScore = 0.5
			zone.RiskLevel = classifier.RiskForbidden
		}

		zones = append(zones, zone)
	}

	dataset := &AnnotatedDataset{
		Zones: zones,
		Meta: Meta{
			GeneratedAt: s.clock().UTC(),
			Month:       month,
			Day:         day,
			MedianAQI:   medianAQI,
			Count:       len(zones),
		},
	}

	s.logger.Info("annotation pass complete",
		"zones", len(zones),
		"month", month,
		"day", day,
		"live_readings", len(readings),
		"median_aqi", medianAQI,
	)
	return dataset, nil
}

// MedianAQI computes the median AQI over whatever live readings were
// obtained; the sentinel when there are none.
func MedianAQI(readings map[string]waqi.Reading) float64 {
	if len(readings) == 0 {
		return DefaultAQI
	}

	values := make([]float64, 0, len(readings))
	for _, r := range readings {
		values = append(values, r.AQI)
	}
	sort.Float64s(values)

	mid := len(values) / 2
	if len(values)%2 == 1 {
		return values[mid]
	}
	return (values[mid-1] + values[mid]) / 2
}
