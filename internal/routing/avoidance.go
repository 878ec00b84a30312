package routing

import (
	"log/slog"
	"strings"

	"sentry-safety/internal/geo"
	"sentry-safety/internal/providers/openrouteservice"
	"sentry-safety/internal/safety"
)

// DefaultAvoidLimit caps the number of avoidance polygons sent to the
// directions provider. The provider rejects oversized payloads outright, so
// every zone is reduced to a constant-size bounding box and the total count
// is bounded here.
const DefaultAvoidLimit = 30

// BuildAvoidMultiPolygon reduces every zone matching the avoid levels to its
// outer-ring bounding box and collects them into a MultiPolygon, stopping
// once limit polygons have been added. Truncation is silent and keeps dataset
// order, so zones later in the file can be dropped. Returns nil when no zone
// qualifies, signaling that no avoidance constraint should be attached at all.
func BuildAvoidMultiPolygon(ds *safety.AnnotatedDataset, avoidLevels []string, limit int, logger *slog.Logger) *openrouteservice.MultiPolygon {
	if limit <= 0 {
		limit = DefaultAvoidLimit
	}
	avoid := normalizeLevelSet(avoidLevels)

	var rings []geo.Ring
	for _, zone := range ds.Zones {
		if len(rings) >= limit {
			break
		}
		if !avoid[zone.RiskLevel.String()] {
			continue
		}

		for _, outer := range zone.Geometry.OuterRings() {
			if len(rings) >= limit {
				break
			}
			box := geo.BoundingBoxRing(outer)
			if box == nil || !box.Closed() {
				logger.Warn("skipping unclosed avoidance ring", "zone_id", zone.ID, "zone_name", zone.Name)
				continue
			}
			rings = append(rings, box)
		}
	}

	logger.Info("built avoidance geometry", "avoid_levels", avoidLevels, "polygons", len(rings))
	if len(rings) == 0 {
		return nil
	}
	return openrouteservice.NewMultiPolygon(rings)
}

func normalizeLevelSet(levels []string) map[string]bool {
	set := make(map[string]bool, len(levels))
	for _, lvl := range levels {
		lvl = strings.ToLower(strings.TrimSpace(lvl))
		if lvl != "" {
			set[lvl] = true
		}
	}
	return set
}
