// Package classifier wraps the opaque safety prediction model behind a
// capability interface and adds the probability-extraction and risk-level
// mapping the annotation pipeline needs. The core never depends on a
// concrete model format; adapters (see prototype.go) do.
package classifier

import "strings"

// FeatureRow is one zone's input to the prediction contract. Field names
// mirror the training data of the model artifact.
type FeatureRow struct {
	Month              int
	Day                int
	Station            string
	MaxTemperature     float64
	AvgTemperature     float64
	MinTemperature     float64
	MaxHumidity        float64
	AvgHumidity        float64
	MinHumidity        float64
	MaxWindSpeed       float64
	AvgWindSpeed       float64
	MinWindSpeed       float64
	TotalPrecipitation float64
	AQI                float64
	AQIMedian          float64
}

// Model is the prediction contract. Labels and probability vectors come back
// in the same order as rows.
type Model interface {
	Predict(rows []FeatureRow) (labels []string, probs [][]float64, err error)
}

// ClassOrderer is optionally implemented by models that expose their
// label-to-column mapping. Absence is tolerated everywhere.
type ClassOrderer interface {
	ClassOrder() []string
}

var (
	safeLabelHints   = []string{"safe", "low risk", "allow", "green"}
	dangerLabelHints = []string{"danger", "high", "forbidden", "severe"}
)

// ResolveClassOrder returns the model's label order, or an empty slice when
// the model does not expose one. Never fails: the extraction heuristics
// degrade gracefully without it.
func ResolveClassOrder(m Model) []string {
	if co, ok := m.(ClassOrderer); ok {
		return co.ClassOrder()
	}
	return nil
}

// ExtractSafeProbability pulls the probability of the safe class out of a
// probability vector. It looks for the first class label carrying a safe
// hint; failing that, the first danger-hinted class inverted; failing both,
// the final column. The final-column fallback preserves historical behavior
// and has no statistical justification. An empty vector is maximally
// uncertain (0.5).
func ExtractSafeProbability(probs []float64, classOrder []string) float64 {
	if len(probs) == 0 {
		return 0.5
	}

	for idx, class := range classOrder {
		if idx >= len(probs) {
			break
		}
		if containsAny(strings.ToLower(class), safeLabelHints) {
			return probs[idx]
		}
	}

	for idx, class := range classOrder {
		if containsAny(strings.ToLower(class), dangerLabelHints) {
			danger := 0.5
			if idx < len(probs) {
				danger = probs[idx]
			}
			return clamp01(1.0 - danger)
		}
	}

	return probs[len(probs)-1]
}

// ClassifyRiskLevel maps a safety score and predicted label to a coarse risk
// level. A label containing "high" overrides the score: a model reporting a
// high-risk label with a middling score is still forbidden. Otherwise the
// score thresholds decide.
func ClassifyRiskLevel(safetyScore float64, predictedLabel string) RiskLevel {
	if strings.Contains(strings.ToLower(predictedLabel), "high") {
		return RiskForbidden
	}

	switch {
	case safetyScore >= 0.7:
		return RiskSafe
	case safetyScore >= 0.4:
		return RiskCaution
	default:
		return RiskForbidden
	}
}

func containsAny(s string, hints []string) bool {
	for _, hint := range hints {
		if strings.Contains(s, hint) {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
