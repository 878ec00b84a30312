package classifier

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
)

// distances closer than this are treated as exact matches
const distanceEpsilon = 1e-6

// Prototype is one labeled training exemplar in the committed model artifact.
type Prototype struct {
	Label    string    `json:"label"`
	Features []float64 `json:"features"`
}

// prototypeArtifact is the on-disk shape of the model file.
type prototypeArtifact struct {
	Classes    []string    `json:"classes"`
	Prototypes []Prototype `json:"prototypes"`
}

// PrototypeModel is a nearest-prototype classifier loaded from a JSON
// artifact. Probabilities are inverse-distance weights aggregated per class,
// normalized over all prototypes. Loaded once at startup; read-only after.
type PrototypeModel struct {
	classes    []string
	classIndex map[string]int
	prototypes []Prototype
	logger     *slog.Logger
}

// NewPrototypeModelFromFile loads the artifact from path. When the primary
// file is missing it falls back to the matching ".example" artifact, e.g.
// "model.json" -> "model.example.json", so a fresh checkout still boots.
func NewPrototypeModelFromFile(path string, logger *slog.Logger) (*PrototypeModel, error) {
	resolved := filepath.Clean(path)
	data, err := os.ReadFile(resolved)
	if err != nil {
		ext := filepath.Ext(resolved)
		fallback := strings.TrimSuffix(resolved, ext) + ".example" + ext
		data, err = os.ReadFile(fallback)
		if err != nil {
			return nil, fmt.Errorf("failed to load model artifact (%s): %w", resolved, err)
		}
		logger.Warn("falling back to example model artifact", "path", fallback)
	}

	var artifact prototypeArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("unable to parse model artifact: %w", err)
	}
	return NewPrototypeModel(artifact.Classes, artifact.Prototypes, logger)
}

func NewPrototypeModel(classes []string, prototypes []Prototype, logger *slog.Logger) (*PrototypeModel, error) {
	if len(classes) == 0 {
		return nil, fmt.Errorf("model artifact declares no classes")
	}
	classIndex := make(map[string]int, len(classes))
	for i, c := range classes {
		classIndex[c] = i
	}

	dims := -1
	for _, proto := range prototypes {
		if len(proto.Features) == 0 {
			return nil, fmt.Errorf("prototype for %q has no features", proto.Label)
		}
		if dims == -1 {
			dims = len(proto.Features)
		} else if len(proto.Features) != dims {
			return nil, fmt.Errorf("prototype for %q has %d features, expected %d", proto.Label, len(proto.Features), dims)
		}
		if _, ok := classIndex[proto.Label]; !ok {
			return nil, fmt.Errorf("prototype label %q not in declared classes", proto.Label)
		}
	}
	if len(prototypes) == 0 {
		return nil, fmt.Errorf("model artifact has no prototypes")
	}

	return &PrototypeModel{
		classes:    classes,
		classIndex: classIndex,
		prototypes: prototypes,
		logger:     logger.With("component", "prototype-model"),
	}, nil
}

// ClassOrder exposes the label-to-column mapping of probability vectors.
func (m *PrototypeModel) ClassOrder() []string {
	return m.classes
}

// Predict classifies each row against the prototype set. Output slices match
// the row order and length.
func (m *PrototypeModel) Predict(rows []FeatureRow) ([]string, [][]float64, error) {
	labels := make([]string, len(rows))
	probs := make([][]float64, len(rows))

	for i, row := range rows {
		vector := vectorize(row)
		weights := make([]float64, len(m.classes))
		var total float64

		for _, proto := range m.prototypes {
			d := euclidean(vector, proto.Features)
			w := 1.0 / (d + distanceEpsilon)
			weights[m.classIndex[proto.Label]] += w
			total += w
		}

		vec := make([]float64, len(m.classes))
		best := 0
		for c := range weights {
			vec[c] = weights[c] / total
			if vec[c] > vec[best] {
				best = c
			}
		}
		labels[i] = m.classes[best]
		probs[i] = vec
	}

	return labels, probs, nil
}

// vectorize projects the numeric fields of a row into the feature space the
// prototypes were built in. Feature order is part of the artifact contract.
func vectorize(row FeatureRow) []float64 {
	return []float64{
		float64(row.Month),
		float64(row.Day),
		row.MaxTemperature,
		row.AvgTemperature,
		row.MinTemperature,
		row.MaxHumidity,
		row.AvgHumidity,
		row.MinHumidity,
		row.MaxWindSpeed,
		row.AvgWindSpeed,
		row.MinWindSpeed,
		row.TotalPrecipitation,
		row.AQI,
		row.AQIMedian,
	}
}

func euclidean(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float64
	for i := 0; i < n; i++ {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
