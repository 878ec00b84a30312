package safety

import (
	"strings"
)

// MatchKind tags how confidently a boundary label was reconciled against the
// canonical station set. The phases are ordered: exact canonical lookup,
// substring containment in either direction, then a first-two-token guess.
type MatchKind int

const (
	MatchUnmatched MatchKind = iota
	MatchExact
	MatchApproximated
)

var matchKindNames = map[MatchKind]string{
	MatchUnmatched:    "unmatched",
	MatchExact:        "matched",
	MatchApproximated: "approximated",
}

func (k MatchKind) String() string {
	if name, ok := matchKindNames[k]; ok {
		return name
	}
	return "unmatched"
}

func (k MatchKind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// MatchResult is the outcome of reconciling one boundary label.
type MatchResult struct {
	Key  string
	Kind MatchKind
}

// StationMatcher reconciles raw boundary labels with the canonical station
// names the live air-quality feed is keyed by. The two naming schemes were
// normalized independently, so matching is heuristic by necessity.
type StationMatcher struct {
	canonical []string
}

func NewStationMatcher(canonical []string) *StationMatcher {
	normalized := make([]string, 0, len(canonical))
	for _, name := range canonical {
		normalized = append(normalized, NormalizeStationName(name))
	}
	return &StationMatcher{canonical: normalized}
}

// NormalizeStationName lowercases a raw label and strips the "ps " prefix
// and punctuation the boundary dataset decorates names with.
func NormalizeStationName(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	name = strings.ReplaceAll(name, "ps ", "")
	name = strings.ReplaceAll(name, ".", "")
	return strings.TrimSpace(name)
}

// Match resolves a raw boundary label to a canonical station key. On no
// canonical hit it falls back to the first two tokens of the normalized name
// as a best-effort key, tagged Unmatched so callers can tell a guess from a
// canonical hit.
func (m *StationMatcher) Match(raw string) MatchResult {
	name := NormalizeStationName(raw)
	if name == "" {
		return MatchResult{Kind: MatchUnmatched}
	}

	for _, canonical := range m.canonical {
		if canonical == name {
			return MatchResult{Key: canonical, Kind: MatchExact}
		}
	}

	for _, canonical := range m.canonical {
		if strings.Contains(name, canonical) || strings.Contains(canonical, name) {
			return MatchResult{Key: canonical, Kind: MatchApproximated}
		}
	}

	parts := strings.Fields(name)
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return MatchResult{Key: strings.Join(parts, " "), Kind: MatchUnmatched}
}
