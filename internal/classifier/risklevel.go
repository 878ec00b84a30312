package classifier

// RiskLevel is the coarse three-way classification driving avoidance
// decisions.
type RiskLevel int

const (
	RiskSafe RiskLevel = iota
	RiskCaution
	RiskForbidden
)

var riskLevelNames = map[RiskLevel]string{
	RiskSafe:      "safe",
	RiskCaution:   "caution",
	RiskForbidden: "forbidden",
}

func (r RiskLevel) String() string {
	if name, ok := riskLevelNames[r]; ok {
		return name
	}
	return "forbidden"
}

// ParseRiskLevel maps a wire string to a RiskLevel. The second return is
// false for unknown values.
func ParseRiskLevel(s string) (RiskLevel, bool) {
	switch s {
	case "safe":
		return RiskSafe, true
	case "caution":
		return RiskCaution, true
	case "forbidden":
		return RiskForbidden, true
	}
	return RiskForbidden, false
}

func (r RiskLevel) MarshalJSON() ([]byte, error) {
	return []byte(`"` + r.String() + `"`), nil
}
