package valueobjects

import "fmt"

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

var validSeverities = map[Severity]bool{
	SeverityLow:      true,
	SeverityMedium:   true,
	SeverityHigh:     true,
	SeverityCritical: true,
}

// SeverityForScore maps a priority score to its severity tier. The
// breakpoints are fixed: [80,100] critical, [60,80) high, [40,60) medium,
// [0,40) low. Every place that derives severity from a score must go
// through this function so the two stay consistent.
func SeverityForScore(score int) Severity {
	switch {
	case score >= 80:
		return SeverityCritical
	case score >= 60:
		return SeverityHigh
	case score >= 40:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

func (s Severity) String() string {
	return string(s)
}

func (s Severity) IsValid() bool {
	return validSeverities[s]
}

func (s Severity) IsCritical() bool {
	return s == SeverityCritical
}

func NewSeverity(s string) (Severity, error) {
	sev := Severity(s)
	if !sev.IsValid() {
		return "", fmt.Errorf("invalid severity: %s", s)
	}
	return sev, nil
}

// AllSeverities lists severity tiers from most to least urgent, the order
// used by the priority listing buckets.
func AllSeverities() []Severity {
	return []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}
}
