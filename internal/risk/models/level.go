package models

import "riskdesk/pkg/domain"

// Level is the ordered risk level scale.
type Level string

const (
	LevelLow      Level = "low"
	LevelMedium   Level = "medium"
	LevelHigh     Level = "high"
	LevelCritical Level = "critical"
)

// Levels lists every level in ascending order.
var Levels = []Level{LevelLow, LevelMedium, LevelHigh, LevelCritical}

var levelBadges = map[Level]domain.Badge{
	LevelLow:      {Label: "Low", Variant: "green"},
	LevelMedium:   {Label: "Medium", Variant: "yellow"},
	LevelHigh:     {Label: "High", Variant: "orange"},
	LevelCritical: {Label: "Critical", Variant: "red"},
}

func (l Level) IsValid() bool {
	_, ok := levelBadges[l]
	return ok
}

// Display returns the badge for l, or domain.UnknownBadge.
func (l Level) Display() domain.Badge {
	if b, ok := levelBadges[l]; ok {
		return b
	}
	return domain.UnknownBadge
}

// Rank orders levels from 1 (low) to 4 (critical); unknown levels rank 0.
func (l Level) Rank() int {
	for i, v := range Levels {
		if v == l {
			return i + 1
		}
	}
	return 0
}

// LevelFromScore derives a level from impact and likelihood ratings on the 1..4 scales.
// The product is bucketed: 1-3 low, 4-6 medium, 8-9 high, 12-16 critical.
func LevelFromScore(impact, likelihood int) (Level, bool) {
	if impact < 1 || impact > 4 || likelihood < 1 || likelihood > 4 {
		return "", false
	}
	switch score := impact * likelihood; {
	case score <= 3:
		return LevelLow, true
	case score <= 6:
		return LevelMedium, true
	case score <= 9:
		return LevelHigh, true
	default:
		return LevelCritical, true
	}
}
