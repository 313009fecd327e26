// Package plan decides whether a set of audit days can hold the interviews
// for the selected themes.
//
// Calculate and BuildSchedule are pure: the same input always yields the same
// summary, and nothing is cached between calls.
package plan

import (
	"fmt"
	"math"
	"time"

	"riskdesk/pkg/domain"
)

const (
	ExplanationFeasible = "The selected days cover every planned interview."
	ExplanationNoThemes = "Select at least one theme."
	ExplanationNoHours  = "No interview hours are available per day."
)

// epsilon absorbs float noise from summing fractional durations before ceil.
const epsilon = 1e-9

// Settings are deployment constants, never request input.
type Settings struct {
	AvailableHoursPerDay  float64
	OpeningClosingHours   float64
	DefaultThemeHours     float64
	IncludeOpeningClosing bool
}

func DefaultSettings() Settings {
	return Settings{
		AvailableHoursPerDay:  7,
		OpeningClosingHours:   2,
		DefaultThemeHours:     1,
		IncludeOpeningClosing: true,
	}
}

// Input is the transient plan state. Days and theme IDs have set semantics;
// duplicates are ignored. Theme order is kept for scheduling.
type Input struct {
	SelectedDays       []time.Time
	SelectedThemeIDs   []domain.ThemeID
	ThemeDurationHours map[domain.ThemeID]float64
}

type Summary struct {
	TopicsCount         int     `json:"topics_count"`
	TotalInterviewHours float64 `json:"total_interview_hours"`
	TotalHoursNeeded    float64 `json:"total_hours_needed"`
	RequiredDays        int     `json:"required_days"`
	BusinessDays        int     `json:"business_days"`
	IsValid             bool    `json:"is_valid"`
	Explanation         string  `json:"explanation"`
}

// Shortfall is the number of extra days the plan needs, or 0.
func (s Summary) Shortfall() int {
	return max(s.RequiredDays-s.BusinessDays, 0)
}

// Calculate computes the feasibility summary.
func Calculate(in Input, settings Settings) Summary {
	themes := uniqueThemes(in.SelectedThemeIDs)
	days := uniqueDays(in.SelectedDays)

	interview := 0.0
	for _, t := range themes {
		interview += durationOf(t, in.ThemeDurationHours, settings)
	}
	needed := interview
	if settings.IncludeOpeningClosing {
		needed += settings.OpeningClosingHours
	}

	s := Summary{
		TopicsCount:         len(themes),
		TotalInterviewHours: interview,
		TotalHoursNeeded:    needed,
		BusinessDays:        len(days),
	}

	if settings.AvailableHoursPerDay <= 0 {
		s.Explanation = ExplanationNoHours
		return s
	}
	if needed > 0 {
		s.RequiredDays = int(math.Ceil(needed/settings.AvailableHoursPerDay - epsilon))
	}

	s.IsValid = s.BusinessDays >= s.RequiredDays && s.TopicsCount > 0
	switch {
	case s.IsValid:
		s.Explanation = ExplanationFeasible
	case s.BusinessDays < s.RequiredDays:
		s.Explanation = shortfallMessage(s.RequiredDays - s.BusinessDays)
	default:
		s.Explanation = ExplanationNoThemes
	}
	return s
}

func shortfallMessage(n int) string {
	if n == 1 {
		return "1 more day is needed to cover every planned interview."
	}
	return fmt.Sprintf("%d more days are needed to cover every planned interview.", n)
}

func durationOf(id domain.ThemeID, durations map[domain.ThemeID]float64, settings Settings) float64 {
	if d, ok := durations[id]; ok && d > 0 {
		return d
	}
	return settings.DefaultThemeHours
}

func uniqueThemes(ids []domain.ThemeID) []domain.ThemeID {
	seen := make(map[domain.ThemeID]struct{}, len(ids))
	out := make([]domain.ThemeID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// uniqueDays collapses timestamps onto calendar dates in their own location.
func uniqueDays(days []time.Time) []time.Time {
	seen := make(map[string]struct{}, len(days))
	out := make([]time.Time, 0, len(days))
	for _, d := range days {
		key := d.Format(time.DateOnly)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		y, m, dd := d.Date()
		out = append(out, time.Date(y, m, dd, 0, 0, 0, 0, d.Location()))
	}
	return out
}
