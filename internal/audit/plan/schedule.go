package plan

import (
	"slices"
	"time"

	"riskdesk/pkg/domain"
)

type SlotKind string

const (
	SlotOpening   SlotKind = "opening"
	SlotInterview SlotKind = "interview"
	SlotClosing   SlotKind = "closing"
)

type Slot struct {
	Kind    SlotKind        `json:"kind"`
	ThemeID *domain.ThemeID `json:"theme_id,omitempty"`
	Label   string          `json:"label"`
	Hours   float64         `json:"hours"`
}

type Day struct {
	Date      time.Time `json:"date"`
	Slots     []Slot    `json:"slots"`
	UsedHours float64   `json:"used_hours"`
}

// Schedule is an illustrative layout; Summary stays the authoritative verdict.
type Schedule struct {
	Days        []Day  `json:"days"`
	Unscheduled []Slot `json:"unscheduled,omitempty"`
}

// BuildSchedule places the opening meeting, the interviews in selection order
// and the closing meeting onto the selected days in date order. Slots are never
// split; a slot longer than a whole day gets a day to itself. Slots that do not
// fit before the days run out are returned as Unscheduled.
func BuildSchedule(in Input, settings Settings, themeNames map[domain.ThemeID]string) Schedule {
	days := uniqueDays(in.SelectedDays)
	slices.SortFunc(days, func(a, b time.Time) int { return a.Compare(b) })

	slots := make([]Slot, 0, len(in.SelectedThemeIDs)+2)
	half := settings.OpeningClosingHours / 2
	if settings.IncludeOpeningClosing && half > 0 {
		slots = append(slots, Slot{Kind: SlotOpening, Label: "Opening meeting", Hours: half})
	}
	for _, id := range uniqueThemes(in.SelectedThemeIDs) {
		themeID := id
		label := themeNames[id]
		if label == "" {
			label = id.String()
		}
		slots = append(slots, Slot{
			Kind:    SlotInterview,
			ThemeID: &themeID,
			Label:   label,
			Hours:   durationOf(id, in.ThemeDurationHours, settings),
		})
	}
	if settings.IncludeOpeningClosing && half > 0 {
		slots = append(slots, Slot{Kind: SlotClosing, Label: "Closing meeting", Hours: half})
	}

	out := Schedule{Days: make([]Day, 0, len(days))}
	capacity := settings.AvailableHoursPerDay
	i := 0
	for _, date := range days {
		day := Day{Date: date, Slots: []Slot{}}
		for i < len(slots) {
			next := slots[i]
			fits := day.UsedHours+next.Hours <= capacity+epsilon
			if !fits && len(day.Slots) > 0 {
				break
			}
			if !fits && capacity <= 0 {
				break
			}
			day.Slots = append(day.Slots, next)
			day.UsedHours += next.Hours
			i++
			if !fits {
				break
			}
		}
		out.Days = append(out.Days, day)
	}
	if i < len(slots) {
		out.Unscheduled = slots[i:]
	}
	return out
}
