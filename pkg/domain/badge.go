package domain

// Badge is the display descriptor for an enumerated value.
// Variant names a colour family the UI already knows.
type Badge struct {
	Label   string `json:"label"`
	Variant string `json:"variant"`
}

// UnknownBadge is shown for values outside a closed set, such as legacy rows.
var UnknownBadge = Badge{Label: "Unknown", Variant: "neutral"}
