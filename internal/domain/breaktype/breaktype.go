package breaktype

// BreakType is the reason tag of a break. The set is closed; the
// admin UI offers exactly these four.
type BreakType string

const (
	Lunch  BreakType = "lunch"
	Toilet BreakType = "toilet"
	Smoke  BreakType = "smoke"
	Tea    BreakType = "tea"
)

// labels maps internal tags to the display names used across the
// reporting surfaces and the CSV export.
var labels = map[BreakType]string{
	Lunch:  "Обед",
	Toilet: "Туалет",
	Smoke:  "Перекур",
	Tea:    "Чай",
}

// All returns the break types in their presentation order.
func All() []BreakType {
	return []BreakType{Lunch, Toilet, Smoke, Tea}
}

// IsValid reports whether tag names a known break type.
func IsValid(tag string) bool {
	_, ok := labels[BreakType(tag)]
	return ok
}

// Label returns the display name for a tag. Unknown tags pass through
// unchanged so historical records with retired tags stay readable.
func Label(tag string) string {
	if label, ok := labels[BreakType(tag)]; ok {
		return label
	}
	return tag
}
