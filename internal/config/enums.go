package config

// ComplexityUnit is the user-chosen label for the numeric effort metric
// attached to tasks (e.g. "story-points", "hours").
type ComplexityUnit string

const (
	UnitGeneric     ComplexityUnit = "units"
	UnitStoryPoints ComplexityUnit = "story-points"
	UnitHours       ComplexityUnit = "hours"
	UnitQUnits      ComplexityUnit = "Q-Units"
	UnitDays        ComplexityUnit = "days"
)

// ValidComplexityUnits is the canonical set of accepted complexity unit strings.
var ValidComplexityUnits = map[string]bool{
	"units": true, "story-points": true, "hours": true,
	"Q-Units": true, "days": true,
}

// UnitNames returns the accepted unit strings in display order, for flag help
// and error messages.
func UnitNames() []string {
	return []string{"units", "story-points", "hours", "Q-Units", "days"}
}
