package domain

type Category string

const (
	CategorySocial        Category = "Social"
	CategoryStudy         Category = "Study"
	CategoryProductivity  Category = "Productivity"
	CategoryEntertainment Category = "Entertainment"
	CategoryOther         Category = "Other"
)

// Categories is the fixed set offered by the entry forms, in display order.
var Categories = []Category{
	CategorySocial,
	CategoryStudy,
	CategoryProductivity,
	CategoryEntertainment,
	CategoryOther,
}

// ValidCategories is the canonical set of accepted category strings.
// Imported rows may carry values outside this set; they are stored
// verbatim and grouped as-is in reports.
var ValidCategories = map[string]bool{
	"Social": true, "Study": true, "Productivity": true,
	"Entertainment": true, "Other": true,
}

type LimitState string

const (
	LimitUnder LimitState = "under"
	LimitNear  LimitState = "near"
	LimitOver  LimitState = "over"
)

type TimerState string

const (
	TimerIdle    TimerState = "idle"
	TimerRunning TimerState = "running"
)
