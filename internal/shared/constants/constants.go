package constants

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Recent-window bounds for duplicate comparison.
const (
	RecentWindowDays = 7
	RecentWindowSize = 50
)
