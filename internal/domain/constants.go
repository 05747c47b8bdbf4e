package domain

// Default search window values
const (
	DefaultDailyStart  = "08:00"
	DefaultDailyEnd    = "22:00"
	DefaultHorizonDays = 7
)

// Business validation constants
const (
	MinHorizonDays = 1
	MaxHorizonDays = 365 // 1 year
)

// Time format constants
const (
	TimestampFormat = "2006-01-02 15:04:05" // yyyy-MM-dd HH:mm:ss
	DateFormat      = "2006-01-02"          // YYYY-MM-DD
)
