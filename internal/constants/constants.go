package constants

// Session
const (
	ContextKeyUserID  = "user_id"
	SessionCookieName = "recipe_session"
	SessionMaxAge     = 86400 * 7 // 7 days
)

// Validation
const (
	MinInstructionsLength = 50
	MinUsernameLength     = 3
	MaxUsernameLength     = 50
)

// Pagination
const (
	MinPageSize     = 1
	MaxPage         = 100000
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// AI recipe generation
const (
	MaxGeneratedMinutes = 24 * 60
)
