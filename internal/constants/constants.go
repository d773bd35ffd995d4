package constants

// Session
const (
	SessionCookieName = "home_helper_session"
	ContextKeyUserID  = "user_id"
	SessionKeyRefresh = "refresh_interval"
)

// Field limits
const (
	MinUsernameLength = 4
	MaxUsernameLength = 16
	MinPasswordLength = 4
	MaxPasswordLength = 32
	MaxEmailLength    = 64
	MaxNameLength     = 32

	MaxNoteTitleLength = 32
	MaxNoteBodyLength  = 20000
	NotePreviewLength  = 40
)

// Dashboard auto-refresh interval bounds in seconds. Zero disables.
const (
	MinRefreshInterval = 9
	MaxRefreshInterval = 180
)
