package study

// StudyError is a custom error type for study session errors
type StudyError string

// Error implements the error interface
func (e StudyError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidDuration  StudyError = "duration is below the minimum"
	ErrChannelBusy      StudyError = "a session is already running in this voice channel"
	ErrSessionNotFound  StudyError = "session not found"
	ErrPermissionDenied StudyError = "only the host can do that"
	ErrAlreadyPaused    StudyError = "session is already paused"
	ErrNotPaused        StudyError = "session is not paused"
	ErrSessionExpired   StudyError = "session has no time remaining"
	ErrDuplicateCode    StudyError = "session code already in use"
	ErrInvalidInput     StudyError = "invalid input"

	ErrNilConfig            StudyError = "config cannot be nil"
	ErrNilRegistry          StudyError = "registry cannot be nil"
	ErrNilClock             StudyError = "clock cannot be nil"
	ErrNilCodeGenerator     StudyError = "code generator cannot be nil"
	ErrNilUUIDGenerator     StudyError = "UUID generator cannot be nil"
	ErrNilMemberEnumerator  StudyError = "member enumerator cannot be nil"
	ErrNilChannelController StudyError = "channel controller cannot be nil"
	ErrNilNotifier          StudyError = "notifier cannot be nil"
	ErrNilUserStatsRepo     StudyError = "user stats repository cannot be nil"
	ErrNilPresenceRepo      StudyError = "presence repository cannot be nil"
	ErrNilSessionRecordRepo StudyError = "session record repository cannot be nil"
	ErrNilGuildSettingsRepo StudyError = "guild settings repository cannot be nil"
	ErrNilMessagingService  StudyError = "messaging service cannot be nil"
)
