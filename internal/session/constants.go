package session

// Status of the session gate
type Status int32

const (
	StatusLoading Status = iota
	StatusReady
	StatusClosed
)

// String returns the status name used in logs and health responses
func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Log messages
const (
	LogMsgSessionStarted = "Game session ready"
	LogMsgSessionClosed  = "Game session closed"
	LogMsgPublishFailed  = "Failed to publish state change"
	LogMsgStartAborted   = "Session closed while loading"
)

// Error messages
const (
	ErrMsgAlreadyStarted = "session already started"
)
