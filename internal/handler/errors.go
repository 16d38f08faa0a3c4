package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
)

// User-facing messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgNotReadyError      = "Game is still loading. Please try again."
	ErrMsgUnknownProducerErr = "Unknown producer"
	ErrMsgNotEnoughCookies   = "Not enough cookies"
	ErrMsgStorageUnavailable = "Storage is temporarily unavailable"
	ErrMsgInvalidInputError  = "Invalid request. Please check your inputs."
)

// Success messages
const (
	MsgProgressResetSuccess = "Progress reset"
)

// Health statuses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthMsgLoading        = "game is loading"
	HealthMsgStorageFailed  = "storage check failed"
)
