package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Any is the wildcard subscription type
const Any Type = "*"

// Metadata keys
const (
	MetadataPlayer = "player"
	MetadataChange = "change"
)

// Log message constants
const (
	// Log message for handler errors
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)
