package tracker

// Default bus tracker sizing
const (
	DefaultBusWorkers   = 2
	DefaultBusQueueSize = 256
)

// AttrKeyEvent is the log attribute holding the event name
const AttrKeyEvent = "event"

// Log messages
const (
	LogMsgEventTracked = "Event tracked"
	LogMsgEventDropped = "Event queue full, event dropped"
)
