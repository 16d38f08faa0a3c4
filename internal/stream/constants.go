package stream

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's message channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// Connection settings
const (
	// KeepaliveInterval is how often a ping is sent to idle clients
	KeepaliveInterval = 30 * time.Second

	// WriteTimeout bounds every write to a client connection
	WriteTimeout = 10 * time.Second
)

// Message types pushed to clients
const (
	// TypeConnected is the first message on every connection
	TypeConnected = "connected"

	// TypeState carries a full game state snapshot
	TypeState = "state"

	// TypeTracked carries a tracked game event such as a milestone
	TypeTracked = "tracked"
)

// Log messages
const (
	LogMsgClientConnected    = "Stream client connected"
	LogMsgClientDisconnected = "Stream client disconnected"
	LogMsgUpgradeFailed      = "Stream upgrade failed"
	LogMsgWriteError         = "Failed to write stream message"
	LogMsgBroadcastDropped   = "Stream broadcast buffer full, message dropped"
	LogMsgSubscriberReady    = "Stream subscriber registered for event types"
)
