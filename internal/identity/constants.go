package identity

// Demo player used when nothing is configured
const (
	DefaultPlayerID   = "demo"
	DefaultPlayerName = "DemoUser"
)
