package savegame

import "time"

// Persisted field names. Stored keys are "<namespace>:<field>".
const (
	FieldCookies      = "cookies"
	FieldTotalCookies = "totalCookies"
	FieldClickPower   = "clickPower"
	FieldTotalClicks  = "totalClicks"
	FieldProducers    = "producers"
)

// KeySeparator joins the namespace and the field name
const KeySeparator = ":"

// DefaultSaveInterval is the debounce delay and the periodic save interval
const DefaultSaveInterval = time.Second

// tracerName identifies the persistence spans
const tracerName = "github.com/osse101/CookieClicker_Go/internal/savegame"

// Log messages
const (
	LogMsgSaveFailed      = "Failed to save game"
	LogMsgSaved           = "Game saved"
	LogMsgLoadFailed      = "Failed to load saved game, starting from defaults"
	LogMsgFieldDefaulted  = "Malformed save field replaced by default"
	LogMsgNoSavedGame     = "No saved game found, starting from defaults"
	LogMsgSavedGameLoaded = "Saved game loaded"
)
