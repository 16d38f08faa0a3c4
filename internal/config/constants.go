package config

import "time"

const (
	// Configuration file paths
	ConfigPathProducers = "configs/producers.json"
)

// Storage drivers
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
)

// Save cadences
const (
	SaveModeImmediate = "immediate"
	SaveModePeriodic  = "periodic"
	SaveModeDebounced = "debounced"
)

// Producer pricing policies. Incremental multiplies the current price and
// floors after every purchase, so rounding accumulates; closed form prices
// each level from the base cost. The two diverge after a few purchases.
const (
	PricingIncremental = "incremental"
	PricingClosedForm  = "closed_form"
)

// Canonical game policy. Changing any of these changes observable save data.
const (
	DefaultPricingPolicy     = PricingIncremental
	DefaultMilestoneInterval = int64(100)
	DefaultTickInterval      = 100 * time.Millisecond
	DefaultSaveMode          = SaveModeDebounced
	DefaultSaveInterval      = time.Second
	DefaultPort              = 8080
)
