package domain

// Tracked event names. These are the analytics events emitted by the
// progression engine and the session; they double as event bus types.
const (
	// EventClickMilestone fires when the click counter reaches a multiple of
	// the milestone interval
	EventClickMilestone = "click_milestone"

	// EventProducerPurchased fires after a successful producer purchase
	EventProducerPurchased = "producer_purchased"

	// EventClickUpgradePurchased fires after a successful click upgrade
	EventClickUpgradePurchased = "click_upgrade_purchased"

	// EventProgressReset fires when all progress is wiped
	EventProgressReset = "progress_reset"

	// EventGameLoaded fires once the saved game has been applied and the
	// session accepts input
	EventGameLoaded = "game_loaded"
)

// Event property keys
const (
	PropClicks     = "clicks"
	PropProducerID = "producer_id"
	PropOwned      = "owned"
	PropCost       = "cost"
	PropClickYield = "click_yield"
	PropCurrency   = "currency"
	PropDefaulted  = "defaulted_fields"
)
