package progression

// Change describes which operation mutated the game state
type Change string

const (
	ChangeClick    Change = "click"
	ChangeTick     Change = "tick"
	ChangePurchase Change = "purchase"
	ChangeUpgrade  Change = "click_upgrade"
	ChangeReset    Change = "reset"
	ChangeRestore  Change = "restore"
)

// IsUserAction reports whether the change came from a player action rather
// than passive production or a load
func (c Change) IsUserAction() bool {
	switch c {
	case ChangeClick, ChangePurchase, ChangeUpgrade, ChangeReset:
		return true
	default:
		return false
	}
}

// Log messages
const (
	LogMsgPurchaseRejected = "Purchase rejected"
	LogMsgProgressReset    = "Progress reset"
	LogMsgStateRestored    = "Game state restored"
)
