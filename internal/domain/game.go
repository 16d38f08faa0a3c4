package domain

// DefaultClickYield is the currency granted per click on a fresh game
const DefaultClickYield = 1.0

// Producer is a purchasable unit contributing passive production.
// BaseCost is the immutable original price; CurrentCost is the price of the
// next unit and is always integer-valued.
type Producer struct {
	ID          string  `json:"id"`
	DisplayName string  `json:"display_name"`
	Icon        string  `json:"icon"`
	BaseYield   float64 `json:"base_yield"`
	BaseCost    int64   `json:"base_cost"`
	Owned       int64   `json:"owned"`
	CurrentCost int64   `json:"current_cost"`
}

// Rate returns the production per second contributed by all owned units
func (p Producer) Rate() float64 {
	return p.BaseYield * float64(p.Owned)
}

// GameState is the single mutable aggregate of a game session
type GameState struct {
	Currency      float64    `json:"currency"`
	TotalProduced float64    `json:"total_produced"`
	ClickYield    float64    `json:"click_yield"`
	TotalClicks   int64      `json:"total_clicks"`
	Producers     []Producer `json:"producers"`
}

// NewGameState builds a fresh state from a producer catalog. Producers keep
// catalog order, start unowned, and are priced at their base cost.
func NewGameState(catalog []Producer) GameState {
	producers := make([]Producer, len(catalog))
	for i, p := range catalog {
		p.Owned = 0
		p.CurrentCost = p.BaseCost
		producers[i] = p
	}
	return GameState{
		ClickYield: DefaultClickYield,
		Producers:  producers,
	}
}

// ProductionRate is the derived currency-per-second of the whole state
func (s GameState) ProductionRate() float64 {
	var rate float64
	for _, p := range s.Producers {
		rate += p.Rate()
	}
	return rate
}

// FindProducer returns the index of the producer with the given id, or -1
func (s GameState) FindProducer(id string) int {
	for i := range s.Producers {
		if s.Producers[i].ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy safe to hand out of the engine
func (s GameState) Clone() GameState {
	c := s
	c.Producers = make([]Producer, len(s.Producers))
	copy(c.Producers, s.Producers)
	return c
}
