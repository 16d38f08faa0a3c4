package domain

// Producer ids of the built-in catalog
const (
	ProducerCursor  = "cursor"
	ProducerGrandma = "grandma"
	ProducerFarm    = "farm"
	ProducerMine    = "mine"
	ProducerFactory = "factory"
)

// DefaultCatalog returns the built-in producer line-up in display order
func DefaultCatalog() []Producer {
	return []Producer{
		{ID: ProducerCursor, DisplayName: "Cursor", Icon: "👆", BaseYield: 0.1, BaseCost: 15, CurrentCost: 15},
		{ID: ProducerGrandma, DisplayName: "Grandma", Icon: "👵", BaseYield: 1, BaseCost: 100, CurrentCost: 100},
		{ID: ProducerFarm, DisplayName: "Farm", Icon: "🌾", BaseYield: 8, BaseCost: 1100, CurrentCost: 1100},
		{ID: ProducerMine, DisplayName: "Mine", Icon: "⛏️", BaseYield: 47, BaseCost: 12000, CurrentCost: 12000},
		{ID: ProducerFactory, DisplayName: "Factory", Icon: "🏭", BaseYield: 260, BaseCost: 130000, CurrentCost: 130000},
	}
}
