package progression

import (
	"fmt"
	"math"

	"github.com/osse101/CookieClicker_Go/internal/config"
)

// GrowthRate is the fixed markup applied to a producer price per purchase
const GrowthRate = 1.15

// MinGrowingCost is the smallest base price the markup raises by at least
// one. Below it floor(cost * GrowthRate) == cost and the price never moves.
const MinGrowingCost = 7

// ClickUpgradeCostFactor prices the click upgrade relative to the current yield
const ClickUpgradeCostFactor = 10.0

// Pricing returns the price of the next unit of p. It is called after
// p.Owned has been incremented and before p.CurrentCost is replaced.
type Pricing func(p PricedProducer) int64

// PricedProducer is the view of a producer the pricing policies need
type PricedProducer struct {
	BaseCost    int64
	CurrentCost int64
	Owned       int64
}

// NextCost multiplies the current price and floors it. Rounding accumulates
// across purchases, which is what saved games contain.
func NextCost(current int64) int64 {
	return int64(math.Floor(float64(current) * GrowthRate))
}

// CostAtLevel prices a producer directly from its base cost and level
func CostAtLevel(base, level int64) int64 {
	return int64(math.Floor(float64(base) * math.Pow(GrowthRate, float64(level))))
}

// Incremental is the canonical pricing policy
func Incremental(p PricedProducer) int64 {
	return NextCost(p.CurrentCost)
}

// ClosedForm recomputes the price from the base cost on every purchase
func ClosedForm(p PricedProducer) int64 {
	return CostAtLevel(p.BaseCost, p.Owned)
}

// PricingFor resolves a configured policy name
func PricingFor(policy string) (Pricing, error) {
	switch policy {
	case config.PricingIncremental, "":
		return Incremental, nil
	case config.PricingClosedForm:
		return ClosedForm, nil
	default:
		return nil, fmt.Errorf("unknown pricing policy %q: must be %s or %s", policy, config.PricingIncremental, config.PricingClosedForm)
	}
}

// ClickUpgradeCost is the price of raising the click yield by one
func ClickUpgradeCost(clickYield float64) float64 {
	return clickYield * ClickUpgradeCostFactor
}
