package business

import (
	"github.com/ponomarenko777/sales-bonus/models"
)

// RevenueFunc computes the monetary revenue of one purchase line.
type RevenueFunc func(item models.PurchaseItem, product models.Product) float64

// BonusFunc computes a seller's bonus from its zero-based rank after
// sorting all sellers by profit descending.
type BonusFunc func(rankIndex int, totalSellers int, seller *SellerStats) float64

// Options carries the pricing policy injected into the analyzer.
// Both functions must be set; they are called by the engine and must
// be pure.
type Options struct {
	CalculateRevenue RevenueFunc
	CalculateBonus   BonusFunc
}

// CalculateSimpleRevenue is the reference revenue policy: sale price
// times quantity with the line discount applied.
func CalculateSimpleRevenue(item models.PurchaseItem, _ models.Product) float64 {
	return item.SalePrice * float64(item.Quantity) * (1 - item.Discount/100)
}

// CalculateBonusByProfit is the reference bonus policy by rank tier:
// 15% of profit for first place, 10% for second and third, nothing for
// last place, 5% for everyone else. A single seller ranks both first
// and last; the first-place tier wins.
func CalculateBonusByProfit(rankIndex int, totalSellers int, seller *SellerStats) float64 {
	switch {
	case rankIndex == 0:
		return 0.15 * seller.Profit
	case rankIndex == 1 || rankIndex == 2:
		return 0.10 * seller.Profit
	case rankIndex == totalSellers-1:
		return 0
	default:
		return 0.05 * seller.Profit
	}
}
