package business

import (
	"sort"

	"github.com/ponomarenko777/sales-bonus/models"
)

// SellerStats is the per-run accumulator for one seller. It is created
// from a copy of the input seller with every counter at zero, filled
// during the fold over purchase records, and discarded once the report
// is projected.
type SellerStats struct {
	Seller       models.Seller
	SalesCount   int
	Revenue      float64
	Profit       float64
	ProductsSold map[string]int
	Bonus        float64
	TopProducts  []models.ProductQuantity

	// skuOrder records first-encounter order so equal-quantity SKUs
	// rank deterministically.
	skuOrder []string
}

func newSellerStats(seller models.Seller) *SellerStats {
	return &SellerStats{
		Seller:       seller,
		ProductsSold: make(map[string]int),
	}
}

func (s *SellerStats) FullName() string {
	return s.Seller.FirstName + " " + s.Seller.LastName
}

func (s *SellerStats) recordSale(totalAmount float64) {
	s.SalesCount++
	s.Revenue += totalAmount
}

func (s *SellerStats) recordItem(sku string, quantity int, profit float64) {
	s.Profit += profit
	if _, seen := s.ProductsSold[sku]; !seen {
		s.skuOrder = append(s.skuOrder, sku)
	}
	s.ProductsSold[sku] += quantity
}

// topProducts returns up to limit sold SKUs sorted by quantity
// descending, ties kept in first-encounter order.
func (s *SellerStats) topProducts(limit int) []models.ProductQuantity {
	products := make([]models.ProductQuantity, 0, len(s.skuOrder))
	for _, sku := range s.skuOrder {
		products = append(products, models.ProductQuantity{
			SKU:      sku,
			Quantity: s.ProductsSold[sku],
		})
	}

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Quantity > products[j].Quantity
	})

	if len(products) > limit {
		products = products[:limit]
	}
	return products
}
