package business

import (
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/ponomarenko777/sales-bonus/internal/logger"
	"github.com/ponomarenko777/sales-bonus/models"
)

var log = logger.GetLogger()

// TopProductsLimit caps the top-products list of every report row.
const TopProductsLimit = 10

type analyzerService struct {
	validate *validator.Validate
	topLimit int
}

func NewAnalyzerService() AnalyzerService {
	return NewAnalyzerServiceWithLimit(TopProductsLimit)
}

func NewAnalyzerServiceWithLimit(topLimit int) AnalyzerService {
	if topLimit <= 0 {
		topLimit = TopProductsLimit
	}
	return &analyzerService{
		validate: validator.New(),
		topLimit: topLimit,
	}
}

func (as *analyzerService) Analyze(data *models.Dataset, options *Options) ([]models.ReportRow, error) {
	if err := as.validateInput(data, options); err != nil {
		return nil, err
	}

	sellerStats, sellerIndex := indexSellers(data.Sellers)
	productIndex := indexProducts(data.Products)

	log.Debugf("Analyzing %d purchase records for %d sellers", len(data.PurchaseRecords), len(sellerStats))

	for _, record := range data.PurchaseRecords {
		seller, ok := sellerIndex[record.SellerID]
		if !ok {
			return nil, errors.Wrapf(ErrUnresolvedReference, "unknown seller %q", record.SellerID)
		}
		seller.recordSale(record.TotalAmount)

		for _, item := range record.Items {
			product, ok := productIndex[item.SKU]
			if !ok {
				return nil, errors.Wrapf(ErrUnresolvedReference, "unknown product %q", item.SKU)
			}
			cost := product.PurchasePrice * float64(item.Quantity)
			revenue := options.CalculateRevenue(item, product)
			seller.recordItem(item.SKU, item.Quantity, revenue-cost)
		}
	}

	// Stable so equal-profit sellers keep input order.
	sort.SliceStable(sellerStats, func(i, j int) bool {
		return sellerStats[i].Profit > sellerStats[j].Profit
	})

	report := make([]models.ReportRow, len(sellerStats))
	for rank, seller := range sellerStats {
		seller.Bonus = options.CalculateBonus(rank, len(sellerStats), seller)
		seller.TopProducts = seller.topProducts(as.topLimit)

		report[rank] = models.ReportRow{
			SellerID:    seller.Seller.ID,
			Name:        seller.FullName(),
			Revenue:     roundMoney(seller.Revenue),
			Profit:      roundMoney(seller.Profit),
			SalesCount:  seller.SalesCount,
			TopProducts: seller.TopProducts,
			Bonus:       roundMoney(seller.Bonus),
		}
	}

	return report, nil
}

func (as *analyzerService) validateInput(data *models.Dataset, options *Options) error {
	if data == nil {
		return errors.Wrap(ErrInvalidInput, "dataset is nil")
	}
	if err := as.validate.Struct(data); err != nil {
		return errors.Wrapf(ErrInvalidInput, "dataset shape: %v", err)
	}
	if options == nil || options.CalculateRevenue == nil || options.CalculateBonus == nil {
		return errors.Wrap(ErrMissingStrategy, "options must carry CalculateRevenue and CalculateBonus")
	}
	return nil
}

func indexSellers(sellers []models.Seller) ([]*SellerStats, map[string]*SellerStats) {
	sellerStats := make([]*SellerStats, len(sellers))
	sellerIndex := make(map[string]*SellerStats, len(sellers))
	for i, seller := range sellers {
		stats := newSellerStats(seller)
		sellerStats[i] = stats
		sellerIndex[seller.ID] = stats
	}
	return sellerStats, sellerIndex
}

func indexProducts(products []models.Product) map[string]models.Product {
	productIndex := make(map[string]models.Product, len(products))
	for _, product := range products {
		productIndex[product.SKU] = product
	}
	return productIndex
}

// roundMoney rounds to two decimals, half away from zero.
func roundMoney(amount float64) float64 {
	return decimal.NewFromFloat(amount).Round(2).InexactFloat64()
}
