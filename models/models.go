package models

// Seller is an immutable source record describing one seller.
type Seller struct {
	ID        string `json:"id" validate:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Product is an immutable catalog entry keyed by SKU.
type Product struct {
	SKU           string  `json:"sku" validate:"required"`
	PurchasePrice float64 `json:"purchase_price" validate:"gte=0"`
}

// PurchaseItem is one line of a purchase record.
type PurchaseItem struct {
	SKU       string  `json:"sku" validate:"required"`
	Quantity  int     `json:"quantity" validate:"gt=0"`
	SalePrice float64 `json:"sale_price" validate:"gte=0"`
	Discount  float64 `json:"discount" validate:"gte=0,lte=100"`
}

// PurchaseRecord describes one sale attributed to a seller.
type PurchaseRecord struct {
	SellerID    string         `json:"seller_id" validate:"required"`
	TotalAmount float64        `json:"total_amount"`
	Items       []PurchaseItem `json:"items" validate:"dive"`
}

// Dataset is the full input snapshot the analyzer consumes.
// All three collections must be present and non-empty.
type Dataset struct {
	Sellers         []Seller         `json:"sellers" validate:"required,min=1,dive"`
	Products        []Product        `json:"products" validate:"required,min=1,dive"`
	PurchaseRecords []PurchaseRecord `json:"purchase_records" validate:"required,min=1,dive"`
}

// ProductQuantity is one entry of a seller's top-products list.
type ProductQuantity struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

// ReportRow is one line of the final per-seller performance report.
// Money fields are rounded to two decimals.
type ReportRow struct {
	SellerID    string            `json:"seller_id"`
	Name        string            `json:"name"`
	Revenue     float64           `json:"revenue"`
	Profit      float64           `json:"profit"`
	SalesCount  int               `json:"sales_count"`
	TopProducts []ProductQuantity `json:"top_products"`
	Bonus       float64           `json:"bonus"`
}
