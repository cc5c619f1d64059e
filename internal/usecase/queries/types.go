package queries

import (
	"time"

	"vending-machine/internal/pkg/money"

	"github.com/google/uuid"
)

// ProductView represents read-optimized product data with its current stock
type ProductView struct {
	Code      string       `json:"code"`
	Name      string       `json:"name"`
	Price     money.Amount `json:"price"`
	Stock     int          `json:"stock"`
	Available bool         `json:"available"`
}

type ProductListView struct {
	Products []ProductView  `json:"products"`
	Currency money.Currency `json:"currency"`
}

// CoinView is the count held for one denomination
type CoinView struct {
	Denomination money.Amount `json:"denomination"`
	Count        int          `json:"count"`
}

type StatusView struct {
	State           string         `json:"state"`
	InsertedMoney   money.Amount   `json:"inserted_money"`
	SelectedProduct *ProductView   `json:"selected_product,omitempty"`
	Products        []ProductView  `json:"products"`
	Coins           []CoinView     `json:"coins"`
	TotalCashValue  money.Amount   `json:"total_cash_value"`
	Currency        money.Currency `json:"currency"`
	Display         *DisplayView   `json:"display,omitempty"`
}

// DisplayView repeats the customer-facing amounts in a display currency.
type DisplayView struct {
	Currency      money.Currency          `json:"currency"`
	InsertedMoney money.Amount            `json:"inserted_money"`
	Prices        map[string]money.Amount `json:"prices"`
}

type AvailabilityView struct {
	ProductCode    string       `json:"product_code"`
	AmountInserted money.Amount `json:"amount_inserted"`
	CanPurchase    bool         `json:"can_purchase"`
	Reason         string       `json:"reason"`
	// Cause is the taxonomy error behind a negative answer; nil when CanPurchase.
	Cause    error          `json:"-"`
	Currency money.Currency `json:"currency"`
}

type ProductSalesView struct {
	Code     string       `json:"code"`
	Name     string       `json:"name"`
	Quantity int          `json:"quantity"`
	Revenue  money.Amount `json:"revenue"`
}

type StatisticsView struct {
	TotalTransactions  int                `json:"total_transactions"`
	SuccessfulSales    int                `json:"successful_sales"`
	TotalRevenue       money.Amount       `json:"total_revenue"`
	TotalProductsSold  int                `json:"total_products_sold"`
	Errors             int                `json:"errors"`
	Cancellations      int                `json:"cancellations"`
	Refunds            int                `json:"refunds"`
	Restocks           int                `json:"restocks"`
	SuccessRate        string             `json:"success_rate"`
	TopSellingProducts []ProductSalesView `json:"top_selling_products"`
	Currency           money.Currency     `json:"currency"`
}

type TransactionView struct {
	ID          uuid.UUID      `json:"id"`
	Timestamp   time.Time      `json:"timestamp"`
	Type        string         `json:"type"`
	Amount      money.Amount   `json:"amount"`
	ProductCode string         `json:"product_code,omitempty"`
	Success     bool           `json:"success"`
	Details     map[string]any `json:"details"`
}

type SupplierView struct {
	TotalDenominations int            `json:"total_denominations"`
	LowStock           []money.Amount `json:"low_stock"`
	OutOfStock         []money.Amount `json:"out_of_stock"`
	TotalValue         money.Amount   `json:"total_value"`
	Coins              []CoinView     `json:"coins"`
}

// StockReportView is the maintenance overview of products and coins that need attention.
type StockReportView struct {
	OutOfStockProducts []ProductView  `json:"out_of_stock_products"`
	LowStockProducts   []ProductView  `json:"low_stock_products"`
	LowDenominations   []money.Amount `json:"low_denominations"`
	EmptyDenominations []money.Amount `json:"empty_denominations"`
	TotalStock         int            `json:"total_stock"`
	TotalCashValue     money.Amount   `json:"total_cash_value"`
	Supplier           *SupplierView  `json:"supplier,omitempty"`
	Currency           money.Currency `json:"currency"`
}
