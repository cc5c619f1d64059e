package response

import (
	"vending-machine/internal/pkg/money"
	"vending-machine/internal/usecase/commands"
	"vending-machine/internal/usecase/queries"
)

type InsertMoneyResponse struct {
	Accepted      Money `json:"accepted"`
	InsertedMoney Money `json:"inserted_money"`
}

func FromInsertResult(r *commands.InsertResult) *InsertMoneyResponse {
	return &InsertMoneyResponse{
		Accepted:      NewMoney(r.Accepted, r.Currency),
		InsertedMoney: NewMoney(r.InsertedMoney, r.Currency),
	}
}

type SelectionResponse struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	Price         Money  `json:"price"`
	InsertedMoney Money  `json:"inserted_money"`
}

func FromSelectionResult(r *commands.SelectionResult) *SelectionResponse {
	return &SelectionResponse{
		Code:          r.Code,
		Name:          r.Name,
		Price:         NewMoney(r.Price, r.Currency),
		InsertedMoney: NewMoney(r.InsertedMoney, r.Currency),
	}
}

type PurchaseResponse struct {
	ProductCode  string      `json:"product_code"`
	ProductName  string      `json:"product_name"`
	Price        Money       `json:"price"`
	AmountPaid   Money       `json:"amount_paid"`
	ChangeAmount Money       `json:"change_amount"`
	Change       []Money     `json:"change"`
	Breakdown    []CoinCount `json:"breakdown"`
}

func FromPurchaseResult(r *commands.PurchaseResult) *PurchaseResponse {
	return &PurchaseResponse{
		ProductCode:  r.ProductCode,
		ProductName:  r.ProductName,
		Price:        NewMoney(r.Price, r.Currency),
		AmountPaid:   NewMoney(r.AmountPaid, r.Currency),
		ChangeAmount: NewMoney(r.ChangeAmount, r.Currency),
		Change:       NewMoneyList(r.Change, r.Currency),
		Breakdown:    NewBreakdown(r.Breakdown, r.Currency),
	}
}

type RefundResponse struct {
	Amount    Money       `json:"amount"`
	Coins     []Money     `json:"coins"`
	Breakdown []CoinCount `json:"breakdown"`
}

func FromRefundResult(r *commands.RefundResult) *RefundResponse {
	return &RefundResponse{
		Amount:    NewMoney(r.Amount, r.Currency),
		Coins:     NewMoneyList(r.Coins, r.Currency),
		Breakdown: NewBreakdown(r.Breakdown, r.Currency),
	}
}

type ProductResponse struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	Price     Money  `json:"price"`
	Stock     int    `json:"stock"`
	Available bool   `json:"available"`
}

func FromProductView(v queries.ProductView, cur money.Currency) ProductResponse {
	return ProductResponse{
		Code:      v.Code,
		Name:      v.Name,
		Price:     NewMoney(v.Price, cur),
		Stock:     v.Stock,
		Available: v.Available,
	}
}

func FromProductViews(vs []queries.ProductView, cur money.Currency) []ProductResponse {
	out := make([]ProductResponse, len(vs))
	for i, v := range vs {
		out[i] = FromProductView(v, cur)
	}
	return out
}

type CoinResponse struct {
	Denomination Money `json:"denomination"`
	Count        int   `json:"count"`
}

type DisplayResponse struct {
	Currency      string           `json:"currency"`
	InsertedMoney Money            `json:"inserted_money"`
	Prices        map[string]Money `json:"prices"`
}

type StatusResponse struct {
	State           string            `json:"state"`
	InsertedMoney   Money             `json:"inserted_money"`
	SelectedProduct *ProductResponse  `json:"selected_product,omitempty"`
	Products        []ProductResponse `json:"products"`
	Coins           []CoinResponse    `json:"coins"`
	TotalCashValue  Money             `json:"total_cash_value"`
	Display         *DisplayResponse  `json:"display,omitempty"`
}

func FromStatusView(v *queries.StatusView) *StatusResponse {
	res := &StatusResponse{
		State:          v.State,
		InsertedMoney:  NewMoney(v.InsertedMoney, v.Currency),
		Products:       FromProductViews(v.Products, v.Currency),
		Coins:          fromCoinViews(v.Coins, v.Currency),
		TotalCashValue: NewMoney(v.TotalCashValue, v.Currency),
	}
	if v.SelectedProduct != nil {
		selected := FromProductView(*v.SelectedProduct, v.Currency)
		res.SelectedProduct = &selected
	}
	if d := v.Display; d != nil {
		prices := make(map[string]Money, len(d.Prices))
		for code, p := range d.Prices {
			prices[code] = NewMoney(p, d.Currency)
		}
		res.Display = &DisplayResponse{
			Currency:      d.Currency.Code,
			InsertedMoney: NewMoney(d.InsertedMoney, d.Currency),
			Prices:        prices,
		}
	}
	return res
}

func fromCoinViews(vs []queries.CoinView, cur money.Currency) []CoinResponse {
	out := make([]CoinResponse, len(vs))
	for i, c := range vs {
		out[i] = CoinResponse{Denomination: NewMoney(c.Denomination, cur), Count: c.Count}
	}
	return out
}

type AvailabilityResponse struct {
	ProductCode    string `json:"product_code"`
	AmountInserted Money  `json:"amount_inserted"`
	CanPurchase    bool   `json:"can_purchase"`
	Reason         string `json:"reason"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	return &AvailabilityResponse{
		ProductCode:    v.ProductCode,
		AmountInserted: NewMoney(v.AmountInserted, v.Currency),
		CanPurchase:    v.CanPurchase,
		Reason:         v.Reason,
	}
}

type ProductSalesResponse struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Revenue  Money  `json:"revenue"`
}

type StatisticsResponse struct {
	TotalTransactions  int                    `json:"total_transactions"`
	SuccessfulSales    int                    `json:"successful_sales"`
	TotalRevenue       Money                  `json:"total_revenue"`
	TotalProductsSold  int                    `json:"total_products_sold"`
	Errors             int                    `json:"errors"`
	Cancellations      int                    `json:"cancellations"`
	Refunds            int                    `json:"refunds"`
	Restocks           int                    `json:"restocks"`
	SuccessRate        string                 `json:"success_rate"`
	TopSellingProducts []ProductSalesResponse `json:"top_selling_products"`
}

func FromStatisticsView(v *queries.StatisticsView) *StatisticsResponse {
	top := make([]ProductSalesResponse, len(v.TopSellingProducts))
	for i, p := range v.TopSellingProducts {
		top[i] = ProductSalesResponse{Code: p.Code, Name: p.Name, Quantity: p.Quantity, Revenue: NewMoney(p.Revenue, v.Currency)}
	}
	return &StatisticsResponse{
		TotalTransactions:  v.TotalTransactions,
		SuccessfulSales:    v.SuccessfulSales,
		TotalRevenue:       NewMoney(v.TotalRevenue, v.Currency),
		TotalProductsSold:  v.TotalProductsSold,
		Errors:             v.Errors,
		Cancellations:      v.Cancellations,
		Refunds:            v.Refunds,
		Restocks:           v.Restocks,
		SuccessRate:        v.SuccessRate,
		TopSellingProducts: top,
	}
}
