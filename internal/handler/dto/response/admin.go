package response

import (
	"vending-machine/internal/usecase/commands"
	"vending-machine/internal/usecase/queries"
)

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		AccessToken: r.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(r.ExpiresIn.Seconds()),
	}
}

type RefillResponse struct {
	Denomination Money `json:"denomination"`
	Requested    int   `json:"requested"`
	Provided     int   `json:"provided"`
}

func FromRefillResult(r *commands.RefillResult) *RefillResponse {
	return &RefillResponse{
		Denomination: NewMoney(r.Denomination, r.Currency),
		Requested:    r.Requested,
		Provided:     r.Provided,
	}
}

// TransactionResponse keeps ledger amounts in minor units; details are passed through as recorded.
type TransactionResponse struct {
	ID          string         `json:"id"`
	Timestamp   int64          `json:"timestamp"`
	Type        string         `json:"type"`
	Amount      int64          `json:"amount"`
	ProductCode string         `json:"product_code,omitempty"`
	Success     bool           `json:"success"`
	Details     map[string]any `json:"details,omitempty"`
}

func FromTransactionViews(vs []queries.TransactionView) []TransactionResponse {
	out := make([]TransactionResponse, len(vs))
	for i, v := range vs {
		out[i] = TransactionResponse{
			ID:          v.ID.String(),
			Timestamp:   v.Timestamp.UnixMilli(),
			Type:        v.Type,
			Amount:      v.Amount.Int64(),
			ProductCode: v.ProductCode,
			Success:     v.Success,
			Details:     v.Details,
		}
	}
	return out
}

type SupplierResponse struct {
	TotalDenominations int            `json:"total_denominations"`
	LowStock           []Money        `json:"low_stock"`
	OutOfStock         []Money        `json:"out_of_stock"`
	TotalValue         Money          `json:"total_value"`
	Coins              []CoinResponse `json:"coins"`
}

type StockReportResponse struct {
	OutOfStockProducts []ProductResponse `json:"out_of_stock_products"`
	LowStockProducts   []ProductResponse `json:"low_stock_products"`
	LowDenominations   []Money           `json:"low_denominations"`
	EmptyDenominations []Money           `json:"empty_denominations"`
	TotalStock         int               `json:"total_stock"`
	TotalCashValue     Money             `json:"total_cash_value"`
	Supplier           *SupplierResponse `json:"supplier,omitempty"`
}

func FromStockReportView(v *queries.StockReportView) *StockReportResponse {
	res := &StockReportResponse{
		OutOfStockProducts: FromProductViews(v.OutOfStockProducts, v.Currency),
		LowStockProducts:   FromProductViews(v.LowStockProducts, v.Currency),
		LowDenominations:   NewMoneyList(v.LowDenominations, v.Currency),
		EmptyDenominations: NewMoneyList(v.EmptyDenominations, v.Currency),
		TotalStock:         v.TotalStock,
		TotalCashValue:     NewMoney(v.TotalCashValue, v.Currency),
	}
	if s := v.Supplier; s != nil {
		res.Supplier = &SupplierResponse{
			TotalDenominations: s.TotalDenominations,
			LowStock:           NewMoneyList(s.LowStock, v.Currency),
			OutOfStock:         NewMoneyList(s.OutOfStock, v.Currency),
			TotalValue:         NewMoney(s.TotalValue, v.Currency),
			Coins:              fromCoinViews(s.Coins, v.Currency),
		}
	}
	return res
}
