package queries

import (
	"context"
	"slices"

	"vending-machine/internal/domain/inventory"
	"vending-machine/internal/domain/machine"
	"vending-machine/internal/pkg/errs"
	"vending-machine/internal/pkg/money"
	"vending-machine/internal/usecase/shared"

	"github.com/jinzhu/copier"
)

type MachineQueries interface {
	// Status returns the machine snapshot; display adds a converted view when not empty.
	Status(ctx context.Context, display string) (*StatusView, error)
	Products(ctx context.Context) (*ProductListView, error)
	Availability(ctx context.Context, code string, amount money.Amount) (*AvailabilityView, error)
	Statistics(ctx context.Context) (*StatisticsView, error)
}

type machineQueriesImpl struct {
	uow       shared.UnitOfWork
	converter *money.Converter
}

func NewMachineQueries(uow shared.UnitOfWork, converter *money.Converter) MachineQueries {
	return &machineQueriesImpl{uow: uow, converter: converter}
}

func (q *machineQueriesImpl) Status(ctx context.Context, display string) (*StatusView, error) {
	var view *StatusView
	err := q.uow.WithinReadOnly(ctx, func(_ context.Context, m *machine.Machine) error {
		st := m.Status()
		view = &StatusView{
			State:          string(st.State),
			InsertedMoney:  st.InsertedMoney,
			Products:       toProductViews(st.Inventory),
			Coins:          toCoinViews(st.Denominations),
			TotalCashValue: st.TotalCashValue,
			Currency:       m.Currency(),
		}
		if st.SelectedProduct != nil {
			code := st.SelectedProduct.Code()
			idx := slices.IndexFunc(view.Products, func(p ProductView) bool { return p.Code == code.String() })
			if idx >= 0 {
				selected := view.Products[idx]
				view.SelectedProduct = &selected
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if display != "" {
		dv, err := q.displayView(view, display)
		if err != nil {
			return nil, err
		}
		view.Display = dv
	}
	return view, nil
}

func (q *machineQueriesImpl) displayView(view *StatusView, code string) (*DisplayView, error) {
	if q.converter == nil {
		return nil, errs.Mark(money.ErrUnknownCurrency, errs.ErrValidation)
	}
	inserted, cur, err := q.converter.Convert(view.InsertedMoney, code)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	prices := make(map[string]money.Amount, len(view.Products))
	for _, p := range view.Products {
		converted, _, err := q.converter.Convert(p.Price, code)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrValidation)
		}
		prices[p.Code] = converted
	}
	return &DisplayView{Currency: cur, InsertedMoney: inserted, Prices: prices}, nil
}

func (q *machineQueriesImpl) Products(ctx context.Context) (*ProductListView, error) {
	return shared.Read(ctx, q.uow, func(m *machine.Machine) *ProductListView {
		return &ProductListView{Products: toProductViews(m.Products()), Currency: m.Currency()}
	})
}

func (q *machineQueriesImpl) Availability(ctx context.Context, code string, amount money.Amount) (*AvailabilityView, error) {
	return shared.Read(ctx, q.uow, func(m *machine.Machine) *AvailabilityView {
		f := m.CanCompletePurchase(code, amount)
		return &AvailabilityView{
			ProductCode:    code,
			AmountInserted: amount,
			CanPurchase:    f.CanPurchase,
			Reason:         f.Reason,
			Cause:          f.Cause,
			Currency:       m.Currency(),
		}
	})
}

func (q *machineQueriesImpl) Statistics(ctx context.Context) (*StatisticsView, error) {
	var view StatisticsView
	err := q.uow.WithinReadOnly(ctx, func(_ context.Context, m *machine.Machine) error {
		if err := copier.Copy(&view, m.Statistics()); err != nil {
			return errs.Wrap(err, "copy statistics")
		}
		view.Currency = m.Currency()
		return nil
	})
	if err != nil {
		return nil, err
	}
	if view.TopSellingProducts == nil {
		view.TopSellingProducts = []ProductSalesView{}
	}
	return &view, nil
}

func toProductViews(items []inventory.Item) []ProductView {
	views := make([]ProductView, len(items))
	for i, it := range items {
		views[i] = ProductView{
			Code:      it.Product.Code().String(),
			Name:      it.Product.Name(),
			Price:     it.Product.Price(),
			Stock:     it.Stock,
			Available: it.Stock > 0,
		}
	}
	return views
}

// toCoinViews lists denominations largest first.
func toCoinViews(counts map[money.Amount]int) []CoinView {
	views := make([]CoinView, 0, len(counts))
	for d, n := range counts {
		views = append(views, CoinView{Denomination: d, Count: n})
	}
	slices.SortFunc(views, func(a, b CoinView) int { return int(b.Denomination - a.Denomination) })
	return views
}
