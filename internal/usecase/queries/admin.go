package queries

import (
	"context"
	"time"

	"vending-machine/internal/domain/ledger"
	"vending-machine/internal/domain/machine"
	reqdto "vending-machine/internal/handler/dto/request"
	"vending-machine/internal/pkg/errs"
	"vending-machine/internal/usecase/shared"

	"github.com/jinzhu/copier"
)

type Thresholds struct {
	LowStock int
	LowCoins int
}

type AdminQueries interface {
	Transactions(ctx context.Context, filter reqdto.TransactionFilter) ([]TransactionView, error)
	StockReport(ctx context.Context) (*StockReportView, error)
}

type adminQueriesImpl struct {
	uow        shared.UnitOfWork
	thresholds Thresholds
}

func NewAdminQueries(uow shared.UnitOfWork, thresholds Thresholds) AdminQueries {
	return &adminQueriesImpl{uow: uow, thresholds: thresholds}
}

func (q *adminQueriesImpl) Transactions(ctx context.Context, filter reqdto.TransactionFilter) ([]TransactionView, error) {
	var entries []ledger.Entry
	err := q.uow.WithinReadOnly(ctx, func(_ context.Context, m *machine.Machine) error {
		if filter.From != nil || filter.To != nil {
			entries = m.TransactionsInRange(rangeBounds(filter, m.Transactions()))
		} else {
			entries = m.Transactions()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	views := make([]TransactionView, 0, len(entries))
	for _, e := range entries {
		if filter.Type != nil && e.Type != *filter.Type {
			continue
		}
		var v TransactionView
		if err := copier.Copy(&v, e); err != nil {
			return nil, errs.Wrap(err, "copy ledger entry")
		}
		views = append(views, v)
	}
	return views, nil
}

func (q *adminQueriesImpl) StockReport(ctx context.Context) (*StockReportView, error) {
	var view *StockReportView
	err := q.uow.WithinReadOnly(ctx, func(_ context.Context, m *machine.Machine) error {
		products := m.Products()
		total := 0
		for _, it := range products {
			total += it.Stock
		}
		view = &StockReportView{
			OutOfStockProducts: toProductViews(m.OutOfStockProducts()),
			LowStockProducts:   toProductViews(m.LowStockProducts(q.thresholds.LowStock)),
			LowDenominations:   m.LowDenominations(q.thresholds.LowCoins),
			EmptyDenominations: m.EmptyDenominations(),
			TotalStock:         total,
			TotalCashValue:     m.Status().TotalCashValue,
			Currency:           m.Currency(),
		}
		if stock, ok := m.SupplierReport(); ok {
			view.Supplier = &SupplierView{
				TotalDenominations: stock.Report.TotalDenominations,
				LowStock:           stock.Report.LowStock,
				OutOfStock:         stock.Report.OutOfStock,
				TotalValue:         stock.Report.TotalValue,
				Coins:              toCoinViews(stock.Inventory),
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// rangeBounds fills an open end of the filter with the oldest or newest entry time.
func rangeBounds(filter reqdto.TransactionFilter, all []ledger.Entry) (start, end time.Time) {
	if filter.From != nil {
		start = *filter.From
	}
	if filter.To != nil {
		end = *filter.To
	} else if len(all) > 0 {
		end = all[len(all)-1].Timestamp
	}
	return start, end
}
