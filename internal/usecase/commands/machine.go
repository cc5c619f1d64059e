package commands

import (
	"context"
	"log/slog"

	"vending-machine/internal/domain/cash"
	"vending-machine/internal/domain/machine"
	reqdto "vending-machine/internal/handler/dto/request"
	"vending-machine/internal/pkg/money"
	"vending-machine/internal/usecase/shared"
)

type MachineCommands interface {
	InsertMoney(ctx context.Context, req reqdto.InsertMoneyRequest) (*InsertResult, error)
	SelectProduct(ctx context.Context, code string) (*SelectionResult, error)
	Purchase(ctx context.Context, code string) (*PurchaseResult, error)
	Cancel(ctx context.Context) (*RefundResult, error)
	ReturnChange(ctx context.Context) (*RefundResult, error)
}

type machineCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewMachineCommands(uow shared.UnitOfWork) MachineCommands {
	return &machineCommandsImpl{uow: uow}
}

func (uc *machineCommandsImpl) InsertMoney(ctx context.Context, req reqdto.InsertMoneyRequest) (*InsertResult, error) {
	return shared.Run(ctx, uc.uow, func(m *machine.Machine) (*InsertResult, error) {
		amount, err := req.ToAmount(m.Currency())
		if err != nil {
			return nil, err
		}
		total, err := m.InsertMoney(amount)
		if err != nil {
			slog.WarnContext(ctx, "money rejected", "amount", amount.Int64(), "error", err.Error())
			return nil, err
		}
		slog.InfoContext(ctx, "money inserted", "amount", amount.Int64(), "inserted_total", total.Int64())
		return &InsertResult{Accepted: amount, InsertedMoney: total, Currency: m.Currency()}, nil
	})
}

func (uc *machineCommandsImpl) SelectProduct(ctx context.Context, code string) (*SelectionResult, error) {
	return shared.Run(ctx, uc.uow, func(m *machine.Machine) (*SelectionResult, error) {
		p, err := m.SelectProduct(code)
		if err != nil {
			slog.WarnContext(ctx, "selection declined", "product_code", code, "error", err.Error())
			return nil, err
		}
		return &SelectionResult{
			Code:          p.Code().String(),
			Name:          p.Name(),
			Price:         p.Price(),
			InsertedMoney: m.InsertedMoney(),
			Currency:      m.Currency(),
		}, nil
	})
}

func (uc *machineCommandsImpl) Purchase(ctx context.Context, code string) (*PurchaseResult, error) {
	return shared.Run(ctx, uc.uow, func(m *machine.Machine) (*PurchaseResult, error) {
		res, err := m.Purchase(code)
		if err != nil {
			slog.WarnContext(ctx, "purchase declined",
				"product_code", code,
				"inserted", m.InsertedMoney().Int64(),
				"error", err.Error())
			return nil, err
		}
		slog.InfoContext(ctx, "purchase completed",
			"product_code", res.Product.Code().String(),
			"price", res.Product.Price().Int64(),
			"change", res.ChangeAmount.Int64())
		return &PurchaseResult{
			ProductCode:  res.Product.Code().String(),
			ProductName:  res.Product.Name(),
			Price:        res.Product.Price(),
			AmountPaid:   res.AmountPaid,
			ChangeAmount: res.ChangeAmount,
			Change:       res.Change,
			Breakdown:    cash.Breakdown(res.Change),
			Currency:     m.Currency(),
		}, nil
	})
}

func (uc *machineCommandsImpl) Cancel(ctx context.Context) (*RefundResult, error) {
	return shared.Run(ctx, uc.uow, func(m *machine.Machine) (*RefundResult, error) {
		coins, err := m.CancelTransaction()
		if err != nil {
			slog.WarnContext(ctx, "cancel failed", "error", err.Error())
			return nil, err
		}
		slog.InfoContext(ctx, "transaction cancelled", "refunded", money.Sum(coins...).Int64())
		return newRefundResult(coins, m.Currency()), nil
	})
}

func (uc *machineCommandsImpl) ReturnChange(ctx context.Context) (*RefundResult, error) {
	return shared.Run(ctx, uc.uow, func(m *machine.Machine) (*RefundResult, error) {
		coins, err := m.ReturnChange()
		if err != nil {
			slog.ErrorContext(ctx, "return change failed", "inserted", m.InsertedMoney().Int64(), "error", err.Error())
			return nil, err
		}
		return newRefundResult(coins, m.Currency()), nil
	})
}

func newRefundResult(coins []money.Amount, cur money.Currency) *RefundResult {
	return &RefundResult{
		Amount:    money.Sum(coins...),
		Coins:     coins,
		Breakdown: cash.Breakdown(coins),
		Currency:  cur,
	}
}
