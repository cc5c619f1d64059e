package commands

import (
	"context"
	"log/slog"

	"vending-machine/internal/domain/machine"
	reqdto "vending-machine/internal/handler/dto/request"
	"vending-machine/internal/usecase/shared"
)

type AdminCommands interface {
	AddProduct(ctx context.Context, req reqdto.CreateProductRequest) error
	RestockProduct(ctx context.Context, code string, req reqdto.RestockRequest) error
	AddCash(ctx context.Context, req reqdto.CashRequest) error
	RefillFromSupplier(ctx context.Context, req reqdto.CashRequest) (*RefillResult, error)
	ClearTransactions(ctx context.Context) error
}

type adminCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewAdminCommands(uow shared.UnitOfWork) AdminCommands {
	return &adminCommandsImpl{uow: uow}
}

func (uc *adminCommandsImpl) AddProduct(ctx context.Context, req reqdto.CreateProductRequest) error {
	p, err := req.ToDomain()
	if err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, m *machine.Machine) error {
		if err := m.AddProduct(p, req.Quantity); err != nil {
			return err
		}
		slog.InfoContext(ctx, "product added", "product_code", p.Code().String(), "quantity", req.Quantity)
		return nil
	})
}

func (uc *adminCommandsImpl) RestockProduct(ctx context.Context, code string, req reqdto.RestockRequest) error {
	return uc.uow.Within(ctx, func(ctx context.Context, m *machine.Machine) error {
		if err := m.RestockProduct(code, req.Quantity); err != nil {
			return err
		}
		slog.InfoContext(ctx, "product restocked", "product_code", code, "quantity", req.Quantity)
		return nil
	})
}

func (uc *adminCommandsImpl) AddCash(ctx context.Context, req reqdto.CashRequest) error {
	return uc.uow.Within(ctx, func(ctx context.Context, m *machine.Machine) error {
		if err := m.AddCash(req.DenominationAmount(), req.Count); err != nil {
			return err
		}
		slog.InfoContext(ctx, "cash loaded", "denomination", req.Denomination, "count", req.Count)
		return nil
	})
}

func (uc *adminCommandsImpl) RefillFromSupplier(ctx context.Context, req reqdto.CashRequest) (*RefillResult, error) {
	return shared.Run(ctx, uc.uow, func(m *machine.Machine) (*RefillResult, error) {
		provided, err := m.RefillFromSupplier(req.DenominationAmount(), req.Count)
		if err != nil {
			return nil, err
		}
		if provided < req.Count {
			slog.WarnContext(ctx, "supplier short on coins",
				"denomination", req.Denomination,
				"requested", req.Count,
				"provided", provided)
		}
		return &RefillResult{
			Denomination: req.DenominationAmount(),
			Requested:    req.Count,
			Provided:     provided,
			Currency:     m.Currency(),
		}, nil
	})
}

func (uc *adminCommandsImpl) ClearTransactions(ctx context.Context) error {
	return uc.uow.Within(ctx, func(ctx context.Context, m *machine.Machine) error {
		n := len(m.Transactions())
		m.ClearTransactions()
		slog.InfoContext(ctx, "transaction log cleared", "entries", n)
		return nil
	})
}
