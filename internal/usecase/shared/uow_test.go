//go:build unit

package shared_test

import (
	"context"
	"sync"
	"testing"

	"vending-machine/internal/domain/machine"
	"vending-machine/internal/pkg/errs"
	"vending-machine/internal/pkg/money"
	"vending-machine/internal/usecase/shared"
	"vending-machine/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ReturnsResultAndError(t *testing.T) {
	f := builder.NewMachineBuilder().Build(t)
	uow := shared.NewUnitOfWork(f.Machine)

	total, err := shared.Run(context.Background(), uow, func(m *machine.Machine) (money.Amount, error) {
		return m.InsertMoney(200)
	})
	require.NoError(t, err)
	assert.Equal(t, money.Amount(200), total)

	_, err = shared.Run(context.Background(), uow, func(m *machine.Machine) (money.Amount, error) {
		return m.InsertMoney(3)
	})
	assert.True(t, errs.Is(err, errs.ErrInvalidDenomination))
}

func TestUnitOfWork_CancelledContext(t *testing.T) {
	f := builder.NewMachineBuilder().Build(t)
	uow := shared.NewUnitOfWork(f.Machine)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := uow.Within(ctx, func(context.Context, *machine.Machine) error {
		called = true
		return nil
	})
	assert.True(t, errs.Is(err, shared.ErrUnitOfWorkCancelled))
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)

	_, err = shared.Read(ctx, uow, func(m *machine.Machine) money.Amount { return m.InsertedMoney() })
	assert.True(t, errs.Is(err, shared.ErrUnitOfWorkCancelled))
}

func TestUnitOfWork_SerializesConcurrentInserts(t *testing.T) {
	f := builder.NewMachineBuilder().Build(t)
	uow := shared.NewUnitOfWork(f.Machine)

	const workers = 50
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := shared.Run(context.Background(), uow, func(m *machine.Machine) (money.Amount, error) {
				return m.InsertMoney(10)
			})
			assert.NoError(t, err)
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := shared.Read(context.Background(), uow, func(m *machine.Machine) money.Amount {
				return m.Status().TotalCashValue
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	inserted, err := shared.Read(context.Background(), uow, func(m *machine.Machine) money.Amount { return m.InsertedMoney() })
	require.NoError(t, err)
	assert.Equal(t, money.Amount(workers*10), inserted)
	assert.Equal(t, workers, f.Registry.Count(10))
}
