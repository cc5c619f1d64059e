package shared

import (
	"context"
	"sync"

	"vending-machine/internal/domain/machine"
	"vending-machine/internal/pkg/errs"
)

var ErrUnitOfWorkCancelled = errs.New("machine operation cancelled before it started")

// UnitOfWork is the transaction boundary around the single machine of the process.
// A machine operation is atomic on its own; the unit of work makes it atomic with respect
// to concurrent callers as well.
type UnitOfWork interface {
	// Within: exclusive access for operations that change machine state
	Within(ctx context.Context, fn func(ctx context.Context, m *machine.Machine) error) error
	// WithinReadOnly: shared access for queries; fn must not mutate the machine
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, m *machine.Machine) error) error
}

type machineUnitOfWork struct {
	mu sync.RWMutex
	m  *machine.Machine
}

func NewUnitOfWork(m *machine.Machine) UnitOfWork {
	return &machineUnitOfWork{m: m}
}

func (u *machineUnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, m *machine.Machine) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return errs.Mark(err, ErrUnitOfWorkCancelled)
	}
	return fn(ctx, u.m)
}

func (u *machineUnitOfWork) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, m *machine.Machine) error) error {
	u.mu.RLock()
	defer u.mu.RUnlock()
	if err := ctx.Err(); err != nil {
		return errs.Mark(err, ErrUnitOfWorkCancelled)
	}
	return fn(ctx, u.m)
}

// Run executes fn within an exclusive unit of work and returns its result.
func Run[T any](ctx context.Context, uow UnitOfWork, fn func(m *machine.Machine) (T, error)) (T, error) {
	var result T
	err := uow.Within(ctx, func(_ context.Context, m *machine.Machine) error {
		var ferr error
		result, ferr = fn(m)
		return ferr
	})
	return result, err
}

// Read executes fn within a shared unit of work and returns its result.
func Read[T any](ctx context.Context, uow UnitOfWork, fn func(m *machine.Machine) T) (T, error) {
	var result T
	err := uow.WithinReadOnly(ctx, func(_ context.Context, m *machine.Machine) error {
		result = fn(m)
		return nil
	})
	return result, err
}
