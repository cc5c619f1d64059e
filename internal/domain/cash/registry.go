package cash

import (
	"slices"

	"vending-machine/internal/pkg/errs"
	"vending-machine/internal/pkg/money"
)

var (
	ErrNoDenominations         = errs.Mark(errs.New("at least one denomination is required"), errs.ErrValidation)
	ErrNonPositiveDenomination = errs.Mark(errs.New("denominations must be positive"), errs.ErrValidation)
	ErrDuplicateDenomination   = errs.Mark(errs.New("denominations must be unique"), errs.ErrValidation)
	ErrNegativeCount           = errs.Mark(errs.New("coin count cannot be negative"), errs.ErrValidation)
	ErrDenominationTooLarge    = errs.Mark(errs.New("denomination exceeds the accepted maximum"), errs.ErrValidation)
	ErrCoinCapacityExceeded    = errs.Mark(errs.New("coin capacity exceeded"), errs.ErrValidation)
)

const (
	// MaxCoinCount caps the units of one denomination held by a cash box or the supplier.
	MaxCoinCount = 1_000_000
	// MaxDenomination keeps MaxCoinCount units of every denomination within int64 totals.
	MaxDenomination money.Amount = 1_000_000_000
)

// fits reports whether count more units can join held without passing MaxCoinCount.
func fits(held, count int) bool {
	return count <= MaxCoinCount-held
}

// DefaultDenominations is the euro coin and note set, in cents.
func DefaultDenominations() []money.Amount {
	return []money.Amount{1, 2, 5, 10, 20, 50, 100, 200, 500, 1000, 2000, 5000}
}

// Registry is the machine's cash box: a fixed set of accepted denominations and how many
// units of each it holds. Counts never go negative.
type Registry struct {
	descending []money.Amount
	counts     map[money.Amount]int
}

func NewRegistry(denominations []money.Amount) (*Registry, error) {
	if len(denominations) == 0 {
		return nil, ErrNoDenominations
	}

	counts := make(map[money.Amount]int, len(denominations))
	for _, d := range denominations {
		if !d.IsPositive() {
			return nil, ErrNonPositiveDenomination
		}
		if d > MaxDenomination {
			return nil, errs.Wrapf(ErrDenominationTooLarge, "denomination %d", d)
		}
		if _, dup := counts[d]; dup {
			return nil, ErrDuplicateDenomination
		}
		counts[d] = 0
	}

	desc := slices.Clone(denominations)
	slices.SortFunc(desc, func(a, b money.Amount) int { return int(b - a) })

	return &Registry{descending: desc, counts: counts}, nil
}

func (r *Registry) IsValidDenomination(d money.Amount) bool {
	_, ok := r.counts[d]
	return ok
}

// Accepted returns the accepted denominations in ascending order.
func (r *Registry) Accepted() []money.Amount {
	out := slices.Clone(r.descending)
	slices.Reverse(out)
	return out
}

func (r *Registry) AddCoins(d money.Amount, count int) error {
	if !r.IsValidDenomination(d) {
		return errs.Markf(errs.ErrInvalidDenomination, "denomination %d is not accepted", d)
	}
	if count < 0 {
		return ErrNegativeCount
	}
	if !fits(r.counts[d], count) {
		return errs.Wrapf(ErrCoinCapacityExceeded, "denomination %d holds %d, adding %d", d, r.counts[d], count)
	}
	r.counts[d] += count
	return nil
}

func (r *Registry) RemoveCoins(d money.Amount, count int) error {
	if !r.IsValidDenomination(d) {
		return errs.Markf(errs.ErrInvalidDenomination, "denomination %d is not accepted", d)
	}
	if count < 0 {
		return ErrNegativeCount
	}
	if count > r.counts[d] {
		return errs.Markf(errs.ErrInsufficientStock, "insufficient coins of %d: requested %d, available %d", d, count, r.counts[d])
	}
	r.counts[d] -= count
	return nil
}

// CalculateChange decomposes amount into held denominations, largest first, without
// touching the registry. The result is ordered descending and may repeat values.
func (r *Registry) CalculateChange(amount money.Amount) ([]money.Amount, error) {
	if amount <= 0 {
		return []money.Amount{}, nil
	}

	change := make([]money.Amount, 0)
	remaining := amount
	for _, d := range r.descending {
		if remaining == 0 {
			break
		}
		take := min(int(remaining/d), r.counts[d])
		for range take {
			change = append(change, d)
		}
		remaining -= d * money.Amount(take)
	}

	if remaining > 0 {
		return nil, errs.Markf(errs.ErrExactChangeImpossible, "cannot make exact change for %d (%d left over)", amount, remaining)
	}
	return change, nil
}

// MakeChange dispenses change for amount. The whole decomposition is validated before
// any count is decremented, so a failure leaves the registry untouched.
func (r *Registry) MakeChange(amount money.Amount) ([]money.Amount, error) {
	change, err := r.CalculateChange(amount)
	if err != nil {
		return nil, err
	}

	needed := tally(change)
	for d, n := range needed {
		if n > r.counts[d] {
			return nil, errs.Markf(errs.ErrInsufficientStock, "insufficient coins of %d: requested %d, available %d", d, n, r.counts[d])
		}
	}
	for d, n := range needed {
		r.counts[d] -= n
	}
	return change, nil
}

func (r *Registry) CanMakeChange(amount money.Amount) bool {
	_, err := r.CalculateChange(amount)
	return err == nil
}

// Count returns 0 for denominations that are not accepted.
func (r *Registry) Count(d money.Amount) int {
	return r.counts[d]
}

// Inventory returns a snapshot of denomination -> count.
func (r *Registry) Inventory() map[money.Amount]int {
	out := make(map[money.Amount]int, len(r.counts))
	for d, n := range r.counts {
		out[d] = n
	}
	return out
}

func (r *Registry) TotalValue() money.Amount {
	var total money.Amount
	for d, n := range r.counts {
		total += d * money.Amount(n)
	}
	return total
}

// EmptyDenominations lists accepted denominations with no units left, ascending.
func (r *Registry) EmptyDenominations() []money.Amount {
	return r.pick(func(n int) bool { return n == 0 })
}

// LowDenominations lists denominations still held but below threshold, ascending.
func (r *Registry) LowDenominations(threshold int) []money.Amount {
	return r.pick(func(n int) bool { return n > 0 && n < threshold })
}

func (r *Registry) pick(keep func(int) bool) []money.Amount {
	out := make([]money.Amount, 0)
	for _, d := range r.Accepted() {
		if keep(r.counts[d]) {
			out = append(out, d)
		}
	}
	return out
}

func tally(coins []money.Amount) map[money.Amount]int {
	m := make(map[money.Amount]int)
	for _, c := range coins {
		m[c]++
	}
	return m
}
