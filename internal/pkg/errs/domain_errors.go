package errs

import "errors"

// Domain-specific sentinel errors shared by the machine components.
// Components return contextual errors marked with one of these (see Markf).
var (
	// Input errors
	ErrValidation          = errors.New("validation error")
	ErrInvalidDenomination = errors.New("invalid denomination")

	// Lookup errors
	ErrNotFound = errors.New("not found")

	// Stock errors
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrOutOfStock        = errors.New("out of stock")

	// Transaction errors
	ErrInsufficientFunds     = errors.New("insufficient funds")
	ErrExactChangeImpossible = errors.New("exact change impossible")
	ErrNoSelection           = errors.New("no product selected")
	ErrNothingToCancel       = errors.New("nothing to cancel")
)
