package api

import "vending-machine/internal/pkg/errs"

var errNegativeAmount = errs.New("amount must not be negative")
