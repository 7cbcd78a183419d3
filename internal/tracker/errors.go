package tracker

import (
	"errors"
	"fmt"
)

// ErrValidation is the base class for rejected writes caused by bad input.
// Callers can match the whole family with errors.Is(err, ErrValidation).
var ErrValidation = errors.New("validation failed")

var (
	ErrEmptyName        = fmt.Errorf("%w: discipline name is empty", ErrValidation)
	ErrEmptyDescription = fmt.Errorf("%w: reward description is empty", ErrValidation)
	ErrNonPositiveSpend = fmt.Errorf("%w: spend amount must be at least 1", ErrValidation)
)

// ErrInsufficientBalance rejects a spend that exceeds the current balance.
var ErrInsufficientBalance = errors.New("insufficient balance")
