package opnmath

import (
	"fmt"

	"github.com/GriffinCanCode/opn/backend/internal/opn"
)

func domainError(op string, x opn.Number, msg string) error {
	return &opn.Error{Op: op, Operand: x, Err: fmt.Errorf("%w: %s", opn.ErrDomain, msg)}
}

func undefinedError(op string, x opn.Number, msg string) error {
	return &opn.Error{Op: op, Operand: x, Err: fmt.Errorf("%w: %s", opn.ErrUndefined, msg)}
}
