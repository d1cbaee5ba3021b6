package ledger

import (
	"errors"
	"fmt"

	"github.com/finsight/backend/internal/models"
	"gorm.io/gorm"
)

// All errors returned by this package wrap exactly one of these.
var (
	ErrValidation     = errors.New("the budget data is invalid")
	ErrNotFound       = errors.New("the resource was not found")
	ErrBudgetExceeded = errors.New("the change exceeds the budget")
	ErrInvalidTarget  = errors.New("the reallocation target is invalid")
	ErrStorage        = errors.New("an error occurred on the server during your request")
)

// storeError translates errors returned by gorm into errors of this package.
func storeError(err error) error {
	if err == nil {
		return nil
	}

	if isLedgerError(err) {
		return err
	}

	switch {
	case errors.Is(err, models.ErrResourceNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)

	case errors.Is(err, models.ErrAllocationNotUnique),
		errors.Is(err, models.ErrAllocationAmountNotPositive),
		errors.Is(err, models.ErrAllocationKindInvalid),
		errors.Is(err, models.ErrReferenceNotFound),
		errors.Is(err, models.ErrBudgetRuleInvalid),
		errors.Is(err, models.ErrBudgetPeriodInvalid),
		errors.Is(err, models.ErrBudgetIncomeNotPositive):
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return fmt.Errorf("%w: %w", ErrStorage, err)
}

func isLedgerError(err error) bool {
	for _, e := range []error{ErrValidation, ErrNotFound, ErrBudgetExceeded, ErrInvalidTarget, ErrStorage} {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func targetError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidTarget, fmt.Sprintf(format, args...))
}
