// Package httperror translates errors into HTTP responses.
package httperror

import (
	"errors"
	"net/http"

	"github.com/finsight/backend/internal/httputil"
	"github.com/finsight/backend/internal/ledger"
	"github.com/finsight/backend/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Error is the body of all error responses.
type Error struct {
	Message string `json:"error" example:"the budget data is invalid: the allocations sum up to ₱9,999.98, but the total income is ₱10,000.00"`
}

// New returns the response body for err.
//
// Errors that map to an internal server error only expose a generic message.
func New(err error) Error {
	if Status(err) == http.StatusInternalServerError {
		return Error{Message: ledger.ErrStorage.Error()}
	}

	return Error{Message: err.Error()}
}

// Status returns the HTTP status code for err.
func Status(err error) int {
	switch {
	case errors.Is(err, ledger.ErrStorage), errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError

	case errors.Is(err, ledger.ErrNotFound), errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound

	case errors.Is(err, ledger.ErrBudgetExceeded):
		return http.StatusUnprocessableEntity

	case errors.Is(err, ledger.ErrValidation),
		errors.Is(err, ledger.ErrInvalidTarget),
		errors.Is(err, httputil.ErrInvalidBody),
		errors.Is(err, httputil.ErrRequestBodyEmpty),
		errors.Is(err, httputil.ErrInvalidQueryString):
		return http.StatusBadRequest
	}

	// All remaining model errors are caused by the request data
	for _, e := range modelErrors {
		if errors.Is(err, e) {
			return http.StatusBadRequest
		}
	}

	var validationError httputil.ValidationError
	if errors.As(err, &validationError) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

var modelErrors = []error{
	models.ErrReferenceNotFound,
	models.ErrResourceInUse,
	models.ErrAmountNotPositive,
	models.ErrRecurringInvalid,
	models.ErrUserEmailNotUnique,
	models.ErrUserEmailEmpty,
	models.ErrUserDescription,
	models.ErrUserChallenge,
	models.ErrUserPriority,
	models.ErrUserConfidence,
	models.ErrWalletNameNotUnique,
	models.ErrWalletNameEmpty,
	models.ErrWalletOwnerNotMatching,
	models.ErrCategoryNameNotUnique,
	models.ErrCategoryNameEmpty,
	models.ErrCategoryKindInvalid,
	models.ErrCategoryDefaultImmutable,
	models.ErrCategoryKindAllocated,
	models.ErrCategoryOwnerNotMatching,
	models.ErrCategoryTransactionType,
	models.ErrTransactionTypeInvalid,
	models.ErrMatchRuleMatchEmpty,
	models.ErrMatchRuleCategoryMismatch,
	models.ErrBudgetRuleInvalid,
	models.ErrBudgetPeriodInvalid,
	models.ErrBudgetIncomeNotPositive,
	models.ErrAllocationNotUnique,
	models.ErrAllocationKindInvalid,
	models.ErrAllocationAmountNotPositive,
}

// Abort writes the error response for err and stops the handler chain.
//
// Server errors are logged with the request id, the client only
// receives the generic message.
func Abort(c *gin.Context, err error) {
	status := Status(err)
	if status == http.StatusInternalServerError {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	}

	c.AbortWithStatusJSON(status, New(err))
}
