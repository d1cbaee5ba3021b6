package ledger

import (
	"github.com/finsight/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tolerance is the maximum difference at which two amounts are considered equal.
var Tolerance = decimal.New(1, -2)

var hundred = decimal.NewFromInt(100)

// shares are the percentages of the income each kind receives per rule.
var shares = map[models.BudgetRule]map[models.CategoryKind]decimal.Decimal{
	models.Rule503020: {
		models.KindNeed:    decimal.NewFromInt(50),
		models.KindWant:    decimal.NewFromInt(30),
		models.KindSavings: decimal.NewFromInt(20),
	},
	models.Rule702010: {
		models.KindNeed:    decimal.NewFromInt(70),
		models.KindWant:    decimal.NewFromInt(20),
		models.KindSavings: decimal.NewFromInt(10),
	},
}

// Split is the distribution of an income over the category kinds.
type Split struct {
	Needs   decimal.Decimal `json:"needs" example:"5000"`
	Wants   decimal.Decimal `json:"wants" example:"3000"`
	Savings decimal.Decimal `json:"savings" example:"2000"`
}

// For returns the split amount for a kind.
func (s Split) For(kind models.CategoryKind) decimal.Decimal {
	switch kind {
	case models.KindNeed:
		return s.Needs
	case models.KindWant:
		return s.Wants
	case models.KindSavings:
		return s.Savings
	}

	return decimal.Zero
}

// Share returns the percentage of the income the rule assigns to the kind.
//
// The custom rule does not assign percentages, ok is false for it.
func Share(rule models.BudgetRule, kind models.CategoryKind) (percent decimal.Decimal, ok bool) {
	percent, ok = shares[rule][kind]
	return percent, ok
}

// SplitByRule splits the total by the percentages of the rule.
// All parts are zero for the custom rule.
func SplitByRule(total decimal.Decimal, rule models.BudgetRule) Split {
	part := func(kind models.CategoryKind) decimal.Decimal {
		percent, ok := Share(rule, kind)
		if !ok {
			return decimal.Zero
		}

		return total.Mul(percent).Div(hundred)
	}

	return Split{
		Needs:   part(models.KindNeed),
		Wants:   part(models.KindWant),
		Savings: part(models.KindSavings),
	}
}

// Ceiling returns the maximum total the rule allows for all allocations of the kind.
func Ceiling(total decimal.Decimal, rule models.BudgetRule, kind models.CategoryKind) (decimal.Decimal, bool) {
	if _, ok := Share(rule, kind); !ok {
		return decimal.Zero, false
	}

	return SplitByRule(total, rule).For(kind), true
}

// Remaining is the allocated amount minus what has been spent. It is negative
// when more than the allocation has been spent.
func Remaining(allocated, spent decimal.Decimal) decimal.Decimal {
	return allocated.Sub(spent)
}

// Available is the remaining amount, but never less than zero.
func Available(allocated, spent decimal.Decimal) decimal.Decimal {
	return decimal.Max(Remaining(allocated, spent), decimal.Zero)
}

// Equal reports if two amounts are equal within the tolerance.
func Equal(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(Tolerance)
}

// ValidateSumsToIncome reports if the amounts sum up to the total within the tolerance.
func ValidateSumsToIncome(amounts []decimal.Decimal, total decimal.Decimal) bool {
	return Equal(decimal.Sum(decimal.Zero, amounts...), total)
}

// Sum returns the sum of all allocated amounts.
func Sum(allocations []models.Allocation) decimal.Decimal {
	sum := decimal.Zero
	for _, a := range allocations {
		sum = sum.Add(a.Amount)
	}

	return sum
}

// KindTotal returns the sum of all allocations of the kind, not counting the
// allocation with the excluded ID.
func KindTotal(allocations []models.Allocation, kind models.CategoryKind, exclude uuid.UUID) decimal.Decimal {
	sum := decimal.Zero
	for _, a := range allocations {
		if a.CategoryKind != kind || a.ID == exclude {
			continue
		}
		sum = sum.Add(a.Amount)
	}

	return sum
}

// exceeds reports if amount is larger than limit plus the tolerance.
func exceeds(amount, limit decimal.Decimal) bool {
	return amount.GreaterThan(limit.Add(Tolerance))
}
