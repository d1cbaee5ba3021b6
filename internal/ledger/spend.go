package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExpenseLedger sums up recorded expenses.
type ExpenseLedger interface {
	// SumExpenses returns the sum of all expenses of the owner in the category.
	// If walletID is set, only expenses from that wallet are counted.
	SumExpenses(ctx context.Context, ownerID, categoryID uuid.UUID, walletID *uuid.UUID) (decimal.Decimal, error)
}

// SpendAggregator calculates how much of an allocation has been spent.
//
// Spend is always read from the expense ledger, it is never stored.
type SpendAggregator struct {
	ledger ExpenseLedger
}

func NewSpendAggregator(ledger ExpenseLedger) SpendAggregator {
	return SpendAggregator{ledger: ledger}
}

// SpentFor returns the amount spent in the category, zero if there are no expenses.
func (a SpendAggregator) SpentFor(ctx context.Context, ownerID, categoryID uuid.UUID, walletID *uuid.UUID) (decimal.Decimal, error) {
	spent, err := a.ledger.SumExpenses(ctx, ownerID, categoryID, walletID)
	if err != nil {
		return decimal.Zero, storeError(err)
	}

	return spent, nil
}

type gormExpenseLedger struct {
	db *gorm.DB
}

// NewExpenseLedger returns an ExpenseLedger reading the expenses table.
func NewExpenseLedger(db *gorm.DB) ExpenseLedger {
	return gormExpenseLedger{db: db}
}

func (l gormExpenseLedger) SumExpenses(ctx context.Context, ownerID, categoryID uuid.UUID, walletID *uuid.UUID) (decimal.Decimal, error) {
	q := l.db.WithContext(ctx).
		Table("expenses").
		Select("SUM(amount)").
		Where("owner_id = ? AND category_id = ?", ownerID, categoryID)

	if walletID != nil {
		q = q.Where("wallet_id = ?", walletID)
	}

	var spent decimal.NullDecimal
	if err := q.Find(&spent).Error; err != nil {
		return decimal.Zero, err
	}

	// No expenses
	if !spent.Valid {
		return decimal.Zero, nil
	}

	return spent.Decimal, nil
}
