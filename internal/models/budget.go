package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultCurrency is used for budgets created without a currency.
const DefaultCurrency = "PHP"

// Budget distributes a declared income over expense categories.
type Budget struct {
	DefaultModel
	OwnerID     uuid.UUID       `json:"ownerId" example:"3f0b5c4c-6b86-4a0e-8d8c-1d1f0a3b7a9e"` // The user owning the budget
	Owner       User            `json:"-"`
	Name        string          `json:"name" example:"50-30-20 Budget"`
	TotalIncome decimal.Decimal `json:"totalIncome" gorm:"type:DECIMAL(20,8)" example:"10000"`   // The income distributed by the budget
	Rule        BudgetRule      `json:"rule" example:"50-30-20"`                                 // 50-30-20, 70-20-10 or custom
	Period      Period          `json:"period" example:"Monthly"`                                // Weekly, Monthly or Yearly
	WalletID    *uuid.UUID      `json:"walletId" example:"0b7d2f0e-8e1c-4f3b-9d7a-5f2c8a6e1b3d"` // Set when the whole budget is scoped to a single wallet
	Wallet      *Wallet         `json:"-"`
	Currency    string          `json:"currency" example:"PHP"` // ISO 4217 code
	Allocations []Allocation    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	if b.Name == "" {
		b.Name = fmt.Sprintf("%s Budget", b.Rule)
	}

	if b.Period == "" {
		b.Period = PeriodMonthly
	}

	b.Currency = strings.ToUpper(strings.TrimSpace(b.Currency))
	if b.Currency == "" {
		b.Currency = DefaultCurrency
	}

	if !b.Rule.Valid() {
		return ErrBudgetRuleInvalid
	}

	if !b.Period.Valid() {
		return ErrBudgetPeriodInvalid
	}

	if !b.TotalIncome.IsPositive() {
		return ErrBudgetIncomeNotPositive
	}

	return nil
}

// Allocation is the amount of a budget assigned to one category,
// optionally scoped to one wallet.
type Allocation struct {
	DefaultModel
	BudgetID     uuid.UUID       `json:"budgetId" gorm:"uniqueIndex:idx_allocation_tuple" example:"9c1e5a3f-7b2d-4f6e-8a1c-3e5d7b9f1a2c"`
	CategoryID   uuid.UUID       `json:"categoryId" gorm:"uniqueIndex:idx_allocation_tuple" example:"d4a1c3f2-2b5e-4c7d-8a9f-1e6b3d5c7a9b"`
	Category     Category        `json:"-"`
	CategoryKind CategoryKind    `json:"categoryKind" example:"Need"`                                                                     // Kind of the category at the time of allocation
	WalletID     *uuid.UUID      `json:"walletId" gorm:"uniqueIndex:idx_allocation_tuple" example:"0b7d2f0e-8e1c-4f3b-9d7a-5f2c8a6e1b3d"` // Set when the allocation only counts spend from one wallet
	Wallet       *Wallet         `json:"-"`
	Amount       decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"2500"` // The allocated amount
}

func (Allocation) TableName() string {
	return "budget_allocations"
}

func (a *Allocation) BeforeSave(_ *gorm.DB) error {
	if !a.CategoryKind.Valid() {
		return ErrAllocationKindInvalid
	}

	if !a.Amount.IsPositive() {
		return ErrAllocationAmountNotPositive
	}

	return nil
}
