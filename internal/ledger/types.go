package ledger

import (
	"github.com/finsight/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetCreate is the input for creating a budget.
type BudgetCreate struct {
	OwnerID     uuid.UUID
	Name        string
	TotalIncome decimal.Decimal
	Rule        models.BudgetRule
	Period      models.Period
	WalletID    *uuid.UUID
	Currency    string
	Allocations []AllocationCreate
}

// AllocationCreate is one allocation of a new budget.
//
// If CategoryKind is empty, the kind of the category is used.
type AllocationCreate struct {
	CategoryID   uuid.UUID
	CategoryKind models.CategoryKind
	WalletID     *uuid.UUID
	Amount       decimal.Decimal
}

type EditStatus string

const (
	// EditCommitted means the new amount has been stored.
	EditCommitted EditStatus = "committed"
	// EditPending means the amount was reduced and the freed amount
	// must be reallocated before anything is stored.
	EditPending EditStatus = "reallocationPending"
)

// EditResult is the outcome of an allocation edit.
type EditResult struct {
	Status       EditStatus          `json:"status" example:"reallocationPending"`
	Allocation   models.Allocation   `json:"allocation"`                  // The allocation after the edit. Unchanged if the edit is pending
	NewAmount    decimal.Decimal     `json:"newAmount" example:"300"`     // The requested amount
	Excess       decimal.Decimal     `json:"excess" example:"200"`        // The amount that needs to be reallocated, zero unless pending
	CategoryKind models.CategoryKind `json:"categoryKind" example:"Need"` // Kind a reallocation target must have
}

// Reallocation moves the amount freed by reducing one allocation to another
// allocation or category of the same kind.
//
// At least one of TargetAllocationID and TargetCategoryID must be set. If both
// are, the target allocation is used and must be for the target category.
type Reallocation struct {
	BudgetID           uuid.UUID
	SourceAllocationID uuid.UUID
	TargetAllocationID *uuid.UUID
	TargetCategoryID   *uuid.UUID
	NewSourceAmount    decimal.Decimal
	ExcessAmount       decimal.Decimal
}

// ReallocationResult contains both allocations after a reallocation.
type ReallocationResult struct {
	Source        models.Allocation `json:"source"`
	Target        models.Allocation `json:"target"`
	TargetCreated bool              `json:"targetCreated" example:"false"` // If the target allocation was created by the reallocation
}

// AllocationView is an allocation with the spend calculated from the expense ledger.
type AllocationView struct {
	models.Allocation
	CategoryName string          `json:"categoryName" example:"Food & Groceries"`
	WalletName   string          `json:"walletName" example:"GCash"` // Name of the wallet spend is counted for, empty for all wallets
	Spent        decimal.Decimal `json:"spent" example:"1200"`
	Remaining    decimal.Decimal `json:"remaining" example:"1300"` // Allocated minus spent, negative when overspent
	Available    decimal.Decimal `json:"available" example:"1300"` // Remaining, but never below zero
}

// KindSummary sums up the allocations of one kind.
type KindSummary struct {
	Kind      models.CategoryKind `json:"kind" example:"Need"`
	Share     *decimal.Decimal    `json:"share" example:"50"`     // Percentage of the income the rule assigns, null for custom budgets
	Ceiling   *decimal.Decimal    `json:"ceiling" example:"5000"` // Maximum the allocations of the kind may sum up to, null for custom budgets
	Allocated decimal.Decimal     `json:"allocated" example:"5000"`
	Spent     decimal.Decimal     `json:"spent" example:"3100"`
	Remaining decimal.Decimal     `json:"remaining" example:"1900"`
}

// WalletGroup sums up all allocations counting spend of the same wallet.
type WalletGroup struct {
	WalletID      *uuid.UUID      `json:"walletId" example:"0b7d2f0e-8e1c-4f3b-9d7a-5f2c8a6e1b3d"` // null for allocations counting all wallets
	WalletName    string          `json:"walletName" example:"GCash"`
	Allocated     decimal.Decimal `json:"allocated" example:"4000"`
	Spent         decimal.Decimal `json:"spent" example:"1500"`
	AllocationIDs []uuid.UUID     `json:"allocationIds"`
}

// BudgetView is a budget with all allocations and calculated values.
type BudgetView struct {
	models.Budget
	Split       Split            `json:"split"` // Amounts per kind according to the rule, zero for custom budgets
	Allocated   decimal.Decimal  `json:"allocated" example:"10000"`
	Spent       decimal.Decimal  `json:"spent" example:"4520.50"`
	Remaining   decimal.Decimal  `json:"remaining" example:"5479.50"`
	Kinds       []KindSummary    `json:"kinds"`
	Allocations []AllocationView `json:"allocations"`
	Wallets     []WalletGroup    `json:"wallets"`
}

// BudgetSummary is a budget in a budget list.
type BudgetSummary struct {
	models.Budget
	AllocationCount int             `json:"allocationCount" example:"6"`
	WalletCount     int             `json:"walletCount" example:"2"` // Number of distinct wallets allocations are scoped to
	TotalAllocated  decimal.Decimal `json:"totalAllocated" example:"10000"`
}

// CategoryAllocation is an allocation of a category together with its budget.
type CategoryAllocation struct {
	AllocationView
	BudgetName string        `json:"budgetName" example:"50-30-20 Budget"`
	Period     models.Period `json:"period" example:"Monthly"`
}
