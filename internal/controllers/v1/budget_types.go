package v1

import (
	"github.com/finsight/backend/internal/ledger"
	"github.com/finsight/backend/internal/models"
	ez_uuid "github.com/finsight/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetEditable is the body for creating a budget.
type BudgetEditable struct {
	OwnerID     uuid.UUID            `json:"ownerId" binding:"required" example:"3f0b5c4c-6b86-4a0e-8d8c-1d1f0a3b7a9e"` // The user the budget belongs to
	Name        string               `json:"name" example:"May Budget"`                                                 // Defaults to "<rule> Budget"
	TotalIncome decimal.Decimal      `json:"totalIncome" binding:"required" swaggertype:"string" example:"10000"`       // The income to distribute
	Rule        models.BudgetRule    `json:"rule" binding:"required" example:"50-30-20"`                                // 50-30-20, 70-20-10 or custom
	Period      models.Period        `json:"period" example:"Monthly"`                                                  // Defaults to Monthly
	WalletID    *uuid.UUID           `json:"walletId" example:"0b7d2f0e-8e1c-4f3b-9d7a-5f2c8a6e1b3d"`                   // Scopes the whole budget to one wallet
	Currency    string               `json:"currency" example:"PHP"`                                                    // ISO 4217 code, defaults to PHP
	Allocations []AllocationEditable `json:"allocations" binding:"dive"`                                                // Must sum up to the total income
}

// AllocationEditable is one allocation of a new budget.
type AllocationEditable struct {
	CategoryID   uuid.UUID           `json:"categoryId" binding:"required" example:"d4a1c3f2-2b5e-4c7d-8a9f-1e6b3d5c7a9b"`
	CategoryKind models.CategoryKind `json:"categoryKind" example:"Need"`                             // Defaults to the kind of the category
	WalletID     *uuid.UUID          `json:"walletId" example:"0b7d2f0e-8e1c-4f3b-9d7a-5f2c8a6e1b3d"` // Only count spend from this wallet
	Amount       decimal.Decimal     `json:"amount" binding:"required" swaggertype:"string" example:"2500"`
}

func (editable BudgetEditable) create() ledger.BudgetCreate {
	allocations := make([]ledger.AllocationCreate, 0, len(editable.Allocations))
	for _, a := range editable.Allocations {
		allocations = append(allocations, ledger.AllocationCreate{
			CategoryID:   a.CategoryID,
			CategoryKind: a.CategoryKind,
			WalletID:     a.WalletID,
			Amount:       a.Amount,
		})
	}

	return ledger.BudgetCreate{
		OwnerID:     editable.OwnerID,
		Name:        editable.Name,
		TotalIncome: editable.TotalIncome,
		Rule:        editable.Rule,
		Period:      editable.Period,
		WalletID:    editable.WalletID,
		Currency:    editable.Currency,
		Allocations: allocations,
	}
}

type BudgetLinks struct {
	Self                   string `json:"self" example:"https://example.com/api/v1/budgets/9c1e5a3f-7b2d-4f6e-8a1c-3e5d7b9f1a2c"`                                           // The budget itself
	Allocations            string `json:"allocations" example:"https://example.com/api/v1/budgets/9c1e5a3f-7b2d-4f6e-8a1c-3e5d7b9f1a2c/allocations"`                        // Allocations of the budget
	ReallocationCandidates string `json:"reallocationCandidates" example:"https://example.com/api/v1/budgets/9c1e5a3f-7b2d-4f6e-8a1c-3e5d7b9f1a2c/reallocation-candidates"` // Targets for moving an excess
	Reallocations          string `json:"reallocations" example:"https://example.com/api/v1/budgets/9c1e5a3f-7b2d-4f6e-8a1c-3e5d7b9f1a2c/reallocations"`                    // Endpoint to move an excess
}

func budgetLinks(c *gin.Context, id uuid.UUID) BudgetLinks {
	self := c.GetString(string(models.DBContextURL)) + "/v1/budgets/" + id.String()

	return BudgetLinks{
		Self:                   self,
		Allocations:            self + "/allocations",
		ReallocationCandidates: self + "/reallocation-candidates",
		Reallocations:          self + "/reallocations",
	}
}

type Budget struct {
	ledger.BudgetView
	Links BudgetLinks `json:"links"`
}

type BudgetSummary struct {
	ledger.BudgetSummary
	Links BudgetLinks `json:"links"`
}

type BudgetResponse struct {
	Data *Budget `json:"data"` // Data for the budget
}

type BudgetListResponse struct {
	Data []BudgetSummary `json:"data"` // List of budgets
}

type BudgetAllocationListResponse struct {
	Data []models.Allocation `json:"data"` // Allocations of the budget
}

type ReallocationCandidatesResponse struct {
	Data ledger.Candidates `json:"data"`
}

type BudgetQueryFilter struct {
	OwnerID  ez_uuid.UUID `form:"owner"`  // By ID of the owner, required
	WalletID ez_uuid.UUID `form:"wallet"` // Only budgets scoped to this wallet or with allocations for it
}

type ReallocationCandidatesQuery struct {
	Kind    models.CategoryKind `form:"kind"`    // Kind of the reduced allocation, required
	Exclude ez_uuid.UUID        `form:"exclude"` // The reduced allocation
}

// ReallocationEditable is the body for moving the excess of a reduced allocation.
//
// At least one of targetAllocationId and targetCategoryId identifies the target.
// targetAllocationId takes precedence, targetCategoryId must then name its category.
type ReallocationEditable struct {
	SourceAllocationID uuid.UUID       `json:"sourceAllocationId" binding:"required" example:"5e2a7c1d-3f4b-4a6e-9c8d-1b2f3e4a5c6d"`
	TargetAllocationID *uuid.UUID      `json:"targetAllocationId" example:"8a1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d"` // An allocation of the same budget and kind
	TargetCategoryID   *uuid.UUID      `json:"targetCategoryId" example:"a5c3e1f7-9b2d-4e6a-8c1f-3d5b7a9e1c2f"`   // A category of the same kind without an allocation in the budget
	NewSourceAmount    decimal.Decimal `json:"newSourceAmount" binding:"required" swaggertype:"string" example:"300"`
	ExcessAmount       decimal.Decimal `json:"excessAmount" binding:"required" swaggertype:"string" example:"200"`
}

func (editable ReallocationEditable) reallocation(budgetID uuid.UUID) ledger.Reallocation {
	return ledger.Reallocation{
		BudgetID:           budgetID,
		SourceAllocationID: editable.SourceAllocationID,
		TargetAllocationID: editable.TargetAllocationID,
		TargetCategoryID:   editable.TargetCategoryID,
		NewSourceAmount:    editable.NewSourceAmount,
		ExcessAmount:       editable.ExcessAmount,
	}
}

type ReallocationResponse struct {
	Data ledger.ReallocationResult `json:"data"`
}
