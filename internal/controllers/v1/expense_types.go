package v1

import (
	"time"

	"github.com/finsight/backend/internal/models"
	ez_uuid "github.com/finsight/backend/internal/uuid"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseEditable represents all user configurable parameters
type ExpenseEditable struct {
	OwnerID    uuid.UUID       `json:"ownerId" binding:"required" example:"3f0b5c4c-6b86-4a0e-8d8c-1d1f0a3b7a9e"`  // The user the expense belongs to
	WalletID   uuid.UUID       `json:"walletId" binding:"required" example:"0b7d2f0e-8e1c-4f3b-9d7a-5f2c8a6e1b3d"` // The wallet the money was spent from
	CategoryID *uuid.UUID      `json:"categoryId" example:"d4a1c3f2-2b5e-4c7d-8a9f-1e6b3d5c7a9b"`                  // The category. If not set, match rules are applied to the note
	Amount     decimal.Decimal `json:"amount" binding:"required" swaggertype:"string" example:"350.75"`            // The amount spent, must be positive
	Date       time.Time       `json:"date" example:"2024-05-03T12:00:00Z"`                                        // When the money was spent. Defaults to now
	Note       string          `json:"note" example:"Weekly groceries"`                                            // A note

	IsRecurring        bool           `json:"isRecurring" example:"true"`          // The expense repeats
	RecurringFrequency *models.Period `json:"recurringFrequency" example:"Weekly"` // Weekly, Monthly or Yearly. Required for recurring expenses
}

func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		OwnerID:    editable.OwnerID,
		WalletID:   editable.WalletID,
		CategoryID: editable.CategoryID,
		Amount:     editable.Amount,
		Date:       editable.Date,
		Note:       editable.Note,

		IsRecurring:        editable.IsRecurring,
		RecurringFrequency: editable.RecurringFrequency,
	}
}

type ExpenseResponse struct {
	Data *models.Expense `json:"data"` // Data for the expense
}

type ExpenseListResponse struct {
	Data       []models.Expense `json:"data"`       // List of expenses
	Pagination *Pagination      `json:"pagination"` // Pagination information
}

type ExpenseQueryFilter struct {
	OwnerID    ez_uuid.UUID `form:"owner"`                                                               // By ID of the owner, required
	WalletID   ez_uuid.UUID `form:"wallet"`                                                              // By ID of the wallet
	CategoryID ez_uuid.UUID `form:"category"`                                                            // By ID of the category
	FromDate   time.Time    `form:"fromDate" time_format:"2006-01-02" time_utc:"1" filterField:"false"`  // Expenses at and after this date
	UntilDate  time.Time    `form:"untilDate" time_format:"2006-01-02" time_utc:"1" filterField:"false"` // Expenses before and at this date
	Note       string       `form:"note" filterField:"false"`                                            // By string contained in the note
	Offset     uint         `form:"offset" filterField:"false"`                                          // The offset of the first expense returned. Defaults to 0.
	Limit      int          `form:"limit" filterField:"false"`                                           // Maximum number of expenses to return. Defaults to 50.
}

func (f ExpenseQueryFilter) model() models.Expense {
	categoryID := f.CategoryID.UUID

	return models.Expense{
		OwnerID:    f.OwnerID.UUID,
		WalletID:   f.WalletID.UUID,
		CategoryID: &categoryID,
	}
}
