package v1

import (
	"time"

	"github.com/finsight/backend/internal/models"
	ez_uuid "github.com/finsight/backend/internal/uuid"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IncomeEditable represents all user configurable parameters
type IncomeEditable struct {
	OwnerID    uuid.UUID       `json:"ownerId" binding:"required" example:"3f0b5c4c-6b86-4a0e-8d8c-1d1f0a3b7a9e"`  // The user the income belongs to
	WalletID   uuid.UUID       `json:"walletId" binding:"required" example:"0b7d2f0e-8e1c-4f3b-9d7a-5f2c8a6e1b3d"` // The wallet the money was received in
	CategoryID *uuid.UUID      `json:"categoryId" example:"a5c3e1f7-9b2d-4e6a-8c1f-3d5b7a9e1c2f"`                  // An income category
	Amount     decimal.Decimal `json:"amount" binding:"required" swaggertype:"string" example:"25000"`             // The amount received, must be positive
	Date       time.Time       `json:"date" example:"2024-05-01T00:00:00Z"`                                        // When the money was received. Defaults to now
	Note       string          `json:"note" example:"May salary"`                                                  // A note
}

func (editable IncomeEditable) model() models.Income {
	return models.Income{
		OwnerID:    editable.OwnerID,
		WalletID:   editable.WalletID,
		CategoryID: editable.CategoryID,
		Amount:     editable.Amount,
		Date:       editable.Date,
		Note:       editable.Note,
	}
}

type IncomeResponse struct {
	Data *models.Income `json:"data"` // Data for the income
}

type IncomeListResponse struct {
	Data []models.Income `json:"data"` // List of incomes
}

type IncomeTotal struct {
	Total decimal.Decimal `json:"total" swaggertype:"string" example:"35000"` // Sum of all incomes of the user
}

type IncomeTotalResponse struct {
	Data IncomeTotal `json:"data"`
}

type IncomeQueryFilter struct {
	OwnerID  ez_uuid.UUID `form:"owner"`  // By ID of the owner, required
	WalletID ez_uuid.UUID `form:"wallet"` // By ID of the wallet
}

func (f IncomeQueryFilter) model() models.Income {
	return models.Income{
		OwnerID:  f.OwnerID.UUID,
		WalletID: f.WalletID.UUID,
	}
}
