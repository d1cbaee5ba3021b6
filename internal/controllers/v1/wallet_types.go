package v1

import (
	"fmt"

	"github.com/finsight/backend/internal/models"
	ez_uuid "github.com/finsight/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WalletEditable represents all user configurable parameters
type WalletEditable struct {
	OwnerID uuid.UUID `json:"ownerId" binding:"required" example:"3f0b5c4c-6b86-4a0e-8d8c-1d1f0a3b7a9e"` // The user owning the wallet
	Name    string    `json:"name" example:"GCash"`                                                      // Name of the wallet, unique per owner
	Type    string    `json:"type" example:"E-Wallet"`                                                   // Free form wallet type
	Note    string    `json:"note" example:"Daily spending"`                                             // A note
}

func (editable WalletEditable) model() models.Wallet {
	return models.Wallet{
		OwnerID: editable.OwnerID,
		Name:    editable.Name,
		Type:    editable.Type,
		Note:    editable.Note,
	}
}

type WalletLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/wallets/0b7d2f0e-8e1c-4f3b-9d7a-5f2c8a6e1b3d"`             // The wallet itself
	Balance  string `json:"balance" example:"https://example.com/api/v1/wallets/0b7d2f0e-8e1c-4f3b-9d7a-5f2c8a6e1b3d/balance"`  // Balance of the wallet
	Expenses string `json:"expenses" example:"https://example.com/api/v1/expenses?wallet=0b7d2f0e-8e1c-4f3b-9d7a-5f2c8a6e1b3d"` // Expenses paid from the wallet
	Incomes  string `json:"incomes" example:"https://example.com/api/v1/incomes?wallet=0b7d2f0e-8e1c-4f3b-9d7a-5f2c8a6e1b3d"`   // Incomes received in the wallet
}

type Wallet struct {
	models.Wallet
	Links WalletLinks `json:"links"`
}

func newWallet(c *gin.Context, model models.Wallet) Wallet {
	url := c.GetString(string(models.DBContextURL))

	return Wallet{
		Wallet: model,
		Links: WalletLinks{
			Self:     fmt.Sprintf("%s/v1/wallets/%s", url, model.ID),
			Balance:  fmt.Sprintf("%s/v1/wallets/%s/balance", url, model.ID),
			Expenses: fmt.Sprintf("%s/v1/expenses?owner=%s&wallet=%s", url, model.OwnerID, model.ID),
			Incomes:  fmt.Sprintf("%s/v1/incomes?owner=%s&wallet=%s", url, model.OwnerID, model.ID),
		},
	}
}

type WalletResponse struct {
	Data *Wallet `json:"data"` // Data for the wallet
}

type WalletListResponse struct {
	Data []Wallet `json:"data"` // List of wallets
}

type WalletBalanceResponse struct {
	Data models.WalletBalance `json:"data"` // Balance of the wallet
}

type WalletQueryFilter struct {
	OwnerID ez_uuid.UUID `form:"owner"`                    // By ID of the owner, required
	Name    string       `form:"name" filterField:"false"` // By name, case insensitive
	Type    string       `form:"type"`                     // By type
}
