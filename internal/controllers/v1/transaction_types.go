package v1

import (
	"time"

	"github.com/finsight/backend/internal/models"
	ez_uuid "github.com/finsight/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is an expense or an income as shown in the combined feed.
type Transaction struct {
	ID                 uuid.UUID              `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Type               models.TransactionType `json:"type" example:"Expense"` // Expense or Income
	OwnerID            uuid.UUID              `json:"ownerId" example:"3f0b5c4c-6b86-4a0e-8d8c-1d1f0a3b7a9e"`
	WalletID           uuid.UUID              `json:"walletId" example:"0b7d2f0e-8e1c-4f3b-9d7a-5f2c8a6e1b3d"`
	WalletName         string                 `json:"walletName" example:"GCash"`
	CategoryID         *uuid.UUID             `json:"categoryId" example:"d4a1c3f2-2b5e-4c7d-8a9f-1e6b3d5c7a9b"`
	CategoryName       string                 `json:"categoryName" example:"Food & Groceries"` // Empty for uncategorized transactions
	CategoryKind       models.CategoryKind    `json:"categoryKind" example:"Need"`             // Empty for incomes and uncategorized expenses
	Amount             decimal.Decimal        `json:"amount" swaggertype:"string" example:"350.75"`
	Date               time.Time              `json:"date" example:"2024-05-03T12:00:00Z"`
	Note               string                 `json:"note" example:"Weekly groceries"`
	IsRecurring        bool                   `json:"isRecurring" example:"false"`         // Only expenses can recur
	RecurringFrequency *models.Period         `json:"recurringFrequency" example:"Weekly"` // Null unless recurring
	Links              TransactionLinks       `json:"links"`

	createdAt time.Time
}

type TransactionLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/transactions/65392deb-5e92-4268-b114-297faad6cdce"` // The transaction in the feed
	Source string `json:"source" example:"https://example.com/api/v1/expenses/65392deb-5e92-4268-b114-297faad6cdce"`   // The expense or income
}

func expenseTransaction(c *gin.Context, e models.Expense) Transaction {
	t := Transaction{
		ID:                 e.ID,
		Type:               models.TransactionExpense,
		OwnerID:            e.OwnerID,
		WalletID:           e.WalletID,
		WalletName:         e.Wallet.Name,
		CategoryID:         e.CategoryID,
		Amount:             e.Amount,
		Date:               e.Date,
		Note:               e.Note,
		IsRecurring:        e.IsRecurring,
		RecurringFrequency: e.RecurringFrequency,
		Links:              transactionLinks(c, e.ID, "expenses"),
		createdAt:          e.CreatedAt,
	}

	if e.Category != nil {
		t.CategoryName = e.Category.Name
		t.CategoryKind = e.Category.Kind
	}

	return t
}

func incomeTransaction(c *gin.Context, i models.Income) Transaction {
	t := Transaction{
		ID:         i.ID,
		Type:       models.TransactionIncome,
		OwnerID:    i.OwnerID,
		WalletID:   i.WalletID,
		WalletName: i.Wallet.Name,
		CategoryID: i.CategoryID,
		Amount:     i.Amount,
		Date:       i.Date,
		Note:       i.Note,
		Links:      transactionLinks(c, i.ID, "incomes"),
		createdAt:  i.CreatedAt,
	}

	if i.Category != nil {
		t.CategoryName = i.Category.Name
	}

	return t
}

func transactionLinks(c *gin.Context, id uuid.UUID, source string) TransactionLinks {
	url := c.GetString(string(models.DBContextURL)) + "/v1/"

	return TransactionLinks{
		Self:   url + "transactions/" + id.String(),
		Source: url + source + "/" + id.String(),
	}
}

type TransactionResponse struct {
	Data *Transaction `json:"data"` // Data for the transaction
}

type TransactionListResponse struct {
	Data []Transaction `json:"data"` // Transactions, newest first
}

type TransactionQueryFilter struct {
	OwnerID  ez_uuid.UUID `form:"owner"`  // By ID of the owner, required
	WalletID ez_uuid.UUID `form:"wallet"` // By ID of the wallet
	Limit    uint         `form:"limit"`  // Maximum number of transactions to return, all if not set
}
