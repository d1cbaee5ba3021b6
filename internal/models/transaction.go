package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is money spent from a wallet.
//
// Expenses are the ledger budget spend is calculated from.
type Expense struct {
	DefaultModel
	OwnerID    uuid.UUID       `json:"ownerId" example:"3f0b5c4c-6b86-4a0e-8d8c-1d1f0a3b7a9e"` // The user the expense belongs to
	Owner      User            `json:"-"`
	WalletID   uuid.UUID       `json:"walletId" example:"0b7d2f0e-8e1c-4f3b-9d7a-5f2c8a6e1b3d"` // The wallet the money was spent from
	Wallet     Wallet          `json:"-"`
	CategoryID *uuid.UUID      `json:"categoryId" example:"d4a1c3f2-2b5e-4c7d-8a9f-1e6b3d5c7a9b"` // The expense category, if any
	Category   *Category       `json:"-"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"350.75"` // The amount spent, always positive
	Date       time.Time       `json:"date" example:"2024-05-03T12:00:00Z"`               // When the money was spent
	Note       string          `json:"note" example:"Weekly groceries"`

	IsRecurring        bool    `json:"isRecurring" example:"true"`          // The expense repeats
	RecurringFrequency *Period `json:"recurringFrequency" example:"Weekly"` // How often a recurring expense repeats, null otherwise
}

func (e *Expense) BeforeSave(tx *gorm.DB) error {
	e.Note = strings.TrimSpace(e.Note)

	if !e.IsRecurring {
		e.RecurringFrequency = nil
	} else if e.RecurringFrequency == nil || !e.RecurringFrequency.Valid() {
		return ErrRecurringInvalid
	}

	return checkTransaction(tx, e.OwnerID, e.WalletID, e.Amount, e.CategoryID, TransactionExpense)
}

// Income is money received in a wallet.
type Income struct {
	DefaultModel
	OwnerID    uuid.UUID       `json:"ownerId" example:"3f0b5c4c-6b86-4a0e-8d8c-1d1f0a3b7a9e"`
	Owner      User            `json:"-"`
	WalletID   uuid.UUID       `json:"walletId" example:"0b7d2f0e-8e1c-4f3b-9d7a-5f2c8a6e1b3d"`
	Wallet     Wallet          `json:"-"`
	CategoryID *uuid.UUID      `json:"categoryId" example:"a5c3e1f7-9b2d-4e6a-8c1f-3d5b7a9e1c2f"`
	Category   *Category       `json:"-"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"25000"`
	Date       time.Time       `json:"date" example:"2024-05-01T00:00:00Z"`
	Note       string          `json:"note" example:"May salary"`
}

func (i *Income) BeforeSave(tx *gorm.DB) error {
	i.Note = strings.TrimSpace(i.Note)
	return checkTransaction(tx, i.OwnerID, i.WalletID, i.Amount, i.CategoryID, TransactionIncome)
}

// checkTransaction verifies that the amount is positive, that the wallet
// belongs to the owner and that the category, if set, is visible to the
// owner and of the right transaction type.
func checkTransaction(tx *gorm.DB, ownerID, walletID uuid.UUID, amount decimal.Decimal, categoryID *uuid.UUID, transactionType TransactionType) error {
	if !amount.IsPositive() {
		return ErrAmountNotPositive
	}

	var wallet Wallet
	if err := tx.First(&wallet, "id = ?", walletID).Error; err != nil {
		return err
	}

	if wallet.OwnerID != ownerID {
		return ErrWalletOwnerNotMatching
	}

	if categoryID == nil {
		return nil
	}

	var category Category
	if err := tx.First(&category, "id = ?", categoryID).Error; err != nil {
		return err
	}

	if !category.VisibleTo(ownerID) {
		return ErrCategoryOwnerNotMatching
	}

	if category.TransactionType != transactionType {
		return ErrCategoryTransactionType
	}

	return nil
}
