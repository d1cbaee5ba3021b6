package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Wallet is a place money is kept in, e.g. cash or a bank account.
type Wallet struct {
	DefaultModel
	OwnerID uuid.UUID `json:"ownerId" gorm:"uniqueIndex:idx_wallet_owner_name" example:"3f0b5c4c-6b86-4a0e-8d8c-1d1f0a3b7a9e"` // The user owning the wallet
	Owner   User      `json:"-"`
	Name    string    `json:"name" gorm:"uniqueIndex:idx_wallet_owner_name" example:"GCash"` // Name of the wallet, unique per owner
	Type    string    `json:"type" example:"E-Wallet"`                                       // Free form wallet type, e.g. Cash, Bank, E-Wallet
	Note    string    `json:"note" example:"Daily spending"`
}

func (w *Wallet) BeforeSave(_ *gorm.DB) error {
	w.Name = strings.TrimSpace(w.Name)
	w.Type = strings.TrimSpace(w.Type)
	w.Note = strings.TrimSpace(w.Note)

	if w.Name == "" {
		return ErrWalletNameEmpty
	}

	return nil
}

// WalletBalance is the calculated balance of a wallet.
type WalletBalance struct {
	Income    decimal.Decimal `json:"income" example:"25000"`    // Sum of all incomes
	Expenses  decimal.Decimal `json:"expenses" example:"8200"`   // Sum of all expenses
	Balance   decimal.Decimal `json:"balance" example:"16800"`   // Income minus expenses
	Available decimal.Decimal `json:"available" example:"16800"` // Balance, but never below zero
}

// Balance calculates the balance of the wallet from all its transactions.
func (w Wallet) Balance(db *gorm.DB) (WalletBalance, error) {
	income, err := sumAmount(db, "incomes", w.ID)
	if err != nil {
		return WalletBalance{}, err
	}

	expenses, err := sumAmount(db, "expenses", w.ID)
	if err != nil {
		return WalletBalance{}, err
	}

	balance := income.Sub(expenses)
	return WalletBalance{
		Income:    income,
		Expenses:  expenses,
		Balance:   balance,
		Available: decimal.Max(balance, decimal.Zero),
	}, nil
}

func sumAmount(db *gorm.DB, table string, walletID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	err := db.
		Table(table).
		Select("SUM(amount)").
		Where("wallet_id = ?", walletID).
		Find(&sum).
		Error
	if err != nil {
		return decimal.Zero, err
	}

	// No transactions
	if !sum.Valid {
		return decimal.Zero, nil
	}

	return sum.Decimal, nil
}
