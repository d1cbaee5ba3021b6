package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category classifies expenses and incomes.
//
// Categories without an owner are shared defaults visible to every user.
type Category struct {
	DefaultModel
	OwnerID         *uuid.UUID      `json:"ownerId" example:"3f0b5c4c-6b86-4a0e-8d8c-1d1f0a3b7a9e"` // The owning user, null for default categories
	Owner           *User           `json:"-"`
	Name            string          `json:"name" example:"Food & Groceries"`
	TransactionType TransactionType `json:"transactionType" example:"Expense"` // Expense or Income
	Kind            CategoryKind    `json:"kind" example:"Need"`               // Need, Want or Savings for expense categories, empty for income categories
	IsDefault       bool            `json:"isDefault" example:"false"`         // Default categories are shared and cannot be modified
}

// VisibleTo reports if the category can be used by the user.
func (c Category) VisibleTo(ownerID uuid.UUID) bool {
	return c.OwnerID == nil || *c.OwnerID == ownerID
}

func (c *Category) BeforeSave(tx *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return ErrCategoryNameEmpty
	}

	if !c.TransactionType.Valid() {
		return ErrTransactionTypeInvalid
	}

	if (c.TransactionType == TransactionExpense && !c.Kind.Valid()) || (c.TransactionType == TransactionIncome && c.Kind != "") {
		return ErrCategoryKindInvalid
	}

	// Names are unique per owner and transaction type, ignoring case.
	// Default categories count for every owner.
	q := tx.Model(&Category{}).
		Where("LOWER(name) = LOWER(?)", c.Name).
		Where("transaction_type = ?", c.TransactionType).
		Where("id != ?", c.ID)

	if c.OwnerID == nil {
		q = q.Where("owner_id IS NULL")
	} else {
		q = q.Where("owner_id = ? OR owner_id IS NULL", c.OwnerID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return ErrCategoryNameNotUnique
	}

	// Allocations store the kind they count against
	var allocated int64
	err := tx.Model(&Allocation{}).
		Where("category_id = ? AND category_kind != ?", c.ID, c.Kind).
		Count(&allocated).Error
	if err != nil {
		return err
	}

	if allocated > 0 {
		return ErrCategoryKindAllocated
	}

	return nil
}

// defaultCategories are created for all users during migration.
var defaultCategories = []Category{
	{Name: "Food & Groceries", TransactionType: TransactionExpense, Kind: KindNeed},
	{Name: "Rent & Housing", TransactionType: TransactionExpense, Kind: KindNeed},
	{Name: "Transportation", TransactionType: TransactionExpense, Kind: KindNeed},
	{Name: "Utilities", TransactionType: TransactionExpense, Kind: KindNeed},
	{Name: "Healthcare", TransactionType: TransactionExpense, Kind: KindNeed},
	{Name: "Dining Out", TransactionType: TransactionExpense, Kind: KindWant},
	{Name: "Entertainment", TransactionType: TransactionExpense, Kind: KindWant},
	{Name: "Shopping", TransactionType: TransactionExpense, Kind: KindWant},
	{Name: "Emergency Fund", TransactionType: TransactionExpense, Kind: KindSavings},
	{Name: "Investments", TransactionType: TransactionExpense, Kind: KindSavings},
	{Name: "Salary", TransactionType: TransactionIncome},
	{Name: "Allowance", TransactionType: TransactionIncome},
	{Name: "Business", TransactionType: TransactionIncome},
}

// seedDefaultCategories creates all default categories that do not exist yet.
func seedDefaultCategories(db *gorm.DB) error {
	for _, category := range defaultCategories {
		var count int64
		err := db.Model(&Category{}).
			Where("owner_id IS NULL AND name = ? AND transaction_type = ?", category.Name, category.TransactionType).
			Count(&count).Error
		if err != nil {
			return err
		}

		if count > 0 {
			continue
		}

		category.IsDefault = true
		if err := db.Create(&category).Error; err != nil {
			return err
		}
	}

	return nil
}
