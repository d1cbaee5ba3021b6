package models

import (
	"strings"

	"gorm.io/gorm"
)

// User owns wallets, categories, transactions and budgets.
//
// Authentication happens outside of this service, a user is
// the owner reference for all other resources and carries the
// answers of their budgeting check-in.
type User struct {
	DefaultModel
	Name  string `json:"name" example:"Juan dela Cruz"`                                      // Display name
	Email string `json:"email" gorm:"uniqueIndex:idx_user_email" example:"juan@example.com"` // Email address, unique

	// Answers of the budgeting check-in, empty until the user has done it
	Description        UserDescription    `json:"description" example:"employee"`
	BudgetingChallenge BudgetingChallenge `json:"budgetingChallenge" example:"overspending"`
	SpendingPriority   SpendingPriority   `json:"spendingPriority" example:"essentials"`
	ConfidenceLevel    ConfidenceLevel    `json:"confidenceLevel" example:"5"`
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))

	if u.Email == "" {
		return ErrUserEmailEmpty
	}

	switch {
	case u.Description != "" && !u.Description.Valid():
		return ErrUserDescription
	case u.BudgetingChallenge != "" && !u.BudgetingChallenge.Valid():
		return ErrUserChallenge
	case u.SpendingPriority != "" && !u.SpendingPriority.Valid():
		return ErrUserPriority
	case u.ConfidenceLevel != 0 && !u.ConfidenceLevel.Valid():
		return ErrUserConfidence
	}

	return nil
}
