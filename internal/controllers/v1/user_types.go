package v1

import "github.com/finsight/backend/internal/models"

// UserEditable represents all user configurable parameters
type UserEditable struct {
	Name  string `json:"name" example:"Juan dela Cruz"`                             // Display name
	Email string `json:"email" binding:"required,email" example:"juan@example.com"` // Email address, must be unique
}

func (editable UserEditable) model() models.User {
	return models.User{
		Name:  editable.Name,
		Email: editable.Email,
	}
}

type UserResponse struct {
	Data *models.User `json:"data"` // Data for the user
}

// UserCheckInEditable holds the answers of the budgeting check-in.
type UserCheckInEditable struct {
	Description        models.UserDescription    `json:"description" binding:"required" example:"employee"`            // student, employee or unemployed
	BudgetingChallenge models.BudgetingChallenge `json:"budgetingChallenge" binding:"required" example:"overspending"` // overspending, saving or tracking
	SpendingPriority   models.SpendingPriority   `json:"spendingPriority" binding:"required" example:"essentials"`     // essentials, wants or savings
	ConfidenceLevel    models.ConfidenceLevel    `json:"confidenceLevel" binding:"required" example:"5"`               // 1, 5 or 10
}
