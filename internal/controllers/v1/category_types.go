package v1

import (
	"github.com/finsight/backend/internal/models"
	ez_uuid "github.com/finsight/backend/internal/uuid"
	"github.com/google/uuid"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	OwnerID         uuid.UUID              `json:"ownerId" binding:"required" example:"3f0b5c4c-6b86-4a0e-8d8c-1d1f0a3b7a9e"` // The user owning the category
	Name            string                 `json:"name" example:"Pet Food"`                                                   // Name of the category, unique per owner and transaction type
	TransactionType models.TransactionType `json:"transactionType" example:"Expense"`                                         // Expense or Income
	Kind            models.CategoryKind    `json:"kind" example:"Need"`                                                       // Need, Want or Savings for expense categories
}

func (editable CategoryEditable) model() models.Category {
	ownerID := editable.OwnerID

	return models.Category{
		OwnerID:         &ownerID,
		Name:            editable.Name,
		TransactionType: editable.TransactionType,
		Kind:            editable.Kind,
	}
}

type CategoryResponse struct {
	Data *models.Category `json:"data"` // Data for the category
}

type CategoryListResponse struct {
	Data []models.Category `json:"data"` // List of categories
}

type CategoryQueryFilter struct {
	OwnerID         ez_uuid.UUID           `form:"owner" filterField:"false"` // Categories visible to the user. Without an owner, only default categories are returned
	TransactionType models.TransactionType `form:"type"`                      // By transaction type
	Kind            models.CategoryKind    `form:"kind"`                      // By kind
	IsDefault       bool                   `form:"default"`                   // Only default or only own categories
}
