package v1

import (
	"github.com/finsight/backend/internal/models"
	ez_uuid "github.com/finsight/backend/internal/uuid"
	"github.com/google/uuid"
)

// MatchRuleEditable represents all user configurable parameters
type MatchRuleEditable struct {
	OwnerID    uuid.UUID `json:"ownerId" binding:"required" example:"3f0b5c4c-6b86-4a0e-8d8c-1d1f0a3b7a9e"`    // The user the rule belongs to
	Priority   uint      `json:"priority" example:"3"`                                                         // Rules with lower priority values are applied first
	Match      string    `json:"match" binding:"required" example:"Grab*"`                                     // Glob pattern applied to the note of expenses
	CategoryID uuid.UUID `json:"categoryId" binding:"required" example:"d4a1c3f2-2b5e-4c7d-8a9f-1e6b3d5c7a9b"` // The expense category to assign
}

func (editable MatchRuleEditable) model() models.MatchRule {
	return models.MatchRule{
		OwnerID:    editable.OwnerID,
		Priority:   editable.Priority,
		Match:      editable.Match,
		CategoryID: editable.CategoryID,
	}
}

type MatchRuleResponse struct {
	Data *models.MatchRule `json:"data"` // Data for the match rule
}

type MatchRuleListResponse struct {
	Data []models.MatchRule `json:"data"` // List of match rules
}

type MatchRuleQueryFilter struct {
	OwnerID    ez_uuid.UUID `form:"owner"`    // By ID of the owner, required
	CategoryID ez_uuid.UUID `form:"category"` // By ID of the category
}

func (f MatchRuleQueryFilter) model() models.MatchRule {
	return models.MatchRule{
		OwnerID:    f.OwnerID.UUID,
		CategoryID: f.CategoryID.UUID,
	}
}
