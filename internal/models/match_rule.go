package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// MatchRule assigns a category to expenses recorded without one.
//
// Match is a glob pattern applied to the note of the expense.
type MatchRule struct {
	DefaultModel
	OwnerID    uuid.UUID `json:"ownerId" example:"3f0b5c4c-6b86-4a0e-8d8c-1d1f0a3b7a9e"`
	Owner      User      `json:"-"`
	Priority   uint      `json:"priority" example:"3"`  // Rules with lower priority values are applied first
	Match      string    `json:"match" example:"Grab*"` // Glob pattern, case sensitive
	CategoryID uuid.UUID `json:"categoryId" example:"d4a1c3f2-2b5e-4c7d-8a9f-1e6b3d5c7a9b"`
	Category   Category  `json:"-"`
}

func (r *MatchRule) BeforeSave(tx *gorm.DB) error {
	r.Match = strings.TrimSpace(r.Match)
	if r.Match == "" {
		return ErrMatchRuleMatchEmpty
	}

	var category Category
	if err := tx.First(&category, "id = ?", r.CategoryID).Error; err != nil {
		return err
	}

	if category.TransactionType != TransactionExpense {
		return ErrMatchRuleCategoryMismatch
	}

	if !category.VisibleTo(r.OwnerID) {
		return ErrCategoryOwnerNotMatching
	}

	return nil
}

// MatchCategory returns the category of the first rule matching the note.
//
// Rules must be sorted by priority. If no rule matches, ok is false.
func MatchCategory(rules []MatchRule, note string) (categoryID uuid.UUID, ok bool) {
	for _, rule := range rules {
		if glob.Glob(rule.Match, note) {
			return rule.CategoryID, true
		}
	}

	return uuid.Nil, false
}
