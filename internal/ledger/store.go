package ledger

import (
	"context"
	"strings"

	"github.com/finsight/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store persists budgets and their allocations.
//
// All methods return errors wrapping ErrValidation, ErrNotFound or ErrStorage.
type Store interface {
	// CreateBudgetWithAllocations creates the budget and all allocations atomically.
	CreateBudgetWithAllocations(ctx context.Context, budget *models.Budget, allocations []models.Allocation) (uuid.UUID, error)
	GetBudget(ctx context.Context, id uuid.UUID) (models.Budget, error)
	// ListBudgets lists the budgets of the owner, newest first. If walletID is set,
	// only budgets scoped to the wallet or with allocations for it are returned.
	ListBudgets(ctx context.Context, ownerID uuid.UUID, walletID *uuid.UUID) ([]models.Budget, error)
	GetAllocation(ctx context.Context, id uuid.UUID) (models.Allocation, error)
	// ListAllocations lists all allocations of the budget, ordered by kind
	// and category name.
	ListAllocations(ctx context.Context, budgetID uuid.UUID) ([]models.Allocation, error)
	// ListCategoryAllocations lists all allocations of the owner's budgets for the category.
	// If walletID is set, only allocations whose spend includes the wallet are returned.
	ListCategoryAllocations(ctx context.Context, ownerID, categoryID uuid.UUID, walletID *uuid.UUID) ([]models.Allocation, error)
	UpdateAllocationAmount(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error
	InsertAllocation(ctx context.Context, budgetID, categoryID uuid.UUID, walletID *uuid.UUID, amount decimal.Decimal, kind models.CategoryKind) (uuid.UUID, error)
	// DeleteBudget deletes the budget and all of its allocations.
	DeleteBudget(ctx context.Context, id uuid.UUID) error
	FindReallocationCandidates(ctx context.Context, budgetID uuid.UUID, kind models.CategoryKind, excludeAllocationID, ownerID uuid.UUID) (Candidates, error)
	GetCategory(ctx context.Context, id uuid.UUID) (models.Category, error)
	GetWallet(ctx context.Context, id uuid.UUID) (models.Wallet, error)
	// Transaction calls fn with a Store whose operations all run in one
	// transaction. The transaction is committed if fn returns nil.
	Transaction(ctx context.Context, fn func(Store) error) error
}

// Candidate is a possible target for a reallocation.
type Candidate struct {
	CategoryID   uuid.UUID           `json:"categoryId" example:"d4a1c3f2-2b5e-4c7d-8a9f-1e6b3d5c7a9b"`
	CategoryName string              `json:"categoryName" example:"Transportation"`
	Kind         models.CategoryKind `json:"kind" example:"Need"`
	InBudget     bool                `json:"inBudget" example:"true"`                                     // If the category already has an allocation in the budget
	AllocationID *uuid.UUID          `json:"allocationId" example:"8b2d4f6a-1c3e-4a5b-9d7f-2e4c6a8b1d3f"` // The allocation, if the category is in the budget
	WalletID     *uuid.UUID          `json:"walletId" example:"0b7d2f0e-8e1c-4f3b-9d7a-5f2c8a6e1b3d"`     // Wallet scope of the allocation
	Amount       decimal.Decimal     `json:"amount" example:"1500"`                                       // Allocated amount, zero for categories not in the budget
}

// Candidates are all reallocation targets, grouped by whether they are
// already part of the budget. Both lists are ordered by category name.
type Candidates struct {
	InBudget    []Candidate `json:"inBudget"`
	NotInBudget []Candidate `json:"notInBudget"`
}

// GormStore implements Store with gorm.
type GormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) CreateBudgetWithAllocations(ctx context.Context, budget *models.Budget, allocations []models.Allocation) (uuid.UUID, error) {
	if len(allocations) == 0 {
		return uuid.Nil, validationError("a budget needs at least one allocation")
	}

	for _, a := range allocations {
		if a.CategoryID == uuid.Nil {
			return uuid.Nil, validationError("every allocation needs a category")
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(budget).Error; err != nil {
			return err
		}

		for i := range allocations {
			allocations[i].BudgetID = budget.ID
			if err := tx.Omit(clause.Associations).Create(&allocations[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return uuid.Nil, storeError(err)
	}

	return budget.ID, nil
}

func (s *GormStore) GetBudget(ctx context.Context, id uuid.UUID) (models.Budget, error) {
	var budget models.Budget
	err := s.db.WithContext(ctx).Preload("Wallet").First(&budget, "id = ?", id).Error
	return budget, storeError(err)
}

func (s *GormStore) ListBudgets(ctx context.Context, ownerID uuid.UUID, walletID *uuid.UUID) ([]models.Budget, error) {
	q := s.db.WithContext(ctx).
		Preload("Wallet").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC")

	if walletID != nil {
		q = q.Where("(wallet_id = ? OR id IN (?))", walletID,
			s.db.WithContext(ctx).Model(&models.Allocation{}).Select("budget_id").Where("wallet_id = ?", walletID))
	}

	budgets := make([]models.Budget, 0)
	err := q.Find(&budgets).Error
	return budgets, storeError(err)
}

func (s *GormStore) GetAllocation(ctx context.Context, id uuid.UUID) (models.Allocation, error) {
	var allocation models.Allocation
	err := s.db.WithContext(ctx).
		Preload("Category").
		Preload("Wallet").
		First(&allocation, "id = ?", id).Error
	return allocation, storeError(err)
}

func (s *GormStore) ListAllocations(ctx context.Context, budgetID uuid.UUID) ([]models.Allocation, error) {
	allocations := make([]models.Allocation, 0)
	err := s.db.WithContext(ctx).
		Preload("Category").
		Preload("Wallet").
		Where("budget_id = ?", budgetID).
		Find(&allocations).Error
	if err != nil {
		return nil, storeError(err)
	}

	sortAllocations(allocations)
	return allocations, nil
}

func (s *GormStore) ListCategoryAllocations(ctx context.Context, ownerID, categoryID uuid.UUID, walletID *uuid.UUID) ([]models.Allocation, error) {
	q := s.db.WithContext(ctx).
		Preload("Category").
		Preload("Wallet").
		Joins("JOIN budgets ON budgets.id = budget_allocations.budget_id").
		Where("budgets.owner_id = ?", ownerID).
		Where("budget_allocations.category_id = ?", categoryID).
		Order("budgets.created_at DESC")

	if walletID != nil {
		q = q.Where("(budget_allocations.wallet_id = ? OR (budget_allocations.wallet_id IS NULL AND (budgets.wallet_id = ? OR budgets.wallet_id IS NULL)))", walletID, walletID)
	}

	allocations := make([]models.Allocation, 0)
	err := q.Find(&allocations).Error
	return allocations, storeError(err)
}

func (s *GormStore) UpdateAllocationAmount(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return validationError("the allocated amount must be positive")
	}

	var allocation models.Allocation
	db := s.db.WithContext(ctx)
	if err := db.First(&allocation, "id = ?", id).Error; err != nil {
		return storeError(err)
	}

	return storeError(db.Model(&allocation).Update("amount", amount).Error)
}

func (s *GormStore) InsertAllocation(ctx context.Context, budgetID, categoryID uuid.UUID, walletID *uuid.UUID, amount decimal.Decimal, kind models.CategoryKind) (uuid.UUID, error) {
	allocation := models.Allocation{
		BudgetID:     budgetID,
		CategoryID:   categoryID,
		CategoryKind: kind,
		WalletID:     walletID,
		Amount:       amount,
	}

	err := s.db.WithContext(ctx).Omit(clause.Associations).Create(&allocation).Error
	if err != nil {
		return uuid.Nil, storeError(err)
	}

	return allocation.ID, nil
}

func (s *GormStore) DeleteBudget(ctx context.Context, id uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var budget models.Budget
		if err := tx.First(&budget, "id = ?", id).Error; err != nil {
			return err
		}

		if err := tx.Where("budget_id = ?", id).Delete(&models.Allocation{}).Error; err != nil {
			return err
		}

		return tx.Delete(&budget).Error
	})

	return storeError(err)
}

func (s *GormStore) FindReallocationCandidates(ctx context.Context, budgetID uuid.UUID, kind models.CategoryKind, excludeAllocationID, ownerID uuid.UUID) (Candidates, error) {
	db := s.db.WithContext(ctx)
	candidates := Candidates{
		InBudget:    make([]Candidate, 0),
		NotInBudget: make([]Candidate, 0),
	}

	var allocations []models.Allocation
	err := db.
		Preload("Category").
		Where("budget_id = ? AND category_kind = ? AND id != ?", budgetID, kind, excludeAllocationID).
		Find(&allocations).Error
	if err != nil {
		return Candidates{}, storeError(err)
	}
	sortAllocations(allocations)

	for _, a := range allocations {
		candidates.InBudget = append(candidates.InBudget, Candidate{
			CategoryID:   a.CategoryID,
			CategoryName: a.Category.Name,
			Kind:         a.CategoryKind,
			InBudget:     true,
			AllocationID: &a.ID,
			WalletID:     a.WalletID,
			Amount:       a.Amount,
		})
	}

	var categories []models.Category
	err = db.
		Where("transaction_type = ? AND kind = ?", models.TransactionExpense, kind).
		Where("(owner_id = ? OR owner_id IS NULL)", ownerID).
		Where("id NOT IN (?)", s.db.WithContext(ctx).Model(&models.Allocation{}).Select("category_id").Where("budget_id = ?", budgetID)).
		Order("name ASC").
		Find(&categories).Error
	if err != nil {
		return Candidates{}, storeError(err)
	}

	for _, c := range categories {
		candidates.NotInBudget = append(candidates.NotInBudget, Candidate{
			CategoryID:   c.ID,
			CategoryName: c.Name,
			Kind:         c.Kind,
			Amount:       decimal.Zero,
		})
	}

	return candidates, nil
}

func (s *GormStore) GetCategory(ctx context.Context, id uuid.UUID) (models.Category, error) {
	var category models.Category
	err := s.db.WithContext(ctx).First(&category, "id = ?", id).Error
	return category, storeError(err)
}

func (s *GormStore) GetWallet(ctx context.Context, id uuid.UUID) (models.Wallet, error) {
	var wallet models.Wallet
	err := s.db.WithContext(ctx).First(&wallet, "id = ?", id).Error
	return wallet, storeError(err)
}

func (s *GormStore) Transaction(ctx context.Context, fn func(Store) error) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})

	return storeError(err)
}

// sortAllocations sorts allocations by kind (Need, Want, Savings), then by category name.
// Category must be loaded.
func sortAllocations(allocations []models.Allocation) {
	slices.SortStableFunc(allocations, func(a, b models.Allocation) int {
		if ka, kb := slices.Index(models.CategoryKinds, a.CategoryKind), slices.Index(models.CategoryKinds, b.CategoryKind); ka != kb {
			return ka - kb
		}

		return strings.Compare(a.Category.Name, b.Category.Name)
	})
}
