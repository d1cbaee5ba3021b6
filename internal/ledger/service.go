package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/finsight/backend/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Service implements all budget operations.
type Service struct {
	store Store
	spend SpendAggregator
}

func NewService(store Store, spend SpendAggregator) *Service {
	return &Service{
		store: store,
		spend: spend,
	}
}

// CreateBudget validates the budget and creates it with all allocations.
//
// Nothing is written if validation fails.
func (s *Service) CreateBudget(ctx context.Context, create BudgetCreate) (uuid.UUID, error) {
	if create.OwnerID == uuid.Nil {
		return uuid.Nil, validationError("the budget needs an owner")
	}

	if !create.TotalIncome.IsPositive() {
		return uuid.Nil, validationError("the total income must be positive")
	}

	if !create.Rule.Valid() {
		return uuid.Nil, validationError("the rule must be one of %v", models.BudgetRules)
	}

	if create.Period == "" {
		create.Period = models.PeriodMonthly
	}

	if create.Currency == "" {
		create.Currency = models.DefaultCurrency
	}

	if !create.Period.Valid() {
		return uuid.Nil, validationError("the period must be one of %v", models.Periods)
	}

	if len(create.Allocations) == 0 {
		return uuid.Nil, validationError("a budget needs at least one allocation")
	}

	if create.WalletID != nil {
		if err := s.checkWallet(ctx, create.OwnerID, *create.WalletID); err != nil {
			return uuid.Nil, err
		}
	}

	allocations := make([]models.Allocation, 0, len(create.Allocations))
	amounts := make([]decimal.Decimal, 0, len(create.Allocations))
	for i, a := range create.Allocations {
		allocation, err := s.allocation(ctx, create, a)
		if err != nil {
			return uuid.Nil, fmt.Errorf("allocation %d: %w", i+1, err)
		}

		if err := checkDuplicate(allocations, allocation); err != nil {
			return uuid.Nil, fmt.Errorf("allocation %d: %w", i+1, err)
		}

		allocations = append(allocations, allocation)
		amounts = append(amounts, allocation.Amount)
	}

	if !ValidateSumsToIncome(amounts, create.TotalIncome) {
		return uuid.Nil, validationError("the allocations sum up to %s, but the total income is %s",
			formatAmount(create.Currency, decimal.Sum(decimal.Zero, amounts...)),
			formatAmount(create.Currency, create.TotalIncome))
	}

	for _, kind := range models.CategoryKinds {
		ceiling, ok := Ceiling(create.TotalIncome, create.Rule, kind)
		if !ok {
			continue
		}

		if total := KindTotal(allocations, kind, uuid.Nil); exceeds(total, ceiling) {
			return uuid.Nil, fmt.Errorf("%w: %s allocations sum up to %s, the %s rule allows %s", ErrBudgetExceeded,
				kind, formatAmount(create.Currency, total), create.Rule, formatAmount(create.Currency, ceiling))
		}
	}

	budget := models.Budget{
		OwnerID:     create.OwnerID,
		Name:        create.Name,
		TotalIncome: create.TotalIncome,
		Rule:        create.Rule,
		Period:      create.Period,
		WalletID:    create.WalletID,
		Currency:    create.Currency,
	}

	id, err := s.store.CreateBudgetWithAllocations(ctx, &budget, allocations)
	if err != nil {
		return uuid.Nil, err
	}

	log.Debug().Str("budget", id.String()).Int("allocations", len(allocations)).Msg("budget created")
	return id, nil
}

// allocation validates one allocation of a new budget and returns the model for it.
func (s *Service) allocation(ctx context.Context, budget BudgetCreate, create AllocationCreate) (models.Allocation, error) {
	if !create.Amount.IsPositive() {
		return models.Allocation{}, validationError("the amount must be positive")
	}

	if create.CategoryID == uuid.Nil {
		return models.Allocation{}, validationError("the category must be set")
	}

	category, err := s.store.GetCategory(ctx, create.CategoryID)
	if err != nil {
		return models.Allocation{}, asValidation(err, "the category %s does not exist", create.CategoryID)
	}

	if !category.VisibleTo(budget.OwnerID) {
		return models.Allocation{}, validationError("the category %s belongs to another user", create.CategoryID)
	}

	if category.TransactionType != models.TransactionExpense {
		return models.Allocation{}, validationError("only expense categories can be allocated, %s is an income category", category.Name)
	}

	kind := create.CategoryKind
	if kind == "" {
		kind = category.Kind
	}

	if !kind.Valid() {
		return models.Allocation{}, validationError("the category kind must be one of %v", models.CategoryKinds)
	}

	if kind != category.Kind {
		return models.Allocation{}, validationError("the category %s is a %s, not a %s", category.Name, category.Kind, kind)
	}

	walletID := create.WalletID
	if walletID != nil {
		if budget.WalletID != nil && *budget.WalletID != *walletID {
			return models.Allocation{}, validationError("the budget is scoped to wallet %s, the allocation cannot use wallet %s", budget.WalletID, walletID)
		}

		if err := s.checkWallet(ctx, budget.OwnerID, *walletID); err != nil {
			return models.Allocation{}, err
		}
	}

	return models.Allocation{
		CategoryID:   category.ID,
		Category:     category,
		CategoryKind: kind,
		WalletID:     walletID,
		Amount:       create.Amount,
	}, nil
}

// checkWallet verifies that the wallet exists and belongs to the owner.
func (s *Service) checkWallet(ctx context.Context, ownerID, walletID uuid.UUID) error {
	wallet, err := s.store.GetWallet(ctx, walletID)
	if err != nil {
		return asValidation(err, "the wallet %s does not exist", walletID)
	}

	if wallet.OwnerID != ownerID {
		return validationError("the wallet %s belongs to another user", walletID)
	}

	return nil
}

// checkDuplicate verifies that no allocation of the same category has an
// overlapping wallet scope. An allocation without wallet overlaps with
// all other allocations of its category.
func checkDuplicate(allocations []models.Allocation, allocation models.Allocation) error {
	for _, a := range allocations {
		if a.CategoryID != allocation.CategoryID {
			continue
		}

		if a.WalletID == nil || allocation.WalletID == nil || *a.WalletID == *allocation.WalletID {
			return validationError("the category %s is allocated more than once for the same wallet", allocation.Category.Name)
		}
	}

	return nil
}

// asValidation turns not found errors into validation errors.
func asValidation(err error, format string, args ...any) error {
	if errors.Is(err, ErrNotFound) {
		return validationError(format, args...)
	}

	return err
}

// EditAllocation changes the amount of an allocation.
//
// Increases and reductions within the tolerance are stored directly. Increases
// must stay within the rule ceiling of the kind and within the total income.
//
// A reduction by more than the tolerance is not stored. The result is pending
// and the excess must be moved with Reallocate.
func (s *Service) EditAllocation(ctx context.Context, id uuid.UUID, newAmount decimal.Decimal) (EditResult, error) {
	if !newAmount.IsPositive() {
		return EditResult{}, validationError("the allocated amount must be positive")
	}

	var result EditResult
	err := s.store.Transaction(ctx, func(store Store) error {
		allocation, err := store.GetAllocation(ctx, id)
		if err != nil {
			return err
		}

		result = EditResult{
			Allocation:   allocation,
			NewAmount:    newAmount,
			Excess:       decimal.Zero,
			CategoryKind: allocation.CategoryKind,
		}

		delta := allocation.Amount.Sub(newAmount)
		if delta.GreaterThan(Tolerance) {
			result.Status = EditPending
			result.Excess = delta
			return nil
		}

		if delta.IsNegative() {
			budget, err := store.GetBudget(ctx, allocation.BudgetID)
			if err != nil {
				return err
			}

			allocations, err := store.ListAllocations(ctx, budget.ID)
			if err != nil {
				return err
			}

			if err := checkIncrease(budget, allocations, allocation, newAmount); err != nil {
				return err
			}
		}

		if err := store.UpdateAllocationAmount(ctx, id, newAmount); err != nil {
			return err
		}

		result.Status = EditCommitted
		result.Allocation.Amount = newAmount
		return nil
	})
	if err != nil {
		return EditResult{}, err
	}

	return result, nil
}

// checkIncrease verifies that the allocation can be increased to amount.
func checkIncrease(budget models.Budget, allocations []models.Allocation, allocation models.Allocation, amount decimal.Decimal) error {
	kind := allocation.CategoryKind
	if ceiling, ok := Ceiling(budget.TotalIncome, budget.Rule, kind); ok {
		total := KindTotal(allocations, kind, allocation.ID).Add(amount)
		if exceeds(total, ceiling) {
			return fmt.Errorf("%w: %s allocations would sum up to %s, the %s rule allows %s", ErrBudgetExceeded,
				kind, formatAmount(budget.Currency, total), budget.Rule, formatAmount(budget.Currency, ceiling))
		}
	}

	total := Sum(allocations).Sub(allocation.Amount).Add(amount)
	if exceeds(total, budget.TotalIncome) {
		return fmt.Errorf("%w: all allocations would sum up to %s, the total income is %s", ErrBudgetExceeded,
			formatAmount(budget.Currency, total), formatAmount(budget.Currency, budget.TotalIncome))
	}

	return nil
}

// Reallocate reduces the source allocation and moves the excess to the target.
//
// The target is either an existing allocation of the same budget and kind, or a
// category of the same kind without an allocation in the budget. In the second
// case, a new allocation with the excess is created for the wallet of the source.
// Both changes are stored in one transaction.
func (s *Service) Reallocate(ctx context.Context, r Reallocation) (ReallocationResult, error) {
	if !r.NewSourceAmount.IsPositive() {
		return ReallocationResult{}, validationError("the new amount of the source allocation must be positive")
	}

	if !r.ExcessAmount.IsPositive() {
		return ReallocationResult{}, validationError("the excess amount must be positive")
	}

	if r.TargetAllocationID == nil && r.TargetCategoryID == nil {
		return ReallocationResult{}, validationError("a target allocation or target category must be set")
	}

	var result ReallocationResult
	err := s.store.Transaction(ctx, func(store Store) error {
		budget, err := store.GetBudget(ctx, r.BudgetID)
		if err != nil {
			return err
		}

		source, err := store.GetAllocation(ctx, r.SourceAllocationID)
		if err != nil {
			return err
		}

		if source.BudgetID != budget.ID {
			return validationError("the source allocation does not belong to budget %s", budget.ID)
		}

		moved := source.Amount.Sub(r.NewSourceAmount)
		if !moved.IsPositive() {
			return validationError("the new amount %s does not reduce the allocation of %s",
				formatAmount(budget.Currency, r.NewSourceAmount), formatAmount(budget.Currency, source.Amount))
		}

		if !Equal(moved, r.ExcessAmount) {
			return validationError("reducing the allocation from %s to %s frees %s, not %s",
				formatAmount(budget.Currency, source.Amount), formatAmount(budget.Currency, r.NewSourceAmount),
				formatAmount(budget.Currency, moved), formatAmount(budget.Currency, r.ExcessAmount))
		}

		target, created, err := reallocationTarget(ctx, store, budget, source, r)
		if err != nil {
			return err
		}

		if err := store.UpdateAllocationAmount(ctx, source.ID, r.NewSourceAmount); err != nil {
			return err
		}
		source.Amount = r.NewSourceAmount

		if created {
			id, err := store.InsertAllocation(ctx, budget.ID, target.CategoryID, source.WalletID, moved, source.CategoryKind)
			if err != nil {
				return err
			}

			target.ID = id
			target.BudgetID = budget.ID
			target.WalletID = source.WalletID
			target.CategoryKind = source.CategoryKind
			target.Amount = moved
		} else {
			target.Amount = target.Amount.Add(moved)
			if err := store.UpdateAllocationAmount(ctx, target.ID, target.Amount); err != nil {
				return err
			}
		}

		result = ReallocationResult{
			Source:        source,
			Target:        target,
			TargetCreated: created,
		}
		return nil
	})
	if err != nil {
		return ReallocationResult{}, err
	}

	log.Debug().
		Str("source", result.Source.ID.String()).
		Str("target", result.Target.ID.String()).
		Bool("created", result.TargetCreated).
		Msg("reallocated")

	return result, nil
}

// reallocationTarget resolves the target of a reallocation. If created is true, the
// returned allocation does not exist yet and only has its category set.
func reallocationTarget(ctx context.Context, store Store, budget models.Budget, source models.Allocation, r Reallocation) (target models.Allocation, created bool, err error) {
	if r.TargetAllocationID != nil {
		target, err := store.GetAllocation(ctx, *r.TargetAllocationID)
		if err != nil {
			return models.Allocation{}, false, err
		}

		switch {
		case target.BudgetID != budget.ID:
			return models.Allocation{}, false, targetError("the target allocation belongs to another budget")
		case target.ID == source.ID:
			return models.Allocation{}, false, targetError("source and target allocation must be different")
		case target.CategoryKind != source.CategoryKind:
			return models.Allocation{}, false, targetError("the target is a %s allocation, the source is a %s allocation", target.CategoryKind, source.CategoryKind)
		case r.TargetCategoryID != nil && *r.TargetCategoryID != target.CategoryID:
			return models.Allocation{}, false, targetError("the target allocation is not for the target category")
		}

		return target, false, nil
	}

	category, err := store.GetCategory(ctx, *r.TargetCategoryID)
	if err != nil {
		return models.Allocation{}, false, err
	}

	switch {
	case !category.VisibleTo(budget.OwnerID):
		return models.Allocation{}, false, targetError("the category %s belongs to another user", category.ID)
	case category.TransactionType != models.TransactionExpense:
		return models.Allocation{}, false, targetError("%s is not an expense category", category.Name)
	case category.Kind != source.CategoryKind:
		return models.Allocation{}, false, targetError("%s is a %s category, the source is a %s allocation", category.Name, category.Kind, source.CategoryKind)
	}

	allocations, err := store.ListAllocations(ctx, budget.ID)
	if err != nil {
		return models.Allocation{}, false, err
	}

	for _, a := range allocations {
		if a.CategoryID == category.ID {
			return models.Allocation{}, false, targetError("%s already has an allocation in this budget, use it as target allocation", category.Name)
		}
	}

	return models.Allocation{CategoryID: category.ID, Category: category}, true, nil
}

// DeleteBudget deletes the budget and all of its allocations.
func (s *Service) DeleteBudget(ctx context.Context, id uuid.UUID) error {
	return s.store.DeleteBudget(ctx, id)
}

// Allocations returns all allocations of the budget.
func (s *Service) Allocations(ctx context.Context, budgetID uuid.UUID) ([]models.Allocation, error) {
	if _, err := s.store.GetBudget(ctx, budgetID); err != nil {
		return nil, err
	}

	return s.store.ListAllocations(ctx, budgetID)
}

// Allocation returns one allocation with its spend.
func (s *Service) Allocation(ctx context.Context, id uuid.UUID) (AllocationView, error) {
	allocation, err := s.store.GetAllocation(ctx, id)
	if err != nil {
		return AllocationView{}, err
	}

	budget, err := s.store.GetBudget(ctx, allocation.BudgetID)
	if err != nil {
		return AllocationView{}, err
	}

	return s.view(ctx, budget, allocation)
}

// view calculates the spend for an allocation of the budget.
func (s *Service) view(ctx context.Context, budget models.Budget, allocation models.Allocation) (AllocationView, error) {
	walletID, walletName := spendScope(budget, allocation)

	spent, err := s.spend.SpentFor(ctx, budget.OwnerID, allocation.CategoryID, walletID)
	if err != nil {
		return AllocationView{}, err
	}

	return AllocationView{
		Allocation:   allocation,
		CategoryName: allocation.Category.Name,
		WalletName:   walletName,
		Spent:        spent,
		Remaining:    Remaining(allocation.Amount, spent),
		Available:    Available(allocation.Amount, spent),
	}, nil
}

// spendScope returns the wallet the spend of the allocation is counted for.
// The wallet of the allocation takes precedence over the wallet of the budget.
func spendScope(budget models.Budget, allocation models.Allocation) (*uuid.UUID, string) {
	if allocation.WalletID != nil {
		name := ""
		if allocation.Wallet != nil {
			name = allocation.Wallet.Name
		}
		return allocation.WalletID, name
	}

	if budget.WalletID != nil {
		name := ""
		if budget.Wallet != nil {
			name = budget.Wallet.Name
		}
		return budget.WalletID, name
	}

	return nil, ""
}

// Budget returns the budget with all allocations, their spend and the
// summaries per kind and wallet.
func (s *Service) Budget(ctx context.Context, id uuid.UUID) (BudgetView, error) {
	budget, err := s.store.GetBudget(ctx, id)
	if err != nil {
		return BudgetView{}, err
	}

	allocations, err := s.store.ListAllocations(ctx, id)
	if err != nil {
		return BudgetView{}, err
	}

	result := BudgetView{
		Budget:      budget,
		Split:       SplitByRule(budget.TotalIncome, budget.Rule),
		Allocated:   decimal.Zero,
		Spent:       decimal.Zero,
		Allocations: make([]AllocationView, 0, len(allocations)),
		Wallets:     make([]WalletGroup, 0),
	}

	kinds := make(map[models.CategoryKind]*KindSummary)
	for _, kind := range models.CategoryKinds {
		summary := KindSummary{Kind: kind, Allocated: decimal.Zero, Spent: decimal.Zero}
		if share, ok := Share(budget.Rule, kind); ok {
			ceiling, _ := Ceiling(budget.TotalIncome, budget.Rule, kind)
			summary.Share = &share
			summary.Ceiling = &ceiling
		}
		kinds[kind] = &summary
	}

	wallets := make(map[uuid.UUID]int)
	for _, allocation := range allocations {
		view, err := s.view(ctx, budget, allocation)
		if err != nil {
			return BudgetView{}, err
		}

		result.Allocations = append(result.Allocations, view)
		result.Allocated = result.Allocated.Add(view.Amount)
		result.Spent = result.Spent.Add(view.Spent)

		kind := kinds[view.CategoryKind]
		kind.Allocated = kind.Allocated.Add(view.Amount)
		kind.Spent = kind.Spent.Add(view.Spent)

		walletID, walletName := spendScope(budget, allocation)
		key := uuid.Nil
		if walletID != nil {
			key = *walletID
		}

		i, ok := wallets[key]
		if !ok {
			i = len(result.Wallets)
			wallets[key] = i
			result.Wallets = append(result.Wallets, WalletGroup{
				WalletID:      walletID,
				WalletName:    walletName,
				Allocated:     decimal.Zero,
				Spent:         decimal.Zero,
				AllocationIDs: make([]uuid.UUID, 0),
			})
		}

		group := &result.Wallets[i]
		group.Allocated = group.Allocated.Add(view.Amount)
		group.Spent = group.Spent.Add(view.Spent)
		group.AllocationIDs = append(group.AllocationIDs, view.ID)
	}

	for _, kind := range models.CategoryKinds {
		summary := kinds[kind]
		summary.Remaining = Remaining(summary.Allocated, summary.Spent)
		result.Kinds = append(result.Kinds, *summary)
	}

	result.Remaining = Remaining(result.Allocated, result.Spent)
	return result, nil
}

// Budgets returns summaries of all budgets of the owner.
func (s *Service) Budgets(ctx context.Context, ownerID uuid.UUID, walletID *uuid.UUID) ([]BudgetSummary, error) {
	budgets, err := s.store.ListBudgets(ctx, ownerID, walletID)
	if err != nil {
		return nil, err
	}

	summaries := make([]BudgetSummary, 0, len(budgets))
	for _, budget := range budgets {
		allocations, err := s.store.ListAllocations(ctx, budget.ID)
		if err != nil {
			return nil, err
		}

		wallets := make(map[uuid.UUID]bool)
		for _, a := range allocations {
			if a.WalletID != nil {
				wallets[*a.WalletID] = true
			}
		}

		summaries = append(summaries, BudgetSummary{
			Budget:          budget,
			AllocationCount: len(allocations),
			WalletCount:     len(wallets),
			TotalAllocated:  Sum(allocations),
		})
	}

	return summaries, nil
}

// ReallocationCandidates lists the possible targets for moving the excess of
// the excluded allocation.
func (s *Service) ReallocationCandidates(ctx context.Context, budgetID uuid.UUID, kind models.CategoryKind, excludeAllocationID uuid.UUID) (Candidates, error) {
	if !kind.Valid() {
		return Candidates{}, validationError("the category kind must be one of %v", models.CategoryKinds)
	}

	budget, err := s.store.GetBudget(ctx, budgetID)
	if err != nil {
		return Candidates{}, err
	}

	return s.store.FindReallocationCandidates(ctx, budgetID, kind, excludeAllocationID, budget.OwnerID)
}

// CategoryBudgetInfo returns all allocations of the owner's budgets for the
// category with their spend.
func (s *Service) CategoryBudgetInfo(ctx context.Context, ownerID, categoryID uuid.UUID, walletID *uuid.UUID) ([]CategoryAllocation, error) {
	allocations, err := s.store.ListCategoryAllocations(ctx, ownerID, categoryID, walletID)
	if err != nil {
		return nil, err
	}

	budgets := make(map[uuid.UUID]models.Budget)
	result := make([]CategoryAllocation, 0, len(allocations))
	for _, allocation := range allocations {
		budget, ok := budgets[allocation.BudgetID]
		if !ok {
			budget, err = s.store.GetBudget(ctx, allocation.BudgetID)
			if err != nil {
				return nil, err
			}
			budgets[budget.ID] = budget
		}

		view, err := s.view(ctx, budget, allocation)
		if err != nil {
			return nil, err
		}

		result = append(result, CategoryAllocation{
			AllocationView: view,
			BudgetName:     budget.Name,
			Period:         budget.Period,
		})
	}

	return result, nil
}
