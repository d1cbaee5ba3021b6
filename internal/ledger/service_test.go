package ledger_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/finsight/backend/internal/ledger"
	"github.com/finsight/backend/internal/models"
	"github.com/finsight/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCreateBudget() {
	user := suite.createUser("Create")
	need := suite.createCategory(user.ID, "Needs", models.KindNeed)
	want := suite.createCategory(user.ID, "Wants", models.KindWant)
	savings := suite.createCategory(user.ID, "Savings", models.KindSavings)

	id, err := suite.service.CreateBudget(context.Background(), ledger.BudgetCreate{
		OwnerID:     user.ID,
		TotalIncome: d("10000"),
		Rule:        models.Rule503020,
		Allocations: []ledger.AllocationCreate{
			{CategoryID: need.ID, CategoryKind: models.KindNeed, Amount: d("5000")},
			{CategoryID: want.ID, CategoryKind: models.KindWant, Amount: d("3000")},
			{CategoryID: savings.ID, CategoryKind: models.KindSavings, Amount: d("2000")},
		},
	})
	suite.Require().Nil(err)

	budget, err := suite.store.GetBudget(context.Background(), id)
	suite.Require().Nil(err)
	suite.Assert().Equal("50-30-20 Budget", budget.Name)
	suite.Assert().Equal(models.PeriodMonthly, budget.Period)
	suite.Assert().Equal(models.DefaultCurrency, budget.Currency)

	allocations, err := suite.service.Allocations(context.Background(), id)
	suite.Require().Nil(err)
	suite.Require().Len(allocations, 3)
	suite.Assert().Equal(models.KindNeed, allocations[0].CategoryKind)
	suite.Assert().Equal(models.KindWant, allocations[1].CategoryKind)
	suite.Assert().Equal(models.KindSavings, allocations[2].CategoryKind)

	view, err := suite.service.Budget(context.Background(), id)
	suite.Require().Nil(err)
	suite.assertAmount("5000", view.Allocations[0].Remaining)
	suite.assertAmount("5000", view.Allocations[0].Available)
	suite.assertAmount("0", view.Spent)
}

func (suite *TestSuiteStandard) TestCreateBudgetWithinTolerance() {
	user := suite.createUser("Tolerance")
	need := suite.createCategory(user.ID, "Needs", models.KindNeed)
	other := suite.createCategory(user.ID, "Other", models.KindWant)

	_, err := suite.service.CreateBudget(context.Background(), ledger.BudgetCreate{
		OwnerID:     user.ID,
		TotalIncome: d("1000"),
		Rule:        models.RuleCustom,
		Allocations: []ledger.AllocationCreate{
			{CategoryID: need.ID, Amount: d("600.005")},
			{CategoryID: other.ID, Amount: d("399.99")},
		},
	})
	suite.Assert().Nil(err)
}

func (suite *TestSuiteStandard) TestCreateBudgetFails() {
	user := suite.createUser("Fails")
	other := suite.createUser("Other")
	wallet := suite.createWallet(user.ID, "Bank")
	otherWallet := suite.createWallet(other.ID, "Foreign Bank")
	need := suite.createCategory(user.ID, "Needs", models.KindNeed)
	need2 := suite.createCategory(user.ID, "More Needs", models.KindNeed)
	want := suite.createCategory(user.ID, "Wants", models.KindWant)
	savings := suite.createCategory(user.ID, "Savings", models.KindSavings)
	foreign := suite.createCategory(other.ID, "Foreign", models.KindNeed)

	var salary models.Category
	suite.Require().Nil(suite.db.First(&salary, "name = ? AND owner_id IS NULL", "Salary").Error)

	valid := func() ledger.BudgetCreate {
		return ledger.BudgetCreate{
			OwnerID:     user.ID,
			TotalIncome: d("10000"),
			Rule:        models.Rule503020,
			Allocations: []ledger.AllocationCreate{
				{CategoryID: need.ID, Amount: d("5000")},
				{CategoryID: want.ID, Amount: d("3000")},
				{CategoryID: savings.ID, Amount: d("2000")},
			},
		}
	}

	tests := []struct {
		name   string
		modify func(*ledger.BudgetCreate)
		err    error
	}{
		{"Sum does not match income", func(b *ledger.BudgetCreate) { b.Allocations[2].Amount = d("1999.98") }, ledger.ErrValidation},
		{"Income zero", func(b *ledger.BudgetCreate) { b.TotalIncome = decimal.Zero }, ledger.ErrValidation},
		{"No owner", func(b *ledger.BudgetCreate) { b.OwnerID = uuid.Nil }, ledger.ErrValidation},
		{"No allocations", func(b *ledger.BudgetCreate) { b.Allocations = nil }, ledger.ErrValidation},
		{"Unknown rule", func(b *ledger.BudgetCreate) { b.Rule = "60-20-20" }, ledger.ErrValidation},
		{"Unknown period", func(b *ledger.BudgetCreate) { b.Period = "Daily" }, ledger.ErrValidation},
		{"Negative amount", func(b *ledger.BudgetCreate) { b.Allocations[0].Amount = d("-5000") }, ledger.ErrValidation},
		{"Missing category", func(b *ledger.BudgetCreate) { b.Allocations[0].CategoryID = uuid.Nil }, ledger.ErrValidation},
		{"Unknown category", func(b *ledger.BudgetCreate) { b.Allocations[0].CategoryID = uuid.New() }, ledger.ErrValidation},
		{"Category of other user", func(b *ledger.BudgetCreate) { b.Allocations[0].CategoryID = foreign.ID }, ledger.ErrValidation},
		{"Income category", func(b *ledger.BudgetCreate) { b.Allocations[0].CategoryID = salary.ID }, ledger.ErrValidation},
		{"Kind does not match category", func(b *ledger.BudgetCreate) { b.Allocations[0].CategoryKind = models.KindWant }, ledger.ErrValidation},
		{"Wallet of other user", func(b *ledger.BudgetCreate) { b.WalletID = &otherWallet.ID }, ledger.ErrValidation},
		{"Unknown wallet", func(b *ledger.BudgetCreate) { id := uuid.New(); b.Allocations[0].WalletID = &id }, ledger.ErrValidation},
		{"Allocation wallet differs from budget wallet", func(b *ledger.BudgetCreate) {
			b.WalletID = &wallet.ID
			b.Allocations[0].WalletID = &otherWallet.ID
		}, ledger.ErrValidation},
		{"Duplicate category", func(b *ledger.BudgetCreate) {
			b.Allocations[0].Amount = d("2500")
			b.Allocations = append(b.Allocations, ledger.AllocationCreate{CategoryID: need.ID, Amount: d("2500")})
		}, ledger.ErrValidation},
		{"Duplicate category, one wallet scoped", func(b *ledger.BudgetCreate) {
			b.Allocations[0].Amount = d("2500")
			b.Allocations = append(b.Allocations, ledger.AllocationCreate{CategoryID: need.ID, WalletID: &wallet.ID, Amount: d("2500")})
		}, ledger.ErrValidation},
		{"Need ceiling exceeded", func(b *ledger.BudgetCreate) {
			b.Allocations[0].Amount = d("5500")
			b.Allocations[1].Amount = d("2500")
		}, ledger.ErrBudgetExceeded},
		{"Second need exceeds ceiling", func(b *ledger.BudgetCreate) {
			b.Allocations[0].Amount = d("4000")
			b.Allocations[1].Amount = d("2000")
			b.Allocations[2].Amount = d("2000")
			b.Allocations = append(b.Allocations, ledger.AllocationCreate{CategoryID: need2.ID, Amount: d("2000")})
		}, ledger.ErrBudgetExceeded},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			create := valid()
			tt.modify(&create)

			_, err := suite.service.CreateBudget(context.Background(), create)
			suite.Assert().ErrorIs(err, tt.err)
		})
	}

	// Nothing has been written
	budgets, err := suite.store.ListBudgets(context.Background(), user.ID, nil)
	suite.Require().Nil(err)
	suite.Assert().Len(budgets, 0)
}

func (suite *TestSuiteStandard) TestCreateBudgetWalletScopes() {
	user := suite.createUser("Wallets")
	cash := suite.createWallet(user.ID, "Cash")
	bank := suite.createWallet(user.ID, "Bank")
	need := suite.createCategory(user.ID, "Needs", models.KindNeed)
	want := suite.createCategory(user.ID, "Wants", models.KindWant)

	id, err := suite.service.CreateBudget(context.Background(), ledger.BudgetCreate{
		OwnerID:     user.ID,
		Name:        "Split wallets",
		TotalIncome: d("1000"),
		Rule:        models.RuleCustom,
		Allocations: []ledger.AllocationCreate{
			{CategoryID: need.ID, WalletID: &cash.ID, Amount: d("300")},
			{CategoryID: need.ID, WalletID: &bank.ID, Amount: d("300")},
			{CategoryID: want.ID, Amount: d("400")},
		},
	})
	suite.Require().Nil(err)

	summaries, err := suite.service.Budgets(context.Background(), user.ID, nil)
	suite.Require().Nil(err)
	suite.Require().Len(summaries, 1)
	suite.Assert().Equal(3, summaries[0].AllocationCount)
	suite.Assert().Equal(2, summaries[0].WalletCount)
	suite.assertAmount("1000", summaries[0].TotalAllocated)

	// Filter by wallet
	summaries, err = suite.service.Budgets(context.Background(), user.ID, &cash.ID)
	suite.Require().Nil(err)
	suite.Require().Len(summaries, 1)
	suite.Assert().Equal(id, summaries[0].ID)

	other := suite.createWallet(user.ID, "Unused")
	summaries, err = suite.service.Budgets(context.Background(), user.ID, &other.ID)
	suite.Require().Nil(err)
	suite.Assert().Len(summaries, 0)

	view, err := suite.service.Budget(context.Background(), id)
	suite.Require().Nil(err)
	suite.Assert().Len(view.Wallets, 3)
	suite.Assert().Nil(view.Kinds[0].Ceiling, "custom budgets have no ceiling")
}

func (suite *TestSuiteStandard) TestEditAllocationDirect() {
	f := suite.createFixture()
	food := suite.allocationFor(f.budget.ID, f.food.ID)

	tests := []struct {
		name   string
		amount string
	}{
		{"Unchanged", "500"},
		{"Reduced within tolerance", "499.99"},
		{"Increased within tolerance", "500.00"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			result, err := suite.service.EditAllocation(context.Background(), food.ID, d(tt.amount))
			suite.Require().Nil(err)
			suite.Assert().Equal(ledger.EditCommitted, result.Status)
			suite.assertAmount(tt.amount, result.Allocation.Amount)
			suite.assertAmount(tt.amount, suite.allocationFor(f.budget.ID, f.food.ID).Amount)
		})
	}
}

func (suite *TestSuiteStandard) TestEditAllocationIncrease() {
	f := suite.createFixture()
	food := suite.allocationFor(f.budget.ID, f.food.ID)

	// Need is at its ceiling of 5000, one cent is within the tolerance
	result, err := suite.service.EditAllocation(context.Background(), food.ID, d("500.01"))
	suite.Require().Nil(err)
	suite.Assert().Equal(ledger.EditCommitted, result.Status)

	_, err = suite.service.EditAllocation(context.Background(), food.ID, d("501"))
	suite.Assert().ErrorIs(err, ledger.ErrBudgetExceeded)
	suite.assertAmount("500.01", suite.allocationFor(f.budget.ID, f.food.ID).Amount, "failed edit must not change the amount")
}

func (suite *TestSuiteStandard) TestEditAllocationCeilingBoundary() {
	tests := []struct {
		name   string
		amount string
		err    error
		need   string
	}{
		{"One cent over the ceiling", "500.01", nil, "5000.01"},
		{"Two cents over the ceiling", "500.02", ledger.ErrBudgetExceeded, "5000"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			f := suite.createFixture()
			food := suite.allocationFor(f.budget.ID, f.food.ID)

			_, err := suite.service.EditAllocation(context.Background(), food.ID, d(tt.amount))
			if tt.err == nil {
				suite.Require().Nil(err)
			} else {
				suite.Assert().ErrorIs(err, tt.err)
			}

			allocations, err := suite.store.ListAllocations(context.Background(), f.budget.ID)
			suite.Require().Nil(err)
			suite.assertAmount(tt.need, ledger.KindTotal(allocations, models.KindNeed, uuid.Nil))
		})
	}
}

func (suite *TestSuiteStandard) TestEditAllocationIncreaseCustom() {
	user := suite.createUser("Custom")
	need := suite.createCategory(user.ID, "Needs", models.KindNeed)
	want := suite.createCategory(user.ID, "Wants", models.KindWant)

	id, err := suite.service.CreateBudget(context.Background(), ledger.BudgetCreate{
		OwnerID:     user.ID,
		TotalIncome: d("1000"),
		Rule:        models.RuleCustom,
		Allocations: []ledger.AllocationCreate{
			{CategoryID: need.ID, Amount: d("900")},
			{CategoryID: want.ID, Amount: d("100")},
		},
	})
	suite.Require().Nil(err)

	// There is no kind ceiling, but the total income still limits the allocations
	_, err = suite.service.EditAllocation(context.Background(), suite.allocationFor(id, need.ID).ID, d("950"))
	suite.Assert().ErrorIs(err, ledger.ErrBudgetExceeded)
}

func (suite *TestSuiteStandard) TestEditAllocationPending() {
	f := suite.createFixture()
	food := suite.allocationFor(f.budget.ID, f.food.ID)

	result, err := suite.service.EditAllocation(context.Background(), food.ID, d("300"))
	suite.Require().Nil(err)
	suite.Assert().Equal(ledger.EditPending, result.Status)
	suite.assertAmount("200", result.Excess)
	suite.Assert().Equal(models.KindNeed, result.CategoryKind)

	// Nothing is stored until the excess is reallocated
	suite.assertAmount("500", suite.allocationFor(f.budget.ID, f.food.ID).Amount)
}

func (suite *TestSuiteStandard) TestEditAllocationFails() {
	f := suite.createFixture()
	food := suite.allocationFor(f.budget.ID, f.food.ID)

	_, err := suite.service.EditAllocation(context.Background(), food.ID, decimal.Zero)
	suite.Assert().ErrorIs(err, ledger.ErrValidation)

	_, err = suite.service.EditAllocation(context.Background(), uuid.New(), d("100"))
	suite.Assert().ErrorIs(err, ledger.ErrNotFound)
}

func (suite *TestSuiteStandard) TestReallocateToExistingAllocation() {
	f := suite.createFixture()
	food := suite.allocationFor(f.budget.ID, f.food.ID)
	transport := suite.allocationFor(f.budget.ID, f.transport.ID)

	result, err := suite.service.Reallocate(context.Background(), ledger.Reallocation{
		BudgetID:           f.budget.ID,
		SourceAllocationID: food.ID,
		TargetAllocationID: &transport.ID,
		NewSourceAmount:    d("300"),
		ExcessAmount:       d("200"),
	})
	suite.Require().Nil(err)
	suite.Assert().False(result.TargetCreated)
	suite.assertAmount("300", result.Source.Amount)
	suite.assertAmount("500", result.Target.Amount)

	suite.assertAmount("300", suite.allocationFor(f.budget.ID, f.food.ID).Amount)
	suite.assertAmount("500", suite.allocationFor(f.budget.ID, f.transport.ID).Amount)

	// The total is conserved
	allocations, err := suite.store.ListAllocations(context.Background(), f.budget.ID)
	suite.Require().Nil(err)
	suite.assertAmount("10000", ledger.Sum(allocations))
}

func (suite *TestSuiteStandard) TestReallocateWithBothTargets() {
	f := suite.createFixture()
	food := suite.allocationFor(f.budget.ID, f.food.ID)
	transport := suite.allocationFor(f.budget.ID, f.transport.ID)

	_, err := suite.service.Reallocate(context.Background(), ledger.Reallocation{
		BudgetID:           f.budget.ID,
		SourceAllocationID: food.ID,
		TargetAllocationID: &transport.ID,
		TargetCategoryID:   &f.rent.ID,
		NewSourceAmount:    d("300"),
		ExcessAmount:       d("200"),
	})
	suite.Assert().ErrorIs(err, ledger.ErrInvalidTarget, "the category must be the one of the target allocation")

	result, err := suite.service.Reallocate(context.Background(), ledger.Reallocation{
		BudgetID:           f.budget.ID,
		SourceAllocationID: food.ID,
		TargetAllocationID: &transport.ID,
		TargetCategoryID:   &f.transport.ID,
		NewSourceAmount:    d("300"),
		ExcessAmount:       d("200"),
	})
	suite.Require().Nil(err)
	suite.Assert().False(result.TargetCreated)
	suite.assertAmount("500", result.Target.Amount)
}

func (suite *TestSuiteStandard) TestReallocateToNewCategory() {
	f := suite.createFixture()
	food := suite.allocationFor(f.budget.ID, f.food.ID)

	result, err := suite.service.Reallocate(context.Background(), ledger.Reallocation{
		BudgetID:           f.budget.ID,
		SourceAllocationID: food.ID,
		TargetCategoryID:   &f.utilities.ID,
		NewSourceAmount:    d("300"),
		ExcessAmount:       d("200"),
	})
	suite.Require().Nil(err)
	suite.Assert().True(result.TargetCreated)

	created := suite.allocationFor(f.budget.ID, f.utilities.ID)
	suite.Assert().Equal(result.Target.ID, created.ID)
	suite.Assert().Equal(models.KindNeed, created.CategoryKind)
	suite.Assert().Nil(created.WalletID)
	suite.assertAmount("200", created.Amount)
	suite.assertAmount("300", suite.allocationFor(f.budget.ID, f.food.ID).Amount)

	allocations, err := suite.store.ListAllocations(context.Background(), f.budget.ID)
	suite.Require().Nil(err)
	suite.Assert().Len(allocations, 6)
	suite.assertAmount("10000", ledger.Sum(allocations))
}

func (suite *TestSuiteStandard) TestReallocateFails() {
	f := suite.createFixture()
	food := suite.allocationFor(f.budget.ID, f.food.ID)
	transport := suite.allocationFor(f.budget.ID, f.transport.ID)
	dining := suite.allocationFor(f.budget.ID, f.dining.ID)

	other := suite.createFixture()
	otherTransport := suite.allocationFor(other.budget.ID, other.transport.ID)

	var salary models.Category
	suite.Require().Nil(suite.db.First(&salary, "name = ? AND owner_id IS NULL", "Salary").Error)

	unknown := uuid.New()

	tests := []struct {
		name string
		r    ledger.Reallocation
		err  error
	}{
		{
			"Target of other kind",
			ledger.Reallocation{TargetAllocationID: &dining.ID, NewSourceAmount: d("300"), ExcessAmount: d("200")},
			ledger.ErrInvalidTarget,
		},
		{
			"Category of other kind",
			ledger.Reallocation{TargetCategoryID: &f.dining.ID, NewSourceAmount: d("300"), ExcessAmount: d("200")},
			ledger.ErrInvalidTarget,
		},
		{
			"Category of other user",
			ledger.Reallocation{TargetCategoryID: &other.utilities.ID, NewSourceAmount: d("300"), ExcessAmount: d("200")},
			ledger.ErrInvalidTarget,
		},
		{
			"Income category",
			ledger.Reallocation{TargetCategoryID: &salary.ID, NewSourceAmount: d("300"), ExcessAmount: d("200")},
			ledger.ErrInvalidTarget,
		},
		{
			"Category already in budget",
			ledger.Reallocation{TargetCategoryID: &f.transport.ID, NewSourceAmount: d("300"), ExcessAmount: d("200")},
			ledger.ErrInvalidTarget,
		},
		{
			"Target is source",
			ledger.Reallocation{TargetAllocationID: &food.ID, NewSourceAmount: d("300"), ExcessAmount: d("200")},
			ledger.ErrInvalidTarget,
		},
		{
			"Target in other budget",
			ledger.Reallocation{TargetAllocationID: &otherTransport.ID, NewSourceAmount: d("300"), ExcessAmount: d("200")},
			ledger.ErrInvalidTarget,
		},
		{
			"Target allocation and category differ",
			ledger.Reallocation{TargetAllocationID: &transport.ID, TargetCategoryID: &f.rent.ID, NewSourceAmount: d("300"), ExcessAmount: d("200")},
			ledger.ErrInvalidTarget,
		},
		{
			"Excess does not match reduction",
			ledger.Reallocation{TargetAllocationID: &transport.ID, NewSourceAmount: d("300"), ExcessAmount: d("150")},
			ledger.ErrValidation,
		},
		{
			"Not a reduction",
			ledger.Reallocation{TargetAllocationID: &transport.ID, NewSourceAmount: d("600"), ExcessAmount: d("100")},
			ledger.ErrValidation,
		},
		{
			"No target",
			ledger.Reallocation{NewSourceAmount: d("300"), ExcessAmount: d("200")},
			ledger.ErrValidation,
		},
		{
			"Zero source amount",
			ledger.Reallocation{TargetAllocationID: &transport.ID, NewSourceAmount: decimal.Zero, ExcessAmount: d("500")},
			ledger.ErrValidation,
		},
		{
			"Unknown target allocation",
			ledger.Reallocation{TargetAllocationID: &unknown, NewSourceAmount: d("300"), ExcessAmount: d("200")},
			ledger.ErrNotFound,
		},
		{
			"Unknown target category",
			ledger.Reallocation{TargetCategoryID: &unknown, NewSourceAmount: d("300"), ExcessAmount: d("200")},
			ledger.ErrNotFound,
		},
		{
			"Source in other budget",
			ledger.Reallocation{SourceAllocationID: otherTransport.ID, TargetAllocationID: &transport.ID, NewSourceAmount: d("100"), ExcessAmount: d("200")},
			ledger.ErrValidation,
		},
		{
			"Unknown budget",
			ledger.Reallocation{BudgetID: unknown, TargetAllocationID: &transport.ID, NewSourceAmount: d("300"), ExcessAmount: d("200")},
			ledger.ErrNotFound,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := tt.r
			if r.BudgetID == uuid.Nil {
				r.BudgetID = f.budget.ID
			}
			if r.SourceAllocationID == uuid.Nil {
				r.SourceAllocationID = food.ID
			}

			_, err := suite.service.Reallocate(context.Background(), r)
			suite.Assert().ErrorIs(err, tt.err)

			// Nothing changed
			suite.assertAmount("500", suite.allocationFor(f.budget.ID, f.food.ID).Amount)
			suite.assertAmount("300", suite.allocationFor(f.budget.ID, f.transport.ID).Amount)
			suite.assertAmount("3000", suite.allocationFor(f.budget.ID, f.dining.ID).Amount)
		})
	}
}

// failingStore fails every allocation insert.
type failingStore struct {
	ledger.Store
}

func (s failingStore) InsertAllocation(context.Context, uuid.UUID, uuid.UUID, *uuid.UUID, decimal.Decimal, models.CategoryKind) (uuid.UUID, error) {
	return uuid.Nil, fmt.Errorf("%w: disk full", ledger.ErrStorage)
}

func (s failingStore) Transaction(ctx context.Context, fn func(ledger.Store) error) error {
	return s.Store.Transaction(ctx, func(tx ledger.Store) error {
		return fn(failingStore{Store: tx})
	})
}

func (suite *TestSuiteStandard) TestReallocateRollsBack() {
	f := suite.createFixture()
	food := suite.allocationFor(f.budget.ID, f.food.ID)

	service := ledger.NewService(failingStore{Store: suite.store}, ledger.NewSpendAggregator(ledger.NewExpenseLedger(suite.db)))
	_, err := service.Reallocate(context.Background(), ledger.Reallocation{
		BudgetID:           f.budget.ID,
		SourceAllocationID: food.ID,
		TargetCategoryID:   &f.utilities.ID,
		NewSourceAmount:    d("300"),
		ExcessAmount:       d("200"),
	})
	suite.Assert().ErrorIs(err, ledger.ErrStorage)

	// The source reduction is rolled back
	suite.assertAmount("500", suite.allocationFor(f.budget.ID, f.food.ID).Amount)

	allocations, err := suite.store.ListAllocations(context.Background(), f.budget.ID)
	suite.Require().Nil(err)
	suite.Assert().Len(allocations, 5)
}

func (suite *TestSuiteStandard) TestDeleteBudget() {
	f := suite.createFixture()

	suite.Require().Nil(suite.service.DeleteBudget(context.Background(), f.budget.ID))

	allocations, err := suite.store.ListAllocations(context.Background(), f.budget.ID)
	suite.Require().Nil(err)
	suite.Assert().Len(allocations, 0)

	var count int64
	suite.Require().Nil(suite.db.Model(&models.Allocation{}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)

	_, err = suite.service.Budget(context.Background(), f.budget.ID)
	suite.Assert().ErrorIs(err, ledger.ErrNotFound)

	err = suite.service.DeleteBudget(context.Background(), f.budget.ID)
	suite.Assert().ErrorIs(err, ledger.ErrNotFound)
}

func (suite *TestSuiteStandard) TestBudgetView() {
	f := suite.createFixture()
	bank := suite.createWallet(f.user.ID, "Bank")

	suite.createExpense(f.user.ID, f.wallet.ID, f.food.ID, "200")
	suite.createExpense(f.user.ID, bank.ID, f.food.ID, "400.50")
	suite.createExpense(f.user.ID, f.wallet.ID, f.dining.ID, "1000")

	view, err := suite.service.Budget(context.Background(), f.budget.ID)
	suite.Require().Nil(err)

	suite.assertAmount("5000", view.Split.Needs)
	suite.assertAmount("10000", view.Allocated)
	suite.assertAmount("1600.50", view.Spent)
	suite.assertAmount("8399.50", view.Remaining)

	for _, a := range view.Allocations {
		if a.CategoryID == f.food.ID {
			suite.Assert().Equal("Groceries", a.CategoryName)
			suite.assertAmount("600.50", a.Spent)
			suite.assertAmount("-100.50", a.Remaining)
			suite.assertAmount("0", a.Available)
		}
	}

	suite.Require().Len(view.Kinds, 3)
	need := view.Kinds[0]
	suite.Assert().Equal(models.KindNeed, need.Kind)
	suite.Require().NotNil(need.Ceiling)
	suite.assertAmount("5000", *need.Ceiling)
	suite.assertAmount("50", *need.Share)
	suite.assertAmount("600.50", need.Spent)

	suite.Require().Len(view.Wallets, 1)
	suite.Assert().Nil(view.Wallets[0].WalletID)
	suite.Assert().Len(view.Wallets[0].AllocationIDs, 5)
}

func (suite *TestSuiteStandard) TestReallocationCandidates() {
	f := suite.createFixture()
	food := suite.allocationFor(f.budget.ID, f.food.ID)

	candidates, err := suite.service.ReallocationCandidates(context.Background(), f.budget.ID, models.KindNeed, food.ID)
	suite.Require().Nil(err)

	// In budget: all other Need allocations, alphabetically
	suite.Require().Len(candidates.InBudget, 2)
	suite.Assert().Equal("Apartment", candidates.InBudget[0].CategoryName)
	suite.Assert().Equal("Commute", candidates.InBudget[1].CategoryName)
	for _, c := range candidates.InBudget {
		suite.Assert().True(c.InBudget)
		suite.Assert().NotNil(c.AllocationID)
	}

	// Not in budget: the user's own and the default Need categories
	names := make([]string, 0)
	for _, c := range candidates.NotInBudget {
		suite.Assert().False(c.InBudget)
		suite.Assert().Equal(models.KindNeed, c.Kind)
		names = append(names, c.CategoryName)
	}
	suite.Assert().Contains(names, "Electricity")
	suite.Assert().Contains(names, "Food & Groceries")
	suite.Assert().NotContains(names, "Groceries", "the source category is in the budget")
	suite.Assert().NotContains(names, "Dining Out")
	suite.Assert().IsIncreasing(names)

	_, err = suite.service.ReallocationCandidates(context.Background(), f.budget.ID, "Luxury", food.ID)
	suite.Assert().ErrorIs(err, ledger.ErrValidation)

	_, err = suite.service.ReallocationCandidates(context.Background(), uuid.New(), models.KindNeed, food.ID)
	suite.Assert().ErrorIs(err, ledger.ErrNotFound)
}

func (suite *TestSuiteStandard) TestReallocationCandidatesExcludeOtherUsers() {
	f := suite.createFixture()
	other := suite.createUser("Other")
	suite.createCategory(other.ID, "Private", models.KindNeed)

	candidates, err := suite.service.ReallocationCandidates(context.Background(), f.budget.ID, models.KindNeed, uuid.Nil)
	suite.Require().Nil(err)
	suite.Assert().Len(candidates.InBudget, 3)

	for _, c := range candidates.NotInBudget {
		suite.Assert().NotEqual("Private", c.CategoryName)
	}
}

func (suite *TestSuiteStandard) TestCategoryBudgetInfo() {
	f := suite.createFixture()
	suite.createExpense(f.user.ID, f.wallet.ID, f.food.ID, "120")

	info, err := suite.service.CategoryBudgetInfo(context.Background(), f.user.ID, f.food.ID, nil)
	suite.Require().Nil(err)
	suite.Require().Len(info, 1)
	suite.Assert().Equal("50-30-20 Budget", info[0].BudgetName)
	suite.assertAmount("120", info[0].Spent)
	suite.assertAmount("380", info[0].Remaining)

	info, err = suite.service.CategoryBudgetInfo(context.Background(), f.user.ID, f.food.ID, &f.wallet.ID)
	suite.Require().Nil(err)
	suite.Assert().Len(info, 1, "unscoped allocations count for every wallet")

	info, err = suite.service.CategoryBudgetInfo(context.Background(), f.user.ID, f.utilities.ID, nil)
	suite.Require().Nil(err)
	suite.Assert().Len(info, 0)
}

func (suite *TestSuiteStandard) TestStorageError() {
	f := suite.createFixture()
	food := suite.allocationFor(f.budget.ID, f.food.ID)

	test.CloseDB(suite.T(), suite.db)

	_, err := suite.service.Budget(context.Background(), f.budget.ID)
	suite.Assert().ErrorIs(err, ledger.ErrStorage)

	_, err = suite.service.EditAllocation(context.Background(), food.ID, d("100"))
	suite.Assert().ErrorIs(err, ledger.ErrStorage)
}
