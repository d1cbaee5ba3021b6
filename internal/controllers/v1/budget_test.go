package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/finsight/backend/internal/controllers/v1"
	"github.com/finsight/backend/internal/ledger"
	"github.com/finsight/backend/internal/models"
	"github.com/finsight/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCreateBudget() {
	user := suite.createTestUser()
	budget := suite.createTestBudget(user.ID)

	suite.Assert().Equal("May", budget.Name)
	suite.Assert().Equal(models.PeriodMonthly, budget.Period)
	suite.Assert().Equal(models.DefaultCurrency, budget.Currency)
	suite.Assert().Len(budget.Allocations, 4)
	suite.Assert().True(budget.Allocated.Equal(decimal.NewFromInt(10000)), budget.Allocated.String())
	suite.Assert().True(budget.Split.Needs.Equal(decimal.NewFromInt(5000)), budget.Split.Needs.String())
	suite.Assert().Equal(fmt.Sprintf("%s/v1/budgets/%s/reallocations", test.BaseURL, budget.ID), budget.Links.Reallocations)

	// Allocations are ordered by kind, then by category name
	suite.Assert().Equal("Food & Groceries", budget.Allocations[0].CategoryName)
	suite.Assert().Equal("Rent & Housing", budget.Allocations[1].CategoryName)
	suite.Assert().Equal(models.KindSavings, budget.Allocations[3].CategoryKind)

	suite.Require().Len(budget.Kinds, 3)
	suite.Assert().Equal(models.KindNeed, budget.Kinds[0].Kind)
	suite.Require().NotNil(budget.Kinds[0].Ceiling)
	suite.Assert().True(budget.Kinds[0].Ceiling.Equal(decimal.NewFromInt(5000)))
}

func (suite *TestSuiteStandard) TestCreateBudgetFails() {
	user := suite.createTestUser()
	food := suite.defaultCategory("Food & Groceries").ID
	rent := suite.defaultCategory("Rent & Housing").ID
	dining := suite.defaultCategory("Dining Out").ID
	emergency := suite.defaultCategory("Emergency Fund").ID
	salary := suite.defaultCategory("Salary").ID

	tests := []struct {
		name        string
		rule        models.BudgetRule
		allocations []v1.AllocationEditable
		status      int
		contains    string
	}{
		{
			"Sum below income",
			models.RuleCustom,
			[]v1.AllocationEditable{{CategoryID: food, Amount: decimal.RequireFromString("9999.98")}},
			http.StatusBadRequest,
			"the allocations sum up to",
		},
		{
			"Need ceiling exceeded",
			models.Rule503020,
			[]v1.AllocationEditable{
				{CategoryID: food, Amount: decimal.NewFromInt(3000)},
				{CategoryID: rent, Amount: decimal.NewFromInt(3000)},
				{CategoryID: dining, Amount: decimal.NewFromInt(2000)},
				{CategoryID: emergency, Amount: decimal.NewFromInt(2000)},
			},
			http.StatusUnprocessableEntity,
			"Need allocations sum up to",
		},
		{
			"Duplicate category",
			models.RuleCustom,
			[]v1.AllocationEditable{
				{CategoryID: food, Amount: decimal.NewFromInt(5000)},
				{CategoryID: food, Amount: decimal.NewFromInt(5000)},
			},
			http.StatusBadRequest,
			"allocated more than once",
		},
		{
			"Income category",
			models.RuleCustom,
			[]v1.AllocationEditable{{CategoryID: salary, Amount: decimal.NewFromInt(10000)}},
			http.StatusBadRequest,
			"only expense categories",
		},
		{
			"Kind mismatch",
			models.RuleCustom,
			[]v1.AllocationEditable{{CategoryID: food, CategoryKind: models.KindWant, Amount: decimal.NewFromInt(10000)}},
			http.StatusBadRequest,
			"not a Want",
		},
		{
			"Unknown category",
			models.RuleCustom,
			[]v1.AllocationEditable{{CategoryID: uuid.New(), Amount: decimal.NewFromInt(10000)}},
			http.StatusBadRequest,
			"does not exist",
		},
		{
			"No allocations",
			models.RuleCustom,
			[]v1.AllocationEditable{},
			http.StatusBadRequest,
			"at least one allocation",
		},
		{
			"Invalid rule",
			models.BudgetRule("60-40"),
			[]v1.AllocationEditable{{CategoryID: food, Amount: decimal.NewFromInt(10000)}},
			http.StatusBadRequest,
			"the rule must be one of",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := suite.request(http.MethodPost, "/v1/budgets", v1.BudgetEditable{
				OwnerID:     user.ID,
				TotalIncome: decimal.NewFromInt(10000),
				Rule:        tt.rule,
				Allocations: tt.allocations,
			})
			test.AssertHTTPStatus(suite.T(), tt.status, &recorder)
			suite.Assert().Contains(test.DecodeError(suite.T(), recorder.Body.Bytes()), tt.contains)
		})
	}

	// Nothing has been written
	recorder := suite.request(http.MethodGet, "/v1/budgets?owner="+user.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Empty(response.Data)
}

func (suite *TestSuiteStandard) TestCreateBudgetStrictBody() {
	user := suite.createTestUser()
	food := suite.defaultCategory("Food & Groceries").ID

	tests := []struct {
		name     string
		body     string
		status   int
		contains string
	}{
		{
			"Unknown top level field",
			`{"ownerId": "%[1]s", "totalIncome": "1000", "rule": "custom", "bogusField": 1, "allocations": [{"categoryId": "%[2]s", "amount": "1000"}]}`,
			http.StatusBadRequest,
			"bogusField",
		},
		{
			"Unknown allocation field",
			`{"ownerId": "%[1]s", "totalIncome": "1000", "rule": "custom", "allocations": [{"categoryId": "%[2]s", "amount": "1000", "unknownKey": true}]}`,
			http.StatusBadRequest,
			"unknownKey",
		},
		{
			"Total income missing",
			`{"ownerId": "%[1]s", "rule": "custom", "allocations": [{"categoryId": "%[2]s", "amount": "1000"}]}`,
			http.StatusBadRequest,
			"TotalIncome is required",
		},
		{
			"Allocation amount missing",
			`{"ownerId": "%[1]s", "totalIncome": "1000", "rule": "custom", "allocations": [{"categoryId": "%[2]s"}]}`,
			http.StatusBadRequest,
			"Amount is required",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := suite.request(http.MethodPost, "/v1/budgets", fmt.Sprintf(tt.body, user.ID, food))
			test.AssertHTTPStatus(suite.T(), tt.status, &recorder)
			suite.Assert().Contains(test.DecodeError(suite.T(), recorder.Body.Bytes()), tt.contains)
		})
	}

	recorder := suite.request(http.MethodGet, "/v1/budgets?owner="+user.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Empty(response.Data)
}

func (suite *TestSuiteStandard) TestBudgetSpend() {
	wallet := suite.createTestWallet(v1.WalletEditable{})
	budget := suite.createTestBudget(wallet.OwnerID)
	food := suite.allocationFor(budget, "Food & Groceries")

	suite.createTestExpense(v1.ExpenseEditable{OwnerID: wallet.OwnerID, WalletID: wallet.ID, CategoryID: &food.CategoryID, Amount: decimal.NewFromInt(1200)})
	suite.createTestExpense(v1.ExpenseEditable{OwnerID: wallet.OwnerID, WalletID: wallet.ID, CategoryID: &food.CategoryID, Amount: decimal.NewFromInt(1500)})

	recorder := suite.request(http.MethodGet, "/v1/budgets/"+budget.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	view := response.Data.Allocations[0]
	suite.Assert().Equal("Food & Groceries", view.CategoryName)
	suite.Assert().True(view.Spent.Equal(decimal.NewFromInt(2700)), view.Spent.String())
	suite.Assert().True(view.Remaining.Equal(decimal.NewFromInt(-200)), view.Remaining.String())
	suite.Assert().True(view.Available.IsZero(), view.Available.String())
	suite.Assert().True(response.Data.Spent.Equal(decimal.NewFromInt(2700)), response.Data.Spent.String())
}

func (suite *TestSuiteStandard) TestGetBudgets() {
	user := suite.createTestUser()
	suite.createTestBudget(user.ID)
	suite.createTestBudget(user.ID)
	suite.createTestBudget(suite.createTestUser().ID)

	recorder := suite.request(http.MethodGet, "/v1/budgets?owner="+user.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal(4, response.Data[0].AllocationCount)
	suite.Assert().True(response.Data[0].TotalAllocated.Equal(decimal.NewFromInt(10000)))

	recorder = suite.request(http.MethodGet, "/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestGetBudgetsByWallet() {
	wallet := suite.createTestWallet(v1.WalletEditable{})
	food := suite.defaultCategory("Food & Groceries").ID

	suite.createTestBudget(wallet.OwnerID)

	recorder := suite.request(http.MethodPost, "/v1/budgets", v1.BudgetEditable{
		OwnerID:     wallet.OwnerID,
		TotalIncome: decimal.NewFromInt(500),
		Rule:        models.RuleCustom,
		Allocations: []v1.AllocationEditable{{CategoryID: food, WalletID: &wallet.ID, Amount: decimal.NewFromInt(500)}},
	})
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	recorder = suite.request(http.MethodGet, fmt.Sprintf("/v1/budgets?owner=%s&wallet=%s", wallet.OwnerID, wallet.ID), "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal(1, response.Data[0].WalletCount)
}

func (suite *TestSuiteStandard) TestDeleteBudget() {
	user := suite.createTestUser()
	budget := suite.createTestBudget(user.ID)
	food := suite.allocationFor(budget, "Food & Groceries")

	recorder := suite.request(http.MethodDelete, "/v1/budgets/"+budget.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)

	recorder = suite.request(http.MethodGet, "/v1/budgets/"+budget.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)

	recorder = suite.request(http.MethodGet, "/v1/allocations/"+food.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)

	recorder = suite.request(http.MethodDelete, "/v1/budgets/"+budget.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}

func (suite *TestSuiteStandard) TestBudgetAllocations() {
	user := suite.createTestUser()
	budget := suite.createTestBudget(user.ID)

	recorder := suite.request(http.MethodGet, "/v1/budgets/"+budget.ID.String()+"/allocations", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.BudgetAllocationListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 4)

	recorder = suite.request(http.MethodGet, "/v1/budgets/"+uuid.NewString()+"/allocations", "")
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}

func (suite *TestSuiteStandard) TestReallocationCandidates() {
	user := suite.createTestUser()
	budget := suite.createTestBudget(user.ID)
	food := suite.allocationFor(budget, "Food & Groceries")

	recorder := suite.request(http.MethodGet, fmt.Sprintf("/v1/budgets/%s/reallocation-candidates?kind=Need&exclude=%s", budget.ID, food.ID), "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.ReallocationCandidatesResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data.InBudget, 1)
	suite.Assert().Equal("Rent & Housing", response.Data.InBudget[0].CategoryName)

	names := make([]string, 0, len(response.Data.NotInBudget))
	for _, c := range response.Data.NotInBudget {
		names = append(names, c.CategoryName)
		suite.Assert().Equal(models.KindNeed, c.Kind)
	}
	suite.Assert().Contains(names, "Transportation")
	suite.Assert().NotContains(names, "Food & Groceries")

	recorder = suite.request(http.MethodGet, fmt.Sprintf("/v1/budgets/%s/reallocation-candidates?kind=Luxury", budget.ID), "")
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestReallocate() {
	user := suite.createTestUser()
	budget := suite.createTestBudget(user.ID)
	food := suite.allocationFor(budget, "Food & Groceries")
	rent := suite.allocationFor(budget, "Rent & Housing")

	recorder := suite.request(http.MethodPost, "/v1/budgets/"+budget.ID.String()+"/reallocations", v1.ReallocationEditable{
		SourceAllocationID: food.ID,
		TargetAllocationID: &rent.ID,
		NewSourceAmount:    decimal.NewFromInt(2000),
		ExcessAmount:       decimal.NewFromInt(500),
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.ReallocationResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().False(response.Data.TargetCreated)
	suite.Assert().True(response.Data.Source.Amount.Equal(decimal.NewFromInt(2000)))
	suite.Assert().True(response.Data.Target.Amount.Equal(decimal.NewFromInt(3000)))

	suite.assertBudgetTotal(budget.ID, decimal.NewFromInt(10000))
}

func (suite *TestSuiteStandard) TestReallocateToNewCategory() {
	user := suite.createTestUser()
	budget := suite.createTestBudget(user.ID)
	food := suite.allocationFor(budget, "Food & Groceries")
	transportation := suite.defaultCategory("Transportation").ID

	recorder := suite.request(http.MethodPost, "/v1/budgets/"+budget.ID.String()+"/reallocations", v1.ReallocationEditable{
		SourceAllocationID: food.ID,
		TargetCategoryID:   &transportation,
		NewSourceAmount:    decimal.NewFromInt(2000),
		ExcessAmount:       decimal.NewFromInt(500),
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.ReallocationResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Data.TargetCreated)
	suite.Assert().Equal(transportation, response.Data.Target.CategoryID)
	suite.Assert().Equal(models.KindNeed, response.Data.Target.CategoryKind)

	recorder = suite.request(http.MethodGet, "/v1/budgets/"+budget.ID.String()+"/allocations", "")
	var allocations v1.BudgetAllocationListResponse
	test.DecodeResponse(suite.T(), &recorder, &allocations)
	suite.Assert().Len(allocations.Data, 5)

	suite.assertBudgetTotal(budget.ID, decimal.NewFromInt(10000))
}

func (suite *TestSuiteStandard) TestReallocateFails() {
	user := suite.createTestUser()
	budget := suite.createTestBudget(user.ID)
	other := suite.createTestBudget(user.ID)

	food := suite.allocationFor(budget, "Food & Groceries")
	rent := suite.allocationFor(budget, "Rent & Housing")
	emergency := suite.allocationFor(budget, "Emergency Fund")
	otherRent := suite.allocationFor(other, "Rent & Housing")
	dining := suite.defaultCategory("Dining Out").ID
	rentCategory := rent.CategoryID

	tests := []struct {
		name     string
		editable v1.ReallocationEditable
		status   int
		err      error
	}{
		{
			"Cross kind target allocation",
			v1.ReallocationEditable{SourceAllocationID: food.ID, TargetAllocationID: &emergency.ID, NewSourceAmount: decimal.NewFromInt(2000), ExcessAmount: decimal.NewFromInt(500)},
			http.StatusBadRequest,
			ledger.ErrInvalidTarget,
		},
		{
			"Cross kind target category",
			v1.ReallocationEditable{SourceAllocationID: food.ID, TargetCategoryID: &dining, NewSourceAmount: decimal.NewFromInt(2000), ExcessAmount: decimal.NewFromInt(500)},
			http.StatusBadRequest,
			ledger.ErrInvalidTarget,
		},
		{
			"Target category already in budget",
			v1.ReallocationEditable{SourceAllocationID: food.ID, TargetCategoryID: &rentCategory, NewSourceAmount: decimal.NewFromInt(2000), ExcessAmount: decimal.NewFromInt(500)},
			http.StatusBadRequest,
			ledger.ErrInvalidTarget,
		},
		{
			"Target in other budget",
			v1.ReallocationEditable{SourceAllocationID: food.ID, TargetAllocationID: &otherRent.ID, NewSourceAmount: decimal.NewFromInt(2000), ExcessAmount: decimal.NewFromInt(500)},
			http.StatusBadRequest,
			ledger.ErrInvalidTarget,
		},
		{
			"Excess does not match",
			v1.ReallocationEditable{SourceAllocationID: food.ID, TargetAllocationID: &rent.ID, NewSourceAmount: decimal.NewFromInt(2000), ExcessAmount: decimal.NewFromInt(400)},
			http.StatusBadRequest,
			ledger.ErrValidation,
		},
		{
			"Source not reduced",
			v1.ReallocationEditable{SourceAllocationID: food.ID, TargetAllocationID: &rent.ID, NewSourceAmount: decimal.NewFromInt(2600), ExcessAmount: decimal.NewFromInt(100)},
			http.StatusBadRequest,
			ledger.ErrValidation,
		},
		{
			"No target",
			v1.ReallocationEditable{SourceAllocationID: food.ID, NewSourceAmount: decimal.NewFromInt(2000), ExcessAmount: decimal.NewFromInt(500)},
			http.StatusBadRequest,
			ledger.ErrValidation,
		},
		{
			"Unknown source",
			v1.ReallocationEditable{SourceAllocationID: uuid.New(), TargetAllocationID: &rent.ID, NewSourceAmount: decimal.NewFromInt(2000), ExcessAmount: decimal.NewFromInt(500)},
			http.StatusNotFound,
			ledger.ErrNotFound,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := suite.request(http.MethodPost, "/v1/budgets/"+budget.ID.String()+"/reallocations", tt.editable)
			test.AssertHTTPStatus(suite.T(), tt.status, &recorder)
			suite.Assert().Contains(test.DecodeError(suite.T(), recorder.Body.Bytes()), tt.err.Error())
		})
	}

	// All failed reallocations left the budget unchanged
	recorder := suite.request(http.MethodGet, "/v1/allocations/"+food.ID.String(), "")
	var response v1.AllocationResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Data.Amount.Equal(decimal.NewFromInt(2500)), response.Data.Amount.String())
}

// assertBudgetTotal verifies the sum of all allocations of the budget.
func (suite *TestSuiteStandard) assertBudgetTotal(id uuid.UUID, expected decimal.Decimal) {
	recorder := suite.request(http.MethodGet, "/v1/budgets/"+id.String(), "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Data.Allocated.Equal(expected), "allocated %s, expected %s", response.Data.Allocated, expected)
}
