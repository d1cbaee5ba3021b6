package v1_test

import (
	"fmt"
	"net/http"
	"time"

	v1 "github.com/finsight/backend/internal/controllers/v1"
	"github.com/finsight/backend/internal/models"
	"github.com/finsight/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestExpenses() {
	wallet := suite.createTestWallet(v1.WalletEditable{})
	food := suite.defaultCategory("Food & Groceries").ID
	dining := suite.defaultCategory("Dining Out").ID

	may := time.Date(2024, 5, 3, 12, 0, 0, 0, time.UTC)
	june := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	suite.createTestExpense(v1.ExpenseEditable{OwnerID: wallet.OwnerID, WalletID: wallet.ID, CategoryID: &food, Amount: decimal.NewFromInt(350), Date: may, Note: "Weekly groceries"})
	suite.createTestExpense(v1.ExpenseEditable{OwnerID: wallet.OwnerID, WalletID: wallet.ID, CategoryID: &dining, Amount: decimal.NewFromInt(800), Date: may, Note: "Birthday dinner"})
	suite.createTestExpense(v1.ExpenseEditable{OwnerID: wallet.OwnerID, WalletID: wallet.ID, CategoryID: &food, Amount: decimal.NewFromInt(420), Date: june, Note: "Groceries"})

	tests := []struct {
		name  string
		query string
		count int
		total int64
	}{
		{"All", "", 3, 3},
		{"By category", fmt.Sprintf("&category=%s", food), 2, 2},
		{"From date", "&fromDate=2024-06-01", 1, 1},
		{"Until date, inclusive", "&untilDate=2024-05-03", 2, 2},
		{"Note", "&note=roceries", 2, 2},
		{"Limited", "&limit=1", 1, 3},
		{"Offset", "&offset=2", 1, 3},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := suite.request(http.MethodGet, fmt.Sprintf("/v1/expenses?owner=%s%s", wallet.OwnerID, tt.query), "")
			test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

			var response v1.ExpenseListResponse
			test.DecodeResponse(suite.T(), &recorder, &response)
			suite.Assert().Len(response.Data, tt.count)
			suite.Assert().Equal(tt.count, response.Pagination.Count)
			suite.Assert().Equal(tt.total, response.Pagination.Total)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesNewestFirst() {
	wallet := suite.createTestWallet(v1.WalletEditable{})

	suite.createTestExpense(v1.ExpenseEditable{OwnerID: wallet.OwnerID, WalletID: wallet.ID, Amount: decimal.NewFromInt(1), Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)})
	suite.createTestExpense(v1.ExpenseEditable{OwnerID: wallet.OwnerID, WalletID: wallet.ID, Amount: decimal.NewFromInt(2), Date: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)})

	recorder := suite.request(http.MethodGet, "/v1/expenses?owner="+wallet.OwnerID.String(), "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().True(response.Data[0].Amount.Equal(decimal.NewFromInt(2)))
}

func (suite *TestSuiteStandard) TestCreateExpenseMatchRules() {
	wallet := suite.createTestWallet(v1.WalletEditable{})
	transportation := suite.defaultCategory("Transportation").ID
	dining := suite.defaultCategory("Dining Out").ID

	for _, rule := range []v1.MatchRuleEditable{
		{OwnerID: wallet.OwnerID, Priority: 2, Match: "Grab*", CategoryID: transportation},
		{OwnerID: wallet.OwnerID, Priority: 1, Match: "GrabFood*", CategoryID: dining},
	} {
		recorder := suite.request(http.MethodPost, "/v1/match-rules", rule)
		test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)
	}

	food := suite.createTestExpense(v1.ExpenseEditable{OwnerID: wallet.OwnerID, WalletID: wallet.ID, Amount: decimal.NewFromInt(250), Note: "GrabFood Jollibee"})
	suite.Require().NotNil(food.CategoryID)
	suite.Assert().Equal(dining, *food.CategoryID, "the rule with the lower priority value applies first")

	ride := suite.createTestExpense(v1.ExpenseEditable{OwnerID: wallet.OwnerID, WalletID: wallet.ID, Amount: decimal.NewFromInt(180), Note: "GrabCar to office"})
	suite.Require().NotNil(ride.CategoryID)
	suite.Assert().Equal(transportation, *ride.CategoryID)

	other := suite.createTestExpense(v1.ExpenseEditable{OwnerID: wallet.OwnerID, WalletID: wallet.ID, Amount: decimal.NewFromInt(50), Note: "Jeepney"})
	suite.Assert().Nil(other.CategoryID)

	explicit := suite.createTestExpense(v1.ExpenseEditable{OwnerID: wallet.OwnerID, WalletID: wallet.ID, CategoryID: &transportation, Amount: decimal.NewFromInt(90), Note: "GrabFood"})
	suite.Assert().Equal(transportation, *explicit.CategoryID, "rules only apply to expenses without category")
}

func (suite *TestSuiteStandard) TestCreateExpenseFails() {
	wallet := suite.createTestWallet(v1.WalletEditable{})
	foreignWallet := suite.createTestWallet(v1.WalletEditable{})
	salary := suite.defaultCategory("Salary").ID

	tests := []struct {
		name     string
		editable v1.ExpenseEditable
		err      error
	}{
		{"Amount zero", v1.ExpenseEditable{OwnerID: wallet.OwnerID, WalletID: wallet.ID}, models.ErrAmountNotPositive},
		{"Amount negative", v1.ExpenseEditable{OwnerID: wallet.OwnerID, WalletID: wallet.ID, Amount: decimal.NewFromInt(-5)}, models.ErrAmountNotPositive},
		{"Wallet of another user", v1.ExpenseEditable{OwnerID: wallet.OwnerID, WalletID: foreignWallet.ID, Amount: decimal.NewFromInt(5)}, models.ErrWalletOwnerNotMatching},
		{"Income category", v1.ExpenseEditable{OwnerID: wallet.OwnerID, WalletID: wallet.ID, CategoryID: &salary, Amount: decimal.NewFromInt(5)}, models.ErrCategoryTransactionType},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := suite.request(http.MethodPost, "/v1/expenses", tt.editable)
			test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
			suite.Assert().Equal(tt.err.Error(), test.DecodeError(suite.T(), recorder.Body.Bytes()))
		})
	}
}

func (suite *TestSuiteStandard) TestUpdateExpense() {
	wallet := suite.createTestWallet(v1.WalletEditable{})
	expense := suite.createTestExpense(v1.ExpenseEditable{OwnerID: wallet.OwnerID, WalletID: wallet.ID, Amount: decimal.NewFromInt(100), Note: "Lunch"})

	recorder := suite.request(http.MethodPatch, "/v1/expenses/"+expense.ID.String(), `{"amount": "120.50"}`)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Data.Amount.Equal(decimal.RequireFromString("120.50")))
	suite.Assert().Equal("Lunch", response.Data.Note)

	recorder = suite.request(http.MethodPatch, "/v1/expenses/"+expense.ID.String(), `{"amount": "0"}`)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestUpdateExpenseRecurring() {
	wallet := suite.createTestWallet(v1.WalletEditable{})
	expense := suite.createTestExpense(v1.ExpenseEditable{OwnerID: wallet.OwnerID, WalletID: wallet.ID, Amount: decimal.NewFromInt(1500), Note: "Internet"})
	suite.Assert().False(expense.IsRecurring)
	suite.Assert().Nil(expense.RecurringFrequency)

	// Amount is not part of the body and keeps its value
	recorder := suite.request(http.MethodPatch, "/v1/expenses/"+expense.ID.String(), `{"isRecurring": true, "recurringFrequency": "Monthly"}`)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Data.IsRecurring)
	suite.Require().NotNil(response.Data.RecurringFrequency)
	suite.Assert().Equal(models.PeriodMonthly, *response.Data.RecurringFrequency)
	suite.Assert().True(response.Data.Amount.Equal(decimal.NewFromInt(1500)), response.Data.Amount.String())

	recorder = suite.request(http.MethodPatch, "/v1/expenses/"+expense.ID.String(), `{"recurringFrequency": null}`)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
	suite.Assert().Equal(models.ErrRecurringInvalid.Error(), test.DecodeError(suite.T(), recorder.Body.Bytes()))

	recorder = suite.request(http.MethodPatch, "/v1/expenses/"+expense.ID.String(), `{"isRecurring": false}`)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Nil(response.Data.RecurringFrequency)
}

func (suite *TestSuiteStandard) TestDeleteExpense() {
	wallet := suite.createTestWallet(v1.WalletEditable{})
	expense := suite.createTestExpense(v1.ExpenseEditable{OwnerID: wallet.OwnerID, WalletID: wallet.ID, Amount: decimal.NewFromInt(100)})

	recorder := suite.request(http.MethodDelete, "/v1/expenses/"+expense.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)

	recorder = suite.request(http.MethodDelete, "/v1/expenses/"+expense.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}
