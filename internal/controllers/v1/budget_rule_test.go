package v1_test

import (
	"net/http"

	v1 "github.com/finsight/backend/internal/controllers/v1"
	"github.com/finsight/backend/internal/models"
	"github.com/finsight/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestBudgetRules() {
	recorder := suite.request(http.MethodGet, "/v1/budget-rules", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.BudgetRuleListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 3)

	suite.Assert().Equal(models.Rule503020, response.Data[0].Rule)
	suite.Assert().Len(response.Data[0].Shares, 3)
	suite.Assert().Nil(response.Data[0].Split)

	suite.Assert().Equal(models.RuleCustom, response.Data[2].Rule)
	suite.Assert().Empty(response.Data[2].Shares)
}

func (suite *TestSuiteStandard) TestBudgetRulesSplit() {
	recorder := suite.request(http.MethodGet, "/v1/budget-rules?income=10000", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.BudgetRuleListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	split := response.Data[1].Split
	suite.Require().NotNil(split)
	suite.Assert().True(split.Needs.Equal(decimal.NewFromInt(7000)), split.Needs.String())
	suite.Assert().True(split.Wants.Equal(decimal.NewFromInt(2000)), split.Wants.String())
	suite.Assert().True(split.Savings.Equal(decimal.NewFromInt(1000)), split.Savings.String())
}

func (suite *TestSuiteStandard) TestBudgetRulesInvalidIncome() {
	for _, income := range []string{"abc", "-5", "0"} {
		recorder := suite.request(http.MethodGet, "/v1/budget-rules?income="+income, "")
		test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
	}
}
