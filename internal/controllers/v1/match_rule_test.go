package v1_test

import (
	"net/http"

	v1 "github.com/finsight/backend/internal/controllers/v1"
	"github.com/finsight/backend/internal/models"
	"github.com/finsight/backend/test"
)

func (suite *TestSuiteStandard) TestMatchRules() {
	user := suite.createTestUser()
	transportation := suite.defaultCategory("Transportation").ID
	dining := suite.defaultCategory("Dining Out").ID

	for _, rule := range []v1.MatchRuleEditable{
		{OwnerID: user.ID, Priority: 5, Match: "Grab*", CategoryID: transportation},
		{OwnerID: user.ID, Priority: 1, Match: "GrabFood*", CategoryID: dining},
	} {
		recorder := suite.request(http.MethodPost, "/v1/match-rules", rule)
		test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)
	}

	recorder := suite.request(http.MethodGet, "/v1/match-rules?owner="+user.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.MatchRuleListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("GrabFood*", response.Data[0].Match)

	recorder = suite.request(http.MethodDelete, "/v1/match-rules/"+response.Data[0].ID.String(), "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)

	recorder = suite.request(http.MethodGet, "/v1/match-rules?owner="+user.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 1)
}

func (suite *TestSuiteStandard) TestCreateMatchRuleFails() {
	user := suite.createTestUser()
	salary := suite.defaultCategory("Salary").ID

	recorder := suite.request(http.MethodPost, "/v1/match-rules", v1.MatchRuleEditable{OwnerID: user.ID, Match: "ACME*", CategoryID: salary})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
	suite.Assert().Equal(models.ErrMatchRuleCategoryMismatch.Error(), test.DecodeError(suite.T(), recorder.Body.Bytes()))

	recorder = suite.request(http.MethodPost, "/v1/match-rules", map[string]any{"ownerId": user.ID, "categoryId": salary})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}
