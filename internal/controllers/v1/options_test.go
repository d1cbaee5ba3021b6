package v1_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsHeaderResources() {
	id := uuid.NewString()

	optionsHeaderTests := []struct {
		path     string
		response string
	}{
		{"/v1", "OPTIONS, GET"},
		{"/v1/users", "OPTIONS, POST"},
		{"/v1/users/" + id, "OPTIONS, GET"},
		{"/v1/users/" + id + "/budget-checkin", "OPTIONS, POST"},
		{"/v1/wallets", "OPTIONS, GET, POST"},
		{"/v1/wallets/" + id, "OPTIONS, GET, PATCH, DELETE"},
		{"/v1/wallets/" + id + "/balance", "OPTIONS, GET"},
		{"/v1/categories", "OPTIONS, GET, POST"},
		{"/v1/categories/" + id, "OPTIONS, GET, PATCH, DELETE"},
		{"/v1/expenses", "OPTIONS, GET, POST"},
		{"/v1/expenses/" + id, "OPTIONS, GET, PATCH, DELETE"},
		{"/v1/incomes", "OPTIONS, GET, POST"},
		{"/v1/incomes/total", "OPTIONS, GET"},
		{"/v1/incomes/" + id, "OPTIONS, GET, PATCH, DELETE"},
		{"/v1/transactions", "OPTIONS, GET"},
		{"/v1/transactions/" + id, "OPTIONS, GET"},
		{"/v1/match-rules", "OPTIONS, GET, POST"},
		{"/v1/match-rules/" + id, "OPTIONS, DELETE"},
		{"/v1/budget-rules", "OPTIONS, GET"},
		{"/v1/budgets", "OPTIONS, GET, POST"},
		{"/v1/budgets/" + id, "OPTIONS, GET, DELETE"},
		{"/v1/budgets/" + id + "/allocations", "OPTIONS, GET"},
		{"/v1/budgets/" + id + "/reallocation-candidates", "OPTIONS, GET"},
		{"/v1/budgets/" + id + "/reallocations", "OPTIONS, POST"},
		{"/v1/allocations", "OPTIONS, GET"},
		{"/v1/allocations/" + id, "OPTIONS, GET, PATCH"},
	}

	for _, tt := range optionsHeaderTests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := suite.request(http.MethodOptions, tt.path, "")

			assert.Equal(t, http.StatusNoContent, recorder.Code)
			assert.Equal(t, tt.response, recorder.Header().Get("allow"))
		})
	}
}
