package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/finsight/backend/internal/controllers/v1"
	"github.com/finsight/backend/internal/models"
	"github.com/finsight/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestWallets() {
	user := suite.createTestUser()
	gcash := suite.createTestWallet(v1.WalletEditable{OwnerID: user.ID, Name: "GCash", Type: "E-Wallet"})
	suite.createTestWallet(v1.WalletEditable{OwnerID: user.ID, Name: "Cash", Type: "Cash"})

	// Wallet of another user
	suite.createTestWallet(v1.WalletEditable{Name: "Other"})

	suite.Assert().Equal(fmt.Sprintf("%s/v1/wallets/%s/balance", test.BaseURL, gcash.ID), gcash.Links.Balance)

	tests := []struct {
		name  string
		query string
		names []string
	}{
		{"All wallets, ordered by name", "", []string{"Cash", "GCash"}},
		{"By type", "&type=E-Wallet", []string{"GCash"}},
		{"By name, ignoring case", "&name=gcash", []string{"GCash"}},
		{"No match", "&type=Bank", []string{}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := suite.request(http.MethodGet, fmt.Sprintf("/v1/wallets?owner=%s%s", user.ID, tt.query), "")
			test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

			var response v1.WalletListResponse
			test.DecodeResponse(suite.T(), &recorder, &response)

			names := make([]string, 0, len(response.Data))
			for _, w := range response.Data {
				names = append(names, w.Name)
			}
			suite.Assert().Equal(tt.names, names)
		})
	}
}

func (suite *TestSuiteStandard) TestWalletsOwnerMissing() {
	recorder := suite.request(http.MethodGet, "/v1/wallets", "")
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
	suite.Assert().Contains(test.DecodeError(suite.T(), recorder.Body.Bytes()), "owner")
}

func (suite *TestSuiteStandard) TestWalletNameNotUnique() {
	wallet := suite.createTestWallet(v1.WalletEditable{Name: "GCash"})

	recorder := suite.request(http.MethodPost, "/v1/wallets", v1.WalletEditable{OwnerID: wallet.OwnerID, Name: "GCash"})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
	suite.Assert().Equal(models.ErrWalletNameNotUnique.Error(), test.DecodeError(suite.T(), recorder.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestUpdateWallet() {
	wallet := suite.createTestWallet(v1.WalletEditable{Name: "GCash", Type: "E-Wallet", Note: "Daily"})

	recorder := suite.request(http.MethodPatch, "/v1/wallets/"+wallet.ID.String(), map[string]any{"name": "Maya"})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.WalletResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Maya", response.Data.Name)
	suite.Assert().Equal("E-Wallet", response.Data.Type, "fields not in the body must not change")
	suite.Assert().Equal("Daily", response.Data.Note)
	suite.Assert().Equal(wallet.OwnerID, response.Data.OwnerID)
}

func (suite *TestSuiteStandard) TestWalletBalance() {
	wallet := suite.createTestWallet(v1.WalletEditable{})

	recorder := suite.request(http.MethodPost, "/v1/incomes", v1.IncomeEditable{OwnerID: wallet.OwnerID, WalletID: wallet.ID, Amount: decimal.NewFromInt(1000)})
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	suite.createTestExpense(v1.ExpenseEditable{OwnerID: wallet.OwnerID, WalletID: wallet.ID, Amount: decimal.NewFromInt(1500)})

	recorder = suite.request(http.MethodGet, "/v1/wallets/"+wallet.ID.String()+"/balance", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.WalletBalanceResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Data.Balance.Equal(decimal.NewFromInt(-500)), response.Data.Balance.String())
	suite.Assert().True(response.Data.Available.IsZero(), response.Data.Available.String())
}

func (suite *TestSuiteStandard) TestDeleteWallet() {
	wallet := suite.createTestWallet(v1.WalletEditable{})
	used := suite.createTestWallet(v1.WalletEditable{OwnerID: wallet.OwnerID})
	suite.createTestExpense(v1.ExpenseEditable{OwnerID: used.OwnerID, WalletID: used.ID, Amount: decimal.NewFromInt(10)})

	recorder := suite.request(http.MethodDelete, "/v1/wallets/"+used.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
	suite.Assert().Equal(models.ErrResourceInUse.Error(), test.DecodeError(suite.T(), recorder.Body.Bytes()))

	recorder = suite.request(http.MethodDelete, "/v1/wallets/"+wallet.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)

	recorder = suite.request(http.MethodGet, "/v1/wallets/"+wallet.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}
