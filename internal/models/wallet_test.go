package models_test

import (
	"testing"
	"time"

	"github.com/finsight/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func decimalFromString(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func (suite *TestSuiteStandard) TestWalletName() {
	wallet := suite.createTestWallet(models.Wallet{Name: " GCash "})
	suite.Assert().Equal("GCash", wallet.Name)

	err := suite.db.Create(&models.Wallet{OwnerID: wallet.OwnerID, Name: "GCash"}).Error
	suite.Assert().ErrorIs(err, models.ErrWalletNameNotUnique)

	// Other users can use the same name
	_ = suite.createTestWallet(models.Wallet{Name: "GCash"})

	err = suite.db.Create(&models.Wallet{OwnerID: wallet.OwnerID, Name: " "}).Error
	suite.Assert().ErrorIs(err, models.ErrWalletNameEmpty)
}

func (suite *TestSuiteStandard) TestWalletBalance() {
	wallet := suite.createTestWallet(models.Wallet{})
	other := suite.createTestWallet(models.Wallet{OwnerID: wallet.OwnerID})

	balance, err := wallet.Balance(suite.db)
	suite.Require().Nil(err)
	suite.Assert().True(balance.Balance.IsZero())

	salary := suite.defaultCategory("Salary").ID
	suite.Require().Nil(suite.db.Create(&models.Income{
		OwnerID:    wallet.OwnerID,
		WalletID:   wallet.ID,
		CategoryID: &salary,
		Amount:     decimalFromString("1000"),
		Date:       time.Now(),
	}).Error)

	suite.createTestExpense(wallet, nil, decimalFromString("250.50"))
	suite.createTestExpense(other, nil, decimalFromString("99"))

	balance, err = wallet.Balance(suite.db)
	suite.Require().Nil(err)

	tests := []struct {
		name     string
		value    decimal.Decimal
		expected string
	}{
		{"Income", balance.Income, "1000"},
		{"Expenses", balance.Expenses, "250.50"},
		{"Balance", balance.Balance, "749.50"},
		{"Available", balance.Available, "749.50"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.value.Equal(decimalFromString(tt.expected)), "expected %s, got %s", tt.expected, tt.value)
		})
	}

	balance, err = other.Balance(suite.db)
	suite.Require().Nil(err)
	suite.Assert().True(balance.Balance.Equal(decimalFromString("-99")))
	suite.Assert().True(balance.Available.IsZero())
}
