package models_test

import (
	"time"

	"github.com/finsight/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestExpenseBeforeSave() {
	wallet := suite.createTestWallet(models.Wallet{})
	food := suite.defaultCategory("Food & Groceries").ID
	salary := suite.defaultCategory("Salary").ID
	unknown := uuid.New()

	tests := []struct {
		name       string
		amount     decimal.Decimal
		categoryID *uuid.UUID
		err        error
	}{
		{"Valid", decimalFromString("12.50"), &food, nil},
		{"Without category", decimalFromString("12.50"), nil, nil},
		{"Zero amount", decimal.Zero, &food, models.ErrAmountNotPositive},
		{"Negative amount", decimalFromString("-1"), &food, models.ErrAmountNotPositive},
		{"Income category", decimalFromString("12.50"), &salary, models.ErrCategoryTransactionType},
		{"Unknown category", decimalFromString("12.50"), &unknown, models.ErrResourceNotFound},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			err := suite.db.Create(&models.Expense{
				OwnerID:    wallet.OwnerID,
				WalletID:   wallet.ID,
				CategoryID: tt.categoryID,
				Amount:     tt.amount,
				Date:       time.Now(),
				Note:       "  Lunch ",
			}).Error
			suite.Assert().ErrorIs(err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestIncomeBeforeSave() {
	wallet := suite.createTestWallet(models.Wallet{})
	food := suite.defaultCategory("Food & Groceries").ID
	salary := suite.defaultCategory("Salary").ID

	income := models.Income{OwnerID: wallet.OwnerID, WalletID: wallet.ID, CategoryID: &salary, Amount: decimalFromString("5000"), Note: " May "}
	suite.Require().Nil(suite.db.Create(&income).Error)
	suite.Assert().Equal("May", income.Note)

	err := suite.db.Create(&models.Income{OwnerID: wallet.OwnerID, WalletID: wallet.ID, CategoryID: &food, Amount: decimalFromString("5000")}).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryTransactionType)

	other := suite.createTestWallet(models.Wallet{})
	err = suite.db.Create(&models.Income{OwnerID: wallet.OwnerID, WalletID: other.ID, CategoryID: &salary, Amount: decimalFromString("5000")}).Error
	suite.Assert().ErrorIs(err, models.ErrWalletOwnerNotMatching)
}

func (suite *TestSuiteStandard) TestExpenseRecurring() {
	wallet := suite.createTestWallet(models.Wallet{})
	weekly := models.PeriodWeekly
	daily := models.Period("Daily")

	tests := []struct {
		name      string
		recurring bool
		frequency *models.Period
		expected  *models.Period
		err       error
	}{
		{"Weekly", true, &weekly, &weekly, nil},
		{"Frequency missing", true, nil, nil, models.ErrRecurringInvalid},
		{"Unknown frequency", true, &daily, nil, models.ErrRecurringInvalid},
		{"Not recurring drops the frequency", false, &weekly, nil, nil},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			expense := models.Expense{
				OwnerID:            wallet.OwnerID,
				WalletID:           wallet.ID,
				Amount:             decimalFromString("450"),
				Date:               time.Now(),
				IsRecurring:        tt.recurring,
				RecurringFrequency: tt.frequency,
			}

			err := suite.db.Create(&expense).Error
			if tt.err != nil {
				suite.Assert().ErrorIs(err, tt.err)
				return
			}

			suite.Require().Nil(err)
			suite.Assert().Equal(tt.expected, expense.RecurringFrequency)
		})
	}
}
