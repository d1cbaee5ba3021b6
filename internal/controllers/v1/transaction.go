package v1

import (
	"errors"
	"net/http"

	"github.com/finsight/backend/internal/httperror"
	"github.com/finsight/backend/internal/httputil"
	"github.com/finsight/backend/internal/models"
	ez_uuid "github.com/finsight/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RegisterTransactionRoutes registers the routes for the combined
// transaction feed with the RouterGroup that is passed.
func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTransactionList)
		r.GET("", co.GetTransactions)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.GET("/:id", co.GetTransaction)
	}
}

// OptionsTransactionList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Transactions
//	@Success		204
//	@Router			/v1/transactions [options]
func OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// OptionsTransactionDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Transactions
//	@Success		204
//	@Param			id	path	string	true	"ID formatted as string"
//	@Router			/v1/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetTransactions returns expenses and incomes in one list
//
//	@Summary		List transactions
//	@Description	Returns the expenses and incomes of a user, newest first
//	@Tags			Transactions
//	@Produce		json
//	@Success		200		{object}	TransactionListResponse
//	@Failure		400		{object}	httperror.Error
//	@Failure		500		{object}	httperror.Error
//	@Param			owner	query		string	true	"Filter by owner ID"
//	@Param			wallet	query		string	false	"Filter by wallet ID"
//	@Param			limit	query		uint	false	"Maximum number of transactions"
//	@Router			/v1/transactions [get]
func (co Controller) GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := httputil.BindQuery(c, &filter); err != nil {
		httperror.Abort(c, err)
		return
	}

	if filter.OwnerID == ez_uuid.Nil {
		httperror.Abort(c, errOwnerMissing)
		return
	}

	// Each source is limited on its own, the merged list is cut afterwards
	scope := func(db *gorm.DB) *gorm.DB {
		db = db.Preload("Wallet").Preload("Category").
			Where("owner_id = ?", filter.OwnerID.UUID).
			Order("date DESC, created_at DESC")

		if filter.WalletID != ez_uuid.Nil {
			db = db.Where("wallet_id = ?", filter.WalletID.UUID)
		}

		if filter.Limit > 0 {
			db = db.Limit(int(filter.Limit))
		}

		return db
	}

	db := co.DB.WithContext(c.Request.Context())

	var expenses []models.Expense
	if err := db.Scopes(scope).Find(&expenses).Error; err != nil {
		httperror.Abort(c, err)
		return
	}

	var incomes []models.Income
	if err := db.Scopes(scope).Find(&incomes).Error; err != nil {
		httperror.Abort(c, err)
		return
	}

	transactions := make([]Transaction, 0, len(expenses)+len(incomes))
	for _, e := range expenses {
		transactions = append(transactions, expenseTransaction(c, e))
	}
	for _, i := range incomes {
		transactions = append(transactions, incomeTransaction(c, i))
	}

	slices.SortStableFunc(transactions, newestFirst)

	if filter.Limit > 0 && len(transactions) > int(filter.Limit) {
		transactions = transactions[:filter.Limit]
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: transactions})
}

// newestFirst orders transactions by date, then by creation time, both descending.
func newestFirst(a, b Transaction) int {
	if c := b.Date.Compare(a.Date); c != 0 {
		return c
	}

	return b.createdAt.Compare(a.createdAt)
}

// GetTransaction returns a specific transaction
//
//	@Summary		Get transaction
//	@Description	Returns the expense or income with the ID in the format of the transaction feed
//	@Tags			Transactions
//	@Produce		json
//	@Success		200	{object}	TransactionResponse
//	@Failure		400	{object}	httperror.Error
//	@Failure		404	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/transactions/{id} [get]
func (co Controller) GetTransaction(c *gin.Context) {
	uri, ok := bindID(c)
	if !ok {
		return
	}

	// Both lookups must not share the statement
	db := co.DB.WithContext(c.Request.Context()).Preload("Wallet").Preload("Category").Session(&gorm.Session{})

	var expense models.Expense
	err := db.First(&expense, "expenses.id = ?", uri.ID.UUID).Error
	if err == nil {
		t := expenseTransaction(c, expense)
		c.JSON(http.StatusOK, TransactionResponse{Data: &t})
		return
	}

	if !errors.Is(err, models.ErrResourceNotFound) {
		httperror.Abort(c, err)
		return
	}

	var income models.Income
	if err := db.First(&income, "incomes.id = ?", uri.ID.UUID).Error; err != nil {
		httperror.Abort(c, err)
		return
	}

	t := incomeTransaction(c, income)
	c.JSON(http.StatusOK, TransactionResponse{Data: &t})
}
