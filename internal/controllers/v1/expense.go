package v1

import (
	"net/http"
	"time"

	"github.com/finsight/backend/internal/httperror"
	"github.com/finsight/backend/internal/httputil"
	"github.com/finsight/backend/internal/models"
	ez_uuid "github.com/finsight/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsExpenseList)
		r.GET("", co.GetExpenses)
		r.POST("", co.CreateExpense)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", OptionsExpenseDetail)
		r.GET("/:id", co.GetExpense)
		r.PATCH("/:id", co.UpdateExpense)
		r.DELETE("/:id", co.DeleteExpense)
	}
}

// OptionsExpenseList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Expenses
//	@Success		204
//	@Router			/v1/expenses [options]
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsExpenseDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Expenses
//	@Success		204
//	@Param			id	path	string	true	"ID formatted as string"
//	@Router			/v1/expenses/{id} [options]
func OptionsExpenseDetail(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// GetExpenses returns a list of expenses
//
//	@Summary		List expenses
//	@Description	Returns the expenses of a user, newest first
//	@Tags			Expenses
//	@Produce		json
//	@Success		200			{object}	ExpenseListResponse
//	@Failure		400			{object}	httperror.Error
//	@Failure		500			{object}	httperror.Error
//	@Param			owner		query		string	true	"Filter by owner ID"
//	@Param			wallet		query		string	false	"Filter by wallet ID"
//	@Param			category	query		string	false	"Filter by category ID"
//	@Param			fromDate	query		string	false	"Expenses at and after this date, YYYY-MM-DD"
//	@Param			untilDate	query		string	false	"Expenses before and at this date, YYYY-MM-DD"
//	@Param			note		query		string	false	"Filter by string contained in the note"
//	@Param			offset		query		uint	false	"The offset of the first expense returned. Defaults to 0."
//	@Param			limit		query		int		false	"Maximum number of expenses to return. Defaults to 50."
//	@Router			/v1/expenses [get]
func (co Controller) GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter
	if err := httputil.BindQuery(c, &filter); err != nil {
		httperror.Abort(c, err)
		return
	}

	if filter.OwnerID == ez_uuid.Nil {
		httperror.Abort(c, errOwnerMissing)
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := co.DB.
		WithContext(c.Request.Context()).
		Model(&models.Expense{}).
		Where(filter.model(), queryFields...)

	if !filter.FromDate.IsZero() {
		q = q.Where("date >= ?", filter.FromDate)
	}

	if !filter.UntilDate.IsZero() {
		q = q.Where("date < ?", filter.UntilDate.AddDate(0, 0, 1))
	}

	if slices.Contains(setFields, "Note") {
		q = q.Where("note LIKE ?", "%"+filter.Note+"%")
	}

	// Count and Find must not share the statement
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperror.Abort(c, err)
		return
	}

	q, limit := paginate(q.Order("date DESC, created_at DESC"), filter.Offset, filter.Limit)

	var expenses []models.Expense
	if err := q.Find(&expenses).Error; err != nil {
		httperror.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, ExpenseListResponse{
		Data: expenses,
		Pagination: &Pagination{
			Count:  len(expenses),
			Offset: filter.Offset,
			Limit:  limit,
			Total:  total,
		},
	})
}

// CreateExpense records a new expense
//
//	@Summary		Create expense
//	@Description	Records an expense. If no category is given, the match rules of the owner are applied to the note.
//	@Tags			Expenses
//	@Produce		json
//	@Success		201		{object}	ExpenseResponse
//	@Failure		400		{object}	httperror.Error
//	@Failure		404		{object}	httperror.Error
//	@Failure		500		{object}	httperror.Error
//	@Param			expense	body		ExpenseEditable	true	"Expense"
//	@Router			/v1/expenses [post]
func (co Controller) CreateExpense(c *gin.Context) {
	var editable ExpenseEditable
	if err := httputil.BindData(c, &editable); err != nil {
		httperror.Abort(c, err)
		return
	}

	expense := editable.model()
	if expense.Date.IsZero() {
		expense.Date = time.Now().In(time.UTC)
	}

	db := co.DB.WithContext(c.Request.Context())
	if expense.CategoryID == nil {
		if err := applyMatchRules(db, &expense); err != nil {
			httperror.Abort(c, err)
			return
		}
	}

	if err := db.Create(&expense).Error; err != nil {
		httperror.Abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, ExpenseResponse{Data: &expense})
}

// applyMatchRules sets the category of the expense from the first match
// rule of its owner matching the note.
func applyMatchRules(db *gorm.DB, expense *models.Expense) error {
	var rules []models.MatchRule
	err := db.
		Where(&models.MatchRule{OwnerID: expense.OwnerID}).
		Order("priority ASC, created_at ASC").
		Find(&rules).Error
	if err != nil {
		return err
	}

	if categoryID, ok := models.MatchCategory(rules, expense.Note); ok {
		expense.CategoryID = &categoryID
	}

	return nil
}

// GetExpense returns a specific expense
//
//	@Summary		Get expense
//	@Description	Returns a specific expense
//	@Tags			Expenses
//	@Produce		json
//	@Success		200	{object}	ExpenseResponse
//	@Failure		400	{object}	httperror.Error
//	@Failure		404	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/expenses/{id} [get]
func (co Controller) GetExpense(c *gin.Context) {
	expense, ok := co.findExpense(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, ExpenseResponse{Data: &expense})
}

// UpdateExpense updates a specific expense
//
//	@Summary		Update expense
//	@Description	Updates an expense. Only values to be updated need to be specified.
//	@Tags			Expenses
//	@Produce		json
//	@Success		200		{object}	ExpenseResponse
//	@Failure		400		{object}	httperror.Error
//	@Failure		404		{object}	httperror.Error
//	@Failure		500		{object}	httperror.Error
//	@Param			id		path		string			true	"ID formatted as string"
//	@Param			expense	body		ExpenseEditable	true	"Expense"
//	@Router			/v1/expenses/{id} [patch]
func (co Controller) UpdateExpense(c *gin.Context) {
	expense, ok := co.findExpense(c)
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ExpenseEditable{})
	if err != nil {
		httperror.Abort(c, err)
		return
	}

	editable := ExpenseEditable{OwnerID: expense.OwnerID, WalletID: expense.WalletID, Amount: expense.Amount}
	if err := httputil.BindData(c, &editable); err != nil {
		httperror.Abort(c, err)
		return
	}

	if slices.Contains(updateFields, "WalletID") {
		expense.WalletID = editable.WalletID
	}
	if slices.Contains(updateFields, "CategoryID") {
		expense.CategoryID = editable.CategoryID
	}
	if slices.Contains(updateFields, "Amount") {
		expense.Amount = editable.Amount
	}
	if slices.Contains(updateFields, "Date") {
		expense.Date = editable.Date
	}
	if slices.Contains(updateFields, "Note") {
		expense.Note = editable.Note
	}
	if slices.Contains(updateFields, "IsRecurring") {
		expense.IsRecurring = editable.IsRecurring
	}
	if slices.Contains(updateFields, "RecurringFrequency") {
		expense.RecurringFrequency = editable.RecurringFrequency
	}

	if err := co.DB.WithContext(c.Request.Context()).Omit(clause.Associations).Save(&expense).Error; err != nil {
		httperror.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, ExpenseResponse{Data: &expense})
}

// DeleteExpense deletes a specific expense
//
//	@Summary		Delete expense
//	@Description	Deletes an expense
//	@Tags			Expenses
//	@Success		204
//	@Failure		400	{object}	httperror.Error
//	@Failure		404	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/expenses/{id} [delete]
func (co Controller) DeleteExpense(c *gin.Context) {
	expense, ok := co.findExpense(c)
	if !ok {
		return
	}

	if err := co.DB.WithContext(c.Request.Context()).Delete(&expense).Error; err != nil {
		httperror.Abort(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (co Controller) findExpense(c *gin.Context) (models.Expense, bool) {
	uri, ok := bindID(c)
	if !ok {
		return models.Expense{}, false
	}

	var expense models.Expense
	if err := co.DB.WithContext(c.Request.Context()).First(&expense, "id = ?", uri.ID.UUID).Error; err != nil {
		httperror.Abort(c, err)
		return models.Expense{}, false
	}

	return expense, true
}
