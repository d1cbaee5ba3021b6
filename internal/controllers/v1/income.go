package v1

import (
	"net/http"
	"time"

	"github.com/finsight/backend/internal/httperror"
	"github.com/finsight/backend/internal/httputil"
	"github.com/finsight/backend/internal/models"
	ez_uuid "github.com/finsight/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm/clause"
)

// RegisterIncomeRoutes registers the routes for incomes with
// the RouterGroup that is passed.
func (co Controller) RegisterIncomeRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsIncomeList)
		r.GET("", co.GetIncomes)
		r.POST("", co.CreateIncome)
		r.OPTIONS("/total", OptionsIncomeTotal)
		r.GET("/total", co.GetIncomeTotal)
	}

	// Income with ID
	{
		r.OPTIONS("/:id", OptionsIncomeDetail)
		r.GET("/:id", co.GetIncome)
		r.PATCH("/:id", co.UpdateIncome)
		r.DELETE("/:id", co.DeleteIncome)
	}
}

// OptionsIncomeList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Incomes
//	@Success		204
//	@Router			/v1/incomes [options]
func OptionsIncomeList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsIncomeTotal returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Incomes
//	@Success		204
//	@Router			/v1/incomes/total [options]
func OptionsIncomeTotal(c *gin.Context) {
	httputil.OptionsGet(c)
}

// OptionsIncomeDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Incomes
//	@Success		204
//	@Param			id	path	string	true	"ID formatted as string"
//	@Router			/v1/incomes/{id} [options]
func OptionsIncomeDetail(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// GetIncomes returns a list of incomes
//
//	@Summary		List incomes
//	@Description	Returns the incomes of a user, newest first
//	@Tags			Incomes
//	@Produce		json
//	@Success		200		{object}	IncomeListResponse
//	@Failure		400		{object}	httperror.Error
//	@Failure		500		{object}	httperror.Error
//	@Param			owner	query		string	true	"Filter by owner ID"
//	@Param			wallet	query		string	false	"Filter by wallet ID"
//	@Router			/v1/incomes [get]
func (co Controller) GetIncomes(c *gin.Context) {
	var filter IncomeQueryFilter
	if err := httputil.BindQuery(c, &filter); err != nil {
		httperror.Abort(c, err)
		return
	}

	if filter.OwnerID == ez_uuid.Nil {
		httperror.Abort(c, errOwnerMissing)
		return
	}

	queryFields, _ := httputil.GetURLFields(c.Request.URL, filter)

	var incomes []models.Income
	err := co.DB.
		WithContext(c.Request.Context()).
		Where(filter.model(), queryFields...).
		Order("date DESC, created_at DESC").
		Find(&incomes).Error
	if err != nil {
		httperror.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, IncomeListResponse{Data: incomes})
}

// GetIncomeTotal returns the total income of a user
//
//	@Summary		Get total income
//	@Description	Returns the sum of all incomes of a user over all wallets
//	@Tags			Incomes
//	@Produce		json
//	@Success		200		{object}	IncomeTotalResponse
//	@Failure		400		{object}	httperror.Error
//	@Failure		500		{object}	httperror.Error
//	@Param			owner	query		string	true	"ID of the owner"
//	@Router			/v1/incomes/total [get]
func (co Controller) GetIncomeTotal(c *gin.Context) {
	var filter IncomeQueryFilter
	if err := httputil.BindQuery(c, &filter); err != nil {
		httperror.Abort(c, err)
		return
	}

	if filter.OwnerID == ez_uuid.Nil {
		httperror.Abort(c, errOwnerMissing)
		return
	}

	var sum decimal.NullDecimal
	err := co.DB.
		WithContext(c.Request.Context()).
		Table("incomes").
		Select("SUM(amount)").
		Where("owner_id = ?", filter.OwnerID.UUID).
		Find(&sum).Error
	if err != nil {
		httperror.Abort(c, err)
		return
	}

	total := decimal.Zero
	if sum.Valid {
		total = sum.Decimal
	}

	c.JSON(http.StatusOK, IncomeTotalResponse{Data: IncomeTotal{Total: total}})
}

// CreateIncome records a new income
//
//	@Summary		Create income
//	@Description	Records money received in a wallet
//	@Tags			Incomes
//	@Produce		json
//	@Success		201		{object}	IncomeResponse
//	@Failure		400		{object}	httperror.Error
//	@Failure		404		{object}	httperror.Error
//	@Failure		500		{object}	httperror.Error
//	@Param			income	body		IncomeEditable	true	"Income"
//	@Router			/v1/incomes [post]
func (co Controller) CreateIncome(c *gin.Context) {
	var editable IncomeEditable
	if err := httputil.BindData(c, &editable); err != nil {
		httperror.Abort(c, err)
		return
	}

	income := editable.model()
	if income.Date.IsZero() {
		income.Date = time.Now().In(time.UTC)
	}

	if err := co.DB.WithContext(c.Request.Context()).Create(&income).Error; err != nil {
		httperror.Abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, IncomeResponse{Data: &income})
}

// GetIncome returns a specific income
//
//	@Summary		Get income
//	@Description	Returns a specific income
//	@Tags			Incomes
//	@Produce		json
//	@Success		200	{object}	IncomeResponse
//	@Failure		400	{object}	httperror.Error
//	@Failure		404	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/incomes/{id} [get]
func (co Controller) GetIncome(c *gin.Context) {
	income, ok := co.findIncome(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, IncomeResponse{Data: &income})
}

// UpdateIncome updates a specific income
//
//	@Summary		Update income
//	@Description	Updates an income. Only values to be updated need to be specified.
//	@Tags			Incomes
//	@Accept			json
//	@Produce		json
//	@Success		200		{object}	IncomeResponse
//	@Failure		400		{object}	httperror.Error
//	@Failure		404		{object}	httperror.Error
//	@Failure		500		{object}	httperror.Error
//	@Param			id		path		string			true	"ID formatted as string"
//	@Param			income	body		IncomeEditable	true	"Income"
//	@Router			/v1/incomes/{id} [patch]
func (co Controller) UpdateIncome(c *gin.Context) {
	income, ok := co.findIncome(c)
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, IncomeEditable{})
	if err != nil {
		httperror.Abort(c, err)
		return
	}

	editable := IncomeEditable{OwnerID: income.OwnerID, WalletID: income.WalletID, Amount: income.Amount}
	if err := httputil.BindData(c, &editable); err != nil {
		httperror.Abort(c, err)
		return
	}

	if slices.Contains(updateFields, "WalletID") {
		income.WalletID = editable.WalletID
	}
	if slices.Contains(updateFields, "CategoryID") {
		income.CategoryID = editable.CategoryID
	}
	if slices.Contains(updateFields, "Amount") {
		income.Amount = editable.Amount
	}
	if slices.Contains(updateFields, "Date") {
		income.Date = editable.Date
	}
	if slices.Contains(updateFields, "Note") {
		income.Note = editable.Note
	}

	if err := co.DB.WithContext(c.Request.Context()).Omit(clause.Associations).Save(&income).Error; err != nil {
		httperror.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, IncomeResponse{Data: &income})
}

// DeleteIncome deletes a specific income
//
//	@Summary		Delete income
//	@Description	Deletes an income
//	@Tags			Incomes
//	@Success		204
//	@Failure		400	{object}	httperror.Error
//	@Failure		404	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/incomes/{id} [delete]
func (co Controller) DeleteIncome(c *gin.Context) {
	income, ok := co.findIncome(c)
	if !ok {
		return
	}

	if err := co.DB.WithContext(c.Request.Context()).Delete(&income).Error; err != nil {
		httperror.Abort(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (co Controller) findIncome(c *gin.Context) (models.Income, bool) {
	uri, ok := bindID(c)
	if !ok {
		return models.Income{}, false
	}

	var income models.Income
	if err := co.DB.WithContext(c.Request.Context()).First(&income, "id = ?", uri.ID.UUID).Error; err != nil {
		httperror.Abort(c, err)
		return models.Income{}, false
	}

	return income, true
}
