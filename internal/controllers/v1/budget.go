package v1

import (
	"net/http"

	"github.com/finsight/backend/internal/httperror"
	"github.com/finsight/backend/internal/httputil"
	ez_uuid "github.com/finsight/backend/internal/uuid"
	"github.com/gin-gonic/gin"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgetList)
		r.GET("", co.GetBudgets)
		r.POST("", co.CreateBudget)
	}

	// Budget with ID
	{
		r.OPTIONS("/:id", OptionsBudgetDetail)
		r.GET("/:id", co.GetBudget)
		r.DELETE("/:id", co.DeleteBudget)
		r.OPTIONS("/:id/allocations", OptionsBudgetAllocations)
		r.GET("/:id/allocations", co.GetBudgetAllocations)
		r.OPTIONS("/:id/reallocation-candidates", OptionsReallocationCandidates)
		r.GET("/:id/reallocation-candidates", co.GetReallocationCandidates)
		r.OPTIONS("/:id/reallocations", OptionsReallocations)
		r.POST("/:id/reallocations", co.CreateReallocation)
	}
}

// OptionsBudgetList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Budgets
//	@Success		204
//	@Router			/v1/budgets [options]
func OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsBudgetDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Budgets
//	@Success		204
//	@Param			id	path	string	true	"ID formatted as string"
//	@Router			/v1/budgets/{id} [options]
func OptionsBudgetDetail(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// OptionsBudgetAllocations returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Budgets
//	@Success		204
//	@Param			id	path	string	true	"ID formatted as string"
//	@Router			/v1/budgets/{id}/allocations [options]
func OptionsBudgetAllocations(c *gin.Context) {
	httputil.OptionsGet(c)
}

// OptionsReallocationCandidates returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Budgets
//	@Success		204
//	@Param			id	path	string	true	"ID formatted as string"
//	@Router			/v1/budgets/{id}/reallocation-candidates [options]
func OptionsReallocationCandidates(c *gin.Context) {
	httputil.OptionsGet(c)
}

// OptionsReallocations returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Budgets
//	@Success		204
//	@Param			id	path	string	true	"ID formatted as string"
//	@Router			/v1/budgets/{id}/reallocations [options]
func OptionsReallocations(c *gin.Context) {
	httputil.OptionsPost(c)
}

// GetBudgets returns the budgets of a user
//
//	@Summary		List budgets
//	@Description	Returns the budgets of a user, newest first
//	@Tags			Budgets
//	@Produce		json
//	@Success		200		{object}	BudgetListResponse
//	@Failure		400		{object}	httperror.Error
//	@Failure		500		{object}	httperror.Error
//	@Param			owner	query		string	true	"Filter by owner ID"
//	@Param			wallet	query		string	false	"Budgets scoped to the wallet or with allocations for it"
//	@Router			/v1/budgets [get]
func (co Controller) GetBudgets(c *gin.Context) {
	var filter BudgetQueryFilter
	if err := httputil.BindQuery(c, &filter); err != nil {
		httperror.Abort(c, err)
		return
	}

	if filter.OwnerID == ez_uuid.Nil {
		httperror.Abort(c, errOwnerMissing)
		return
	}

	budgets, err := co.Budgets.Budgets(c.Request.Context(), filter.OwnerID.UUID, filter.WalletID.Ptr())
	if err != nil {
		httperror.Abort(c, err)
		return
	}

	data := make([]BudgetSummary, 0, len(budgets))
	for _, budget := range budgets {
		data = append(data, BudgetSummary{BudgetSummary: budget, Links: budgetLinks(c, budget.ID)})
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: data})
}

// CreateBudget creates a budget with all of its allocations
//
//	@Summary		Create budget
//	@Description	Creates a budget. The allocations must sum up to the total income and stay within the share the rule assigns to each kind.
//	@Tags			Budgets
//	@Produce		json
//	@Success		201		{object}	BudgetResponse
//	@Failure		400		{object}	httperror.Error
//	@Failure		404		{object}	httperror.Error
//	@Failure		422		{object}	httperror.Error
//	@Failure		500		{object}	httperror.Error
//	@Param			budget	body		BudgetEditable	true	"Budget"
//	@Router			/v1/budgets [post]
func (co Controller) CreateBudget(c *gin.Context) {
	var editable BudgetEditable
	if err := httputil.BindData(c, &editable); err != nil {
		httperror.Abort(c, err)
		return
	}

	id, err := co.Budgets.CreateBudget(c.Request.Context(), editable.create())
	if err != nil {
		httperror.Abort(c, err)
		return
	}

	view, err := co.Budgets.Budget(c.Request.Context(), id)
	if err != nil {
		httperror.Abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, BudgetResponse{Data: &Budget{BudgetView: view, Links: budgetLinks(c, id)}})
}

// GetBudget returns a specific budget
//
//	@Summary		Get budget
//	@Description	Returns a budget with all allocations, their spend and summaries per kind and wallet
//	@Tags			Budgets
//	@Produce		json
//	@Success		200	{object}	BudgetResponse
//	@Failure		400	{object}	httperror.Error
//	@Failure		404	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/budgets/{id} [get]
func (co Controller) GetBudget(c *gin.Context) {
	uri, ok := bindID(c)
	if !ok {
		return
	}

	view, err := co.Budgets.Budget(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		httperror.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: &Budget{BudgetView: view, Links: budgetLinks(c, view.ID)}})
}

// DeleteBudget deletes a specific budget
//
//	@Summary		Delete budget
//	@Description	Deletes a budget and all of its allocations
//	@Tags			Budgets
//	@Success		204
//	@Failure		400	{object}	httperror.Error
//	@Failure		404	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/budgets/{id} [delete]
func (co Controller) DeleteBudget(c *gin.Context) {
	uri, ok := bindID(c)
	if !ok {
		return
	}

	if err := co.Budgets.DeleteBudget(c.Request.Context(), uri.ID.UUID); err != nil {
		httperror.Abort(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetBudgetAllocations returns the allocations of a budget
//
//	@Summary		List allocations of a budget
//	@Description	Returns the allocations of a budget ordered by kind and amount
//	@Tags			Budgets
//	@Produce		json
//	@Success		200	{object}	BudgetAllocationListResponse
//	@Failure		400	{object}	httperror.Error
//	@Failure		404	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/budgets/{id}/allocations [get]
func (co Controller) GetBudgetAllocations(c *gin.Context) {
	uri, ok := bindID(c)
	if !ok {
		return
	}

	allocations, err := co.Budgets.Allocations(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		httperror.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, BudgetAllocationListResponse{Data: allocations})
}

// GetReallocationCandidates returns the possible targets for an excess
//
//	@Summary		List reallocation candidates
//	@Description	Returns the allocations and categories of a kind an excess can be moved to
//	@Tags			Budgets
//	@Produce		json
//	@Success		200		{object}	ReallocationCandidatesResponse
//	@Failure		400		{object}	httperror.Error
//	@Failure		404		{object}	httperror.Error
//	@Failure		500		{object}	httperror.Error
//	@Param			id		path		string	true	"ID formatted as string"
//	@Param			kind	query		string	true	"Kind of the reduced allocation"
//	@Param			exclude	query		string	false	"ID of the reduced allocation"
//	@Router			/v1/budgets/{id}/reallocation-candidates [get]
func (co Controller) GetReallocationCandidates(c *gin.Context) {
	uri, ok := bindID(c)
	if !ok {
		return
	}

	var query ReallocationCandidatesQuery
	if err := httputil.BindQuery(c, &query); err != nil {
		httperror.Abort(c, err)
		return
	}

	candidates, err := co.Budgets.ReallocationCandidates(c.Request.Context(), uri.ID.UUID, query.Kind, query.Exclude.UUID)
	if err != nil {
		httperror.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, ReallocationCandidatesResponse{Data: candidates})
}

// CreateReallocation moves the excess of a reduced allocation
//
//	@Summary		Reallocate
//	@Description	Reduces an allocation and moves the excess to another allocation or category of the same kind. Both changes are stored together or not at all.
//	@Tags			Budgets
//	@Produce		json
//	@Success		200				{object}	ReallocationResponse
//	@Failure		400				{object}	httperror.Error
//	@Failure		404				{object}	httperror.Error
//	@Failure		422				{object}	httperror.Error
//	@Failure		500				{object}	httperror.Error
//	@Param			id				path		string					true	"ID formatted as string"
//	@Param			reallocation	body		ReallocationEditable	true	"Reallocation"
//	@Router			/v1/budgets/{id}/reallocations [post]
func (co Controller) CreateReallocation(c *gin.Context) {
	uri, ok := bindID(c)
	if !ok {
		return
	}

	var editable ReallocationEditable
	if err := httputil.BindData(c, &editable); err != nil {
		httperror.Abort(c, err)
		return
	}

	result, err := co.Budgets.Reallocate(c.Request.Context(), editable.reallocation(uri.ID.UUID))
	if err != nil {
		httperror.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, ReallocationResponse{Data: result})
}
