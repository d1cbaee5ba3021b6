package v1

import (
	"net/http"

	"github.com/finsight/backend/internal/httperror"
	"github.com/finsight/backend/internal/httputil"
	"github.com/finsight/backend/internal/ledger"
	ez_uuid "github.com/finsight/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AllocationResponse struct {
	Data ledger.AllocationView `json:"data"` // The allocation with its spend
}

type CategoryAllocationListResponse struct {
	Data []ledger.CategoryAllocation `json:"data"` // Allocations of the category in all budgets of the owner
}

type AllocationEditResponse struct {
	Data ledger.EditResult `json:"data"`
}

// AllocationAmountEditable is the body for changing an allocated amount.
type AllocationAmountEditable struct {
	Amount decimal.Decimal `json:"amount" binding:"required" swaggertype:"string" example:"300"` // The new amount
}

type AllocationQueryFilter struct {
	OwnerID    ez_uuid.UUID `form:"owner"`    // By ID of the owner, required
	CategoryID ez_uuid.UUID `form:"category"` // By ID of the category, required
	WalletID   ez_uuid.UUID `form:"wallet"`   // Only allocations counting spend of this wallet
}

// RegisterAllocationRoutes registers the routes for allocations with
// the RouterGroup that is passed.
func (co Controller) RegisterAllocationRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsAllocationList)
		r.GET("", co.GetCategoryAllocations)
	}

	// Allocation with ID
	{
		r.OPTIONS("/:id", OptionsAllocationDetail)
		r.GET("/:id", co.GetAllocation)
		r.PATCH("/:id", co.UpdateAllocation)
	}
}

// OptionsAllocationList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Allocations
//	@Success		204
//	@Router			/v1/allocations [options]
func OptionsAllocationList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// OptionsAllocationDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Allocations
//	@Success		204
//	@Param			id	path	string	true	"ID formatted as string"
//	@Router			/v1/allocations/{id} [options]
func OptionsAllocationDetail(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// GetCategoryAllocations returns the allocations of a category
//
//	@Summary		List allocations of a category
//	@Description	Returns the allocations of a category in all budgets of the owner, with their spend
//	@Tags			Allocations
//	@Produce		json
//	@Success		200			{object}	CategoryAllocationListResponse
//	@Failure		400			{object}	httperror.Error
//	@Failure		500			{object}	httperror.Error
//	@Param			owner		query		string	true	"ID of the owner"
//	@Param			category	query		string	true	"ID of the category"
//	@Param			wallet		query		string	false	"Only allocations counting spend of this wallet"
//	@Router			/v1/allocations [get]
func (co Controller) GetCategoryAllocations(c *gin.Context) {
	var filter AllocationQueryFilter
	if err := httputil.BindQuery(c, &filter); err != nil {
		httperror.Abort(c, err)
		return
	}

	if filter.OwnerID == ez_uuid.Nil {
		httperror.Abort(c, errOwnerMissing)
		return
	}

	if filter.CategoryID == ez_uuid.Nil {
		httperror.Abort(c, errCategoryMissing)
		return
	}

	allocations, err := co.Budgets.CategoryBudgetInfo(c.Request.Context(), filter.OwnerID.UUID, filter.CategoryID.UUID, filter.WalletID.Ptr())
	if err != nil {
		httperror.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoryAllocationListResponse{Data: allocations})
}

// GetAllocation returns a specific allocation
//
//	@Summary		Get allocation
//	@Description	Returns an allocation with its spend
//	@Tags			Allocations
//	@Produce		json
//	@Success		200	{object}	AllocationResponse
//	@Failure		400	{object}	httperror.Error
//	@Failure		404	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/allocations/{id} [get]
func (co Controller) GetAllocation(c *gin.Context) {
	uri, ok := bindID(c)
	if !ok {
		return
	}

	view, err := co.Budgets.Allocation(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		httperror.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, AllocationResponse{Data: view})
}

// UpdateAllocation changes the allocated amount
//
//	@Summary		Update allocation
//	@Description	Changes the amount of an allocation. Increases are stored if they stay within the budget. A reduction by more than 0.01 is not stored, the response has the status "reallocationPending" and the excess must be moved with a reallocation.
//	@Tags			Allocations
//	@Produce		json
//	@Success		200			{object}	AllocationEditResponse
//	@Failure		400			{object}	httperror.Error
//	@Failure		404			{object}	httperror.Error
//	@Failure		422			{object}	httperror.Error
//	@Failure		500			{object}	httperror.Error
//	@Param			id			path		string						true	"ID formatted as string"
//	@Param			allocation	body		AllocationAmountEditable	true	"New amount"
//	@Router			/v1/allocations/{id} [patch]
func (co Controller) UpdateAllocation(c *gin.Context) {
	uri, ok := bindID(c)
	if !ok {
		return
	}

	var editable AllocationAmountEditable
	if err := httputil.BindData(c, &editable); err != nil {
		httperror.Abort(c, err)
		return
	}

	result, err := co.Budgets.EditAllocation(c.Request.Context(), uri.ID.UUID, editable.Amount)
	if err != nil {
		httperror.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, AllocationEditResponse{Data: result})
}
