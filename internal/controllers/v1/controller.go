// Package v1 implements the REST API of the budgeting backend.
package v1

import (
	"fmt"
	"net/http"

	"github.com/finsight/backend/internal/httperror"
	"github.com/finsight/backend/internal/httputil"
	"github.com/finsight/backend/internal/ledger"
	"github.com/finsight/backend/internal/models"
	ez_uuid "github.com/finsight/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Controller holds the dependencies of all handlers.
type Controller struct {
	DB      *gorm.DB
	Budgets *ledger.Service
}

// New returns a Controller working on db.
func New(db *gorm.DB) Controller {
	return Controller{
		DB:      db,
		Budgets: ledger.NewService(ledger.NewStore(db), ledger.NewSpendAggregator(ledger.NewExpenseLedger(db))),
	}
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", GetV1)
	r.OPTIONS("", OptionsV1)

	co.RegisterUserRoutes(r.Group("/users"))
	co.RegisterWalletRoutes(r.Group("/wallets"))
	co.RegisterCategoryRoutes(r.Group("/categories"))
	co.RegisterExpenseRoutes(r.Group("/expenses"))
	co.RegisterIncomeRoutes(r.Group("/incomes"))
	co.RegisterTransactionRoutes(r.Group("/transactions"))
	co.RegisterMatchRuleRoutes(r.Group("/match-rules"))
	RegisterBudgetRuleRoutes(r.Group("/budget-rules"))
	co.RegisterBudgetRoutes(r.Group("/budgets"))
	co.RegisterAllocationRoutes(r.Group("/allocations"))
}

type V1Response struct {
	Links V1Links `json:"links"` // Links for the v1 API
}

type V1Links struct {
	Users        string `json:"users" example:"https://example.com/api/v1/users"`               // URL of the user endpoint
	Wallets      string `json:"wallets" example:"https://example.com/api/v1/wallets"`           // URL of wallet list endpoint
	Categories   string `json:"categories" example:"https://example.com/api/v1/categories"`     // URL of category list endpoint
	Expenses     string `json:"expenses" example:"https://example.com/api/v1/expenses"`         // URL of expense list endpoint
	Incomes      string `json:"incomes" example:"https://example.com/api/v1/incomes"`           // URL of income list endpoint
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions"` // URL of the combined transaction feed
	MatchRules   string `json:"matchRules" example:"https://example.com/api/v1/match-rules"`    // URL of match rule list endpoint
	BudgetRules  string `json:"budgetRules" example:"https://example.com/api/v1/budget-rules"`  // URL of budget rule list endpoint
	Budgets      string `json:"budgets" example:"https://example.com/api/v1/budgets"`           // URL of budget list endpoint
	Allocations  string `json:"allocations" example:"https://example.com/api/v1/allocations"`   // URL of allocation list endpoint
}

// GetV1 returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	V1Response
//	@Router			/v1 [get]
func GetV1(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL)) + "/v1"

	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Users:        url + "/users",
			Wallets:      url + "/wallets",
			Categories:   url + "/categories",
			Expenses:     url + "/expenses",
			Incomes:      url + "/incomes",
			Transactions: url + "/transactions",
			MatchRules:   url + "/match-rules",
			BudgetRules:  url + "/budget-rules",
			Budgets:      url + "/budgets",
			Allocations:  url + "/allocations",
		},
	})
}

// OptionsV1 returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	httputil.OptionsGet(c)
}

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// bindID binds the ID path parameter. If it cannot be bound, the error
// response has already been written and ok is false.
func bindID(c *gin.Context) (uri URIID, ok bool) {
	if err := httputil.BindURI(c, &uri); err != nil {
		httperror.Abort(c, err)
		return URIID{}, false
	}

	return uri, true
}

// errOwnerMissing is returned by list endpoints that need an owner.
var errOwnerMissing = fmt.Errorf("%w: the owner parameter must be set", httputil.ErrInvalidQueryString)

var errCategoryMissing = fmt.Errorf("%w: the category parameter must be set", httputil.ErrInvalidQueryString)

// Pagination contains information about the pagination for collection endpoint responses.
type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

// paginate applies offset and limit to the query. A limit of 0 uses the
// default of 50, a negative limit returns all resources.
func paginate(q *gorm.DB, offset uint, limit int) (*gorm.DB, int) {
	if limit == 0 {
		limit = 50
	}

	return q.Offset(int(offset)).Limit(limit), limit
}
