package v1

import (
	"fmt"
	"net/http"

	"github.com/finsight/backend/internal/httperror"
	"github.com/finsight/backend/internal/httputil"
	"github.com/finsight/backend/internal/ledger"
	"github.com/finsight/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type KindShare struct {
	Kind  models.CategoryKind `json:"kind" example:"Need"`
	Share decimal.Decimal     `json:"share" swaggertype:"string" example:"50"` // Percentage of the income
}

type BudgetRuleInfo struct {
	Rule   models.BudgetRule `json:"rule" example:"50-30-20"`
	Shares []KindShare       `json:"shares"` // Empty for the custom rule
	Split  *ledger.Split     `json:"split"`  // Split of the income query parameter, null if it is not set
}

type BudgetRuleListResponse struct {
	Data []BudgetRuleInfo `json:"data"` // List of budget rules
}

type BudgetRuleQueryFilter struct {
	Income string `form:"income"` // Income to split by each rule
}

var errIncomeInvalid = fmt.Errorf("%w: the income parameter must be a positive number", httputil.ErrInvalidQueryString)

// RegisterBudgetRuleRoutes registers the routes for budget rules with
// the RouterGroup that is passed.
func RegisterBudgetRuleRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsBudgetRules)
	r.GET("", GetBudgetRules)
}

// OptionsBudgetRules returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Budget Rules
//	@Success		204
//	@Router			/v1/budget-rules [options]
func OptionsBudgetRules(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetBudgetRules returns all budget rules
//
//	@Summary		List budget rules
//	@Description	Returns the supported budget rules with the share of each category kind. If an income is given, it is split by every rule.
//	@Tags			Budget Rules
//	@Produce		json
//	@Success		200		{object}	BudgetRuleListResponse
//	@Failure		400		{object}	httperror.Error
//	@Param			income	query		string	false	"Income to split"
//	@Router			/v1/budget-rules [get]
func GetBudgetRules(c *gin.Context) {
	var filter BudgetRuleQueryFilter
	if err := httputil.BindQuery(c, &filter); err != nil {
		httperror.Abort(c, err)
		return
	}

	var income *decimal.Decimal
	if filter.Income != "" {
		value, err := decimal.NewFromString(filter.Income)
		if err != nil || !value.IsPositive() {
			httperror.Abort(c, errIncomeInvalid)
			return
		}
		income = &value
	}

	rules := make([]BudgetRuleInfo, 0, len(models.BudgetRules))
	for _, rule := range models.BudgetRules {
		info := BudgetRuleInfo{Rule: rule, Shares: []KindShare{}}

		for _, kind := range models.CategoryKinds {
			if share, ok := ledger.Share(rule, kind); ok {
				info.Shares = append(info.Shares, KindShare{Kind: kind, Share: share})
			}
		}

		if income != nil {
			split := ledger.SplitByRule(*income, rule)
			info.Split = &split
		}

		rules = append(rules, info)
	}

	c.JSON(http.StatusOK, BudgetRuleListResponse{Data: rules})
}
