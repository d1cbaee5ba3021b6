package v1

import (
	"net/http"

	"github.com/finsight/backend/internal/httperror"
	"github.com/finsight/backend/internal/httputil"
	"github.com/finsight/backend/internal/models"
	ez_uuid "github.com/finsight/backend/internal/uuid"
	"github.com/gin-gonic/gin"
)

// RegisterMatchRuleRoutes registers the routes for match rules with
// the RouterGroup that is passed.
func (co Controller) RegisterMatchRuleRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsMatchRuleList)
		r.GET("", co.GetMatchRules)
		r.POST("", co.CreateMatchRule)
	}

	// Match rule with ID
	{
		r.OPTIONS("/:id", OptionsMatchRuleDetail)
		r.DELETE("/:id", co.DeleteMatchRule)
	}
}

// OptionsMatchRuleList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Match Rules
//	@Success		204
//	@Router			/v1/match-rules [options]
func OptionsMatchRuleList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsMatchRuleDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Match Rules
//	@Success		204
//	@Param			id	path	string	true	"ID formatted as string"
//	@Router			/v1/match-rules/{id} [options]
func OptionsMatchRuleDetail(c *gin.Context) {
	httputil.OptionsDelete(c)
}

// GetMatchRules returns the match rules of a user
//
//	@Summary		List match rules
//	@Description	Returns the match rules of a user in the order they are applied
//	@Tags			Match Rules
//	@Produce		json
//	@Success		200			{object}	MatchRuleListResponse
//	@Failure		400			{object}	httperror.Error
//	@Failure		500			{object}	httperror.Error
//	@Param			owner		query		string	true	"Filter by owner ID"
//	@Param			category	query		string	false	"Filter by category ID"
//	@Router			/v1/match-rules [get]
func (co Controller) GetMatchRules(c *gin.Context) {
	var filter MatchRuleQueryFilter
	if err := httputil.BindQuery(c, &filter); err != nil {
		httperror.Abort(c, err)
		return
	}

	if filter.OwnerID == ez_uuid.Nil {
		httperror.Abort(c, errOwnerMissing)
		return
	}

	queryFields, _ := httputil.GetURLFields(c.Request.URL, filter)

	var rules []models.MatchRule
	err := co.DB.
		WithContext(c.Request.Context()).
		Where(filter.model(), queryFields...).
		Order("priority ASC, created_at ASC").
		Find(&rules).Error
	if err != nil {
		httperror.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, MatchRuleListResponse{Data: rules})
}

// CreateMatchRule creates a new match rule
//
//	@Summary		Create match rule
//	@Description	Creates a rule assigning an expense category to expenses recorded without one
//	@Tags			Match Rules
//	@Produce		json
//	@Success		201			{object}	MatchRuleResponse
//	@Failure		400			{object}	httperror.Error
//	@Failure		404			{object}	httperror.Error
//	@Failure		500			{object}	httperror.Error
//	@Param			matchRule	body		MatchRuleEditable	true	"Match rule"
//	@Router			/v1/match-rules [post]
func (co Controller) CreateMatchRule(c *gin.Context) {
	var editable MatchRuleEditable
	if err := httputil.BindData(c, &editable); err != nil {
		httperror.Abort(c, err)
		return
	}

	rule := editable.model()
	if err := co.DB.WithContext(c.Request.Context()).Create(&rule).Error; err != nil {
		httperror.Abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, MatchRuleResponse{Data: &rule})
}

// DeleteMatchRule deletes a specific match rule
//
//	@Summary		Delete match rule
//	@Description	Deletes a match rule
//	@Tags			Match Rules
//	@Success		204
//	@Failure		400	{object}	httperror.Error
//	@Failure		404	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/match-rules/{id} [delete]
func (co Controller) DeleteMatchRule(c *gin.Context) {
	uri, ok := bindID(c)
	if !ok {
		return
	}

	db := co.DB.WithContext(c.Request.Context())

	var rule models.MatchRule
	if err := db.First(&rule, "id = ?", uri.ID.UUID).Error; err != nil {
		httperror.Abort(c, err)
		return
	}

	if err := db.Delete(&rule).Error; err != nil {
		httperror.Abort(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
