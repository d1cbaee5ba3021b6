package v1

import (
	"net/http"

	"github.com/finsight/backend/internal/httperror"
	"github.com/finsight/backend/internal/httputil"
	"github.com/finsight/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers the routes for users with
// the RouterGroup that is passed.
func (co Controller) RegisterUserRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsUserList)
		r.POST("", co.CreateUser)
	}

	// User with ID
	{
		r.OPTIONS("/:id", OptionsUserDetail)
		r.GET("/:id", co.GetUser)
		r.OPTIONS("/:id/budget-checkin", OptionsUserCheckIn)
		r.POST("/:id/budget-checkin", co.CheckInUser)
	}
}

// OptionsUserList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Users
//	@Success		204
//	@Router			/v1/users [options]
func OptionsUserList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// OptionsUserDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Users
//	@Success		204
//	@Param			id	path	string	true	"ID formatted as string"
//	@Router			/v1/users/{id} [options]
func OptionsUserDetail(c *gin.Context) {
	httputil.OptionsGet(c)
}

// OptionsUserCheckIn returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Users
//	@Success		204
//	@Param			id	path	string	true	"ID formatted as string"
//	@Router			/v1/users/{id}/budget-checkin [options]
func OptionsUserCheckIn(c *gin.Context) {
	httputil.OptionsPost(c)
}

// CreateUser creates a new user
//
//	@Summary		Create user
//	@Description	Creates a new user. Users own all other resources.
//	@Tags			Users
//	@Produce		json
//	@Success		201		{object}	UserResponse
//	@Failure		400		{object}	httperror.Error
//	@Failure		500		{object}	httperror.Error
//	@Param			user	body		UserEditable	true	"User"
//	@Router			/v1/users [post]
func (co Controller) CreateUser(c *gin.Context) {
	var editable UserEditable
	if err := httputil.BindData(c, &editable); err != nil {
		httperror.Abort(c, err)
		return
	}

	user := editable.model()
	if err := co.DB.WithContext(c.Request.Context()).Create(&user).Error; err != nil {
		httperror.Abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, UserResponse{Data: &user})
}

// GetUser returns a specific user
//
//	@Summary		Get user
//	@Description	Returns a specific user
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	UserResponse
//	@Failure		400	{object}	httperror.Error
//	@Failure		404	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/users/{id} [get]
func (co Controller) GetUser(c *gin.Context) {
	user, ok := co.findUser(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, UserResponse{Data: &user})
}

// CheckInUser stores the answers of the budgeting check-in
//
//	@Summary		Budgeting check-in
//	@Description	Stores how the user describes themselves, their biggest budgeting challenge, their spending priority and how confident they are. A repeated check-in replaces the answers.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Success		200		{object}	UserResponse
//	@Failure		400		{object}	httperror.Error
//	@Failure		404		{object}	httperror.Error
//	@Failure		500		{object}	httperror.Error
//	@Param			id		path		string				true	"ID formatted as string"
//	@Param			checkIn	body		UserCheckInEditable	true	"Check-in answers"
//	@Router			/v1/users/{id}/budget-checkin [post]
func (co Controller) CheckInUser(c *gin.Context) {
	user, ok := co.findUser(c)
	if !ok {
		return
	}

	var editable UserCheckInEditable
	if err := httputil.BindData(c, &editable); err != nil {
		httperror.Abort(c, err)
		return
	}

	user.Description = editable.Description
	user.BudgetingChallenge = editable.BudgetingChallenge
	user.SpendingPriority = editable.SpendingPriority
	user.ConfidenceLevel = editable.ConfidenceLevel

	if err := co.DB.WithContext(c.Request.Context()).Save(&user).Error; err != nil {
		httperror.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, UserResponse{Data: &user})
}

func (co Controller) findUser(c *gin.Context) (models.User, bool) {
	uri, ok := bindID(c)
	if !ok {
		return models.User{}, false
	}

	var user models.User
	if err := co.DB.WithContext(c.Request.Context()).First(&user, "id = ?", uri.ID.UUID).Error; err != nil {
		httperror.Abort(c, err)
		return models.User{}, false
	}

	return user, true
}
