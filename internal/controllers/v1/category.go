package v1

import (
	"net/http"

	"github.com/finsight/backend/internal/httperror"
	"github.com/finsight/backend/internal/httputil"
	"github.com/finsight/backend/internal/models"
	ez_uuid "github.com/finsight/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
	"gorm.io/gorm/clause"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryList)
		r.GET("", co.GetCategories)
		r.POST("", co.CreateCategory)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", OptionsCategoryDetail)
		r.GET("/:id", co.GetCategory)
		r.PATCH("/:id", co.UpdateCategory)
		r.DELETE("/:id", co.DeleteCategory)
	}
}

// OptionsCategoryList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Categories
//	@Success		204
//	@Router			/v1/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsCategoryDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Categories
//	@Success		204
//	@Param			id	path	string	true	"ID formatted as string"
//	@Router			/v1/categories/{id} [options]
func OptionsCategoryDetail(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// GetCategories returns a list of categories
//
//	@Summary		List categories
//	@Description	Returns the default categories and the categories of the owner, ordered by transaction type and name
//	@Tags			Categories
//	@Produce		json
//	@Success		200		{object}	CategoryListResponse
//	@Failure		400		{object}	httperror.Error
//	@Failure		500		{object}	httperror.Error
//	@Param			owner	query		string	false	"Owner ID. Without it, only default categories are listed"
//	@Param			type	query		string	false	"Filter by transaction type"
//	@Param			kind	query		string	false	"Filter by kind"
//	@Param			default	query		bool	false	"Filter by default categories"
//	@Router			/v1/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	var filter CategoryQueryFilter
	if err := httputil.BindQuery(c, &filter); err != nil {
		httperror.Abort(c, err)
		return
	}

	queryFields, _ := httputil.GetURLFields(c.Request.URL, filter)

	q := co.DB.
		WithContext(c.Request.Context()).
		Order("transaction_type ASC, name ASC").
		Where(&models.Category{
			TransactionType: filter.TransactionType,
			Kind:            filter.Kind,
			IsDefault:       filter.IsDefault,
		}, queryFields...)

	if filter.OwnerID == ez_uuid.Nil {
		q = q.Where("owner_id IS NULL")
	} else {
		q = q.Where("owner_id = ? OR owner_id IS NULL", filter.OwnerID.UUID)
	}

	var categories []models.Category
	if err := q.Find(&categories).Error; err != nil {
		httperror.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: categories})
}

// CreateCategory creates a new category
//
//	@Summary		Create category
//	@Description	Creates a category for a user
//	@Tags			Categories
//	@Produce		json
//	@Success		201			{object}	CategoryResponse
//	@Failure		400			{object}	httperror.Error
//	@Failure		500			{object}	httperror.Error
//	@Param			category	body		CategoryEditable	true	"Category"
//	@Router			/v1/categories [post]
func (co Controller) CreateCategory(c *gin.Context) {
	var editable CategoryEditable
	if err := httputil.BindData(c, &editable); err != nil {
		httperror.Abort(c, err)
		return
	}

	category := editable.model()
	if err := co.DB.WithContext(c.Request.Context()).Create(&category).Error; err != nil {
		httperror.Abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, CategoryResponse{Data: &category})
}

// GetCategory returns a specific category
//
//	@Summary		Get category
//	@Description	Returns a specific category
//	@Tags			Categories
//	@Produce		json
//	@Success		200	{object}	CategoryResponse
//	@Failure		400	{object}	httperror.Error
//	@Failure		404	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/categories/{id} [get]
func (co Controller) GetCategory(c *gin.Context) {
	category, ok := co.findCategory(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{Data: &category})
}

// UpdateCategory updates a specific category
//
//	@Summary		Update category
//	@Description	Updates name or kind of a category. Default categories cannot be updated.
//	@Tags			Categories
//	@Produce		json
//	@Success		200			{object}	CategoryResponse
//	@Failure		400			{object}	httperror.Error
//	@Failure		404			{object}	httperror.Error
//	@Failure		500			{object}	httperror.Error
//	@Param			id			path		string				true	"ID formatted as string"
//	@Param			category	body		CategoryEditable	true	"Category"
//	@Router			/v1/categories/{id} [patch]
func (co Controller) UpdateCategory(c *gin.Context) {
	category, ok := co.findCategory(c)
	if !ok {
		return
	}

	if category.IsDefault || category.OwnerID == nil {
		httperror.Abort(c, models.ErrCategoryDefaultImmutable)
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CategoryEditable{})
	if err != nil {
		httperror.Abort(c, err)
		return
	}

	editable := CategoryEditable{OwnerID: *category.OwnerID}
	if err := httputil.BindData(c, &editable); err != nil {
		httperror.Abort(c, err)
		return
	}

	if slices.Contains(updateFields, "Name") {
		category.Name = editable.Name
	}
	if slices.Contains(updateFields, "Kind") {
		category.Kind = editable.Kind
	}

	if err := co.DB.WithContext(c.Request.Context()).Omit(clause.Associations).Save(&category).Error; err != nil {
		httperror.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{Data: &category})
}

// DeleteCategory deletes a specific category
//
//	@Summary		Delete category
//	@Description	Deletes a category. Default categories and categories still in use cannot be deleted.
//	@Tags			Categories
//	@Success		204
//	@Failure		400	{object}	httperror.Error
//	@Failure		404	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/categories/{id} [delete]
func (co Controller) DeleteCategory(c *gin.Context) {
	category, ok := co.findCategory(c)
	if !ok {
		return
	}

	if category.IsDefault || category.OwnerID == nil {
		httperror.Abort(c, models.ErrCategoryDefaultImmutable)
		return
	}

	if err := co.DB.WithContext(c.Request.Context()).Delete(&category).Error; err != nil {
		httperror.Abort(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (co Controller) findCategory(c *gin.Context) (models.Category, bool) {
	uri, ok := bindID(c)
	if !ok {
		return models.Category{}, false
	}

	var category models.Category
	if err := co.DB.WithContext(c.Request.Context()).First(&category, "id = ?", uri.ID.UUID).Error; err != nil {
		httperror.Abort(c, err)
		return models.Category{}, false
	}

	return category, true
}
