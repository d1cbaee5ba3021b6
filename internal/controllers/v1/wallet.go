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

// RegisterWalletRoutes registers the routes for wallets with
// the RouterGroup that is passed.
func (co Controller) RegisterWalletRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsWalletList)
		r.GET("", co.GetWallets)
		r.POST("", co.CreateWallet)
	}

	// Wallet with ID
	{
		r.OPTIONS("/:id", OptionsWalletDetail)
		r.GET("/:id", co.GetWallet)
		r.PATCH("/:id", co.UpdateWallet)
		r.DELETE("/:id", co.DeleteWallet)
		r.OPTIONS("/:id/balance", OptionsWalletBalance)
		r.GET("/:id/balance", co.GetWalletBalance)
	}
}

// OptionsWalletList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Wallets
//	@Success		204
//	@Router			/v1/wallets [options]
func OptionsWalletList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsWalletDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Wallets
//	@Success		204
//	@Param			id	path	string	true	"ID formatted as string"
//	@Router			/v1/wallets/{id} [options]
func OptionsWalletDetail(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// OptionsWalletBalance returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Wallets
//	@Success		204
//	@Param			id	path	string	true	"ID formatted as string"
//	@Router			/v1/wallets/{id}/balance [options]
func OptionsWalletBalance(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetWallets returns the wallets of a user
//
//	@Summary		List wallets
//	@Description	Returns the wallets of a user, ordered by name
//	@Tags			Wallets
//	@Produce		json
//	@Success		200		{object}	WalletListResponse
//	@Failure		400		{object}	httperror.Error
//	@Failure		500		{object}	httperror.Error
//	@Param			owner	query		string	true	"Filter by owner ID"
//	@Param			name	query		string	false	"Filter by name"
//	@Param			type	query		string	false	"Filter by type"
//	@Router			/v1/wallets [get]
func (co Controller) GetWallets(c *gin.Context) {
	var filter WalletQueryFilter
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
		Order("name ASC").
		Where(&models.Wallet{OwnerID: filter.OwnerID.UUID, Type: filter.Type}, queryFields...)

	if slices.Contains(setFields, "Name") {
		q = q.Where("LOWER(name) = LOWER(?)", filter.Name)
	}

	var wallets []models.Wallet
	if err := q.Find(&wallets).Error; err != nil {
		httperror.Abort(c, err)
		return
	}

	data := make([]Wallet, 0, len(wallets))
	for _, wallet := range wallets {
		data = append(data, newWallet(c, wallet))
	}

	c.JSON(http.StatusOK, WalletListResponse{Data: data})
}

// CreateWallet creates a new wallet
//
//	@Summary		Create wallet
//	@Description	Creates a new wallet for a user
//	@Tags			Wallets
//	@Produce		json
//	@Success		201		{object}	WalletResponse
//	@Failure		400		{object}	httperror.Error
//	@Failure		500		{object}	httperror.Error
//	@Param			wallet	body		WalletEditable	true	"Wallet"
//	@Router			/v1/wallets [post]
func (co Controller) CreateWallet(c *gin.Context) {
	var editable WalletEditable
	if err := httputil.BindData(c, &editable); err != nil {
		httperror.Abort(c, err)
		return
	}

	wallet := editable.model()
	if err := co.DB.WithContext(c.Request.Context()).Create(&wallet).Error; err != nil {
		httperror.Abort(c, err)
		return
	}

	data := newWallet(c, wallet)
	c.JSON(http.StatusCreated, WalletResponse{Data: &data})
}

// GetWallet returns a specific wallet
//
//	@Summary		Get wallet
//	@Description	Returns a specific wallet
//	@Tags			Wallets
//	@Produce		json
//	@Success		200	{object}	WalletResponse
//	@Failure		400	{object}	httperror.Error
//	@Failure		404	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/wallets/{id} [get]
func (co Controller) GetWallet(c *gin.Context) {
	wallet, ok := co.findWallet(c)
	if !ok {
		return
	}

	data := newWallet(c, wallet)
	c.JSON(http.StatusOK, WalletResponse{Data: &data})
}

// UpdateWallet updates a specific wallet
//
//	@Summary		Update wallet
//	@Description	Updates the name, type or note of a wallet. Only values to be updated need to be specified.
//	@Tags			Wallets
//	@Produce		json
//	@Success		200		{object}	WalletResponse
//	@Failure		400		{object}	httperror.Error
//	@Failure		404		{object}	httperror.Error
//	@Failure		500		{object}	httperror.Error
//	@Param			id		path		string			true	"ID formatted as string"
//	@Param			wallet	body		WalletEditable	true	"Wallet"
//	@Router			/v1/wallets/{id} [patch]
func (co Controller) UpdateWallet(c *gin.Context) {
	wallet, ok := co.findWallet(c)
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, WalletEditable{})
	if err != nil {
		httperror.Abort(c, err)
		return
	}

	// The owner of a wallet cannot be changed
	editable := WalletEditable{OwnerID: wallet.OwnerID}
	if err := httputil.BindData(c, &editable); err != nil {
		httperror.Abort(c, err)
		return
	}

	if slices.Contains(updateFields, "Name") {
		wallet.Name = editable.Name
	}
	if slices.Contains(updateFields, "Type") {
		wallet.Type = editable.Type
	}
	if slices.Contains(updateFields, "Note") {
		wallet.Note = editable.Note
	}

	if err := co.DB.WithContext(c.Request.Context()).Omit(clause.Associations).Save(&wallet).Error; err != nil {
		httperror.Abort(c, err)
		return
	}

	data := newWallet(c, wallet)
	c.JSON(http.StatusOK, WalletResponse{Data: &data})
}

// DeleteWallet deletes a specific wallet
//
//	@Summary		Delete wallet
//	@Description	Deletes a wallet. Wallets with transactions or allocations cannot be deleted.
//	@Tags			Wallets
//	@Success		204
//	@Failure		400	{object}	httperror.Error
//	@Failure		404	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/wallets/{id} [delete]
func (co Controller) DeleteWallet(c *gin.Context) {
	wallet, ok := co.findWallet(c)
	if !ok {
		return
	}

	if err := co.DB.WithContext(c.Request.Context()).Delete(&wallet).Error; err != nil {
		httperror.Abort(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetWalletBalance returns the balance of a wallet
//
//	@Summary		Get wallet balance
//	@Description	Returns income, expenses and the resulting balance of a wallet
//	@Tags			Wallets
//	@Produce		json
//	@Success		200	{object}	WalletBalanceResponse
//	@Failure		400	{object}	httperror.Error
//	@Failure		404	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/wallets/{id}/balance [get]
func (co Controller) GetWalletBalance(c *gin.Context) {
	wallet, ok := co.findWallet(c)
	if !ok {
		return
	}

	balance, err := wallet.Balance(co.DB.WithContext(c.Request.Context()))
	if err != nil {
		httperror.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, WalletBalanceResponse{Data: balance})
}

func (co Controller) findWallet(c *gin.Context) (models.Wallet, bool) {
	uri, ok := bindID(c)
	if !ok {
		return models.Wallet{}, false
	}

	var wallet models.Wallet
	if err := co.DB.WithContext(c.Request.Context()).First(&wallet, "id = ?", uri.ID.UUID).Error; err != nil {
		httperror.Abort(c, err)
		return models.Wallet{}, false
	}

	return wallet, true
}
