package main

import (
	"net/http"

	"github.com/sofiahutsulo/finance-server/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type accountRequest struct {
	Name     string          `json:"name" binding:"required"`
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
	Type     string          `json:"type"`
	Color    string          `json:"color"`
	Icon     string          `json:"icon"`
}

func (r *accountRequest) applyDefaults() {
	if r.Currency == "" {
		r.Currency = "UAH"
	}
	if r.Type == "" {
		r.Type = models.AccountCash
	}
	if r.Color == "" {
		r.Color = "#6200EE"
	}
	if r.Icon == "" {
		r.Icon = "account_balance_wallet"
	}
}

func listAccountsHandler(c *gin.Context) {
	var accounts []models.Account
	if err := db.Where("user_id = ?", currentUserID(c)).Order("id").Find(&accounts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// findOwnedAccount loads an account scoped to the calling user.
func findOwnedAccount(c *gin.Context) (*models.Account, bool) {
	var account models.Account
	if err := db.Where("id = ? AND user_id = ?", c.Param("id"), currentUserID(c)).First(&account).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
		return nil, false
	}
	return &account, true
}

func getAccountHandler(c *gin.Context) {
	account, ok := findOwnedAccount(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, account)
}

func createAccountHandler(c *gin.Context) {
	var req accountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.applyDefaults()
	account := models.Account{
		UserID:   currentUserID(c),
		Name:     req.Name,
		Balance:  req.Balance,
		Currency: req.Currency,
		Type:     req.Type,
		Color:    req.Color,
		Icon:     req.Icon,
	}
	if err := db.Create(&account).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, account)
}

func updateAccountHandler(c *gin.Context) {
	account, ok := findOwnedAccount(c)
	if !ok {
		return
	}
	var req accountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.applyDefaults()
	account.Name = req.Name
	account.Balance = req.Balance
	account.Currency = req.Currency
	account.Type = req.Type
	account.Color = req.Color
	account.Icon = req.Icon
	if err := db.Save(account).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, account)
}

// deleteAccountHandler removes an account and all its transactions in one
// database transaction.
func deleteAccountHandler(c *gin.Context) {
	account, ok := findOwnedAccount(c)
	if !ok {
		return
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("account_id = ?", account.ID).Delete(&models.Transaction{}).Error; err != nil {
			return err
		}
		return tx.Delete(account).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	go publishChanges(account.UserID)
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}
