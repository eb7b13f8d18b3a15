package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/sofiahutsulo/finance-server/models"
	"github.com/sofiahutsulo/finance-server/pkg/finance"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type transactionRequest struct {
	AccountID  uint            `json:"accountId" binding:"required"`
	CategoryID uint            `json:"categoryId" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Date       string          `json:"date"` // optional RFC 3339
	Note       string          `json:"note"`
	Type       string          `json:"type" binding:"required"`
}

func (r *transactionRequest) parsedDate() time.Time {
	if r.Date != "" {
		if t, err := time.Parse(time.RFC3339, r.Date); err == nil {
			return t
		}
	}
	return time.Now()
}

// balanceDelta is the signed effect a transaction has on its account balance.
func balanceDelta(typ string, amount decimal.Decimal) decimal.Decimal {
	if typ == models.TypeIncome {
		return amount
	}
	return amount.Neg()
}

// adjustBalance shifts an account balance by delta inside tx.
func adjustBalance(tx *gorm.DB, accountID uint, delta decimal.Decimal) error {
	return tx.Model(&models.Account{}).Where("id = ?", accountID).
		Update("balance", gorm.Expr("balance + ?", delta)).Error
}

// listTransactionsHandler returns the caller's transactions, newest first,
// with optional type / category_id / period query filters combined with AND
// semantics.
func listTransactionsHandler(c *gin.Context) {
	var transactions []models.Transaction
	if err := db.Where("user_id = ?", currentUserID(c)).Find(&transactions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}

	f := finance.Filter{
		Type:   c.Query("type"),
		Period: finance.PeriodFilter(c.DefaultQuery("period", string(finance.FilterAll))),
	}
	if !f.Period.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "period must be ALL, THIS_WEEK, THIS_MONTH or LAST_MONTH"})
		return
	}
	if v := c.Query("category_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category_id"})
			return
		}
		f.CategoryID = uint(id)
	}
	c.JSON(http.StatusOK, f.Apply(transactions, time.Now()))
}

// createTransactionHandler validates and stores a transaction. The row insert
// and the account balance adjustment happen in one database transaction, so a
// crash can never leave the ledger and the balance out of step.
func createTransactionHandler(c *gin.Context) {
	var req transactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Type != models.TypeIncome && req.Type != models.TypeExpense {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be INCOME or EXPENSE"})
		return
	}
	if err := finance.ValidateAmount(req.Amount); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := currentUserID(c)
	var account models.Account
	if err := db.Where("id = ? AND user_id = ?", req.AccountID, userID).First(&account).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
		return
	}
	var category models.Category
	if err := db.First(&category, req.CategoryID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}

	transaction := models.Transaction{
		UserID:     userID,
		AccountID:  req.AccountID,
		CategoryID: req.CategoryID,
		Amount:     req.Amount,
		Date:       req.parsedDate(),
		Note:       req.Note,
		Type:       req.Type,
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&transaction).Error; err != nil {
			return err
		}
		return adjustBalance(tx, transaction.AccountID, balanceDelta(transaction.Type, transaction.Amount))
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	go publishChanges(userID)
	c.JSON(http.StatusCreated, transaction)
}

func findOwnedTransaction(c *gin.Context) (*models.Transaction, bool) {
	var transaction models.Transaction
	if err := db.Where("id = ? AND user_id = ?", c.Param("id"), currentUserID(c)).First(&transaction).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "transaction not found"})
		return nil, false
	}
	return &transaction, true
}

// updateTransactionHandler rewrites a transaction and re-adjusts balances in
// the same database transaction: the old effect is reversed, the new one
// applied, covering moves between accounts as well.
func updateTransactionHandler(c *gin.Context) {
	existing, ok := findOwnedTransaction(c)
	if !ok {
		return
	}
	var req transactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Type != models.TypeIncome && req.Type != models.TypeExpense {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be INCOME or EXPENSE"})
		return
	}
	if err := finance.ValidateAmount(req.Amount); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := currentUserID(c)
	if req.AccountID != existing.AccountID {
		var account models.Account
		if err := db.Where("id = ? AND user_id = ?", req.AccountID, userID).First(&account).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
			return
		}
	}
	if req.CategoryID != existing.CategoryID {
		var category models.Category
		if err := db.First(&category, req.CategoryID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := adjustBalance(tx, existing.AccountID, balanceDelta(existing.Type, existing.Amount).Neg()); err != nil {
			return err
		}
		existing.AccountID = req.AccountID
		existing.CategoryID = req.CategoryID
		existing.Amount = req.Amount
		existing.Date = req.parsedDate()
		existing.Note = req.Note
		existing.Type = req.Type
		if err := tx.Save(existing).Error; err != nil {
			return err
		}
		return adjustBalance(tx, existing.AccountID, balanceDelta(existing.Type, existing.Amount))
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	go publishChanges(userID)
	c.JSON(http.StatusOK, existing)
}

// deleteTransactionHandler removes a transaction and reverses its balance
// effect atomically.
func deleteTransactionHandler(c *gin.Context) {
	transaction, ok := findOwnedTransaction(c)
	if !ok {
		return
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(transaction).Error; err != nil {
			return err
		}
		return adjustBalance(tx, transaction.AccountID, balanceDelta(transaction.Type, transaction.Amount).Neg())
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	go publishChanges(transaction.UserID)
	c.JSON(http.StatusOK, gin.H{"message": "transaction deleted"})
}
