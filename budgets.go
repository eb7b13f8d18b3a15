package main

import (
	"net/http"
	"time"

	"github.com/sofiahutsulo/finance-server/models"
	"github.com/sofiahutsulo/finance-server/pkg/finance"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type budgetRequest struct {
	CategoryID  uint            `json:"categoryId" binding:"required"`
	LimitAmount decimal.Decimal `json:"limitAmount" binding:"required"`
	Period      string          `json:"period"`
	StartDate   string          `json:"startDate"` // optional RFC 3339, defaults to now
}

func (r *budgetRequest) parsedStart() time.Time {
	if r.StartDate != "" {
		if t, err := time.Parse(time.RFC3339, r.StartDate); err == nil {
			return t
		}
	}
	return time.Now()
}

func listBudgetsHandler(c *gin.Context) {
	var budgets []models.Budget
	if err := db.Where("user_id = ?", currentUserID(c)).Order("id").Find(&budgets).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, budgets)
}

// budgetStatusHandler returns each budget together with its spend, the
// consumed percentage and the exceeded flag for the current period window.
func budgetStatusHandler(c *gin.Context) {
	userID := currentUserID(c)
	var budgets []models.Budget
	if err := db.Where("user_id = ?", userID).Order("id").Find(&budgets).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	var transactions []models.Transaction
	if err := db.Where("user_id = ?", userID).Find(&transactions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	var categories []models.Category
	if err := db.Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, finance.ConsumeBudgets(budgets, transactions, categories))
}

func createBudgetHandler(c *gin.Context) {
	var req budgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Period == "" {
		req.Period = models.PeriodMonth
	}
	if !finance.Period(req.Period).Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "period must be WEEK, MONTH or YEAR"})
		return
	}
	if err := finance.ValidateAmount(req.LimitAmount); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit amount must be greater than 0"})
		return
	}
	budget := models.Budget{
		UserID:      currentUserID(c),
		CategoryID:  req.CategoryID,
		LimitAmount: req.LimitAmount,
		Period:      req.Period,
		StartDate:   req.parsedStart(),
	}
	if err := db.Create(&budget).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	go publishChanges(budget.UserID)
	c.JSON(http.StatusCreated, budget)
}

func findOwnedBudget(c *gin.Context) (*models.Budget, bool) {
	var budget models.Budget
	if err := db.Where("id = ? AND user_id = ?", c.Param("id"), currentUserID(c)).First(&budget).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "budget not found"})
		return nil, false
	}
	return &budget, true
}

func updateBudgetHandler(c *gin.Context) {
	budget, ok := findOwnedBudget(c)
	if !ok {
		return
	}
	var req budgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Period == "" {
		req.Period = models.PeriodMonth
	}
	if !finance.Period(req.Period).Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "period must be WEEK, MONTH or YEAR"})
		return
	}
	if err := finance.ValidateAmount(req.LimitAmount); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit amount must be greater than 0"})
		return
	}
	budget.CategoryID = req.CategoryID
	budget.LimitAmount = req.LimitAmount
	budget.Period = req.Period
	budget.StartDate = req.parsedStart()
	if err := db.Save(budget).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	go publishChanges(budget.UserID)
	c.JSON(http.StatusOK, budget)
}

func deleteBudgetHandler(c *gin.Context) {
	budget, ok := findOwnedBudget(c)
	if !ok {
		return
	}
	if err := db.Delete(budget).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	go publishChanges(budget.UserID)
	c.JSON(http.StatusOK, gin.H{"message": "budget deleted"})
}
