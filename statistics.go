package main

import (
	"net/http"
	"time"

	"github.com/sofiahutsulo/finance-server/models"
	"github.com/sofiahutsulo/finance-server/pkg/finance"

	"github.com/gin-gonic/gin"
)

// statisticsHandler recomputes the statistics view for the requested period
// from the caller's full transaction list. The whole result is rebuilt on
// every call; there is no server-side cache to invalidate.
func statisticsHandler(c *gin.Context) {
	period := finance.Period(c.DefaultQuery("period", string(finance.PeriodMonth)))
	if !period.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "period must be WEEK, MONTH or YEAR"})
		return
	}

	var transactions []models.Transaction
	if err := db.Where("user_id = ?", currentUserID(c)).Find(&transactions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	var categories []models.Category
	if err := db.Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}

	opts := finance.Options{ClampSeriesToWindow: c.Query("clamp") == "true"}
	c.JSON(http.StatusOK, finance.Aggregate(transactions, categories, period, time.Now(), opts))
}
