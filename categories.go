package main

import (
	"net/http"

	"github.com/sofiahutsulo/finance-server/models"

	"github.com/gin-gonic/gin"
)

// listCategoriesHandler returns the shared category reference data.
func listCategoriesHandler(c *gin.Context) {
	var categories []models.Category
	if err := db.Order("id").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// createCategoryHandler lets an administrator extend the seeded set.
func createCategoryHandler(c *gin.Context) {
	if !isAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "admin only"})
		return
	}
	var req struct {
		Name  string `json:"name" binding:"required"`
		Type  string `json:"type" binding:"required"`
		Icon  string `json:"icon"`
		Color string `json:"color"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Type != models.TypeIncome && req.Type != models.TypeExpense {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be INCOME or EXPENSE"})
		return
	}
	if req.Icon == "" {
		req.Icon = "category"
	}
	if req.Color == "" {
		req.Color = "#999999"
	}
	category := models.Category{Name: req.Name, Type: req.Type, Icon: req.Icon, Color: req.Color}
	if err := db.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, category)
}
