package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Category handler functions

// categoryRequest is the write shape for creating a category.
type categoryRequest struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	IsParent bool    `json:"is_parent"`
	ParentID *string `json:"parent_id"`
}

// @Summary Get all categories
// @Description Retrieve the owner's categories
// @Tags categories
// @Produce json
// @Param X-Owner-ID header string true "Owner identifier"
// @Success 200 {array} Category "List of categories"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/categories [get]
func getCategories(c *gin.Context) {
	ownerID, ok := ownerFromRequest(c)
	if !ok {
		return
	}

	categories, err := store.FetchCategories(c.Request.Context(), ownerID)
	if err != nil {
		log.Printf("Error fetching categories: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching categories"})
		return
	}

	c.JSON(http.StatusOK, categories)
}

// @Summary Create category
// @Description Create a new category. Child categories must reference a parent category of the same owner; the hierarchy is limited to two levels.
// @Tags categories
// @Accept json
// @Produce json
// @Param X-Owner-ID header string true "Owner identifier"
// @Param category body categoryRequest true "Category data"
// @Success 201 {object} Category "Created category"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 409 {object} map[string]interface{} "Category already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/categories [post]
func createCategory(c *gin.Context) {
	ownerID, ok := ownerFromRequest(c)
	if !ok {
		return
	}

	var request categoryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := validateName(request.Name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if request.Type != CategoryIncome && request.Type != CategoryExpense {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Type must be income or expense"})
		return
	}

	// Two-level hierarchy: a category may be a parent or have a parent,
	// never both, and the referenced parent must itself be a parent.
	if request.ParentID != nil {
		if request.IsParent {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A parent category cannot have a parent"})
			return
		}
		parent, err := store.GetCategory(c.Request.Context(), ownerID, *request.ParentID)
		if err != nil {
			if errors.Is(err, errNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Parent category not found"})
				return
			}
			log.Printf("Error fetching parent category: %v", err)
			statusCode, message := handleDatabaseError(err)
			c.JSON(statusCode, gin.H{"error": message})
			return
		}
		if !parent.IsParent {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Referenced category is not a parent category"})
			return
		}
		if parent.Type != request.Type {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Child category type must match its parent"})
			return
		}
	}

	category := Category{
		Name:     request.Name,
		Type:     request.Type,
		IsParent: request.IsParent,
		ParentID: request.ParentID,
	}

	created, err := store.InsertCategory(c.Request.Context(), ownerID, category)
	if err != nil {
		log.Printf("Error creating category: %v", err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusCreated, created)
}
