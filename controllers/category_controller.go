package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/inkpost/inkpost/stores"
	"github.com/inkpost/inkpost/utils"
)

// CategoryController manages category listing and creation.
type CategoryController struct {
	categories *stores.CategoryStore
}

// NewCategoryController creates a new CategoryController instance.
func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{categories: stores.NewCategoryStore(db)}
}

// List returns all categories.
func (c *CategoryController) List(ctx *gin.Context) {
	categories, err := c.categories.List()
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to list categories")
		return
	}
	ctx.JSON(http.StatusOK, categories)
}

// Create inserts a new category.
func (c *CategoryController) Create(ctx *gin.Context) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "Please add a category name")
		return
	}

	category, err := c.categories.Create(strings.TrimSpace(req.Name), strings.TrimSpace(req.Description))
	if err != nil {
		switch {
		case errors.Is(err, stores.ErrMissingCategoryName):
			utils.Error(ctx, http.StatusBadRequest, "Please add a category name")
		case errors.Is(err, stores.ErrCategoryTaken):
			utils.Error(ctx, http.StatusBadRequest, "Category already exists")
		case errors.Is(err, stores.ErrDescriptionTooLong):
			utils.Error(ctx, http.StatusBadRequest, "Description must be 100 characters or less")
		default:
			utils.Error(ctx, http.StatusInternalServerError, "failed to create category")
		}
		return
	}

	ctx.JSON(http.StatusCreated, category)
}
