package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/autocare-store/autocare-api/initializers"
	"github.com/autocare-store/autocare-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const msgCategoryNotFound = "Category not found."

func CreateCategory(ctx *gin.Context) {
	var category models.Category
	if err := ctx.ShouldBindJSON(&category); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if err := initializers.DB.Create(&category).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create category", err)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message":  "Category created successfully",
		"category": category,
	})
}

func GetCategories(ctx *gin.Context) {
	var categories []models.Category
	if err := initializers.DB.Find(&categories).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch categories", err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"categories": categories})
}

func GetCategory(ctx *gin.Context) {
	categoryID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid category ID")
		return
	}

	var category models.Category
	if err := initializers.DB.First(&category, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgCategoryNotFound)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch category", err)
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"category": category})
}

func UpdateCategory(ctx *gin.Context) {
	categoryID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid category ID")
		return
	}

	var body struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var category models.Category
	if err := initializers.DB.First(&category, categoryID).Error; err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, msgCategoryNotFound)
		return
	}

	updates := map[string]any{}
	if body.Name != "" {
		updates["name"] = body.Name
	}
	if body.Description != "" {
		updates["description"] = body.Description
	}

	if err := initializers.DB.Model(&category).Updates(updates).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update category", err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message":  "Category updated successfully",
		"category": category,
	})
}

func DeleteCategory(ctx *gin.Context) {
	categoryID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid category ID")
		return
	}

	result := initializers.DB.Unscoped().Delete(&models.Category{}, categoryID)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete category", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, msgCategoryNotFound)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Category deleted successfully."})
}
