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

type packageRequest struct {
	Name        string `json:"name" binding:"required"`
	Price       int64  `json:"price" binding:"required"`
	Mileage     int    `json:"mileage" binding:"required"`
	Description string `json:"description"`
	ProductIDs  []uint `json:"productIds" binding:"required,min=1"`
}

func loadPackageProducts(productIDs []uint) ([]models.Product, bool, error) {
	var products []models.Product
	if err := initializers.DB.Where("id IN ?", productIDs).Find(&products).Error; err != nil {
		return nil, false, err
	}
	return products, len(products) == len(productIDs), nil
}

// CreatePackage bundles existing products into a priced offering.
func CreatePackage(ctx *gin.Context) {
	var req packageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest,
			"Invalid data. Name, productIds, price, and mileage are required.")
		return
	}

	products, allFound, err := loadPackageProducts(req.ProductIDs)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to validate products", err)
		return
	}
	if !allFound {
		sendErrorResponse(ctx, http.StatusBadRequest, "Some products were not found.")
		return
	}

	pkg := models.Package{
		Name:        req.Name,
		Price:       req.Price,
		Mileage:     req.Mileage,
		Description: req.Description,
		Products:    products,
	}

	if err := initializers.DB.Create(&pkg).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create package", err)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "Package created successfully.",
		"package": pkg,
	})
}

func GetPackages(ctx *gin.Context) {
	var packages []models.Package
	if err := initializers.DB.Preload("Products").Find(&packages).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch packages", err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"packages": packages})
}

func GetPackage(ctx *gin.Context) {
	packageID, err := strconv.Atoi(ctx.Param("packageId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid package ID")
		return
	}

	var pkg models.Package
	if err := initializers.DB.Preload("Products").First(&pkg, packageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgPackageNotFound)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch package", err)
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"package": pkg})
}

func UpdatePackage(ctx *gin.Context) {
	packageID, err := strconv.Atoi(ctx.Param("packageId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid package ID")
		return
	}

	var pkg models.Package
	if err := initializers.DB.First(&pkg, packageID).Error; err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, msgPackageNotFound)
		return
	}

	var body struct {
		Name        string `json:"name"`
		Price       int64  `json:"price"`
		Mileage     int    `json:"mileage"`
		Description string `json:"description"`
		ProductIDs  []uint `json:"productIds"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	updates := map[string]any{}
	if body.Name != "" {
		updates["name"] = body.Name
	}
	if body.Price != 0 {
		updates["price"] = body.Price
	}
	if body.Mileage != 0 {
		updates["mileage"] = body.Mileage
	}
	if body.Description != "" {
		updates["description"] = body.Description
	}

	if len(updates) > 0 {
		if err := initializers.DB.Model(&pkg).Updates(updates).Error; err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to update package", err)
			return
		}
	}

	if len(body.ProductIDs) > 0 {
		products, allFound, err := loadPackageProducts(body.ProductIDs)
		if err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate products", err)
			return
		}
		if !allFound {
			sendErrorResponse(ctx, http.StatusBadRequest, "Some products were not found.")
			return
		}
		if err := initializers.DB.Model(&pkg).Association("Products").Replace(products); err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to update package products", err)
			return
		}
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Package updated successfully.",
		"package": pkg,
	})
}

func DeletePackage(ctx *gin.Context) {
	packageID, err := strconv.Atoi(ctx.Param("packageId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid package ID")
		return
	}

	result := initializers.DB.Unscoped().Delete(&models.Package{}, packageID)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete package", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, msgPackageNotFound)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Package deleted successfully."})
}

// GetPackagesForCar lists packages matching one of the caller's cars by
// mileage band.
func GetPackagesForCar(ctx *gin.Context) {
	carID, err := strconv.Atoi(ctx.Param("carId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid car ID")
		return
	}

	var car models.Car
	if err := initializers.DB.First(&car, carID).Error; err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Car not found.")
		return
	}

	var packages []models.Package
	result := initializers.DB.Preload("Products").
		Where("mileage >= ?", car.Mileage).
		Order("mileage asc").
		Find(&packages)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch packages", result.Error)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"packages": packages})
}
