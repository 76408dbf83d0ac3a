package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/autocare-store/autocare-api/initializers"
	"github.com/autocare-store/autocare-api/middlewares"
	"github.com/autocare-store/autocare-api/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RegisterCarByDetails registers a car for the caller from model data.
func RegisterCarByDetails(ctx *gin.Context) {
	principal, _ := middlewares.CurrentPrincipal(ctx)

	var details models.CarDetails
	if err := ctx.ShouldBindJSON(&details); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if details.Model == "" || details.Year == 0 || details.Agency == "" {
		sendErrorResponse(ctx, http.StatusBadRequest,
			"Model, year, and agency are required to register the car.")
		return
	}

	payload, err := json.Marshal(details)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to encode car details", err)
		return
	}

	car := models.Car{UserID: principal.UserID, Details: datatypes.JSON(payload)}
	if err := initializers.DB.Create(&car).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to register car", err)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "Car registered successfully with car details",
		"car":     car,
	})
}

// RegisterCarByEngineNumber registers a car by its unique engine number.
func RegisterCarByEngineNumber(ctx *gin.Context) {
	principal, _ := middlewares.CurrentPrincipal(ctx)

	var body struct {
		EngineNumber string `json:"engineNumber" binding:"required"`
		Mileage      int    `json:"mileage"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest,
			"Engine number is required to register the car.")
		return
	}

	var existing models.Car
	err := initializers.DB.
		Where("engine_number = ? AND user_id = ?", body.EngineNumber, principal.UserID).
		First(&existing).Error
	if err == nil {
		sendErrorResponse(ctx, http.StatusConflict, "Car with this engine number already exists.")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to check engine number", err)
		return
	}

	car := models.Car{
		UserID:       principal.UserID,
		EngineNumber: body.EngineNumber,
		Mileage:      body.Mileage,
	}
	if err := initializers.DB.Create(&car).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to register car", err)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "Car registered successfully with engine number",
		"car":     car,
	})
}

// GetMyCars lists the caller's registered cars.
func GetMyCars(ctx *gin.Context) {
	principal, _ := middlewares.CurrentPrincipal(ctx)

	var cars []models.Car
	if err := initializers.DB.Where("user_id = ?", principal.UserID).Find(&cars).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch cars", err)
		return
	}
	if len(cars) == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "No cars found for this user.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Cars fetched successfully.",
		"cars":    cars,
	})
}

// CreateCarBrand registers a brand with its logo uploaded to S3.
func CreateCarBrand(ctx *gin.Context) {
	name := ctx.PostForm("name")
	if name == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, "Brand name is required.")
		return
	}

	file, err := ctx.FormFile("logo")
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Brand logo is required.")
		return
	}

	uploader, err := getAWSUploader()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to configure AWS", err)
		return
	}

	f, err := file.Open()
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Failed to read logo", err)
		return
	}
	defer f.Close()

	key := fmt.Sprintf("brands/%s-%s", time.Now().Format("20060102150405"), file.Filename)
	result, err := uploader.Upload(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(os.Getenv("S3_BUCKET")),
		Key:         aws.String(key),
		Body:        f,
		ACL:         "public-read",
		ContentType: aws.String(file.Header.Get("Content-Type")),
	})
	if err != nil {
		log.Printf("Error uploading brand logo %s: %v", file.Filename, err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to upload brand logo")
		return
	}

	brand := models.CarBrand{Name: name, LogoURL: result.Location}
	if err := initializers.DB.Create(&brand).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create car brand", err)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "Car brand created successfully.",
		"brand":   brand,
	})
}

func GetCarBrands(ctx *gin.Context) {
	var brands []models.CarBrand
	if err := initializers.DB.Find(&brands).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch car brands", err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"brands": brands})
}
