package controllers

import (
	"net/http"
	"strconv"

	"github.com/autocare-store/autocare-api/initializers"
	"github.com/autocare-store/autocare-api/models"
	"github.com/gin-gonic/gin"
)

// AddMessage stores a contact-form submission. No login required.
func AddMessage(ctx *gin.Context) {
	var message models.Message
	if err := ctx.ShouldBindJSON(&message); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if err := initializers.DB.Create(&message).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to save message", err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Message sent successfully"})
}

func GetMessages(ctx *gin.Context) {
	var messages []models.Message
	if err := initializers.DB.Order("created_at desc").Find(&messages).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch messages", err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"messages": messages})
}

// DeleteMessage is restricted to super admins by the route middleware.
func DeleteMessage(ctx *gin.Context) {
	messageID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid message ID")
		return
	}

	result := initializers.DB.Unscoped().Delete(&models.Message{}, messageID)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete message", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "No message with this id")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Message deleted successfully"})
}
