package controllers

import (
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"os"
	"strconv"

	"github.com/autocare-store/autocare-api/initializers"
	"github.com/autocare-store/autocare-api/middlewares"
	"github.com/autocare-store/autocare-api/models"
	"github.com/autocare-store/autocare-api/payment"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	msgOrderNotFound       = "Order not found."
	msgCartIsEmpty         = "Cart is empty."
	msgDeliveryRequired    = "Full name, phone number, and shipping address are required."
	msgBadPaymentMethod    = "Unsupported payment method."
	msgPaymentFailed       = "Failed to initiate payment."
	msgOrderCreated        = "Order created successfully."
	msgWebhookUnauthorized = "Invalid webhook token."
)

type createOrderRequest struct {
	Fullname        string        `json:"fullname"`
	Phone           string        `json:"phone"`
	ShippingAddress string        `json:"shippingAddress"`
	PaymentMethod   string        `json:"paymentMethod"`
	Card            *payment.Card `json:"card"`
}

// CreateOrderFromCart snapshots the caller's cart into a new order and
// empties the cart. Both writes happen in one transaction, so a crash
// can neither duplicate the items nor lose them.
func CreateOrderFromCart(ctx *gin.Context) {
	principal, _ := middlewares.CurrentPrincipal(ctx)

	var req createOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if req.Fullname == "" || req.Phone == "" || req.ShippingAddress == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, msgDeliveryRequired)
		return
	}
	if req.PaymentMethod != models.PaymentMethodCreditCard {
		sendErrorResponse(ctx, http.StatusBadRequest, msgBadPaymentMethod)
		return
	}

	cart, err := loadCart(principal.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && cart.IsEmpty()) {
		sendErrorResponse(ctx, http.StatusBadRequest, msgCartIsEmpty)
		return
	}
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	order := models.NewOrderFromCart(&cart, req.Fullname, req.Phone, req.ShippingAddress, req.PaymentMethod)

	err = initializers.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Cart{}).Where("id = ?", cart.ID).Update("total_price", 0).Error
	})
	if err != nil {
		log.Println("Order transaction error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create order")
		return
	}

	// Charge after the order exists. A gateway failure leaves the order
	// in "failed" for manual reconciliation; the cart stays cleared.
	if req.Card != nil {
		result, chargeErr := payment.NewClient().CreatePayment(payment.ChargeRequest{
			Amount:      order.TotalPrice,
			Currency:    "SAR",
			Description: fmt.Sprintf("Payment for order #%d", order.ID),
			CallbackURL: os.Getenv("FRONTEND_URL") + "/payment/callback",
			Reference:   uuid.NewString(),
			Card:        *req.Card,
		})
		if chargeErr != nil {
			log.Printf("Gateway error for order %d: %v", order.ID, chargeErr)
			initializers.DB.Model(&order).Update("payment_status", models.PaymentFailed)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgPaymentFailed)
			return
		}

		updates := map[string]any{
			"invoice_id":     result.InvoiceID,
			"payment_status": result.Status,
		}
		if err := initializers.DB.Model(&order).Updates(updates).Error; err != nil {
			log.Printf("Order %d charged, but invoice %s not saved: %v", order.ID, result.InvoiceID, err)
		}
		order.InvoiceID = result.InvoiceID
		order.PaymentStatus = result.Status
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": msgOrderCreated,
		"order":   order,
	})
}

// HandlePaymentWebhook receives the gateway's asynchronous payment
// notification. The route carries no session, so the shared webhook
// token is verified instead.
func HandlePaymentWebhook(ctx *gin.Context) {
	if !payment.VerifyWebhookToken(ctx.GetHeader("X-Webhook-Token")) {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgWebhookUnauthorized)
		return
	}

	var notification struct {
		ID        string `json:"id"`
		Status    string `json:"status"`
		InvoiceID string `json:"invoice_id"`
	}
	if err := ctx.BindJSON(&notification); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if notification.InvoiceID == "" {
		notification.InvoiceID = notification.ID
	}

	var order models.Order
	err := initializers.DB.Where("invoice_id = ? AND invoice_id <> ''", notification.InvoiceID).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Order not found for invoice %s", notification.InvoiceID)
		sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
		return
	}
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	order.ApplyGatewayStatus(notification.Status)

	err = initializers.DB.Model(&order).Updates(map[string]any{
		"payment_status":  order.PaymentStatus,
		"shipping_status": order.ShippingStatus,
	}).Error
	if err != nil {
		log.Println("Error updating order from webhook:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update order status")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Webhook processed successfully."})
}

// GetOrders lists orders for the admin dashboard with optional filters
// and pagination metadata.
func GetOrders(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 15
	}
	offset := (page - 1) * limit

	query := initializers.DB.Preload("Items")
	countQuery := initializers.DB.Model(&models.Order{})

	if userID := ctx.Query("userId"); userID != "" {
		query = query.Where("user_id = ?", userID)
		countQuery = countQuery.Where("user_id = ?", userID)
	}
	if status := ctx.Query("paymentStatus"); status != "" {
		query = query.Where("payment_status = ?", status)
		countQuery = countQuery.Where("payment_status = ?", status)
	}
	if status := ctx.Query("shippingStatus"); status != "" {
		query = query.Where("shipping_status = ?", status)
		countQuery = countQuery.Where("shipping_status = ?", status)
	}

	var orders []models.Order
	result := query.Order("created_at desc").Limit(limit).Offset(offset).Find(&orders)
	if result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch orders")
		return
	}

	var count int64
	countQuery.Count(&count)
	totalPages := math.Ceil(float64(count) / float64(limit))

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"orders": orders,
		"metadata": gin.H{
			"total":       count,
			"currentPage": page,
			"limit":       limit,
			"hasPrevPage": page > 1,
			"hasNextPage": int(totalPages) > page,
		},
	})
}

// GetOrder returns one order; customers may only read their own.
func GetOrder(ctx *gin.Context) {
	principal, _ := middlewares.CurrentPrincipal(ctx)

	orderID, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	var order models.Order
	if err := initializers.DB.Preload("Items").First(&order, orderID).Error; err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
		return
	}

	if order.UserID != principal.UserID && !principal.IsAdmin() {
		sendErrorResponse(ctx, http.StatusForbidden, "You do not have permission to view this order.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"order": order})
}

// GetMyOrders lists the caller's own orders.
func GetMyOrders(ctx *gin.Context) {
	principal, _ := middlewares.CurrentPrincipal(ctx)

	var orders []models.Order
	result := initializers.DB.Preload("Items").
		Where("user_id = ?", principal.UserID).
		Order("created_at desc").
		Find(&orders)
	if result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch orders.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}

// UpdateOrder lets an admin change the two mutable status fields and
// nothing else.
func UpdateOrder(ctx *gin.Context) {
	orderID, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	var updates map[string]any
	if err := ctx.ShouldBindJSON(&updates); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	for key := range updates {
		if key != "paymentStatus" && key != "shippingStatus" {
			sendErrorResponse(ctx, http.StatusBadRequest,
				fmt.Sprintf("Invalid field: %s. Allowed fields: paymentStatus, shippingStatus", key))
			return
		}
	}

	var order models.Order
	if err := initializers.DB.First(&order, orderID).Error; err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
		return
	}

	columns := map[string]any{}
	if raw, ok := updates["paymentStatus"]; ok {
		status, ok := raw.(string)
		if !ok || !models.IsValidPaymentStatus(status) {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid payment status.")
			return
		}
		if !models.CanTransitionPayment(order.PaymentStatus, status) {
			sendErrorResponse(ctx, http.StatusBadRequest, "A paid order cannot be moved back to an unpaid status.")
			return
		}
		columns["payment_status"] = status
	}
	if raw, ok := updates["shippingStatus"]; ok {
		status, ok := raw.(string)
		if !ok || !models.IsValidShippingStatus(status) {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid shipping status.")
			return
		}
		columns["shipping_status"] = status
	}

	if len(columns) > 0 {
		if err := initializers.DB.Model(&order).Updates(columns).Error; err != nil {
			log.Println("Error updating order:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update order")
			return
		}
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Order updated successfully.",
		"order":   order,
	})
}

// DeleteOrder hard-deletes an order.
func DeleteOrder(ctx *gin.Context) {
	orderID, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	result := initializers.DB.Unscoped().Delete(&models.Order{}, orderID)
	if result.Error != nil {
		log.Println("Error deleting order:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete order.")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order deleted successfully."})
}
