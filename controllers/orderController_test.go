package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/autocare-store/autocare-api/middlewares"
	"github.com/autocare-store/autocare-api/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderTestRouter(principal models.Principal) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	attachPrincipal := func(ctx *gin.Context) {
		middlewares.SetPrincipal(ctx, principal)
	}
	router.POST("/order", attachPrincipal, CreateOrderFromCart)
	router.GET("/order", attachPrincipal, GetOrders)
	router.POST("/webhook/moyasar", HandlePaymentWebhook)
	return router
}

const validCheckoutBody = `{
	"fullname": "Jane Roe",
	"phone": "0555000111",
	"shippingAddress": "12 Main St",
	"paymentMethod": "creditcard"
}`

func TestCreateOrderFromCartWithoutCart(t *testing.T) {
	db := setupTestDB(t)
	router := newOrderTestRouter(models.Principal{UserID: 1, Role: models.RoleUser})

	recorder := postJSON(router, "/order", validCheckoutBody, nil)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Cart is empty.", body["message"])

	var orderCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	assert.Zero(t, orderCount)
}

func TestCreateOrderFromCartWithEmptyCart(t *testing.T) {
	db := setupTestDB(t)
	cart := models.Cart{UserID: 1}
	require.NoError(t, db.Create(&cart).Error)

	router := newOrderTestRouter(models.Principal{UserID: 1, Role: models.RoleUser})
	recorder := postJSON(router, "/order", validCheckoutBody, nil)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var orderCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	assert.Zero(t, orderCount)

	var itemCount int64
	db.Model(&models.OrderItem{}).Count(&itemCount)
	assert.Zero(t, itemCount)
}

func TestPaymentWebhookUnknownInvoice(t *testing.T) {
	t.Setenv("MOYASAR_WEBHOOK_SECRET", "hook-secret")

	db := setupTestDB(t)
	existing := models.Order{
		UserID:          1,
		Fullname:        "Jane Roe",
		Phone:           "0555000111",
		ShippingAddress: "12 Main St",
		TotalPrice:      2500,
		PaymentMethod:   models.PaymentMethodCreditCard,
		InvoiceID:       "inv_known",
		PaymentStatus:   models.PaymentInitiated,
		ShippingStatus:  models.ShippingProcessing,
	}
	require.NoError(t, db.Create(&existing).Error)

	router := newOrderTestRouter(models.Principal{})
	recorder := postJSON(router, "/webhook/moyasar",
		`{"id": "inv_missing", "status": "paid", "invoice_id": "inv_missing"}`,
		map[string]string{"X-Webhook-Token": "hook-secret"})

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var reloaded models.Order
	require.NoError(t, db.First(&reloaded, existing.ID).Error)
	assert.Equal(t, models.PaymentInitiated, reloaded.PaymentStatus)
	assert.Equal(t, models.ShippingProcessing, reloaded.ShippingStatus)
}

func TestPaymentWebhookRejectsBadToken(t *testing.T) {
	t.Setenv("MOYASAR_WEBHOOK_SECRET", "hook-secret")

	db := setupTestDB(t)
	existing := models.Order{
		UserID:         1,
		TotalPrice:     2500,
		InvoiceID:      "inv_known",
		PaymentStatus:  models.PaymentInitiated,
		ShippingStatus: models.ShippingProcessing,
	}
	require.NoError(t, db.Create(&existing).Error)

	router := newOrderTestRouter(models.Principal{})
	recorder := postJSON(router, "/webhook/moyasar",
		`{"id": "inv_known", "status": "paid", "invoice_id": "inv_known"}`,
		map[string]string{"X-Webhook-Token": "wrong"})

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	var reloaded models.Order
	require.NoError(t, db.First(&reloaded, existing.ID).Error)
	assert.Equal(t, models.PaymentInitiated, reloaded.PaymentStatus)
}

func TestGetOrdersFloorsBadPagination(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.Order{
		UserID:         1,
		TotalPrice:     1000,
		PaymentStatus:  models.PaymentPending,
		ShippingStatus: models.ShippingProcessing,
	}).Error)

	router := newOrderTestRouter(models.Principal{UserID: 9, Role: models.RoleAdmin})
	recorder := doJSON(router, http.MethodGet, "/order?page=0&limit=0", "", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Orders   []models.Order `json:"orders"`
		Metadata struct {
			Limit       int  `json:"limit"`
			CurrentPage int  `json:"currentPage"`
			HasNextPage bool `json:"hasNextPage"`
		} `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Len(t, body.Orders, 1)
	assert.Equal(t, 15, body.Metadata.Limit)
	assert.Equal(t, 1, body.Metadata.CurrentPage)
	assert.False(t, body.Metadata.HasNextPage)
}
