package controllers

import (
	"net/http"
	"testing"

	"github.com/autocare-store/autocare-api/middlewares"
	"github.com/autocare-store/autocare-api/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartTestRouter(principal models.Principal) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	attachPrincipal := func(ctx *gin.Context) {
		middlewares.SetPrincipal(ctx, principal)
	}
	router.PUT("/cart", attachPrincipal, UpdateCartItem)
	router.DELETE("/cart", attachPrincipal, RemoveFromCart)
	return router
}

func TestUpdateCartItemWithoutCart(t *testing.T) {
	setupTestDB(t)
	router := newCartTestRouter(models.Principal{UserID: 1, Role: models.RoleUser})

	recorder := doJSON(router, http.MethodPut, "/cart", `{"productId": 1, "quantity": 2}`, nil)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Cart not found.")
}

func TestUpdateCartItemDatabaseErrorIsNotNotFound(t *testing.T) {
	db := setupTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	router := newCartTestRouter(models.Principal{UserID: 1, Role: models.RoleUser})
	recorder := doJSON(router, http.MethodPut, "/cart", `{"productId": 1, "quantity": 2}`, nil)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

func TestRemoveFromCartWithoutCart(t *testing.T) {
	setupTestDB(t)
	router := newCartTestRouter(models.Principal{UserID: 1, Role: models.RoleUser})

	recorder := doJSON(router, http.MethodDelete, "/cart", `{"productId": 1}`, nil)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestRemoveFromCartDatabaseErrorIsNotNotFound(t *testing.T) {
	db := setupTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	router := newCartTestRouter(models.Principal{UserID: 1, Role: models.RoleUser})
	recorder := doJSON(router, http.MethodDelete, "/cart", `{"productId": 1}`, nil)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}
