package controllers

import (
	"net/http"
	"testing"

	"github.com/autocare-store/autocare-api/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auth/signup", Signup)
	return router
}

func TestSignupDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.User{
		Name:     "Jane Roe",
		Email:    "jane@example.com",
		Mobile:   "0555000111",
		Password: "hashed",
		Role:     models.RoleUser,
	}).Error)

	router := newAuthTestRouter()
	recorder := postJSON(router, "/auth/signup",
		`{"name": "Other", "email": "jane@example.com", "mobile": "0555999888", "password": "secret123"}`, nil)

	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "user already exists")

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSignupDuplicateMobile(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.User{
		Name:     "Jane Roe",
		Email:    "jane@example.com",
		Mobile:   "0555000111",
		Password: "hashed",
		Role:     models.RoleUser,
	}).Error)

	router := newAuthTestRouter()
	recorder := postJSON(router, "/auth/signup",
		`{"name": "Other", "email": "other@example.com", "mobile": "0555000111", "password": "secret123"}`, nil)

	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "mobile number already in use")

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSignupIgnoresRequestedRole(t *testing.T) {
	db := setupTestDB(t)
	router := newAuthTestRouter()

	recorder := postJSON(router, "/auth/signup",
		`{"name": "Jane Roe", "email": "jane@example.com", "mobile": "0555000111", "password": "secret123", "role": "admin"}`, nil)

	assert.Equal(t, http.StatusCreated, recorder.Code)

	var user models.User
	require.NoError(t, db.Where("email = ?", "jane@example.com").First(&user).Error)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "secret123", user.Password)
}
