package controllers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/autocare-store/autocare-api/initializers"
	"github.com/autocare-store/autocare-api/models"
	"github.com/autocare-store/autocare-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	// Default cost for bcrypt password hashing
	bcryptCost = 10

	// Standard response messages
	msgInvalidInput          = "invalid input"
	msgUserAlreadyExists     = "user already exists"
	msgMobileAlreadyExists   = "mobile number already in use"
	msgFailedToHashPassword  = "failed to hash password"
	msgInvalidCredentials    = "invalid email or password"
	msgFailedToGenerateToken = "failed to generate token"
	msgInternalServerError   = "Internal server error"
	msgTokenRequired         = "Token is required."
	msgTokenNotFound         = "Token not found."
	msgAlreadyLoggedOut      = "User is already logged out."
	msgLoggedOut             = "Logged out successfully."
	msgUserCreated           = "User registered successfully"
	msgUserNotFound          = "user with this email does not exist"
	msgResetCodeSent         = "Check your email for a password reset code."
	msgResetCodeError        = "There was an error trying to generate a reset code. Try again later."
	msgInvalidResetCode      = "Invalid reset code"
	msgUnableToResetPassword = "unable to reset password"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func generateJWT(user models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Hour * 24).Unix(),
	})

	jwtSecret := os.Getenv("JWT_SECRET")
	return token.SignedString([]byte(jwtSecret))
}

func findUserByEmail(email string) (models.User, error) {
	var user models.User
	result := initializers.DB.Where("email = ?", email).First(&user)
	return user, result.Error
}

// Send the password reset code to the user's email
func sendPasswordResetEmail(user models.User, resetCode string) error {
	emailData := utils.EmailData{
		Name:    user.Name,
		Message: "You requested a password reset. Use the code below to reset your password.",
		Code:    resetCode,
	}

	templatePath := filepath.Join("templates", "reset_password.html")
	return utils.SendEmail(user.Email, "Password Reset (No Reply)", emailData, templatePath)
}

// Signup handles user registration
func Signup(ctx *gin.Context) {
	var signUpData models.User
	if err := ctx.ShouldBindJSON(&signUpData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var existing models.User
	query := initializers.DB.Where("email = ?", signUpData.Email)
	if signUpData.Mobile != "" {
		query = initializers.DB.Where("email = ? OR mobile = ?", signUpData.Email, signUpData.Mobile)
	}
	result := query.Find(&existing)
	if result.Error != nil {
		log.Println("Database error during user check:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if result.RowsAffected > 0 {
		if existing.Email == signUpData.Email {
			sendErrorResponse(ctx, http.StatusConflict, msgUserAlreadyExists)
		} else {
			sendErrorResponse(ctx, http.StatusConflict, msgMobileAlreadyExists)
		}
		return
	}

	hashedPassword, err := hashPassword(signUpData.Password)
	if err != nil {
		log.Println("Password hashing error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToHashPassword)
		return
	}
	signUpData.Password = hashedPassword

	// Roles are never taken from the request body
	signUpData.Role = models.RoleUser

	if result := initializers.DB.Create(&signUpData); result.Error != nil {
		log.Println("User creation error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": msgUserCreated})
}

// Login handles user authentication and issues a bearer token
func Login(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	user, err := findUserByEmail(loginData.Email)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	if err := comparePasswords(user.Password, loginData.Password); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	tokenString, err := generateJWT(user)
	if err != nil {
		log.Println("JWT generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
		return
	}

	// Record the issued token so logout can invalidate it server-side
	tokenRecord := models.Token{UserID: user.ID, Token: tokenString, IsValid: true}
	if result := initializers.DB.Create(&tokenRecord); result.Error != nil {
		log.Println("Token record error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	// Logging in reactivates a deactivated account
	if user.IsDeleted {
		initializers.DB.Model(&user).Update("is_deleted", false)
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"token": tokenString,
		"role":  user.Role,
	})
}

// Logout invalidates the presented bearer token
func Logout(ctx *gin.Context) {
	tokenString := ctx.GetHeader("Authorization")
	if tokenString == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, msgTokenRequired)
		return
	}
	tokenString = trimBearer(tokenString)

	var tokenRecord models.Token
	err := initializers.DB.Where("token = ?", tokenString).First(&tokenRecord).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sendErrorResponse(ctx, http.StatusNotFound, msgTokenNotFound)
		return
	}
	if err != nil {
		log.Println("Database error during logout:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	if !tokenRecord.IsValid {
		sendErrorResponse(ctx, http.StatusBadRequest, msgAlreadyLoggedOut)
		return
	}

	if result := initializers.DB.Model(&tokenRecord).Update("is_valid", false); result.Error != nil {
		log.Println("Error invalidating token:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgLoggedOut})
}

// SendForgetCode emails a password reset code to the user
func SendForgetCode(ctx *gin.Context) {
	type ForgotPasswordBody struct {
		Email string `json:"email" binding:"required,email"`
	}

	var forgotPasswordData ForgotPasswordBody
	if err := ctx.ShouldBindJSON(&forgotPasswordData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	user, err := findUserByEmail(forgotPasswordData.Email)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgUserNotFound)
		return
	}

	code, err := utils.GenerateCode(5)
	if err != nil {
		log.Println("Reset code generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgResetCodeError)
		return
	}

	if result := initializers.DB.Model(&user).Update("forget_code", code); result.Error != nil {
		log.Println("Error saving reset code:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgResetCodeError)
		return
	}

	if err := sendPasswordResetEmail(user, code); err != nil {
		log.Println("Error sending password reset email:", err)
	} else {
		log.Println("Password reset email sent successfully to:", user.Email)
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgResetCodeSent})
}

// ResetPassword resets a user's password using the emailed code
func ResetPassword(ctx *gin.Context) {
	type ResetPasswordInfo struct {
		Email    string `json:"email" binding:"required,email"`
		Code     string `json:"code" binding:"required"`
		Password string `json:"password" binding:"required,min=8"`
	}

	var resetPasswordData ResetPasswordInfo
	if err := ctx.ShouldBindJSON(&resetPasswordData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var user models.User
	err := initializers.DB.
		Where("email = ? AND forget_code = ? AND forget_code <> ''", resetPasswordData.Email, resetPasswordData.Code).
		First(&user).Error
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidResetCode)
		return
	}

	hashedPassword, err := hashPassword(resetPasswordData.Password)
	if err != nil {
		log.Println("Password hashing error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToHashPassword)
		return
	}

	result := initializers.DB.Model(&user).Updates(map[string]any{
		"password":    hashedPassword,
		"forget_code": "",
	})
	if result.Error != nil {
		log.Println("Error resetting password:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgUnableToResetPassword)
		return
	}

	// A password reset invalidates every live session
	initializers.DB.Model(&models.Token{}).
		Where("user_id = ? AND is_valid = ?", user.ID, true).
		Update("is_valid", false)

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Password reset successful"})
}

func trimBearer(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && header[:len(prefix)] == prefix {
		return header[len(prefix):]
	}
	return header
}
