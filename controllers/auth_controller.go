package controllers

import (
	"fmt"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/green-citizen/api-go/models"
	"github.com/green-citizen/api-go/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// validateUsernamePattern validates username format and constraints
func validateUsernamePattern(username string) error {
	trimmedUsername := strings.TrimSpace(username)

	if len(trimmedUsername) < 3 {
		return fmt.Errorf("username must be at least 3 characters long")
	}
	if len(trimmedUsername) > 20 {
		return fmt.Errorf("username must be no more than 20 characters long")
	}

	startsWithLetter, _ := regexp.MatchString(`^[a-zA-Z]`, trimmedUsername)
	if !startsWithLetter {
		return fmt.Errorf("username must start with a letter")
	}

	validPattern, _ := regexp.MatchString(`^[a-zA-Z][a-zA-Z0-9_]*$`, trimmedUsername)
	if !validPattern {
		return fmt.Errorf("username can only contain letters, numbers, and underscores")
	}

	reserved := []string{"admin", "root", "api", "www", "test", "demo", "user", "guest", "null", "undefined"}
	for _, reservedWord := range reserved {
		if strings.ToLower(trimmedUsername) == reservedWord {
			return fmt.Errorf("this username is reserved and cannot be used")
		}
	}

	return nil
}

func generateAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func (ac *AuthController) Register(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
		District string `json:"district" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	if err := validateUsernamePattern(input.Username); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password", "success": false})
		return
	}

	user := models.User{
		Username: strings.TrimSpace(input.Username),
		Email:    strings.ToLower(input.Email),
		Password: string(hashedPassword),
		District: input.District,
		Role:     "citizen",
	}

	if err := ac.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Username or email already taken", "success": false})
		return
	}

	token, err := generateAccessToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token", "success": false})
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{
		Success: true,
		Data:    gin.H{"token": token, "user": user},
		Message: "Registration successful",
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	var user models.User
	if err := ac.DB.Where("email = ?", strings.ToLower(input.Email)).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials", "success": false})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials", "success": false})
		return
	}

	token, err := generateAccessToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token", "success": false})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    gin.H{"token": token, "user": user},
		Message: "Login successful",
	})
}

func (ac *AuthController) GetProfile(c *gin.Context) {
	claims := utils.GetUser(c)

	var user models.User
	if err := ac.DB.First(&user, claims.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found", "success": false})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: user})
}

func (ac *AuthController) UpdateProfile(c *gin.Context) {
	claims := utils.GetUser(c)

	var input struct {
		DisplayName        *string `json:"display_name"`
		District           *string `json:"district"`
		AllowPublicProfile *bool   `json:"allow_public_profile"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	var user models.User
	if err := ac.DB.First(&user, claims.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found", "success": false})
		return
	}

	updates := map[string]interface{}{}
	if input.DisplayName != nil {
		updates["display_name"] = *input.DisplayName
	}
	if input.District != nil {
		updates["district"] = *input.District
	}
	if input.AllowPublicProfile != nil {
		updates["allow_public_profile"] = *input.AllowPublicProfile
	}

	if len(updates) > 0 {
		if err := ac.DB.Model(&user).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile", "success": false})
			return
		}
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    user,
		Message: "Profile updated successfully",
	})
}
