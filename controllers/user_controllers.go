package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-pos/models"
	"github.com/yeremiapane/restaurant-pos/services"
	"github.com/yeremiapane/restaurant-pos/utils"
)

type UserController struct {
	DB   *gorm.DB
	Auth *services.AuthService
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Auth: services.NewAuthService(db)}
}

// Register creates a user account. The endpoint is public; the caller's
// role (if a valid token is attached) decides which roles it may create.
func (uc *UserController) Register(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
		Role     string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	result, err := uc.Auth.Register(req.Username, req.Password, strings.ToUpper(req.Role), callerRole(c))
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "User registered", result)
}

// Login -> returns a bearer token and the role string.
func (uc *UserController) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	result, err := uc.Auth.Login(req.Username, req.Password)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Login successful", result)
}

// GetProfile -> the user behind the presented token.
func (uc *UserController) GetProfile(c *gin.Context) {
	userIDValue, exists := c.Get("user_id")
	if !exists {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	userID, ok := userIDValue.(uint)
	if !ok {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("invalid user id type"))
		return
	}

	var user models.User
	if err := uc.DB.First(&user, userID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("user not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Profile data retrieved successfully", user)
}

// callerRole extracts the role from an optional bearer token. Register
// is public, so a missing or bad token just means an anonymous caller.
func callerRole(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	claims, err := utils.ParseToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		return ""
	}
	return claims.Role
}
