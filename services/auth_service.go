package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-pos/models"
	"github.com/yeremiapane/restaurant-pos/utils"
)

// AuthResult is what both register and login hand back to the client.
type AuthResult struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

// Register creates a user and returns a fresh token. Anonymous callers
// may only register waiters; an authenticated manager or admin may
// create users of any role.
func (as *AuthService) Register(username, password, role, callerRole string) (*AuthResult, error) {
	if username == "" || password == "" {
		return nil, utils.Validationf("username and password are required")
	}
	if !models.ValidRole(role) {
		return nil, utils.Validationf("invalid role: %s", role)
	}

	privileged := callerRole == models.RoleManager || callerRole == models.RoleAdmin
	if !privileged && role != models.RoleWaiter {
		return nil, utils.Validationf("public registration is only allowed for waiter")
	}

	var existing models.User
	err := as.DB.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil, utils.Validationf("username already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username: username,
		Password: string(hashed),
		Role:     role,
	}
	if err := as.DB.Create(&user).Error; err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("New user registered: %s (role=%s)", user.Username, user.Role)
	return &AuthResult{Token: token, Role: user.Role}, nil
}

// Login verifies credentials and issues a bearer token.
func (as *AuthService) Login(username, password string) (*AuthResult, error) {
	var user models.User
	if err := as.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.Unauthorizedf("invalid username or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, utils.Unauthorizedf("invalid username or password")
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Login successful for user: %s (role=%s)", user.Username, user.Role)
	return &AuthResult{Token: token, Role: user.Role}, nil
}
