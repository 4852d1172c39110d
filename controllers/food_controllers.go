package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-pos/models"
	"github.com/yeremiapane/restaurant-pos/utils"
)

type FoodController struct {
	DB *gorm.DB
}

func NewFoodController(db *gorm.DB) *FoodController {
	return &FoodController{DB: db}
}

// GetAllFoods -> the catalog, any authenticated role.
func (fc *FoodController) GetAllFoods(c *gin.Context) {
	var foods []models.Food
	if err := fc.DB.Order("name ASC").Find(&foods).Error; err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of foods", foods)
}

// CreateFood -> add a catalog entry (manager/admin).
func (fc *FoodController) CreateFood(c *gin.Context) {
	var req struct {
		Name  string   `json:"name" binding:"required"`
		Price *float64 `json:"price" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if *req.Price < 0 {
		utils.RespondServiceError(c, utils.Validationf("price cannot be negative"))
		return
	}

	food := models.Food{Name: req.Name, Price: *req.Price}
	if err := fc.DB.Create(&food).Error; err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("New food created: %s (price=%.2f)", food.Name, food.Price)
	utils.RespondJSON(c, http.StatusCreated, "Food created", food)
}

// UpdateFood -> rename/reprice a catalog entry (manager/admin).
func (fc *FoodController) UpdateFood(c *gin.Context) {
	foodID, ok := pathID(c, "food_id")
	if !ok {
		return
	}

	var req struct {
		Name  string   `json:"name" binding:"required"`
		Price *float64 `json:"price" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if *req.Price < 0 {
		utils.RespondServiceError(c, utils.Validationf("price cannot be negative"))
		return
	}

	var food models.Food
	if err := fc.DB.First(&food, foodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondServiceError(c, utils.NotFoundf("food not found with id %d", foodID))
			return
		}
		utils.RespondServiceError(c, err)
		return
	}

	food.Name = req.Name
	food.Price = *req.Price
	if err := fc.DB.Save(&food).Error; err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Food updated", food)
}

// DeleteFood -> remove a catalog entry (admin only).
func (fc *FoodController) DeleteFood(c *gin.Context) {
	foodID, ok := pathID(c, "food_id")
	if !ok {
		return
	}

	var food models.Food
	if err := fc.DB.First(&food, foodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondServiceError(c, utils.NotFoundf("food not found with id %d", foodID))
			return
		}
		utils.RespondServiceError(c, err)
		return
	}

	if err := fc.DB.Delete(&food).Error; err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Food deleted", gin.H{"id": food.ID})
}
