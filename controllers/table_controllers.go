package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-pos/models"
	"github.com/yeremiapane/restaurant-pos/utils"
)

type TableController struct {
	DB *gorm.DB
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{DB: db}
}

// GetAllTables -> every table with its seats.
func (tc *TableController) GetAllTables(c *gin.Context) {
	var tables []models.Table
	if err := tc.DB.Preload("Seats").Order("table_number ASC").Find(&tables).Error; err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

// CreateTable -> new table with its labeled seats, in one transaction.
func (tc *TableController) CreateTable(c *gin.Context) {
	var req struct {
		TableNumber int      `json:"table_number" binding:"required,min=1"`
		SeatNumbers []string `json:"seat_numbers" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var table models.Table
	err := tc.DB.Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.Table{}).Where("table_number = ?", req.TableNumber).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return utils.Validationf("table %d already exists", req.TableNumber)
		}

		table = models.Table{TableNumber: req.TableNumber}
		if err := tx.Create(&table).Error; err != nil {
			return err
		}

		for _, label := range req.SeatNumbers {
			seat := models.Seat{SeatNumber: label, TableID: table.ID}
			if err := tx.Create(&seat).Error; err != nil {
				return err
			}
			table.Seats = append(table.Seats, seat)
		}
		return nil
	})
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("New table created: %d with %d seats", table.TableNumber, len(table.Seats))
	utils.RespondJSON(c, http.StatusCreated, "Table created", table)
}
