package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-pos/models"
	"github.com/yeremiapane/restaurant-pos/utils"
)

// SeedReferenceData populates the reference tables on first boot so a
// fresh install has something to point the frontend at. It never touches
// a database that already holds data.
func SeedReferenceData(db *gorm.DB) error {
	var tableCount int64
	if err := db.Model(&models.Table{}).Count(&tableCount).Error; err != nil {
		return err
	}
	if tableCount == 0 {
		for number := 1; number <= 5; number++ {
			table := models.Table{TableNumber: number}
			if err := db.Create(&table).Error; err != nil {
				return err
			}
			for seat := 1; seat <= 4; seat++ {
				row := models.Seat{
					SeatNumber: fmt.Sprintf("S%d", seat),
					TableID:    table.ID,
				}
				if err := db.Create(&row).Error; err != nil {
					return err
				}
			}
		}
		utils.InfoLogger.Println("Seeded 5 tables with 4 seats each")
	}

	var foodCount int64
	if err := db.Model(&models.Food{}).Count(&foodCount).Error; err != nil {
		return err
	}
	if foodCount == 0 {
		starter := []models.Food{
			{Name: "Burger", Price: 8.50},
			{Name: "Margherita Pizza", Price: 11.00},
			{Name: "Caesar Salad", Price: 7.25},
			{Name: "French Fries", Price: 3.50},
			{Name: "Iced Tea", Price: 2.00},
		}
		if err := db.Create(&starter).Error; err != nil {
			return err
		}
		utils.InfoLogger.Printf("Seeded %d starter foods", len(starter))
	}

	return nil
}
