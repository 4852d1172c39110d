package services

import (
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-pos/models"
)

// Report projections aggregate only over submitted (or paid) groups;
// unsubmitted groups never count.

type FoodSalesReport struct {
	FoodID        uint    `json:"id"`
	Name          string  `json:"name"`
	TotalQuantity int64   `json:"total_quantity"`
	TotalRevenue  float64 `json:"total_revenue"`
}

type MonthlySalesReport struct {
	Year         int     `json:"year"`
	Month        int     `json:"month"`
	TotalGroups  int64   `json:"total_groups"`
	TotalRevenue float64 `json:"total_revenue"`
}

type TableUsageReport struct {
	TableID     uint  `json:"table_id"`
	TableNumber int   `json:"table_number"`
	UsageCount  int64 `json:"usage_count"`
}

type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db}
}

// TopSellingFoods ranks foods with sales by total quantity, descending.
func (rs *ReportService) TopSellingFoods() ([]FoodSalesReport, error) {
	var rows []FoodSalesReport
	err := rs.DB.Model(&models.Food{}).
		Select("foods.id AS food_id, foods.name AS name, "+
			"SUM(order_items.quantity) AS total_quantity, "+
			"SUM(order_items.quantity * foods.price) AS total_revenue").
		Joins("JOIN order_items ON order_items.food_id = foods.id").
		Joins("JOIN dining_groups ON dining_groups.id = order_items.group_id AND dining_groups.submitted = ?", true).
		Group("foods.id, foods.name").
		Order("total_quantity DESC").
		Scan(&rows).Error
	return rows, err
}

// LeastSellingFoods ranks all foods ascending and keeps foods that never
// sold at all, reporting them with zero quantity and revenue.
func (rs *ReportService) LeastSellingFoods() ([]FoodSalesReport, error) {
	var rows []FoodSalesReport
	err := rs.DB.Model(&models.Food{}).
		Select("foods.id AS food_id, foods.name AS name, "+
			"COALESCE(SUM(CASE WHEN dining_groups.id IS NULL THEN 0 ELSE order_items.quantity END), 0) AS total_quantity, "+
			"COALESCE(SUM(CASE WHEN dining_groups.id IS NULL THEN 0 ELSE order_items.quantity * foods.price END), 0) AS total_revenue").
		Joins("LEFT JOIN order_items ON order_items.food_id = foods.id").
		Joins("LEFT JOIN dining_groups ON dining_groups.id = order_items.group_id AND dining_groups.submitted = ?", true).
		Group("foods.id, foods.name").
		Order("total_quantity ASC").
		Scan(&rows).Error
	return rows, err
}

// MonthlySales buckets submitted groups by calendar month. The revenue
// per group comes from one portable join; the month bucketing happens
// here rather than in dialect-specific date SQL.
func (rs *ReportService) MonthlySales() ([]MonthlySalesReport, error) {
	type groupRevenue struct {
		ID        uint
		CreatedAt time.Time
		Revenue   float64
	}

	var rows []groupRevenue
	err := rs.DB.Model(&models.DiningGroup{}).
		Select("dining_groups.id AS id, dining_groups.created_at AS created_at, "+
			"COALESCE(SUM(order_items.quantity * foods.price), 0) AS revenue").
		Joins("LEFT JOIN order_items ON order_items.group_id = dining_groups.id").
		Joins("LEFT JOIN foods ON foods.id = order_items.food_id").
		Where("dining_groups.submitted = ?", true).
		Group("dining_groups.id, dining_groups.created_at").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	type yearMonth struct {
		year  int
		month int
	}
	buckets := make(map[yearMonth]*MonthlySalesReport)
	for _, row := range rows {
		key := yearMonth{row.CreatedAt.Year(), int(row.CreatedAt.Month())}
		bucket, ok := buckets[key]
		if !ok {
			bucket = &MonthlySalesReport{Year: key.year, Month: key.month}
			buckets[key] = bucket
		}
		bucket.TotalGroups++
		bucket.TotalRevenue += row.Revenue
	}

	reports := make([]MonthlySalesReport, 0, len(buckets))
	for _, bucket := range buckets {
		reports = append(reports, *bucket)
	}
	sort.Slice(reports, func(i, j int) bool {
		if reports[i].Year != reports[j].Year {
			return reports[i].Year < reports[j].Year
		}
		return reports[i].Month < reports[j].Month
	})
	return reports, nil
}

// TableUsage counts submitted groups per table, busiest tables first.
func (rs *ReportService) TableUsage() ([]TableUsageReport, error) {
	var rows []TableUsageReport
	err := rs.DB.Model(&models.Table{}).
		Select("tables.id AS table_id, tables.table_number AS table_number, "+
			"COUNT(dining_groups.id) AS usage_count").
		Joins("LEFT JOIN dining_groups ON dining_groups.table_id = tables.id AND dining_groups.submitted = ?", true).
		Group("tables.id, tables.table_number").
		Order("usage_count DESC").
		Scan(&rows).Error
	return rows, err
}
