package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-pos/services"
	"github.com/yeremiapane/restaurant-pos/utils"
)

type ReportController struct {
	Service *services.ReportService
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{Service: services.NewReportService(db)}
}

func (rc *ReportController) GetTopSellingFoods(c *gin.Context) {
	reports, err := rc.Service.TopSellingFoods()
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Top selling foods", reports)
}

func (rc *ReportController) GetLeastSellingFoods(c *gin.Context) {
	reports, err := rc.Service.LeastSellingFoods()
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Least selling foods", reports)
}

func (rc *ReportController) GetMonthlySales(c *gin.Context) {
	reports, err := rc.Service.MonthlySales()
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Monthly sales", reports)
}

func (rc *ReportController) GetTableUsage(c *gin.Context) {
	reports, err := rc.Service.TableUsage()
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table usage", reports)
}
