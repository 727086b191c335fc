package handler

import (
	"net/http"
	"time"

	"smartsave/internal/repository"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsRepo *repository.AnalyticsRepository
}

func NewAnalyticsHandler(analyticsRepo *repository.AnalyticsRepository) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsRepo: analyticsRepo}
}

// Financial serves the admin reporting aggregates. The report window is the
// trailing six months.
func (h *AnalyticsHandler) Financial(c *gin.Context) {
	reportType := c.DefaultQuery("type", "spendingTrends")
	since := time.Now().AddDate(0, 0, -180)

	var (
		result any
		err    error
	)
	switch reportType {
	case "spendingTrends":
		result, err = h.analyticsRepo.SpendingTrends(since)
	case "savings":
		result, err = h.analyticsRepo.SavingsByProfession(since)
	case "transactionVolume":
		result, err = h.analyticsRepo.TransactionVolume(since)
	case "professionSpending":
		result, err = h.analyticsRepo.ProfessionSpending(since)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report type"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch financial reports"})
		return
	}
	c.JSON(http.StatusOK, result)
}
