package handler

import (
	"strconv"
	"time"

	"github.com/almadina/pos-api/internal/application/service"
	"github.com/almadina/pos-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles analytics and profit report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Analytics handles GET /analytics?period=30d
func (h *ReportHandler) Analytics(c *gin.Context) {
	period := c.DefaultQuery("period", service.PeriodMonth)

	report, err := h.reportService.GetAnalytics(c.Request.Context(), period)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Analytics retrieved successfully", report)
}

// MonthlyProfit handles GET /reports/monthly?year=2026&month=8.
// Defaults to the current month.
func (h *ReportHandler) MonthlyProfit(c *gin.Context) {
	now := time.Now()

	year := now.Year()
	if yearStr := c.Query("year"); yearStr != "" {
		y, err := strconv.Atoi(yearStr)
		if err != nil {
			response.BadRequest(c, "Invalid year")
			return
		}
		year = y
	}

	month := now.Month()
	if monthStr := c.Query("month"); monthStr != "" {
		m, err := strconv.Atoi(monthStr)
		if err != nil {
			response.BadRequest(c, "Invalid month")
			return
		}
		month = time.Month(m)
	}

	report, err := h.reportService.GetMonthlyProfit(c.Request.Context(), year, month)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Monthly profit report retrieved successfully", report)
}
