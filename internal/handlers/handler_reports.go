package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/electrotrade/eterp_backend/internal/core/ports/services"
	"github.com/electrotrade/eterp_backend/internal/dto"
	"github.com/electrotrade/eterp_backend/internal/middleware"
	"github.com/electrotrade/eterp_backend/internal/utils/money"
	"github.com/gin-gonic/gin"
)

// reportHandler handles HTTP requests for ledger-wide reports.
type reportHandler struct {
	reportingService portssvc.ReportingService
}

// newReportHandler creates a new reportHandler.
func newReportHandler(rs portssvc.ReportingService) *reportHandler {
	return &reportHandler{reportingService: rs}
}

// RegisterReportRoutes registers routes related to reports.
func RegisterReportRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/customer-aging", h.customerAging)
		reports.GET("/financial-standing", h.financialStanding)
	}
}

// customerAging godoc
// @Summary Customer receivable aging report
// @Description Classifies each customer's outstanding balance into time-since-invoice buckets
// @Tags reports
// @Produce  json
// @Param   asOf query string false "Report date (YYYY-MM-DD), defaults to today"
// @Success 200 {array} dto.AgingRowResponse
// @Failure 400 {object} map[string]string "Invalid date parameter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute aging report"
// @Security BearerAuth
// @Router /reports/customer-aging [get]
func (h *reportHandler) customerAging(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asOf := time.Now().UTC()
	if asOfParam, err := dto.ParseOptionalDate("asOf", c.Query("asOf")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	} else if asOfParam != nil {
		asOf = *asOfParam
	}

	rows, err := h.reportingService.CustomerAging(c.Request.Context(), asOf)
	if err != nil {
		logger.Error("Failed to compute customer aging", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute aging report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAgingResponse(rows, money.KWDScale))
}

// financialStanding godoc
// @Summary Financial standing report
// @Description Computes company metrics for the current and previous month with period-over-period trends
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.FinancialStandingResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute financial standing"
// @Security BearerAuth
// @Router /reports/financial-standing [get]
func (h *reportHandler) financialStanding(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	standing, err := h.reportingService.FinancialStanding(c.Request.Context(), time.Now().UTC())
	if err != nil {
		logger.Error("Failed to compute financial standing", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute financial standing"})
		return
	}

	c.JSON(http.StatusOK, dto.ToFinancialStandingResponse(standing, money.KWDScale))
}
