package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/electrotrade/eterp_backend/internal/apperrors"
	portssvc "github.com/electrotrade/eterp_backend/internal/core/ports/services"
	"github.com/electrotrade/eterp_backend/internal/dto"
	"github.com/electrotrade/eterp_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// tradeHandler handles HTTP requests for sales, purchases, payments and
// returns.
type tradeHandler struct {
	tradeService portssvc.TradeSvcFacade
}

// newTradeHandler creates a new tradeHandler.
func newTradeHandler(ts portssvc.TradeSvcFacade) *tradeHandler {
	return &tradeHandler{tradeService: ts}
}

// RegisterTradeRoutes registers routes related to trading documents.
func RegisterTradeRoutes(rg *gin.RouterGroup, tradeService portssvc.TradeSvcFacade) {
	h := newTradeHandler(tradeService)

	rg.POST("/sales", h.recordSale)
	rg.GET("/sales", h.listSales)
	rg.POST("/purchases", h.recordPurchase)
	rg.GET("/purchases", h.listPurchases)
	rg.POST("/payments", h.recordPayment)
	rg.GET("/payments", h.listPayments)
	rg.POST("/returns", h.recordReturn)
	rg.GET("/returns", h.listReturns)
}

// writeTradeError maps service errors onto HTTP status codes shared by all
// trade endpoints.
func writeTradeError(c *gin.Context, logger *slog.Logger, err error, failMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error(failMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": failMsg})
	}
}

// recordSale godoc
// @Summary Record a sale
// @Description Records a sale order against a customer with priced line items
// @Tags trade
// @Accept  json
// @Produce  json
// @Param   sale body dto.CreateSaleRequest true "Sale details"
// @Success 201 {object} dto.SaleOrderResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Party not found"
// @Failure 500 {object} map[string]string "Failed to record sale"
// @Security BearerAuth
// @Router /sales [post]
func (h *tradeHandler) recordSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	order, err := h.tradeService.RecordSale(c.Request.Context(), req, userID)
	if err != nil {
		writeTradeError(c, logger, err, "Failed to record sale")
		return
	}

	c.JSON(http.StatusCreated, dto.ToSaleOrderResponse(order))
}

// listSales godoc
// @Summary List sale orders
// @Description Retrieves a paginated list of sale orders, newest first
// @Tags trade
// @Produce  json
// @Param   limit query int false "Max results" default(20)
// @Param   offset query int false "Result offset" default(0)
// @Success 200 {array} dto.SaleOrderResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list sales"
// @Security BearerAuth
// @Router /sales [get]
func (h *tradeHandler) listSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters: " + err.Error()})
		return
	}

	orders, err := h.tradeService.ListSales(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list sales", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list sales"})
		return
	}

	res := make([]dto.SaleOrderResponse, len(orders))
	for i := range orders {
		res[i] = dto.ToSaleOrderResponse(&orders[i])
	}
	c.JSON(http.StatusOK, res)
}

// recordPurchase godoc
// @Summary Record a purchase
// @Description Records a purchase order against a supplier with priced line items
// @Tags trade
// @Accept  json
// @Produce  json
// @Param   purchase body dto.CreatePurchaseRequest true "Purchase details"
// @Success 201 {object} dto.PurchaseOrderResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Party not found"
// @Failure 500 {object} map[string]string "Failed to record purchase"
// @Security BearerAuth
// @Router /purchases [post]
func (h *tradeHandler) recordPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	order, err := h.tradeService.RecordPurchase(c.Request.Context(), req, userID)
	if err != nil {
		writeTradeError(c, logger, err, "Failed to record purchase")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPurchaseOrderResponse(order))
}

// listPurchases godoc
// @Summary List purchase orders
// @Description Retrieves a paginated list of purchase orders, newest first
// @Tags trade
// @Produce  json
// @Param   limit query int false "Max results" default(20)
// @Param   offset query int false "Result offset" default(0)
// @Success 200 {array} dto.PurchaseOrderResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list purchases"
// @Security BearerAuth
// @Router /purchases [get]
func (h *tradeHandler) listPurchases(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters: " + err.Error()})
		return
	}

	orders, err := h.tradeService.ListPurchases(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list purchases", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list purchases"})
		return
	}

	res := make([]dto.PurchaseOrderResponse, len(orders))
	for i := range orders {
		res[i] = dto.ToPurchaseOrderResponse(&orders[i])
	}
	c.JSON(http.StatusOK, res)
}

// recordPayment godoc
// @Summary Record a payment
// @Description Records a payment in from a customer or out to a supplier, moving the linked account balance atomically
// @Tags trade
// @Accept  json
// @Produce  json
// @Param   payment body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Party or account not found"
// @Failure 500 {object} map[string]string "Failed to record payment"
// @Security BearerAuth
// @Router /payments [post]
func (h *tradeHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	payment, err := h.tradeService.RecordPayment(c.Request.Context(), req, userID)
	if err != nil {
		writeTradeError(c, logger, err, "Failed to record payment")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// listPayments godoc
// @Summary List payments
// @Description Retrieves a paginated list of payments, newest first
// @Tags trade
// @Produce  json
// @Param   limit query int false "Max results" default(20)
// @Param   offset query int false "Result offset" default(0)
// @Success 200 {array} dto.PaymentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list payments"
// @Security BearerAuth
// @Router /payments [get]
func (h *tradeHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters: " + err.Error()})
		return
	}

	payments, err := h.tradeService.ListPayments(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list payments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payments"})
		return
	}

	res := make([]dto.PaymentResponse, len(payments))
	for i := range payments {
		res[i] = dto.ToPaymentResponse(&payments[i])
	}
	c.JSON(http.StatusOK, res)
}

// recordReturn godoc
// @Summary Record a return
// @Description Records a sale or purchase return reversing part of a party's balance
// @Tags trade
// @Accept  json
// @Produce  json
// @Param   return body dto.CreateReturnRequest true "Return details"
// @Success 201 {object} dto.ReturnResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Party not found"
// @Failure 500 {object} map[string]string "Failed to record return"
// @Security BearerAuth
// @Router /returns [post]
func (h *tradeHandler) recordReturn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	ret, err := h.tradeService.RecordReturn(c.Request.Context(), req, userID)
	if err != nil {
		writeTradeError(c, logger, err, "Failed to record return")
		return
	}

	c.JSON(http.StatusCreated, dto.ToReturnResponse(ret))
}

// listReturns godoc
// @Summary List returns
// @Description Retrieves a paginated list of returns, newest first
// @Tags trade
// @Produce  json
// @Param   limit query int false "Max results" default(20)
// @Param   offset query int false "Result offset" default(0)
// @Success 200 {array} dto.ReturnResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list returns"
// @Security BearerAuth
// @Router /returns [get]
func (h *tradeHandler) listReturns(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters: " + err.Error()})
		return
	}

	returns, err := h.tradeService.ListReturns(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list returns", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list returns"})
		return
	}

	res := make([]dto.ReturnResponse, len(returns))
	for i := range returns {
		res[i] = dto.ToReturnResponse(&returns[i])
	}
	c.JSON(http.StatusOK, res)
}
