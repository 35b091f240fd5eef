package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ridloal/pos-desktop/internal/platform/logger"
	"github.com/ridloal/pos-desktop/internal/pos/domain"
	"github.com/ridloal/pos-desktop/internal/pos/repository"
	"github.com/ridloal/pos-desktop/internal/pos/service"
)

type RegisterHandler struct {
	registerService service.RegisterService
}

func NewRegisterHandler(rs service.RegisterService) *RegisterHandler {
	return &RegisterHandler{registerService: rs}
}

func (h *RegisterHandler) RegisterRoutes(router *gin.RouterGroup) {
	saleRoutes := router.Group("/sales")
	{
		saleRoutes.POST("", h.CreateSale)
		saleRoutes.GET("", h.ListSales)
	}
}

func (h *RegisterHandler) CreateSale(c *gin.Context) {
	var req domain.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("CreateSale Hdl: bad request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	sale, err := h.registerService.CreateSale(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) || errors.Is(err, service.ErrInvalidPaymentMethod) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, repository.ErrTransactionAborted) {
			// Transaksi sudah di-rollback total, store tetap konsisten
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("CreateSale Hdl: unhandled service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record sale"})
		return
	}

	c.JSON(http.StatusCreated, domain.CreateSaleResponse{Sale: *sale})
}

func (h *RegisterHandler) ListSales(c *gin.Context) {
	sales, err := h.registerService.ListSales(c.Request.Context())
	if err != nil {
		logger.Error("ListSales Hdl: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve sales"})
		return
	}
	c.JSON(http.StatusOK, sales)
}
