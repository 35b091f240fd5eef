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

type InventoryHandler struct {
	inventoryService service.InventoryService
}

func NewInventoryHandler(is service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: is}
}

func (h *InventoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	productRoutes := router.Group("/products")
	{
		productRoutes.GET("", h.ListProducts)
		productRoutes.POST("", h.AddProduct)
		productRoutes.GET("/sku-check", h.CheckSku)
	}
}

// ListProducts mengembalikan semua produk aktif. Search/filter kategori terjadi
// di shell, bukan di sini.
func (h *InventoryHandler) ListProducts(c *gin.Context) {
	products, err := h.inventoryService.ListProducts(c.Request.Context())
	if err != nil {
		logger.Error("ListProducts Hdl: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *InventoryHandler) AddProduct(c *gin.Context) {
	var req domain.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("AddProduct Hdl: bad request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	product, err := h.inventoryService.AddProduct(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateSku) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "sku": req.SKU}) // 409 Conflict
			return
		}
		if errors.Is(err, service.ErrInvalidProduct) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("AddProduct Hdl: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add product"})
		return
	}

	c.JSON(http.StatusCreated, product)
}

func (h *InventoryHandler) CheckSku(c *gin.Context) {
	sku := c.Query("sku")
	if sku == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sku query parameter is required"})
		return
	}

	exists, err := h.inventoryService.CheckSku(c.Request.Context(), sku)
	if err != nil {
		logger.Error("CheckSku Hdl: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check sku"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": exists})
}
