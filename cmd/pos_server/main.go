package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ridloal/pos-desktop/internal/platform/config"
	"github.com/ridloal/pos-desktop/internal/platform/database"
	"github.com/ridloal/pos-desktop/internal/platform/logger"
	posAPI "github.com/ridloal/pos-desktop/internal/pos/api"
	posRepo "github.com/ridloal/pos-desktop/internal/pos/repository"
	posService "github.com/ridloal/pos-desktop/internal/pos/service"
)

func main() {
	// Load Config
	dbCfg := config.LoadDBConfig()
	serverCfg := config.LoadServerConfig("8090")
	lowStockCfg := config.LoadLowStockConfig()

	logger.Info("Starting POS Server...")

	// Setup Database
	db, err := database.Connect(dbCfg.Path)
	if err != nil {
		logger.Fatal("Failed to open database for POS Server", err)
	}
	defer db.Close()

	// Schema harus siap sebelum melayani request apa pun
	if err := database.EnsureSchema(context.Background(), db); err != nil {
		logger.Fatal("Failed to ensure database schema", err)
	}

	// Setup Dependencies
	productRepository := posRepo.NewSQLiteProductRepository(db)
	saleRepository := posRepo.NewSQLiteSaleRepository(db)
	inventoryService := posService.NewInventoryService(productRepository, lowStockCfg.Threshold, lowStockCfg.CronSpec)
	registerService := posService.NewRegisterService(saleRepository)
	inventoryHandler := posAPI.NewInventoryHandler(inventoryService)
	registerHandler := posAPI.NewRegisterHandler(registerService)

	// Setup Gin Router
	router := gin.Default()
	router.RedirectTrailingSlash = false

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiV1 := router.Group("/api/v1")
	inventoryHandler.RegisterRoutes(apiV1)
	registerHandler.RegisterRoutes(apiV1)

	logger.Info("POS Server running on port " + serverCfg.Port)
	logger.Info("POS Server using database at " + dbCfg.Path)
	if err := router.Run(serverCfg.Port); err != nil {
		logger.Error("Failed to run POS Server", err)
	}
}
