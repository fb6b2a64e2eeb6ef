package routes

import (
	"log"
	"net/http"
	"os"
	"strconv"

	_ "github.com/RamziBenssaci/ren-sub000/docs" // This will be auto-generated
	"github.com/RamziBenssaci/ren-sub000/internal/adapter/http/handlers"
	repository2 "github.com/RamziBenssaci/ren-sub000/internal/adapter/persistence/repository"
	"github.com/RamziBenssaci/ren-sub000/internal/infrastructure/cache"
	"github.com/RamziBenssaci/ren-sub000/internal/infrastructure/database"
	"github.com/RamziBenssaci/ren-sub000/internal/usecase"
	"github.com/RamziBenssaci/ren-sub000/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	lifecycleRepo := repository2.NewLifecycleDynamoRepository(ddb)
	inventoryRepo := repository2.NewInventoryDynamoRepository(ddb)
	facilityRepo := repository2.NewFacilityDynamoRepository(ddb)

	var dashboardCache interfaces.IDashboardCache
	if rdb := cache.ConnectRedis(); rdb != nil {
		dashboardCache = cache.NewRedisDashboardCache(rdb)
	}

	strictStock := os.Getenv("STRICT_STOCK") == "true"
	if strictStock {
		log.Printf("[inventory][routes] strict stock mode enabled")
	}

	lifecycleUseCase := usecase.NewLifecycleUseCase(lifecycleRepo)
	inventoryUseCase := usecase.NewInventoryUseCase(inventoryRepo, strictStock)
	dashboardUseCase := usecase.NewDashboardUseCase(facilityRepo, dashboardCache)

	lifecycleHandler := handlers.NewLifecycleHandler(lifecycleUseCase)
	inventoryHandler := handlers.NewInventoryHandler(inventoryUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAdminRoutes(v1, lifecycleHandler, inventoryHandler, dashboardHandler)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
