package routes

import (
	"github.com/RamziBenssaci/ren-sub000/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEntities   = "/entities"
	PathInventory  = "/inventory"
	PathFacilities = "/facilities"
	PathDashboard  = "/dashboard"
)

func addAdminRoutes(rg *gin.RouterGroup, lifecycleHandler *handlers.LifecycleHandler, inventoryHandler *handlers.InventoryHandler, dashboardHandler *handlers.DashboardHandler) {
	entities := rg.Group(PathEntities)
	{
		// One route set serves contracts, purchase orders, transactions and
		// reports; the kind travels in the payload or query string.
		entities.POST("", lifecycleHandler.CreateEntity)
		entities.GET("", lifecycleHandler.ListEntities)
		entities.GET("/:id", lifecycleHandler.GetEntity)
		entities.GET("/:id/presentation", lifecycleHandler.PresentEntity)
		entities.PATCH("/:id/status", lifecycleHandler.TransitionEntity)
		entities.DELETE("/:id", lifecycleHandler.DeleteEntity)
	}

	inventory := rg.Group(PathInventory)
	{
		inventory.POST("/items", inventoryHandler.AddItem)
		inventory.GET("/items", inventoryHandler.ListItems)
		inventory.GET("/items/low-stock", inventoryHandler.LowStockItems)
		inventory.GET("/items/total-value", inventoryHandler.TotalValue)
		inventory.GET("/items/:item_number", inventoryHandler.GetItem)
		inventory.PATCH("/items/:item_number", inventoryHandler.UpdateItem)
		inventory.DELETE("/items/:item_number", inventoryHandler.DeleteItem)
		inventory.POST("/items/:item_number/withdrawals", inventoryHandler.Withdraw)
		inventory.PATCH("/items/:item_number/withdrawals/:order_number", inventoryHandler.ResolveWithdrawal)
	}

	facilities := rg.Group(PathFacilities)
	{
		facilities.POST("", dashboardHandler.CreateFacility)
		facilities.GET("", dashboardHandler.ListFacilities)
		facilities.DELETE("/:id", dashboardHandler.DeleteFacility)
	}

	rg.GET(PathDashboard, dashboardHandler.Summary)
}
