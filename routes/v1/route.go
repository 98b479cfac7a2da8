package route

import (
	"DineWheel/config/environment"
	"DineWheel/controllers"
	"DineWheel/handlers"
	"DineWheel/services"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes initializes all routes. The wheel and history services
// are stateful, so they are built once here and shared.
func RegisterRoutes(router *gin.Engine) {
	wheelService := services.NewWheelService()
	settingsService := services.NewSettingsService()
	historyService := services.NewHistoryService(environment.GetUserID())

	wheelController := controllers.NewWheelController(wheelService, settingsService, historyService)
	historyController := controllers.NewHistoryController(historyService)
	settingsController := controllers.NewSettingsController(settingsService)

	v1Routes := router.Group("/v1")
	{
		handlers.RegisterWheelRoutes(v1Routes, wheelController)
		handlers.RegisterHistoryRoutes(v1Routes, historyController)
		handlers.RegisterSettingsRoutes(v1Routes, settingsController)
	}
}
