package handlers

import (
	"DineWheel/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterSettingsRoutes(router *gin.RouterGroup, settingsController *controllers.SettingsController) {
	settingsGroup := router.Group("/settings")
	{
		settingsGroup.GET("/", settingsController.GetSettings)

		settingsGroup.PUT("/", settingsController.SaveSettings)
	}
}
