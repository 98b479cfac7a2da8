package handlers

import (
	"DineWheel/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterHistoryRoutes(router *gin.RouterGroup, historyController *controllers.HistoryController) {
	historyGroup := router.Group("/history")
	{
		historyGroup.GET("/", historyController.GetAllHistory)

		historyGroup.GET("/:index", historyController.GetHistoryByIndex)
	}
}
