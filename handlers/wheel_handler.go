package handlers

import (
	"DineWheel/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterWheelRoutes(router *gin.RouterGroup, wheelController *controllers.WheelController) {
	wheelGroup := router.Group("/wheel")
	{
		wheelGroup.GET("/", wheelController.GetWheel)

		wheelGroup.POST("/", wheelController.BuildWheel)

		wheelGroup.POST("/spin", wheelController.Spin)

		wheelGroup.POST("/options", wheelController.AddOption)
	}
}
