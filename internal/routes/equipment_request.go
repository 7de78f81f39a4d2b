package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
)

func runEquipmentRequestRouter(g *echo.Group, ctrl *controllers.EquipmentRequestController) {
	g.POST("/equipment-requests", ctrl.CreateRequest)
	g.GET("/equipment-requests", ctrl.GetRequests)
	g.PATCH("/equipment-requests/:id/approve", ctrl.ApproveRequest)
}
