package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
)

func runEquipmentRouter(g *echo.Group, ctrl *controllers.EquipmentController) {
	g.POST("/equipment", ctrl.CreateEquipment)
	g.GET("/equipment", ctrl.GetEquipments)
	g.GET("/equipment/export", ctrl.ExportEquipment)
	g.GET("/equipment/:id", ctrl.FindEquipment)
	g.PUT("/equipment/:id", ctrl.UpdateEquipment)
	g.POST("/equipment/:id/ai-assessment", ctrl.AIAssessment)
}
