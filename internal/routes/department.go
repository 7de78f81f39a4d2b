package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
)

func runDepartmentRouter(g *echo.Group, ctrl *controllers.DepartmentController) {
	g.POST("/departments", ctrl.CreateDepartment)
	g.GET("/departments", ctrl.GetDepartments)
}
