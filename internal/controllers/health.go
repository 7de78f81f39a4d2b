package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"inventory-system/pkg/config"
	"inventory-system/pkg/utils"
)

type HealthController struct {
	cfg *config.Config
}

func NewHealthController(cfg *config.Config) *HealthController {
	return &HealthController{cfg: cfg}
}

func (c *HealthController) Health(ctx echo.Context) error {
	data := map[string]string{
		"status":      "ok",
		"environment": c.cfg.App.Env,
	}
	return utils.SuccessResponse(ctx, data, "Service is healthy", http.StatusOK)
}
