package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/controllers"
	"inventory-system/internal/repositories"
	"inventory-system/internal/services"
	"inventory-system/pkg/config"
)

func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, logger *zap.Logger, cfg *config.Config) {
	api := e.Group("/api/v1")

	txManager := repositories.NewTxManager(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	departmentRepo := repositories.NewDepartmentRepository(dbConn, logger)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn, logger)
	requestRepo := repositories.NewEquipmentRequestRepository(dbConn, logger)

	departmentService := services.NewDepartmentService(departmentRepo, logger)
	equipmentService := services.NewEquipmentService(equipmentRepo, departmentRepo, cacheRepo, cfg.Cache.EquipmentTTL, logger)
	requestService := services.NewEquipmentRequestService(txManager, requestRepo, equipmentRepo, departmentRepo, logger)
	assessmentService := services.NewAssessmentService()
	reportService := services.NewReportService(equipmentRepo, logger)

	healthController := controllers.NewHealthController(cfg)
	departmentController := controllers.NewDepartmentController(departmentService, logger)
	equipmentController := controllers.NewEquipmentController(equipmentService, assessmentService, reportService, logger)
	requestController := controllers.NewEquipmentRequestController(requestService, logger)

	e.GET("/health", healthController.Health)

	runDepartmentRouter(api, departmentController)
	runEquipmentRouter(api, equipmentController)
	runEquipmentRequestRouter(api, requestController)
}
