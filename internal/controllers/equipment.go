package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	"inventory-system/internal/services"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/types"
	"inventory-system/pkg/utils"
)

type EquipmentController struct {
	equipmentService  services.EquipmentServiceInterface
	assessmentService *services.AssessmentService
	reportService     services.ReportServiceInterface
	logger            *zap.Logger
}

func NewEquipmentController(
	equipmentService services.EquipmentServiceInterface,
	assessmentService *services.AssessmentService,
	reportService services.ReportServiceInterface,
	logger *zap.Logger,
) *EquipmentController {
	return &EquipmentController{
		equipmentService:  equipmentService,
		assessmentService: assessmentService,
		reportService:     reportService,
		logger:            logger,
	}
}

func parseIDParam(ctx echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, apperrors.NewBadRequest("Invalid id parameter")
	}
	return id, nil
}

func (c *EquipmentController) CreateEquipment(ctx echo.Context) error {
	var payload dto.CreateEquipmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequest("Invalid request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	equipment, err := c.equipmentService.CreateEquipment(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, equipment, "Equipment created successfully", http.StatusCreated)
}

func (c *EquipmentController) FindEquipment(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	equipment, err := c.equipmentService.FindEquipment(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, equipment, "Equipment fetched successfully", http.StatusOK)
}

func (c *EquipmentController) GetEquipments(ctx echo.Context) error {
	filter := repositories.EquipmentListFilter{WithPagination: true}

	if s := ctx.QueryParam("department_id"); s != "" {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil || id < 1 {
			return utils.ErrorResponse(ctx, apperrors.NewUnprocessable("Validation error", map[string]interface{}{
				"department_id": "must be a positive integer",
			}), c.logger)
		}
		filter.DepartmentID = &id
	}

	if s := ctx.QueryParam("status"); s != "" {
		status, err := entities.ParseEquipmentStatus(s)
		if err != nil {
			return utils.ErrorResponse(ctx, apperrors.NewUnprocessable("Validation error", map[string]interface{}{
				"status": "must be one of: available, in_use, maintenance, decommissioned",
			}), c.logger)
		}
		filter.Status = &status
	}

	params := utils.ParsePageParams(ctx)
	filter.Limit = params.Limit()
	filter.Offset = params.Offset()

	items, total, err := c.equipmentService.GetEquipments(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	data := dto.ListData{
		Items:      items,
		Pagination: types.NewPagination(params, total),
	}
	return utils.SuccessResponse(ctx, data, "Equipment list fetched successfully", http.StatusOK)
}

func (c *EquipmentController) UpdateEquipment(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateEquipmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequest("Invalid request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	equipment, err := c.equipmentService.UpdateEquipment(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, equipment, "Equipment updated successfully", http.StatusOK)
}

// AIAssessment resolves the equipment first, so a missing asset is a 404
// rather than a scored answer over nothing.
func (c *EquipmentController) AIAssessment(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.AIAssessmentInput
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequest("Invalid request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	equipment, err := c.equipmentService.FindEquipment(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	assessment := c.assessmentService.Generate(equipment, payload)
	return utils.SuccessResponse(ctx, assessment, "AI assessment generated successfully", http.StatusOK)
}

func (c *EquipmentController) ExportEquipment(ctx echo.Context) error {
	report, err := c.reportService.ExportEquipment(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="equipment.xlsx"`)
	ctx.Response().WriteHeader(http.StatusOK)

	if _, err := report.WriteTo(ctx.Response()); err != nil {
		c.logger.Error("equipment export write failed", zap.Error(err))
		return err
	}
	return nil
}
