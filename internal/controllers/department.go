package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/services"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/utils"
)

type DepartmentController struct {
	departmentService services.DepartmentServiceInterface
	logger            *zap.Logger
}

func NewDepartmentController(departmentService services.DepartmentServiceInterface, logger *zap.Logger) *DepartmentController {
	return &DepartmentController{
		departmentService: departmentService,
		logger:            logger,
	}
}

func (c *DepartmentController) CreateDepartment(ctx echo.Context) error {
	var payload dto.CreateDepartmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequest("Invalid request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	department, err := c.departmentService.CreateDepartment(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, department, "Department created successfully", http.StatusCreated)
}

func (c *DepartmentController) GetDepartments(ctx echo.Context) error {
	var organizationID *uint64
	if s := ctx.QueryParam("organization_id"); s != "" {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil || id < 1 {
			return utils.ErrorResponse(ctx, apperrors.NewUnprocessable("Validation error", map[string]interface{}{
				"organization_id": "must be a positive integer",
			}), c.logger)
		}
		organizationID = &id
	}

	departments, err := c.departmentService.GetDepartments(ctx.Request().Context(), organizationID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, departments, "Departments fetched successfully", http.StatusOK)
}
