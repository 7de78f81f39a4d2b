package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/services"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/types"
	"inventory-system/pkg/utils"
)

type EquipmentRequestController struct {
	requestService services.EquipmentRequestServiceInterface
	logger         *zap.Logger
}

func NewEquipmentRequestController(requestService services.EquipmentRequestServiceInterface, logger *zap.Logger) *EquipmentRequestController {
	return &EquipmentRequestController{
		requestService: requestService,
		logger:         logger,
	}
}

func (c *EquipmentRequestController) CreateRequest(ctx echo.Context) error {
	var payload dto.CreateEquipmentRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequest("Invalid request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	request, err := c.requestService.CreateRequest(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, request, "Equipment request created successfully", http.StatusCreated)
}

func (c *EquipmentRequestController) ApproveRequest(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	request, err := c.requestService.ApproveRequest(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, request, "Equipment request approved successfully", http.StatusOK)
}

func (c *EquipmentRequestController) GetRequests(ctx echo.Context) error {
	organizationID, err := strconv.ParseUint(ctx.QueryParam("organization_id"), 10, 64)
	if err != nil || organizationID < 1 {
		return utils.ErrorResponse(ctx, apperrors.NewUnprocessable("Validation error", map[string]interface{}{
			"organization_id": "must be a positive integer",
		}), c.logger)
	}

	params := utils.ParsePageParams(ctx)

	items, total, err := c.requestService.GetRequestsByOrganization(ctx.Request().Context(), organizationID, params.Limit(), params.Offset())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	data := dto.ListData{
		Items:      items,
		Pagination: types.NewPagination(params, total),
	}
	return utils.SuccessResponse(ctx, data, "Equipment requests fetched successfully", http.StatusOK)
}
