package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/types"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// HTTPResponse is the uniform success envelope.
type HTTPResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// HTTPErrorResponse is the uniform failure envelope.
type HTTPErrorResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Errors  map[string]interface{} `json:"errors"`
}

func SuccessResponse(ctx echo.Context, data interface{}, message string, code int) error {
	return ctx.JSON(code, &HTTPResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse maps service errors onto the failure envelope:
// HttpError keeps its code and message, validation errors become 422,
// everything else is surfaced as a generic 500 without internal detail.
func ErrorResponse(ctx echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Code >= http.StatusInternalServerError {
			logger.Error("http error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
			)
		}
		errs := map[string]interface{}{}
		for k, v := range httpErr.Details {
			errs[k] = v
		}
		return ctx.JSON(httpErr.Code, &HTTPErrorResponse{
			Success: false,
			Message: httpErr.Message,
			Errors:  errs,
		})
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		errs := map[string]interface{}{}
		for _, fe := range validationErrors {
			errs[fe.Field()] = fmt.Sprintf("failed on the '%s' rule", fe.Tag())
		}
		return ctx.JSON(http.StatusUnprocessableEntity, &HTTPErrorResponse{
			Success: false,
			Message: "Validation error",
			Errors:  errs,
		})
	}

	logger.Error("unexpected error", zap.Error(err))
	return ctx.JSON(http.StatusInternalServerError, &HTTPErrorResponse{
		Success: false,
		Message: "Internal server error",
		Errors:  map[string]interface{}{},
	})
}

// ParsePageParams reads page/page_size query parameters with the defaults
// and bounds of the list endpoints (page >= 1, page_size in [1,100]).
func ParsePageParams(ctx echo.Context) types.PageParams {
	params := types.PageParams{
		Page:     types.DefaultPage,
		PageSize: types.DefaultPageSize,
	}

	if s := ctx.QueryParam("page"); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			params.Page = v
		}
	}
	if s := ctx.QueryParam("page_size"); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			params.PageSize = v
		}
	}

	return params.Normalize()
}
