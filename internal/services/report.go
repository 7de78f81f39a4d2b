package services

import (
	"context"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"inventory-system/internal/repositories"
)

var equipmentReportHeaders = []string{
	"ID", "Name", "Manufacturer", "Model Number", "Category", "Status", "Department ID", "Created At", "Updated At",
}

type ReportServiceInterface interface {
	ExportEquipment(ctx context.Context) (*excelize.File, error)
}

// ReportService renders the equipment inventory as an xlsx workbook.
type ReportService struct {
	equipmentRepository repositories.EquipmentRepositoryInterface
	logger              *zap.Logger
}

func NewReportService(equipmentRepository repositories.EquipmentRepositoryInterface, logger *zap.Logger) ReportServiceInterface {
	return &ReportService{
		equipmentRepository: equipmentRepository,
		logger:              logger,
	}
}

func (s *ReportService) ExportEquipment(ctx context.Context) (*excelize.File, error) {
	items, _, err := s.equipmentRepository.GetEquipments(ctx, repositories.EquipmentListFilter{WithPagination: false})
	if err != nil {
		s.logger.Error("equipment export query failed", zap.Error(err))
		return nil, err
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for col, header := range equipmentReportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for row, item := range items {
		values := []interface{}{
			item.ID, item.Name, item.Manufacturer, item.ModelNumber, item.Category,
			string(item.Status), item.DepartmentID,
			item.CreatedAt.Format("2006-01-02 15:04:05"),
			item.UpdatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
