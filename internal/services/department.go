package services

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	apperrors "inventory-system/pkg/errors"
)

type DepartmentServiceInterface interface {
	CreateDepartment(ctx context.Context, payload dto.CreateDepartmentDTO) (*entities.Department, error)
	GetDepartments(ctx context.Context, organizationID *uint64) ([]entities.Department, error)
}

type DepartmentService struct {
	departmentRepository repositories.DepartmentRepositoryInterface
	logger               *zap.Logger
}

func NewDepartmentService(departmentRepository repositories.DepartmentRepositoryInterface, logger *zap.Logger) DepartmentServiceInterface {
	return &DepartmentService{
		departmentRepository: departmentRepository,
		logger:               logger,
	}
}

// CreateDepartment rejects a name already taken (case-insensitively) within
// the same organization. The unique index on (organization_id, lower(name))
// backs this check up under concurrency.
func (s *DepartmentService) CreateDepartment(ctx context.Context, payload dto.CreateDepartmentDTO) (*entities.Department, error) {
	name := strings.TrimSpace(payload.Name)

	_, err := s.departmentRepository.FindDepartmentByName(ctx, payload.OrganizationID, name)
	if err == nil {
		return nil, apperrors.NewConflict("Department already exists")
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	department, err := s.departmentRepository.CreateDepartment(ctx, name, payload.OrganizationID)
	if err != nil {
		s.logger.Error("create department failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("department created",
		zap.Uint64("id", department.ID),
		zap.Uint64("organization_id", department.OrganizationID),
	)
	return department, nil
}

func (s *DepartmentService) GetDepartments(ctx context.Context, organizationID *uint64) ([]entities.Department, error) {
	return s.departmentRepository.GetDepartments(ctx, organizationID)
}
