package services

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	apperrors "inventory-system/pkg/errors"
)

type EquipmentRequestServiceInterface interface {
	CreateRequest(ctx context.Context, payload dto.CreateEquipmentRequestDTO) (*entities.EquipmentRequest, error)
	ApproveRequest(ctx context.Context, id uint64) (*entities.EquipmentRequest, error)
	GetRequestsByOrganization(ctx context.Context, organizationID uint64, limit, offset uint64) ([]entities.EquipmentRequest, uint64, error)
}

type EquipmentRequestService struct {
	txManager            repositories.TxManagerInterface
	requestRepository    repositories.EquipmentRequestRepositoryInterface
	equipmentRepository  repositories.EquipmentRepositoryInterface
	departmentRepository repositories.DepartmentRepositoryInterface
	logger               *zap.Logger
}

func NewEquipmentRequestService(
	txManager repositories.TxManagerInterface,
	requestRepository repositories.EquipmentRequestRepositoryInterface,
	equipmentRepository repositories.EquipmentRepositoryInterface,
	departmentRepository repositories.DepartmentRepositoryInterface,
	logger *zap.Logger,
) EquipmentRequestServiceInterface {
	return &EquipmentRequestService{
		txManager:            txManager,
		requestRepository:    requestRepository,
		equipmentRepository:  equipmentRepository,
		departmentRepository: departmentRepository,
		logger:               logger,
	}
}

// CreateRequest runs the workflow checks in a fixed order: equipment exists,
// equipment not decommissioned, no pending duplicate, owning department
// exists, caller's organization matches the department's. The duplicate
// check and the insert share one transaction.
func (s *EquipmentRequestService) CreateRequest(ctx context.Context, payload dto.CreateEquipmentRequestDTO) (*entities.EquipmentRequest, error) {
	equipment, err := s.equipmentRepository.FindEquipment(ctx, payload.EquipmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFound("Equipment not found")
		}
		return nil, err
	}

	if equipment.Status == entities.EquipmentStatusDecommissioned {
		return nil, apperrors.NewBadRequest("Decommissioned equipment cannot be requested")
	}

	requestedBy := strings.TrimSpace(payload.RequestedBy)

	var created *entities.EquipmentRequest
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		_, dupErr := s.requestRepository.FindPendingDuplicateInTx(ctx, tx, payload.EquipmentID, payload.OrganizationID, requestedBy)
		if dupErr == nil {
			return apperrors.NewConflict("Pending request already exists for this equipment")
		}
		if !errors.Is(dupErr, apperrors.ErrNotFound) {
			return dupErr
		}

		// Checked explicitly: no cascade guarantee is assumed between
		// equipment and departments.
		department, deptErr := s.departmentRepository.FindDepartment(ctx, equipment.DepartmentID)
		if deptErr != nil {
			if errors.Is(deptErr, apperrors.ErrNotFound) {
				return apperrors.NewNotFound("Department not found for equipment")
			}
			return deptErr
		}

		if department.OrganizationID != payload.OrganizationID {
			return apperrors.NewBadRequest("organization_id does not match equipment organization")
		}

		request, createErr := s.requestRepository.CreateRequestInTx(ctx, tx, entities.EquipmentRequest{
			EquipmentID:    payload.EquipmentID,
			RequestedBy:    requestedBy,
			Justification:  strings.TrimSpace(payload.Justification),
			Priority:       payload.Priority,
			Status:         entities.RequestStatusPending,
			OrganizationID: payload.OrganizationID,
		})
		if createErr != nil {
			return createErr
		}
		created = request
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("equipment request created",
		zap.Uint64("id", created.ID),
		zap.Uint64("equipment_id", created.EquipmentID),
		zap.Uint64("organization_id", created.OrganizationID),
	)
	return created, nil
}

// ApproveRequest transitions pending -> approved exactly once. A second
// approval attempt fails instead of silently succeeding.
func (s *EquipmentRequestService) ApproveRequest(ctx context.Context, id uint64) (*entities.EquipmentRequest, error) {
	var approved *entities.EquipmentRequest
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		request, err := s.requestRepository.FindRequestForUpdateInTx(ctx, tx, id)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.NewNotFound("Equipment request not found")
			}
			return err
		}

		if request.Status != entities.RequestStatusPending {
			return apperrors.NewBadRequest("Only pending requests can be approved")
		}

		updated, err := s.requestRepository.UpdateRequestStatusInTx(ctx, tx, id, entities.RequestStatusApproved)
		if err != nil {
			return err
		}
		approved = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("equipment request approved", zap.Uint64("id", approved.ID))
	return approved, nil
}

func (s *EquipmentRequestService) GetRequestsByOrganization(ctx context.Context, organizationID uint64, limit, offset uint64) ([]entities.EquipmentRequest, uint64, error) {
	return s.requestRepository.GetRequestsByOrganization(ctx, organizationID, limit, offset)
}
