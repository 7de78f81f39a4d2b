package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	apperrors "inventory-system/pkg/errors"
)

type EquipmentServiceInterface interface {
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	GetEquipments(ctx context.Context, filter repositories.EquipmentListFilter) ([]entities.Equipment, uint64, error)
	UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error)
}

type EquipmentService struct {
	equipmentRepository  repositories.EquipmentRepositoryInterface
	departmentRepository repositories.DepartmentRepositoryInterface
	cache                repositories.CacheRepositoryInterface
	cacheTTL             time.Duration
	logger               *zap.Logger
}

func NewEquipmentService(
	equipmentRepository repositories.EquipmentRepositoryInterface,
	departmentRepository repositories.DepartmentRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) EquipmentServiceInterface {
	return &EquipmentService{
		equipmentRepository:  equipmentRepository,
		departmentRepository: departmentRepository,
		cache:                cache,
		cacheTTL:             cacheTTL,
		logger:               logger,
	}
}

func equipmentCacheKey(id uint64) string {
	return fmt.Sprintf("equipment:%d", id)
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	if _, err := s.departmentRepository.FindDepartment(ctx, payload.DepartmentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFound("Department not found")
		}
		return nil, err
	}

	name := strings.TrimSpace(payload.Name)
	manufacturer := strings.TrimSpace(payload.Manufacturer)
	modelNumber := strings.TrimSpace(payload.ModelNumber)

	_, err := s.equipmentRepository.FindDuplicateEquipment(ctx, payload.DepartmentID, name, manufacturer, modelNumber)
	if err == nil {
		return nil, apperrors.NewConflict("Equipment already exists in this department")
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	equipment, err := s.equipmentRepository.CreateEquipment(ctx, entities.Equipment{
		Name:         name,
		Manufacturer: manufacturer,
		ModelNumber:  modelNumber,
		Category:     strings.TrimSpace(payload.Category),
		Status:       entities.EquipmentStatus(payload.Status),
		DepartmentID: payload.DepartmentID,
	})
	if err != nil {
		s.logger.Error("create equipment failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("equipment created",
		zap.Uint64("id", equipment.ID),
		zap.Uint64("department_id", equipment.DepartmentID),
	)
	return equipment, nil
}

// FindEquipment reads through the cache: a hit skips the database, a miss
// populates the cache best-effort.
func (s *EquipmentService) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	key := equipmentCacheKey(id)
	if cached, err := s.cache.Get(ctx, key); err == nil {
		var equipment entities.Equipment
		if err := json.Unmarshal([]byte(cached), &equipment); err == nil {
			return &equipment, nil
		}
		s.logger.Warn("dropping unreadable cache entry", zap.String("key", key))
		_ = s.cache.Del(ctx, key)
	}

	equipment, err := s.equipmentRepository.FindEquipment(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFound("Equipment not found")
		}
		return nil, err
	}

	if encoded, err := json.Marshal(equipment); err == nil {
		if err := s.cache.Set(ctx, key, string(encoded), s.cacheTTL); err != nil {
			s.logger.Warn("equipment cache set failed", zap.String("key", key), zap.Error(err))
		}
	}
	return equipment, nil
}

func (s *EquipmentService) GetEquipments(ctx context.Context, filter repositories.EquipmentListFilter) ([]entities.Equipment, uint64, error) {
	return s.equipmentRepository.GetEquipments(ctx, filter)
}

// UpdateEquipment is a full replacement: every field is overwritten. The
// composite uniqueness is intentionally not re-checked here (the unique index
// still rejects true duplicates at the storage layer).
func (s *EquipmentService) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	if _, err := s.equipmentRepository.FindEquipment(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFound("Equipment not found")
		}
		return nil, err
	}

	if _, err := s.departmentRepository.FindDepartment(ctx, payload.DepartmentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFound("Department not found")
		}
		return nil, err
	}

	equipment, err := s.equipmentRepository.UpdateEquipment(ctx, id, entities.Equipment{
		Name:         strings.TrimSpace(payload.Name),
		Manufacturer: strings.TrimSpace(payload.Manufacturer),
		ModelNumber:  strings.TrimSpace(payload.ModelNumber),
		Category:     strings.TrimSpace(payload.Category),
		Status:       entities.EquipmentStatus(payload.Status),
		DepartmentID: payload.DepartmentID,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFound("Equipment not found")
		}
		s.logger.Error("update equipment failed", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}

	if err := s.cache.Del(ctx, equipmentCacheKey(id)); err != nil {
		s.logger.Warn("equipment cache invalidation failed", zap.Uint64("id", id), zap.Error(err))
	}
	return equipment, nil
}
