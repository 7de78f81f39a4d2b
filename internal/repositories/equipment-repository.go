package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"
)

const equipmentTable = "equipment"

const equipmentColumns = "id, name, manufacturer, model_number, category, status, department_id, created_at, updated_at"

// EquipmentListFilter carries the optional equality filters and pagination
// window for equipment listings. WithPagination false returns all rows.
type EquipmentListFilter struct {
	DepartmentID   *uint64
	Status         *entities.EquipmentStatus
	Limit          uint64
	Offset         uint64
	WithPagination bool
}

type EquipmentRepositoryInterface interface {
	CreateEquipment(ctx context.Context, equipment entities.Equipment) (*entities.Equipment, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	FindDuplicateEquipment(ctx context.Context, departmentID uint64, name, manufacturer, modelNumber string) (*entities.Equipment, error)
	GetEquipments(ctx context.Context, filter EquipmentListFilter) ([]entities.Equipment, uint64, error)
	UpdateEquipment(ctx context.Context, id uint64, equipment entities.Equipment) (*entities.Equipment, error)
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEquipmentRepository(storage *pgxpool.Pool, logger *zap.Logger) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage, logger: logger}
}

func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	err := row.Scan(&e.ID, &e.Name, &e.Manufacturer, &e.ModelNumber, &e.Category, &e.Status, &e.DepartmentID, &e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan equipment: %w", err)
	}
	return &e, nil
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, equipment entities.Equipment) (*entities.Equipment, error) {
	query := `INSERT INTO equipment (name, manufacturer, model_number, category, status, department_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + equipmentColumns
	return scanEquipment(r.storage.QueryRow(ctx, query,
		equipment.Name, equipment.Manufacturer, equipment.ModelNumber,
		equipment.Category, equipment.Status, equipment.DepartmentID,
	))
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE id = $1`
	return scanEquipment(r.storage.QueryRow(ctx, query, id))
}

// FindDuplicateEquipment resolves the case-insensitive identity
// (department_id, name, manufacturer, model_number). ErrNotFound means the
// identity is free.
func (r *EquipmentRepository) FindDuplicateEquipment(ctx context.Context, departmentID uint64, name, manufacturer, modelNumber string) (*entities.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment
		WHERE department_id = $1
		  AND LOWER(name) = LOWER($2)
		  AND LOWER(manufacturer) = LOWER($3)
		  AND LOWER(model_number) = LOWER($4)`
	return scanEquipment(r.storage.QueryRow(ctx, query, departmentID, name, manufacturer, modelNumber))
}

func (r *EquipmentRepository) equipmentConditions(filter EquipmentListFilter) sq.And {
	conditions := sq.And{}
	if filter.DepartmentID != nil {
		conditions = append(conditions, sq.Eq{"department_id": *filter.DepartmentID})
	}
	if filter.Status != nil {
		conditions = append(conditions, sq.Eq{"status": *filter.Status})
	}
	return conditions
}

func (r *EquipmentRepository) GetEquipments(ctx context.Context, filter EquipmentListFilter) ([]entities.Equipment, uint64, error) {
	conditions := r.equipmentConditions(filter)

	countBuilder := sq.Select("COUNT(*)").From(equipmentTable).PlaceholderFormat(sq.Dollar)
	if len(conditions) > 0 {
		countBuilder = countBuilder.Where(conditions)
	}
	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Equipment{}, 0, nil
	}

	builder := sq.Select("id", "name", "manufacturer", "model_number", "category", "status", "department_id", "created_at", "updated_at").
		From(equipmentTable).
		OrderBy("id DESC").
		PlaceholderFormat(sq.Dollar)
	if len(conditions) > 0 {
		builder = builder.Where(conditions)
	}
	if filter.WithPagination {
		builder = builder.Limit(filter.Limit).Offset(filter.Offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]entities.Equipment, 0)
	for rows.Next() {
		item, err := scanEquipment(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *item)
	}
	return items, total, rows.Err()
}

// UpdateEquipment overwrites every column (full replacement) and refreshes
// updated_at.
func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id uint64, equipment entities.Equipment) (*entities.Equipment, error) {
	query, args, err := sq.Update(equipmentTable).
		PlaceholderFormat(sq.Dollar).
		Set("name", equipment.Name).
		Set("manufacturer", equipment.Manufacturer).
		Set("model_number", equipment.ModelNumber).
		Set("category", equipment.Category).
		Set("status", equipment.Status).
		Set("department_id", equipment.DepartmentID).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + equipmentColumns).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanEquipment(r.storage.QueryRow(ctx, query, args...))
}
