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

const departmentTable = "departments"

type DepartmentRepositoryInterface interface {
	CreateDepartment(ctx context.Context, name string, organizationID uint64) (*entities.Department, error)
	FindDepartment(ctx context.Context, id uint64) (*entities.Department, error)
	FindDepartmentByName(ctx context.Context, organizationID uint64, name string) (*entities.Department, error)
	GetDepartments(ctx context.Context, organizationID *uint64) ([]entities.Department, error)
}

type DepartmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDepartmentRepository(storage *pgxpool.Pool, logger *zap.Logger) DepartmentRepositoryInterface {
	return &DepartmentRepository{storage: storage, logger: logger}
}

func scanDepartment(row pgx.Row) (*entities.Department, error) {
	var d entities.Department
	err := row.Scan(&d.ID, &d.Name, &d.OrganizationID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan department: %w", err)
	}
	return &d, nil
}

func (r *DepartmentRepository) CreateDepartment(ctx context.Context, name string, organizationID uint64) (*entities.Department, error) {
	query := `INSERT INTO departments (name, organization_id) VALUES ($1, $2) RETURNING id, name, organization_id`
	return scanDepartment(r.storage.QueryRow(ctx, query, name, organizationID))
}

func (r *DepartmentRepository) FindDepartment(ctx context.Context, id uint64) (*entities.Department, error) {
	query := `SELECT id, name, organization_id FROM departments WHERE id = $1`
	return scanDepartment(r.storage.QueryRow(ctx, query, id))
}

// FindDepartmentByName matches the name case-insensitively within one
// organization. Returns ErrNotFound when no such department exists.
func (r *DepartmentRepository) FindDepartmentByName(ctx context.Context, organizationID uint64, name string) (*entities.Department, error) {
	query := `SELECT id, name, organization_id FROM departments WHERE organization_id = $1 AND LOWER(name) = LOWER($2)`
	return scanDepartment(r.storage.QueryRow(ctx, query, organizationID, name))
}

func (r *DepartmentRepository) GetDepartments(ctx context.Context, organizationID *uint64) ([]entities.Department, error) {
	builder := sq.Select("id", "name", "organization_id").
		From(departmentTable).
		OrderBy("id ASC").
		PlaceholderFormat(sq.Dollar)

	if organizationID != nil {
		builder = builder.Where(sq.Eq{"organization_id": *organizationID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	departments := make([]entities.Department, 0)
	for rows.Next() {
		dept, err := scanDepartment(rows)
		if err != nil {
			return nil, err
		}
		departments = append(departments, *dept)
	}
	return departments, rows.Err()
}
