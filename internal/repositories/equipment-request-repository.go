package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"
)

const equipmentRequestColumns = "id, equipment_id, requested_by, justification, priority, status, organization_id, created_at"

type EquipmentRequestRepositoryInterface interface {
	FindRequest(ctx context.Context, id uint64) (*entities.EquipmentRequest, error)
	GetRequestsByOrganization(ctx context.Context, organizationID uint64, limit, offset uint64) ([]entities.EquipmentRequest, uint64, error)
	FindPendingDuplicateInTx(ctx context.Context, tx pgx.Tx, equipmentID, organizationID uint64, requestedBy string) (*entities.EquipmentRequest, error)
	CreateRequestInTx(ctx context.Context, tx pgx.Tx, request entities.EquipmentRequest) (*entities.EquipmentRequest, error)
	FindRequestForUpdateInTx(ctx context.Context, tx pgx.Tx, id uint64) (*entities.EquipmentRequest, error)
	UpdateRequestStatusInTx(ctx context.Context, tx pgx.Tx, id uint64, status entities.EquipmentRequestStatus) (*entities.EquipmentRequest, error)
}

type EquipmentRequestRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEquipmentRequestRepository(storage *pgxpool.Pool, logger *zap.Logger) EquipmentRequestRepositoryInterface {
	return &EquipmentRequestRepository{storage: storage, logger: logger}
}

func scanEquipmentRequest(row pgx.Row) (*entities.EquipmentRequest, error) {
	var req entities.EquipmentRequest
	err := row.Scan(&req.ID, &req.EquipmentID, &req.RequestedBy, &req.Justification, &req.Priority, &req.Status, &req.OrganizationID, &req.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan equipment request: %w", err)
	}
	return &req, nil
}

func findRequestByID(ctx context.Context, q querier, id uint64, lock string) (*entities.EquipmentRequest, error) {
	query := `SELECT ` + equipmentRequestColumns + ` FROM equipment_requests WHERE id = $1` + lock
	return scanEquipmentRequest(q.QueryRow(ctx, query, id))
}

func (r *EquipmentRequestRepository) FindRequest(ctx context.Context, id uint64) (*entities.EquipmentRequest, error) {
	return findRequestByID(ctx, r.storage, id, "")
}

func (r *EquipmentRequestRepository) GetRequestsByOrganization(ctx context.Context, organizationID uint64, limit, offset uint64) ([]entities.EquipmentRequest, uint64, error) {
	var total uint64
	countQuery := `SELECT COUNT(*) FROM equipment_requests WHERE organization_id = $1`
	if err := r.storage.QueryRow(ctx, countQuery, organizationID).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.EquipmentRequest{}, 0, nil
	}

	query := `SELECT ` + equipmentRequestColumns + ` FROM equipment_requests
		WHERE organization_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.storage.Query(ctx, query, organizationID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	requests := make([]entities.EquipmentRequest, 0)
	for rows.Next() {
		req, err := scanEquipmentRequest(rows)
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, *req)
	}
	return requests, total, rows.Err()
}

// FindPendingDuplicateInTx looks up a pending request for the same
// (equipment, organization, requester) triple, requester matched
// case-insensitively. Runs inside the creation transaction so the check and
// the insert observe the same snapshot; the partial unique index is the
// guard against concurrent creators.
func (r *EquipmentRequestRepository) FindPendingDuplicateInTx(ctx context.Context, tx pgx.Tx, equipmentID, organizationID uint64, requestedBy string) (*entities.EquipmentRequest, error) {
	query := `SELECT ` + equipmentRequestColumns + ` FROM equipment_requests
		WHERE equipment_id = $1
		  AND organization_id = $2
		  AND LOWER(requested_by) = LOWER($3)
		  AND status = $4`
	return scanEquipmentRequest(tx.QueryRow(ctx, query, equipmentID, organizationID, requestedBy, entities.RequestStatusPending))
}

func (r *EquipmentRequestRepository) CreateRequestInTx(ctx context.Context, tx pgx.Tx, request entities.EquipmentRequest) (*entities.EquipmentRequest, error) {
	query := `INSERT INTO equipment_requests (equipment_id, requested_by, justification, priority, status, organization_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + equipmentRequestColumns
	return scanEquipmentRequest(tx.QueryRow(ctx, query,
		request.EquipmentID, request.RequestedBy, request.Justification,
		request.Priority, request.Status, request.OrganizationID,
	))
}

// FindRequestForUpdateInTx locks the row so two concurrent approvals
// serialize on it.
func (r *EquipmentRequestRepository) FindRequestForUpdateInTx(ctx context.Context, tx pgx.Tx, id uint64) (*entities.EquipmentRequest, error) {
	return findRequestByID(ctx, tx, id, " FOR UPDATE")
}

func (r *EquipmentRequestRepository) UpdateRequestStatusInTx(ctx context.Context, tx pgx.Tx, id uint64, status entities.EquipmentRequestStatus) (*entities.EquipmentRequest, error) {
	query := `UPDATE equipment_requests SET status = $2 WHERE id = $1 RETURNING ` + equipmentRequestColumns
	return scanEquipmentRequest(tx.QueryRow(ctx, query, id, status))
}
