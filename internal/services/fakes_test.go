package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	apperrors "inventory-system/pkg/errors"
)

func requireHttpError(t *testing.T, err error, code int, message string) {
	t.Helper()
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, code, httpErr.Code)
	assert.Equal(t, message, httpErr.Message)
}

// fakeTxManager runs the callback without a real transaction; the fake
// repositories ignore the tx argument.
type fakeTxManager struct{}

func (m *fakeTxManager) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

type fakeDepartmentRepository struct {
	departments map[uint64]entities.Department
	nextID      uint64
}

func newFakeDepartmentRepository() *fakeDepartmentRepository {
	return &fakeDepartmentRepository{departments: map[uint64]entities.Department{}, nextID: 1}
}

func (r *fakeDepartmentRepository) CreateDepartment(ctx context.Context, name string, organizationID uint64) (*entities.Department, error) {
	d := entities.Department{ID: r.nextID, Name: name, OrganizationID: organizationID}
	r.departments[d.ID] = d
	r.nextID++
	return &d, nil
}

func (r *fakeDepartmentRepository) FindDepartment(ctx context.Context, id uint64) (*entities.Department, error) {
	d, ok := r.departments[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &d, nil
}

func (r *fakeDepartmentRepository) FindDepartmentByName(ctx context.Context, organizationID uint64, name string) (*entities.Department, error) {
	for _, d := range r.departments {
		if d.OrganizationID == organizationID && strings.EqualFold(d.Name, name) {
			found := d
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeDepartmentRepository) GetDepartments(ctx context.Context, organizationID *uint64) ([]entities.Department, error) {
	result := make([]entities.Department, 0)
	for _, d := range r.departments {
		if organizationID != nil && d.OrganizationID != *organizationID {
			continue
		}
		result = append(result, d)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

type fakeEquipmentRepository struct {
	items     map[uint64]entities.Equipment
	nextID    uint64
	findCalls int
}

func newFakeEquipmentRepository() *fakeEquipmentRepository {
	return &fakeEquipmentRepository{items: map[uint64]entities.Equipment{}, nextID: 1}
}

func (r *fakeEquipmentRepository) CreateEquipment(ctx context.Context, equipment entities.Equipment) (*entities.Equipment, error) {
	equipment.ID = r.nextID
	equipment.CreatedAt = time.Now()
	equipment.UpdatedAt = equipment.CreatedAt
	r.items[equipment.ID] = equipment
	r.nextID++
	return &equipment, nil
}

func (r *fakeEquipmentRepository) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	r.findCalls++
	e, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &e, nil
}

func (r *fakeEquipmentRepository) FindDuplicateEquipment(ctx context.Context, departmentID uint64, name, manufacturer, modelNumber string) (*entities.Equipment, error) {
	for _, e := range r.items {
		if e.DepartmentID == departmentID &&
			strings.EqualFold(e.Name, name) &&
			strings.EqualFold(e.Manufacturer, manufacturer) &&
			strings.EqualFold(e.ModelNumber, modelNumber) {
			found := e
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeEquipmentRepository) GetEquipments(ctx context.Context, filter repositories.EquipmentListFilter) ([]entities.Equipment, uint64, error) {
	matched := make([]entities.Equipment, 0)
	for _, e := range r.items {
		if filter.DepartmentID != nil && e.DepartmentID != *filter.DepartmentID {
			continue
		}
		if filter.Status != nil && e.Status != *filter.Status {
			continue
		}
		matched = append(matched, e)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })

	total := uint64(len(matched))
	if !filter.WithPagination {
		return matched, total, nil
	}
	if filter.Offset >= total {
		return []entities.Equipment{}, total, nil
	}
	end := filter.Offset + filter.Limit
	if end > total {
		end = total
	}
	return matched[filter.Offset:end], total, nil
}

func (r *fakeEquipmentRepository) UpdateEquipment(ctx context.Context, id uint64, equipment entities.Equipment) (*entities.Equipment, error) {
	existing, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	equipment.ID = id
	equipment.CreatedAt = existing.CreatedAt
	equipment.UpdatedAt = time.Now()
	r.items[id] = equipment
	return &equipment, nil
}

type fakeEquipmentRequestRepository struct {
	requests map[uint64]entities.EquipmentRequest
	nextID   uint64
}

func newFakeEquipmentRequestRepository() *fakeEquipmentRequestRepository {
	return &fakeEquipmentRequestRepository{requests: map[uint64]entities.EquipmentRequest{}, nextID: 1}
}

func (r *fakeEquipmentRequestRepository) FindRequest(ctx context.Context, id uint64) (*entities.EquipmentRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &req, nil
}

func (r *fakeEquipmentRequestRepository) GetRequestsByOrganization(ctx context.Context, organizationID uint64, limit, offset uint64) ([]entities.EquipmentRequest, uint64, error) {
	matched := make([]entities.EquipmentRequest, 0)
	for _, req := range r.requests {
		if req.OrganizationID == organizationID {
			matched = append(matched, req)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	total := uint64(len(matched))
	if offset >= total {
		return []entities.EquipmentRequest{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func (r *fakeEquipmentRequestRepository) FindPendingDuplicateInTx(ctx context.Context, tx pgx.Tx, equipmentID, organizationID uint64, requestedBy string) (*entities.EquipmentRequest, error) {
	for _, req := range r.requests {
		if req.EquipmentID == equipmentID &&
			req.OrganizationID == organizationID &&
			strings.EqualFold(req.RequestedBy, requestedBy) &&
			req.Status == entities.RequestStatusPending {
			found := req
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeEquipmentRequestRepository) CreateRequestInTx(ctx context.Context, tx pgx.Tx, request entities.EquipmentRequest) (*entities.EquipmentRequest, error) {
	request.ID = r.nextID
	request.CreatedAt = time.Now()
	r.requests[request.ID] = request
	r.nextID++
	return &request, nil
}

func (r *fakeEquipmentRequestRepository) FindRequestForUpdateInTx(ctx context.Context, tx pgx.Tx, id uint64) (*entities.EquipmentRequest, error) {
	return r.FindRequest(ctx, id)
}

func (r *fakeEquipmentRequestRepository) UpdateRequestStatusInTx(ctx context.Context, tx pgx.Tx, id uint64, status entities.EquipmentRequestStatus) (*entities.EquipmentRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	req.Status = status
	r.requests[id] = req
	return &req, nil
}

type fakeCacheRepository struct {
	values map[string]string
}

func newFakeCacheRepository() *fakeCacheRepository {
	return &fakeCacheRepository{values: map[string]string{}}
}

func (c *fakeCacheRepository) Get(ctx context.Context, key string) (string, error) {
	v, ok := c.values[key]
	if !ok {
		return "", apperrors.ErrNotFound
	}
	return v, nil
}

func (c *fakeCacheRepository) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	c.values[key] = fmt.Sprint(value)
	return nil
}

func (c *fakeCacheRepository) Del(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(c.values, key)
	}
	return nil
}
