package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
)

type requestFixture struct {
	requestRepo    *fakeEquipmentRequestRepository
	equipmentRepo  *fakeEquipmentRepository
	departmentRepo *fakeDepartmentRepository
	svc            EquipmentRequestServiceInterface
}

func newRequestFixture(t *testing.T) *requestFixture {
	t.Helper()
	f := &requestFixture{
		requestRepo:    newFakeEquipmentRequestRepository(),
		equipmentRepo:  newFakeEquipmentRepository(),
		departmentRepo: newFakeDepartmentRepository(),
	}
	f.svc = NewEquipmentRequestService(&fakeTxManager{}, f.requestRepo, f.equipmentRepo, f.departmentRepo, zap.NewNop())
	return f
}

// seedEquipment creates a department in the given organization and a piece of
// equipment inside it.
func (f *requestFixture) seedEquipment(t *testing.T, organizationID uint64, status entities.EquipmentStatus) *entities.Equipment {
	t.Helper()
	dept, err := f.departmentRepo.CreateDepartment(context.Background(), "ICU", organizationID)
	require.NoError(t, err)
	equipment, err := f.equipmentRepo.CreateEquipment(context.Background(), entities.Equipment{
		Name:         "Ventilator",
		Manufacturer: "Acme Medical",
		ModelNumber:  "VT-900",
		Category:     "Respiratory",
		Status:       status,
		DepartmentID: dept.ID,
	})
	require.NoError(t, err)
	return equipment
}

func validRequestDTO(equipmentID, organizationID uint64) dto.CreateEquipmentRequestDTO {
	return dto.CreateEquipmentRequestDTO{
		EquipmentID:    equipmentID,
		RequestedBy:    "Dr. Smith",
		Justification:  "Replacement unit needed for the night shift",
		Priority:       3,
		OrganizationID: organizationID,
	}
}

func TestRequestServiceCreate(t *testing.T) {
	f := newRequestFixture(t)
	equipment := f.seedEquipment(t, 10, entities.EquipmentStatusAvailable)

	payload := validRequestDTO(equipment.ID, 10)
	payload.RequestedBy = "  Dr. Smith  "

	created, err := f.svc.CreateRequest(context.Background(), payload)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, entities.RequestStatusPending, created.Status)
	assert.Equal(t, "Dr. Smith", created.RequestedBy)
	assert.Equal(t, equipment.ID, created.EquipmentID)
}

func TestRequestServiceCreateMissingEquipment(t *testing.T) {
	f := newRequestFixture(t)

	_, err := f.svc.CreateRequest(context.Background(), validRequestDTO(404, 10))
	requireHttpError(t, err, http.StatusNotFound, "Equipment not found")
}

func TestRequestServiceCreateDecommissionedEquipment(t *testing.T) {
	f := newRequestFixture(t)
	equipment := f.seedEquipment(t, 10, entities.EquipmentStatusDecommissioned)

	_, err := f.svc.CreateRequest(context.Background(), validRequestDTO(equipment.ID, 10))
	requireHttpError(t, err, http.StatusBadRequest, "Decommissioned equipment cannot be requested")
}

func TestRequestServiceCreatePendingDuplicate(t *testing.T) {
	f := newRequestFixture(t)
	equipment := f.seedEquipment(t, 10, entities.EquipmentStatusAvailable)

	_, err := f.svc.CreateRequest(context.Background(), validRequestDTO(equipment.ID, 10))
	require.NoError(t, err)

	duplicate := validRequestDTO(equipment.ID, 10)
	duplicate.RequestedBy = "dr. smith"
	_, err = f.svc.CreateRequest(context.Background(), duplicate)
	requireHttpError(t, err, http.StatusConflict, "Pending request already exists for this equipment")
}

func TestRequestServiceCreateAfterApproval(t *testing.T) {
	f := newRequestFixture(t)
	equipment := f.seedEquipment(t, 10, entities.EquipmentStatusAvailable)

	first, err := f.svc.CreateRequest(context.Background(), validRequestDTO(equipment.ID, 10))
	require.NoError(t, err)

	_, err = f.svc.ApproveRequest(context.Background(), first.ID)
	require.NoError(t, err)

	// the pending-duplicate rule only blocks while the earlier request is pending
	second, err := f.svc.CreateRequest(context.Background(), validRequestDTO(equipment.ID, 10))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestRequestServiceCreateDifferentRequester(t *testing.T) {
	f := newRequestFixture(t)
	equipment := f.seedEquipment(t, 10, entities.EquipmentStatusAvailable)

	_, err := f.svc.CreateRequest(context.Background(), validRequestDTO(equipment.ID, 10))
	require.NoError(t, err)

	other := validRequestDTO(equipment.ID, 10)
	other.RequestedBy = "Dr. Jones"
	_, err = f.svc.CreateRequest(context.Background(), other)
	require.NoError(t, err)
}

func TestRequestServiceCreateOrganizationMismatch(t *testing.T) {
	f := newRequestFixture(t)
	equipment := f.seedEquipment(t, 10, entities.EquipmentStatusAvailable)

	_, err := f.svc.CreateRequest(context.Background(), validRequestDTO(equipment.ID, 99))
	requireHttpError(t, err, http.StatusBadRequest, "organization_id does not match equipment organization")
}

func TestRequestServiceCreateOrphanedEquipment(t *testing.T) {
	f := newRequestFixture(t)
	equipment, err := f.equipmentRepo.CreateEquipment(context.Background(), entities.Equipment{
		Name:         "Ventilator",
		Manufacturer: "Acme Medical",
		ModelNumber:  "VT-900",
		Category:     "Respiratory",
		Status:       entities.EquipmentStatusAvailable,
		DepartmentID: 777,
	})
	require.NoError(t, err)

	_, err = f.svc.CreateRequest(context.Background(), validRequestDTO(equipment.ID, 10))
	requireHttpError(t, err, http.StatusNotFound, "Department not found for equipment")
}

func TestRequestServiceApprove(t *testing.T) {
	f := newRequestFixture(t)
	equipment := f.seedEquipment(t, 10, entities.EquipmentStatusAvailable)

	created, err := f.svc.CreateRequest(context.Background(), validRequestDTO(equipment.ID, 10))
	require.NoError(t, err)

	approved, err := f.svc.ApproveRequest(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.RequestStatusApproved, approved.Status)
	assert.Equal(t, created.ID, approved.ID)
}

func TestRequestServiceApproveTwice(t *testing.T) {
	f := newRequestFixture(t)
	equipment := f.seedEquipment(t, 10, entities.EquipmentStatusAvailable)

	created, err := f.svc.CreateRequest(context.Background(), validRequestDTO(equipment.ID, 10))
	require.NoError(t, err)

	_, err = f.svc.ApproveRequest(context.Background(), created.ID)
	require.NoError(t, err)

	_, err = f.svc.ApproveRequest(context.Background(), created.ID)
	requireHttpError(t, err, http.StatusBadRequest, "Only pending requests can be approved")
}

func TestRequestServiceApproveMissing(t *testing.T) {
	f := newRequestFixture(t)

	_, err := f.svc.ApproveRequest(context.Background(), 404)
	requireHttpError(t, err, http.StatusNotFound, "Equipment request not found")
}

func TestRequestServiceGetRequestsByOrganization(t *testing.T) {
	f := newRequestFixture(t)
	equipment := f.seedEquipment(t, 10, entities.EquipmentStatusAvailable)

	_, err := f.svc.CreateRequest(context.Background(), validRequestDTO(equipment.ID, 10))
	require.NoError(t, err)
	other := validRequestDTO(equipment.ID, 10)
	other.RequestedBy = "Dr. Jones"
	_, err = f.svc.CreateRequest(context.Background(), other)
	require.NoError(t, err)

	requests, total, err := f.svc.GetRequestsByOrganization(context.Background(), 10, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), total)
	assert.Len(t, requests, 2)

	requests, total, err = f.svc.GetRequestsByOrganization(context.Background(), 99, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), total)
	assert.Empty(t, requests)
}
