package entities

import "fmt"

// EquipmentStatus is the lifecycle state of a piece of equipment.
type EquipmentStatus string

const (
	EquipmentStatusAvailable      EquipmentStatus = "available"
	EquipmentStatusInUse          EquipmentStatus = "in_use"
	EquipmentStatusMaintenance    EquipmentStatus = "maintenance"
	EquipmentStatusDecommissioned EquipmentStatus = "decommissioned"
)

func (s EquipmentStatus) Valid() bool {
	switch s {
	case EquipmentStatusAvailable, EquipmentStatusInUse, EquipmentStatusMaintenance, EquipmentStatusDecommissioned:
		return true
	}
	return false
}

func ParseEquipmentStatus(s string) (EquipmentStatus, error) {
	status := EquipmentStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("unknown equipment status %q", s)
	}
	return status, nil
}

// EquipmentRequestStatus is the workflow state of an equipment request.
// "rejected" exists in the data model but no operation sets it.
type EquipmentRequestStatus string

const (
	RequestStatusPending  EquipmentRequestStatus = "pending"
	RequestStatusApproved EquipmentRequestStatus = "approved"
	RequestStatusRejected EquipmentRequestStatus = "rejected"
)

func (s EquipmentRequestStatus) Valid() bool {
	switch s {
	case RequestStatusPending, RequestStatusApproved, RequestStatusRejected:
		return true
	}
	return false
}

func ParseEquipmentRequestStatus(s string) (EquipmentRequestStatus, error) {
	status := EquipmentRequestStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("unknown equipment request status %q", s)
	}
	return status, nil
}
