package entities

import "time"

type EquipmentRequest struct {
	ID             uint64                 `json:"id"`
	EquipmentID    uint64                 `json:"equipment_id"`
	RequestedBy    string                 `json:"requested_by"`
	Justification  string                 `json:"justification"`
	Priority       int                    `json:"priority"`
	Status         EquipmentRequestStatus `json:"status"`
	OrganizationID uint64                 `json:"organization_id"`
	CreatedAt      time.Time              `json:"created_at"`
}
