package dto

type CreateEquipmentRequestDTO struct {
	EquipmentID    uint64 `json:"equipment_id" validate:"required,min=1"`
	RequestedBy    string `json:"requested_by" validate:"required,min=2,max=120"`
	Justification  string `json:"justification" validate:"required,min=5,max=2000"`
	Priority       int    `json:"priority" validate:"required,min=1,max=5"`
	OrganizationID uint64 `json:"organization_id" validate:"required,min=1"`
}
