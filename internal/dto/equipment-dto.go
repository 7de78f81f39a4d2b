package dto

type CreateEquipmentDTO struct {
	Name         string `json:"name" validate:"required,min=2,max=150"`
	Manufacturer string `json:"manufacturer" validate:"required,min=2,max=150"`
	ModelNumber  string `json:"model_number" validate:"required,min=1,max=120"`
	Category     string `json:"category" validate:"required,min=2,max=120"`
	Status       string `json:"status" validate:"required,oneof=available in_use maintenance decommissioned"`
	DepartmentID uint64 `json:"department_id" validate:"required,min=1"`
}

// UpdateEquipmentDTO is a full replacement payload (PUT semantics), so it
// carries the same required fields as creation.
type UpdateEquipmentDTO struct {
	Name         string `json:"name" validate:"required,min=2,max=150"`
	Manufacturer string `json:"manufacturer" validate:"required,min=2,max=150"`
	ModelNumber  string `json:"model_number" validate:"required,min=1,max=120"`
	Category     string `json:"category" validate:"required,min=2,max=120"`
	Status       string `json:"status" validate:"required,oneof=available in_use maintenance decommissioned"`
	DepartmentID uint64 `json:"department_id" validate:"required,min=1"`
}
