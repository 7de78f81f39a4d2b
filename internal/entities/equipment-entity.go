package entities

import "time"

type Equipment struct {
	ID           uint64          `json:"id"`
	Name         string          `json:"name"`
	Manufacturer string          `json:"manufacturer"`
	ModelNumber  string          `json:"model_number"`
	Category     string          `json:"category"`
	Status       EquipmentStatus `json:"status"`
	DepartmentID uint64          `json:"department_id"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
